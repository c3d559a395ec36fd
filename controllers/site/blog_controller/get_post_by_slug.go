package blog_controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/AgriSeed/agriseed-cms-backend/config"
	"github.com/AgriSeed/agriseed-cms-backend/models"
)

// GetPostBySlug godoc
// @Summary Blog post
// @Tags Site - Blog
// @Produce json
// @Param slug path string true "Post slug"
// @Success 200 {object} models.ApiResponse{data=models.BlogPost}
// @Failure 404 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /site/blog/{slug} [get]
func GetPostBySlug(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	var post models.BlogPost
	err := config.DB.WithContext(ctx).
		Where("slug = ? AND status = ?", c.Param("slug"), models.PostStatusPublished).
		First(&post).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Post not found"))
		return
	}
	if err != nil {
		config.Log.Errorw("[site.blog.get] query failed", "slug", c.Param("slug"), "error", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch post"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Post fetched successfully", post))
}
