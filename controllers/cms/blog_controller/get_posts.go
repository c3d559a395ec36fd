package blog_controller

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/AgriSeed/agriseed-cms-backend/config"
	"github.com/AgriSeed/agriseed-cms-backend/models"
	"github.com/AgriSeed/agriseed-cms-backend/utils"
)

// GetPosts godoc
// @Summary List blog posts
// @Description Drafts included
// @Tags CMS - Blog
// @Produce json
// @Security BearerAuth
// @Param status query string false "Published | Draft"
// @Param q query string false "Search title"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Success 200 {object} models.ApiResponse{data=[]models.BlogPost}
// @Router /admin/blog [get]
func GetPosts(c *gin.Context) {
	page, limit, offset := utils.ParsePagination(c, 20)

	ctx, cancel := config.WithTimeout()
	defer cancel()

	query := config.DB.WithContext(ctx).Model(&models.BlogPost{})
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		query = query.Where("title ILIKE ?", "%"+q+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		config.Log.Errorw("[cms.blog] count failed", "error", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch posts"))
		return
	}

	posts := make([]models.BlogPost, 0)
	if err := query.Order("published_at DESC").Limit(limit).Offset(offset).Find(&posts).Error; err != nil {
		config.Log.Errorw("[cms.blog] query failed", "error", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch posts"))
		return
	}

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Posts fetched successfully", posts, models.NewPagination(page, limit, int(total))))
}
