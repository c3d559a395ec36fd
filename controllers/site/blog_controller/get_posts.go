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
// @Description Published posts, newest first, optionally narrowed to one tag.
// @Tags Site - Blog
// @Produce json
// @Param tag query string false "Tag (case-insensitive)"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(9)
// @Success 200 {object} models.ApiResponse{data=[]models.BlogPostSummary}
// @Failure 500 {object} models.ApiResponse
// @Router /site/blog [get]
func GetPosts(c *gin.Context) {
	page, limit, offset := utils.ParsePagination(c, 9)
	tag := strings.TrimSpace(c.Query("tag"))

	ctx, cancel := config.WithTimeout()
	defer cancel()

	query := config.DB.WithContext(ctx).Model(&models.BlogPost{}).Where("status = ?", models.PostStatusPublished)
	if tag != "" {
		query = query.Where("EXISTS (SELECT 1 FROM jsonb_array_elements_text(tags) AS t WHERE LOWER(t) = LOWER(?))", tag)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		config.Log.Errorw("[site.blog] count failed", "error", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch posts"))
		return
	}

	var posts []models.BlogPost
	if err := query.Order("published_at DESC").Limit(limit).Offset(offset).Find(&posts).Error; err != nil {
		config.Log.Errorw("[site.blog] query failed", "error", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch posts"))
		return
	}

	summaries := make([]models.BlogPostSummary, 0, len(posts))
	for _, p := range posts {
		summaries = append(summaries, p.ToSummary())
	}

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Posts fetched successfully", summaries, models.NewPagination(page, limit, int(total))))
}
