package blog_controller

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/AgriSeed/agriseed-cms-backend/config"
	"github.com/AgriSeed/agriseed-cms-backend/models"
)

func findPost(ctx context.Context, id string) (*models.BlogPost, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, gorm.ErrRecordNotFound
	}
	var post models.BlogPost
	if err := config.DB.WithContext(ctx).First(&post, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// UpdatePostStatus godoc
// @Summary Publish or unpublish a post
// @Tags CMS - Blog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Post ID"
// @Param payload body models.UpdatePostStatusRequest true "Status"
// @Success 200 {object} models.ApiResponse{data=models.BlogPost}
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /admin/blog/{id}/status [patch]
func UpdatePostStatus(c *gin.Context) {
	var req models.UpdatePostStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: status must be Published or Draft"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	post, err := findPost(ctx, c.Param("id"))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Post not found"))
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update post"))
		return
	}

	updates := map[string]any{"status": req.Status}
	if req.Status == models.PostStatusPublished && post.PublishedAt.IsZero() {
		updates["published_at"] = gorm.Expr("NOW()")
	}
	if err := config.DB.WithContext(ctx).Model(post).Updates(updates).Error; err != nil {
		config.Log.Errorw("[cms.blog.status] update failed", "id", post.ID, "error", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update post"))
		return
	}
	post.Status = req.Status

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Post status updated", post))
}

// DeletePost godoc
// @Summary Delete a post
// @Tags CMS - Blog
// @Produce json
// @Security BearerAuth
// @Param id path string true "Post ID"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /admin/blog/{id} [delete]
func DeletePost(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	post, err := findPost(ctx, c.Param("id"))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Post not found"))
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to delete post"))
		return
	}

	if err := config.DB.WithContext(ctx).Delete(post).Error; err != nil {
		config.Log.Errorw("[cms.blog.delete] delete failed", "id", post.ID, "error", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to delete post"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Post deleted successfully", nil))
}
