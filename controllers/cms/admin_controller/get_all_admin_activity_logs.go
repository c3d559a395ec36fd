package admin_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AgriSeed/agriseed-cms-backend/config"
	"github.com/AgriSeed/agriseed-cms-backend/models"
	"github.com/AgriSeed/agriseed-cms-backend/utils"
)

// GetAllAdminActivityLogs godoc
// @Summary Get admin activity
// @Description Content changes made by admins, newest first
// @Tags Admin - Activity
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number (default: 1)"
// @Param limit query int false "Items per page (default: 20, max: 100)"
// @Param admin_id query string false "Filter by admin ID"
// @Param action query string false "Filter by action (e.g. created_product, updated_contact)"
// @Param resource_type query string false "product | blog_post | testimonial | contact"
// @Success 200 {object} models.ApiResponse{data=[]models.ActivityLogResponse}
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Router /admin/activity-logs [get]
func GetAllAdminActivityLogs(c *gin.Context) {
	page, limit, offset := utils.ParsePagination(c, 20)

	ctx, cancel := config.WithTimeout()
	defer cancel()

	query := config.DB.WithContext(ctx).Model(&models.ActivityLog{})
	if adminID := c.Query("admin_id"); adminID != "" {
		query = query.Where("admin_id = ?", adminID)
	}
	if action := c.Query("action"); action != "" {
		query = query.Where("action = ?", action)
	}
	if resourceType := c.Query("resource_type"); resourceType != "" {
		query = query.Where("resource_type = ?", resourceType)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		config.Log.Errorw("[admin.activity] failed to count logs", "error", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	var activityLogs []models.ActivityLog
	if err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&activityLogs).Error; err != nil {
		config.Log.Errorw("[admin.activity] failed to fetch logs", "error", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	responses := make([]models.ActivityLogResponse, len(activityLogs))
	for i := range activityLogs {
		responses[i] = activityLogs[i].ToResponse()
	}

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Activity logs retrieved", responses, models.NewPagination(page, limit, int(total))))
}
