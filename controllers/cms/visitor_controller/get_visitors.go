package visitor_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AgriSeed/agriseed-cms-backend/config"
	"github.com/AgriSeed/agriseed-cms-backend/models"
	"github.com/AgriSeed/agriseed-cms-backend/utils"
)

// GetVisitors godoc
// @Summary Raw visit log
// @Tags CMS - Visitors
// @Produce json
// @Security BearerAuth
// @Param path query string false "Exact page path"
// @Param device_type query string false "desktop | mobile | tablet | bot"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(50)
// @Success 200 {object} models.ApiResponse{data=[]models.VisitorLog}
// @Router /admin/visitors [get]
func GetVisitors(c *gin.Context) {
	page, limit, offset := utils.ParsePagination(c, 50)

	ctx, cancel := config.WithTimeout()
	defer cancel()

	query := config.DB.WithContext(ctx).Model(&models.VisitorLog{})
	if path := c.Query("path"); path != "" {
		query = query.Where("path = ?", path)
	}
	if device := c.Query("device_type"); device != "" {
		query = query.Where("device_type = ?", device)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		config.Log.Errorw("[cms.visitors] count failed", "error", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch visitors"))
		return
	}

	visits := make([]models.VisitorLog, 0)
	if err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&visits).Error; err != nil {
		config.Log.Errorw("[cms.visitors] query failed", "error", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch visitors"))
		return
	}

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Visitors fetched successfully", visits, models.NewPagination(page, limit, int(total))))
}
