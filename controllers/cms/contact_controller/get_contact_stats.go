package contact_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AgriSeed/agriseed-cms-backend/config"
	"github.com/AgriSeed/agriseed-cms-backend/models"
)

type statusCount struct {
	Status string
	Count  int
}

// GetContactStats godoc
// @Summary Enquiry counts by status
// @Tags CMS - Contacts
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=models.ContactStats}
// @Failure 500 {object} models.ApiResponse
// @Router /admin/contacts/stats [get]
func GetContactStats(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	var rows []statusCount
	if err := config.DB.WithContext(ctx).
		Model(&models.ContactMessage{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error; err != nil {
		config.Log.Errorw("[cms.contacts.stats] query failed", "error", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch contact stats"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Contact stats fetched successfully", buildContactStats(rows)))
}

// buildContactStats reports every known status, zero when absent.
func buildContactStats(rows []statusCount) models.ContactStats {
	stats := models.ContactStats{ByStatus: make(map[string]int, len(models.ContactStatuses))}
	for _, s := range models.ContactStatuses {
		stats.ByStatus[s] = 0
	}
	for _, r := range rows {
		stats.ByStatus[r.Status] += r.Count
		stats.Total += r.Count
	}
	return stats
}
