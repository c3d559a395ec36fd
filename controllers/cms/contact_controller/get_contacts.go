package contact_controller

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/AgriSeed/agriseed-cms-backend/config"
	"github.com/AgriSeed/agriseed-cms-backend/models"
	"github.com/AgriSeed/agriseed-cms-backend/utils"
)

// GetContacts godoc
// @Summary List contact enquiries
// @Description Newest first. Search matches name, email, subject and product interest.
// @Tags CMS - Contacts
// @Produce json
// @Security BearerAuth
// @Param status query string false "new | read | replied | archived"
// @Param q query string false "Search text"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Success 200 {object} models.ApiResponse{data=[]models.ContactMessage}
// @Failure 400 {object} models.ApiResponse
// @Router /admin/contacts [get]
func GetContacts(c *gin.Context) {
	page, limit, offset := utils.ParsePagination(c, 20)

	status := strings.ToLower(strings.TrimSpace(c.Query("status")))
	if status != "" && !validStatus(status) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid status filter"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	query := config.DB.WithContext(ctx).Model(&models.ContactMessage{})
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		like := "%" + q + "%"
		query = query.Where("name ILIKE ? OR email ILIKE ? OR subject ILIKE ? OR product_interest ILIKE ?", like, like, like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		config.Log.Errorw("[cms.contacts] count failed", "error", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch contacts"))
		return
	}

	contacts := make([]models.ContactMessage, 0)
	if err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&contacts).Error; err != nil {
		config.Log.Errorw("[cms.contacts] query failed", "error", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch contacts"))
		return
	}

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Contacts fetched successfully", contacts, models.NewPagination(page, limit, int(total))))
}

func validStatus(s string) bool {
	for _, known := range models.ContactStatuses {
		if s == known {
			return true
		}
	}
	return false
}
