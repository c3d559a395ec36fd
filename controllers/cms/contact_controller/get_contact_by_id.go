package contact_controller

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

func findContact(ctx context.Context, id string) (*models.ContactMessage, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, gorm.ErrRecordNotFound
	}
	var msg models.ContactMessage
	if err := config.DB.WithContext(ctx).First(&msg, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &msg, nil
}

// GetContactByID godoc
// @Summary Get a contact enquiry
// @Description Opening a new enquiry marks it as read
// @Tags CMS - Contacts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Contact ID"
// @Success 200 {object} models.ApiResponse{data=models.ContactMessage}
// @Failure 404 {object} models.ApiResponse
// @Router /admin/contacts/{id} [get]
func GetContactByID(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	msg, err := findContact(ctx, c.Param("id"))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Contact not found"))
		return
	}
	if err != nil {
		config.Log.Errorw("[cms.contacts.get] query failed", "error", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch contact"))
		return
	}

	if msg.Status == models.ContactStatusNew {
		if err := config.DB.WithContext(ctx).Model(msg).Update("status", models.ContactStatusRead).Error; err != nil {
			config.Log.Warnw("[cms.contacts.get] failed to mark as read", "id", msg.ID, "error", err)
		} else {
			msg.Status = models.ContactStatusRead
		}
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Contact fetched successfully", msg))
}
