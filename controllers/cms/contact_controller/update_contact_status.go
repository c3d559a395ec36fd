package contact_controller

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/AgriSeed/agriseed-cms-backend/config"
	"github.com/AgriSeed/agriseed-cms-backend/models"
)

// UpdateContactStatus godoc
// @Summary Update enquiry status
// @Tags CMS - Contacts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Contact ID"
// @Param payload body models.UpdateContactStatusRequest true "New status"
// @Success 200 {object} models.ApiResponse{data=models.ContactMessage}
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /admin/contacts/{id}/status [patch]
func UpdateContactStatus(c *gin.Context) {
	var req models.UpdateContactStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: status must be one of "+strings.Join(models.ContactStatuses, ", ")))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	msg, err := findContact(ctx, c.Param("id"))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Contact not found"))
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update contact"))
		return
	}

	if err := config.DB.WithContext(ctx).Model(msg).Update("status", req.Status).Error; err != nil {
		config.Log.Errorw("[cms.contacts.status] update failed", "id", msg.ID, "error", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update contact"))
		return
	}
	msg.Status = req.Status

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Contact status updated", msg))
}

// DeleteContact godoc
// @Summary Delete an enquiry
// @Tags CMS - Contacts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Contact ID"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /admin/contacts/{id} [delete]
func DeleteContact(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	msg, err := findContact(ctx, c.Param("id"))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Contact not found"))
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to delete contact"))
		return
	}

	if err := config.DB.WithContext(ctx).Delete(msg).Error; err != nil {
		config.Log.Errorw("[cms.contacts.delete] delete failed", "id", msg.ID, "error", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to delete contact"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Contact deleted successfully", nil))
}
