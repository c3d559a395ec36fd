package contact_controller

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/AgriSeed/agriseed-cms-backend/config"
	"github.com/AgriSeed/agriseed-cms-backend/models"
	"github.com/AgriSeed/agriseed-cms-backend/services"
)

// SaveContact persists a new enquiry. Tests swap it out.
var SaveContact = func(msg *models.ContactMessage) error {
	ctx, cancel := config.WithTimeout()
	defer cancel()
	return config.DB.WithContext(ctx).Create(msg).Error
}

// Notify is called after a successful save.
var Notify = services.NotifyContactAsync

// SubmitContact godoc
// @Summary Submit the contact form
// @Description Stores an enquiry for the sales team and emails a notification. Limited to 5 submissions per 10 minutes per IP.
// @Tags Site - Contact
// @Accept json
// @Produce json
// @Param contact body models.ContactRequest true "Enquiry"
// @Success 201 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 429 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /site/contact [post]
func SubmitContact(c *gin.Context) {
	var req models.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	msg := models.ContactMessage{
		Name:            strings.TrimSpace(req.Name),
		Email:           strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:           strings.TrimSpace(req.Phone),
		Subject:         strings.TrimSpace(req.Subject),
		Message:         strings.TrimSpace(req.Message),
		ProductInterest: strings.TrimSpace(req.ProductInterest),
		Status:          models.ContactStatusNew,
		IPAddress:       c.ClientIP(),
	}

	if err := SaveContact(&msg); err != nil {
		config.Log.Errorw("[site.contact] failed to save message", "email", msg.Email, "error", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to send message"))
		return
	}

	config.Log.Infow("[site.contact] ✅ new enquiry", "id", msg.ID, "interest", msg.ProductInterest)
	Notify(msg)

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Thanks! Our team will get back to you shortly.", gin.H{"id": msg.ID}))
}
