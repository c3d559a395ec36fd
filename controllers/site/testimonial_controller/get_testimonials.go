package testimonial_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AgriSeed/agriseed-cms-backend/config"
	"github.com/AgriSeed/agriseed-cms-backend/models"
)

// GetTestimonials godoc
// @Summary Farmer testimonials
// @Description Published testimonials, featured first then newest.
// @Tags Site - Testimonials
// @Produce json
// @Success 200 {object} models.ApiResponse{data=[]models.Testimonial}
// @Failure 500 {object} models.ApiResponse
// @Router /site/testimonials [get]
func GetTestimonials(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	testimonials := make([]models.Testimonial, 0)
	if err := config.DB.WithContext(ctx).
		Where("published = ?", true).
		Order("featured DESC, created_at DESC").
		Limit(50).
		Find(&testimonials).Error; err != nil {
		config.Log.Errorw("[site.testimonials] query failed", "error", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch testimonials"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Testimonials fetched successfully", testimonials))
}
