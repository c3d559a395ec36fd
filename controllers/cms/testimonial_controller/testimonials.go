package testimonial_controller

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/AgriSeed/agriseed-cms-backend/config"
	"github.com/AgriSeed/agriseed-cms-backend/models"
	"github.com/AgriSeed/agriseed-cms-backend/utils"
)

// GetTestimonials godoc
// @Summary List testimonials
// @Description Unpublished ones included
// @Tags CMS - Testimonials
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Success 200 {object} models.ApiResponse{data=[]models.Testimonial}
// @Router /admin/testimonials [get]
func GetTestimonials(c *gin.Context) {
	page, limit, offset := utils.ParsePagination(c, 20)

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var total int64
	if err := config.DB.WithContext(ctx).Model(&models.Testimonial{}).Count(&total).Error; err != nil {
		config.Log.Errorw("[cms.testimonials] count failed", "error", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch testimonials"))
		return
	}

	items := make([]models.Testimonial, 0)
	if err := config.DB.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&items).Error; err != nil {
		config.Log.Errorw("[cms.testimonials] query failed", "error", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch testimonials"))
		return
	}

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Testimonials fetched successfully", items, models.NewPagination(page, limit, int(total))))
}

// CreateTestimonial godoc
// @Summary Create a testimonial
// @Description Published defaults to true
// @Tags CMS - Testimonials
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param testimonial body models.TestimonialRequest true "Testimonial"
// @Success 201 {object} models.ApiResponse{data=models.Testimonial}
// @Failure 400 {object} models.ApiResponse
// @Router /admin/testimonials [post]
func CreateTestimonial(c *gin.Context) {
	var req models.TestimonialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	item := testimonialFromRequest(req)

	ctx, cancel := config.WithTimeout()
	defer cancel()

	if err := config.DB.WithContext(ctx).Create(&item).Error; err != nil {
		config.Log.Errorw("[cms.testimonials.create] insert failed", "error", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create testimonial"))
		return
	}

	c.Set("createdResourceID", item.ID.String())
	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Testimonial created successfully", item))
}

// UpdateTestimonial godoc
// @Summary Update a testimonial
// @Tags CMS - Testimonials
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Testimonial ID"
// @Param testimonial body models.UpdateTestimonialRequest true "Fields to change"
// @Success 200 {object} models.ApiResponse{data=models.Testimonial}
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /admin/testimonials/{id} [patch]
func UpdateTestimonial(c *gin.Context) {
	var req models.UpdateTestimonialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	item, err := findTestimonial(ctx, c.Param("id"))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Testimonial not found"))
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update testimonial"))
		return
	}

	applyTestimonialUpdate(item, req)
	if err := config.DB.WithContext(ctx).Save(item).Error; err != nil {
		config.Log.Errorw("[cms.testimonials.update] save failed", "id", item.ID, "error", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update testimonial"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Testimonial updated successfully", item))
}

// DeleteTestimonial godoc
// @Summary Delete a testimonial
// @Tags CMS - Testimonials
// @Produce json
// @Security BearerAuth
// @Param id path string true "Testimonial ID"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /admin/testimonials/{id} [delete]
func DeleteTestimonial(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	item, err := findTestimonial(ctx, c.Param("id"))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Testimonial not found"))
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to delete testimonial"))
		return
	}

	if err := config.DB.WithContext(ctx).Delete(item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to delete testimonial"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Testimonial deleted successfully", nil))
}

func findTestimonial(ctx context.Context, id string) (*models.Testimonial, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, gorm.ErrRecordNotFound
	}
	var item models.Testimonial
	if err := config.DB.WithContext(ctx).First(&item, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func testimonialFromRequest(req models.TestimonialRequest) models.Testimonial {
	published := true
	if req.Published != nil {
		published = *req.Published
	}
	return models.Testimonial{
		Name:      req.Name,
		Location:  req.Location,
		Crop:      req.Crop,
		Quote:     req.Quote,
		Rating:    req.Rating,
		Featured:  req.Featured,
		Published: published,
	}
}

func applyTestimonialUpdate(t *models.Testimonial, req models.UpdateTestimonialRequest) {
	if req.Name != nil {
		t.Name = *req.Name
	}
	if req.Location != nil {
		t.Location = *req.Location
	}
	if req.Crop != nil {
		t.Crop = *req.Crop
	}
	if req.Quote != nil {
		t.Quote = *req.Quote
	}
	if req.Rating != nil {
		t.Rating = *req.Rating
	}
	if req.Featured != nil {
		t.Featured = *req.Featured
	}
	if req.Published != nil {
		t.Published = *req.Published
	}
}
