package product_controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/AgriSeed/agriseed-cms-backend/config"
	"github.com/AgriSeed/agriseed-cms-backend/models"
	"github.com/AgriSeed/agriseed-cms-backend/utils"
)

// UpdateProduct godoc
// @Summary Update a product
// @Description Partial update; only fields present in the body change
// @Tags CMS - Products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Param product body models.UpdateProductRequest true "Fields to change"
// @Success 200 {object} models.ApiResponse{data=models.Product}
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Failure 409 {object} models.ApiResponse
// @Router /admin/products/{id} [patch]
func UpdateProduct(c *gin.Context) {
	var req models.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	product, err := findProduct(ctx, c.Param("id"))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
		return
	}
	if err != nil {
		config.Log.Errorw("[cms.products.update] lookup failed", "error", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update product"))
		return
	}

	if req.Slug != nil {
		slug := utils.Slugify(*req.Slug)
		if slug == "" {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Slug cannot be empty"))
			return
		}
		if slug != product.Slug {
			if err := ensureSlugFree(ctx, slug, product.ID); err != nil {
				if errors.Is(err, errSlugTaken) {
					c.JSON(http.StatusConflict, models.ErrorResponse(c, "A product with slug '"+slug+"' already exists"))
					return
				}
				c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update product"))
				return
			}
			product.Slug = slug
		}
	}

	applyProductUpdate(product, req)

	if err := config.DB.WithContext(ctx).Save(product).Error; err != nil {
		config.Log.Errorw("[cms.products.update] save failed", "id", product.ID, "error", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update product"))
		return
	}
	catalogChanged()

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product updated successfully", product))
}
