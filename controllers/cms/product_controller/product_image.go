package product_controller

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/AgriSeed/agriseed-cms-backend/config"
	"github.com/AgriSeed/agriseed-cms-backend/models"
	"github.com/AgriSeed/agriseed-cms-backend/services"
)

const maxImageBytes = 5 << 20

// UploadProductImage godoc
// @Summary Upload product image
// @Description Uploads to Cloudinary (agriseed/products) and stores the secure URL
// @Tags CMS - Products
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Param image formData file true "Image (max 5MB)"
// @Success 200 {object} models.ApiResponse{data=models.Product}
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Failure 503 {object} models.ApiResponse "Image storage not configured"
// @Router /admin/products/{id}/image [post]
func UploadProductImage(c *gin.Context) {
	images, err := services.Images()
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse(c, "Image uploads are not configured"))
		return
	}

	header, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "image file is required"))
		return
	}
	if header.Size > maxImageBytes {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "image must be 5MB or smaller"))
		return
	}
	if ct := header.Header.Get("Content-Type"); ct != "" && !strings.HasPrefix(ct, "image/") {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "file must be an image"))
		return
	}

	ctx := c.Request.Context()
	product, err := findProduct(ctx, c.Param("id"))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to upload image"))
		return
	}

	file, err := header.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "could not read image"))
		return
	}
	defer file.Close()

	url, err := images.UploadImage(ctx, file, product.Slug, services.ProductImageFolder)
	if err != nil {
		config.Log.Errorw("[cms.products.image] upload failed", "id", product.ID, "error", err)
		c.JSON(http.StatusBadGateway, models.ErrorResponse(c, "Failed to upload image"))
		return
	}

	if err := config.DB.WithContext(ctx).Model(product).Update("image_url", url).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to save image"))
		return
	}
	product.ImageURL = url
	catalogChanged()

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Image uploaded successfully", product))
}

// DeleteProductImage godoc
// @Summary Remove product image
// @Tags CMS - Products
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Success 200 {object} models.ApiResponse{data=models.Product}
// @Failure 404 {object} models.ApiResponse
// @Router /admin/products/{id}/image [delete]
func DeleteProductImage(c *gin.Context) {
	ctx := c.Request.Context()
	product, err := findProduct(ctx, c.Param("id"))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to remove image"))
		return
	}

	if publicID := services.PublicIDFromURL(product.ImageURL); publicID != "" {
		if images, err := services.Images(); err == nil {
			if err := images.DeleteImage(ctx, publicID); err != nil {
				config.Log.Warnw("[cms.products.image] cloudinary delete failed", "public_id", publicID, "error", err)
			}
		}
	}

	if err := config.DB.WithContext(ctx).Model(product).Update("image_url", "").Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to remove image"))
		return
	}
	product.ImageURL = ""
	catalogChanged()

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Image removed successfully", product))
}
