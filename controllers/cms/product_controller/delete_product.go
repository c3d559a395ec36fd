package product_controller

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/AgriSeed/agriseed-cms-backend/config"
	"github.com/AgriSeed/agriseed-cms-backend/models"
	"github.com/AgriSeed/agriseed-cms-backend/services"
)

// DeleteProduct godoc
// @Summary Delete a product
// @Description Removes the product and, best-effort, its Cloudinary image
// @Tags CMS - Products
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /admin/products/{id} [delete]
func DeleteProduct(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	product, err := findProduct(ctx, c.Param("id"))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to delete product"))
		return
	}

	if err := config.DB.WithContext(ctx).Delete(product).Error; err != nil {
		config.Log.Errorw("[cms.products.delete] delete failed", "id", product.ID, "error", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to delete product"))
		return
	}
	catalogChanged()

	if publicID := services.PublicIDFromURL(product.ImageURL); publicID != "" {
		if images, err := services.Images(); err == nil {
			go func() {
				ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				defer cancel()
				if err := images.DeleteImage(ctx, publicID); err != nil {
					config.Log.Warnw("[cms.products.delete] image cleanup failed", "public_id", publicID, "error", err)
				}
			}()
		}
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product deleted successfully", nil))
}
