package product_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AgriSeed/agriseed-cms-backend/config"
	"github.com/AgriSeed/agriseed-cms-backend/models"
	"github.com/AgriSeed/agriseed-cms-backend/services"
)

// GetProductBySlug godoc
// @Summary Product detail
// @Tags Site - Products
// @Produce json
// @Param slug path string true "Product slug"
// @Success 200 {object} models.ApiResponse{data=models.SiteProductResponse}
// @Failure 404 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /site/products/{slug} [get]
func GetProductBySlug(c *gin.Context) {
	slug := c.Param("slug")

	all, err := services.LoadCatalog(c.Request.Context())
	if err != nil {
		config.Log.Errorw("[site.products.get] failed to load catalog", "error", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch product"))
		return
	}

	product, ok := services.FindBySlug(all, slug)
	if !ok {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
		return
	}

	services.IncrementProductViews(product.ID.String())

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product fetched successfully", product.ToSiteResponse()))
}
