package product_controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/AgriSeed/agriseed-cms-backend/catalog"
	"github.com/AgriSeed/agriseed-cms-backend/config"
	"github.com/AgriSeed/agriseed-cms-backend/models"
	"github.com/AgriSeed/agriseed-cms-backend/services"
)

// GetFeaturedProducts godoc
// @Summary Featured products
// @Description Available, featured products for the home page, newest first.
// @Tags Site - Products
// @Produce json
// @Param limit query int false "Max items" default(6)
// @Success 200 {object} models.ApiResponse{data=[]models.SiteProductResponse}
// @Failure 500 {object} models.ApiResponse
// @Router /site/products/featured [get]
func GetFeaturedProducts(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "6"))
	if err != nil || limit < 1 || limit > 24 {
		limit = 6
	}

	all, err := services.LoadCatalog(c.Request.Context())
	if err != nil {
		config.Log.Errorw("[site.products.featured] failed to load catalog", "error", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch products"))
		return
	}

	yes := true
	featured, _ := catalog.Apply(all, catalog.FilterState{Featured: &yes, Availability: &yes}, catalog.DefaultSort)
	if len(featured) > limit {
		featured = featured[:limit]
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Featured products fetched successfully", toSiteResponses(featured)))
}
