package product_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AgriSeed/agriseed-cms-backend/catalog"
	"github.com/AgriSeed/agriseed-cms-backend/config"
	"github.com/AgriSeed/agriseed-cms-backend/models"
	"github.com/AgriSeed/agriseed-cms-backend/services"
)

// GetFilterMetadata godoc
// @Summary Filter sidebar metadata
// @Description Facet counts over the whole catalog plus the allowed values of every facet.
// @Tags Site - Products
// @Produce json
// @Success 200 {object} models.ApiResponse{data=FilterMetadata}
// @Failure 500 {object} models.ApiResponse
// @Router /site/filters/metadata [get]
func GetFilterMetadata(c *gin.Context) {
	all, err := services.LoadCatalog(c.Request.Context())
	if err != nil {
		config.Log.Errorw("[site.filters] failed to load catalog", "error", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch filter metadata"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Filter metadata fetched successfully", FilterMetadata{
		Stats:            catalog.ComputeStats(all, all),
		Categories:       models.ProductCategories,
		Seasons:          models.Seasons,
		DifficultyLevels: models.DifficultyLevels,
		SortFields:       []catalog.SortField{catalog.SortByName, catalog.SortByCategory, catalog.SortByCreatedAt, catalog.SortByFeatured},
	}))
}
