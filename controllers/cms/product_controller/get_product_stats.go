package product_controller

import (
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"

	"github.com/AgriSeed/agriseed-cms-backend/catalog"
	"github.com/AgriSeed/agriseed-cms-backend/config"
	"github.com/AgriSeed/agriseed-cms-backend/models"
	"github.com/AgriSeed/agriseed-cms-backend/services"
)

type ViewedProduct struct {
	ID    string `json:"id"`
	Slug  string `json:"slug"`
	Name  string `json:"name"`
	Views int    `json:"views"`
}

type ProductStatsResponse struct {
	catalog.FilterStats
	AverageViews float64         `json:"average_views"`
	MostViewed   []ViewedProduct `json:"most_viewed"`
}

// GetProductStats godoc
// @Summary Catalog statistics
// @Description Facet counts over the whole catalog plus view figures
// @Tags CMS - Products
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=ProductStatsResponse}
// @Failure 500 {object} models.ApiResponse
// @Router /admin/products/stats [get]
func GetProductStats(c *gin.Context) {
	all, err := services.LoadCatalog(c.Request.Context())
	if err != nil {
		config.Log.Errorw("[cms.products.stats] failed to load catalog", "error", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to compute stats"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product stats fetched successfully", buildProductStats(all)))
}

func buildProductStats(all []models.Product) ProductStatsResponse {
	resp := ProductStatsResponse{
		FilterStats: catalog.ComputeStats(all, all),
		MostViewed:  []ViewedProduct{},
	}
	if len(all) == 0 {
		return resp
	}

	totalViews := 0
	byViews := make([]models.Product, len(all))
	copy(byViews, all)
	for _, p := range all {
		totalViews += p.Views
	}
	resp.AverageViews = float64(totalViews) / float64(len(all))

	sort.SliceStable(byViews, func(i, j int) bool { return byViews[i].Views > byViews[j].Views })
	for _, p := range byViews {
		if len(resp.MostViewed) == 5 || p.Views == 0 {
			break
		}
		resp.MostViewed = append(resp.MostViewed, ViewedProduct{ID: p.ID.String(), Slug: p.Slug, Name: p.Name, Views: p.Views})
	}
	return resp
}
