package product_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AgriSeed/agriseed-cms-backend/catalog"
	"github.com/AgriSeed/agriseed-cms-backend/config"
	"github.com/AgriSeed/agriseed-cms-backend/middleware"
	"github.com/AgriSeed/agriseed-cms-backend/models"
	"github.com/AgriSeed/agriseed-cms-backend/services"
	"github.com/AgriSeed/agriseed-cms-backend/utils"
)

// GetProducts godoc
// @Summary List catalog products
// @Description Filter, sort and paginate the seed catalog. Without any filter or sort parameter the visitor's last choice is reused; with one, it is remembered.
// @Tags Site - Products
// @Produce json
// @Param category query []string false "Categories (repeatable)"
// @Param season query []string false "Seasons: Kharif, Rabi, Zaid (repeatable)"
// @Param difficulty query []string false "Difficulty: Easy, Moderate, Advanced (repeatable)"
// @Param available query string false "true | false"
// @Param featured query string false "true | false"
// @Param sortBy query string false "name | category | createdAt | featured" default(createdAt)
// @Param sortOrder query string false "asc | desc" default(desc)
// @Param reset query bool false "Clear saved filters"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(12)
// @Success 200 {object} models.ApiResponse{data=ProductListResponse}
// @Failure 500 {object} models.ApiResponse
// @Router /site/products [get]
func GetProducts(c *gin.Context) {
	ctx := c.Request.Context()
	visitorID := middleware.VisitorID(c)

	var prefs catalog.Preferences
	switch {
	case c.Query("reset") == "true":
		prefs = catalog.DefaultPreferences()
		savePreferences(c, visitorID, prefs)
	case hasCatalogParams(c):
		prefs = parsePreferences(c)
		savePreferences(c, visitorID, prefs)
	default:
		prefs = catalog.LoadPreferences(ctx, prefStore, visitorID)
	}

	all, err := services.LoadCatalog(ctx)
	if err != nil {
		config.Log.Errorw("[site.products] failed to load catalog", "error", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch products"))
		return
	}

	results, stats := catalog.Apply(all, prefs.Filter, prefs.Sort)

	page, limit, _ := utils.ParsePagination(c, defaultPageSize)
	pageItems := utils.Paginate(results, page, limit)

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Products fetched successfully", ProductListResponse{
		Products: toSiteResponses(pageItems),
		Stats:    stats,
		Filters:  prefs.Filter,
		Sort:     prefs.Sort,
	}, models.NewPagination(page, limit, len(results))))
}

func savePreferences(c *gin.Context, visitorID string, prefs catalog.Preferences) {
	if prefStore == nil || visitorID == "" {
		return
	}
	if err := catalog.SavePreferences(c.Request.Context(), prefStore, visitorID, prefs); err != nil {
		config.Log.Warnw("[site.products] failed to save preferences", "visitor", visitorID, "error", err)
	}
}
