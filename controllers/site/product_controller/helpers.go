package product_controller

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/AgriSeed/agriseed-cms-backend/catalog"
	"github.com/AgriSeed/agriseed-cms-backend/models"
)

const defaultPageSize = 12

var prefStore catalog.PreferenceStore

// InitPreferenceStore sets where visitors' catalog choices are remembered.
// Without one, every request starts from the defaults.
func InitPreferenceStore(store catalog.PreferenceStore) {
	prefStore = store
}

// ProductListResponse is the storefront list payload.
type ProductListResponse struct {
	Products []models.SiteProductResponse `json:"products"`
	Stats    catalog.FilterStats          `json:"stats"`
	Filters  catalog.FilterState          `json:"filters"`
	Sort     catalog.SortSpec             `json:"sort"`
}

// FilterMetadata feeds the filter sidebar before any filter is chosen.
type FilterMetadata struct {
	Stats            catalog.FilterStats      `json:"stats"`
	Categories       []models.ProductCategory `json:"categories"`
	Seasons          []models.Season          `json:"seasons"`
	DifficultyLevels []models.DifficultyLevel `json:"difficulty_levels"`
	SortFields       []catalog.SortField      `json:"sort_fields"`
}

var catalogParams = []string{"category", "season", "difficulty", "available", "featured", "sortBy", "sortOrder"}

// hasCatalogParams reports whether the request states any filter or sort.
func hasCatalogParams(c *gin.Context) bool {
	q := c.Request.URL.Query()
	for _, p := range catalogParams {
		if _, ok := q[p]; ok {
			return true
		}
	}
	return false
}

// parsePreferences reads the filter and sort from the query string.
func parsePreferences(c *gin.Context) catalog.Preferences {
	filter := catalog.FilterState{
		Categories:       parseEnumList(c, "category", models.ProductCategories),
		Seasons:          parseEnumList(c, "season", models.Seasons),
		DifficultyLevels: parseEnumList(c, "difficulty", models.DifficultyLevels),
		Availability:     parseBool(c.Query("available")),
		Featured:         parseBool(c.Query("featured")),
	}

	sort := catalog.DefaultSort
	if field, ok := catalog.ParseSortField(c.Query("sortBy")); ok {
		sort.Field = field
	}
	if dir, ok := catalog.ParseSortDirection(c.Query("sortOrder")); ok {
		sort.Direction = dir
	}

	return catalog.Preferences{Filter: filter, Sort: sort}
}

// parseEnumList accepts repeated and comma-separated values, matching known
// values case-insensitively. Unknown values are kept as sent so they match
// nothing rather than silently widening the result.
func parseEnumList[T ~string](c *gin.Context, key string, known []T) []T {
	var out []T
	seen := make(map[T]bool)
	for _, raw := range c.QueryArray(key) {
		for _, v := range strings.Split(raw, ",") {
			v = strings.TrimSpace(v)
			if v == "" {
				continue
			}
			value := T(v)
			for _, k := range known {
				if strings.EqualFold(string(k), v) {
					value = k
					break
				}
			}
			if !seen[value] {
				seen[value] = true
				out = append(out, value)
			}
		}
	}
	return out
}

// parseBool maps "true"/"false" to a constraint; anything else leaves it unset.
func parseBool(s string) *bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes":
		v := true
		return &v
	case "false", "0", "no":
		v := false
		return &v
	}
	return nil
}

func toSiteResponses(products []models.Product) []models.SiteProductResponse {
	out := make([]models.SiteProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, p.ToSiteResponse())
	}
	return out
}
