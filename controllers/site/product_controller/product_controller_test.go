package product_controller

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AgriSeed/agriseed-cms-backend/catalog"
	"github.com/AgriSeed/agriseed-cms-backend/middleware"
	"github.com/AgriSeed/agriseed-cms-backend/models"
	"github.com/AgriSeed/agriseed-cms-backend/services"
)

type envelope[T any] struct {
	Message string             `json:"message"`
	Error   bool               `json:"error"`
	Data    T                  `json:"data"`
	Meta    *models.Pagination `json:"meta"`
}

type memoryStore struct {
	mu   sync.Mutex
	data map[string][]byte
}

func (m *memoryStore) Load(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.data[key], nil
}

func (m *memoryStore) Save(_ context.Context, key string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = data
	return nil
}

var created = time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)

func seed(name, slug string, cat models.ProductCategory, seasons []models.Season, available, featured bool, age int) models.Product {
	return models.Product{
		ID:              uuid.NewSHA1(uuid.NameSpaceURL, []byte(slug)),
		Slug:            slug,
		Name:            name,
		Category:        cat,
		Seasonality:     seasons,
		DifficultyLevel: models.DifficultyEasy,
		Availability:    available,
		Featured:        featured,
		Guide:           models.SowingGuide{SowingWindow: "Nov", SeedRate: "40 kg/acre"},
		CreatedAt:       created.Add(time.Duration(age) * time.Hour),
	}
}

func testCatalog() []models.Product {
	return []models.Product{
		seed("Okra", "okra", models.CategoryVegetable, []models.Season{models.SeasonKharif, models.SeasonZaid}, true, true, 1),
		seed("HD-2967", "hd-2967-wheat", models.CategoryWheat, []models.Season{models.SeasonRabi}, true, false, 2),
		seed("Basmati 1121", "basmati-1121", models.CategoryRice, []models.Season{models.SeasonKharif}, false, true, 3),
		seed("Mustard", "mustard", models.CategoryOilseeds, []models.Season{models.SeasonRabi}, true, true, 4),
	}
}

func setup(t *testing.T, load func(context.Context) ([]models.Product, error)) (*gin.Engine, *memoryStore, *[]string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	origLoad, origViews := services.LoadCatalog, services.IncrementProductViews
	var viewed []string
	services.LoadCatalog = load
	services.IncrementProductViews = func(id string) { viewed = append(viewed, id) }

	store := &memoryStore{data: map[string][]byte{}}
	InitPreferenceStore(store)

	t.Cleanup(func() {
		services.LoadCatalog, services.IncrementProductViews = origLoad, origViews
		InitPreferenceStore(nil)
	})

	r := gin.New()
	r.Use(middleware.VisitorMiddleware())
	r.GET("/site/products", GetProducts)
	r.GET("/site/products/featured", GetFeaturedProducts)
	r.GET("/site/products/:slug", GetProductBySlug)
	r.GET("/site/products/:slug/guide.pdf", DownloadProductGuide)
	r.GET("/site/filters/metadata", GetFilterMetadata)
	return r, store, &viewed
}

func staticCatalog(context.Context) ([]models.Product, error) { return testCatalog(), nil }

const visitor = "0190d5a8-4b7e-7c3a-9c1e-2f4b6a8d0e12"

func get(t *testing.T, r *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.AddCookie(&http.Cookie{Name: middleware.VisitorCookie, Value: visitor})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeList(t *testing.T, w *httptest.ResponseRecorder) envelope[ProductListResponse] {
	t.Helper()
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var body envelope[ProductListResponse]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func slugs(items []models.SiteProductResponse) []string {
	out := make([]string, len(items))
	for i, p := range items {
		out[i] = p.Slug
	}
	return out
}

func TestGetProducts_FilterAndSort(t *testing.T) {
	r, _, _ := setup(t, staticCatalog)

	body := decodeList(t, get(t, r, "/site/products?season=kharif&sortBy=name&sortOrder=asc"))

	assert.Equal(t, []string{"basmati-1121", "okra"}, slugs(body.Data.Products))
	assert.Equal(t, []models.Season{models.SeasonKharif}, body.Data.Filters.Seasons)
	assert.Equal(t, catalog.SortSpec{Field: catalog.SortByName, Direction: catalog.Ascending}, body.Data.Sort)
	assert.Equal(t, 4, body.Data.Stats.Total)
	assert.Equal(t, 2, body.Data.Stats.Filtered)
	assert.Equal(t, 2, body.Meta.Total)
}

func TestGetProducts_DefaultsNewestFirst(t *testing.T) {
	r, _, _ := setup(t, staticCatalog)

	body := decodeList(t, get(t, r, "/site/products"))
	assert.Equal(t, []string{"mustard", "basmati-1121", "hd-2967-wheat", "okra"}, slugs(body.Data.Products))
	assert.Equal(t, catalog.DefaultSort, body.Data.Sort)
}

func TestGetProducts_RemembersPreferences(t *testing.T) {
	r, store, _ := setup(t, staticCatalog)

	decodeList(t, get(t, r, "/site/products?category=Wheat&category=Oilseeds&available=true"))
	require.Contains(t, store.data, visitor)

	body := decodeList(t, get(t, r, "/site/products"))
	assert.Equal(t, []string{"mustard", "hd-2967-wheat"}, slugs(body.Data.Products))
	require.NotNil(t, body.Data.Filters.Availability)
	assert.True(t, *body.Data.Filters.Availability)

	body = decodeList(t, get(t, r, "/site/products?reset=true"))
	assert.Len(t, body.Data.Products, 4)
	assert.True(t, body.Data.Filters.IsEmpty())

	body = decodeList(t, get(t, r, "/site/products"))
	assert.Len(t, body.Data.Products, 4, "reset is remembered too")
}

func TestGetProducts_UnknownValuesMatchNothing(t *testing.T) {
	r, _, _ := setup(t, staticCatalog)

	body := decodeList(t, get(t, r, "/site/products?category=Bananas"))
	assert.Empty(t, body.Data.Products)
	assert.Equal(t, 0, body.Data.Stats.Filtered)
}

func TestGetProducts_Pagination(t *testing.T) {
	r, _, _ := setup(t, staticCatalog)

	body := decodeList(t, get(t, r, "/site/products?sortBy=name&sortOrder=asc&page=2&limit=3"))
	assert.Equal(t, []string{"okra"}, slugs(body.Data.Products))
	assert.Equal(t, &models.Pagination{Page: 2, Limit: 3, Total: 4, TotalPages: 2}, body.Meta)
}

func TestGetProducts_LoadError(t *testing.T) {
	r, _, _ := setup(t, func(context.Context) ([]models.Product, error) {
		return nil, errors.New("db down")
	})

	w := get(t, r, "/site/products")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestGetFeaturedProducts(t *testing.T) {
	r, _, _ := setup(t, staticCatalog)

	w := get(t, r, "/site/products/featured")
	require.Equal(t, http.StatusOK, w.Code)

	var body envelope[[]models.SiteProductResponse]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	// basmati is featured but unavailable
	assert.Equal(t, []string{"mustard", "okra"}, slugs(body.Data))
}

func TestGetProductBySlug(t *testing.T) {
	r, _, viewed := setup(t, staticCatalog)

	w := get(t, r, "/site/products/okra")
	require.Equal(t, http.StatusOK, w.Code)
	var body envelope[models.SiteProductResponse]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Okra", body.Data.Name)
	assert.Len(t, *viewed, 1)

	w = get(t, r, "/site/products/does-not-exist")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDownloadProductGuide(t *testing.T) {
	r, _, _ := setup(t, staticCatalog)

	w := get(t, r, "/site/products/hd-2967-wheat/guide.pdf")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="hd-2967-wheat-guide.pdf"`, w.Header().Get("Content-Disposition"))
	assert.True(t, strings.HasPrefix(w.Body.String(), "%PDF"))

	assert.Equal(t, http.StatusNotFound, get(t, r, "/site/products/nope/guide.pdf").Code)
}

func TestGetFilterMetadata(t *testing.T) {
	r, _, _ := setup(t, staticCatalog)

	w := get(t, r, "/site/filters/metadata")
	require.Equal(t, http.StatusOK, w.Code)

	var body envelope[FilterMetadata]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 4, body.Data.Stats.Total)
	assert.Equal(t, 2, body.Data.Stats.Seasons[models.SeasonKharif])
	assert.Equal(t, models.ProductCategories, body.Data.Categories)
}

func TestParseBool(t *testing.T) {
	assert.True(t, *parseBool("TRUE"))
	assert.False(t, *parseBool("false"))
	assert.Nil(t, parseBool(""))
	assert.Nil(t, parseBool("maybe"))
}
