package product_controller

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AgriSeed/agriseed-cms-backend/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func ptr[T any](v T) *T { return &v }

func TestApplyProductUpdate_OnlyTouchesSetFields(t *testing.T) {
	p := models.Product{
		Name:            "HD-2967 Wheat",
		Description:     "Rust resistant",
		Category:        models.CategoryWheat,
		Seasonality:     models.SeasonList{models.SeasonRabi},
		DifficultyLevel: models.DifficultyEasy,
		Availability:    true,
	}

	applyProductUpdate(&p, models.UpdateProductRequest{
		Name:        ptr("HD-3086 Wheat"),
		Seasonality: ptr([]models.Season{models.SeasonRabi, models.SeasonZaid}),
		Featured:    ptr(true),
	})

	assert.Equal(t, "HD-3086 Wheat", p.Name)
	assert.Equal(t, "Rust resistant", p.Description)
	assert.Equal(t, models.SeasonList{models.SeasonRabi, models.SeasonZaid}, p.Seasonality)
	assert.True(t, p.Featured)
	assert.True(t, p.Availability)
	assert.Equal(t, models.DifficultyEasy, p.DifficultyLevel)
}

func TestProductFromRequest_DefaultsToAvailable(t *testing.T) {
	req := models.ProductRequest{
		Name:            "Pusa Ruby Tomato",
		Category:        models.CategoryVegetable,
		Seasonality:     []models.Season{models.SeasonKharif},
		DifficultyLevel: models.DifficultyModerate,
	}
	p := productFromRequest(req, "pusa-ruby-tomato")
	assert.True(t, p.Availability)
	assert.Equal(t, "pusa-ruby-tomato", p.Slug)

	req.Availability = ptr(false)
	assert.False(t, productFromRequest(req, "x").Availability)
}

func TestBuildProductStats(t *testing.T) {
	mk := func(slug string, cat models.ProductCategory, views int, available bool) models.Product {
		return models.Product{
			ID:              uuid.NewSHA1(uuid.NameSpaceURL, []byte(slug)),
			Slug:            slug,
			Name:            slug,
			Category:        cat,
			Seasonality:     models.SeasonList{models.SeasonKharif},
			DifficultyLevel: models.DifficultyEasy,
			Availability:    available,
			Views:           views,
			CreatedAt:       time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		}
	}
	all := []models.Product{
		mk("rice-a", models.CategoryRice, 10, true),
		mk("rice-b", models.CategoryRice, 0, false),
		mk("maize", models.CategoryMaize, 30, true),
		mk("cotton", models.CategoryCotton, 20, true),
	}

	stats := buildProductStats(all)

	assert.Equal(t, 4, stats.Total)
	assert.Equal(t, 4, stats.Filtered)
	assert.Equal(t, 3, stats.Available)
	assert.Equal(t, 2, stats.Categories[models.CategoryRice])
	assert.InDelta(t, 15.0, stats.AverageViews, 0.0001)

	require.Len(t, stats.MostViewed, 3)
	assert.Equal(t, "maize", stats.MostViewed[0].Slug)
	assert.Equal(t, "cotton", stats.MostViewed[1].Slug)
	assert.Equal(t, "rice-a", stats.MostViewed[2].Slug)
}

func TestBuildProductStats_Empty(t *testing.T) {
	stats := buildProductStats(nil)
	assert.Zero(t, stats.Total)
	assert.Zero(t, stats.AverageViews)
	assert.NotNil(t, stats.MostViewed)
}

func TestCreateProduct_RejectsInvalidBody(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"malformed json", `{"name":`, "Invalid request"},
		{"missing fields", `{"name":"Only a name"}`, "Invalid request"},
		{
			"unknown category",
			`{"name":"X","description":"d","category":"Flowers","seasonality":["Rabi"],"difficulty_level":"Easy"}`,
			"invalid category: Flowers",
		},
		{
			"unknown season",
			`{"name":"X","description":"d","category":"Wheat","seasonality":["Monsoon"],"difficulty_level":"Easy"}`,
			"invalid season: Monsoon",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.POST("/admin/products", CreateProduct)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/admin/products", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			r.ServeHTTP(w, req)

			require.Equal(t, http.StatusBadRequest, w.Code)
			var resp models.ApiResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.True(t, resp.Error)
			assert.Contains(t, resp.Message, tt.want)
		})
	}
}

func TestUpdateProduct_RejectsEmptySeasonList(t *testing.T) {
	r := gin.New()
	r.PATCH("/admin/products/:id", UpdateProduct)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/admin/products/"+uuid.NewString(), strings.NewReader(`{"seasonality":[]}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "at least one season is required")
}

func TestUploadProductImage_UnavailableWithoutCloudinary(t *testing.T) {
	r := gin.New()
	r.POST("/admin/products/:id/image", UploadProductImage)

	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	part, err := mw.CreateFormFile("image", "seed.jpg")
	require.NoError(t, err)
	_, _ = part.Write([]byte("not really a jpeg"))
	require.NoError(t, mw.Close())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin/products/"+uuid.NewString()+"/image", body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
