package seo_controller

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AgriSeed/agriseed-cms-backend/config"
	"github.com/AgriSeed/agriseed-cms-backend/models"
	"github.com/AgriSeed/agriseed-cms-backend/services"
)

func TestGetSitemap(t *testing.T) {
	gin.SetMode(gin.TestMode)

	origCatalog, origPosts := services.LoadCatalog, LoadPostEntries
	t.Cleanup(func() { services.LoadCatalog, LoadPostEntries = origCatalog, origPosts })

	services.LoadCatalog = func(context.Context) ([]models.Product, error) {
		return []models.Product{{Slug: "okra", UpdatedAt: time.Date(2025, 4, 2, 0, 0, 0, 0, time.UTC)}}, nil
	}
	LoadPostEntries = func(context.Context) ([]services.SitemapEntry, error) {
		return []services.SitemapEntry{{Path: "/blog/rabi-tips"}}, nil
	}

	r := gin.New()
	r.GET("/sitemap.xml", GetSitemap)
	r.GET("/robots.txt", GetRobots)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/sitemap.xml", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "application/xml")

	base := config.Site.BaseURL
	assert.Contains(t, w.Body.String(), "<loc>"+base+"/products/okra</loc>")
	assert.Contains(t, w.Body.String(), "<lastmod>2025-04-02</lastmod>")
	assert.Contains(t, w.Body.String(), "<loc>"+base+"/blog/rabi-tips</loc>")

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/robots.txt", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Sitemap: "+base+"/sitemap.xml")

	LoadPostEntries = func(context.Context) ([]services.SitemapEntry, error) { return nil, errors.New("boom") }
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/sitemap.xml", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
