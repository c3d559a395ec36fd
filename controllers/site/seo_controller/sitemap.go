package seo_controller

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AgriSeed/agriseed-cms-backend/config"
	"github.com/AgriSeed/agriseed-cms-backend/models"
	"github.com/AgriSeed/agriseed-cms-backend/services"
)

// LoadPostEntries lists published posts for the sitemap. Tests swap it out.
var LoadPostEntries = func(ctx context.Context) ([]services.SitemapEntry, error) {
	var posts []models.BlogPost
	if err := config.DB.WithContext(ctx).
		Select("slug", "updated_at").
		Where("status = ?", models.PostStatusPublished).
		Order("published_at DESC").
		Find(&posts).Error; err != nil {
		return nil, err
	}
	entries := make([]services.SitemapEntry, 0, len(posts))
	for _, p := range posts {
		entries = append(entries, services.SitemapEntry{Path: "/blog/" + p.Slug, LastMod: p.UpdatedAt})
	}
	return entries, nil
}

// GetSitemap godoc
// @Summary sitemap.xml
// @Tags Site - SEO
// @Produce xml
// @Success 200 {string} string "sitemap"
// @Failure 500 {string} string
// @Router /sitemap.xml [get]
func GetSitemap(c *gin.Context) {
	ctx := c.Request.Context()

	products, err := services.LoadCatalog(ctx)
	if err != nil {
		config.Log.Errorw("[seo.sitemap] failed to load catalog", "error", err)
		c.String(http.StatusInternalServerError, "sitemap unavailable")
		return
	}
	productEntries := make([]services.SitemapEntry, 0, len(products))
	for _, p := range products {
		productEntries = append(productEntries, services.SitemapEntry{Path: "/products/" + p.Slug, LastMod: p.UpdatedAt})
	}

	postEntries, err := LoadPostEntries(ctx)
	if err != nil {
		config.Log.Errorw("[seo.sitemap] failed to load posts", "error", err)
		c.String(http.StatusInternalServerError, "sitemap unavailable")
		return
	}

	body, err := services.BuildSitemap(*config.Site, productEntries, postEntries)
	if err != nil {
		config.Log.Errorw("[seo.sitemap] encode failed", "error", err)
		c.String(http.StatusInternalServerError, "sitemap unavailable")
		return
	}

	c.Header("Cache-Control", "public, max-age=3600")
	c.Data(http.StatusOK, "application/xml; charset=utf-8", body)
}

// GetRobots godoc
// @Summary robots.txt
// @Tags Site - SEO
// @Produce plain
// @Success 200 {string} string "robots"
// @Router /robots.txt [get]
func GetRobots(c *gin.Context) {
	c.Header("Cache-Control", "public, max-age=86400")
	c.String(http.StatusOK, services.BuildRobots(*config.Site))
}
