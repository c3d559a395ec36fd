package site_routes

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/AgriSeed/agriseed-cms-backend/controllers/site/blog_controller"
	"github.com/AgriSeed/agriseed-cms-backend/controllers/site/contact_controller"
	"github.com/AgriSeed/agriseed-cms-backend/controllers/site/product_controller"
	"github.com/AgriSeed/agriseed-cms-backend/controllers/site/seo_controller"
	"github.com/AgriSeed/agriseed-cms-backend/controllers/site/testimonial_controller"
	"github.com/AgriSeed/agriseed-cms-backend/controllers/site/visit_controller"
	"github.com/AgriSeed/agriseed-cms-backend/middleware"
)

// SetupSiteRoutes registers the public marketing site API under /site.
func SetupSiteRoutes(rg *gin.RouterGroup) {
	site := rg.Group("/site")
	site.Use(middleware.VisitorMiddleware())

	// ════════════════════════════════════════════════════════════
	// Catalog
	// ════════════════════════════════════════════════════════════
	site.GET("/products", product_controller.GetProducts)
	site.GET("/products/featured", product_controller.GetFeaturedProducts)
	site.GET("/products/:slug", product_controller.GetProductBySlug)
	site.GET("/products/:slug/guide.pdf", product_controller.DownloadProductGuide)
	site.GET("/filters/metadata", product_controller.GetFilterMetadata)

	// ════════════════════════════════════════════════════════════
	// Content
	// ════════════════════════════════════════════════════════════
	site.GET("/blog", blog_controller.GetPosts)
	site.GET("/blog/:slug", blog_controller.GetPostBySlug)
	site.GET("/testimonials", testimonial_controller.GetTestimonials)

	// ════════════════════════════════════════════════════════════
	// Leads & Tracking
	// ════════════════════════════════════════════════════════════
	site.POST("/contact", middleware.RateLimiter(5, 10*time.Minute), contact_controller.SubmitContact)
	site.POST("/visits", middleware.RateLimiter(120, time.Minute), visit_controller.RecordVisit)
}

// SetupSEORoutes serves the crawler files at the site root.
func SetupSEORoutes(router *gin.Engine) {
	router.GET("/sitemap.xml", seo_controller.GetSitemap)
	router.GET("/robots.txt", seo_controller.GetRobots)
}
