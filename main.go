// @title AgriSeed CMS API
// @version 1.0
// @description Marketing site and CMS backend for AgriSeed
// @host localhost:8081
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/AgriSeed/agriseed-cms-backend/cache"
	"github.com/AgriSeed/agriseed-cms-backend/config"
	site_products "github.com/AgriSeed/agriseed-cms-backend/controllers/site/product_controller"
	_ "github.com/AgriSeed/agriseed-cms-backend/docs"
	"github.com/AgriSeed/agriseed-cms-backend/middleware"
	"github.com/AgriSeed/agriseed-cms-backend/routes/cms_routes"
	"github.com/AgriSeed/agriseed-cms-backend/routes/site_routes"
	"github.com/AgriSeed/agriseed-cms-backend/services"
)

func init() {
	_ = godotenv.Load()
}

func main() {
	config.InitLogger()
	defer config.SyncLogger()

	config.InitSiteConfig()

	// Connect to DB
	config.InitDB()
	defer config.CloseDB()
	if os.Getenv("AUTO_MIGRATE") == "true" {
		if err := config.AutoMigrate(); err != nil {
			config.Log.Fatalf("❌ Auto-migrate failed: %v", err)
		}
	}

	// Redis connection
	config.ConnectRedis()
	defer config.CloseRedis()

	site_products.InitPreferenceStore(cache.NewRedisPreferenceStore(config.RedisClient))
	cache.Products.SetTTL(config.Site.CatalogTTL)

	// ✅ Initialize JWT Service for Admin Auth
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		config.Log.Fatal("❌ JWT_SECRET environment variable not set")
	}
	if err := services.InitJWTService(jwtSecret); err != nil {
		config.Log.Fatalf("Failed to initialize JWT service: %v", err)
	}

	if err := services.InitCloudinary(
		os.Getenv("CLOUDINARY_CLOUD_NAME"),
		os.Getenv("CLOUDINARY_API_KEY"),
		os.Getenv("CLOUDINARY_API_SECRET"),
	); err != nil {
		config.Log.Fatalf("Failed to initialize Cloudinary: %v", err)
	}

	corsCfg := cors.Config{
		AllowOrigins:     config.Site.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
		ExposeHeaders:    []string{"Content-Disposition", "Content-Length"},
	}

	if os.Getenv("APP_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	router.Use(cors.New(corsCfg))

	api := router.Group("/api/v1")

	// Public site
	site_routes.SetupSiteRoutes(api)
	site_routes.SetupSEORoutes(router)

	// ✅ Admin auth routes (at /api/v1/admin prefix)
	cms_routes.SetupAdminRoutes(api)

	// CMS routes (at /api/v1/admin prefix)
	adminGroup := api.Group("/admin")
	adminGroup.Use(middleware.RateLimiter(100, time.Minute))
	cms_routes.SetupProductRoutes(adminGroup)
	cms_routes.SetupContentRoutes(adminGroup)
	cms_routes.SetupLeadRoutes(adminGroup)

	// Swagger docs
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8081"
	}
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		config.Log.Infof("🚀 Server is running on http://localhost:%s", port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			config.Log.Fatalf("❌ Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	config.Log.Infof("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		config.Log.Errorf("Forced shutdown: %v", err)
	}
}
