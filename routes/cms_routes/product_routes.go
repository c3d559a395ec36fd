package cms_routes

import (
	"github.com/gin-gonic/gin"

	"github.com/AgriSeed/agriseed-cms-backend/controllers/cms/product_controller"
	"github.com/AgriSeed/agriseed-cms-backend/middleware"
)

func SetupProductRoutes(rg *gin.RouterGroup) {
	product := rg.Group("/products")
	product.Use(middleware.AdminAuthMiddleware())

	product.GET("", product_controller.GetProducts)
	product.GET("/stats", product_controller.GetProductStats)
	product.GET("/:id", product_controller.GetProductByID)

	// ════════════════════════════════════════════════════════════
	// Mutations (Activity Logged)
	// ════════════════════════════════════════════════════════════
	protected := product.Group("")
	protected.Use(middleware.ActivityLoggingMiddleware())
	{
		protected.POST("", product_controller.CreateProduct)
		protected.PATCH("/:id", product_controller.UpdateProduct)
		protected.POST("/:id/image", product_controller.UploadProductImage)
		protected.DELETE("/:id/image", product_controller.DeleteProductImage)
		protected.DELETE("/:id", middleware.RequireSuperAdminMiddleware(), product_controller.DeleteProduct)
	}
}
