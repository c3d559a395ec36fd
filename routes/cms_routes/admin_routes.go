package cms_routes

import (
	"time"

	"github.com/gin-gonic/gin"

	admin_controller "github.com/AgriSeed/agriseed-cms-backend/controllers/cms/admin_controller"
	admin_auth "github.com/AgriSeed/agriseed-cms-backend/controllers/cms/admin_controller/auth"
	"github.com/AgriSeed/agriseed-cms-backend/controllers/cms/dashboard_controller"
	"github.com/AgriSeed/agriseed-cms-backend/middleware"
)

// SetupAdminRoutes registers login and the admin account endpoints.
func SetupAdminRoutes(rg *gin.RouterGroup) {
	admin := rg.Group("/admin")

	// ════════════════════════════════════════════════════════════
	// Public Routes (No Auth Required)
	// ════════════════════════════════════════════════════════════

	admin.POST("/login", middleware.RateLimiter(10, 15*time.Minute), admin_auth.AdminLogin)

	// ════════════════════════════════════════════════════════════
	// Protected Routes (Auth Required)
	// ════════════════════════════════════════════════════════════

	protected := admin.Group("")
	protected.Use(middleware.AdminAuthMiddleware())
	{
		protected.POST("/logout", admin_auth.AdminLogout)
		protected.GET("/me", admin_auth.GetAdminMe)

		protected.GET("/dashboard", dashboard_controller.GetOverview)
		protected.GET("/activity-logs", admin_controller.GetAllAdminActivityLogs)
	}
}
