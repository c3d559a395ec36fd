package cms_routes

import (
	"github.com/gin-gonic/gin"

	"github.com/AgriSeed/agriseed-cms-backend/controllers/cms/contact_controller"
	"github.com/AgriSeed/agriseed-cms-backend/controllers/cms/visitor_controller"
	"github.com/AgriSeed/agriseed-cms-backend/middleware"
)

// SetupLeadRoutes registers contact enquiries and visitor analytics.
func SetupLeadRoutes(rg *gin.RouterGroup) {
	contacts := rg.Group("/contacts")
	contacts.Use(middleware.AdminAuthMiddleware())
	contacts.GET("", contact_controller.GetContacts)
	contacts.GET("/stats", contact_controller.GetContactStats)
	contacts.GET("/:id", contact_controller.GetContactByID)

	contactWrites := contacts.Group("")
	contactWrites.Use(middleware.ActivityLoggingMiddleware())
	{
		contactWrites.PATCH("/:id/status", contact_controller.UpdateContactStatus)
		contactWrites.DELETE("/:id", middleware.RequireSuperAdminMiddleware(), contact_controller.DeleteContact)
	}

	visitors := rg.Group("/visitors")
	visitors.Use(middleware.AdminAuthMiddleware())
	visitors.GET("", visitor_controller.GetVisitors)
	visitors.GET("/stats", visitor_controller.GetVisitorStats)
}
