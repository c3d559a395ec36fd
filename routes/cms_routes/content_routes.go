package cms_routes

import (
	"github.com/gin-gonic/gin"

	"github.com/AgriSeed/agriseed-cms-backend/controllers/cms/blog_controller"
	"github.com/AgriSeed/agriseed-cms-backend/controllers/cms/testimonial_controller"
	"github.com/AgriSeed/agriseed-cms-backend/middleware"
)

// SetupContentRoutes registers blog and testimonial management.
func SetupContentRoutes(rg *gin.RouterGroup) {
	blog := rg.Group("/blog")
	blog.Use(middleware.AdminAuthMiddleware())
	blog.GET("", blog_controller.GetPosts)

	blogWrites := blog.Group("")
	blogWrites.Use(middleware.ActivityLoggingMiddleware())
	{
		blogWrites.POST("/import", blog_controller.ImportPosts)
		blogWrites.PATCH("/:id/status", blog_controller.UpdatePostStatus)
		blogWrites.DELETE("/:id", middleware.RequireSuperAdminMiddleware(), blog_controller.DeletePost)
	}

	testimonials := rg.Group("/testimonials")
	testimonials.Use(middleware.AdminAuthMiddleware())
	testimonials.GET("", testimonial_controller.GetTestimonials)

	testimonialWrites := testimonials.Group("")
	testimonialWrites.Use(middleware.ActivityLoggingMiddleware())
	{
		testimonialWrites.POST("", testimonial_controller.CreateTestimonial)
		testimonialWrites.PATCH("/:id", testimonial_controller.UpdateTestimonial)
		testimonialWrites.DELETE("/:id", middleware.RequireSuperAdminMiddleware(), testimonial_controller.DeleteTestimonial)
	}
}
