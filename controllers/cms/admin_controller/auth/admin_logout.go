package admin_auth_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AgriSeed/agriseed-cms-backend/config"
	"github.com/AgriSeed/agriseed-cms-backend/middleware"
	"github.com/AgriSeed/agriseed-cms-backend/models"
)

// AdminLogout godoc
// @Summary Logout admin
// @Description Clears the admin_token cookie
// @Tags Admin - Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse
// @Router /admin/logout [post]
func AdminLogout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.AdminTokenCookie, "", -1, "/", "", false, true)

	config.Log.Infow("[admin.logout] token cleared", "admin", c.GetString("adminEmail"))
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Logout successful", nil))
}
