package admin_auth_controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/AgriSeed/agriseed-cms-backend/config"
	"github.com/AgriSeed/agriseed-cms-backend/models"
)

// GetAdminMe godoc
// @Summary Get current admin profile
// @Description Returns the logged-in admin. Used to check the session on page reload.
// @Tags Admin - Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=models.AdminResponse}
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Router /admin/me [get]
func GetAdminMe(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	var admin models.Admin
	err := config.DB.WithContext(ctx).Where("id = ?", c.GetString("adminID")).First(&admin).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Admin not found"))
		return
	}
	if err != nil {
		config.Log.Errorw("[admin.me] database error", "error", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Admin profile retrieved", admin.ToResponse()))
}
