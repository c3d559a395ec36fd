package admin_auth_controller

import (
	"context"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/AgriSeed/agriseed-cms-backend/config"
	"github.com/AgriSeed/agriseed-cms-backend/middleware"
	"github.com/AgriSeed/agriseed-cms-backend/models"
	"github.com/AgriSeed/agriseed-cms-backend/services"
)

// FindAdminByEmail returns (nil, nil) for an unknown email. Tests swap it out.
var FindAdminByEmail = func(ctx context.Context, email string) (*models.Admin, error) {
	var admin models.Admin
	err := config.DB.WithContext(ctx).Where("email = ?", email).First(&admin).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

// TouchLastLogin stamps last_login_at. Tests swap it out.
var TouchLastLogin = func(ctx context.Context, admin *models.Admin, at time.Time) error {
	return config.DB.WithContext(ctx).Model(admin).Update("last_login_at", at).Error
}

// AdminLogin godoc
// @Summary Login as admin
// @Description Authenticate admin with email and password. Sets the admin_token cookie and returns the JWT.
// @Tags Admin - Auth
// @Accept json
// @Produce json
// @Param loginRequest body models.AdminLoginRequest true "Email and password"
// @Success 200 {object} models.ApiResponse{data=models.AdminLoginResponse}
// @Failure 400 {object} models.ApiResponse "Invalid credentials"
// @Failure 403 {object} models.ApiResponse "Account suspended"
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /admin/login [post]
func AdminLogin(c *gin.Context) {
	var req models.AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request"))
		return
	}
	email := services.NormalizeEmail(req.Email)

	ctx, cancel := config.WithTimeout()
	defer cancel()

	admin, err := FindAdminByEmail(ctx, email)
	if err != nil {
		config.Log.Errorw("[admin.login] database error", "error", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	switch err := services.GetAdminAuthService().CheckLogin(admin, req.Password); {
	case errors.Is(err, services.ErrAdminSuspended):
		config.Log.Warnw("[admin.login] suspended account attempt", "email", email)
		c.JSON(http.StatusForbidden, models.ErrorResponse(c, "Account is suspended"))
		return
	case err != nil:
		config.Log.Infow("[admin.login] rejected", "email", email)
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid email or password"))
		return
	}

	now := time.Now()
	if err := TouchLastLogin(ctx, admin, now); err != nil {
		config.Log.Errorw("[admin.login] failed to update last login", "error", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}
	admin.LastLoginAt = &now

	token, err := services.GenerateAdminJWT(admin.ID.String(), admin.Email, admin.Role)
	if err != nil {
		config.Log.Errorw("[admin.login] failed to generate token", "error", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.AdminTokenCookie, token, int(services.AdminTokenTTL.Seconds()), "/", "", os.Getenv("APP_ENV") == "production", true)

	config.Log.Infow("[admin.login] ✅ success", "email", admin.Email, "admin_id", admin.ID)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Login successful", models.AdminLoginResponse{
		Admin: admin.ToResponse(),
		Token: token,
	}))
}
