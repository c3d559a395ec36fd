package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AgriSeed/agriseed-cms-backend/config"
	"github.com/AgriSeed/agriseed-cms-backend/models"
	"github.com/AgriSeed/agriseed-cms-backend/services"
	"github.com/AgriSeed/agriseed-cms-backend/utils"
)

const AdminTokenCookie = "admin_token"

// LookupAdmin loads the admin behind a verified token. Tests swap it out.
var LookupAdmin = func(ctx context.Context, adminID string) (*models.Admin, error) {
	var admin models.Admin
	err := config.DB.WithContext(ctx).
		Select("id", "email", "role", "status").
		Where("id = ?", adminID).
		First(&admin).Error
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

// AdminAuthMiddleware validates the admin JWT from the admin_token cookie or
// a Bearer header and loads the current role.
func AdminAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(AdminTokenCookie)
		if err != nil || token == "" {
			token, err = utils.ExtractTokenFromHeader(c.GetHeader("Authorization"))
			if err != nil {
				c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized - "+err.Error()))
				return
			}
		}

		claims, err := services.VerifyAdminJWT(token)
		if err != nil {
			config.Log.Debugw("[auth] invalid token", "error", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized - invalid token"))
			return
		}

		ctx, cancel := config.WithTimeout()
		defer cancel()

		admin, err := LookupAdmin(ctx, claims.AdminID)
		if err != nil {
			config.Log.Warnw("[auth] admin not found for token", "admin_id", claims.AdminID, "error", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized - admin not found"))
			return
		}
		if admin.Status == models.AdminStatusSuspended {
			c.AbortWithStatusJSON(http.StatusForbidden, models.ErrorResponse(c, "Forbidden - account suspended"))
			return
		}

		c.Set("adminID", claims.AdminID)
		c.Set("adminEmail", claims.Email)
		c.Set("adminRole", admin.Role)

		c.Next()
	}
}

// RequireSuperAdminMiddleware checks if the admin is a super admin
func RequireSuperAdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		adminRole, exists := c.Get("adminRole")
		if !exists {
			c.AbortWithStatusJSON(http.StatusForbidden, models.ErrorResponse(c, "Forbidden - role not found"))
			return
		}

		if adminRole != models.AdminRoleSuper {
			config.Log.Infow("[auth] non-super-admin attempted restricted action", "admin", c.GetString("adminEmail"), "path", c.FullPath())
			c.AbortWithStatusJSON(http.StatusForbidden, models.ErrorResponse(c, "Forbidden - super admin access required"))
			return
		}

		c.Next()
	}
}
