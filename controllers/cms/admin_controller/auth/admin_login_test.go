package admin_auth_controller

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AgriSeed/agriseed-cms-backend/middleware"
	"github.com/AgriSeed/agriseed-cms-backend/models"
	"github.com/AgriSeed/agriseed-cms-backend/services"
)

func TestAdminLogin(t *testing.T) {
	gin.SetMode(gin.TestMode)
	require.NoError(t, services.InitJWTService("login-secret"))

	hash, err := services.HashAdminPassword("rabi-season-2025")
	require.NoError(t, err)

	admins := map[string]*models.Admin{
		"ops@agriseed.in":    {ID: uuid.New(), Email: "ops@agriseed.in", Name: "Ops", PasswordHash: hash, Role: models.AdminRoleSuper, Status: models.AdminStatusActive},
		"banned@agriseed.in": {ID: uuid.New(), Email: "banned@agriseed.in", PasswordHash: hash, Status: models.AdminStatusSuspended},
	}

	origFind, origTouch := FindAdminByEmail, TouchLastLogin
	t.Cleanup(func() { FindAdminByEmail, TouchLastLogin = origFind, origTouch })

	var lookupErr error
	FindAdminByEmail = func(_ context.Context, email string) (*models.Admin, error) {
		if lookupErr != nil {
			return nil, lookupErr
		}
		return admins[email], nil
	}
	TouchLastLogin = func(context.Context, *models.Admin, time.Time) error { return nil }

	r := gin.New()
	r.POST("/admin/login", AdminLogin)
	r.POST("/admin/logout", AdminLogout)

	login := func(body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/admin/login", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	t.Run("success", func(t *testing.T) {
		w := login(`{"email":" OPS@agriseed.in ","password":"rabi-season-2025"}`)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var body struct {
			Data models.AdminLoginResponse `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "ops@agriseed.in", body.Data.Admin.Email)
		assert.NotNil(t, body.Data.Admin.LastLoginAt)

		claims, err := services.VerifyAdminJWT(body.Data.Token)
		require.NoError(t, err)
		assert.Equal(t, models.AdminRoleSuper, claims.Role)
		assert.Contains(t, w.Header().Get("Set-Cookie"), middleware.AdminTokenCookie+"=")
	})

	t.Run("wrong password", func(t *testing.T) {
		assert.Equal(t, http.StatusBadRequest, login(`{"email":"ops@agriseed.in","password":"nope-nope"}`).Code)
	})

	t.Run("unknown email", func(t *testing.T) {
		assert.Equal(t, http.StatusBadRequest, login(`{"email":"who@agriseed.in","password":"rabi-season-2025"}`).Code)
	})

	t.Run("suspended", func(t *testing.T) {
		assert.Equal(t, http.StatusForbidden, login(`{"email":"banned@agriseed.in","password":"rabi-season-2025"}`).Code)
	})

	t.Run("malformed", func(t *testing.T) {
		assert.Equal(t, http.StatusBadRequest, login(`{"email":"x"}`).Code)
	})

	t.Run("db error", func(t *testing.T) {
		lookupErr = errors.New("conn reset")
		defer func() { lookupErr = nil }()
		assert.Equal(t, http.StatusInternalServerError, login(`{"email":"ops@agriseed.in","password":"rabi-season-2025"}`).Code)
	})

	t.Run("logout clears cookie", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/admin/logout", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Header().Get("Set-Cookie"), "Max-Age=0")
	})
}
