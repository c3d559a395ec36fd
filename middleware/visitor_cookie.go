package middleware

import (
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	VisitorCookie    = "visitor_id"
	visitorCookieAge = 365 * 24 * time.Hour
)

// VisitorMiddleware gives every site visitor a stable anonymous id. It keys
// saved catalog preferences and the visitor log.
func VisitorMiddleware() gin.HandlerFunc {
	secure := os.Getenv("APP_ENV") == "production"
	return func(c *gin.Context) {
		id, err := c.Cookie(VisitorCookie)
		if _, parseErr := uuid.Parse(id); err != nil || parseErr != nil {
			id = uuid.Must(uuid.NewV7()).String()
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(VisitorCookie, id, int(visitorCookieAge.Seconds()), "/", "", secure, true)
		}
		c.Set("visitorID", id)
		c.Next()
	}
}

// VisitorID returns the id set by VisitorMiddleware, or "".
func VisitorID(c *gin.Context) string {
	return c.GetString("visitorID")
}
