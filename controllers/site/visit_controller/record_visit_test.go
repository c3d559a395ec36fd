package visit_controller

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AgriSeed/agriseed-cms-backend/middleware"
	"github.com/AgriSeed/agriseed-cms-backend/models"
)

func TestRecordVisit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	type call struct {
		visitor string
		req     models.RecordVisitRequest
	}
	var calls []call
	var fail error
	orig := LogVisit
	LogVisit = func(_ *gin.Context, visitorID string, req models.RecordVisitRequest) error {
		calls = append(calls, call{visitorID, req})
		return fail
	}
	t.Cleanup(func() { LogVisit = orig })

	r := gin.New()
	r.Use(middleware.VisitorMiddleware())
	r.POST("/site/visits", RecordVisit)

	send := func(body string) int {
		req := httptest.NewRequest(http.MethodPost, "/site/visits", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusAccepted, send(`{"path":"/products/okra","referrer":"https://google.com"}`))
	require.Len(t, calls, 1)
	assert.NotEmpty(t, calls[0].visitor)
	assert.Equal(t, "/products/okra", calls[0].req.Path)

	assert.Equal(t, http.StatusBadRequest, send(`{}`))
	assert.Equal(t, http.StatusBadRequest, send(`{"path":"products"}`))
	assert.Len(t, calls, 1)

	fail = errors.New("pool closed")
	assert.Equal(t, http.StatusInternalServerError, send(`{"path":"/"}`))
}
