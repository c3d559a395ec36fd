package contact_controller

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestBuildContactStats(t *testing.T) {
	stats := buildContactStats([]statusCount{
		{Status: "new", Count: 4},
		{Status: "replied", Count: 2},
	})

	assert.Equal(t, 6, stats.Total)
	assert.Equal(t, map[string]int{"new": 4, "read": 0, "replied": 2, "archived": 0}, stats.ByStatus)
}

func TestGetContacts_RejectsUnknownStatus(t *testing.T) {
	r := gin.New()
	r.GET("/admin/contacts", GetContacts)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/contacts?status=spam", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateContactStatus_RejectsUnknownStatus(t *testing.T) {
	r := gin.New()
	r.PATCH("/admin/contacts/:id/status", UpdateContactStatus)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/admin/contacts/"+uuid.NewString()+"/status", strings.NewReader(`{"status":"closed"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "new, read, replied, archived")
}
