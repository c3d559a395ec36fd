package contact_controller

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AgriSeed/agriseed-cms-backend/models"
)

func setup(t *testing.T, save func(*models.ContactMessage) error) (*gin.Engine, *[]models.ContactMessage) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	var notified []models.ContactMessage
	origSave, origNotify := SaveContact, Notify
	SaveContact = save
	Notify = func(m models.ContactMessage) { notified = append(notified, m) }
	t.Cleanup(func() { SaveContact, Notify = origSave, origNotify })

	r := gin.New()
	r.POST("/site/contact", SubmitContact)
	return r, &notified
}

func post(r *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/site/contact", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSubmitContact(t *testing.T) {
	var saved *models.ContactMessage
	r, notified := setup(t, func(m *models.ContactMessage) error {
		m.ID = uuid.New()
		saved = m
		return nil
	})

	w := post(r, `{"name":" Sunita Devi ","email":"Sunita@Example.com","message":"Need 50 kg of mustard seed","product_interest":"Mustard"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	require.NotNil(t, saved)
	assert.Equal(t, "Sunita Devi", saved.Name)
	assert.Equal(t, "sunita@example.com", saved.Email)
	assert.Equal(t, models.ContactStatusNew, saved.Status)
	assert.Len(t, *notified, 1)
}

func TestSubmitContact_Invalid(t *testing.T) {
	r, notified := setup(t, func(*models.ContactMessage) error {
		t.Fatal("should not save")
		return nil
	})

	for _, body := range []string{
		`{}`,
		`{"name":"A","email":"not-an-email","message":"hello there"}`,
		`{"name":"A","email":"a@b.co","message":"hi"}`,
		`not json`,
	} {
		assert.Equal(t, http.StatusBadRequest, post(r, body).Code, body)
	}
	assert.Empty(t, *notified)
}

func TestSubmitContact_SaveFails(t *testing.T) {
	r, notified := setup(t, func(*models.ContactMessage) error { return errors.New("db down") })

	w := post(r, `{"name":"A","email":"a@b.co","message":"hello there"}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Empty(t, *notified)
}
