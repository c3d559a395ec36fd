package testimonial_controller

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/AgriSeed/agriseed-cms-backend/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestTestimonialFromRequest_PublishedByDefault(t *testing.T) {
	item := testimonialFromRequest(models.TestimonialRequest{Name: "Ramesh", Quote: "Great germination", Rating: 5})
	assert.True(t, item.Published)

	hidden := false
	item = testimonialFromRequest(models.TestimonialRequest{Name: "Ramesh", Quote: "ok", Rating: 3, Published: &hidden})
	assert.False(t, item.Published)
}

func TestApplyTestimonialUpdate(t *testing.T) {
	item := models.Testimonial{Name: "Ramesh", Crop: "Onion", Rating: 4, Published: true}
	rating, crop := 5, "Garlic"
	applyTestimonialUpdate(&item, models.UpdateTestimonialRequest{Rating: &rating, Crop: &crop})

	assert.Equal(t, 5, item.Rating)
	assert.Equal(t, "Garlic", item.Crop)
	assert.Equal(t, "Ramesh", item.Name)
	assert.True(t, item.Published)
}

func TestCreateTestimonial_RatingOutOfRange(t *testing.T) {
	r := gin.New()
	r.POST("/admin/testimonials", CreateTestimonial)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin/testimonials", strings.NewReader(`{"name":"A","quote":"B","rating":7}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
