package visit_controller

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/AgriSeed/agriseed-cms-backend/middleware"
	"github.com/AgriSeed/agriseed-cms-backend/models"
	"github.com/AgriSeed/agriseed-cms-backend/utils"
)

// LogVisit writes the page view. Tests swap it out.
var LogVisit = utils.LogVisit

// RecordVisit godoc
// @Summary Record a page view
// @Description Called by the site on every navigation. Device type is derived from the User-Agent.
// @Tags Site - Visits
// @Accept json
// @Produce json
// @Param visit body models.RecordVisitRequest true "Page view"
// @Success 202 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /site/visits [post]
func RecordVisit(c *gin.Context) {
	var req models.RecordVisitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request"))
		return
	}
	if !strings.HasPrefix(req.Path, "/") {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "path must start with /"))
		return
	}

	if err := LogVisit(c, middleware.VisitorID(c), req); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to record visit"))
		return
	}

	c.JSON(http.StatusAccepted, models.SuccessResponse(c, "Visit recorded", nil))
}
