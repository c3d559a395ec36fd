package visitor_controller

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/AgriSeed/agriseed-cms-backend/analytics"
	"github.com/AgriSeed/agriseed-cms-backend/config"
	"github.com/AgriSeed/agriseed-cms-backend/models"
	"github.com/AgriSeed/agriseed-cms-backend/utils"
)

const (
	defaultStatsDays = 30
	maxStatsDays     = 365
)

// FetchVisits loads raw rows for the summary. Tests swap it out.
var FetchVisits = utils.FetchVisits

var now = time.Now

// GetVisitorStats godoc
// @Summary Visitor analytics
// @Description Daily visits, top pages, device split and referrers for the last N days (UTC)
// @Tags CMS - Visitors
// @Produce json
// @Security BearerAuth
// @Param days query int false "Days to include (1-365)" default(30)
// @Success 200 {object} models.ApiResponse{data=models.VisitorSummary}
// @Failure 400 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /admin/visitors/stats [get]
func GetVisitorStats(c *gin.Context) {
	days := defaultStatsDays
	if raw := c.Query("days"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > maxStatsDays {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "days must be between 1 and 365"))
			return
		}
		days = n
	}

	to := now().UTC()
	today := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	from := today.AddDate(0, 0, -(days - 1))

	ctx, cancel := config.WithTimeout()
	defer cancel()

	visits, err := FetchVisits(ctx, from, to)
	if err != nil {
		config.Log.Errorw("[cms.visitors.stats] failed to load visits", "days", days, "error", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch visitor stats"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Visitor stats fetched successfully", analytics.Summarize(visits, from, to)))
}
