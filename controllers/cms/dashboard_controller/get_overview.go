package dashboard_controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/AgriSeed/agriseed-cms-backend/config"
	"github.com/AgriSeed/agriseed-cms-backend/models"
	"github.com/AgriSeed/agriseed-cms-backend/utils"
)

type counter func(ctx context.Context) (int64, error)

// Counters feed the overview. Tests swap them out.
type Counters struct {
	Products          counter
	AvailableProducts counter
	NewContacts       counter
	PublishedPosts    counter
	Testimonials      counter
	RecentVisits      counter
}

var Sources = Counters{
	Products:          countWhere(&models.Product{}, ""),
	AvailableProducts: countWhere(&models.Product{}, "availability = ?", true),
	NewContacts:       countWhere(&models.ContactMessage{}, "status = ?", models.ContactStatusNew),
	PublishedPosts:    countWhere(&models.BlogPost{}, "status = ?", models.PostStatusPublished),
	Testimonials:      countWhere(&models.Testimonial{}, "published = ?", true),
	RecentVisits: func(ctx context.Context) (int64, error) {
		return utils.CountVisitsSince(ctx, time.Now().AddDate(0, 0, -7))
	},
}

func countWhere(model any, cond string, args ...any) counter {
	return func(ctx context.Context) (int64, error) {
		var n int64
		q := config.DB.WithContext(ctx).Model(model)
		if cond != "" {
			q = q.Where(cond, args...)
		}
		return n, q.Count(&n).Error
	}
}

// GetOverview godoc
// @Summary Dashboard overview
// @Description Headline counts for the admin landing page
// @Tags CMS - Dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=models.DashboardOverview}
// @Failure 500 {object} models.ApiResponse
// @Router /admin/dashboard [get]
func GetOverview(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	overview, err := buildOverview(ctx, Sources)
	if err != nil {
		config.Log.Errorw("[cms.dashboard] failed to build overview", "error", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to load dashboard"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Dashboard fetched successfully", overview))
}

// buildOverview runs the counters concurrently; the first error cancels the rest.
func buildOverview(ctx context.Context, src Counters) (models.DashboardOverview, error) {
	var out models.DashboardOverview
	g, ctx := errgroup.WithContext(ctx)

	run := func(fn counter, dst *int64) {
		g.Go(func() error {
			n, err := fn(ctx)
			if err != nil {
				return err
			}
			*dst = n
			return nil
		})
	}
	run(src.Products, &out.Products)
	run(src.AvailableProducts, &out.AvailableProducts)
	run(src.NewContacts, &out.NewContacts)
	run(src.PublishedPosts, &out.PublishedPosts)
	run(src.Testimonials, &out.Testimonials)
	run(src.RecentVisits, &out.VisitsLast7Days)

	if err := g.Wait(); err != nil {
		return models.DashboardOverview{}, err
	}
	return out, nil
}
