package dashboard_controller

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/AgriSeed/agriseed-cms-backend/models"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func fixed(n int64) counter {
	return func(context.Context) (int64, error) { return n, nil }
}

func TestBuildOverview(t *testing.T) {
	got, err := buildOverview(context.Background(), Counters{
		Products:          fixed(40),
		AvailableProducts: fixed(31),
		NewContacts:       fixed(3),
		PublishedPosts:    fixed(12),
		Testimonials:      fixed(8),
		RecentVisits:      fixed(950),
	})
	require.NoError(t, err)
	assert.Equal(t, models.DashboardOverview{
		Products:          40,
		AvailableProducts: 31,
		NewContacts:       3,
		PublishedPosts:    12,
		Testimonials:      8,
		VisitsLast7Days:   950,
	}, got)
}

func TestBuildOverview_FirstErrorCancelsOthers(t *testing.T) {
	boom := errors.New("pool closed")
	blocking := func(ctx context.Context) (int64, error) {
		<-ctx.Done()
		return 0, ctx.Err()
	}

	got, err := buildOverview(context.Background(), Counters{
		Products:          blocking,
		AvailableProducts: blocking,
		NewContacts:       blocking,
		PublishedPosts:    blocking,
		Testimonials:      blocking,
		RecentVisits:      func(context.Context) (int64, error) { return 0, boom },
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, models.DashboardOverview{}, got)
}
