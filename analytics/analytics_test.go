package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AgriSeed/agriseed-cms-backend/models"
)

func TestClassifyDevice(t *testing.T) {
	tests := []struct {
		ua   string
		want string
	}{
		{"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 Chrome/120.0", models.DeviceDesktop},
		{"Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X) Mobile/15E148", models.DeviceMobile},
		{"Mozilla/5.0 (Linux; Android 14; Pixel 8) AppleWebKit/537.36 Mobile Safari/537.36", models.DeviceMobile},
		{"Mozilla/5.0 (Linux; Android 13; SM-X200) AppleWebKit/537.36 Safari/537.36", models.DeviceTablet},
		{"Mozilla/5.0 (iPad; CPU OS 16_0 like Mac OS X)", models.DeviceTablet},
		{"Mozilla/5.0 (compatible; Googlebot/2.1; +http://www.google.com/bot.html)", models.DeviceBot},
		{"", models.DeviceDesktop},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ClassifyDevice(tt.ua), tt.ua)
	}
}

func visit(visitor, path, ref, device string, at time.Time) models.VisitorLog {
	return models.VisitorLog{VisitorID: visitor, Path: path, Referrer: ref, DeviceType: device, CreatedAt: at}
}

func TestSummarize(t *testing.T) {
	day := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	from := day
	to := day.Add(3*24*time.Hour - time.Second) // 10th..12th

	visits := []models.VisitorLog{
		visit("a", "/", "https://www.google.com/search?q=seeds", models.DeviceMobile, day.Add(1*time.Hour)),
		visit("a", "/products", "", models.DeviceMobile, day.Add(2*time.Hour)),
		visit("b", "/products", "https://google.com/", models.DeviceDesktop, day.Add(26*time.Hour)),
		visit("c", "/blog/kharif-tips", "https://facebook.com/post/1", models.DeviceDesktop, day.Add(50*time.Hour)),
		visit("c", "/products", "not a url", "", day.Add(51*time.Hour)),
		// outside the window
		visit("z", "/", "", models.DeviceMobile, day.Add(-time.Hour)),
		visit("z", "/", "", models.DeviceMobile, day.Add(80*time.Hour)),
	}

	s := Summarize(visits, from, to)

	assert.Equal(t, 5, s.TotalVisits)
	assert.Equal(t, 3, s.UniqueVisitors)
	assert.Equal(t, []models.DailyVisits{
		{Date: "2025-06-10", Visits: 2},
		{Date: "2025-06-11", Visits: 1},
		{Date: "2025-06-12", Visits: 2},
	}, s.Daily)

	require.NotEmpty(t, s.TopPages)
	assert.Equal(t, models.PageVisits{Path: "/products", Visits: 3}, s.TopPages[0])
	assert.Equal(t, []models.PageVisits{
		{Path: "/products", Visits: 3},
		{Path: "/", Visits: 1},
		{Path: "/blog/kharif-tips", Visits: 1},
	}, s.TopPages)

	require.Len(t, s.Devices, 2)
	assert.Equal(t, models.DeviceDesktop, s.Devices[0].DeviceType)
	assert.Equal(t, 3, s.Devices[0].Visits)
	assert.InDelta(t, 60.0, s.Devices[0].Percentage, 0.001)

	assert.Equal(t, []models.ReferrerVisits{
		{Host: "google.com", Visits: 2},
		{Host: "facebook.com", Visits: 1},
	}, s.TopReferrers)
}

func TestSummarize_Empty(t *testing.T) {
	from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	s := Summarize(nil, from, from.Add(24*time.Hour))

	assert.Zero(t, s.TotalVisits)
	assert.Len(t, s.Daily, 2)
	assert.NotNil(t, s.TopPages)
	assert.NotNil(t, s.Devices)
}

func TestSummarize_InvertedRange(t *testing.T) {
	from := time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)
	s := Summarize([]models.VisitorLog{visit("a", "/", "", "", from)}, from, from.Add(-time.Hour))
	assert.Zero(t, s.TotalVisits)
	assert.Empty(t, s.Daily)
}

func TestRanked_Limit(t *testing.T) {
	m := map[string]int{"b": 2, "a": 2, "c": 5, "d": 1}
	got := ranked(m, 3)
	assert.Equal(t, []keyCount{{"c", 5}, {"a", 2}, {"b", 2}}, got)
}
