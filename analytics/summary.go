// Package analytics turns raw visitor log rows into the admin dashboard view.
package analytics

import (
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/AgriSeed/agriseed-cms-backend/models"
)

const topN = 10

// Summarize aggregates the visits that fall inside [from, to]. Days are UTC
// calendar days and every day in the range appears in Daily, zero-filled.
func Summarize(visits []models.VisitorLog, from, to time.Time) models.VisitorSummary {
	from, to = from.UTC(), to.UTC()
	summary := models.VisitorSummary{
		From:         from,
		To:           to,
		Daily:        []models.DailyVisits{},
		TopPages:     []models.PageVisits{},
		Devices:      []models.DeviceBreakdown{},
		TopReferrers: []models.ReferrerVisits{},
	}
	if to.Before(from) {
		return summary
	}

	perDay := make(map[string]int)
	perPage := make(map[string]int)
	perDevice := make(map[string]int)
	perReferrer := make(map[string]int)
	visitors := make(map[string]struct{})

	for _, v := range visits {
		at := v.CreatedAt.UTC()
		if at.Before(from) || at.After(to) {
			continue
		}
		summary.TotalVisits++
		if v.VisitorID != "" {
			visitors[v.VisitorID] = struct{}{}
		}
		perDay[at.Format(time.DateOnly)]++
		perPage[v.Path]++

		device := v.DeviceType
		if device == "" {
			device = models.DeviceDesktop
		}
		perDevice[device]++

		if host := referrerHost(v.Referrer); host != "" {
			perReferrer[host]++
		}
	}
	summary.UniqueVisitors = len(visitors)

	start := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	for day := start; !day.After(to); day = day.AddDate(0, 0, 1) {
		key := day.Format(time.DateOnly)
		summary.Daily = append(summary.Daily, models.DailyVisits{Date: key, Visits: perDay[key]})
	}

	for _, kv := range ranked(perPage, topN) {
		summary.TopPages = append(summary.TopPages, models.PageVisits{Path: kv.key, Visits: kv.count})
	}
	for _, kv := range ranked(perDevice, 0) {
		pct := 0.0
		if summary.TotalVisits > 0 {
			pct = float64(kv.count) / float64(summary.TotalVisits) * 100
		}
		summary.Devices = append(summary.Devices, models.DeviceBreakdown{DeviceType: kv.key, Visits: kv.count, Percentage: pct})
	}
	for _, kv := range ranked(perReferrer, topN) {
		summary.TopReferrers = append(summary.TopReferrers, models.ReferrerVisits{Host: kv.key, Visits: kv.count})
	}
	return summary
}

type keyCount struct {
	key   string
	count int
}

// ranked orders by count descending, then key ascending. limit <= 0 keeps all.
func ranked(m map[string]int, limit int) []keyCount {
	out := make([]keyCount, 0, len(m))
	for k, c := range m {
		out = append(out, keyCount{k, c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].count != out[j].count {
			return out[i].count > out[j].count
		}
		return out[i].key < out[j].key
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

func referrerHost(ref string) string {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return ""
	}
	u, err := url.Parse(ref)
	if err != nil || u.Host == "" {
		return ""
	}
	return strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
}
