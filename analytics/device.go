package analytics

import (
	"strings"

	"github.com/AgriSeed/agriseed-cms-backend/models"
)

var botMarkers = []string{"bot", "crawler", "spider", "slurp", "facebookexternalhit", "headless", "lighthouse"}

// ClassifyDevice buckets a user agent into bot, tablet, mobile or desktop.
// Tablets are checked before phones because Android tablets omit "mobile".
func ClassifyDevice(userAgent string) string {
	ua := strings.ToLower(userAgent)

	for _, marker := range botMarkers {
		if strings.Contains(ua, marker) {
			return models.DeviceBot
		}
	}
	if strings.Contains(ua, "ipad") || strings.Contains(ua, "tablet") ||
		(strings.Contains(ua, "android") && !strings.Contains(ua, "mobile")) {
		return models.DeviceTablet
	}
	if strings.Contains(ua, "mobile") || strings.Contains(ua, "iphone") || strings.Contains(ua, "android") {
		return models.DeviceMobile
	}
	return models.DeviceDesktop
}
