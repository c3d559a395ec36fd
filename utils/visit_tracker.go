// ════════════════════════════════════════════════════════════
// Path: utils/visit_tracker.go
// Record and read site page views
// ════════════════════════════════════════════════════════════

package utils

import (
	"context"
	"fmt"
	"time"

	"github.com/AgriSeed/agriseed-cms-backend/analytics"
	"github.com/AgriSeed/agriseed-cms-backend/config"
	"github.com/AgriSeed/agriseed-cms-backend/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// LogVisit records a page view to visitor_logs
func LogVisit(c *gin.Context, visitorID string, req models.RecordVisitRequest) error {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	userAgent := c.GetHeader("User-Agent")
	deviceType := analytics.ClassifyDevice(userAgent)

	query := `
		INSERT INTO visitor_logs (
			id, visitor_id, path, referrer, user_agent, device_type, ip_address, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
	`

	_, err := config.PgPool.Exec(ctx, query,
		uuid.Must(uuid.NewV7()).String(),
		visitorID,
		req.Path,
		req.Referrer,
		userAgent,
		deviceType,
		c.ClientIP(),
	)
	if err != nil {
		config.Log.Errorw("[visits.log] ❌ failed to record visit", "path", req.Path, "error", err)
		return err
	}

	config.Log.Debugw("[visits.log] ✅ visit recorded", "path", req.Path, "device", deviceType)
	return nil
}

// FetchVisits loads every visit in [from, to] for aggregation
func FetchVisits(ctx context.Context, from, to time.Time) ([]models.VisitorLog, error) {
	query := `
		SELECT visitor_id, path, COALESCE(referrer, ''), device_type, created_at
		FROM visitor_logs
		WHERE created_at >= $1 AND created_at <= $2
		ORDER BY created_at ASC
	`

	rows, err := config.PgPool.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("query visitor_logs: %w", err)
	}
	defer rows.Close()

	visits := make([]models.VisitorLog, 0)
	for rows.Next() {
		var v models.VisitorLog
		if err := rows.Scan(&v.VisitorID, &v.Path, &v.Referrer, &v.DeviceType, &v.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan visitor_logs: %w", err)
		}
		visits = append(visits, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate visitor_logs: %w", err)
	}
	return visits, nil
}

// CountVisitsSince is the cheap count used by the dashboard
func CountVisitsSince(ctx context.Context, since time.Time) (int64, error) {
	var count int64
	err := config.PgPool.QueryRow(ctx, `SELECT COUNT(*) FROM visitor_logs WHERE created_at >= $1`, since).Scan(&count)
	return count, err
}
