package services

import (
	"encoding/json"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/AgriSeed/agriseed-cms-backend/config"
	"github.com/AgriSeed/agriseed-cms-backend/models"
)

// LogActivityRequest contains the parameters for logging an activity
type LogActivityRequest struct {
	AdminID      uuid.UUID
	AdminEmail   string
	Action       string // created_product, updated_contact, ...
	ResourceType string // models.ResourceType*
	ResourceID   string
	ResourceName string
	Changes      map[string]any // {before: {...}, after: {...}}
	Status       string
	ErrorMessage string
	Context      *gin.Context // for IP and User-Agent
}

// BuildActivityLog turns a request into the row that gets persisted.
func BuildActivityLog(req LogActivityRequest) models.ActivityLog {
	var changesJSON []byte
	if req.Changes != nil {
		data, err := json.Marshal(req.Changes)
		if err != nil {
			config.Log.Warnw("[activity-log] failed to marshal changes", "action", req.Action, "error", err)
			data = []byte("{}")
		}
		changesJSON = data
	}

	status := req.Status
	if status == "" {
		status = models.StatusSuccess
	}

	userAgent := ""
	if req.Context != nil {
		userAgent = req.Context.GetHeader("User-Agent")
	}

	return models.ActivityLog{
		AdminID:      req.AdminID,
		AdminEmail:   req.AdminEmail,
		Action:       req.Action,
		ResourceType: req.ResourceType,
		ResourceID:   req.ResourceID,
		ResourceName: req.ResourceName,
		Changes:      changesJSON,
		Status:       status,
		ErrorMessage: req.ErrorMessage,
		IPAddress:    extractClientIP(req.Context),
		UserAgent:    userAgent,
	}
}

// LogActivity writes an admin action to activity_logs.
// Failures are logged and swallowed so they never fail the request.
func LogActivity(req LogActivityRequest) error {
	if req.AdminID == uuid.Nil {
		config.Log.Warnw("[activity-log] admin id is nil", "action", req.Action)
		return nil
	}
	if config.DB == nil {
		return nil
	}

	entry := BuildActivityLog(req)

	ctx, cancel := config.WithTimeout()
	defer cancel()

	if err := config.DB.WithContext(ctx).Create(&entry).Error; err != nil {
		config.Log.Errorw("[activity-log] failed to create activity log", "action", req.Action, "error", err)
		return nil
	}

	config.Log.Infow("[activity-log] recorded",
		"action", req.Action,
		"resource", req.ResourceType+"/"+req.ResourceID,
		"name", req.ResourceName,
		"admin", req.AdminEmail,
	)
	return nil
}

// extractClientIP prefers the first X-Forwarded-For hop, then X-Real-IP.
func extractClientIP(c *gin.Context) string {
	if c == nil || c.Request == nil {
		return ""
	}
	if forwardedFor := c.GetHeader("X-Forwarded-For"); forwardedFor != "" {
		first, _, _ := strings.Cut(forwardedFor, ",")
		return strings.TrimSpace(first)
	}
	if realIP := c.GetHeader("X-Real-IP"); realIP != "" {
		return realIP
	}
	return c.RemoteIP()
}

// CreateChanges builds the before/after changes map
func CreateChanges(before, after any) map[string]any {
	return map[string]any{
		"before": before,
		"after":  after,
	}
}
