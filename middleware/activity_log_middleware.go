package middleware

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/AgriSeed/agriseed-cms-backend/config"
	"github.com/AgriSeed/agriseed-cms-backend/models"
	"github.com/AgriSeed/agriseed-cms-backend/services"
)

// ════════════════════════════════════════════════════════════
// Configuration Maps
// ════════════════════════════════════════════════════════════

// pathToResourceType maps URL segments to resource types
var pathToResourceType = map[string]string{
	"products":     models.ResourceTypeProduct,
	"blog":         models.ResourceTypeBlogPost,
	"posts":        models.ResourceTypeBlogPost,
	"testimonials": models.ResourceTypeTestimonial,
	"contacts":     models.ResourceTypeContact,
}

// resourceTypeToNameField maps resource types to their display field
var resourceTypeToNameField = map[string]string{
	models.ResourceTypeProduct:     "name",
	models.ResourceTypeBlogPost:    "title",
	models.ResourceTypeTestimonial: "name",
	models.ResourceTypeContact:     "email",
}

var methodToActionVerb = map[string]string{
	http.MethodPost:   "created",
	http.MethodPatch:  "updated",
	http.MethodPut:    "updated",
	http.MethodDelete: "deleted",
}

// FetchResource loads the current state of a resource for before/after
// snapshots. Tests swap it out.
var FetchResource = fetchResourceFromDB

// ════════════════════════════════════════════════════════════
// Activity Logging Middleware
// ════════════════════════════════════════════════════════════

// ActivityLoggingMiddleware logs admin mutations with before/after snapshots.
// Must run after AdminAuthMiddleware.
func ActivityLoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodGet {
			c.Next()
			return
		}

		adminID, err := uuid.Parse(c.GetString("adminID"))
		adminEmail := c.GetString("adminEmail")
		if err != nil || adminEmail == "" {
			config.Log.Warnw("[activity-logging] admin info not in context", "path", c.Request.URL.Path)
			c.Next()
			return
		}

		resourceType := extractResourceType(c.Request.URL.Path)
		actionVerb := actionVerbFor(c.Request.Method, c.Request.URL.Path)
		if resourceType == "" || actionVerb == "" {
			config.Log.Debugw("[activity-logging] not a tracked mutation", "method", c.Request.Method, "path", c.Request.URL.Path)
			c.Next()
			return
		}

		action := actionVerb + "_" + resourceType
		resourceID := c.Param("id")

		var before any
		if resourceID != "" {
			before = FetchResource(resourceType, resourceID)
		}
		resourceName := extractResourceName(resourceType, before)

		c.Next()

		statusCode := c.Writer.Status()
		if statusCode >= 200 && statusCode < 300 {
			// Handlers that create a resource publish its id for the after snapshot.
			if createdID := c.GetString("createdResourceID"); createdID != "" {
				resourceID = createdID
			}

			var after any
			if resourceID != "" && actionVerb != "deleted" {
				after = FetchResource(resourceType, resourceID)
			}
			if name := extractResourceName(resourceType, after); name != "" {
				resourceName = name
			}

			_ = services.LogActivity(services.LogActivityRequest{
				AdminID:      adminID,
				AdminEmail:   adminEmail,
				Action:       action,
				ResourceType: resourceType,
				ResourceID:   resourceID,
				ResourceName: resourceName,
				Changes:      services.CreateChanges(before, after),
				Status:       models.StatusSuccess,
				Context:      c,
			})
			return
		}

		_ = services.LogActivity(services.LogActivityRequest{
			AdminID:      adminID,
			AdminEmail:   adminEmail,
			Action:       action,
			ResourceType: resourceType,
			ResourceID:   resourceID,
			ResourceName: resourceName,
			Status:       models.StatusFailed,
			ErrorMessage: "Request failed with status " + strconv.Itoa(statusCode) + " " + http.StatusText(statusCode),
			Context:      c,
		})
	}
}

// ════════════════════════════════════════════════════════════
// Helper Functions
// ════════════════════════════════════════════════════════════

// extractResourceType walks the path from the end, skipping ids,
// e.g. "/admin/products/<uuid>/image" → "product"
func extractResourceType(path string) string {
	parts := strings.Split(path, "/")
	for i := len(parts) - 1; i >= 0; i-- {
		if isIDParam(parts[i]) {
			continue
		}
		if resourceType, ok := pathToResourceType[parts[i]]; ok {
			return resourceType
		}
	}
	return ""
}

func actionVerbFor(method, path string) string {
	if method == http.MethodPost && strings.HasSuffix(path, "/import") {
		return "imported"
	}
	if strings.HasSuffix(path, "/image") {
		if method == http.MethodDelete {
			return "removed_image"
		}
		return "uploaded_image"
	}
	return methodToActionVerb[method]
}

func isIDParam(segment string) bool {
	if segment == "" || segment == ":id" {
		return true
	}
	_, err := uuid.Parse(segment)
	return err == nil
}

func fetchResourceFromDB(resourceType, resourceID string) any {
	if config.DB == nil {
		return nil
	}
	switch resourceType {
	case models.ResourceTypeProduct:
		return fetchFirst[models.Product](resourceType, resourceID)
	case models.ResourceTypeBlogPost:
		return fetchFirst[models.BlogPost](resourceType, resourceID)
	case models.ResourceTypeTestimonial:
		return fetchFirst[models.Testimonial](resourceType, resourceID)
	case models.ResourceTypeContact:
		return fetchFirst[models.ContactMessage](resourceType, resourceID)
	default:
		return nil
	}
}

func fetchFirst[T any](resourceType, resourceID string) any {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	var row T
	if err := config.DB.WithContext(ctx).First(&row, "id = ?", resourceID).Error; err != nil {
		config.Log.Debugw("[activity-logging] snapshot lookup failed", "resource", resourceType, "id", resourceID, "error", err)
		return nil
	}
	return row
}

// extractResourceName reads the display field out of a snapshot
func extractResourceName(resourceType string, obj any) string {
	if obj == nil {
		return ""
	}
	fieldName := resourceTypeToNameField[resourceType]
	if fieldName == "" {
		return ""
	}

	data, err := json.Marshal(obj)
	if err != nil {
		return ""
	}
	var resourceMap map[string]any
	if err := json.Unmarshal(data, &resourceMap); err != nil {
		return ""
	}

	switch val := resourceMap[fieldName].(type) {
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return ""
	}
}
