package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ActivityLog records one admin mutation of site content.
type ActivityLog struct {
	ID           uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	AdminID      uuid.UUID      `json:"admin_id" gorm:"type:uuid;not null;index:idx_activity_admin_date,sort:desc"`
	AdminEmail   string         `json:"admin_email" gorm:"not null"`
	Action       string         `json:"action" gorm:"not null;index"`                                             // created_product, updated_contact, ...
	ResourceType string         `json:"resource_type" gorm:"not null;index:idx_activity_resource_date,sort:desc"` // product, blog_post, contact
	ResourceID   string         `json:"resource_id" gorm:"not null;index"`
	ResourceName string         `json:"resource_name"`
	Changes      datatypes.JSON `json:"changes" gorm:"type:jsonb"` // {before: {...}, after: {...}}
	Status       string         `json:"status" gorm:"not null"`
	ErrorMessage string         `json:"error_message"`
	IPAddress    string         `json:"ip_address"`
	UserAgent    string         `json:"user_agent"`
	CreatedAt    time.Time      `json:"created_at" gorm:"autoCreateTime;index:idx_activity_admin_date,sort:desc;index:idx_activity_resource_date,sort:desc"`
}

// BeforeCreate hook - auto-generate UUID v7
func (al *ActivityLog) BeforeCreate(tx *gorm.DB) error {
	if al.ID == uuid.Nil {
		al.ID = uuid.Must(uuid.NewV7())
	}
	if al.Status == "" {
		al.Status = StatusSuccess
	}
	return nil
}

func (ActivityLog) TableName() string {
	return "activity_logs"
}

type ActivityLogResponse struct {
	ID           uuid.UUID      `json:"id"`
	AdminEmail   string         `json:"admin_email"`
	Action       string         `json:"action"`
	ResourceType string         `json:"resource_type"`
	ResourceID   string         `json:"resource_id"`
	ResourceName string         `json:"resource_name"`
	Changes      map[string]any `json:"changes"`
	Status       string         `json:"status"`
	ErrorMessage string         `json:"error_message,omitempty"`
	IPAddress    string         `json:"ip_address"`
	CreatedAt    time.Time      `json:"created_at"`
}

func (al *ActivityLog) ToResponse() ActivityLogResponse {
	changes := make(map[string]any)
	if al.Changes != nil {
		_ = json.Unmarshal(al.Changes, &changes)
	}

	return ActivityLogResponse{
		ID:           al.ID,
		AdminEmail:   al.AdminEmail,
		Action:       al.Action,
		ResourceType: al.ResourceType,
		ResourceID:   al.ResourceID,
		ResourceName: al.ResourceName,
		Changes:      changes,
		Status:       al.Status,
		ErrorMessage: al.ErrorMessage,
		IPAddress:    al.IPAddress,
		CreatedAt:    al.CreatedAt,
	}
}

const (
	ResourceTypeProduct     = "product"
	ResourceTypeBlogPost    = "blog_post"
	ResourceTypeTestimonial = "testimonial"
	ResourceTypeContact     = "contact"

	StatusSuccess = "success"
	StatusFailed  = "failed"
)
