package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	DeviceDesktop = "desktop"
	DeviceMobile  = "mobile"
	DeviceTablet  = "tablet"
	DeviceBot     = "bot"
)

// VisitorLog is one page view reported by the site.
type VisitorLog struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	VisitorID  string    `json:"visitor_id" gorm:"not null;index"`
	Path       string    `json:"path" gorm:"not null;index"`
	Referrer   string    `json:"referrer"`
	UserAgent  string    `json:"user_agent"`
	DeviceType string    `json:"device_type" gorm:"not null;index"`
	IPAddress  string    `json:"ip_address"`
	CreatedAt  time.Time `json:"created_at" gorm:"not null;index:,sort:desc"`
}

// BeforeCreate hook - auto-generate UUID v7
func (v *VisitorLog) BeforeCreate(tx *gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (VisitorLog) TableName() string {
	return "visitor_logs"
}

type RecordVisitRequest struct {
	Path     string `json:"path" binding:"required,max=512" example:"/products/hd-2967-wheat"`
	Referrer string `json:"referrer" binding:"omitempty,max=1024"`
}

type DailyVisits struct {
	Date   string `json:"date"`
	Visits int    `json:"visits"`
}

type PageVisits struct {
	Path   string `json:"path"`
	Visits int    `json:"visits"`
}

type DeviceBreakdown struct {
	DeviceType string  `json:"device_type"`
	Visits     int     `json:"visits"`
	Percentage float64 `json:"percentage"`
}

type ReferrerVisits struct {
	Host   string `json:"host"`
	Visits int    `json:"visits"`
}

// VisitorSummary is the admin analytics view over a date range.
type VisitorSummary struct {
	From           time.Time         `json:"from"`
	To             time.Time         `json:"to"`
	TotalVisits    int               `json:"total_visits"`
	UniqueVisitors int               `json:"unique_visitors"`
	Daily          []DailyVisits     `json:"daily"`
	TopPages       []PageVisits      `json:"top_pages"`
	Devices        []DeviceBreakdown `json:"devices"`
	TopReferrers   []ReferrerVisits  `json:"top_referrers"`
}

// DashboardOverview feeds the admin landing page.
type DashboardOverview struct {
	Products          int64 `json:"products"`
	AvailableProducts int64 `json:"available_products"`
	NewContacts       int64 `json:"new_contacts"`
	PublishedPosts    int64 `json:"published_posts"`
	Testimonials      int64 `json:"testimonials"`
	VisitsLast7Days   int64 `json:"visits_last_7_days"`
}
