package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	ContactStatusNew      = "new"
	ContactStatusRead     = "read"
	ContactStatusReplied  = "replied"
	ContactStatusArchived = "archived"
)

var ContactStatuses = []string{ContactStatusNew, ContactStatusRead, ContactStatusReplied, ContactStatusArchived}

// ContactMessage is a lead captured by the public contact form.
type ContactMessage struct {
	ID              uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name            string    `json:"name" gorm:"not null"`
	Email           string    `json:"email" gorm:"not null;index"`
	Phone           string    `json:"phone"`
	Subject         string    `json:"subject"`
	Message         string    `json:"message" gorm:"type:text;not null"`
	ProductInterest string    `json:"product_interest"`
	Status          string    `json:"status" gorm:"not null;index;check:status IN ('new', 'read', 'replied', 'archived')"`
	IPAddress       string    `json:"ip_address"`
	CreatedAt       time.Time `json:"created_at" gorm:"autoCreateTime;index:,sort:desc"`
	UpdatedAt       time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// BeforeCreate hook - auto-generate UUID v7
func (m *ContactMessage) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.Must(uuid.NewV7())
	}
	if m.Status == "" {
		m.Status = ContactStatusNew
	}
	return nil
}

func (ContactMessage) TableName() string {
	return "contact_messages"
}

type ContactRequest struct {
	Name            string `json:"name" binding:"required,max=120" example:"Sunita Devi"`
	Email           string `json:"email" binding:"required,email" example:"sunita@example.com"`
	Phone           string `json:"phone" binding:"omitempty,max=20" example:"+91 98765 43210"`
	Subject         string `json:"subject" binding:"omitempty,max=200" example:"Bulk order"`
	Message         string `json:"message" binding:"required,min=5,max=5000"`
	ProductInterest string `json:"product_interest" binding:"omitempty,max=200" example:"HD-2967 Wheat"`
}

type UpdateContactStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=new read replied archived"`
}

type ContactStats struct {
	Total    int            `json:"total"`
	ByStatus map[string]int `json:"by_status"`
}
