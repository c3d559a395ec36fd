package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Testimonial is a farmer's quote shown on the home page.
type Testimonial struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	Location  string    `json:"location"`
	Crop      string    `json:"crop"`
	Quote     string    `json:"quote" gorm:"type:text;not null"`
	Rating    int       `json:"rating" gorm:"not null;check:rating BETWEEN 1 AND 5"`
	Featured  bool      `json:"featured" gorm:"not null;index"`
	Published bool      `json:"published" gorm:"not null;index"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// BeforeCreate hook - auto-generate UUID v7
func (t *Testimonial) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (Testimonial) TableName() string {
	return "testimonials"
}

type TestimonialRequest struct {
	Name      string `json:"name" binding:"required" example:"Ramesh Patil"`
	Location  string `json:"location" example:"Nashik, Maharashtra"`
	Crop      string `json:"crop" example:"Onion"`
	Quote     string `json:"quote" binding:"required"`
	Rating    int    `json:"rating" binding:"required,min=1,max=5" example:"5"`
	Featured  bool   `json:"featured"`
	Published *bool  `json:"published"`
}

type UpdateTestimonialRequest struct {
	Name      *string `json:"name" binding:"omitempty,min=1"`
	Location  *string `json:"location"`
	Crop      *string `json:"crop"`
	Quote     *string `json:"quote" binding:"omitempty,min=1"`
	Rating    *int    `json:"rating" binding:"omitempty,min=1,max=5"`
	Featured  *bool   `json:"featured"`
	Published *bool   `json:"published"`
}
