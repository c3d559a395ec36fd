package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	PostStatusPublished = "Published"
	PostStatusDraft     = "Draft"
)

// TagsList is stored as a JSONB array of strings.
type TagsList []string

type BlogPost struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Slug        string    `json:"slug" gorm:"uniqueIndex;not null"`
	Title       string    `json:"title" gorm:"not null"`
	Excerpt     string    `json:"excerpt"`
	Content     string    `json:"content" gorm:"type:text;not null"`
	Author      string    `json:"author"`
	Tags        TagsList  `json:"tags" gorm:"type:jsonb;not null;default:'[]'"`
	CoverImage  string    `json:"cover_image"`
	Status      string    `json:"status" gorm:"not null;check:status IN ('Published', 'Draft');index"`
	PublishedAt time.Time `json:"published_at" gorm:"index:,sort:desc"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// BeforeCreate hook - auto-generate UUID v7
func (b *BlogPost) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.Must(uuid.NewV7())
	}
	if b.Status == "" {
		b.Status = PostStatusPublished
	}
	if b.Tags == nil {
		b.Tags = TagsList{}
	}
	return nil
}

func (BlogPost) TableName() string {
	return "blog_posts"
}

type UpdatePostStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=Published Draft"`
}

// BlogPostSummary is the list-page shape (no body).
type BlogPostSummary struct {
	ID          uuid.UUID `json:"id"`
	Slug        string    `json:"slug"`
	Title       string    `json:"title"`
	Excerpt     string    `json:"excerpt"`
	Author      string    `json:"author"`
	Tags        []string  `json:"tags"`
	CoverImage  string    `json:"cover_image"`
	PublishedAt time.Time `json:"published_at"`
}

func (b BlogPost) ToSummary() BlogPostSummary {
	tags := []string(b.Tags)
	if tags == nil {
		tags = []string{}
	}
	return BlogPostSummary{
		ID:          b.ID,
		Slug:        b.Slug,
		Title:       b.Title,
		Excerpt:     b.Excerpt,
		Author:      b.Author,
		Tags:        tags,
		CoverImage:  b.CoverImage,
		PublishedAt: b.PublishedAt,
	}
}

func (t *TagsList) Scan(value interface{}) error {
	if value == nil {
		*t = make(TagsList, 0)
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan TagsList")
	}
	return json.Unmarshal(bytes, t)
}

func (t TagsList) Value() (driver.Value, error) {
	if t == nil {
		return json.Marshal([]string{})
	}
	return json.Marshal(t)
}
