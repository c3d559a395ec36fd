package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ═══════════════════════════════════════════════════════════
// Catalog enumerations
// ═══════════════════════════════════════════════════════════

type (
	ProductCategory string
	Season          string
	DifficultyLevel string
)

const (
	CategoryVegetable ProductCategory = "Vegetable"
	CategoryWheat     ProductCategory = "Wheat"
	CategoryRice      ProductCategory = "Rice"
	CategoryMaize     ProductCategory = "Maize"
	CategoryCotton    ProductCategory = "Cotton"
	CategoryPulses    ProductCategory = "Pulses"
	CategoryOilseeds  ProductCategory = "Oilseeds"
	CategoryFodder    ProductCategory = "Fodder"
)

const (
	SeasonKharif Season = "Kharif"
	SeasonRabi   Season = "Rabi"
	SeasonZaid   Season = "Zaid"
)

const (
	DifficultyEasy     DifficultyLevel = "Easy"
	DifficultyModerate DifficultyLevel = "Moderate"
	DifficultyAdvanced DifficultyLevel = "Advanced"
)

var (
	ProductCategories = []ProductCategory{
		CategoryVegetable, CategoryWheat, CategoryRice, CategoryMaize,
		CategoryCotton, CategoryPulses, CategoryOilseeds, CategoryFodder,
	}
	Seasons          = []Season{SeasonKharif, SeasonRabi, SeasonZaid}
	DifficultyLevels = []DifficultyLevel{DifficultyEasy, DifficultyModerate, DifficultyAdvanced}
)

func (c ProductCategory) Valid() bool {
	for _, known := range ProductCategories {
		if c == known {
			return true
		}
	}
	return false
}

func (s Season) Valid() bool {
	for _, known := range Seasons {
		if s == known {
			return true
		}
	}
	return false
}

func (d DifficultyLevel) Valid() bool {
	for _, known := range DifficultyLevels {
		if d == known {
			return true
		}
	}
	return false
}

// ═══════════════════════════════════════════════════════════
// JSONB Type Definitions
// ═══════════════════════════════════════════════════════════

// SeasonList is stored as a JSONB array of season tags.
type SeasonList []Season

// SowingGuide holds the agronomy details printed on the product guide PDF.
type SowingGuide struct {
	SowingWindow  string `json:"sowing_window" example:"June - July"`
	SeedRate      string `json:"seed_rate" example:"40 kg/acre"`
	Spacing       string `json:"spacing" example:"22.5 cm rows"`
	MaturityDays  int    `json:"maturity_days" example:"120"`
	ExpectedYield string `json:"expected_yield" example:"22-25 q/acre"`
	Notes         string `json:"notes,omitempty"`
}

// ═══════════════════════════════════════════════════════════
// Main Product Model (GORM)
// ═══════════════════════════════════════════════════════════

type Product struct {
	ID              uuid.UUID       `json:"id" gorm:"type:uuid;primaryKey"`
	Slug            string          `json:"slug" gorm:"uniqueIndex;not null"`
	Name            string          `json:"name" gorm:"not null;index"`
	Description     string          `json:"description" gorm:"not null;default:''"`
	Category        ProductCategory `json:"category" gorm:"not null;index"`
	Seasonality     SeasonList      `json:"seasonality" gorm:"type:jsonb;not null;default:'[]'"`
	DifficultyLevel DifficultyLevel `json:"difficulty_level" gorm:"not null;index"`
	Availability    bool            `json:"availability" gorm:"not null;index"`
	Featured        bool            `json:"featured" gorm:"not null;index"`
	ImageURL        string          `json:"image_url"`
	Guide           SowingGuide     `json:"guide" gorm:"type:jsonb;not null;default:'{}'"`
	SEOTitle        string          `json:"seo_title"`
	SEODescription  string          `json:"seo_description"`
	Views           int             `json:"views" gorm:"default:0;index:idx_products_views,sort:desc"`
	CreatedAt       time.Time       `json:"created_at" gorm:"autoCreateTime;index"`
	UpdatedAt       time.Time       `json:"updated_at" gorm:"autoUpdateTime"`
}

// BeforeCreate hook - auto-generate UUID v7
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.Must(uuid.NewV7())
	}
	if p.Seasonality == nil {
		p.Seasonality = SeasonList{}
	}
	return nil
}

func (Product) TableName() string {
	return "products"
}

// ═══════════════════════════════════════════════════════════
// Request Models
// ═══════════════════════════════════════════════════════════

type ProductRequest struct {
	Name            string          `json:"name" binding:"required" example:"HD-2967 Wheat"`
	Slug            string          `json:"slug" example:"hd-2967-wheat"`
	Description     string          `json:"description" binding:"required" example:"High-yield rust resistant wheat."`
	Category        ProductCategory `json:"category" binding:"required" example:"Wheat"`
	Seasonality     []Season        `json:"seasonality" binding:"required,min=1" example:"['Rabi']"`
	DifficultyLevel DifficultyLevel `json:"difficulty_level" binding:"required" example:"Easy"`
	Availability    *bool           `json:"availability" example:"true"`
	Featured        bool            `json:"featured" example:"false"`
	ImageURL        string          `json:"image_url"`
	Guide           SowingGuide     `json:"guide"`
	SEOTitle        string          `json:"seo_title"`
	SEODescription  string          `json:"seo_description"`
}

type UpdateProductRequest struct {
	Name            *string          `json:"name"`
	Slug            *string          `json:"slug"`
	Description     *string          `json:"description"`
	Category        *ProductCategory `json:"category"`
	Seasonality     *[]Season        `json:"seasonality"`
	DifficultyLevel *DifficultyLevel `json:"difficulty_level"`
	Availability    *bool            `json:"availability"`
	Featured        *bool            `json:"featured"`
	ImageURL        *string          `json:"image_url"`
	Guide           *SowingGuide     `json:"guide"`
	SEOTitle        *string          `json:"seo_title"`
	SEODescription  *string          `json:"seo_description"`
}

// Validate checks enumerations that binding tags cannot express.
func (r ProductRequest) Validate() error {
	return validateProductEnums(&r.Category, &r.Seasonality, &r.DifficultyLevel)
}

func (r UpdateProductRequest) Validate() error {
	return validateProductEnums(r.Category, r.Seasonality, r.DifficultyLevel)
}

func validateProductEnums(category *ProductCategory, seasons *[]Season, difficulty *DifficultyLevel) error {
	if category != nil && !category.Valid() {
		return errors.New("invalid category: " + string(*category))
	}
	if seasons != nil {
		if len(*seasons) == 0 {
			return errors.New("at least one season is required")
		}
		for _, s := range *seasons {
			if !s.Valid() {
				return errors.New("invalid season: " + string(s))
			}
		}
	}
	if difficulty != nil && !difficulty.Valid() {
		return errors.New("invalid difficulty_level: " + string(*difficulty))
	}
	return nil
}

// ═══════════════════════════════════════════════════════════
// Response Models
// ═══════════════════════════════════════════════════════════

// SiteProductResponse is the thin card shape used by listing pages.
type SiteProductResponse struct {
	ID              uuid.UUID       `json:"id"`
	Slug            string          `json:"slug"`
	Name            string          `json:"name"`
	Category        ProductCategory `json:"category"`
	Seasonality     []Season        `json:"seasonality"`
	DifficultyLevel DifficultyLevel `json:"difficulty_level"`
	Availability    bool            `json:"availability"`
	Featured        bool            `json:"featured"`
	ImageURL        string          `json:"image_url"`
	CreatedAt       time.Time       `json:"created_at"`
}

func (p Product) ToSiteResponse() SiteProductResponse {
	seasons := []Season(p.Seasonality)
	if seasons == nil {
		seasons = []Season{}
	}
	return SiteProductResponse{
		ID:              p.ID,
		Slug:            p.Slug,
		Name:            p.Name,
		Category:        p.Category,
		Seasonality:     seasons,
		DifficultyLevel: p.DifficultyLevel,
		Availability:    p.Availability,
		Featured:        p.Featured,
		ImageURL:        p.ImageURL,
		CreatedAt:       p.CreatedAt,
	}
}

// ═══════════════════════════════════════════════════════════
// JSONB Scanner/Valuer for GORM
// ═══════════════════════════════════════════════════════════

func (s *SeasonList) Scan(value interface{}) error {
	if value == nil {
		*s = make(SeasonList, 0)
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan SeasonList")
	}
	return json.Unmarshal(bytes, s)
}

func (s SeasonList) Value() (driver.Value, error) {
	if s == nil {
		return json.Marshal([]Season{})
	}
	return json.Marshal(s)
}

func (g *SowingGuide) Scan(value interface{}) error {
	if value == nil {
		*g = SowingGuide{}
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan SowingGuide")
	}
	return json.Unmarshal(bytes, g)
}

func (g SowingGuide) Value() (driver.Value, error) {
	return json.Marshal(g)
}
