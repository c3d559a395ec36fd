package product_controller

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/AgriSeed/agriseed-cms-backend/cache"
	"github.com/AgriSeed/agriseed-cms-backend/config"
	"github.com/AgriSeed/agriseed-cms-backend/models"
)

var errSlugTaken = errors.New("slug already in use")

// ensureSlugFree rejects a slug held by another product.
func ensureSlugFree(ctx context.Context, slug string, exceptID uuid.UUID) error {
	var count int64
	query := config.DB.WithContext(ctx).Model(&models.Product{}).Where("slug = ?", slug)
	if exceptID != uuid.Nil {
		query = query.Where("id <> ?", exceptID)
	}
	if err := query.Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return errSlugTaken
	}
	return nil
}

func findProduct(ctx context.Context, id string) (*models.Product, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, gorm.ErrRecordNotFound
	}
	var product models.Product
	if err := config.DB.WithContext(ctx).First(&product, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// applyProductUpdate copies every field the request sets onto p.
func applyProductUpdate(p *models.Product, req models.UpdateProductRequest) {
	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.Description != nil {
		p.Description = *req.Description
	}
	if req.Category != nil {
		p.Category = *req.Category
	}
	if req.Seasonality != nil {
		p.Seasonality = models.SeasonList(*req.Seasonality)
	}
	if req.DifficultyLevel != nil {
		p.DifficultyLevel = *req.DifficultyLevel
	}
	if req.Availability != nil {
		p.Availability = *req.Availability
	}
	if req.Featured != nil {
		p.Featured = *req.Featured
	}
	if req.ImageURL != nil {
		p.ImageURL = *req.ImageURL
	}
	if req.Guide != nil {
		p.Guide = *req.Guide
	}
	if req.SEOTitle != nil {
		p.SEOTitle = *req.SEOTitle
	}
	if req.SEODescription != nil {
		p.SEODescription = *req.SEODescription
	}
}

func productFromRequest(req models.ProductRequest, slug string) models.Product {
	available := true
	if req.Availability != nil {
		available = *req.Availability
	}
	return models.Product{
		Slug:            slug,
		Name:            req.Name,
		Description:     req.Description,
		Category:        req.Category,
		Seasonality:     models.SeasonList(req.Seasonality),
		DifficultyLevel: req.DifficultyLevel,
		Availability:    available,
		Featured:        req.Featured,
		ImageURL:        req.ImageURL,
		Guide:           req.Guide,
		SEOTitle:        req.SEOTitle,
		SEODescription:  req.SEODescription,
	}
}

// catalogChanged drops the storefront snapshot after any product write.
func catalogChanged() {
	cache.Products.Invalidate()
}
