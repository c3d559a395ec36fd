package services

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/AgriSeed/agriseed-cms-backend/cache"
	"github.com/AgriSeed/agriseed-cms-backend/config"
	"github.com/AgriSeed/agriseed-cms-backend/models"
)

// LoadCatalog returns every product, from the in-process snapshot when fresh.
// Handlers call through this variable so tests can swap the source.
var LoadCatalog = loadCatalogFromDB

func loadCatalogFromDB(ctx context.Context) ([]models.Product, error) {
	if products, ok := cache.Products.Get(); ok {
		return products, nil
	}

	var products []models.Product
	if err := config.DB.WithContext(ctx).Order("created_at DESC").Find(&products).Error; err != nil {
		return nil, err
	}
	cache.Products.Set(products)
	config.Log.Debugw("[catalog] snapshot refreshed", "products", len(products))
	return products, nil
}

// FindBySlug scans a catalog snapshot for slug.
func FindBySlug(products []models.Product, slug string) (models.Product, bool) {
	for _, p := range products {
		if p.Slug == slug {
			return p, true
		}
	}
	return models.Product{}, false
}

// IncrementProductViews bumps the counter in the background. The snapshot is
// left alone; views only surface in admin stats.
var IncrementProductViews = func(id string) {
	if config.DB == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		err := config.DB.WithContext(ctx).
			Model(&models.Product{}).
			Where("id = ?", id).
			UpdateColumn("views", gorm.Expr("views + 1")).Error
		if err != nil {
			config.Log.Warnw("[catalog] failed to increment views", "product_id", id, "error", err)
		}
	}()
}
