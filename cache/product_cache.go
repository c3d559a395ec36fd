package cache

import (
	"sync"
	"time"

	"github.com/AgriSeed/agriseed-cms-backend/models"
)

const DefaultTTL = 5 * time.Minute

// ── Catalog snapshot ─────────────────────────────────────────────────────────
// The storefront filters and sorts in memory, so it reads the full product
// list from here and only hits Postgres when the snapshot is stale.

type ProductSnapshot struct {
	mu        sync.RWMutex
	ttl       time.Duration
	now       func() time.Time
	products  []models.Product
	fetchedAt time.Time
	loaded    bool
}

func NewProductSnapshot(ttl time.Duration) *ProductSnapshot {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &ProductSnapshot{ttl: ttl, now: time.Now}
}

// Get returns a copy of the cached products if still fresh.
func (s *ProductSnapshot) Get() ([]models.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.loaded || s.now().Sub(s.fetchedAt) >= s.ttl {
		return nil, false
	}
	out := make([]models.Product, len(s.products))
	copy(out, s.products)
	return out, true
}

func (s *ProductSnapshot) Set(products []models.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = make([]models.Product, len(products))
	copy(s.products, products)
	s.fetchedAt = s.now()
	s.loaded = true
}

func (s *ProductSnapshot) SetTTL(ttl time.Duration) {
	if ttl <= 0 {
		return
	}
	s.mu.Lock()
	s.ttl = ttl
	s.mu.Unlock()
}

// Invalidate drops the snapshot. Call on any product create/update/delete.
func (s *ProductSnapshot) Invalidate() {
	s.mu.Lock()
	s.products = nil
	s.loaded = false
	s.mu.Unlock()
}

// Products is the process-wide snapshot shared by site and CMS handlers.
var Products = NewProductSnapshot(DefaultTTL)
