// Package catalog filters, orders and summarises the seed catalog in memory.
//
// Everything here is a pure function over a product slice: handlers load the
// catalog snapshot, derive a FilterState and SortSpec from the request, and
// re-run the engine on every request. Nothing in the package holds state.
package catalog

import (
	"strings"

	"github.com/AgriSeed/agriseed-cms-backend/models"
)

// FilterState is the set of active facet constraints. Empty sets and nil
// booleans mean the facet is unconstrained.
type FilterState struct {
	Categories       []models.ProductCategory `json:"categories"`
	Seasons          []models.Season          `json:"seasons"`
	DifficultyLevels []models.DifficultyLevel `json:"difficulty_levels"`
	Availability     *bool                    `json:"availability,omitempty"`
	Featured         *bool                    `json:"featured,omitempty"`
}

// IsEmpty reports whether no facet is constrained.
func (f FilterState) IsEmpty() bool {
	return len(f.Categories) == 0 &&
		len(f.Seasons) == 0 &&
		len(f.DifficultyLevels) == 0 &&
		f.Availability == nil &&
		f.Featured == nil
}

// SortField names the product attribute a listing is ordered by.
type SortField string

const (
	SortByName      SortField = "name"
	SortByCategory  SortField = "category"
	SortByCreatedAt SortField = "createdAt"
	SortByFeatured  SortField = "featured"
)

// SortDirection is asc or desc.
type SortDirection string

const (
	Ascending  SortDirection = "asc"
	Descending SortDirection = "desc"
)

// SortSpec is a field plus direction.
type SortSpec struct {
	Field     SortField     `json:"field"`
	Direction SortDirection `json:"direction"`
}

// DefaultSort lists the newest products first.
var DefaultSort = SortSpec{Field: SortByCreatedAt, Direction: Descending}

// ParseSortField accepts the public query names, case-insensitively.
// "newest" is kept as an alias of createdAt for old links.
func ParseSortField(s string) (SortField, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "name":
		return SortByName, true
	case "category":
		return SortByCategory, true
	case "createdat", "created_at", "newest":
		return SortByCreatedAt, true
	case "featured":
		return SortByFeatured, true
	}
	return "", false
}

// ParseSortDirection accepts asc/desc and their long forms, case-insensitively.
func ParseSortDirection(s string) (SortDirection, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "asc", "ascending":
		return Ascending, true
	case "desc", "descending":
		return Descending, true
	}
	return "", false
}

// Normalize maps aliases and any casing onto the canonical constants. The
// bool is false when either part is unknown.
func (s SortSpec) Normalize() (SortSpec, bool) {
	field, okField := ParseSortField(string(s.Field))
	dir, okDir := ParseSortDirection(string(s.Direction))
	if !okField || !okDir {
		return SortSpec{}, false
	}
	return SortSpec{Field: field, Direction: dir}, true
}

// Valid reports whether both parts of the spec are known values.
func (s SortSpec) Valid() bool {
	_, ok := s.Normalize()
	return ok
}

// FilterStats summarises a catalog for the filter sidebar.
//
// Total, Available, Featured and the three frequency tables describe the full
// catalog so facet counts stay put while the visitor narrows the list;
// Filtered is the size of the current result.
type FilterStats struct {
	Total            int                            `json:"total"`
	Filtered         int                            `json:"filtered"`
	Available        int                            `json:"available"`
	Featured         int                            `json:"featured"`
	Categories       map[models.ProductCategory]int `json:"categories"`
	Seasons          map[models.Season]int          `json:"seasons"`
	DifficultyLevels map[models.DifficultyLevel]int `json:"difficulty_levels"`
}
