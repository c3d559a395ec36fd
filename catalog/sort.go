package catalog

import (
	"slices"
	"strings"

	"github.com/AgriSeed/agriseed-cms-backend/models"
)

// Sort returns a new slice ordered by spec. The sort is stable: products with
// equal keys keep their input order in both directions. An unknown field
// compares everything as equal, which leaves the input order untouched.
func Sort(products []models.Product, spec SortSpec) []models.Product {
	out := slices.Clone(products)
	if out == nil {
		out = []models.Product{}
	}

	if canonical, ok := spec.Normalize(); ok {
		spec = canonical
	}
	cmp := comparator(spec.Field)
	sign := 1
	if spec.Direction == Descending {
		sign = -1
	}

	slices.SortStableFunc(out, func(a, b models.Product) int {
		return sign * cmp(a, b)
	})
	return out
}

func comparator(field SortField) func(a, b models.Product) int {
	switch field {
	case SortByName:
		return func(a, b models.Product) int {
			return compareFold(a.Name, b.Name)
		}
	case SortByCategory:
		return func(a, b models.Product) int {
			return compareFold(string(a.Category), string(b.Category))
		}
	case SortByCreatedAt:
		return func(a, b models.Product) int {
			return a.CreatedAt.Compare(b.CreatedAt)
		}
	case SortByFeatured:
		return func(a, b models.Product) int {
			return boolRank(a.Featured) - boolRank(b.Featured)
		}
	default:
		return func(models.Product, models.Product) int { return 0 }
	}
}

func compareFold(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}

func boolRank(b bool) int {
	if b {
		return 1
	}
	return 0
}
