package catalog

import "github.com/AgriSeed/agriseed-cms-backend/models"

// Filter keeps the products that satisfy every constrained facet. Within a
// facet any selected value matches. The input slice is never modified and the
// relative order of kept products is preserved.
func Filter(products []models.Product, state FilterState) []models.Product {
	out := make([]models.Product, 0, len(products))
	if state.IsEmpty() {
		return append(out, products...)
	}

	categories := toSet(state.Categories)
	seasons := toSet(state.Seasons)
	difficulties := toSet(state.DifficultyLevels)

	for _, p := range products {
		if len(categories) > 0 && !categories[p.Category] {
			continue
		}
		if len(seasons) > 0 && !anyIn(p.Seasonality, seasons) {
			continue
		}
		if len(difficulties) > 0 && !difficulties[p.DifficultyLevel] {
			continue
		}
		if state.Availability != nil && p.Availability != *state.Availability {
			continue
		}
		if state.Featured != nil && p.Featured != *state.Featured {
			continue
		}
		out = append(out, p)
	}
	return out
}

func toSet[T comparable](values []T) map[T]bool {
	if len(values) == 0 {
		return nil
	}
	set := make(map[T]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}

func anyIn(tags models.SeasonList, set map[models.Season]bool) bool {
	for _, t := range tags {
		if set[t] {
			return true
		}
	}
	return false
}
