package catalog

import "github.com/AgriSeed/agriseed-cms-backend/models"

// ComputeStats counts the catalog in a single pass over all. A product tagged
// with the same season twice is still counted once for that season.
func ComputeStats(all, filtered []models.Product) FilterStats {
	stats := FilterStats{
		Total:            len(all),
		Filtered:         len(filtered),
		Categories:       make(map[models.ProductCategory]int),
		Seasons:          make(map[models.Season]int),
		DifficultyLevels: make(map[models.DifficultyLevel]int),
	}

	for _, p := range all {
		if p.Availability {
			stats.Available++
		}
		if p.Featured {
			stats.Featured++
		}
		stats.Categories[p.Category]++
		stats.DifficultyLevels[p.DifficultyLevel]++

		seen := make(map[models.Season]struct{}, len(p.Seasonality))
		for _, s := range p.Seasonality {
			if _, dup := seen[s]; dup {
				continue
			}
			seen[s] = struct{}{}
			stats.Seasons[s]++
		}
	}
	return stats
}

// Apply runs filter, sort and stats in the order every listing needs them.
func Apply(all []models.Product, state FilterState, spec SortSpec) ([]models.Product, FilterStats) {
	filtered := Filter(all, state)
	return Sort(filtered, spec), ComputeStats(all, filtered)
}
