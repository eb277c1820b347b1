package services

import (
	"sort"

	"github.com/gita-search-api/internal/models"
)

// MergeHits concatenates per-collection hits in the given order and sorts them
// ascending by distance. The sort is stable, so on equal distance the hit from
// the earlier group comes first.
//
// Distances from different collections are compared as-is, without any
// per-collection normalization.
func MergeHits(groups ...[]models.SearchHit) []models.SearchHit {
	total := 0
	for _, g := range groups {
		total += len(g)
	}

	merged := make([]models.SearchHit, 0, total)
	for _, g := range groups {
		merged = append(merged, g...)
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Distance < merged[j].Distance
	})
	return merged
}

// MergeBest returns the minimum-distance hit across all groups. The first hit
// in concatenation order wins ties. ok is false when every group is empty.
func MergeBest(groups ...[]models.SearchHit) (best models.SearchHit, ok bool) {
	for _, g := range groups {
		for _, hit := range g {
			if !ok || hit.Distance < best.Distance {
				best, ok = hit, true
			}
		}
	}
	return best, ok
}
