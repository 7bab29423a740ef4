package services

import (
	"cmp"
	"slices"

	"github.com/custodia-labs/spatial-cli/internal/core/domain"
)

// ZoneContains reports whether the entity lies inside the zone.
// Entities exactly on the sphere surface are inside.
func ZoneContains(zone domain.Zone, entity domain.Entity) bool {
	return entity.Position.Distance(zone.Center) <= zone.Radius
}

// EntitiesInZone returns the entities inside the zone paired with their
// distance to its centre, nearest first. Equidistant entities keep their
// input order.
func EntitiesInZone(zone domain.Zone, entities []domain.Entity) []domain.Match {
	matches := make([]domain.Match, 0)
	for i := range entities {
		d := entities[i].Position.Distance(zone.Center)
		if d <= zone.Radius {
			matches = append(matches, domain.Match{Entity: entities[i], Distance: d})
		}
	}
	sortByDistance(matches)
	return matches
}

// EntitiesNear returns the candidates within threshold of the target,
// nearest first. The target is excluded by ID, so other entities sharing
// its position are still reported. Equidistant entities keep their input
// order.
func EntitiesNear(target domain.Entity, candidates []domain.Entity, threshold float64) []domain.Match {
	matches := make([]domain.Match, 0)
	for i := range candidates {
		if candidates[i].ID == target.ID {
			continue
		}
		d := candidates[i].Position.Distance(target.Position)
		if d <= threshold {
			matches = append(matches, domain.Match{Entity: candidates[i], Distance: d})
		}
	}
	sortByDistance(matches)
	return matches
}

func sortByDistance(matches []domain.Match) {
	slices.SortStableFunc(matches, func(a, b domain.Match) int {
		return cmp.Compare(a.Distance, b.Distance)
	})
}
