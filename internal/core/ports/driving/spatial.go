package driving

import (
	"context"

	"github.com/custodia-labs/spatial-cli/internal/core/domain"
)

// SpatialService is the registry facade: append-only creation of zones and
// entities, listing, proximity queries, status and export.
type SpatialService interface {
	// CreateZone creates a zone. Returns domain.ErrAlreadyExists if the
	// name is taken and domain.ErrInvalidInput for a bad spec.
	CreateZone(ctx context.Context, spec domain.ZoneSpec) (*domain.Zone, error)

	// CreateEntity registers an entity. Entity names need not be unique.
	CreateEntity(ctx context.Context, spec domain.EntitySpec) (*domain.Entity, error)

	// ListZones returns zones in insertion order, optionally only active ones.
	ListZones(ctx context.Context, activeOnly bool) ([]domain.Zone, error)

	// ListEntities returns entities in insertion order.
	ListEntities(ctx context.Context) ([]domain.Entity, error)

	// FindEntitiesInZone returns the entities inside the named zone, nearest
	// first. An unknown zone yields an empty result, not an error.
	FindEntitiesInZone(ctx context.Context, zoneName string) ([]domain.Match, error)

	// ProximityCheck returns the entities within threshold of the named
	// entity, nearest first, excluding the entity itself. An unknown entity
	// yields an empty result, not an error.
	ProximityCheck(ctx context.Context, entityName string, threshold float64) ([]domain.Match, error)

	// Status returns summary counts and the storage location.
	Status(ctx context.Context) (*domain.Status, error)

	// Export returns a snapshot of every zone and entity.
	Export(ctx context.Context) (*domain.Export, error)
}
