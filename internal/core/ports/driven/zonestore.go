package driven

import (
	"context"

	"github.com/custodia-labs/spatial-cli/internal/core/domain"
)

// ZoneStore persists zones. Zones are append-only.
type ZoneStore interface {
	// Append stores a new zone and assigns its ID.
	// Returns domain.ErrAlreadyExists if a zone with the same name exists;
	// the store is left unchanged in that case.
	Append(ctx context.Context, zone *domain.Zone) error

	// List returns all zones in insertion order.
	List(ctx context.Context) ([]domain.Zone, error)

	// GetByName returns the zone with the given name.
	// Returns domain.ErrNotFound if no such zone exists.
	GetByName(ctx context.Context, name string) (*domain.Zone, error)
}
