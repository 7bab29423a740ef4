package driven

import (
	"context"

	"github.com/custodia-labs/spatial-cli/internal/core/domain"
)

// EntityStore persists entities. Entities are append-only and their names
// need not be unique.
type EntityStore interface {
	// Append stores a new entity and assigns its ID.
	Append(ctx context.Context, entity *domain.Entity) error

	// List returns all entities in insertion order.
	List(ctx context.Context) ([]domain.Entity, error)

	// GetByName returns the first inserted entity with the given name.
	// Returns domain.ErrNotFound if no such entity exists.
	GetByName(ctx context.Context, name string) (*domain.Entity, error)
}
