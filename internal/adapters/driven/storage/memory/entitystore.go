package memory

import (
	"context"
	"maps"
	"sync"

	"github.com/custodia-labs/spatial-cli/internal/core/domain"
	"github.com/custodia-labs/spatial-cli/internal/core/ports/driven"
)

// Ensure EntityStore implements the interface.
var _ driven.EntityStore = (*EntityStore)(nil)

// EntityStore is an in-memory implementation of driven.EntityStore.
type EntityStore struct {
	mu       sync.RWMutex
	entities []domain.Entity
	nextID   int64
}

// NewEntityStore creates a new in-memory entity store.
func NewEntityStore() *EntityStore {
	return &EntityStore{nextID: 1}
}

// Append stores a new entity and assigns its ID.
func (s *EntityStore) Append(_ context.Context, entity *domain.Entity) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	entity.ID = s.nextID
	s.nextID++
	stored := *entity
	stored.Metadata = cloneMetadata(entity.Metadata)
	s.entities = append(s.entities, stored)
	return nil
}

// List returns all entities in insertion order.
func (s *EntityStore) List(_ context.Context) ([]domain.Entity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]domain.Entity, len(s.entities))
	for i := range s.entities {
		result[i] = s.entities[i]
		result[i].Metadata = cloneMetadata(s.entities[i].Metadata)
	}
	return result, nil
}

// GetByName returns the first inserted entity with the given name.
func (s *EntityStore) GetByName(_ context.Context, name string) (*domain.Entity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.entities {
		if s.entities[i].Name == name {
			entity := s.entities[i]
			entity.Metadata = cloneMetadata(entity.Metadata)
			return &entity, nil
		}
	}
	return nil, domain.ErrNotFound
}

// cloneMetadata copies the top level so callers cannot mutate stored maps.
// Nested maps are shared; Values expose no mutators.
func cloneMetadata(m domain.Metadata) domain.Metadata {
	if m == nil {
		return domain.Metadata{}
	}
	return maps.Clone(m)
}
