package memory

import (
	"context"
	"sync"

	"github.com/custodia-labs/spatial-cli/internal/core/domain"
	"github.com/custodia-labs/spatial-cli/internal/core/ports/driven"
)

// Ensure ZoneStore implements the interface.
var _ driven.ZoneStore = (*ZoneStore)(nil)

// ZoneStore is an in-memory implementation of driven.ZoneStore.
type ZoneStore struct {
	mu     sync.RWMutex
	zones  []domain.Zone
	nextID int64
}

// NewZoneStore creates a new in-memory zone store.
func NewZoneStore() *ZoneStore {
	return &ZoneStore{nextID: 1}
}

// Append stores a new zone and assigns its ID.
func (s *ZoneStore) Append(_ context.Context, zone *domain.Zone) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.zones {
		if s.zones[i].Name == zone.Name {
			return domain.ErrAlreadyExists
		}
	}
	zone.ID = s.nextID
	s.nextID++
	s.zones = append(s.zones, *zone)
	return nil
}

// List returns all zones in insertion order.
func (s *ZoneStore) List(_ context.Context) ([]domain.Zone, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]domain.Zone, len(s.zones))
	copy(result, s.zones)
	return result, nil
}

// GetByName returns the zone with the given name.
func (s *ZoneStore) GetByName(_ context.Context, name string) (*domain.Zone, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.zones {
		if s.zones[i].Name == name {
			zone := s.zones[i]
			return &zone, nil
		}
	}
	return nil, domain.ErrNotFound
}
