package services

import (
	"context"

	"github.com/custodia-labs/spatial-cli/internal/core/domain"
)

// failingZoneStore returns err from every call.
type failingZoneStore struct {
	err error
}

func (m *failingZoneStore) Append(_ context.Context, _ *domain.Zone) error {
	return m.err
}

func (m *failingZoneStore) List(_ context.Context) ([]domain.Zone, error) {
	return nil, m.err
}

func (m *failingZoneStore) GetByName(_ context.Context, _ string) (*domain.Zone, error) {
	return nil, m.err
}

// failingEntityStore returns err from every call.
type failingEntityStore struct {
	err error
}

func (m *failingEntityStore) Append(_ context.Context, _ *domain.Entity) error {
	return m.err
}

func (m *failingEntityStore) List(_ context.Context) ([]domain.Entity, error) {
	return nil, m.err
}

func (m *failingEntityStore) GetByName(_ context.Context, _ string) (*domain.Entity, error) {
	return nil, m.err
}
