package mcp

import (
	"context"
	"time"

	"github.com/custodia-labs/spatial-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/spatial-cli/internal/core/domain"
	"github.com/custodia-labs/spatial-cli/internal/core/services"
)

// mockSpatialService is a mock implementation of driving.SpatialService.
type mockSpatialService struct {
	zones     []domain.Zone
	entities  []domain.Entity
	matches   []domain.Match
	status    *domain.Status
	export    *domain.Export
	err       error
	threshold float64
}

func (m *mockSpatialService) CreateZone(_ context.Context, spec domain.ZoneSpec) (*domain.Zone, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &domain.Zone{ID: 1, Name: spec.Name, Center: spec.Center, Radius: spec.Radius, Type: spec.Type, Active: true}, nil
}

func (m *mockSpatialService) CreateEntity(_ context.Context, spec domain.EntitySpec) (*domain.Entity, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &domain.Entity{ID: 1, Name: spec.Name, Position: spec.Position, Type: spec.Type, Metadata: spec.Metadata}, nil
}

func (m *mockSpatialService) ListZones(_ context.Context, _ bool) ([]domain.Zone, error) {
	return m.zones, m.err
}

func (m *mockSpatialService) ListEntities(_ context.Context) ([]domain.Entity, error) {
	return m.entities, m.err
}

func (m *mockSpatialService) FindEntitiesInZone(_ context.Context, _ string) ([]domain.Match, error) {
	return m.matches, m.err
}

func (m *mockSpatialService) ProximityCheck(_ context.Context, _ string, threshold float64) ([]domain.Match, error) {
	m.threshold = threshold
	return m.matches, m.err
}

func (m *mockSpatialService) Status(_ context.Context) (*domain.Status, error) {
	return m.status, m.err
}

func (m *mockSpatialService) Export(_ context.Context) (*domain.Export, error) {
	return m.export, m.err
}

// mockSettingsService is a mock implementation of driving.SettingsService.
type mockSettingsService struct {
	settings *domain.Settings
	err      error
}

func (m *mockSettingsService) Get() (*domain.Settings, error) { return m.settings, m.err }

func (m *mockSettingsService) Set(_, _ string) error { return m.err }

func (m *mockSettingsService) Keys() []string { return nil }

func (m *mockSettingsService) GetDefaults() domain.Settings { return domain.DefaultSettings() }

// newRegistryServer builds a server over an in-memory registry.
func newRegistryServer() (*Server, *services.SpatialService) {
	svc := services.NewSpatialService(memory.NewZoneStore(), memory.NewEntityStore(), services.SpatialConfig{
		Location: "memory",
		Now:      func() time.Time { return time.Date(2026, 10, 14, 12, 0, 0, 0, time.UTC) },
	})
	server, err := NewServer(&Ports{Spatial: svc})
	if err != nil {
		panic(err)
	}
	return server, svc
}
