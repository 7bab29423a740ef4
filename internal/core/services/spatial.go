package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/custodia-labs/spatial-cli/internal/core/domain"
	"github.com/custodia-labs/spatial-cli/internal/core/ports/driven"
	"github.com/custodia-labs/spatial-cli/internal/core/ports/driving"
	"github.com/custodia-labs/spatial-cli/internal/logger"
)

// Ensure SpatialService implements the interface.
var _ driving.SpatialService = (*SpatialService)(nil)

// SpatialConfig configures a SpatialService.
type SpatialConfig struct {
	// Location describes where the stores keep their data. Reported by Status.
	Location string

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
}

// SpatialService is the registry facade. It loads snapshots from the stores
// and delegates geometry to the query engine. It holds no state between
// calls.
type SpatialService struct {
	zoneStore   driven.ZoneStore
	entityStore driven.EntityStore
	location    string
	now         func() time.Time
}

// NewSpatialService creates a new spatial service.
func NewSpatialService(zoneStore driven.ZoneStore, entityStore driven.EntityStore, cfg SpatialConfig) *SpatialService {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &SpatialService{
		zoneStore:   zoneStore,
		entityStore: entityStore,
		location:    cfg.Location,
		now:         now,
	}
}

// CreateZone creates an active zone.
func (s *SpatialService) CreateZone(ctx context.Context, spec domain.ZoneSpec) (*domain.Zone, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	zone := &domain.Zone{
		Name:      spec.Name,
		Center:    spec.Center,
		Radius:    spec.Radius,
		Type:      spec.Type,
		CreatedAt: s.now().UTC(),
		Active:    true,
	}
	if err := s.zoneStore.Append(ctx, zone); err != nil {
		return nil, fmt.Errorf("creating zone %q: %w", spec.Name, err)
	}

	logger.Debug("created zone %q id=%d center=%s r=%g", zone.Name, zone.ID, zone.Center, zone.Radius)
	return zone, nil
}

// CreateEntity registers an entity.
func (s *SpatialService) CreateEntity(ctx context.Context, spec domain.EntitySpec) (*domain.Entity, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	entity := &domain.Entity{
		Name:        spec.Name,
		Position:    spec.Position,
		Type:        spec.Type,
		Metadata:    spec.Metadata,
		LastUpdated: s.now().UTC(),
	}
	if err := s.entityStore.Append(ctx, entity); err != nil {
		return nil, fmt.Errorf("creating entity %q: %w", spec.Name, err)
	}

	logger.Debug("created entity %q id=%d pos=%s", entity.Name, entity.ID, entity.Position)
	return entity, nil
}

// ListZones returns zones in insertion order.
func (s *SpatialService) ListZones(ctx context.Context, activeOnly bool) ([]domain.Zone, error) {
	zones, err := s.zoneStore.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing zones: %w", err)
	}
	if !activeOnly {
		return zones, nil
	}

	active := make([]domain.Zone, 0, len(zones))
	for i := range zones {
		if zones[i].Active {
			active = append(active, zones[i])
		}
	}
	return active, nil
}

// ListEntities returns entities in insertion order.
func (s *SpatialService) ListEntities(ctx context.Context) ([]domain.Entity, error) {
	entities, err := s.entityStore.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing entities: %w", err)
	}
	return entities, nil
}

// FindEntitiesInZone returns the entities inside the named zone.
func (s *SpatialService) FindEntitiesInZone(ctx context.Context, zoneName string) ([]domain.Match, error) {
	zone, err := s.zoneStore.GetByName(ctx, zoneName)
	if errors.Is(err, domain.ErrNotFound) {
		logger.Debug("zone %q not found, returning no matches", zoneName)
		return []domain.Match{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading zone %q: %w", zoneName, err)
	}

	entities, err := s.ListEntities(ctx)
	if err != nil {
		return nil, err
	}

	matches := EntitiesInZone(*zone, entities)
	logger.Debug("zone %q: %d of %d entities inside", zoneName, len(matches), len(entities))
	return matches, nil
}

// ProximityCheck returns the entities within threshold of the named entity.
func (s *SpatialService) ProximityCheck(ctx context.Context, entityName string, threshold float64) ([]domain.Match, error) {
	target, err := s.entityStore.GetByName(ctx, entityName)
	if errors.Is(err, domain.ErrNotFound) {
		logger.Debug("entity %q not found, returning no matches", entityName)
		return []domain.Match{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading entity %q: %w", entityName, err)
	}

	entities, err := s.ListEntities(ctx)
	if err != nil {
		return nil, err
	}

	matches := EntitiesNear(*target, entities, threshold)
	logger.Debug("entity %q (id=%d): %d entities within %g", entityName, target.ID, len(matches), threshold)
	return matches, nil
}

// Status returns summary counts.
func (s *SpatialService) Status(ctx context.Context) (*domain.Status, error) {
	zones, err := s.ListZones(ctx, true)
	if err != nil {
		return nil, err
	}
	entities, err := s.ListEntities(ctx)
	if err != nil {
		return nil, err
	}

	return &domain.Status{
		ActiveZones:   len(zones),
		TotalEntities: len(entities),
		Location:      s.location,
	}, nil
}

// Export returns every zone, including inactive ones, and every entity.
func (s *SpatialService) Export(ctx context.Context) (*domain.Export, error) {
	zones, err := s.ListZones(ctx, false)
	if err != nil {
		return nil, err
	}
	entities, err := s.ListEntities(ctx)
	if err != nil {
		return nil, err
	}

	export, err := domain.NewExport(zones, entities, s.now().UTC())
	if err != nil {
		return nil, fmt.Errorf("building export: %w", err)
	}
	return export, nil
}
