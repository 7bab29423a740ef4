package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

// Export is a full snapshot of the registry: every zone, active or not,
// and every entity.
type Export struct {
	Zones      []ZoneRecord   `json:"zones"`
	Entities   []EntityRecord `json:"entities"`
	ExportedAt time.Time      `json:"exported_at"`
}

// ZoneRecord is the flat export form of a Zone.
type ZoneRecord struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CenterX   float64   `json:"center_x"`
	CenterY   float64   `json:"center_y"`
	CenterZ   float64   `json:"center_z"`
	Radius    float64   `json:"radius"`
	ZoneType  string    `json:"zone_type"`
	CreatedAt time.Time `json:"created_at"`
	Active    bool      `json:"active"`
}

// EntityRecord is the flat export form of an Entity.
// Metadata carries the JSON-encoded object as a string.
type EntityRecord struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	X           float64   `json:"x"`
	Y           float64   `json:"y"`
	Z           float64   `json:"z"`
	EntityType  string    `json:"entity_type"`
	Metadata    string    `json:"metadata"`
	LastUpdated time.Time `json:"last_updated"`
}

// NewZoneRecord flattens a zone.
func NewZoneRecord(z Zone) ZoneRecord {
	return ZoneRecord{
		ID:        z.ID,
		Name:      z.Name,
		CenterX:   z.Center.X,
		CenterY:   z.Center.Y,
		CenterZ:   z.Center.Z,
		Radius:    z.Radius,
		ZoneType:  z.Type,
		CreatedAt: z.CreatedAt,
		Active:    z.Active,
	}
}

// Zone rebuilds the zone.
func (r ZoneRecord) Zone() Zone {
	return Zone{
		ID:        r.ID,
		Name:      r.Name,
		Center:    Point{X: r.CenterX, Y: r.CenterY, Z: r.CenterZ},
		Radius:    r.Radius,
		Type:      r.ZoneType,
		CreatedAt: r.CreatedAt,
		Active:    r.Active,
	}
}

// NewEntityRecord flattens an entity.
func NewEntityRecord(e Entity) (EntityRecord, error) {
	meta, err := e.Metadata.Encode()
	if err != nil {
		return EntityRecord{}, fmt.Errorf("entity %d: %w", e.ID, err)
	}
	return EntityRecord{
		ID:          e.ID,
		Name:        e.Name,
		X:           e.Position.X,
		Y:           e.Position.Y,
		Z:           e.Position.Z,
		EntityType:  e.Type,
		Metadata:    meta,
		LastUpdated: e.LastUpdated,
	}, nil
}

// Entity rebuilds the entity.
func (r EntityRecord) Entity() (Entity, error) {
	meta, err := ParseMetadata(r.Metadata)
	if err != nil {
		return Entity{}, fmt.Errorf("entity %d: %w", r.ID, err)
	}
	return Entity{
		ID:          r.ID,
		Name:        r.Name,
		Position:    Point{X: r.X, Y: r.Y, Z: r.Z},
		Type:        r.EntityType,
		Metadata:    meta,
		LastUpdated: r.LastUpdated,
	}, nil
}

// NewExport builds an export from loaded records.
func NewExport(zones []Zone, entities []Entity, at time.Time) (*Export, error) {
	out := &Export{
		Zones:      make([]ZoneRecord, 0, len(zones)),
		Entities:   make([]EntityRecord, 0, len(entities)),
		ExportedAt: at,
	}
	for i := range zones {
		out.Zones = append(out.Zones, NewZoneRecord(zones[i]))
	}
	for i := range entities {
		rec, err := NewEntityRecord(entities[i])
		if err != nil {
			return nil, err
		}
		out.Entities = append(out.Entities, rec)
	}
	return out, nil
}

// Snapshot is the reconstructed content of an export.
type Snapshot struct {
	Zones      []Zone
	Entities   []Entity
	ExportedAt time.Time
}

// Records rebuilds the zones and entities held by the export.
func (x *Export) Records() (*Snapshot, error) {
	snap := &Snapshot{
		Zones:      make([]Zone, 0, len(x.Zones)),
		Entities:   make([]Entity, 0, len(x.Entities)),
		ExportedAt: x.ExportedAt,
	}
	for _, r := range x.Zones {
		snap.Zones = append(snap.Zones, r.Zone())
	}
	for _, r := range x.Entities {
		e, err := r.Entity()
		if err != nil {
			return nil, err
		}
		snap.Entities = append(snap.Entities, e)
	}
	return snap, nil
}

// ParseExport decodes an exported JSON document back into records.
func ParseExport(data []byte) (*Snapshot, error) {
	var x Export
	if err := json.Unmarshal(data, &x); err != nil {
		return nil, fmt.Errorf("decoding export: %w", err)
	}
	return x.Records()
}
