package domain

import "time"

// DefaultEntityType is applied when an entity is registered without a type.
const DefaultEntityType = "object"

// Entity is a named point in space.
type Entity struct {
	// ID is assigned by the store on creation.
	ID int64

	// Name is not required to be unique.
	Name string

	// Position is where the entity is.
	Position Point

	// Type is a free-form tag.
	Type string

	// Metadata holds arbitrary attributes. Never nil once loaded.
	Metadata Metadata

	// LastUpdated is when the entity was registered.
	LastUpdated time.Time
}

// EntitySpec describes an entity to be registered.
type EntitySpec struct {
	Name     string
	Position Point
	Type     string
	Metadata Metadata
}

// Validate fills in defaults. Any name is accepted and stored as given.
func (s *EntitySpec) Validate() error {
	if s.Type == "" {
		s.Type = DefaultEntityType
	}
	if s.Metadata == nil {
		s.Metadata = Metadata{}
	}
	return nil
}

// Match pairs an entity with its distance to a query origin.
type Match struct {
	Entity   Entity
	Distance float64
}

// Status summarises the registry.
type Status struct {
	// ActiveZones is the number of active zones.
	ActiveZones int

	// TotalEntities is the number of registered entities.
	TotalEntities int

	// Location is where the registry is stored.
	Location string
}
