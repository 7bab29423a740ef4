package domain

import (
	"fmt"
	"math"
	"time"
)

// DefaultZoneType is applied when a zone is created without a type.
const DefaultZoneType = "generic"

// Zone is a named sphere region.
type Zone struct {
	// ID is assigned by the store on creation.
	ID int64

	// Name is unique across zones.
	Name string

	// Center is the sphere centre.
	Center Point

	// Radius is the sphere radius. Never negative.
	Radius float64

	// Type is a free-form tag.
	Type string

	// CreatedAt is when the zone was created.
	CreatedAt time.Time

	// Active reports whether the zone is live. Zones are created active and
	// nothing in this package deactivates them.
	Active bool
}

// ZoneSpec describes a zone to be created.
type ZoneSpec struct {
	Name   string
	Center Point
	Radius float64
	Type   string
}

// Validate checks s and fills in defaults. The name is stored as given.
func (s *ZoneSpec) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("zone name is required: %w", ErrInvalidInput)
	}
	if math.IsNaN(s.Radius) || s.Radius < 0 {
		return fmt.Errorf("zone radius must be non-negative, got %v: %w", s.Radius, ErrInvalidInput)
	}
	if s.Type == "" {
		s.Type = DefaultZoneType
	}
	return nil
}
