// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/spatial-cli/internal/core/domain"
)

// ZonesLoaded carries the zone list back to the model.
type ZonesLoaded struct {
	Zones []domain.Zone
	Err   error
}

// EntitiesLoaded carries the entity list back to the model.
type EntitiesLoaded struct {
	Entities []domain.Entity
	Err      error
}

// MembersLoaded carries the entities inside a zone back to the model.
type MembersLoaded struct {
	Zone    string
	Matches []domain.Match
	Err     error
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewZones lists all zones.
	ViewZones ViewType = iota
	// ViewEntities lists all entities.
	ViewEntities
	// ViewMembers lists the entities inside the selected zone.
	ViewMembers
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewZones:
		return "zones"
	case ViewEntities:
		return "entities"
	case ViewMembers:
		return "members"
	default:
		return "unknown"
	}
}

// StoreChanged is sent when another process writes to the registry.
type StoreChanged struct{}

// WatchFailed is sent when the registry watcher reports an error.
type WatchFailed struct {
	Err error
}
