// Package tui provides an interactive terminal browser for the spatial
// registry. It implements a driving adapter following hexagonal
// architecture principles.
package tui

import (
	"github.com/custodia-labs/spatial-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Spatial is the registry being browsed.
	Spatial driving.SpatialService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Spatial == nil {
		return ErrMissingSpatialService
	}
	return nil
}
