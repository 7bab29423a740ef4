package mcp

import (
	"github.com/custodia-labs/spatial-cli/internal/core/domain"
	"github.com/custodia-labs/spatial-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Spatial is the registry.
	Spatial driving.SpatialService

	// Settings supplies defaults for omitted tool arguments. Optional.
	Settings driving.SettingsService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Spatial == nil {
		return ErrMissingSpatialService
	}
	return nil
}

// defaults returns the configured settings, or the built-in defaults.
func (p *Ports) defaults() domain.Settings {
	if p.Settings == nil {
		return domain.DefaultSettings()
	}
	settings, err := p.Settings.Get()
	if err != nil || settings == nil {
		return domain.DefaultSettings()
	}
	return *settings
}
