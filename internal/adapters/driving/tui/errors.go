package tui

import "errors"

// ErrMissingSpatialService is returned when the spatial service is not provided.
var ErrMissingSpatialService = errors.New("tui: spatial service is required")
