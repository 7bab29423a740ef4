// Package mcp provides an MCP (Model Context Protocol) server adapter for the
// spatial registry. It lets AI assistants query and populate zones and
// entities.
package mcp

import "errors"

// ErrMissingSpatialService is returned when the spatial service is not provided.
var ErrMissingSpatialService = errors.New("mcp: spatial service is required")
