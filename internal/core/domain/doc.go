// Package domain defines the core records of the spatial registry.
//
// This package is the innermost layer of the hexagon. It defines:
//
//   - Point: a position in a single flat Cartesian space
//   - Zone: a named sphere region
//   - Entity: a named point with a type and metadata
//   - Match: an entity paired with its distance to a query origin
//   - Export: a full snapshot suitable for round-trip reconstruction
//
// # Import Rules
//
//   - Can Import: Standard library, gonum's r3 vector package
//   - Cannot Import: Any internal/ package
package domain
