// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// The query engine in query.go is pure: it operates on snapshots of zones
// and entities handed to it and performs no I/O.
package services
