// Package sqlite provides a SQLite-based implementation of the zone and
// entity store ports.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that
// requires no CGO. Both stores share a single database connection:
//
//   - ZoneStore: zones table, name is UNIQUE
//   - EntityStore: entities table, metadata kept as a JSON object string
//
// # Schema
//
// The schema is managed by golang-migrate from the embedded migrations/
// directory. Each migration is a pair of .up.sql and .down.sql files.
//
// # Data Location
//
// By default, the database is stored at ~/.spatial/data/spatial.db
//
// # Thread Safety
//
// The store holds no state of its own beyond the connection pool. Writer
// serialisation is left to SQLite in WAL mode.
package sqlite
