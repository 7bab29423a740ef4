package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/golang-migrate/migrate/v4"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/custodia-labs/spatial-cli/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/custodia-labs/spatial-cli/internal/core/domain"
	"github.com/custodia-labs/spatial-cli/internal/core/ports/driven"
	"github.com/custodia-labs/spatial-cli/internal/logger"
)

// dbFileName is the database file created inside the data directory.
const dbFileName = "spatial.db"

// timeLayout is how timestamps are stored in TEXT columns.
const timeLayout = time.RFC3339Nano

// Store is a unified SQLite-based storage that provides access to
// the zone and entity stores through wrapper types.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a new SQLite store in the specified data directory.
// If dataDir is empty, defaults to ~/.spatial/data/spatial.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".spatial", "data")
	}

	// Ensure directory exists
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, dbFileName)

	// WAL mode and a busy timeout let SQLite serialise concurrent writers.
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	logger.Debug("opened sqlite store at %s", dbPath)
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// ZoneStore returns a ZoneStore interface backed by this store.
func (s *Store) ZoneStore() driven.ZoneStore {
	return &zoneStore{store: s}
}

// EntityStore returns an EntityStore interface backed by this store.
func (s *Store) EntityStore() driven.EntityStore {
	return &entityStore{store: s}
}

// migrate applies all pending up migrations.
func (s *Store) migrate(fsys fs.FS) error {
	src, err := iofs.New(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations: %w", err)
	}

	driver, err := migratesqlite.WithInstance(s.db, &migratesqlite.Config{})
	if err != nil {
		return fmt.Errorf("creating sqlite migration driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, "sqlite", driver)
	if err != nil {
		return fmt.Errorf("creating migrate instance: %w", err)
	}
	// m is not closed: that would close the shared *sql.DB.

	logger.Section("Migrations")
	err = m.Up()
	switch {
	case errors.Is(err, migrate.ErrNoChange):
		logger.Debug("schema already current")
	case err != nil:
		return fmt.Errorf("migration up failed: %w", err)
	}

	if version, dirty, err := m.Version(); err == nil {
		logger.Info("schema version %d (dirty=%t)", version, dirty)
	}
	return nil
}

// ==================== Zone Store ====================

// zoneStore implements driven.ZoneStore.
type zoneStore struct {
	store *Store
}

var _ driven.ZoneStore = (*zoneStore)(nil)

const zoneColumns = "id, name, center_x, center_y, center_z, radius, zone_type, created_at, active"

// Append stores a new zone and assigns its ID.
func (s *zoneStore) Append(ctx context.Context, zone *domain.Zone) error {
	res, err := s.store.db.ExecContext(ctx, `
		INSERT INTO zones (name, center_x, center_y, center_z, radius, zone_type, created_at, active)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, zone.Name, zone.Center.X, zone.Center.Y, zone.Center.Z, zone.Radius, zone.Type,
		zone.CreatedAt.UTC().Format(timeLayout), boolToInt(zone.Active))
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("zone %q: %w", zone.Name, domain.ErrAlreadyExists)
		}
		return fmt.Errorf("inserting zone: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading zone id: %w", err)
	}
	zone.ID = id
	return nil
}

// List returns all zones in insertion order.
func (s *zoneStore) List(ctx context.Context) ([]domain.Zone, error) {
	rows, err := s.store.db.QueryContext(ctx, "SELECT "+zoneColumns+" FROM zones ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("querying zones: %w", err)
	}
	defer rows.Close()

	zones := make([]domain.Zone, 0)
	for rows.Next() {
		zone, err := scanZone(rows)
		if err != nil {
			return nil, err
		}
		zones = append(zones, *zone)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating zones: %w", err)
	}
	return zones, nil
}

// GetByName returns the zone with the given name.
func (s *zoneStore) GetByName(ctx context.Context, name string) (*domain.Zone, error) {
	row := s.store.db.QueryRowContext(ctx, "SELECT "+zoneColumns+" FROM zones WHERE name = ?", name)
	zone, err := scanZone(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return zone, nil
}

// ==================== Entity Store ====================

// entityStore implements driven.EntityStore.
type entityStore struct {
	store *Store
}

var _ driven.EntityStore = (*entityStore)(nil)

const entityColumns = "id, name, x, y, z, entity_type, metadata, last_updated"

// Append stores a new entity and assigns its ID.
func (s *entityStore) Append(ctx context.Context, entity *domain.Entity) error {
	meta, err := entity.Metadata.Encode()
	if err != nil {
		return err
	}

	res, err := s.store.db.ExecContext(ctx, `
		INSERT INTO entities (name, x, y, z, entity_type, metadata, last_updated)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, entity.Name, entity.Position.X, entity.Position.Y, entity.Position.Z, entity.Type,
		meta, entity.LastUpdated.UTC().Format(timeLayout))
	if err != nil {
		return fmt.Errorf("inserting entity: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading entity id: %w", err)
	}
	entity.ID = id
	return nil
}

// List returns all entities in insertion order.
func (s *entityStore) List(ctx context.Context) ([]domain.Entity, error) {
	rows, err := s.store.db.QueryContext(ctx, "SELECT "+entityColumns+" FROM entities ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("querying entities: %w", err)
	}
	defer rows.Close()

	entities := make([]domain.Entity, 0)
	for rows.Next() {
		entity, err := scanEntity(rows)
		if err != nil {
			return nil, err
		}
		entities = append(entities, *entity)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating entities: %w", err)
	}
	return entities, nil
}

// GetByName returns the first inserted entity with the given name.
func (s *entityStore) GetByName(ctx context.Context, name string) (*domain.Entity, error) {
	row := s.store.db.QueryRowContext(ctx,
		"SELECT "+entityColumns+" FROM entities WHERE name = ? ORDER BY id LIMIT 1", name)
	entity, err := scanEntity(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return entity, nil
}

// ==================== Helper Functions ====================

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanZone(row scanner) (*domain.Zone, error) {
	var (
		zone      domain.Zone
		createdAt string
		active    int
	)
	err := row.Scan(&zone.ID, &zone.Name, &zone.Center.X, &zone.Center.Y, &zone.Center.Z,
		&zone.Radius, &zone.Type, &createdAt, &active)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("scanning zone: %w", err)
	}

	zone.CreatedAt, err = parseTime(createdAt)
	if err != nil {
		return nil, fmt.Errorf("zone %d created_at: %w", zone.ID, err)
	}
	zone.Active = active != 0
	return &zone, nil
}

func scanEntity(row scanner) (*domain.Entity, error) {
	var (
		entity      domain.Entity
		metadata    string
		lastUpdated string
	)
	err := row.Scan(&entity.ID, &entity.Name, &entity.Position.X, &entity.Position.Y, &entity.Position.Z,
		&entity.Type, &metadata, &lastUpdated)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("scanning entity: %w", err)
	}

	entity.Metadata, err = domain.ParseMetadata(metadata)
	if err != nil {
		return nil, fmt.Errorf("entity %d: %w", entity.ID, err)
	}
	entity.LastUpdated, err = parseTime(lastUpdated)
	if err != nil {
		return nil, fmt.Errorf("entity %d last_updated: %w", entity.ID, err)
	}
	return &entity, nil
}

// parseTime accepts RFC 3339 and the zone-less ISO form written by older
// registries ("2006-01-02T15:04:05.999999").
func parseTime(s string) (time.Time, error) {
	if t, err := time.Parse(timeLayout, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02T15:04:05.999999999", s)
}

// isUniqueViolation reports whether err is a SQLite UNIQUE constraint failure.
func isUniqueViolation(err error) bool {
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
