package sqlite

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/spatial-cli/internal/core/domain"
	"github.com/custodia-labs/spatial-cli/internal/logger"
)

// setupTestStore creates a temporary SQLite store for testing.
func setupTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	require.NotNil(t, store)

	t.Cleanup(func() {
		assert.NoError(t, store.Close())
	})
	return store
}

var testTime = time.Date(2026, 10, 14, 9, 15, 30, 250000000, time.UTC)

// ==================== Store Creation and Initialization Tests ====================

func TestNewStore_ErrorHandling(t *testing.T) {
	_, err := NewStore("/invalid\x00path")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "creating data directory")
}

func TestNewStore_LogsMigrations(t *testing.T) {
	var buf bytes.Buffer
	logger.SetOutput(&buf)
	logger.SetVerbose(true)
	t.Cleanup(func() {
		logger.SetVerbose(false)
		logger.SetOutput(os.Stderr)
	})

	dir := t.TempDir()
	store, err := NewStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Close())

	assert.Contains(t, buf.String(), "=== Migrations ===")
	assert.Contains(t, buf.String(), "[INFO] schema version 1 (dirty=false)")

	buf.Reset()
	store, err = NewStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Close())

	assert.Contains(t, buf.String(), "schema already current")
}

func TestNewStore_Success(t *testing.T) {
	tempDir := t.TempDir()

	store, err := NewStore(tempDir)
	require.NoError(t, err)
	defer store.Close()

	dbPath := filepath.Join(tempDir, "spatial.db")
	assert.Equal(t, dbPath, store.Path())
	assert.FileExists(t, dbPath)
	assert.NoError(t, store.db.Ping())
}

func TestNewStore_DefaultDirectory(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	store, err := NewStore("")
	require.NoError(t, err)
	defer store.Close()

	assert.Contains(t, store.Path(), ".spatial")
	assert.Contains(t, store.Path(), filepath.Join("data", "spatial.db"))
}

func TestNewStore_DirectoryCreation(t *testing.T) {
	nestedDir := filepath.Join(t.TempDir(), "nested", "path", "to", "db")

	store, err := NewStore(nestedDir)
	require.NoError(t, err)
	defer store.Close()

	assert.DirExists(t, nestedDir)
}

func TestNewStore_Migrations(t *testing.T) {
	store := setupTestStore(t)

	var version int
	err := store.db.QueryRow("SELECT version FROM schema_migrations").Scan(&version)
	require.NoError(t, err)
	assert.Equal(t, 1, version)

	for _, table := range []string{"zones", "entities"} {
		var exists int
		err := store.db.QueryRow(
			"SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?",
			table,
		).Scan(&exists)
		require.NoError(t, err)
		assert.Equal(t, 1, exists, "table %s should exist", table)
	}
}

func TestNewStore_ReopenKeepsData(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	first, err := NewStore(dir)
	require.NoError(t, err)
	require.NoError(t, first.ZoneStore().Append(ctx, &domain.Zone{Name: "A", Radius: 1, CreatedAt: testTime, Active: true}))
	require.NoError(t, first.Close())

	second, err := NewStore(dir)
	require.NoError(t, err)
	defer second.Close()

	zones, err := second.ZoneStore().List(ctx)
	require.NoError(t, err)
	require.Len(t, zones, 1)
	assert.Equal(t, "A", zones[0].Name)
}

func TestStore_Close(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Close())
	assert.Error(t, store.db.Ping())
}

func TestStore_InterfaceGetters(t *testing.T) {
	store := setupTestStore(t)

	assert.NotNil(t, store.ZoneStore())
	assert.NotNil(t, store.EntityStore())
}

// ==================== Zone Store Tests ====================

func TestZoneStore_AppendAndGet(t *testing.T) {
	store := setupTestStore(t)
	zones := store.ZoneStore()
	ctx := context.Background()

	zone := &domain.Zone{
		Name:      "dock",
		Center:    domain.Point{X: 1.5, Y: -2, Z: 3},
		Radius:    4.25,
		Type:      "restricted",
		CreatedAt: testTime,
		Active:    true,
	}
	require.NoError(t, zones.Append(ctx, zone))
	assert.Equal(t, int64(1), zone.ID)

	got, err := zones.GetByName(ctx, "dock")
	require.NoError(t, err)
	assert.Equal(t, zone.ID, got.ID)
	assert.Equal(t, zone.Center, got.Center)
	assert.Equal(t, 4.25, got.Radius)
	assert.Equal(t, "restricted", got.Type)
	assert.True(t, got.Active)
	assert.True(t, testTime.Equal(got.CreatedAt))
}

func TestZoneStore_Append_DuplicateName(t *testing.T) {
	store := setupTestStore(t)
	zones := store.ZoneStore()
	ctx := context.Background()

	require.NoError(t, zones.Append(ctx, &domain.Zone{Name: "A", Radius: 5, CreatedAt: testTime, Active: true}))
	err := zones.Append(ctx, &domain.Zone{Name: "A", Radius: 50, CreatedAt: testTime, Active: true})
	assert.ErrorIs(t, err, domain.ErrAlreadyExists)

	all, err := zones.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, 5.0, all[0].Radius)
}

func TestZoneStore_GetByName_NotFound(t *testing.T) {
	store := setupTestStore(t)

	_, err := store.ZoneStore().GetByName(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestZoneStore_List_InsertionOrderAndInactive(t *testing.T) {
	store := setupTestStore(t)
	zones := store.ZoneStore()
	ctx := context.Background()

	require.NoError(t, zones.Append(ctx, &domain.Zone{Name: "z", Radius: 1, CreatedAt: testTime, Active: true}))
	require.NoError(t, zones.Append(ctx, &domain.Zone{Name: "a", Radius: 1, CreatedAt: testTime, Active: false}))

	all, err := zones.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "z", all[0].Name)
	assert.Equal(t, "a", all[1].Name)
	assert.False(t, all[1].Active)
}

func TestZoneStore_List_Empty(t *testing.T) {
	store := setupTestStore(t)

	zones, err := store.ZoneStore().List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, zones)
	assert.Empty(t, zones)
}

func TestZoneStore_RejectsNegativeRadius(t *testing.T) {
	store := setupTestStore(t)

	err := store.ZoneStore().Append(context.Background(), &domain.Zone{Name: "bad", Radius: -1, CreatedAt: testTime})
	assert.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrAlreadyExists)
}

func TestZoneStore_LegacyTimestamp(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	_, err := store.db.Exec(`INSERT INTO zones (name, center_x, center_y, center_z, radius, created_at)
		VALUES ('old', 0, 0, 0, 1, '2024-03-01T10:20:30.123456')`)
	require.NoError(t, err)

	zone, err := store.ZoneStore().GetByName(ctx, "old")
	require.NoError(t, err)
	assert.Equal(t, 2024, zone.CreatedAt.Year())
	assert.Equal(t, domain.DefaultZoneType, zone.Type)
	assert.True(t, zone.Active)
}

// ==================== Entity Store Tests ====================

func TestEntityStore_AppendAndList(t *testing.T) {
	store := setupTestStore(t)
	entities := store.EntityStore()
	ctx := context.Background()

	e := &domain.Entity{
		Name:     "drone",
		Position: domain.Point{X: 1, Y: 2, Z: 3},
		Type:     "uav",
		Metadata: domain.Metadata{
			"battery": domain.NumberValue(0.75),
			"armed":   domain.BoolValue(false),
			"owner":   domain.NullValue(),
			"gps":     domain.MapValue(domain.Metadata{"fix": domain.StringValue("3d")}),
		},
		LastUpdated: testTime,
	}
	require.NoError(t, entities.Append(ctx, e))
	assert.Equal(t, int64(1), e.ID)

	all, err := entities.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "uav", all[0].Type)
	assert.Equal(t, e.Position, all[0].Position)
	assert.True(t, e.Metadata.Equal(all[0].Metadata))
	assert.True(t, testTime.Equal(all[0].LastUpdated))
}

func TestEntityStore_NilMetadataStoredAsEmptyObject(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.EntityStore().Append(ctx, &domain.Entity{Name: "e", LastUpdated: testTime}))

	var raw string
	require.NoError(t, store.db.QueryRow("SELECT metadata FROM entities").Scan(&raw))
	assert.Equal(t, "{}", raw)
}

func TestEntityStore_GetByName_FirstInserted(t *testing.T) {
	store := setupTestStore(t)
	entities := store.EntityStore()
	ctx := context.Background()

	require.NoError(t, entities.Append(ctx, &domain.Entity{Name: "probe", Position: domain.Point{X: 1}, LastUpdated: testTime}))
	require.NoError(t, entities.Append(ctx, &domain.Entity{Name: "probe", Position: domain.Point{X: 2}, LastUpdated: testTime}))

	got, err := entities.GetByName(ctx, "probe")
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.ID)
	assert.Equal(t, 1.0, got.Position.X)

	_, err = entities.GetByName(ctx, "ghost")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestEntityStore_MalformedMetadata(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	_, err := store.db.Exec(`INSERT INTO entities (name, x, y, z, metadata, last_updated)
		VALUES ('broken', 0, 0, 0, '{not json', '2026-10-14T00:00:00Z')`)
	require.NoError(t, err)

	_, err = store.EntityStore().List(ctx)
	assert.Error(t, err)
}

func TestEntityStore_ConcurrentAppends(t *testing.T) {
	store := setupTestStore(t)
	entities := store.EntityStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, entities.Append(ctx, &domain.Entity{Name: "e", LastUpdated: testTime}))
		}()
	}
	wg.Wait()

	all, err := entities.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 10)
}

func TestParseTime(t *testing.T) {
	got, err := parseTime("2026-10-14T09:15:30.25Z")
	require.NoError(t, err)
	assert.True(t, testTime.Equal(got))

	_, err = parseTime("yesterday")
	assert.Error(t, err)
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, isUniqueViolation(errors.New("constraint failed: UNIQUE constraint failed: zones.name (2067)")))
	assert.False(t, isUniqueViolation(errors.New("disk I/O error")))
}
