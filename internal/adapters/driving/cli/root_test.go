package cli

import (
	"bytes"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/spatial-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/spatial-cli/internal/core/ports/driving"
	"github.com/custodia-labs/spatial-cli/internal/core/services"
)

var fixedNow = func() time.Time {
	return time.Date(2026, 10, 14, 12, 0, 0, 0, time.UTC)
}

// resetFlags restores every flag to its default so tests sharing rootCmd
// do not leak values into each other.
func resetFlags() {
	var walk func(c *cobra.Command)
	walk = func(c *cobra.Command) {
		reset := func(f *pflag.Flag) {
			if sv, ok := f.Value.(pflag.SliceValue); ok {
				_ = sv.Replace([]string{})
			} else {
				_ = f.Value.Set(f.DefValue)
			}
			f.Changed = false
		}
		c.Flags().VisitAll(reset)
		c.PersistentFlags().VisitAll(reset)
		for _, sub := range c.Commands() {
			walk(sub)
		}
	}
	walk(rootCmd)
}

// setupTestServices injects an in-memory registry and settings and
// restores the previous services when the test ends.
func setupTestServices(t *testing.T) *services.SpatialService {
	t.Helper()

	oldSpatial, oldSettings, oldOpener, oldCloser := spatialService, settingsService, spatialOpener, spatialCloser
	resetFlags()

	svc := services.NewSpatialService(memory.NewZoneStore(), memory.NewEntityStore(), services.SpatialConfig{
		Location: "memory",
		Now:      fixedNow,
	})
	spatialService = svc
	settingsService = services.NewSettingsService(memory.NewConfigStore())
	spatialOpener = nil
	spatialCloser = nil

	t.Cleanup(func() {
		spatialService, settingsService, spatialOpener, spatialCloser = oldSpatial, oldSettings, oldOpener, oldCloser
		resetFlags()
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})
	return svc
}

// run executes rootCmd with args and returns everything it printed.
func run(args ...string) (string, error) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

func TestRootCmd_Use(t *testing.T) {
	assert.Equal(t, "spatial", rootCmd.Use)
}

func TestRootCmd_GlobalFlags(t *testing.T) {
	for _, name := range []string{"data-dir", "verbose", "color"} {
		assert.NotNil(t, rootCmd.PersistentFlags().Lookup(name), name)
	}
	assert.Equal(t, "v", rootCmd.PersistentFlags().Lookup("verbose").Shorthand)
}

func TestRootCmd_RejectsUnknownColor(t *testing.T) {
	setupTestServices(t)

	_, err := run("status", "--color", "purple")

	assert.Error(t, err)
}

func TestRequireSpatial_NotConfigured(t *testing.T) {
	setupTestServices(t)
	spatialService = nil

	_, err := run("status")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "spatial service not configured")
}

func TestRequireSpatial_OpensWithDataDirPrecedence(t *testing.T) {
	tests := []struct {
		name     string
		setting  string
		args     []string
		expected string
	}{
		{name: "default", args: []string{"status"}, expected: ""},
		{name: "setting", setting: "/from/settings", args: []string{"status"}, expected: "/from/settings"},
		{name: "flag wins", setting: "/from/settings", args: []string{"status", "--data-dir", "/from/flag"}, expected: "/from/flag"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupTestServices(t)
			if tt.setting != "" {
				require.NoError(t, settingsService.Set(services.KeyDataDir, tt.setting))
			}

			var opened string
			closed := false
			spatialService = nil
			SetSpatialOpener(func(dataDir string) (driving.SpatialService, io.Closer, error) {
				opened = dataDir
				svc := services.NewSpatialService(memory.NewZoneStore(), memory.NewEntityStore(), services.SpatialConfig{Location: dataDir})
				return svc, closerFunc(func() error { closed = true; return nil }), nil
			})

			buf := new(bytes.Buffer)
			rootCmd.SetOut(buf)
			rootCmd.SetErr(buf)
			rootCmd.SetArgs(tt.args)
			err := Execute()

			require.NoError(t, err)
			assert.Equal(t, tt.expected, opened)
			assert.True(t, closed)
			assert.Nil(t, spatialService)
		})
	}
}

func TestRequireSpatial_OpenError(t *testing.T) {
	setupTestServices(t)
	spatialService = nil
	SetSpatialOpener(func(string) (driving.SpatialService, io.Closer, error) {
		return nil, nil, errors.New("disk full")
	})

	_, err := run("status")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "opening registry: disk full")
}

func TestVersionCmd_Executes(t *testing.T) {
	setupTestServices(t)
	originalVersion := version
	SetVersion("test-version-1.0.0")
	defer func() { version = originalVersion }()

	out, err := run("version")

	assert.NoError(t, err)
	assert.Contains(t, out, "spatial version test-version-1.0.0")
}

func TestVersionCmd_Short(t *testing.T) {
	assert.Equal(t, "Print the version number", versionCmd.Short)
}
