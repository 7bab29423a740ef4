// Package cli provides the cobra command tree for the spatial binary.
package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/spatial-cli/internal/core/domain"
	"github.com/custodia-labs/spatial-cli/internal/core/ports/driving"
	"github.com/custodia-labs/spatial-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// SpatialOpener opens the registry rooted at dataDir. An empty dataDir
// selects the default location. The returned closer releases the store.
type SpatialOpener func(dataDir string) (driving.SpatialService, io.Closer, error)

// Injected services.
var (
	spatialService  driving.SpatialService
	settingsService driving.SettingsService
	spatialOpener   SpatialOpener
	spatialCloser   io.Closer
)

// Global flag values.
var (
	dataDirFlag string
	verboseFlag bool
	colorFlag   string
)

var rootCmd = &cobra.Command{
	Use:   "spatial",
	Short: "3D zone and entity registry",
	Long: `Spatial keeps named zones (spheres) and entities (points) in a local
SQLite database and answers proximity queries over them.

Each invocation opens the registry, performs one operation and exits.`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		logger.SetVerbose(verboseFlag)
		if colorFlag != "" {
			if _, err := domain.ParseColorMode(colorFlag); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dataDirFlag, "data-dir", "", "directory holding the registry database")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&colorFlag, "color", "", "styled output: auto, always or never")
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
}

// SetSpatialService injects an already opened registry.
func SetSpatialService(svc driving.SpatialService) {
	spatialService = svc
}

// SetSpatialOpener sets how the registry is opened on first use.
func SetSpatialOpener(opener SpatialOpener) {
	spatialOpener = opener
}

// SetSettingsService injects the settings service.
func SetSettingsService(svc driving.SettingsService) {
	settingsService = svc
}

// Execute runs the root command and releases any registry it opened.
func Execute() error {
	err := rootCmd.Execute()
	if closeErr := closeSpatial(); closeErr != nil && err == nil {
		err = closeErr
	}
	return err
}

// requireSpatial returns the injected registry, opening it on first use.
func requireSpatial() (driving.SpatialService, error) {
	if spatialService != nil {
		return spatialService, nil
	}
	if spatialOpener == nil {
		return nil, errors.New("spatial service not configured")
	}

	dataDir := loadSettings().DataDir
	if dataDirFlag != "" {
		dataDir = dataDirFlag
	}

	svc, closer, err := spatialOpener(dataDir)
	if err != nil {
		return nil, fmt.Errorf("opening registry: %w", err)
	}
	spatialService = svc
	spatialCloser = closer
	return svc, nil
}

func closeSpatial() error {
	if spatialCloser == nil {
		return nil
	}
	err := spatialCloser.Close()
	spatialCloser = nil
	spatialService = nil
	return err
}

// loadSettings returns the stored settings, or the defaults when no
// settings service is configured or it fails.
func loadSettings() domain.Settings {
	if settingsService == nil {
		return domain.DefaultSettings()
	}
	settings, err := settingsService.Get()
	if err != nil {
		logger.Warn("reading settings: %v", err)
		return domain.DefaultSettings()
	}
	return *settings
}

// colorMode resolves the colour mode: flag, then settings.
func colorMode() domain.ColorMode {
	if mode, err := domain.ParseColorMode(colorFlag); err == nil {
		return mode
	}
	return loadSettings().Color
}
