// Command spatial is a persistence-backed registry of 3D zones and entities.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/custodia-labs/spatial-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/spatial-cli/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/spatial-cli/internal/adapters/driving/cli"
	"github.com/custodia-labs/spatial-cli/internal/core/ports/driving"
	"github.com/custodia-labs/spatial-cli/internal/core/services"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	// SPATIAL_HOME replaces ~/.spatial for both config and data.
	home := os.Getenv("SPATIAL_HOME")
	configStore, err := file.NewConfigStore(home)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: loading config: %v\n", err)
		return 1
	}

	cli.SetVersion(version)
	cli.SetSettingsService(services.NewSettingsService(configStore))
	cli.SetSpatialOpener(func(dataDir string) (driving.SpatialService, io.Closer, error) {
		if dataDir == "" && home != "" {
			dataDir = filepath.Join(home, "data")
		}
		return openRegistry(dataDir)
	})

	if err := cli.Execute(); err != nil {
		return 1
	}
	return 0
}

// openRegistry opens the SQLite registry in dataDir. An empty dataDir
// selects ~/.spatial/data.
func openRegistry(dataDir string) (driving.SpatialService, io.Closer, error) {
	store, err := sqlite.NewStore(dataDir)
	if err != nil {
		return nil, nil, err
	}

	svc := services.NewSpatialService(store.ZoneStore(), store.EntityStore(), services.SpatialConfig{
		Location: store.Path(),
	})
	return svc, store, nil
}
