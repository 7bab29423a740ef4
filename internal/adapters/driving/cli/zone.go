package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/spatial-cli/internal/core/domain"
)

var (
	zoneCX     float64
	zoneCY     float64
	zoneCZ     float64
	zoneRadius float64
	zoneType   string
)

var addZoneCmd = &cobra.Command{
	Use:   "add-zone <name>",
	Short: "Create a spherical zone",
	Long: `Create a named spherical zone. Zone names are unique.

When --radius is not given the zone.default_radius setting is used.`,
	Args: cobra.ExactArgs(1),
	RunE: runAddZone,
}

func init() {
	addZoneCmd.Flags().Float64Var(&zoneCX, "cx", 0, "center x")
	addZoneCmd.Flags().Float64Var(&zoneCY, "cy", 0, "center y")
	addZoneCmd.Flags().Float64Var(&zoneCZ, "cz", 0, "center z")
	addZoneCmd.Flags().Float64Var(&zoneRadius, "radius", 10, "radius (default from settings)")
	addZoneCmd.Flags().StringVar(&zoneType, "type", domain.DefaultZoneType, "zone type")
	rootCmd.AddCommand(addZoneCmd)
}

func runAddZone(cmd *cobra.Command, args []string) error {
	svc, err := requireSpatial()
	if err != nil {
		return err
	}

	radius := zoneRadius
	if !cmd.Flags().Changed("radius") {
		radius = loadSettings().DefaultRadius
	}

	zone, err := svc.CreateZone(cmd.Context(), domain.ZoneSpec{
		Name:   args[0],
		Center: domain.Point{X: zoneCX, Y: zoneCY, Z: zoneCZ},
		Radius: radius,
		Type:   zoneType,
	})
	if err != nil {
		return err
	}

	newPrinter(cmd).Created("Zone", zone.Name, "created", zone.ID)
	return nil
}
