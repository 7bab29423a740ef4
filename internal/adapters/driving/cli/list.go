package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var listAll bool

var listCmd = &cobra.Command{
	Use:       "list [zones|entities]",
	Short:     "List zones or entities",
	Long:      `List zones (the default) or entities in insertion order.`,
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"zones", "entities"},
	RunE:      runList,
}

func init() {
	listCmd.Flags().BoolVar(&listAll, "all", false, "include inactive zones")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	svc, err := requireSpatial()
	if err != nil {
		return err
	}

	target := "zones"
	if len(args) == 1 {
		target = args[0]
	}

	ctx := cmd.Context()
	p := newPrinter(cmd)

	switch target {
	case "entities":
		entities, err := svc.ListEntities(ctx)
		if err != nil {
			return err
		}
		p.Heading(fmt.Sprintf("Entities (%d)", len(entities)))
		if len(entities) == 0 {
			p.Empty("none")
		}
		for i := range entities {
			p.Entity(entities[i])
		}
	default:
		zones, err := svc.ListZones(ctx, !listAll)
		if err != nil {
			return err
		}
		p.Heading(fmt.Sprintf("Zones (%d)", len(zones)))
		if len(zones) == 0 {
			p.Empty("none")
		}
		for i := range zones {
			p.Zone(zones[i])
		}
	}
	return nil
}
