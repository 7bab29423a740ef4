package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var proximityThreshold float64

var proximityCmd = &cobra.Command{
	Use:   "proximity <entity_name>",
	Short: "List entities near an entity",
	Long: `List the entities within --threshold of the named entity, nearest
first. The entity itself is excluded. When several entities share the
name, the first registered one is used.

When --threshold is not given the query.default_threshold setting is used.`,
	Args: cobra.ExactArgs(1),
	RunE: runProximity,
}

var inZoneCmd = &cobra.Command{
	Use:   "in-zone <zone_name>",
	Short: "List entities inside a zone",
	Long:  `List the entities inside the named zone, nearest to the center first.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runInZone,
}

func init() {
	proximityCmd.Flags().Float64Var(&proximityThreshold, "threshold", 50, "maximum distance (default from settings)")
	rootCmd.AddCommand(proximityCmd)
	rootCmd.AddCommand(inZoneCmd)
}

func runProximity(cmd *cobra.Command, args []string) error {
	svc, err := requireSpatial()
	if err != nil {
		return err
	}

	threshold := proximityThreshold
	if !cmd.Flags().Changed("threshold") {
		threshold = loadSettings().DefaultThreshold
	}

	matches, err := svc.ProximityCheck(cmd.Context(), args[0], threshold)
	if err != nil {
		return err
	}

	p := newPrinter(cmd)
	p.Heading(fmt.Sprintf("Entities within %s of '%s'", strconv.FormatFloat(threshold, 'g', -1, 64), args[0]))
	if len(matches) == 0 {
		p.Empty("none found")
	}
	for i := range matches {
		p.Match(matches[i])
	}
	return nil
}

func runInZone(cmd *cobra.Command, args []string) error {
	svc, err := requireSpatial()
	if err != nil {
		return err
	}

	matches, err := svc.FindEntitiesInZone(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	p := newPrinter(cmd)
	p.Heading(fmt.Sprintf("Entities in zone '%s'", args[0]))
	if len(matches) == 0 {
		p.Empty("none found")
	}
	for i := range matches {
		p.Match(matches[i])
	}
	return nil
}
