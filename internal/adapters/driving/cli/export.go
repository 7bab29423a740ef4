package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all zones and entities as JSON",
	Long: `Print every zone (including inactive ones) and every entity as a
single JSON document. Entity metadata is carried as a JSON string.`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, _ []string) error {
	svc, err := requireSpatial()
	if err != nil {
		return err
	}

	export, err := svc.Export(cmd.Context())
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(export, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding export: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
