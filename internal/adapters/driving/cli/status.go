package cli

import (
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show registry status",
	Args:  cobra.NoArgs,
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, _ []string) error {
	svc, err := requireSpatial()
	if err != nil {
		return err
	}

	st, err := svc.Status(cmd.Context())
	if err != nil {
		return err
	}

	p := newPrinter(cmd)
	p.Heading("Spatial Registry Status")
	p.Field("Active zones", st.ActiveZones)
	p.Field("Total entities", st.TotalEntities)
	p.Field("Database", st.Location)
	return nil
}
