package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and change the defaults used by the other commands.

Keys:
  storage.data_dir         - directory holding the registry database
  query.default_threshold  - proximity threshold when --threshold is omitted
  zone.default_radius      - zone radius when --radius is omitted
  output.color             - auto, always or never`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	Args:  cobra.NoArgs,
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a setting",
	Args:  cobra.ExactArgs(2),
	RunE:  runSettingsSet,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	dataDir := settings.DataDir
	if dataDir == "" {
		dataDir = "(default)"
	}

	p := newPrinter(cmd)
	p.Heading("Current Settings")
	p.Field("Data dir", dataDir)
	p.Field("Threshold", settings.DefaultThreshold)
	p.Field("Radius", settings.DefaultRadius)
	p.Field("Color", settings.Color)
	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	key, value := args[0], args[1]
	if err := settingsService.Set(key, value); err != nil {
		return fmt.Errorf("%w (keys: %s)", err, strings.Join(settingsService.Keys(), ", "))
	}

	cmd.Printf("%s = %s\n", key, value)
	return nil
}
