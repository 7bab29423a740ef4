package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/spatial-cli/internal/adapters/driving/tui"
	"github.com/custodia-labs/spatial-cli/internal/core/ports/driving"
	"github.com/custodia-labs/spatial-cli/internal/logger"
)

// isTerminal reports whether stdout is a terminal. Replaced in tests.
var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Browse zones and entities interactively",
	Long: `Launch a read-only terminal browser for the registry.

Controls:
  ↑/k, ↓/j - Navigate rows
  Tab      - Switch between zones and entities
  Enter    - Show the entities inside the selected zone
  Esc      - Back to zones
  r        - Refresh (also automatic with --watch)
  q        - Quit`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

var tuiWatch bool

func init() {
	tuiCmd.Flags().BoolVar(&tuiWatch, "watch", true, "reload when another process writes to the registry")
	rootCmd.AddCommand(tuiCmd)
}

// watchRegistry starts a watcher on the registry database, or returns nil
// when the registry is not file-backed or cannot be watched.
func watchRegistry(ctx context.Context, svc driving.SpatialService) *tui.Watcher {
	st, err := svc.Status(ctx)
	if err != nil || st.Location == "" {
		return nil
	}
	if info, err := os.Stat(st.Location); err != nil || info.IsDir() {
		return nil
	}

	w, err := tui.NewWatcher(st.Location)
	if err != nil {
		logger.Warn("live reload disabled: %v", err)
		return nil
	}
	return w
}

func runTUI(cmd *cobra.Command, _ []string) error {
	if !isTerminal() {
		return errors.New("tui requires an interactive terminal")
	}

	svc, err := requireSpatial()
	if err != nil {
		return err
	}

	app, err := tui.NewApp(&tui.Ports{Spatial: svc})
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}
	app.WithContext(cmd.Context())

	if tuiWatch {
		if w := watchRegistry(cmd.Context(), svc); w != nil {
			defer w.Close()
			app.WithWatcher(w)
		}
	}

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
