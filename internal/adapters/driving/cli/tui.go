package cli

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/uot-apps/withdrawal-cli/internal/adapters/driven/watcher"
	"github.com/uot-apps/withdrawal-cli/internal/adapters/driving/tui"
	"github.com/uot-apps/withdrawal-cli/internal/logger"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive terminal UI",
	Long: `Launch the interactive terminal user interface for the withdrawal
workflow.

Phase one uploads and parses the academic transcript; phase two fills
in the request form and submits it for validation. Files placed in the
configured drop directory are picked up automatically.

Controls:
  ↑/k, ↓/j  - Navigate courses
  tab       - Next form field
  o         - Choose a file
  ctrl+s    - Submit the request
  esc       - Back / Close
  ctrl+c    - Quit`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	// Panic recovery keeps the stack trace visible after the alternate
	// screen is torn down.
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	svc, err := workflow()
	if err != nil {
		return err
	}

	app, err := tui.NewApp(tui.NewPorts(svc))
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}
	app.WithContext(cmd.Context())

	// The drop inbox stands in for drag-and-drop. A watcher failure is
	// not fatal; the picker still works.
	if configStore != nil {
		if dir := configStore.Settings().DropDir; dir != "" {
			inbox, err := watcher.NewInbox(dir)
			if err != nil {
				logger.Warn("drop inbox unavailable: %v", err)
			} else {
				inbox.Start(cmd.Context())
				defer inbox.Stop()
				app.WithDrops(inbox.Drops())
			}
		}
	}

	if err := app.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
