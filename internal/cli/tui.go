package cli

import (
	"github.com/spf13/cobra"

	"github.com/cipherlist/cipherlist/internal/tui"
)

var runTUIFn = tui.Run

var tuiCmd = &cobra.Command{
	Use:   "tui [expression]",
	Short: "Launch the terminal user interface",
	Long: `Launch the interactive catalog browser.

The TUI shows the resolved suite list for an editable expression, with a
detail pane covering suite attributes and per-provider cross-reference
results.

Examples:
  # Browse the default list
  cipherlist tui

  # Open with an initial expression
  cipherlist tui 'HIGH:!aNULL'`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTUI,
}

func init() {
	tuiCmd.Flags().String("theme", "default", "color theme (default, dark, light)")
}

func runTUI(cmd *cobra.Command, args []string) error {
	theme, _ := cmd.Flags().GetString("theme")

	c := GetConfig()
	if !cmd.Flags().Changed("theme") {
		theme = c.TUI.Theme
	}

	r, err := buildResolver()
	if err != nil {
		return err
	}

	return runTUIFn(r, expressionArg(args), theme)
}
