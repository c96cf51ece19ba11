package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-walk/internal/assets"
	"github.com/vovakirdan/tui-walk/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the interactive menu",
	Long: `Start walk in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select.
After a run, Esc returns to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Q            - Quit

Examples:
  walk menu
  walk menu --difficulty hard
  walk menu --db ./runs.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	closeLog, err := setupFileLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	bundle, err := assets.Load()
	if err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	width, height := terminalSize()
	for {
		result, err := tui.RunMenu(store, width, height)
		if err != nil {
			return err
		}
		width, height = result.Width, result.Height

		switch result.Choice {
		case tui.MenuChoiceScores:
			goBack, err := tui.RunScoreboard(store, flagPlayer, width, height)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
			if !goBack {
				return nil
			}

		case tui.MenuChoicePlay:
			opts := playOptions(cfg, store, nil)
			opts.Width, opts.Height = width, height
			backToMenu, err := tui.Run(bundle, opts)
			if err != nil {
				return fmt.Errorf("error running game: %w", err)
			}
			if !backToMenu {
				return nil
			}

		default:
			return nil
		}
	}
}
