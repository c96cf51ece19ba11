package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-walk/internal/assets"
	"github.com/vovakirdan/tui-walk/internal/config"
	"github.com/vovakirdan/tui-walk/internal/platform/tui"
	"github.com/vovakirdan/tui-walk/internal/storage"
)

var (
	flagWatch  bool
	flagDebug  bool
	flagPlayer string
	flagBell   bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a run",
	Long: `Start a run right away.

Controls:
  Right/L       - Start running
  Space/Up/W    - Jump
  Down/S        - Slide
  Tab           - Toggle hit boxes and frame rate
  Enter         - New game (after a collision)
  Ctrl+S        - Save a text screenshot
  Q/Ctrl+C      - Quit

Difficulty options:
  easy   - Slower running and wider gaps between segments
  normal - The configured values
  hard   - Faster running and no gaps between segments

With --watch, edits to the --config file are picked up while playing and
take effect at the next new game. Reloaded files are used as written,
without the difficulty preset.

Examples:
  walk play
  walk play --difficulty easy
  walk play --seed 42 --debug
  walk play --config ./walk.yaml --watch`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload --config when it changes")
	playCmd.Flags().BoolVar(&flagDebug, "debug", false, "Start with hit boxes and frame rate shown")
	playCmd.Flags().StringVar(&flagPlayer, "player", "", "Name recorded with each run (default \"local\")")
	playCmd.Flags().BoolVar(&flagBell, "bell", false, "Ring the terminal bell on jumps")
}

func runPlay(_ *cobra.Command, _ []string) error {
	closeLog, err := setupFileLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if flagDebug {
		cfg.Debug.Enabled = true
	}

	bundle, err := assets.Load()
	if err != nil {
		return err
	}

	var watcher *config.Watcher
	if flagWatch {
		if flagConfig == "" {
			return errors.New("--watch needs --config")
		}
		watcher, err = config.Watch(flagConfig)
		if err != nil {
			return err
		}
		defer watcher.Close()
		log.Info("watching config", "path", watcher.Path())
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	_, err = tui.Run(bundle, playOptions(cfg, store, watcher))
	if err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}

// playOptions builds the options shared by play and menu.
func playOptions(cfg config.WalkConfig, store *storage.Store, watcher *config.Watcher) tui.Options {
	width, height := terminalSize()
	opts := tui.Options{
		Config:  cfg,
		Seed:    flagSeed,
		Player:  flagPlayer,
		Store:   store,
		Watcher: watcher,
		Width:   width,
		Height:  height,
	}
	if flagBell {
		opts.Audio = tui.NewBellAudio(os.Stdout)
	} else {
		opts.Audio = tui.NewBellAudio(nil)
	}
	return opts
}

// openStore opens the run history. Playing works without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		log.Warn("could not open runs database", "path", flagDBPath, "err", err)
		return nil
	}
	return store
}
