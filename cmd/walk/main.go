// walk is an endless side-scrolling runner for the terminal.
//
// Usage:
//
//	walk play                - Start a run right away
//	walk menu                - Start the menu (play, scores, quit)
//	walk scores              - Show the best runs
//	walk segments            - Print generated obstacle layouts
//	walk serve               - Start SSH server for remote play
//
// Global flags:
//
//	--seed <value>       - Set RNG seed for reproducible courses
//	--db <path>          - Set database path (default: ~/.walk/runs.db)
//	--config <path>      - Use a custom walk.yaml
//	--difficulty <name>  - easy, normal or hard
//	--log <path>         - Log file for interactive play (default: ~/.walk/walk.log)
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-walk/internal/config"
)

var (
	// Global flags
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogPath    string
	flagVerbose    bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "walk",
	Short: "Walk - an endless runner in your terminal",
	Long: `Walk is an endless side-scrolling runner. Run right, jump over stones,
slide under ceilings and land on platforms for as long as you can.

Available commands:
  play      - Start a run right away
  menu      - Interactive menu
  scores    - View the best runs
  segments  - Print generated obstacle layouts
  serve     - Start SSH server for remote play

Examples:
  walk play
  walk play --difficulty hard --seed 42
  walk menu
  walk serve --ssh :2222
  walk segments --seed 7 --count 5`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.walk/runs.db", "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom walk.yaml")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "~/.walk/walk.log", "Log file for interactive play")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Log debug messages")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(segmentsCmd)
	rootCmd.AddCommand(serveCmd)
}

// setupLogger installs the default logger writing to w.
func setupLogger(w io.Writer, prefix string) {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	log.SetDefault(logger)
}

// setupFileLogger sends logs to the --log file, since the terminal belongs to
// the TUI. The returned function closes the file.
func setupFileLogger() (func(), error) {
	path, err := expandHome(flagLogPath)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("cannot open log file: %w", err)
	}
	setupLogger(f, "walk")
	return func() { f.Close() }, nil
}

func expandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

// loadConfig resolves walk.yaml and applies the difficulty preset.
func loadConfig() (config.WalkConfig, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.WalkConfig{}, err
	}
	cfg, err := config.LoadWalk(flagConfig)
	if err != nil {
		return config.WalkConfig{}, err
	}
	config.ApplyWalkPreset(&cfg, preset)
	return cfg, nil
}

// terminalSize returns the size of stdout, or 80x24 when it is not a terminal.
func terminalSize() (width, height int) {
	width, height = 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return width, height
}
