package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-walk/internal/storage"
)

var (
	flagScoresLimit  int
	flagScoresPlayer string
	flagScoresRecent bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best runs",
	Long: `Display the best runs recorded in the run history.

Examples:
  walk scores
  walk scores --limit 20
  walk scores --player alice
  walk scores --recent
  walk scores stats
  walk scores clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

var scoresStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Summarize every recorded run",
	Args:  cobra.NoArgs,
	RunE:  runScoresStats,
}

var scoresClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete the run history",
	Args:  cobra.NoArgs,
	RunE:  runScoresClear,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().StringVar(&flagScoresPlayer, "player", "", "Only show runs by this player")
	scoresCmd.Flags().BoolVar(&flagScoresRecent, "recent", false, "Show the latest runs instead of the best")

	scoresCmd.AddCommand(scoresStatsCmd)
	scoresCmd.AddCommand(scoresClearCmd)
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("error opening runs database: %w", err)
	}
	defer store.Close()

	var (
		runs  []storage.Run
		title string
	)
	switch {
	case flagScoresPlayer != "":
		runs, err = store.PlayerRuns(flagScoresPlayer, flagScoresLimit)
		title = fmt.Sprintf("Best Runs - %s", flagScoresPlayer)
	case flagScoresRecent:
		runs, err = store.RecentRuns(flagScoresLimit)
		title = "Recent Runs"
	default:
		runs, err = store.TopRuns(flagScoresLimit)
		title = "Best Runs"
	}
	if err != nil {
		return fmt.Errorf("error retrieving runs: %w", err)
	}

	fmt.Println(title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'walk play' to record the first one!")
		return nil
	}

	fmt.Printf("  %-4s  %-8s  %-8s  %-12s  %s\n", "Rank", "Distance", "Segments", "Player", "Date")
	fmt.Printf("  %-4s  %-8s  %-8s  %-12s  %s\n", "----", "--------", "--------", "------", "----")
	for i, r := range runs {
		fmt.Printf("  %-4d  %-8d  %-8d  %-12s  %s\n",
			i+1, r.Distance, r.Segments, r.Player, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if best, err := store.BestDistance(); err == nil {
		fmt.Printf("Best: %d\n", best)
	}
	return nil
}

func runScoresStats(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("error opening runs database: %w", err)
	}
	defer store.Close()

	stats, err := store.Stats()
	if err != nil {
		return fmt.Errorf("error reading stats: %w", err)
	}

	fmt.Printf("Runs:           %d\n", stats.Runs)
	fmt.Printf("Best distance:  %d\n", stats.BestDistance)
	fmt.Printf("Total distance: %d\n", stats.TotalDistance)
	fmt.Printf("Total ticks:    %d\n", stats.TotalTicks)
	if stats.Runs > 0 {
		fmt.Printf("Mean distance:  %d\n", stats.TotalDistance/stats.Runs)
	}
	return nil
}

func runScoresClear(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("error opening runs database: %w", err)
	}
	defer store.Close()

	if err := store.ClearRuns(); err != nil {
		return fmt.Errorf("error clearing runs: %w", err)
	}
	fmt.Println("Run history cleared.")
	return nil
}
