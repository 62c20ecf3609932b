package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-helix/internal/config"
	"github.com/vovakirdan/tui-helix/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores [difficulty]",
	Short: "Show best runs",
	Long: `Display the top 10 runs for a difficulty tier, or the best record
for every tier when no tier is given.

Examples:
  helix scores
  helix scores normal
  helix scores insane`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if len(args) == 0 {
		printAllBest(store)
		return
	}

	tier, ok := config.ParseTier(args[0])
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown difficulty %q\n", args[0])
		fmt.Fprintln(os.Stderr, "Run 'helix tiers' to see available tiers.")
		os.Exit(1)
	}

	runs, err := store.TopRuns(string(tier), 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Best Runs - %s\n", tier)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'helix play -d %s' to set the first record!\n", tier)
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-8s  %-8s  %-6s  %-6s  %s\n", "Rank", "Score", "Time", "Rings", "Combo", "Date")
	fmt.Printf("  %-4s  %-8s  %-8s  %-6s  %-6s  %s\n", "----", "-----", "----", "-----", "-----", "----")

	for i, run := range runs {
		dateStr := run.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-8d  %-8s  %-6d  x%-5d  %s\n",
			i+1, run.Score, fmt.Sprintf("%.1fs", run.DurationSecs), run.Platforms, run.MaxCombo, dateStr)
	}

	// Show aggregate stats
	stats, err := store.GetRunStats(string(tier))
	if err == nil && stats.RunsCount > 0 {
		fmt.Println()
		fmt.Printf("Runs: %d   Best: %d   Average: %.1f   Finished: %d\n",
			stats.RunsCount, stats.HighScore, stats.AvgScore, stats.Finished)
	}
}

// printAllBest shows the best record per difficulty tier.
func printAllBest(store *storage.Store) {
	best, err := store.AllBest()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving best runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Best run per difficulty:")
	fmt.Println()
	fmt.Printf("  %-8s  %-8s  %s\n", "Tier", "Score", "Time")
	fmt.Printf("  %-8s  %-8s  %s\n", "----", "-----", "----")

	found := false
	for _, tier := range config.TierOrder {
		entry, ok := best[string(tier)]
		if !ok {
			fmt.Printf("  %-8s  %-8s  %s\n", tier, "-", "-")
			continue
		}
		found = true
		fmt.Printf("  %-8s  %-8d  %.1fs\n", tier, entry.Score, entry.DurationSecs)
	}

	if !found {
		fmt.Println()
		fmt.Println("No runs recorded yet. Play 'helix play' to set the first record!")
	}
}
