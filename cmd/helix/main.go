// helix is a terminal rendition of the helix-tower bouncing-ball game.
//
// Usage:
//
//	helix play               - Play (difficulty menu first)
//	helix play -d hard       - Play a specific difficulty directly
//	helix tiers              - List difficulty tiers
//	helix serve              - Start SSH server for remote play
//	helix scores [tier]      - Show best runs
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible towers
//	--db <path>     - Set database path (default: ~/.helix/runs.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "helix",
	Short: "Helix - Bounce down the tower in your terminal",
	Long: `Helix is a terminal game: a ball bounces down a procedurally
generated tower of rotating platform rings. Rotate the tower to steer the
ball through the gaps, avoid the hazard segments, and chain drops for
combo points.

Available commands:
  play     - Start a session (menu when no difficulty given)
  tiers    - List difficulty tiers
  serve    - Start SSH server for remote play
  scores   - View best runs

Examples:
  helix play
  helix play --difficulty hard
  helix serve --ssh :2222
  helix scores insane`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.helix/runs.db", "Path to runs database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(tiersCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
