package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-helix/internal/config"
	"github.com/vovakirdan/tui-helix/internal/core"
	"github.com/vovakirdan/tui-helix/internal/helix"
	"github.com/vovakirdan/tui-helix/internal/platform/tui"
	"github.com/vovakirdan/tui-helix/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a session",
	Long: `Start a helix session. Without --difficulty, a picker menu opens
first; after a run ends you return to the menu.

Controls:
  Left/A/H    - Rotate tower counter-clockwise
  Right/D/L   - Rotate tower clockwise
  P           - Pause
  R           - Restart (after game over)
  B/Esc       - Back to menu (from pause or game over)
  Q/Ctrl+C    - Quit

Difficulty tiers:
  easy, normal, hard, insane - faster bounces and more hazards as you go up

Examples:
  helix play
  helix play --difficulty easy
  helix play -d insane --seed 42
  helix play --config ./my-helix.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVarP(&flagDifficulty, "difficulty", "d", "", "Difficulty tier: easy, normal, hard, insane")
}

// terminalSize returns the current terminal dimensions, with fallbacks.
func terminalSize() (int, int) {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return width, height
}

func runPlay(cmd *cobra.Command, args []string) {
	// Load game config (custom path -> user dir -> local -> embedded)
	gameCfg, err := config.LoadHelix(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not load config: %v\n", err)
		gameCfg = config.DefaultHelixConfig()
	}

	width, height := terminalSize()
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Open run storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}
	defer func() {
		if store != nil {
			store.Close()
		}
	}()

	// Direct play when a difficulty is given
	if flagDifficulty != "" {
		tier, ok := config.ParseTier(flagDifficulty)
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: unknown difficulty %q\n", flagDifficulty)
			fmt.Fprintln(os.Stderr, "Run 'helix tiers' to see available tiers.")
			os.Exit(1)
		}

		game := helix.New(gameCfg, tier)
		if runErr := tui.Run(game, store, cfg); runErr != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
			os.Exit(1)
		}
		return
	}

	// Menu loop: pick a tier, play, return to menu
	for {
		menuResult, menuErr := tui.RunMenu(store, cfg)
		if menuErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", menuErr)
			return
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			return
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue // Back to menu
			}
			return // User quit from scoreboard
		}

		if !menuResult.Selected {
			return
		}

		game := helix.New(gameCfg, menuResult.Tier)
		if runErr := tui.Run(game, store, cfg); runErr != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		}

		// Loop back to menu
	}
}
