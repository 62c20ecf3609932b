package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-helix/internal/config"
)

var tiersCmd = &cobra.Command{
	Use:   "tiers",
	Short: "List difficulty tiers",
	Long:  `Shows the available difficulty tiers and their parameters.`,
	Run:   runTiers,
}

func runTiers(cmd *cobra.Command, args []string) {
	cfg, err := config.LoadHelix("")
	if err != nil {
		cfg = config.DefaultHelixConfig()
	}

	fmt.Println("Difficulty tiers:")
	fmt.Println()
	fmt.Printf("  %-8s  %-8s  %s\n", "Tier", "Bounce", "Hazards")
	fmt.Printf("  %-8s  %-8s  %s\n", "----", "------", "-------")

	for _, tier := range config.TierOrder {
		p := cfg.Profile(tier)
		fmt.Printf("  %-8s  %-8.1f  %d-%d per ring\n", tier, p.BounceFrequency, p.HazardMin, p.HazardMax)
	}

	fmt.Println()
	fmt.Println("Run 'helix play -d <tier>' to play a tier directly.")
}
