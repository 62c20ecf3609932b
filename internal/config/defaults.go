package config

import (
	_ "embed"
)

//go:embed defaults/helix.yaml
var defaultHelixYAML []byte

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultHelixYAML
}

// DefaultHelixConfig returns the hardcoded default configuration, used as
// the last fallback when even the embedded YAML cannot be parsed.
func DefaultHelixConfig() HelixConfig {
	return HelixConfig{
		Tower: TowerConfig{
			SegmentCount:      12,
			Spacing:           4.0,
			PoolSize:          20,
			GapMin:            1,
			GapMax:            3,
			FinishDepth:       0, // Endless
			RecycleEveryTicks: 1,
		},
		Bounce: BounceConfig{
			TargetHeight: 1.8,
			StartHeight:  1.8,
		},
		Pole: PoleConfig{
			SegmentCount:    24,
			SegmentHeight:   4.0,
			AboveStart:      2,
			WarmupPlatforms: 4,
		},
		Score: ScoreConfig{
			BasePoints:            1,
			ComboEnabled:          true,
			ComboMultiplier:       1.5,
			MaxCombo:              5,
			AwardStartingPlatform: false,
		},
		Session: SessionConfig{
			CountdownSeconds: 3.0,
		},
		Controls: ControlsConfig{
			RotateSpeed: 180.0,
		},
		Tiers: DefaultTiers(),
	}
}
