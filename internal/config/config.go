// Package config provides YAML-based configuration loading and difficulty
// tiers for the helix game.
package config

// HelixConfig contains all configuration for the game.
type HelixConfig struct {
	Tower    TowerConfig            `yaml:"tower"`
	Bounce   BounceConfig           `yaml:"bounce"`
	Pole     PoleConfig             `yaml:"pole"`
	Score    ScoreConfig            `yaml:"score"`
	Session  SessionConfig          `yaml:"session"`
	Controls ControlsConfig         `yaml:"controls"`
	Tiers    map[string]TierProfile `yaml:"tiers"`
}

// TowerConfig defines the platform tower geometry and generation.
type TowerConfig struct {
	SegmentCount      int     `yaml:"segment_count"`       // Angular slots per ring
	Spacing           float64 `yaml:"spacing"`             // Vertical distance between rings
	PoolSize          int     `yaml:"pool_size"`           // Live rings in the recycling pool
	GapMin            int     `yaml:"gap_min"`             // Smallest gap, in slots
	GapMax            int     `yaml:"gap_max"`             // Largest gap, in slots
	FinishDepth       int     `yaml:"finish_depth"`        // 0 = endless, >0 = finish ring index
	RecycleEveryTicks int     `yaml:"recycle_every_ticks"` // Descent check cadence (1 = every tick)
}

// BounceConfig defines the bounce physics target.
// Bounce frequency comes from the active difficulty tier.
type BounceConfig struct {
	TargetHeight float64 `yaml:"target_height"` // Peak height of every bounce
	StartHeight  float64 `yaml:"start_height"`  // Ball drop height above the first ring
}

// PoleConfig defines the central cylinder segment pool.
type PoleConfig struct {
	SegmentCount    int     `yaml:"segment_count"`    // Total pole segments
	SegmentHeight   float64 `yaml:"segment_height"`   // Height of one segment
	AboveStart      int     `yaml:"above_start"`      // Segments placed above the first ring
	WarmupPlatforms int     `yaml:"warmup_platforms"` // Crossed index before transfers begin
}

// ScoreConfig defines the scoring rules.
type ScoreConfig struct {
	BasePoints            int     `yaml:"base_points"`
	ComboEnabled          bool    `yaml:"combo_enabled"`
	ComboMultiplier       float64 `yaml:"combo_multiplier"`
	MaxCombo              int     `yaml:"max_combo"`
	AwardStartingPlatform bool    `yaml:"award_starting_platform"`
}

// SessionConfig defines session-level timing.
type SessionConfig struct {
	CountdownSeconds float64 `yaml:"countdown_seconds"` // Pre-game countdown before physics start
}

// ControlsConfig defines input scaling.
type ControlsConfig struct {
	RotateSpeed float64 `yaml:"rotate_speed"` // Tower rotation in degrees per second
}

// Normalize clamps plainly unusable values to playable ones. A bad config
// degrades to defaults instead of breaking the simulation.
func (c *HelixConfig) Normalize() {
	d := DefaultHelixConfig()

	if c.Tower.SegmentCount < 4 {
		c.Tower.SegmentCount = d.Tower.SegmentCount
	}
	if c.Tower.Spacing <= 0 {
		c.Tower.Spacing = d.Tower.Spacing
	}
	if c.Tower.PoolSize < 3 {
		c.Tower.PoolSize = d.Tower.PoolSize
	}
	if c.Tower.GapMin < 1 {
		c.Tower.GapMin = 1
	}
	if c.Tower.GapMax < c.Tower.GapMin {
		c.Tower.GapMax = c.Tower.GapMin
	}
	if c.Tower.GapMax > c.Tower.SegmentCount-1 {
		c.Tower.GapMax = c.Tower.SegmentCount - 1
	}
	if c.Tower.RecycleEveryTicks < 1 {
		c.Tower.RecycleEveryTicks = 1
	}

	// The bounce peak must stay below half a ring spacing: the platform
	// index advances half a spacing below a plane, and a ball bouncing
	// higher than that would climb back above an already recycled ring.
	maxHeight := 0.45 * c.Tower.Spacing
	if c.Bounce.TargetHeight <= 0 || c.Bounce.TargetHeight > maxHeight {
		c.Bounce.TargetHeight = maxHeight
	}
	if c.Bounce.StartHeight < 0 {
		c.Bounce.StartHeight = d.Bounce.StartHeight
	}

	if c.Pole.SegmentCount < 4 {
		c.Pole.SegmentCount = d.Pole.SegmentCount
	}
	if c.Pole.SegmentHeight <= 0 {
		c.Pole.SegmentHeight = d.Pole.SegmentHeight
	}
	if c.Pole.AboveStart < 0 || c.Pole.AboveStart >= c.Pole.SegmentCount {
		c.Pole.AboveStart = d.Pole.AboveStart
	}
	if c.Pole.WarmupPlatforms < 0 {
		c.Pole.WarmupPlatforms = d.Pole.WarmupPlatforms
	}

	if c.Score.BasePoints <= 0 {
		c.Score.BasePoints = d.Score.BasePoints
	}
	if c.Score.ComboMultiplier < 1 {
		c.Score.ComboMultiplier = d.Score.ComboMultiplier
	}
	if c.Score.MaxCombo < 1 {
		c.Score.MaxCombo = d.Score.MaxCombo
	}

	if c.Session.CountdownSeconds < 0 {
		c.Session.CountdownSeconds = d.Session.CountdownSeconds
	}
	if c.Controls.RotateSpeed <= 0 {
		c.Controls.RotateSpeed = d.Controls.RotateSpeed
	}

	if len(c.Tiers) == 0 {
		c.Tiers = DefaultTiers()
	}
	// A non-positive bounce frequency zeroes gravity and strands the ball
	// mid-air. Unknown tier names clamp against the normal profile.
	builtin := DefaultTiers()
	for name, p := range c.Tiers {
		def, ok := builtin[name]
		if !ok {
			def = builtin[string(TierNormal)]
		}
		if p.BounceFrequency <= 0 {
			p.BounceFrequency = def.BounceFrequency
		}
		if p.HazardMin < 0 {
			p.HazardMin = 0
		}
		if p.HazardMax < p.HazardMin {
			p.HazardMax = p.HazardMin
		}
		c.Tiers[name] = p
	}
}
