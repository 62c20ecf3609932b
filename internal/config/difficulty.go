package config

// Tier names a difficulty tier. Exactly one tier is active per session,
// selected before the tower is generated.
type Tier string

const (
	TierEasy   Tier = "easy"
	TierNormal Tier = "normal"
	TierHard   Tier = "hard"
	TierInsane Tier = "insane"
)

// TierOrder lists the tiers from easiest to hardest, for menus and listings.
var TierOrder = []Tier{TierEasy, TierNormal, TierHard, TierInsane}

// TierProfile holds the parameters a difficulty tier fixes for a session:
// how fast the ball bounces and how many hazards each ring carries.
type TierProfile struct {
	BounceFrequency float64 `yaml:"bounce_frequency"`
	HazardMin       int     `yaml:"hazard_min"`
	HazardMax       int     `yaml:"hazard_max"`
}

// DefaultTiers returns the built-in difficulty profiles.
func DefaultTiers() map[string]TierProfile {
	return map[string]TierProfile{
		string(TierEasy):   {BounceFrequency: 2.0, HazardMin: 0, HazardMax: 1},
		string(TierNormal): {BounceFrequency: 2.5, HazardMin: 1, HazardMax: 2},
		string(TierHard):   {BounceFrequency: 3.0, HazardMin: 1, HazardMax: 3},
		string(TierInsane): {BounceFrequency: 3.5, HazardMin: 2, HazardMax: 4},
	}
}

// ParseTier maps a user-supplied name to a known tier.
// ok is false for unknown names; callers fall back to TierNormal.
func ParseTier(name string) (Tier, bool) {
	switch Tier(name) {
	case TierEasy, TierNormal, TierHard, TierInsane:
		return Tier(name), true
	default:
		return TierNormal, false
	}
}

// Profile resolves the active tier's parameters from the config, falling
// back to the built-in profile when the config omits the tier.
func (c *HelixConfig) Profile(tier Tier) TierProfile {
	if p, ok := c.Tiers[string(tier)]; ok {
		return p
	}
	if p, ok := DefaultTiers()[string(tier)]; ok {
		return p
	}
	return DefaultTiers()[string(TierNormal)]
}
