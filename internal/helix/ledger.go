package helix

import (
	"math"

	"github.com/vovakirdan/tui-helix/internal/core"
)

// BestStore supplies and persists the per-difficulty best run. The storage
// package satisfies this interface; the game only ever sees this narrow
// view of it.
type BestStore interface {
	// Best returns the stored best run for a difficulty tier.
	// ok is false when no run has been recorded yet.
	Best(difficulty string) (score int, durationSecs float64, ok bool, err error)

	// UpdateBest replaces the stored best run for a difficulty tier.
	UpdateBest(difficulty string, score int, durationSecs float64) error
}

// BestRecord is a per-difficulty (score, duration) high-score slot.
type BestRecord struct {
	Score    int
	Duration float64 // Seconds
}

// Beats reports whether a finished run displaces this record: a higher
// score always wins, an equal score wins on strictly lower duration.
func (b BestRecord) Beats(score int, duration float64) bool {
	if score != b.Score {
		return score > b.Score
	}
	return duration < b.Duration
}

// LedgerConfig holds the scoring parameters of a session.
type LedgerConfig struct {
	BasePoints            int     // Points per newly passed platform
	ComboEnabled          bool    // Whether consecutive drops earn a bonus
	ComboMultiplier       float64 // Bonus growth factor, >= 1
	MaxCombo              int     // Combo counter cap
	AwardStartingPlatform bool    // Whether index 0 is worth points
}

// ScoreLedger accumulates points for passed platforms. Each platform index
// is awarded at most once per session, enforced by a visited set; the combo
// counter grows while the ball falls through consecutive rings without
// touching a platform and resets on every safe bounce.
type ScoreLedger struct {
	cfg LedgerConfig

	score     int
	visited   map[int]bool
	combo     int
	maxCombo  int // Highest combo reached this session
	platforms int // Platforms passed this session

	best    BestRecord
	hasBest bool
}

// NewScoreLedger creates a ledger. Reset must be called at session start;
// construction does not begin a session.
func NewScoreLedger(cfg LedgerConfig) *ScoreLedger {
	return &ScoreLedger{
		cfg:     cfg,
		visited: make(map[int]bool),
	}
}

// Reset clears score, visited set, and combo for a new session.
// The injected best record survives resets.
func (l *ScoreLedger) Reset() {
	l.score = 0
	l.combo = 0
	l.maxCombo = 0
	l.platforms = 0
	for k := range l.visited {
		delete(l.visited, k)
	}
}

// SetBest injects the persisted best record for the active difficulty.
// ok is false when no best exists yet, so any finished run becomes the best.
func (l *ScoreLedger) SetBest(best BestRecord, ok bool) {
	l.best = best
	l.hasBest = ok
}

// Best returns the currently known best record and whether one exists.
func (l *ScoreLedger) Best() (BestRecord, bool) {
	return l.best, l.hasBest
}

// firstAwardable returns the lowest platform index worth points. The ball
// spawns on ring 0; leaving it only scores when configured to.
func (l *ScoreLedger) firstAwardable() int {
	if l.cfg.AwardStartingPlatform {
		return 0
	}
	return 1
}

// Award scores one newly passed platform index and returns the points
// added. Indices below the starting threshold or already visited award
// nothing, so repeated checks at the same ball position are idempotent.
func (l *ScoreLedger) Award(index int) int {
	if index < l.firstAwardable() || l.visited[index] {
		return 0
	}
	l.visited[index] = true
	l.platforms++

	points := l.cfg.BasePoints
	if l.cfg.ComboEnabled {
		step := core.Min(l.combo+1, l.cfg.MaxCombo) - 1
		points += int(math.Round(float64(l.cfg.BasePoints) * (l.cfg.ComboMultiplier - 1) * float64(step)))
		l.combo++
		if l.combo > l.maxCombo {
			l.maxCombo = l.combo
		}
	}

	l.score += points
	return points
}

// ResetCombo zeroes the combo counter. Called on every safe bounce,
// independent of whether any points were just awarded.
func (l *ScoreLedger) ResetCombo() {
	l.combo = 0
}

// Score returns the current session score.
func (l *ScoreLedger) Score() int {
	return l.score
}

// Combo returns the current combo counter.
func (l *ScoreLedger) Combo() int {
	return l.combo
}

// MaxCombo returns the highest combo reached this session.
func (l *ScoreLedger) MaxCombo() int {
	return l.maxCombo
}

// PlatformsPassed returns the number of platforms awarded this session.
func (l *ScoreLedger) PlatformsPassed() int {
	return l.platforms
}

// FinishSession evaluates a finished run against the known best record and
// returns whether it is a new best. On a tie in score the faster run wins.
// A new best replaces the in-memory record; persisting it is the platform
// layer's job.
func (l *ScoreLedger) FinishSession(score int, duration float64) bool {
	if l.hasBest && !l.best.Beats(score, duration) {
		return false
	}
	l.best = BestRecord{Score: score, Duration: duration}
	l.hasBest = true
	return true
}
