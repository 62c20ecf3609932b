package helix

import (
	"math"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-helix/internal/config"
	"github.com/vovakirdan/tui-helix/internal/core"
)

// Phase is the session state machine. Transitions:
// countdown -> playing -> game_over | level_complete.
type Phase string

const (
	PhaseCountdown     Phase = "countdown"
	PhasePlaying       Phase = "playing"
	PhaseGameOver      Phase = "game_over"
	PhaseLevelComplete Phase = "level_complete"
)

// RunSummary describes a finished session for persistence and display.
type RunSummary struct {
	Difficulty string
	Score      int
	Duration   float64 // Seconds of play, countdown excluded
	Platforms  int
	MaxCombo   int
	Finished   bool // True when the run ended on the finish ring
	NewBest    bool
}

// Game is the helix simulation. Each Step runs two strictly ordered phases
// on a single goroutine: a physics phase (gravity integration and contact
// resolution) followed by a presentation phase (descent tracking, scoring,
// pool recycling). Nothing here suspends or runs concurrently.
type Game struct {
	cfg     config.HelixConfig
	tier    config.Tier
	profile config.TierProfile
	runtime core.RuntimeConfig
	logger  *log.Logger // Optional; nil disables logging

	rng     *rand.Rand
	pool    *PlatformPool
	pole    *Pole
	tracker *DescentTracker
	bounce  BounceModel
	ledger  *ScoreLedger

	ballY   float64
	ballVel float64
	yaw     float64 // Tower rotation in degrees
	cameraY float64 // Lowest ball position reached, for rendering

	phase         Phase
	paused        bool
	tick          uint64
	elapsed       float64 // Seconds since countdown end
	countdownLeft float64
	finished      bool
	newBest       bool

	events    []core.ContactEvent
	onContact func(core.ContactEvent) // Optional synchronous handler
}

// New creates a game for the given configuration and difficulty tier.
// Reset must be called before the first Step.
func New(cfg config.HelixConfig, tier config.Tier) *Game {
	cfg.Normalize()
	return &Game{cfg: cfg, tier: tier}
}

// SetLogger attaches a logger for degraded-path warnings. Nil is fine.
func (g *Game) SetLogger(logger *log.Logger) {
	g.logger = logger
}

// SetContactHandler registers a handler invoked synchronously for every
// contact event, before Step returns. Events also appear in StepResult.
func (g *Game) SetContactHandler(h func(core.ContactEvent)) {
	g.onContact = h
}

// SetBest injects the persisted best record for the active tier.
// Called by the platform at session start; a nil store upstream simply
// means no record is injected and any finished run becomes the best.
func (g *Game) SetBest(best BestRecord, ok bool) {
	g.ensureLedger()
	g.ledger.SetBest(best, ok)
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "helix"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Helix"
}

// Tier returns the active difficulty tier.
func (g *Game) Tier() config.Tier {
	return g.tier
}

func (g *Game) ensureLedger() {
	if g.ledger == nil {
		g.ledger = NewScoreLedger(LedgerConfig{
			BasePoints:            g.cfg.Score.BasePoints,
			ComboEnabled:          g.cfg.Score.ComboEnabled,
			ComboMultiplier:       g.cfg.Score.ComboMultiplier,
			MaxCombo:              g.cfg.Score.MaxCombo,
			AwardStartingPlatform: g.cfg.Score.AwardStartingPlatform,
		})
	}
}

// Reset initializes or restarts the session: a fresh tower, pole, tracker,
// and ledger state, with gravity and launch speed derived from the tier's
// bounce frequency before the first physics tick. The injected best record
// survives restarts.
func (g *Game) Reset(rt core.RuntimeConfig) {
	g.runtime = rt
	if g.runtime.TickRate <= 0 {
		g.runtime.TickRate = 60
	}
	g.rng = rand.New(rand.NewSource(rt.Seed))
	g.profile = g.cfg.Profile(g.tier)

	g.bounce.Configure(g.cfg.Bounce.TargetHeight, g.profile.BounceFrequency)

	tower := g.cfg.Tower
	g.pool = NewPlatformPool(
		tower.PoolSize,
		tower.Spacing,
		tower.SegmentCount,
		IntRange{Min: tower.GapMin, Max: tower.GapMax},
		IntRange{Min: g.profile.HazardMin, Max: g.profile.HazardMax},
		tower.FinishDepth,
		g.rng,
	)
	g.pole = NewPole(g.cfg.Pole.SegmentCount, g.cfg.Pole.SegmentHeight, g.cfg.Pole.AboveStart)
	g.tracker = NewDescentTracker(tower.Spacing)

	g.ensureLedger()
	g.ledger.Reset()

	g.ballY = g.cfg.Bounce.StartHeight
	g.ballVel = 0
	g.yaw = 0
	g.cameraY = 0
	g.paused = false
	g.tick = 0
	g.elapsed = 0
	g.finished = false
	g.newBest = false
	g.events = g.events[:0]

	g.countdownLeft = g.cfg.Session.CountdownSeconds
	if g.countdownLeft > 0 {
		g.phase = PhaseCountdown
	} else {
		g.phase = PhasePlaying
	}
}

// Step advances the simulation by one fixed tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.events = g.events[:0]

	if g.phase == PhaseGameOver || g.phase == PhaseLevelComplete {
		return g.result()
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return g.result()
	}

	g.tick++
	dt := 1.0 / float64(g.runtime.TickRate)

	// Rotation input is live even during the countdown, so the player can
	// line up the first gap before the drop.
	g.yaw = core.NormalizeDeg(g.yaw + in.Rotation()*g.cfg.Controls.RotateSpeed*dt)

	if g.phase == PhaseCountdown {
		// Plain deadline check against the tick clock, no scheduled callback.
		g.countdownLeft -= dt
		if g.countdownLeft <= 0 {
			g.countdownLeft = 0
			g.phase = PhasePlaying
			g.ledger.Reset() // Session scoring starts at countdown end
		}
		return g.result()
	}

	g.elapsed += dt

	// Phase 1: physics. May end the session on a deadly or finish contact.
	g.stepPhysics(dt)

	if g.ballY < g.cameraY {
		g.cameraY = g.ballY
	}

	// Phase 2: presentation. The descent check may be throttled, but
	// catch-up in the tracker keeps observable outcomes identical.
	if g.phase == PhasePlaying && g.tick%uint64(g.cfg.Tower.RecycleEveryTicks) == 0 {
		g.advanceDescent()
	}

	return g.result()
}

func (g *Game) result() core.StepResult {
	return core.StepResult{State: g.State(), Events: g.events}
}

// stepPhysics integrates gravity and resolves ring-plane crossings for this
// tick. Planes between the previous and new ball position are visited top
// to bottom; the first non-gap segment under the ball stops the sweep.
func (g *Game) stepPhysics(dt float64) {
	g.ballVel = g.bounce.Integrate(g.ballVel, dt)
	prevY := g.ballY
	newY := prevY + g.ballVel*dt

	if g.ballVel < 0 {
		spacing := g.pool.Spacing()
		// Ring i sits at plane -i*spacing. Crossed planes this tick are
		// those at or below prevY and at or above newY.
		first := int(math.Ceil(-prevY/spacing - 1e-9))
		last := int(math.Floor(-newY/spacing + 1e-9))
		for i := first; i <= last; i++ {
			if i < 0 {
				continue
			}
			if g.resolvePlane(i) {
				return
			}
		}
	}

	g.ballY = newY
}

// resolvePlane checks the ring at platform index i against the ball's world
// angle and applies the contact. Returns true when the fall stopped there.
func (g *Game) resolvePlane(i int) bool {
	ring := g.pool.RingFor(i)
	if ring == nil {
		// Pool out of sync with ball position; skip the plane rather than
		// crash the loop.
		g.warn("no live ring for crossed plane", "index", i)
		return false
	}

	kind := g.kindUnderBall(ring)

	switch kind {
	case KindGap:
		return false

	case KindSafe:
		g.ballY = ring.Y
		g.ballVel = g.bounce.LaunchSpeed()
		g.ledger.ResetCombo()
		g.emit(core.ContactEvent{Kind: core.ContactSafe, RingIndex: i})
		return true

	case KindDeadly:
		g.ballY = ring.Y
		g.halt()
		g.phase = PhaseGameOver
		g.emit(core.ContactEvent{Kind: core.ContactDeadly, RingIndex: i})
		g.closeSession(false)
		return true

	case KindFinish:
		g.ballY = ring.Y
		g.halt()
		g.phase = PhaseLevelComplete
		g.emit(core.ContactEvent{Kind: core.ContactFinish, RingIndex: i})
		g.closeSession(true)
		return true
	}
	return false
}

// kindUnderBall returns the segment kind under the ball. The ball sits at
// a fixed world angle of 0; the whole tower is rotated by g.yaw on top of
// each ring's own yaw offset, so the slot under the ball is the one at
// local angle -(towerYaw + ringYaw).
func (g *Game) kindUnderBall(ring *Ring) SegmentKind {
	return ring.KindAt(-g.yaw)
}

// halt zeroes velocity and freezes the ball where it is.
func (g *Game) halt() {
	g.ballVel = 0
}

// closeSession finalizes scoring once. Already-awarded state stands; any
// pending descent catch-up is flushed first so the final score is complete.
func (g *Game) closeSession(finished bool) {
	g.advanceDescent()
	g.finished = finished
	g.newBest = g.ledger.FinishSession(g.ledger.Score(), g.elapsed)
}

// advanceDescent runs the presentation-phase catch-up: every newly crossed
// platform index, in ascending order, awards points, recycles the passed
// ring to the bottom of the tower, and past the warm-up threshold transfers
// a pole segment.
func (g *Game) advanceDescent() {
	for _, idx := range g.tracker.Advance(g.ballY) {
		g.ledger.Award(idx)
		if !g.pool.Recycle(idx) {
			g.warn("recycle skipped, ring not live", "index", idx)
		}
		if idx >= g.cfg.Pole.WarmupPlatforms {
			g.pole.TransferTopToBottom()
		}
	}
}

// emit records a contact event and dispatches it to the registered handler.
func (g *Game) emit(ev core.ContactEvent) {
	g.events = append(g.events, ev)
	if g.onContact != nil {
		g.onContact(ev)
	}
}

func (g *Game) warn(msg string, kv ...any) {
	if g.logger != nil {
		g.logger.Warn(msg, kv...)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.ledger.Score(),
		GameOver: g.phase == PhaseGameOver || g.phase == PhaseLevelComplete,
		Paused:   g.paused,
	}
}

// Phase returns the current session phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Elapsed returns seconds of play since the countdown ended.
func (g *Game) Elapsed() float64 {
	return g.elapsed
}

// Best returns the currently known best record for the active tier.
func (g *Game) Best() (BestRecord, bool) {
	g.ensureLedger()
	return g.ledger.Best()
}

// Summary describes the finished (or current) session for persistence.
func (g *Game) Summary() RunSummary {
	return RunSummary{
		Difficulty: string(g.tier),
		Score:      g.ledger.Score(),
		Duration:   g.elapsed,
		Platforms:  g.ledger.PlatformsPassed(),
		MaxCombo:   g.ledger.MaxCombo(),
		Finished:   g.finished,
		NewBest:    g.newBest,
	}
}

// Compile-time check: Game satisfies the platform's game interface.
var _ core.Game = (*Game)(nil)
