package helix

import (
	"testing"

	"github.com/vovakirdan/tui-helix/internal/config"
	"github.com/vovakirdan/tui-helix/internal/core"
)

// testConfig returns a small, fully controlled configuration: no countdown,
// a wide gap so the ball falls through often under rotation, and a normal
// tier with no hazards unless a test overrides it.
func testConfig() config.HelixConfig {
	cfg := config.DefaultHelixConfig()
	cfg.Session.CountdownSeconds = 0
	cfg.Tower.SegmentCount = 8
	cfg.Tower.GapMin = 3
	cfg.Tower.GapMax = 3
	cfg.Tower.FinishDepth = 0
	cfg.Tiers = map[string]config.TierProfile{
		string(config.TierNormal): {BounceFrequency: 2.5, HazardMin: 0, HazardMax: 0},
	}
	return cfg
}

func testRuntime(seed int64) core.RuntimeConfig {
	rt := core.DefaultConfig()
	rt.Seed = seed
	return rt
}

func rotateRight() core.InputFrame {
	in := core.NewInputFrame()
	in.Set(core.ActionRotateRight)
	return in
}

// stepUntil advances the game with a fixed input frame until done reports
// true, failing the test when the tick budget runs out.
func stepUntil(t *testing.T, g *Game, in core.InputFrame, maxTicks int, done func() bool) {
	t.Helper()
	for i := 0; i < maxTicks; i++ {
		g.Step(in)
		if done() {
			return
		}
	}
	t.Fatalf("condition not reached within %d ticks", maxTicks)
}

func TestResetPhase(t *testing.T) {
	cfg := testConfig()
	g := New(cfg, config.TierNormal)
	g.Reset(testRuntime(1))
	if g.Phase() != PhasePlaying {
		t.Errorf("phase = %s with no countdown, expected playing", g.Phase())
	}

	cfg.Session.CountdownSeconds = 3.0
	g = New(cfg, config.TierNormal)
	g.Reset(testRuntime(1))
	if g.Phase() != PhaseCountdown {
		t.Errorf("phase = %s with countdown configured, expected countdown", g.Phase())
	}
}

func TestZeroFrequencyTierStillFalls(t *testing.T) {
	// A tier with bounce_frequency 0 would mean zero gravity: the ball
	// would hang at the start height forever. New clamps the profile to
	// the built-in tier, so the ball must drop.
	cfg := testConfig()
	cfg.Tiers[string(config.TierNormal)] = config.TierProfile{BounceFrequency: 0}
	g := New(cfg, config.TierNormal)
	g.Reset(testRuntime(1))

	startY := g.Snapshot().BallY
	for i := 0; i < 10; i++ {
		g.Step(core.NewInputFrame())
	}
	snap := g.Snapshot()
	if snap.BallY >= startY {
		t.Fatalf("ball did not fall with a zeroed tier frequency: y %f -> %f", startY, snap.BallY)
	}
	if snap.BallVel >= 0 {
		t.Errorf("ball velocity = %f after 10 ticks, expected falling", snap.BallVel)
	}
}

func TestCountdownTiming(t *testing.T) {
	cfg := testConfig()
	cfg.Session.CountdownSeconds = 0.5
	g := New(cfg, config.TierNormal)
	g.Reset(testRuntime(1)) // 60 ticks/sec: countdown ends on tick 30

	startY := g.Snapshot().BallY
	for i := 0; i < 29; i++ {
		g.Step(rotateRight())
	}
	if g.Phase() != PhaseCountdown {
		t.Fatalf("phase = %s on tick 29, expected countdown", g.Phase())
	}
	snap := g.Snapshot()
	if snap.BallY != startY {
		t.Errorf("ball moved during countdown: %f -> %f", startY, snap.BallY)
	}
	if snap.Yaw == 0 {
		t.Error("rotation input ignored during countdown")
	}
	if snap.Elapsed != 0 {
		t.Errorf("elapsed = %f during countdown", snap.Elapsed)
	}

	g.Step(core.NewInputFrame())
	if g.Phase() != PhasePlaying {
		t.Errorf("phase = %s on tick 30, expected playing", g.Phase())
	}
}

func TestDeterministicReplay(t *testing.T) {
	script := func(tick int) core.InputFrame {
		// Alternate one second of rotation with one second of stillness.
		if tick%120 < 60 {
			return rotateRight()
		}
		return core.NewInputFrame()
	}

	a := New(testConfig(), config.TierNormal)
	b := New(testConfig(), config.TierNormal)
	a.Reset(testRuntime(77))
	b.Reset(testRuntime(77))

	for i := 0; i < 1200; i++ {
		in := script(i)
		a.Step(in)
		b.Step(in)
		if a.Snapshot() != b.Snapshot() {
			t.Fatalf("snapshots diverged on tick %d:\n  a: %+v\n  b: %+v", i, a.Snapshot(), b.Snapshot())
		}
	}
}

func TestDifferentSeedsDifferentTowers(t *testing.T) {
	a := New(testConfig(), config.TierNormal)
	b := New(testConfig(), config.TierNormal)
	a.Reset(testRuntime(1))
	b.Reset(testRuntime(2))

	same := true
	for i, ra := range a.pool.Rings() {
		rb := b.pool.Rings()[i]
		if ra.Yaw != rb.Yaw {
			same = false
			break
		}
	}
	if same {
		t.Error("towers identical across different seeds")
	}
}

func TestSafeBounceRelaunches(t *testing.T) {
	g := New(testConfig(), config.TierNormal)
	g.Reset(testRuntime(3))

	var hit bool
	for i := 0; i < 600 && !hit; i++ {
		res := g.Step(core.NewInputFrame())
		for _, ev := range res.Events {
			if ev.Kind == core.ContactSafe {
				hit = true
			}
		}
	}
	if !hit {
		t.Fatal("no safe contact within 10 seconds of free fall")
	}

	snap := g.Snapshot()
	// With target height 1.8 and frequency 2.5 the launch speed is 2*h*f.
	want := 2 * 1.8 * 2.5
	if snap.BallVel != want {
		t.Errorf("launch velocity = %f, expected %f", snap.BallVel, want)
	}
	if snap.Combo != 0 {
		t.Errorf("combo = %d after a bounce, expected 0", snap.Combo)
	}
}

func TestDescentAwardsAndRecycles(t *testing.T) {
	g := New(testConfig(), config.TierNormal)
	g.Reset(testRuntime(5))
	initialLowest := g.Snapshot().PoolLowestY

	stepUntil(t, g, rotateRight(), 60*120, func() bool {
		return g.Snapshot().Score >= 3
	})

	snap := g.Snapshot()
	if snap.CurrentIndex < 3 {
		t.Errorf("current index = %d with score %d", snap.CurrentIndex, snap.Score)
	}
	if snap.PoolLowestY >= initialLowest {
		t.Errorf("pool floor did not descend: %f -> %f", initialLowest, snap.PoolLowestY)
	}
	if snap.PlatformsPassed < 3 {
		t.Errorf("platforms passed = %d, expected >= 3", snap.PlatformsPassed)
	}
}

func TestPoleTransfersAfterWarmup(t *testing.T) {
	cfg := testConfig()
	cfg.Pole.WarmupPlatforms = 2
	g := New(cfg, config.TierNormal)
	g.Reset(testRuntime(5))
	topBefore := g.Snapshot().PoleTop

	stepUntil(t, g, rotateRight(), 60*120, func() bool {
		return g.Snapshot().CurrentIndex >= 4
	})

	snap := g.Snapshot()
	if snap.PoleTop >= topBefore {
		t.Errorf("pole top did not descend after warm-up: %f -> %f", topBefore, snap.PoleTop)
	}
}

// deadlyConfig makes every non-gap slot a hazard on rings past the first,
// so the first landing after leaving the starting ring ends the run.
func deadlyConfig() config.HelixConfig {
	cfg := testConfig()
	cfg.Tiers = map[string]config.TierProfile{
		string(config.TierNormal): {BounceFrequency: 2.5, HazardMin: 5, HazardMax: 5},
	}
	return cfg
}

func TestDeadlyContactEndsRun(t *testing.T) {
	g := New(deadlyConfig(), config.TierNormal)
	g.Reset(testRuntime(9))

	stepUntil(t, g, rotateRight(), 60*300, func() bool {
		return g.Phase() == PhaseGameOver
	})

	snap := g.Snapshot()
	if snap.BallVel != 0 {
		t.Errorf("ball still moving after game over: vel %f", snap.BallVel)
	}
	if !g.State().GameOver {
		t.Error("GameState.GameOver false in game_over phase")
	}
	if g.Summary().Finished {
		t.Error("deadly run reported as finished")
	}

	// Terminal phase: further steps change nothing.
	tick := snap.Tick
	for i := 0; i < 10; i++ {
		g.Step(rotateRight())
	}
	if g.Snapshot().Tick != tick {
		t.Error("simulation advanced after game over")
	}
}

func TestFinishRingCompletesLevel(t *testing.T) {
	cfg := testConfig()
	cfg.Tower.FinishDepth = 3
	g := New(cfg, config.TierNormal)
	g.Reset(testRuntime(11))

	var finish bool
	for i := 0; i < 60*600 && g.Phase() != PhaseLevelComplete; i++ {
		res := g.Step(rotateRight())
		for _, ev := range res.Events {
			if ev.Kind == core.ContactFinish {
				finish = true
			}
		}
	}
	if g.Phase() != PhaseLevelComplete {
		t.Fatalf("phase = %s, expected level_complete", g.Phase())
	}
	if !finish {
		t.Error("no finish contact event surfaced")
	}
	if !g.Summary().Finished {
		t.Error("finished run not marked as such in summary")
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	g := New(testConfig(), config.TierNormal)
	g.Reset(testRuntime(1))
	for i := 0; i < 30; i++ {
		g.Step(core.NewInputFrame())
	}
	before := g.Snapshot()

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	g.Step(pause)
	if !g.State().Paused {
		t.Fatal("pause input did not pause")
	}
	for i := 0; i < 60; i++ {
		g.Step(rotateRight())
	}
	if g.Snapshot() != before {
		t.Errorf("state changed while paused:\n  before: %+v\n  after:  %+v", before, g.Snapshot())
	}

	g.Step(pause)
	if g.State().Paused {
		t.Error("second pause input did not resume")
	}
	if g.Snapshot().Tick == before.Tick {
		t.Error("simulation did not advance after resume")
	}
}

func TestContactHandlerMatchesStepEvents(t *testing.T) {
	g := New(deadlyConfig(), config.TierNormal)

	var handled []core.ContactEvent
	g.SetContactHandler(func(ev core.ContactEvent) {
		handled = append(handled, ev)
	})
	g.Reset(testRuntime(13))

	var returned []core.ContactEvent
	for i := 0; i < 60*300 && g.Phase() != PhaseGameOver; i++ {
		res := g.Step(rotateRight())
		returned = append(returned, res.Events...)
	}
	if g.Phase() != PhaseGameOver {
		t.Fatal("run did not end")
	}
	if len(returned) == 0 {
		t.Fatal("no contact events surfaced")
	}
	if len(handled) != len(returned) {
		t.Fatalf("handler saw %d events, step results carried %d", len(handled), len(returned))
	}
	for i := range handled {
		if handled[i] != returned[i] {
			t.Errorf("event %d mismatch: handler %+v, result %+v", i, handled[i], returned[i])
		}
	}
	if last := returned[len(returned)-1]; last.Kind != core.ContactDeadly {
		t.Errorf("final event kind = %s, expected deadly", last.Kind)
	}
}

func TestRecycleThrottleKeepsOutcomes(t *testing.T) {
	run := func(every int) Snapshot {
		cfg := deadlyConfig()
		cfg.Tower.RecycleEveryTicks = every
		g := New(cfg, config.TierNormal)
		g.Reset(testRuntime(21))
		stepUntil(t, g, rotateRight(), 60*300, func() bool {
			return g.Phase() == PhaseGameOver
		})
		return g.Snapshot()
	}

	everyTick := run(1)
	throttled := run(5)
	if everyTick != throttled {
		t.Errorf("throttled run diverged:\n  every tick: %+v\n  every 5:    %+v", everyTick, throttled)
	}
}

func TestBestInjectionAndNewBest(t *testing.T) {
	// Without a stored best, any finished run becomes the best.
	g := New(deadlyConfig(), config.TierNormal)
	g.Reset(testRuntime(9))
	stepUntil(t, g, rotateRight(), 60*300, func() bool {
		return g.Phase() == PhaseGameOver
	})
	if !g.Summary().NewBest {
		t.Error("first ever run not recorded as new best")
	}

	// With an unbeatable stored best, the same run is not a new best.
	g = New(deadlyConfig(), config.TierNormal)
	g.SetBest(BestRecord{Score: 1 << 20, Duration: 0.1}, true)
	g.Reset(testRuntime(9))
	stepUntil(t, g, rotateRight(), 60*300, func() bool {
		return g.Phase() == PhaseGameOver
	})
	if g.Summary().NewBest {
		t.Error("run beat an unbeatable stored best")
	}
	best, ok := g.Best()
	if !ok || best.Score != 1<<20 {
		t.Errorf("stored best lost: %+v ok=%v", best, ok)
	}
}

func TestRestartPreservesBest(t *testing.T) {
	g := New(deadlyConfig(), config.TierNormal)
	g.SetBest(BestRecord{Score: 50, Duration: 12.0}, true)
	g.Reset(testRuntime(9))
	stepUntil(t, g, rotateRight(), 60*300, func() bool {
		return g.Phase() == PhaseGameOver
	})

	g.Reset(testRuntime(10))
	if g.Phase() != PhasePlaying {
		t.Errorf("phase = %s after restart", g.Phase())
	}
	if g.Snapshot().Score != 0 {
		t.Errorf("score = %d after restart", g.Snapshot().Score)
	}
	best, ok := g.Best()
	if !ok || best.Score != 50 {
		t.Errorf("best lost on restart: %+v ok=%v", best, ok)
	}
}
