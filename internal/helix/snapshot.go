package helix

// Snapshot captures the simulation state for determinism testing and debugging.
type Snapshot struct {
	Tick            uint64
	Phase           Phase
	Score           int
	Combo           int
	MaxCombo        int
	PlatformsPassed int
	BallY           float64
	BallVel         float64
	Yaw             float64
	CurrentIndex    int
	PoolLowestY     float64
	PoleTop         float64
	PoleBottom      float64
	Elapsed         float64
}

// Snapshot returns the current simulation snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:            g.tick,
		Phase:           g.phase,
		Score:           g.ledger.Score(),
		Combo:           g.ledger.Combo(),
		MaxCombo:        g.ledger.MaxCombo(),
		PlatformsPassed: g.ledger.PlatformsPassed(),
		BallY:           g.ballY,
		BallVel:         g.ballVel,
		Yaw:             g.yaw,
		CurrentIndex:    g.tracker.Current(),
		PoolLowestY:     g.pool.LowestY(),
		PoleTop:         g.pole.Top(),
		PoleBottom:      g.pole.Bottom(),
		Elapsed:         g.elapsed,
	}
}
