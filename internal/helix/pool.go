package helix

import "math/rand"

// PlatformPool holds a fixed number of platform rings and recycles them as
// the ball descends, giving an unbounded tower with bounded memory. The ring
// for platform index i is always rings[i mod K], so lookup is O(1) and the
// live ring count never changes after initialization.
//
// Content policy: every recycle replans the ring's gap and hazards (and
// re-randomizes yaw), so the tower never visibly repeats. The alternative
// policy of keeping content fixed per pool slot is not used.
type PlatformPool struct {
	rings   []*Ring
	spacing float64
	lowestY float64

	segmentCount int
	gap          IntRange
	hazard       IntRange
	finishDepth  int // 0 = endless, >0 = index of the all-safe finish ring
	rng          *rand.Rand
}

// NewPlatformPool builds k rings at y = 0, -spacing, -2*spacing, ..., each
// planned independently with a random initial yaw. Ring 0 is the starting
// ring the ball drops onto: it keeps its gap but carries no hazards, so a
// session can never end on the first contact.
func NewPlatformPool(k int, spacing float64, segmentCount int, gap, hazard IntRange, finishDepth int, rng *rand.Rand) *PlatformPool {
	p := &PlatformPool{
		rings:        make([]*Ring, 0, k),
		spacing:      spacing,
		segmentCount: segmentCount,
		gap:          gap,
		hazard:       hazard,
		finishDepth:  finishDepth,
		rng:          rng,
	}

	for i := 0; i < k; i++ {
		ring := newRing(i, -float64(i)*spacing, segmentCount)
		p.populate(ring)
		p.rings = append(p.rings, ring)
		p.lowestY = ring.Y
	}
	return p
}

// populate assigns fresh content and yaw to a ring based on its index.
func (p *PlatformPool) populate(ring *Ring) {
	ring.Yaw = p.rng.Float64() * 360
	switch {
	case p.finishDepth > 0 && ring.Index == p.finishDepth:
		ring.SetFinish()
	case ring.Index == 0:
		ring.SetPlan(PlanRing(p.segmentCount, p.gap, IntRange{}, p.rng))
	default:
		ring.SetPlan(PlanRing(p.segmentCount, p.gap, p.hazard, p.rng))
	}
}

// Len returns the fixed pool capacity.
func (p *PlatformPool) Len() int {
	return len(p.rings)
}

// Spacing returns the vertical distance between ring planes.
func (p *PlatformPool) Spacing() float64 {
	return p.spacing
}

// LowestY returns the plane of the lowest live ring.
func (p *PlatformPool) LowestY() float64 {
	return p.lowestY
}

// RingFor returns the physical ring assigned to a platform index, or nil if
// that index is not currently live (already recycled away, or beyond the
// lowest built ring). Callers treat nil as a degraded no-op.
func (p *PlatformPool) RingFor(index int) *Ring {
	if index < 0 {
		return nil
	}
	ring := p.rings[index%len(p.rings)]
	if ring.Index != index {
		return nil
	}
	return ring
}

// Recycle moves the ring owned by the passed platform index to the bottom of
// the tower: spacing below the current lowest ring, with a new yaw and
// freshly planned content. Its index advances by the pool size, preserving
// the index-mod-K addressing. A stale or unknown index is ignored.
func (p *PlatformPool) Recycle(index int) bool {
	ring := p.RingFor(index)
	if ring == nil {
		return false
	}

	ring.Index = index + len(p.rings)
	ring.Y = p.lowestY - p.spacing
	p.lowestY = ring.Y
	p.populate(ring)
	return true
}

// Rings returns the live rings in pool order (not index order); used by
// rendering, which filters by visibility.
func (p *PlatformPool) Rings() []*Ring {
	return p.rings
}
