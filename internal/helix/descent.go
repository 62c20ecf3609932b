package helix

import "math"

// PlatformIndex maps a ball vertical position to the index of the last
// platform it fully passed. The half-spacing offset keeps the index from
// flipping exactly at a ring plane: the index advances only once the ball is
// half a spacing below the plane, so a ring is never recycled while the ball
// can still land on it. The offset is load-bearing, not cosmetic.
//
// A ball at or above the starting ring's plane yields -1.
func PlatformIndex(ballY, spacing float64) int {
	idx := int(math.Floor((-ballY - spacing/2) / spacing))
	if idx < -1 {
		idx = -1
	}
	return idx
}

// DescentTracker turns ball position samples into an ordered stream of
// newly crossed platform indices. Crossings drive pool recycling, pole
// transfer, and scoring, and must be delivered in ascending order even when
// the ball falls through several planes in one tick.
type DescentTracker struct {
	spacing   float64
	lastIndex int
	buf       []int // Reused between calls, no steady-state allocation
}

// NewDescentTracker creates a tracker positioned above the starting ring.
func NewDescentTracker(spacing float64) *DescentTracker {
	return &DescentTracker{
		spacing:   spacing,
		lastIndex: -1,
		buf:       make([]int, 0, 8),
	}
}

// Current returns the last index the tracker has advanced past.
func (t *DescentTracker) Current() int {
	return t.lastIndex
}

// Advance samples the ball position and returns every platform index newly
// crossed since the previous call, in ascending order. Skipped indices are
// caught up, never dropped; the returned slice is valid until the next call.
func (t *DescentTracker) Advance(ballY float64) []int {
	cur := PlatformIndex(ballY, t.spacing)
	t.buf = t.buf[:0]
	for idx := t.lastIndex + 1; idx <= cur; idx++ {
		t.buf = append(t.buf, idx)
	}
	if cur > t.lastIndex {
		t.lastIndex = cur
	}
	return t.buf
}

// Reset returns the tracker to its initial position above the tower.
func (t *DescentTracker) Reset() {
	t.lastIndex = -1
	t.buf = t.buf[:0]
}
