package helix

import (
	"math/rand"
	"testing"
)

func newTestPool(k int, finishDepth int, seed int64) *PlatformPool {
	rng := rand.New(rand.NewSource(seed))
	return NewPlatformPool(k, 4.0, 12, IntRange{Min: 1, Max: 3}, IntRange{Min: 1, Max: 3}, finishDepth, rng)
}

func TestPoolInitialization(t *testing.T) {
	p := newTestPool(20, 0, 1)

	if p.Len() != 20 {
		t.Fatalf("pool size = %d, expected 20", p.Len())
	}

	for i := 0; i < 20; i++ {
		ring := p.RingFor(i)
		if ring == nil {
			t.Fatalf("RingFor(%d) = nil on fresh pool", i)
		}
		if ring.Index != i {
			t.Errorf("ring %d has index %d", i, ring.Index)
		}
		wantY := -float64(i) * 4.0
		if ring.Y != wantY {
			t.Errorf("ring %d at y=%f, expected %f", i, ring.Y, wantY)
		}
	}

	if p.LowestY() != -19*4.0 {
		t.Errorf("lowestY = %f, expected %f", p.LowestY(), -19*4.0)
	}
}

func TestPoolStartingRingHasNoHazards(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		p := newTestPool(10, 0, seed)
		ring := p.RingFor(0)
		for slot := 0; slot < ring.SegmentCount(); slot++ {
			if ring.KindAtSlot(slot) == KindDeadly {
				t.Fatalf("seed %d: starting ring has a hazard at slot %d", seed, slot)
			}
		}
	}
}

func TestPoolBoundedness(t *testing.T) {
	const k = 20
	p := newTestPool(k, 0, 2)

	// Recycle far more rings than the pool holds; the live count must stay
	// exactly k and indices must keep advancing by k.
	for idx := 0; idx < 500; idx++ {
		if !p.Recycle(idx) {
			t.Fatalf("Recycle(%d) failed", idx)
		}
	}

	if p.Len() != k {
		t.Fatalf("pool grew to %d rings after 500 recycles", p.Len())
	}

	// After recycling indices 0..499, the live window is 500..519.
	for idx := 500; idx < 500+k; idx++ {
		ring := p.RingFor(idx)
		if ring == nil {
			t.Fatalf("RingFor(%d) = nil, live window lost", idx)
		}
		if ring.Index != idx {
			t.Errorf("ring for index %d carries index %d", idx, ring.Index)
		}
	}

	// Old indices are gone.
	if p.RingFor(0) != nil {
		t.Error("RingFor(0) should be nil after recycling")
	}
	if p.RingFor(499) != nil {
		t.Error("RingFor(499) should be nil after recycling")
	}
}

func TestPoolRecyclePositions(t *testing.T) {
	p := newTestPool(5, 0, 3)
	lowest := p.LowestY()

	if !p.Recycle(0) {
		t.Fatal("Recycle(0) failed")
	}

	ring := p.RingFor(5)
	if ring == nil {
		t.Fatal("recycled ring not addressable at index 5")
	}
	if ring.Y != lowest-4.0 {
		t.Errorf("recycled ring at y=%f, expected %f", ring.Y, lowest-4.0)
	}
	if p.LowestY() != lowest-4.0 {
		t.Errorf("lowestY = %f, expected %f", p.LowestY(), lowest-4.0)
	}
}

func TestPoolRecycleStaleIndex(t *testing.T) {
	p := newTestPool(5, 0, 4)

	if p.Recycle(7) {
		t.Error("recycling a not-yet-live index should be a no-op")
	}
	if p.Recycle(-1) {
		t.Error("recycling a negative index should be a no-op")
	}

	p.Recycle(0)
	if p.Recycle(0) {
		t.Error("recycling the same index twice should be a no-op")
	}
}

func TestPoolFinishRing(t *testing.T) {
	p := newTestPool(10, 5, 5)

	ring := p.RingFor(5)
	for slot := 0; slot < ring.SegmentCount(); slot++ {
		if ring.KindAtSlot(slot) != KindFinish {
			t.Fatalf("finish ring slot %d is %v, expected finish", slot, ring.KindAtSlot(slot))
		}
	}

	// Neighboring rings are ordinary.
	prev := p.RingFor(4)
	finishSlots := 0
	for slot := 0; slot < prev.SegmentCount(); slot++ {
		if prev.KindAtSlot(slot) == KindFinish {
			finishSlots++
		}
	}
	if finishSlots != 0 {
		t.Errorf("ring 4 has %d finish slots, expected none", finishSlots)
	}
}

func TestPoolFinishRingViaRecycle(t *testing.T) {
	// Finish depth beyond the initial pool window appears through recycling.
	p := newTestPool(5, 7, 6)

	p.Recycle(0) // New index 5
	p.Recycle(1) // New index 6
	p.Recycle(2) // New index 7 = finish

	ring := p.RingFor(7)
	if ring == nil {
		t.Fatal("ring 7 not live after recycling")
	}
	for slot := 0; slot < ring.SegmentCount(); slot++ {
		if ring.KindAtSlot(slot) != KindFinish {
			t.Fatalf("recycled finish ring slot %d is %v", slot, ring.KindAtSlot(slot))
		}
	}
}
