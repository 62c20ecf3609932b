// Package helix implements the Helix Jump simulation: a ball descends a
// rotating tower of procedurally generated platform rings, bouncing on safe
// segments and dying on hazard segments. All logic is pure and deterministic
// given a seeded RNG; the platform layer supplies input, timing, and display.
package helix

import "math/rand"

// IntRange is a closed integer interval [Min, Max].
type IntRange struct {
	Min int
	Max int
}

// Sample returns a uniform random value in [Min, Max].
func (r IntRange) Sample(rng *rand.Rand) int {
	if r.Max <= r.Min {
		return r.Min
	}
	return r.Min + rng.Intn(r.Max-r.Min+1)
}

// RingPlan describes the generated content of one platform ring: a
// contiguous circular gap interval plus a set of hazard slots outside it.
type RingPlan struct {
	SegmentCount int
	GapStart     int   // First slot of the gap, in [0, SegmentCount)
	GapSize      int   // Number of consecutive gap slots
	HazardSlots  []int // Slots with deadly segments, disjoint from the gap
}

// InGap reports whether a slot falls inside the plan's circular gap interval.
func (p RingPlan) InGap(slot int) bool {
	return slotInGap(slot, p.GapStart, p.GapSize, p.SegmentCount)
}

// slotInGap is the circular containment test: slot is in the gap iff its
// offset from gapStart, wrapped to [0, n), is below gapSize.
func slotInGap(slot, gapStart, gapSize, n int) bool {
	d := (slot - gapStart) % n
	if d < 0 {
		d += n
	}
	return d < gapSize
}

// PlanRing generates the gap and hazard layout for one ring.
//
// Hazard slots are rejection-sampled from the non-gap slots with a bounded
// retry budget of 2x segmentCount attempts. If the budget runs out (e.g., a
// wide gap on a small ring), the plan carries fewer hazards than requested;
// under-provisioning is deliberate degradation, never an error.
func PlanRing(segmentCount int, gap, hazard IntRange, rng *rand.Rand) RingPlan {
	plan := RingPlan{
		SegmentCount: segmentCount,
		GapStart:     rng.Intn(segmentCount),
		GapSize:      gap.Sample(rng),
	}

	hazardCount := hazard.Sample(rng)
	if hazardCount <= 0 {
		return plan
	}

	chosen := make(map[int]bool, hazardCount)
	budget := 2 * segmentCount
	for attempt := 0; attempt < budget && len(chosen) < hazardCount; attempt++ {
		slot := rng.Intn(segmentCount)
		if plan.InGap(slot) || chosen[slot] {
			continue
		}
		chosen[slot] = true
		plan.HazardSlots = append(plan.HazardSlots, slot)
	}

	return plan
}
