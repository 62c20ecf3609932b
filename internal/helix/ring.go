package helix

import "github.com/vovakirdan/tui-helix/internal/core"

// SegmentKind classifies one angular slot of a platform ring.
type SegmentKind int

const (
	KindGap    SegmentKind = iota // No platform, the ball falls through
	KindSafe                      // Solid platform, the ball bounces
	KindDeadly                    // Hazard platform, the ball dies
	KindFinish                    // Finish platform, the level is complete
)

// String returns a human-readable name for the segment kind.
func (k SegmentKind) String() string {
	switch k {
	case KindGap:
		return "gap"
	case KindSafe:
		return "safe"
	case KindDeadly:
		return "deadly"
	case KindFinish:
		return "finish"
	default:
		return "unknown"
	}
}

// Segment is one present (non-gap) slot of a ring with its base angle.
type Segment struct {
	Slot     int
	AngleDeg float64
	Deadly   bool
}

// BuildSegments enumerates the present segments of a planned ring: one entry
// per non-gap slot, at angle slot x (360 / segmentCount) degrees, tagged
// deadly when the plan placed a hazard there. Deterministic given the plan.
func BuildSegments(segmentCount int, plan RingPlan) []Segment {
	degPerSlot := 360.0 / float64(segmentCount)
	hazards := make(map[int]bool, len(plan.HazardSlots))
	for _, s := range plan.HazardSlots {
		hazards[s] = true
	}

	segments := make([]Segment, 0, segmentCount-plan.GapSize)
	for slot := 0; slot < segmentCount; slot++ {
		if plan.InGap(slot) {
			continue
		}
		segments = append(segments, Segment{
			Slot:     slot,
			AngleDeg: float64(slot) * degPerSlot,
			Deadly:   hazards[slot],
		})
	}
	return segments
}

// Ring is one platform ring of the tower. Rings live in a fixed-size pool:
// only Index, Y, Yaw, and (on recycle) the per-slot kind table are ever
// mutated, the ring itself is never reallocated.
type Ring struct {
	Index int     // Platform index, advances by pool size on recycle
	Y     float64 // Vertical position of the ring plane
	Yaw   float64 // Rotation offset in degrees, randomized per recycle

	kinds []SegmentKind // One kind per angular slot
}

// newRing allocates a ring with storage for segmentCount slots.
func newRing(index int, y float64, segmentCount int) *Ring {
	return &Ring{
		Index: index,
		Y:     y,
		kinds: make([]SegmentKind, segmentCount),
	}
}

// SetPlan fills the ring's kind table from a plan, reusing storage.
func (r *Ring) SetPlan(plan RingPlan) {
	for slot := range r.kinds {
		r.kinds[slot] = KindGap
	}
	for _, seg := range BuildSegments(len(r.kinds), plan) {
		if seg.Deadly {
			r.kinds[seg.Slot] = KindDeadly
		} else {
			r.kinds[seg.Slot] = KindSafe
		}
	}
}

// SetFinish marks every slot of the ring as a finish platform.
func (r *Ring) SetFinish() {
	for slot := range r.kinds {
		r.kinds[slot] = KindFinish
	}
}

// SegmentCount returns the number of angular slots.
func (r *Ring) SegmentCount() int {
	return len(r.kinds)
}

// KindAtSlot returns the kind of the given slot (wrapped into range).
func (r *Ring) KindAtSlot(slot int) SegmentKind {
	return r.kinds[core.WrapIndex(slot, len(r.kinds))]
}

// KindAt returns the segment kind under a world angle, accounting for the
// ring's current yaw. The ball sits at a fixed world angle; rotating the
// tower changes which slot passes underneath it.
func (r *Ring) KindAt(worldAngleDeg float64) SegmentKind {
	local := core.NormalizeDeg(worldAngleDeg - r.Yaw)
	degPerSlot := 360.0 / float64(len(r.kinds))
	slot := int(local / degPerSlot)
	return r.KindAtSlot(slot)
}
