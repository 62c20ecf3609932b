package helix

import "testing"

func TestPlatformIndexBoundary(t *testing.T) {
	// With spacing 4.0 the index must be stable around the ring-1 seam:
	// the half-spacing offset shifts the increment to -10, not -8.
	tests := []struct {
		ballY    float64
		expected int
	}{
		{1.8, -1},   // Above the starting ring
		{0.0, -1},   // On the starting ring's plane
		{-1.999, -1},
		{-2.0, 0},   // Half a spacing below ring 0
		{-4.0, 0},   // On ring 1's plane, ring 0 passed
		{-7.999, 1},
		{-8.0, 1},   // Exactly on ring 2's plane: still index 1
		{-8.001, 1},
		{-9.999, 1},
		{-10.0, 2},  // Half a spacing below ring 2's plane
		{-42.0, 10},
	}

	for _, tc := range tests {
		if got := PlatformIndex(tc.ballY, 4.0); got != tc.expected {
			t.Errorf("PlatformIndex(%f, 4.0) = %d, expected %d", tc.ballY, got, tc.expected)
		}
	}
}

func TestPlatformIndexClamp(t *testing.T) {
	if got := PlatformIndex(100.0, 4.0); got != -1 {
		t.Errorf("index far above the tower = %d, expected -1", got)
	}
}

func TestAdvanceSingleSteps(t *testing.T) {
	tr := NewDescentTracker(4.0)

	if got := tr.Advance(0); len(got) != 0 {
		t.Errorf("no crossing expected at start, got %v", got)
	}

	got := tr.Advance(-2.5)
	if len(got) != 1 || got[0] != 0 {
		t.Errorf("expected [0], got %v", got)
	}

	got = tr.Advance(-6.5)
	if len(got) != 1 || got[0] != 1 {
		t.Errorf("expected [1], got %v", got)
	}
}

func TestAdvanceCatchUp(t *testing.T) {
	// A multi-spacing fall in one sample must deliver every skipped index
	// in ascending order, not just the latest.
	tr := NewDescentTracker(4.0)

	got := tr.Advance(-13.0) // Index floor((13-2)/4) = 2
	want := []int{0, 1, 2}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestAdvanceIdempotent(t *testing.T) {
	tr := NewDescentTracker(4.0)

	tr.Advance(-13.0)
	if got := tr.Advance(-13.0); len(got) != 0 {
		t.Errorf("same position advanced twice, got %v", got)
	}

	// A bounce back up must not rewind the tracker.
	if got := tr.Advance(-11.0); len(got) != 0 {
		t.Errorf("upward movement produced crossings: %v", got)
	}
	if tr.Current() != 2 {
		t.Errorf("current index = %d, expected 2", tr.Current())
	}
}

func TestTrackerReset(t *testing.T) {
	tr := NewDescentTracker(4.0)
	tr.Advance(-20.0)
	tr.Reset()

	if tr.Current() != -1 {
		t.Errorf("current after reset = %d, expected -1", tr.Current())
	}
	got := tr.Advance(-2.5)
	if len(got) != 1 || got[0] != 0 {
		t.Errorf("tracker did not restart from index 0, got %v", got)
	}
}
