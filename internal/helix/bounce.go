package helix

import "math"

// BounceModel is the closed-form solver for frequency-invariant bouncing.
// Given a target bounce height h and a bounce frequency f, it derives the
// constant gravity and the instantaneous launch speed such that a launched
// ball just reaches h regardless of f:
//
//	gravity     = 2 * h * f^2
//	launchSpeed = sqrt(2 * gravity * h) = 2 * h * f
//
// Higher frequency means a shorter bounce cycle at the same peak height.
type BounceModel struct {
	targetHeight float64
	frequency    float64
	gravity      float64
	launchSpeed  float64
}

// Configure recomputes gravity and launch speed from the given parameters.
// Must be called before the first physics tick and again whenever the
// target height or frequency changes at runtime.
func (b *BounceModel) Configure(targetHeight, frequency float64) {
	b.targetHeight = targetHeight
	b.frequency = frequency
	b.gravity = 2 * targetHeight * frequency * frequency
	b.launchSpeed = math.Sqrt(2 * b.gravity * targetHeight)
}

// TargetHeight returns the configured peak bounce height.
func (b *BounceModel) TargetHeight() float64 {
	return b.targetHeight
}

// Frequency returns the configured bounce frequency.
func (b *BounceModel) Frequency() float64 {
	return b.frequency
}

// Gravity returns the derived constant downward acceleration.
func (b *BounceModel) Gravity() float64 {
	return b.gravity
}

// LaunchSpeed returns the derived upward speed applied on safe contact.
// The launch overwrites the ball's velocity, it is not an impulse add.
func (b *BounceModel) LaunchSpeed() float64 {
	return b.launchSpeed
}

// Integrate advances a vertical velocity by one step of constant gravity.
func (b *BounceModel) Integrate(vel, dt float64) float64 {
	return vel - b.gravity*dt
}
