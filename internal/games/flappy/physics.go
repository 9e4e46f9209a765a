package flappy

import (
	"math"

	"github.com/vovakirdan/flappy-cake/internal/config"
)

// Physics integrates bird motion and horizontal scrolling once per tick.
type Physics struct {
	Gravity        float64 // Downward acceleration per tick
	JumpImpulse    float64 // Velocity set by a jump (negative = up)
	ScrollVelocity float64 // Horizontal velocity of pipes and bonus (negative = left)
}

// NewPhysics builds the integrator from configuration.
func NewPhysics(cfg config.PhysicsConfig) Physics {
	return Physics{
		Gravity:        cfg.Gravity,
		JumpImpulse:    cfg.JumpImpulse,
		ScrollVelocity: cfg.ScrollVelocity,
	}
}

// StepBird applies gravity and moves the bird, clamping it to the top edge.
// Velocity is left untouched by the clamp, so a bird pinned to the ceiling
// keeps its upward speed until gravity wins it back.
func (p Physics) StepBird(b *Bird) {
	b.VelocityY += p.Gravity
	b.Y = math.Max(b.Y+b.VelocityY, 0)
}

// Jump replaces the bird's vertical velocity with the jump impulse.
func (p Physics) Jump(b *Bird) {
	b.VelocityY = p.JumpImpulse
}

// Scroll returns x advanced by one tick of horizontal scrolling.
func (p Physics) Scroll(x float64) float64 {
	return x + p.ScrollVelocity
}
