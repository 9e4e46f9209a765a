package sim

import (
	"github.com/vovakirdan/flappy-cake/internal/games/flappy"
)

// Pilot decides, once per tick, whether the bird should flap.
type Pilot interface {
	ShouldJump(g *flappy.Game, tick int) bool
}

// Idle never flaps.
type Idle struct{}

// ShouldJump implements Pilot.
func (Idle) ShouldJump(*flappy.Game, int) bool { return false }

// EveryN flaps on every Nth tick, starting with the first.
type EveryN int

// ShouldJump implements Pilot.
func (n EveryN) ShouldJump(_ *flappy.Game, tick int) bool {
	return n > 0 && tick%int(n) == 0
}

// Autopilot steers the bird toward the opening of the next pipe pair.
// It flaps when the bird is falling and its centre has dropped more than
// Margin below the target.
type Autopilot struct {
	Margin float64
}

// DefaultAutopilot returns an autopilot tuned for the default physics.
func DefaultAutopilot() Autopilot {
	return Autopilot{Margin: 10}
}

// ShouldJump implements Pilot.
func (a Autopilot) ShouldJump(g *flappy.Game, _ int) bool {
	bird := g.Bird()
	if bird.VelocityY < 0 {
		return false
	}
	centre := bird.Y + bird.H/2
	return centre > a.target(g)+a.Margin
}

// target returns the height to aim for: the opening centre of the first
// pair the bird has not yet cleared, or mid-board when there is none.
func (a Autopilot) target(g *flappy.Game) float64 {
	bird := g.Bird()
	pipes := g.Pipes()
	for i := 0; i+1 < len(pipes); i += 2 {
		top, bottom := pipes[i], pipes[i+1]
		if bottom.X+bottom.W >= bird.X {
			return flappy.OpeningCenter(top, bottom)
		}
	}
	return g.Config().Board.Height / 2
}
