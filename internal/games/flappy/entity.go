package flappy

import "github.com/vovakirdan/flappy-cake/internal/core"

// Bird is the player-controlled entity. X never changes after spawn.
type Bird struct {
	X, Y      float64
	W, H      float64
	VelocityY float64
}

// Box returns the bird's collision box.
func (b Bird) Box() core.Box {
	return core.NewBox(b.X, b.Y, b.W, b.H)
}

// PipeVariant tells the top and bottom halves of a pair apart.
type PipeVariant int

const (
	PipeTop PipeVariant = iota
	PipeBottom
)

// Pipe is one half of an obstacle pair.
type Pipe struct {
	X, Y    float64
	W, H    float64
	Passed  bool // Whether the bird has cleared this pipe (for scoring)
	Variant PipeVariant
}

// Box returns the pipe's collision box.
func (p Pipe) Box() core.Box {
	return core.NewBox(p.X, p.Y, p.W, p.H)
}

// Sprite returns the sprite kind used to draw this pipe.
func (p Pipe) Sprite() core.Sprite {
	if p.Variant == PipeBottom {
		return core.SpritePipeBottom
	}
	return core.SpritePipeTop
}

// Bonus is the cake collectible.
type Bonus struct {
	X, Y float64
	W, H float64
}

// Box returns the bonus collision box.
func (b Bonus) Box() core.Box {
	return core.NewBox(b.X, b.Y, b.W, b.H)
}
