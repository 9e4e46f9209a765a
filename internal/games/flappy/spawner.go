package flappy

// OpeningFraction is the share of the board height left open between the
// two pipes of a pair.
const OpeningFraction = 0.25

// Rand is the randomness source used by the spawner. *rand.Rand satisfies it.
type Rand interface {
	Float64() float64
}

// SpawnPair creates a top/bottom pipe pair at horizontal position x.
// The top pipe's y is drawn uniformly from [-pipeHeight*3/4, -pipeHeight/4];
// the bottom pipe starts one opening below the top pipe's lower edge.
func SpawnPair(rng Rand, x, screenHeight, pipeWidth, pipeHeight float64) (top, bottom Pipe) {
	top = Pipe{
		X:       x,
		Y:       -pipeHeight/4 - rng.Float64()*(pipeHeight/2),
		W:       pipeWidth,
		H:       pipeHeight,
		Variant: PipeTop,
	}
	return top, BottomFor(top, screenHeight)
}

// BottomFor returns the bottom half matching top: same column and size,
// starting one opening below top's lower edge.
func BottomFor(top Pipe, screenHeight float64) Pipe {
	return Pipe{
		X:       top.X,
		Y:       top.Y + top.H + screenHeight*OpeningFraction,
		W:       top.W,
		H:       top.H,
		Variant: PipeBottom,
	}
}

// OpeningCenter returns the y coordinate halfway between the lower edge of
// top and the upper edge of bottom.
func OpeningCenter(top, bottom Pipe) float64 {
	return (top.Y + top.H + bottom.Y) / 2
}
