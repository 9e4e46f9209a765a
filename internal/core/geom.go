// Package core provides fundamental types and utilities shared by the game
// logic and its hosts. It contains no external dependencies (especially no
// Bubble Tea) to keep game logic pure and testable.
package core

// Box is an axis-aligned bounding box in world units.
// X and Y are the top-left corner; Y grows downward.
type Box struct {
	X, Y float64
	W, H float64
}

// NewBox creates a new box with the given position and dimensions.
func NewBox(x, y, w, h float64) Box {
	return Box{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 {
	return b.X + b.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float64 {
	return b.Y + b.H
}

// Intersects reports whether two boxes overlap.
// The test is strict: boxes that only share an edge do not intersect.
func (b Box) Intersects(other Box) bool {
	return b.X < other.Right() &&
		b.Right() > other.X &&
		b.Y < other.Bottom() &&
		b.Bottom() > other.Y
}

// Intersects is the function form of Box.Intersects.
func Intersects(a, b Box) bool {
	return a.Intersects(b)
}

// Rect is an integer rectangle in screen cells, used for drawing.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
