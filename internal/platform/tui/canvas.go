package tui

import (
	"math"

	"github.com/vovakirdan/flappy-cake/internal/core"
)

// Visual characters for rendering
const (
	BirdChar      = '●'
	BirdEyeChar   = '▶'
	PipeChar      = '█'
	PipeCapTop    = '▄'
	PipeCapBottom = '▀'
	CakeChar      = '▒'
	CakeTopChar   = '¡'
	BorderColor   = core.ColorSkyBlue
)

// cellAspect is how many times taller a terminal cell is than it is wide.
const cellAspect = 2.0

// ScreenCanvas draws world-space sprites onto a character screen.
// Everything is clipped to the playfield area.
type ScreenCanvas struct {
	screen *core.Screen
	area   core.Rect // Playfield in screen cells, inside the border
	boardW float64
	boardH float64
}

// NewScreenCanvas creates a canvas for a board of the given world size.
func NewScreenCanvas(screen *core.Screen, boardW, boardH float64) *ScreenCanvas {
	c := &ScreenCanvas{
		screen: screen,
		boardW: boardW,
		boardH: boardH,
	}
	c.Layout(screen.Width(), screen.Height())
	return c
}

// Layout fits the bordered playfield into a screen of the given size,
// keeping the board's aspect ratio.
func (c *ScreenCanvas) Layout(screenW, screenH int) {
	innerH := core.Max(screenH-2, 1)
	innerW := int(math.Round(float64(innerH) * c.boardW / c.boardH * cellAspect))
	if innerW > screenW-2 {
		innerW = core.Max(screenW-2, 1)
	}
	c.area = core.NewRect((screenW-innerW)/2, 1, innerW, innerH)
}

// Area returns the playfield rectangle in screen cells.
func (c *ScreenCanvas) Area() core.Rect {
	return c.area
}

// Frame clears the screen and draws the playfield border.
func (c *ScreenCanvas) Frame() {
	c.screen.Clear()
	border := core.NewRect(c.area.X-1, c.area.Y-1, c.area.W+2, c.area.H+2)
	c.screen.DrawBox(border, BorderColor)
}

// toCells converts a world rectangle to a clipped cell rectangle.
// The second result is false when nothing of it is visible.
func (c *ScreenCanvas) toCells(x, y, w, h float64) (core.Rect, bool) {
	sx := float64(c.area.W) / c.boardW
	sy := float64(c.area.H) / c.boardH

	x0 := int(math.Floor(x * sx))
	y0 := int(math.Floor(y * sy))
	x1 := int(math.Ceil((x + w) * sx))
	y1 := int(math.Ceil((y + h) * sy))

	x0 = core.Clamp(x0, 0, c.area.W)
	x1 = core.Clamp(x1, 0, c.area.W)
	y0 = core.Clamp(y0, 0, c.area.H)
	y1 = core.Clamp(y1, 0, c.area.H)
	if x1 <= x0 || y1 <= y0 {
		return core.Rect{}, false
	}
	return core.NewRect(c.area.X+x0, c.area.Y+y0, x1-x0, y1-y0), true
}

// DrawSprite implements core.Canvas.
func (c *ScreenCanvas) DrawSprite(kind core.Sprite, x, y, w, h float64) {
	r, ok := c.toCells(x, y, w, h)
	if !ok {
		return
	}

	switch kind {
	case core.SpriteBird:
		c.screen.DrawRect(r, BirdChar, core.ColorBrightYellow)
		c.screen.SetCell(r.Right()-1, r.Y, BirdEyeChar, core.ColorOrange)
	case core.SpritePipeTop:
		c.screen.DrawRect(r, PipeChar, core.ColorGreen)
		// Only cap the pipe if its real lower edge is on screen
		if _, visible := c.toCells(x, y+h-1, w, 1); visible {
			c.screen.DrawHLine(r.X, r.Bottom()-1, r.W, PipeCapTop, core.ColorBrightGreen)
		}
	case core.SpritePipeBottom:
		c.screen.DrawRect(r, PipeChar, core.ColorGreen)
		if _, visible := c.toCells(x, y, w, 1); visible {
			c.screen.DrawHLine(r.X, r.Y, r.W, PipeCapBottom, core.ColorBrightGreen)
		}
	case core.SpriteBonus:
		c.screen.DrawRect(r, CakeChar, core.ColorMagenta)
		c.screen.DrawHLine(r.X, r.Y, r.W, CakeTopChar, core.ColorRed)
	}
}

// DrawText implements core.Canvas. The y coordinate is the text baseline.
func (c *ScreenCanvas) DrawText(text string, x, y float64) {
	sx := float64(c.area.W) / c.boardW
	sy := float64(c.area.H) / c.boardH

	col := c.area.X + core.Clamp(int(x*sx), 0, c.area.W-1)
	row := c.area.Y + core.Clamp(int(math.Ceil(y*sy))-1, 0, c.area.H-1)

	// Clip to the playfield
	maxLen := c.area.Right() - col
	runes := []rune(text)
	if len(runes) > maxLen {
		runes = runes[:maxLen]
	}
	c.screen.DrawText(col, row, string(runes), core.ColorBrightWhite)
}
