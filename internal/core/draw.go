package core

import (
	"fmt"
	"strings"
)

// Sprite identifies what a draw call depicts. Hosts choose how each kind looks.
type Sprite int

const (
	SpriteBird Sprite = iota
	SpritePipeTop
	SpritePipeBottom
	SpriteBonus
)

// String returns a human-readable name for the sprite.
func (s Sprite) String() string {
	switch s {
	case SpriteBird:
		return "Bird"
	case SpritePipeTop:
		return "PipeTop"
	case SpritePipeBottom:
		return "PipeBottom"
	case SpriteBonus:
		return "Bonus"
	default:
		return "Unknown"
	}
}

// Canvas receives draw calls in world units.
// The game never reads anything back from it.
type Canvas interface {
	DrawSprite(kind Sprite, x, y, w, h float64)
	DrawText(text string, x, y float64)
}

// Cue identifies a sound effect.
type Cue int

const (
	CueEat   Cue = iota // Bonus collected
	CueFlap             // Jump impulse applied
	CueCrash            // Game over
)

// String returns a human-readable name for the cue.
func (c Cue) String() string {
	switch c {
	case CueEat:
		return "Eat"
	case CueFlap:
		return "Flap"
	case CueCrash:
		return "Crash"
	default:
		return "Unknown"
	}
}

// ParseCue returns the cue with the given case-insensitive name ("eat",
// "flap", "crash").
func ParseCue(name string) (Cue, error) {
	for _, c := range []Cue{CueEat, CueFlap, CueCrash} {
		if strings.EqualFold(name, c.String()) {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown cue %q", name)
}

// CuePlayer plays sound cues. Calls are fire-and-forget.
type CuePlayer interface {
	PlayCue(c Cue)
}

// SilentCues is a CuePlayer that discards every cue.
type SilentCues struct{}

// PlayCue implements CuePlayer.
func (SilentCues) PlayCue(Cue) {}
