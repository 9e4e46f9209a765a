package flappy

import "github.com/vovakirdan/flappy-cake/internal/core"

// jumpKeys are the key codes that trigger a jump.
var jumpKeys = map[string]bool{
	core.KeySpace:   true,
	core.KeyArrowUp: true,
	core.KeyX:       true,
}

// TranslateInput maps a raw event to an intent given the current state.
// Unrecognized events map to IntentNone.
func TranslateInput(ev core.RawEvent, state core.GameState) core.Intent {
	switch ev.Kind {
	case core.EventKeyDown:
		if jumpKeys[ev.Code] {
			return core.IntentJump
		}
	case core.EventTouchStart:
		return core.IntentJump
	case core.EventTouchEnd:
		if state == core.StateOver {
			return core.IntentRestart
		}
	}
	return core.IntentNone
}
