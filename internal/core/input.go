package core

// EventKind identifies the device-level origin of a raw input event.
type EventKind int

const (
	EventNone       EventKind = iota
	EventKeyDown              // A key was pressed; Code names the key
	EventTouchStart           // A touch (or mouse button) went down
	EventTouchEnd             // A touch (or mouse button) was released
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventNone:
		return "None"
	case EventKeyDown:
		return "KeyDown"
	case EventTouchStart:
		return "TouchStart"
	case EventTouchEnd:
		return "TouchEnd"
	default:
		return "Unknown"
	}
}

// Key codes understood by the game. Hosts translate their native key names
// into these codes before delivering a RawEvent.
const (
	KeySpace   = "Space"
	KeyArrowUp = "ArrowUp"
	KeyX       = "KeyX"
)

// RawEvent is an input event as delivered by a host, before it is
// interpreted by the game.
type RawEvent struct {
	Kind EventKind
	Code string // Key code for EventKeyDown, empty otherwise
}

// KeyDown builds a key-down event for the given code.
func KeyDown(code string) RawEvent {
	return RawEvent{Kind: EventKeyDown, Code: code}
}

// TouchStart builds a touch-start event.
func TouchStart() RawEvent {
	return RawEvent{Kind: EventTouchStart}
}

// TouchEnd builds a touch-end event.
func TouchEnd() RawEvent {
	return RawEvent{Kind: EventTouchEnd}
}

// Intent is a normalized player action, decoupled from the input device.
type Intent int

const (
	IntentNone    Intent = iota
	IntentJump           // Flap upward; also restarts a finished game
	IntentRestart        // Start a new game after game over
)

// String returns a human-readable name for the intent.
func (i Intent) String() string {
	switch i {
	case IntentNone:
		return "None"
	case IntentJump:
		return "Jump"
	case IntentRestart:
		return "Restart"
	default:
		return "Unknown"
	}
}
