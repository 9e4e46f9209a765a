package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/flappy-cake/internal/core"
)

// KeyMap defines the key bindings shown in the footer.
type KeyMap struct {
	Flap key.Binding
	Shot key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Flap, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Flap}, {k.Shot, k.Quit}}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Flap: key.NewBinding(
			key.WithKeys(" ", "up", "x"),
			key.WithHelp("space/↑/x/click", "flap"),
		),
		Shot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// keyCodes translates Bubble Tea key names to the game's key codes.
var keyCodes = map[string]string{
	" ":  core.KeySpace,
	"up": core.KeyArrowUp,
	"x":  core.KeyX,
}

// KeyEvent converts a key message to a raw game event.
// Keys without a game code are passed through under their terminal name,
// where the game ignores them.
func KeyEvent(msg tea.KeyMsg) core.RawEvent {
	name := msg.String()
	if code, ok := keyCodes[name]; ok {
		return core.KeyDown(code)
	}
	return core.KeyDown(name)
}

// MouseEvent converts a mouse message to a touch event.
// The second result is false for motion, wheel and non-left buttons.
func MouseEvent(msg tea.MouseMsg) (core.RawEvent, bool) {
	if msg.Button != tea.MouseButtonLeft && msg.Action != tea.MouseActionRelease {
		return core.RawEvent{}, false
	}
	switch msg.Action {
	case tea.MouseActionPress:
		return core.TouchStart(), true
	case tea.MouseActionRelease:
		return core.TouchEnd(), true
	}
	return core.RawEvent{}, false
}
