package tui

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/flappy-cake/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyEvent(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.RawEvent
	}{
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.KeyDown(core.KeySpace)},
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.KeyDown(core.KeyArrowUp)},
		{"x", runeKey('x'), core.KeyDown(core.KeyX)},
		{"unmapped rune", runeKey('z'), core.KeyDown("z")},
		{"unmapped key", tea.KeyMsg{Type: tea.KeyDown}, core.KeyDown("down")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KeyEvent(tt.msg); got != tt.want {
				t.Errorf("KeyEvent(%q) = %+v, expected %+v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestMouseEvent(t *testing.T) {
	tests := []struct {
		name   string
		msg    tea.MouseMsg
		want   core.RawEvent
		wantOK bool
	}{
		{
			"left press",
			tea.MouseMsg{Button: tea.MouseButtonLeft, Action: tea.MouseActionPress},
			core.TouchStart(), true,
		},
		{
			"release",
			tea.MouseMsg{Button: tea.MouseButtonNone, Action: tea.MouseActionRelease},
			core.TouchEnd(), true,
		},
		{
			"drag",
			tea.MouseMsg{Button: tea.MouseButtonLeft, Action: tea.MouseActionMotion},
			core.RawEvent{}, false,
		},
		{
			"right press",
			tea.MouseMsg{Button: tea.MouseButtonRight, Action: tea.MouseActionPress},
			core.RawEvent{}, false,
		},
		{
			"wheel",
			tea.MouseMsg{Button: tea.MouseButtonWheelUp, Action: tea.MouseActionPress},
			core.RawEvent{}, false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := MouseEvent(tt.msg)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("MouseEvent() = %+v, %v; expected %+v, %v", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestDefaultKeyMap(t *testing.T) {
	keys := DefaultKeyMap()

	if !key.Matches(runeKey('q'), keys.Quit) {
		t.Error("q should quit")
	}
	if !key.Matches(tea.KeyMsg{Type: tea.KeyCtrlC}, keys.Quit) {
		t.Error("ctrl+c should quit")
	}
	if key.Matches(runeKey('x'), keys.Quit) {
		t.Error("x should not quit")
	}
	if !key.Matches(runeKey('x'), keys.Flap) {
		t.Error("x should flap")
	}
	if len(keys.ShortHelp()) != 2 {
		t.Errorf("ShortHelp() has %d bindings, expected 2", len(keys.ShortHelp()))
	}
}
