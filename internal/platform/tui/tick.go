// Package tui provides the Bubble Tea host for the game.
// It handles the terminal UI loop, input mapping, both game clocks and rendering.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/flappy-cake/internal/core"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// SpawnMsg is sent by the obstacle clock, independently of ticks.
type SpawnMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	return tea.Tick(core.TickInterval(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// spawnCmd returns a Bubble Tea command that fires the obstacle spawner once
// after interval.
func spawnCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return SpawnMsg(t)
	})
}
