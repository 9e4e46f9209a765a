package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flappy-cake/internal/core"
	"github.com/vovakirdan/flappy-cake/internal/games/flappy"
)

// footerRows is the number of screen rows reserved below the playfield.
const footerRows = 1

// Smallest screen the playfield is drawn on.
const (
	minScreenW = 12
	minScreenH = 8
)

// Model is the Bubble Tea model hosting one game session.
type Model struct {
	game     *flappy.Game
	screen   *core.Screen
	canvas   *ScreenCanvas
	config   core.RuntimeConfig
	keys     KeyMap
	help     help.Model
	palette  palette
	hint     lipgloss.Style
	logger   *log.Logger
	status   core.Status
	quitting bool

	// screenshotDir receives ctrl+s captures; empty disables them.
	screenshotDir string
}

// NewModel creates a model for the given game. A nil renderer uses the
// default lipgloss renderer and a nil logger discards output.
func NewModel(game *flappy.Game, cfg core.RuntimeConfig, logger *log.Logger, renderer *lipgloss.Renderer) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if renderer == nil {
		renderer = lipgloss.DefaultRenderer()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	board := game.Config().Board
	screen := core.NewScreen(cfg.ScreenW, core.Max(cfg.ScreenH-footerRows, 1))

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:    game,
		screen:  screen,
		canvas:  NewScreenCanvas(screen, board.Width, board.Height),
		config:  cfg,
		keys:    DefaultKeyMap(),
		help:    h,
		palette: newPalette(renderer),
		hint:    renderer.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		logger:  logger,

		screenshotDir: defaultScreenshotDir(),
	}
}

// defaultScreenshotDir returns ~/.flappy/screenshots, or "" without a home.
func defaultScreenshotDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".flappy", "screenshots")
}

// Init starts the game and both clocks.
func (m Model) Init() tea.Cmd {
	m.game.Start(m.config)
	m.logger.Info("game started", "seed", m.config.Seed, "tick_rate", m.config.TickRate)

	return tea.Batch(
		tickCmd(m.config.TickRate),
		spawnCmd(m.game.Config().Timing.SpawnInterval),
	)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if ev, ok := MouseEvent(msg); ok {
			m.handleEvent(ev)
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()

	case SpawnMsg:
		m.game.OnSpawnTimer()
		return m, spawnCmd(m.game.Config().Timing.SpawnInterval)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.quitting = true
		m.logger.Info("quit", "score", flappy.FormatScore(m.status.Score))
		return m, tea.Quit
	}
	if key.Matches(msg, m.keys.Shot) {
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	m.handleEvent(KeyEvent(msg))
	return m, nil
}

// handleEvent forwards a raw event to the game and logs restarts.
func (m *Model) handleEvent(ev core.RawEvent) {
	wasOver := m.game.Status().GameOver()
	intent := m.game.OnInput(ev)
	if intent == core.IntentNone {
		return
	}
	m.status = m.game.Status()
	if wasOver && !m.status.GameOver() {
		m.logger.Info("game restarted", "input", ev.Kind, "intent", intent)
	}
}

// handleResize fits the screen to the terminal. The game itself keeps
// running in world units and is not reset.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, core.Max(msg.Height-footerRows, 1))
	m.canvas.Layout(m.screen.Width(), m.screen.Height())
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	prev := m.status
	m.status = m.game.OnTick()

	if m.status.State != prev.State && m.status.GameOver() {
		m.logger.Info("game over",
			"score", flappy.FormatScore(m.status.Score),
			"pairs", m.status.PairsPassed,
			"tick", m.status.Tick,
		)
	}

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot draws the current frame and writes it as plain text.
func (m Model) saveScreenshot() (string, error) {
	if m.screenshotDir == "" {
		return "", fmt.Errorf("screenshot: no directory")
	}
	if err := os.MkdirAll(m.screenshotDir, 0o755); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}

	m.canvas.Frame()
	m.game.Render(m.canvas)

	name := fmt.Sprintf("flappy_%s_tick%d.txt", time.Now().Format("20060102_150405"), m.game.Status().Tick)
	path := filepath.Join(m.screenshotDir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()+"\n"), 0o600); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.screen.Width() < minScreenW || m.screen.Height() < minScreenH {
		m.screen.Clear()
		m.screen.DrawTextCentered(m.screen.Height()/2, "too small", core.ColorRed)
		return m.palette.RenderScreen(m.screen)
	}

	m.canvas.Frame()
	m.game.Render(m.canvas)

	footer := m.help.View(m.keys)
	if m.status.GameOver() {
		footer = m.hint.Render("press space to play again") + "  " + footer
	}
	return m.palette.RenderScreen(m.screen) + "\n" + footer
}

// Status returns the most recent game status seen by the model.
func (m Model) Status() core.Status {
	return m.status
}

// Run starts the Bubble Tea program for a local terminal.
func Run(game *flappy.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, cfg, logger, nil)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Clicks act as touches
	)

	_, err := p.Run()
	return err
}
