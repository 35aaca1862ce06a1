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
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/skillshot/internal/core"
	"github.com/vovakirdan/skillshot/internal/games/skillshot"
	"github.com/vovakirdan/skillshot/internal/registry"
)

// helpRows is the number of rows under the arena reserved for key help.
const helpRows = 1

// Options configures a terminal session.
type Options struct {
	Runtime core.RuntimeConfig
	Logger  *log.Logger // Nil discards logs

	// ScreenshotDir receives ctrl+s dumps. Empty uses ~/.skillshot/screenshots.
	ScreenshotDir string
}

// Model is the Bubble Tea model for one training session.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	arena      core.Size
	inputFrame core.InputFrame
	gameState  core.GameState
	keys       KeyMap
	help       help.Model
	logger     *log.Logger
	shotDir    string

	// Last hovered cell, used by keyboard fire
	mouseX, mouseY int
	hovered        bool

	quitting bool
}

// NewModel creates a Bubble Tea model for the given drill. The drill must
// already be configured.
func NewModel(game registry.Game, opts Options) Model {
	cfg := opts.Runtime
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	arena := game.Config().Arena
	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH-helpRows),
		config:     cfg,
		arena:      core.Size{W: arena.Width, H: arena.Height},
		inputFrame: core.NewInputFrame(),
		keys:       DefaultKeyMap(),
		help:       h,
		logger:     logger,
		shotDir:    opts.ScreenshotDir,
	}
}

// Init starts the session and the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("session started", "drill", m.game.ID(), "seed", m.config.Seed, "tick_rate", m.config.TickRate)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// viewport maps arena coordinates onto the current screen.
func (m Model) viewport() core.Viewport {
	return skillshot.ArenaViewport(m.screen.Width(), m.screen.Height(), m.arena)
}

// handleKey queues events for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.inputFrame.Push(core.Quit())
	case key.Matches(msg, m.keys.Fire):
		if m.hovered {
			m.inputFrame.Push(core.Fire(m.viewport().ToWorld(m.mouseX, m.mouseY)))
		}
	case key.Matches(msg, m.keys.Screenshot):
		if err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		}
	}
	return m, nil
}

// handleMouse tracks the hovered cell and fires on a left press inside the arena.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if !m.viewport().Cells.Contains(msg.X, msg.Y) {
		return m, nil
	}
	m.mouseX, m.mouseY, m.hovered = msg.X, msg.Y, true

	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		m.inputFrame.Push(core.Fire(m.viewport().ToWorld(msg.X, msg.Y)))
	}
	return m, nil
}

// handleResize only changes the cell mapping; the session keeps running in
// world units.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height-helpRows)
	m.help.Width = msg.Width
	m.hovered = false
	return m, nil
}

// handleTick drains the queued events into one simulation step.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	for range result.Hits {
		m.logger.Debug("hit", "score", m.gameState.Score, "shots", m.gameState.ShotsFired)
	}

	if m.gameState.Terminated {
		m.quitting = true
		m.logger.Info("session ended",
			"drill", m.game.ID(),
			"score", m.gameState.Score,
			"shots", m.gameState.ShotsFired,
			"accuracy", fmt.Sprintf("%.1f%%", m.gameState.Accuracy),
		)
		return m, tea.Quit
	}

	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot writes the current screen as plain text.
func (m *Model) saveScreenshot() error {
	m.game.Render(m.screen)

	dir := m.shotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("tui: screenshot: %w", err)
		}
		dir = filepath.Join(home, ".skillshot", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("tui: screenshot: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return fmt.Errorf("tui: screenshot: %w", err)
	}
	m.logger.Info("screenshot saved", "path", path)
	return nil
}

// State returns the counters after the latest tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// View renders the arena and the help line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + RenderHelp(m.help.View(m.keys))
}

// Run plays the drill in the local terminal until the player quits and
// returns the final counters.
func Run(game registry.Game, opts Options) (core.GameState, error) {
	p := tea.NewProgram(
		NewModel(game, opts),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)

	final, err := p.Run()
	if err != nil {
		return core.GameState{}, fmt.Errorf("tui: %w", err)
	}
	if fm, ok := final.(Model); ok {
		return fm.State(), nil
	}
	return game.State(), nil
}
