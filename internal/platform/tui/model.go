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

	"github.com/vovakirdan/catch-treasure/internal/core"
	"github.com/vovakirdan/catch-treasure/internal/storage"
)

// DefaultHoldWindow keeps a movement key active between terminal key repeats.
const DefaultHoldWindow = 180 * time.Millisecond

// Game is the simulation driven by the model.
// The platform handles input mapping, timing, and rendering.
type Game interface {
	ID() string
	Title() string

	// Reset starts a new session for the given runtime.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current game state into the provided screen buffer.
	Render(dst *core.Screen)

	State() core.GameState
}

// Model is the Bubble Tea model for running the game.
type Model struct {
	game       Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	holdWindow time.Duration
	held       map[core.Action]time.Time // Movement action -> expiry
	pending    core.InputFrame           // One-shot actions for the next tick
	gameState  core.GameState
	fullscreen bool
	quitting   bool
	recorded   bool // Whether the current run is already in the ledger
}

// NewModel creates a new Bubble Tea model for the given game.
// A nil store disables the run ledger, a nil logger discards logs.
func NewModel(game Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.ShowAll = false

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, playHeight(cfg.ScreenH)),
		store:      store,
		logger:     logger,
		config:     cfg,
		keys:       DefaultKeyMap(),
		help:       h,
		holdWindow: DefaultHoldWindow,
		held:       make(map[core.Action]time.Time),
		pending:    core.NewInputFrame(),
		fullscreen: true,
	}

	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.logger.Info("run started", "game", m.game.Title(), "seed", m.config.Seed, "fps", m.config.TickRate)
	return m
}

// playHeight leaves the last row for the help bar.
func playHeight(h int) int {
	if h > 1 {
		return h - 1
	}
	return h
}

// Init names the terminal window after the game and starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle(m.game.Title()),
		tickCmd(m.config.TickRate),
	)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg, time.Now())

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg, now time.Time) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	action := m.keys.Action(msg)
	switch {
	case action == core.ActionNone:
		return m, nil

	case action == core.ActionQuit:
		m.recordRun(storage.OutcomeQuit)
		m.quitting = true
		return m, tea.Quit

	case action == core.ActionToggleFullscreen:
		m.fullscreen = !m.fullscreen
		if m.fullscreen {
			return m, tea.EnterAltScreen
		}
		return m, tea.ExitAltScreen

	case isHeld(action):
		m.held[action] = now.Add(m.holdWindow)
		delete(m.held, opposite(action))

	case action.AffectsSimulation():
		m.pending.Set(action)
	}

	return m, nil
}

// handleResize processes window resize events.
// The world is independent of the terminal, so the session is kept.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, playHeight(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	frame := m.frame(now)

	if frame.Has(core.ActionReset) {
		m.recordRun(storage.OutcomeQuit)
	}

	result := m.game.Step(frame)
	m.gameState = result.State

	if frame.Has(core.ActionReset) {
		m.recorded = false
		m.logger.Info("run restarted", "best", result.State.BestScore)
	}
	if result.LeveledUp {
		m.logger.Info("level up", "level", result.State.Level, "score", result.State.Score)
	}
	if result.Ended {
		m.logger.Info("game over",
			"score", result.State.Score,
			"best", result.State.BestScore,
			"level", result.State.Level,
			"ticks", result.State.Ticks,
		)
		m.recordRun(storage.OutcomeGameOver)
	}

	m.pending.Clear()

	return m, tickCmd(m.config.TickRate)
}

// frame builds this tick's input from pending one-shots and live holds.
func (m Model) frame(now time.Time) core.InputFrame {
	frame := m.pending.Clone()
	for action, until := range m.held {
		if now.Before(until) {
			frame.Set(action)
		} else {
			delete(m.held, action)
		}
	}
	return frame
}

// recordRun stores the current run in the ledger once.
// Runs that never advanced are not recorded.
func (m *Model) recordRun(outcome storage.Outcome) {
	if m.recorded || m.store == nil || m.gameState.Ticks == 0 {
		return
	}
	m.recorded = true

	runID, err := m.store.RecordRun(storage.Run{
		Seed:    m.config.Seed,
		Score:   m.gameState.Score,
		Best:    m.gameState.BestScore,
		Level:   m.gameState.Level,
		Ticks:   m.gameState.Ticks,
		Outcome: outcome,
	})
	if err != nil {
		m.logger.Warn("run not recorded", "err", err)
		return
	}
	m.logger.Debug("run recorded", "run", runID, "outcome", outcome)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "err", err)
		return
	}
	dir := filepath.Join(home, ".catch-treasure", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// State returns the last observed game state.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program for the game and blocks until it quits.
func Run(game Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, logger, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
