package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-miner/internal/core"
	"github.com/vovakirdan/tui-miner/internal/engine"
	"github.com/vovakirdan/tui-miner/internal/registry"
	"github.com/vovakirdan/tui-miner/internal/storage"
)

// helpHeight is the number of rows reserved below the game screen.
const helpHeight = 1

// seeded is implemented by games that can report their world seed.
type seeded interface {
	Seed() uint64
}

// Model is the Bubble Tea model for one run of a game.
// Terminals only report key presses, so every command is released after
// each frame: holding a key works through the terminal's key repeat.
type Model struct {
	game    registry.Game
	loop    *engine.Loop
	screen  *core.Screen
	store   *storage.Store
	logger  *log.Logger
	config  core.RuntimeConfig
	keys    GameKeyMap
	help    help.Model
	runID   string
	pending []core.KeyEvent
	result  core.StepResult

	embedded bool // inside a session: finishing returns to the menu instead of quitting
	finished bool
	quitting bool
	saved    bool
}

// NewModel creates a model for a game that has already been Reset.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if logger == nil {
		logger = log.Default()
	}
	runID := uuid.NewString()
	logger = logger.With("run", runID)
	logger.Info("run started", "game", game.ID())

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:   game,
		loop:   engine.NewLoop(game, nil, logger),
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH-helpHeight),
		store:  store,
		logger: logger,
		config: cfg,
		keys:   NewGameKeyMap(game.Bindings()),
		help:   h,
		runID:  runID,
		result: core.StepResult{State: game.State()},
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height-helpHeight)
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey queues key presses for the next frame.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := KeyFromMsg(msg)
	if k == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	// Any key dismisses the final screen
	if m.loop.Done() {
		return m.finish()
	}

	m.pending = append(m.pending, core.KeyEvent{Key: k, Down: true})
	return m, nil
}

// handleTick runs one frame with the queued keys.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.loop.Done() {
		return m, nil
	}

	m.result = m.loop.Frame(m.pending)
	m.pending = nil
	m.loop.Input().ReleaseAll()

	if m.result.State.GameOver {
		m.saveScore()
		if m.result.State.Reason == "player_quit" {
			return m.finish()
		}
		// Keep the final screen up until a key is pressed
		return m, nil
	}

	return m, tickCmd(m.config.TickRate)
}

// finish ends the run, quitting the program unless embedded in a session.
func (m Model) finish() (tea.Model, tea.Cmd) {
	m.finished = true
	if m.embedded {
		return m, nil
	}
	m.quitting = true
	return m, tea.Quit
}

// saveScore records the finished run once.
func (m *Model) saveScore() {
	if m.saved || m.store == nil {
		return
	}
	m.saved = true

	rec := storage.ScoreRecord{
		RunID:  m.runID,
		GameID: m.game.ID(),
		Score:  m.result.State.Score,
		Reason: m.result.State.Reason,
		Ticks:  m.result.Tick,
	}
	if s, ok := m.game.(seeded); ok {
		rec.Seed = s.Seed()
	}
	if _, err := m.store.SaveScore(rec); err != nil {
		m.logger.Error("could not save score", "error", err)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".miner", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
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
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Result returns the last step result.
func (m Model) Result() core.StepResult {
	return m.result
}

// Finished reports whether the run is over and acknowledged.
func (m Model) Finished() bool {
	return m.finished
}

// Run resets the game, plays it in the terminal and returns the final result.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) (core.StepResult, error) {
	if err := game.Reset(cfg); err != nil {
		return core.StepResult{}, err
	}
	model := NewModel(game, store, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return model.Result(), err
	}
	if fm, ok := final.(Model); ok {
		return fm.Result(), nil
	}
	return model.Result(), nil
}
