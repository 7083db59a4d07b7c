package tui

import (
	"io"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/engine"
	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// outcomeNoSpawn is stored when the engine stopped because no apple fits.
const outcomeNoSpawn = "no_spawn"

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// GameModel drives one engine from the Bubble Tea loop: it owns the clock,
// feeds key presses to the engine and saves the score when a game ends.
type GameModel struct {
	engine    *engine.Engine
	view      BoardView
	screen    *core.Screen
	store     *storage.Store
	logger    *log.Logger
	keys      KeyMap
	help      help.Model
	player    string
	sessionID string
	clock     int
	saved     bool

	quitting   bool
	backToMenu bool
}

// NewGameModel creates a game model for a running engine.
// store may be nil, in which case nothing is persisted.
func NewGameModel(e *engine.Engine, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig, player string) GameModel {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	m := GameModel{
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH-1),
		store:  store,
		logger: logger,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		player: player,
	}
	m.help.Width = cfg.ScreenW
	m.start(e)
	return m
}

// start switches the model to a fresh engine and a fresh clock.
func (m *GameModel) start(e *engine.Engine) {
	best := 0
	if m.store != nil {
		if high, err := m.store.HighScore(e.Level().Name); err == nil {
			best = high
		} else {
			m.logger.Warn("could not load high score", "level", e.Level().Name, "error", err)
		}
	}

	m.engine = e
	m.view = ViewOf(e)
	m.view.Best = best
	m.sessionID = storage.NewSessionID()
	m.clock = nextClock()
	m.saved = false

	m.logger.Debug("session started", "level", e.Level().Name, "session", m.sessionID, "player", m.player)
}

// Init starts the clock.
func (m GameModel) Init() tea.Cmd {
	return m.tick()
}

func (m GameModel) tick() tea.Cmd {
	return tickCmd(m.engine.Level().Interval, m.clock)
}

// Update handles messages.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, msg.Height-1)
		m.help.Width = msg.Width
		return m, nil
	case tickMsg:
		return m.handleTick(msg)
	}
	return m, nil
}

// activeKeys returns the bindings that apply in the current state.
// An engine error ends the game as far as input is concerned.
func (m GameModel) activeKeys() KeyMap {
	state := m.view.State
	if m.view.Err != nil {
		state = engine.StateGameOver
	}
	return m.keys.forGame(state, m.view.Next != "" && registry.Exists(m.view.Next))
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.activeKeys().Action(msg)

	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, nil

	case core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight:
		if err := m.engine.SetDirection(action.Direction()); err != nil {
			m.logger.Debug("direction ignored", "direction", action.Direction(), "error", err)
		}

	case core.ActionPause:
		return m.togglePause()

	case core.ActionRestart:
		e, err := engine.New(m.engine.Level())
		if err != nil {
			m.view.Err = err
			return m, nil
		}
		m.start(e)
		return m, m.tick()

	case core.ActionConfirm:
		e, err := registry.Create(m.view.Next)
		if err != nil {
			m.logger.Warn("cannot start next level", "level", m.view.Next, "error", err)
			return m, nil
		}
		m.start(e)
		return m, m.tick()

	case core.ActionBack:
		m.backToMenu = true
	}

	return m, nil
}

// togglePause pauses a running game or resumes a paused one. Either way the
// old clock is retired; resuming starts a new one.
func (m GameModel) togglePause() (tea.Model, tea.Cmd) {
	switch m.engine.State() {
	case engine.StateRunning:
		if err := m.engine.Pause(); err != nil {
			return m, nil
		}
		m.clock = nextClock()
		m.view.State = m.engine.State()
		return m, nil

	case engine.StatePaused:
		if err := m.engine.Resume(); err != nil {
			return m, nil
		}
		m.clock = nextClock()
		m.view.State = m.engine.State()
		return m, m.tick()
	}
	return m, nil
}

// handleTick advances the engine when the tick belongs to the current clock.
func (m GameModel) handleTick(msg tickMsg) (tea.Model, tea.Cmd) {
	if msg.gen != m.clock || m.engine.State() != engine.StateRunning || m.view.Err != nil {
		return m, nil
	}

	res, err := m.engine.Tick()
	if err != nil {
		m.view.Err = err
		m.logger.Warn("game stopped", "level", m.view.Level, "tick", m.engine.Ticks(), "error", err)
		m.saveScore(outcomeNoSpawn)
		return m, nil
	}

	m.view.Apply(res)
	if res.Terminal() {
		m.saveScore(res.Outcome.String())
		return m, nil
	}
	return m, m.tick()
}

// saveScore records the finished game once.
func (m *GameModel) saveScore(outcome string) {
	if m.saved || m.store == nil {
		return
	}
	m.saved = true

	entry := storage.ScoreEntry{
		SessionID: m.sessionID,
		Level:     m.view.Level,
		Score:     m.engine.Score(),
		Length:    m.engine.Len(),
		Ticks:     int(m.engine.Ticks()),
		Outcome:   outcome,
	}
	if _, err := m.store.SaveScore(entry); err != nil {
		m.logger.Warn("could not save score", "level", entry.Level, "error", err)
		return
	}
	m.logger.Debug("score saved", "level", entry.Level, "score", entry.Score, "outcome", outcome, "player", m.player)
}

// View renders the board and the help footer.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	DrawBoard(m.screen, m.view)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.activeKeys()))
}

// Board returns the last rendered board state.
func (m GameModel) Board() BoardView {
	return m.view
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}
