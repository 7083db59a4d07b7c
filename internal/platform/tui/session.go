package tui

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

type screenKind int

const (
	screenMenu screenKind = iota
	screenGame
	screenScores
)

// SessionModel manages the full flow for one player: menu -> game -> menu,
// with the scoreboard reachable from the menu. It is the top-level model for
// both local play and SSH sessions.
type SessionModel struct {
	store    *storage.Store
	logger   *log.Logger
	config   core.RuntimeConfig
	player   string
	active   screenKind
	menu     MenuModel
	game     GameModel
	scores   ScoreboardModel
	quitting bool
}

// NewSessionModel creates a session that starts on the level menu.
func NewSessionModel(store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig, player string) SessionModel {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return SessionModel{
		store:  store,
		logger: logger,
		config: cfg,
		player: player,
		menu:   NewMenuModel(store, cfg),
	}
}

// StartLevel skips the menu and opens the named level directly.
func (m SessionModel) StartLevel(name string) (SessionModel, error) {
	e, err := registry.Create(name)
	if err != nil {
		return m, err
	}
	m.game = NewGameModel(e, m.store, m.logger, m.config, m.player)
	m.active = screenGame
	return m, nil
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	if m.active == screenGame {
		return m.game.Init()
	}
	return m.menu.Init()
}

// Update routes messages to the active screen and switches screens.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.active {
	case screenGame:
		return m.updateGame(msg)
	case screenScores:
		return m.updateScores(msg)
	default:
		return m.updateMenu(msg)
	}
}

func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.menu.Update(msg)
	if menu, ok := next.(MenuModel); ok {
		m.menu = menu
	}

	switch {
	case m.menu.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.menu.WantsScoreboard():
		m.scores = NewScoreboardModel(m.store, m.config.ScreenW, m.config.ScreenH, m.menu.Cursor())
		m.active = screenScores
		m.menu.openScoreboard = false
		return m, m.scores.Init()

	case m.menu.Selected() != nil:
		name := m.menu.Selected().Level.Name
		m.menu.selected = nil

		started, err := m.StartLevel(name)
		if err != nil {
			m.logger.Warn("cannot start level", "level", name, "error", err)
			m.menu.err = err
			return m, nil
		}
		return started, started.game.Init()
	}

	return m, cmd
}

func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.game.Update(msg)
	if game, ok := next.(GameModel); ok {
		m.game = game
	}

	switch {
	case m.game.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.game.BackToMenu():
		return m.toMenu()
	}
	return m, cmd
}

func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.scores.Update(msg)
	if scores, ok := next.(ScoreboardModel); ok {
		m.scores = scores
	}

	switch {
	case m.scores.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.scores.IsGoingBack():
		return m.toMenu()
	}
	return m, cmd
}

// toMenu rebuilds the menu so best scores are current.
func (m SessionModel) toMenu() (tea.Model, tea.Cmd) {
	m.menu = NewMenuModel(m.store, m.config)
	m.active = screenMenu
	return m, m.menu.Init()
}

// View renders the active screen.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}
	switch m.active {
	case screenGame:
		return m.game.View()
	case screenScores:
		return m.scores.View()
	default:
		return m.menu.View()
	}
}

// Options configures a local play session.
type Options struct {
	Store  *storage.Store
	Logger *log.Logger
	Config core.RuntimeConfig
	Player string
	Level  string // Empty shows the level menu
}

// Run starts a local session in the current terminal and blocks until the
// player quits.
func Run(opts Options) error {
	model := NewSessionModel(opts.Store, opts.Logger, opts.Config, opts.Player)
	if opts.Level != "" {
		var err error
		if model, err = model.StartLevel(opts.Level); err != nil {
			return err
		}
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
