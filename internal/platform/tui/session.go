package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/break-in/internal/config"
)

type sessionView int

const (
	viewMenu sessionView = iota
	viewMatch
	viewHistory
)

// SessionModel runs the menu -> match/history -> menu flow. It backs the
// local menu command and every SSH session.
type SessionModel struct {
	opts     MatchOptions
	view     sessionView
	menu     MenuModel
	match    Model
	history  HistoryModel
	quitting bool
}

// NewSessionModel creates a session starting at the menu. opts.Config is
// the base configuration the chosen preset is applied to.
func NewSessionModel(opts MatchOptions) SessionModel {
	opts.InSession = true
	return SessionModel{
		opts: opts,
		menu: NewMenuModel(opts.Preset, opts.Runtime.ScreenW, opts.Runtime.ScreenH, opts.Renderer),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update routes messages to the active screen.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.opts.Runtime.ScreenW = wsm.Width
		m.opts.Runtime.ScreenH = wsm.Height
	}

	switch m.view {
	case viewMatch:
		return m.updateMatch(msg)
	case viewHistory:
		return m.updateHistory(msg)
	default:
		return m.updateMenu(msg)
	}
}

func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	// A tick left over from a finished match ends its loop here.
	if _, ok := msg.(TickMsg); ok {
		return m, nil
	}

	next, cmd := m.menu.Update(msg)
	m.menu = next.(MenuModel)

	switch m.menu.Choice() {
	case ChoiceQuit:
		m.quitting = true
		return m, tea.Quit

	case ChoicePlay:
		preset := m.menu.Preset()
		opts := m.opts
		config.ApplyBreakinPreset(&opts.Config, preset)
		opts.Preset = preset
		m.opts.Runtime.Seed = 0

		m.match = NewModel(opts)
		m.view = viewMatch
		return m, m.match.Init()

	case ChoiceHistory:
		m.history = NewHistoryModel(m.opts.Store, m.opts.Runtime.ScreenW, m.opts.Runtime.ScreenH, m.opts.Renderer)
		m.view = viewHistory
		return m, m.history.Init()
	}

	return m, cmd
}

func (m SessionModel) updateMatch(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.match.Update(msg)
	m.match = next.(Model)

	if m.match.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.match.BackToMenu() {
		return m.toMenu()
	}
	return m, cmd
}

func (m SessionModel) updateHistory(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(TickMsg); ok {
		return m, nil
	}

	next, cmd := m.history.Update(msg)
	m.history = next.(HistoryModel)

	if m.history.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.history.IsGoingBack() {
		return m.toMenu()
	}
	return m, cmd
}

// toMenu returns to a fresh menu that remembers the last preset.
func (m SessionModel) toMenu() (tea.Model, tea.Cmd) {
	m.opts.Preset = m.menu.Preset()
	m.menu = NewMenuModel(m.opts.Preset, m.opts.Runtime.ScreenW, m.opts.Runtime.ScreenH, m.opts.Renderer)
	m.view = viewMenu
	return m, m.menu.Init()
}

// View renders the active screen.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.view {
	case viewMatch:
		return m.match.View()
	case viewHistory:
		return m.history.View()
	default:
		return m.menu.View()
	}
}

// RunSession runs the menu flow in the local terminal.
func RunSession(opts MatchOptions) error {
	p := tea.NewProgram(
		NewSessionModel(opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
