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

	"github.com/vovakirdan/break-in/internal/config"
	"github.com/vovakirdan/break-in/internal/core"
	"github.com/vovakirdan/break-in/internal/games/breakin"
	"github.com/vovakirdan/break-in/internal/platform/report"
	"github.com/vovakirdan/break-in/internal/storage"
)

// Rows below the match screen taken by the short and full key help.
const (
	footerShort = 1
	footerFull  = 3
)

// MatchOptions configures a hosted match.
type MatchOptions struct {
	Runtime core.RuntimeConfig
	Config  config.BreakinConfig
	Preset  config.DifficultyPreset
	// Mode is recorded with the result (storage.ModePlay or storage.ModeSSH).
	Mode   string
	Store  *storage.Store
	Logger *log.Logger
	// Renderer styles output for a remote terminal. Nil uses the local one.
	Renderer *lipgloss.Renderer
	// InSession enables the back-to-menu key.
	InSession bool
}

// Model is the Bubble Tea model for one match host.
type Model struct {
	opts     MatchOptions
	game     *breakin.Game
	screen   *core.Screen
	colors   palette
	keys     KeyMap
	help     help.Model
	input    *inputTracker
	logger   *log.Logger
	matchID  string
	lastTick time.Time
	state    breakin.State
	saved    bool

	quitting   bool
	backToMenu bool
}

// NewModel creates a match host. A zero seed picks one from the clock.
func NewModel(opts MatchOptions) Model {
	if opts.Runtime.TickRate <= 0 {
		opts.Runtime.TickRate = 60
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Mode == "" {
		opts.Mode = storage.ModePlay
	}

	keys := DefaultKeyMap()
	keys.Menu.SetEnabled(opts.InSession)

	m := Model{
		opts:   opts,
		screen: core.NewScreen(opts.Runtime.ScreenW, max(0, opts.Runtime.ScreenH-footerShort)),
		colors: newPalette(opts.Renderer),
		keys:   keys,
		help:   help.New(),
		input:  newInputTracker(),
	}
	m.help.Width = opts.Runtime.ScreenW
	m.game = breakin.New(opts.Config, m.nextSeed())
	m.startMatch()
	return m
}

// nextSeed returns the configured seed for the first match and a clock
// seed afterwards.
func (m *Model) nextSeed() int64 {
	if m.opts.Runtime.Seed != 0 {
		seed := m.opts.Runtime.Seed
		m.opts.Runtime.Seed = 0
		return seed
	}
	return time.Now().UnixNano()
}

// fitScreen sizes the match screen to the terminal minus the help footer.
func (m *Model) fitScreen() {
	footer := footerShort
	if m.help.ShowAll {
		footer = footerFull
	}
	m.screen.Resize(m.opts.Runtime.ScreenW, max(0, m.opts.Runtime.ScreenH-footer))
}

func (m *Model) startMatch() {
	m.matchID = report.NewMatchID()
	m.logger = report.MatchLogger(m.opts.Logger, m.matchID, m.game.Seed())
	m.state = m.game.State()
	m.saved = false
	m.lastTick = time.Time{}
	m.input.reset()
	m.logger.Info("match started",
		"preset", m.opts.Preset,
		"lives", m.opts.Config.Match.Lives,
		"ai", m.opts.Config.Match.AIAutoplace,
	)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.opts.Runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.input.mouseEvent(msg)
		return m, nil

	case tea.WindowSizeMsg:
		m.opts.Runtime.ScreenW = msg.Width
		m.opts.Runtime.ScreenH = msg.Height
		m.help.Width = msg.Width
		m.fitScreen()
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.logger.Info("match abandoned", "time", m.state.GameTime)
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Screenshot):
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.fitScreen()
		return m, nil

	case key.Matches(msg, m.keys.Menu):
		if m.state.Ended || m.state.Paused {
			m.backToMenu = true
		}
		return m, nil

	case key.Matches(msg, m.keys.Restart):
		if m.state.Ended {
			m.game.Reset(m.nextSeed())
			m.startMatch()
		}
		return m, nil
	}

	m.input.press(m.keys.MapKey(msg), time.Now())
	return m, nil
}

func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := frameDT(m.lastTick, now, m.opts.Runtime.TickRate)
	m.lastTick = now

	res := m.game.Step(m.input.frame(now), dt)
	report.LogEvents(m.logger, res.Events)
	m.state = res.State

	if m.state.Ended && !m.saved {
		rec := report.Record(m.matchID, m.game, string(m.opts.Preset), m.opts.Mode)
		report.Save(m.opts.Store, m.logger, rec)
		m.saved = true
	}

	return m, tickCmd(m.opts.Runtime.TickRate)
}

// saveScreenshot writes the current screen as plain text.
func (m *Model) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot get home directory: %w", err)
	}
	dir := filepath.Join(home, ".breakin", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("cannot create %s: %w", dir, err)
	}

	name := fmt.Sprintf("breakin_%s.txt", time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("cannot write screenshot: %w", err)
	}
	return path, nil
}

// View renders the match and the key help footer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	footer := m.colors[core.ColorGray].Render(m.help.View(m.keys))
	return m.colors.render(m.screen) + "\n" + footer
}

// MatchID returns the identifier of the current match.
func (m Model) MatchID() string {
	return m.matchID
}

// State returns the last observed match state.
func (m Model) State() breakin.State {
	return m.state
}

// IsQuitting returns true if the user asked to quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user asked to leave for the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run plays matches in the local terminal until the user quits.
func Run(opts MatchOptions) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
