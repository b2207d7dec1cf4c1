package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/break-in/internal/storage"
)

// maxHistory is how many matches the history screen loads.
const maxHistory = 100

// HistoryModel is the Bubble Tea model for the match history screen.
type HistoryModel struct {
	store   *storage.Store
	matches []storage.MatchRecord
	totals  storage.Totals
	loadErr error
	table   table.Model
	help    help.Model
	keys    MenuKeyMap
	styles  menuStyles
	width   int
	height  int

	quitting  bool
	goingBack bool
}

// NewHistoryModel loads the recent matches from store. A nil store shows
// an empty history.
func NewHistoryModel(store *storage.Store, width, height int, r *lipgloss.Renderer) HistoryModel {
	keys := DefaultMenuKeyMap()
	keys.Left.SetEnabled(false)
	keys.Right.SetEnabled(false)
	keys.Select.SetEnabled(false)

	m := HistoryModel{
		store:  store,
		keys:   keys,
		help:   help.New(),
		styles: newMenuStyles(r),
		width:  width,
		height: height,
	}
	m.help.Width = width
	m.load()
	m.table = m.createTable()
	return m
}

func (m *HistoryModel) load() {
	if m.store == nil {
		return
	}
	matches, err := m.store.RecentMatches(maxHistory)
	if err != nil {
		m.loadErr = err
		return
	}
	totals, err := m.store.Totals()
	if err != nil {
		m.loadErr = err
		return
	}
	m.matches = matches
	m.totals = *totals
}

func (m *HistoryModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Date", Width: 12},
		{Title: "Winner", Width: 7},
		{Title: "Time", Width: 7},
		{Title: "Preset", Width: 7},
		{Title: "Mode", Width: 5},
		{Title: "Bricks", Width: 6},
		{Title: "Lost", Width: 4},
		{Title: "Placed", Width: 6},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(HistoryRows(m.matches)),
		table.WithFocused(true),
		table.WithHeight(max(3, m.height-9)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// HistoryRows formats matches as table rows.
func HistoryRows(matches []storage.MatchRecord) []table.Row {
	rows := make([]table.Row, len(matches))
	for i, r := range matches {
		rows[i] = table.Row{
			r.CreatedAt.Format("Jan 02 15:04"),
			r.Winner,
			fmt.Sprintf("%.1fs", r.Duration),
			r.Preset,
			r.Mode,
			strconv.Itoa(r.BricksBroken),
			strconv.Itoa(r.BallsLost),
			strconv.Itoa(r.Placements),
		}
	}
	return rows
}

// Summary renders the totals line.
func Summary(t storage.Totals) string {
	return fmt.Sprintf("%d matches  paddle %d  bricks %d  avg %.1fs",
		t.Matches, t.PaddleWins, t.BricksWins, t.AvgDuration)
}

// Init initializes the history model.
func (m HistoryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the history screen.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, nil
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.table = m.createTable()
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the history screen.
func (m HistoryModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(m.styles.title.Render("MATCH HISTORY"), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(m.styles.hint.Render(Summary(m.totals)), m.width))
	b.WriteString("\n\n")

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	var content string
	switch {
	case m.loadErr != nil:
		content = m.styles.hint.Render("Could not load history:\n" + m.loadErr.Error())
	case len(m.matches) == 0:
		content = m.styles.hint.Italic(true).Padding(2, 4).
			Render("No matches recorded yet.\nFinish a match to start the history!")
	default:
		content = m.table.View()
	}
	for _, line := range strings.Split(box.Render(content), "\n") {
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.hint.Render(m.help.View(m.keys)))
	return b.String()
}

// IsGoingBack returns true if the user wants to go back to the menu.
func (m HistoryModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if the user wants to quit entirely.
func (m HistoryModel) IsQuitting() bool {
	return m.quitting
}

// RunHistory shows the history screen on its own.
func RunHistory(store *storage.Store, width, height int) error {
	m := historyProgram{NewHistoryModel(store, width, height, nil)}
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

// historyProgram quits the program when the history screen is left.
type historyProgram struct {
	HistoryModel
}

func (p historyProgram) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := p.HistoryModel.Update(msg)
	p.HistoryModel = next.(HistoryModel)
	if p.IsQuitting() || p.IsGoingBack() {
		return p, tea.Quit
	}
	return p, cmd
}
