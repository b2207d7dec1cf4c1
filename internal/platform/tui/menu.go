package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/break-in/internal/config"
)

// MenuChoice is what the user picked in the menu.
type MenuChoice int

const (
	ChoiceNone MenuChoice = iota
	ChoicePlay
	ChoiceHistory
	ChoiceQuit
)

// menuPresets is the difficulty cycle, easiest first.
var menuPresets = []config.DifficultyPreset{
	config.DifficultyEasy,
	config.DifficultyNormal,
	config.DifficultyHard,
	config.DifficultyFixed,
}

const (
	itemPlay = iota
	itemDifficulty
	itemHistory
	itemQuit
	numMenuItems
)

// MenuModel is the Bubble Tea model for the start menu.
type MenuModel struct {
	cursor int
	preset int
	width  int
	height int
	keys   MenuKeyMap
	help   help.Model
	styles menuStyles
	choice MenuChoice
}

type menuStyles struct {
	title    lipgloss.Style
	item     lipgloss.Style
	selected lipgloss.Style
	hint     lipgloss.Style
}

func newMenuStyles(r *lipgloss.Renderer) menuStyles {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return menuStyles{
		title:    r.NewStyle().Bold(true).Foreground(lipgloss.Color("229")),
		item:     r.NewStyle().Foreground(lipgloss.Color("252")),
		selected: r.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")),
		hint:     r.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

// NewMenuModel creates a menu with preset preselected.
func NewMenuModel(preset config.DifficultyPreset, width, height int, r *lipgloss.Renderer) MenuModel {
	m := MenuModel{
		width:  width,
		height: height,
		keys:   DefaultMenuKeyMap(),
		help:   help.New(),
		styles: newMenuStyles(r),
		preset: 1,
	}
	for i, p := range menuPresets {
		if p == preset {
			m.preset = i
		}
	}
	m.help.Width = width
	return m
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	}
	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit), key.Matches(msg, m.keys.Back):
		m.choice = ChoiceQuit

	case key.Matches(msg, m.keys.Up):
		m.cursor = (m.cursor + numMenuItems - 1) % numMenuItems

	case key.Matches(msg, m.keys.Down):
		m.cursor = (m.cursor + 1) % numMenuItems

	case key.Matches(msg, m.keys.Left):
		if m.cursor == itemDifficulty {
			m.preset = (m.preset + len(menuPresets) - 1) % len(menuPresets)
		}

	case key.Matches(msg, m.keys.Right):
		if m.cursor == itemDifficulty {
			m.preset = (m.preset + 1) % len(menuPresets)
		}

	case key.Matches(msg, m.keys.Select):
		switch m.cursor {
		case itemPlay:
			m.choice = ChoicePlay
		case itemDifficulty:
			m.preset = (m.preset + 1) % len(menuPresets)
		case itemHistory:
			m.choice = ChoiceHistory
		case itemQuit:
			m.choice = ChoiceQuit
		}
	}
	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	var b strings.Builder

	top := max(0, m.height/2-6)
	b.WriteString(strings.Repeat("\n", top))
	b.WriteString(centerText(m.styles.title.Render("B R E A K - I N"), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(m.styles.hint.Render("paddle vs bricks"), m.width))
	b.WriteString("\n\n")

	items := [numMenuItems]string{
		itemPlay:       "Play",
		itemDifficulty: fmt.Sprintf("Difficulty  < %s >", m.Preset()),
		itemHistory:    "History",
		itemQuit:       "Quit",
	}
	for i, label := range items {
		style := m.styles.item
		if i == m.cursor {
			style = m.styles.selected
		}
		b.WriteString(centerText(style.Render(" "+label+" "), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(m.styles.hint.Render(m.help.View(m.keys)), m.width))
	return b.String()
}

// Choice returns the pending selection, ChoiceNone while browsing.
func (m MenuModel) Choice() MenuChoice {
	return m.choice
}

// Preset returns the selected difficulty.
func (m MenuModel) Preset() config.DifficultyPreset {
	return menuPresets[m.preset]
}

// centerText centers styled text within width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
