package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/break-in/internal/config"
	"github.com/vovakirdan/break-in/internal/core"
	"github.com/vovakirdan/break-in/internal/games/breakin"
	"github.com/vovakirdan/break-in/internal/storage"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func testOptions() MatchOptions {
	cfg := config.DefaultBreakinConfig()
	cfg.Match.AIAutoplace = false
	return MatchOptions{
		Runtime: core.RuntimeConfig{ScreenW: 80, ScreenH: 30, TickRate: 60, Seed: 5},
		Config:  cfg,
		Preset:  config.DifficultyNormal,
	}
}

func update(t *testing.T, m tea.Model, msg tea.Msg) (tea.Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	require.NotNil(t, next)
	return next, cmd
}

func TestKeyMapMapKey(t *testing.T) {
	keys := DefaultKeyMap()
	tests := []struct {
		msg  tea.KeyMsg
		want core.Action
	}{
		{tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{runeKey('a'), core.ActionLeft},
		{tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{runeKey('d'), core.ActionRight},
		{tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionLaunch},
		{runeKey('p'), core.ActionPause},
		{tea.KeyMsg{Type: tea.KeyEscape}, core.ActionPause},
		{runeKey('r'), core.ActionRestart},
		{runeKey('q'), core.ActionNone},
		{runeKey('x'), core.ActionNone},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, keys.MapKey(tt.msg), tt.msg.String())
	}
}

func TestModelSeedAndTicks(t *testing.T) {
	m := NewModel(testOptions())
	assert.Equal(t, int64(5), m.game.Seed())
	assert.NotEmpty(t, m.MatchID())

	t0 := time.Unix(1000, 0)
	var tm tea.Model = m
	for i := range 30 {
		var cmd tea.Cmd
		tm, cmd = update(t, tm, TickMsg(t0.Add(time.Duration(i)*16*time.Millisecond)))
		assert.NotNil(t, cmd)
	}
	st := tm.(Model).State()
	assert.InDelta(t, 1.0/60+29*0.016, st.GameTime, 1e-9)
}

func TestModelLaunchKey(t *testing.T) {
	var tm tea.Model = NewModel(testOptions())
	tm, _ = update(t, tm, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	tm, _ = update(t, tm, TickMsg(time.Now()))

	m := tm.(Model)
	held := 0
	m.game.EachBall(func(b breakin.Ball) {
		if b.Flags.Has(breakin.BallOnPaddle) {
			held++
		}
	})
	assert.Zero(t, held)
}

func TestModelQuit(t *testing.T) {
	tm, cmd := update(t, NewModel(testOptions()), runeKey('q'))
	assert.True(t, tm.(Model).IsQuitting())
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, tm.View())
}

func TestModelMenuKeyOnlyInSession(t *testing.T) {
	opts := testOptions()
	var tm tea.Model = NewModel(opts)
	tm, _ = update(t, tm, runeKey('p'))
	tm, _ = update(t, tm, TickMsg(time.Now()))
	require.True(t, tm.(Model).State().Paused)

	tm, _ = update(t, tm, runeKey('b'))
	assert.False(t, tm.(Model).BackToMenu())

	opts.InSession = true
	tm = NewModel(opts)
	tm, _ = update(t, tm, runeKey('b'))
	assert.False(t, tm.(Model).BackToMenu(), "running matches stay up")

	tm, _ = update(t, tm, runeKey('p'))
	tm, _ = update(t, tm, TickMsg(time.Now()))
	tm, _ = update(t, tm, runeKey('b'))
	assert.True(t, tm.(Model).BackToMenu())
}

func TestModelResizeAndHelp(t *testing.T) {
	var tm tea.Model = NewModel(testOptions())
	tm, _ = update(t, tm, tea.WindowSizeMsg{Width: 70, Height: 28})
	m := tm.(Model)
	assert.Equal(t, 70, m.screen.Width())
	assert.Equal(t, 28-footerShort, m.screen.Height())

	tm, _ = update(t, tm, runeKey('?'))
	m = tm.(Model)
	assert.True(t, m.help.ShowAll)
	assert.Equal(t, 28-footerFull, m.screen.Height())
}

func TestModelView(t *testing.T) {
	view := NewModel(testOptions()).View()
	assert.Contains(t, view, "BREAK-IN")
	assert.Contains(t, view, "launch")
}

func TestModelRestartIgnoredWhileRunning(t *testing.T) {
	m := NewModel(testOptions())
	id := m.MatchID()
	tm, _ := update(t, m, runeKey('r'))
	assert.Equal(t, id, tm.(Model).MatchID())
}

func TestPaletteRender(t *testing.T) {
	s := core.NewScreen(4, 2)
	s.SetPen(core.ColorRed)
	s.DrawText(0, 0, "ab")
	s.SetPen(core.ColorDefault)
	s.DrawText(2, 0, "cd")

	out := newPalette(nil).render(s)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "ab")
	assert.Contains(t, lines[0], "cd")
}

func TestMenuNavigation(t *testing.T) {
	var tm tea.Model = NewMenuModel(config.DifficultyNormal, 80, 24, nil)
	m := tm.(MenuModel)
	assert.Equal(t, config.DifficultyNormal, m.Preset())
	assert.Equal(t, ChoiceNone, m.Choice())

	tm, _ = update(t, tm, tea.KeyMsg{Type: tea.KeyDown})
	tm, _ = update(t, tm, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, config.DifficultyHard, tm.(MenuModel).Preset())
	tm, _ = update(t, tm, tea.KeyMsg{Type: tea.KeyLeft})
	tm, _ = update(t, tm, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, config.DifficultyEasy, tm.(MenuModel).Preset())

	tm, _ = update(t, tm, tea.KeyMsg{Type: tea.KeyDown})
	tm, _ = update(t, tm, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, ChoiceHistory, tm.(MenuModel).Choice())

	view := tm.View()
	assert.Contains(t, view, "Difficulty")
	assert.Contains(t, view, "easy")
}

func TestMenuWrapsAndQuits(t *testing.T) {
	var tm tea.Model = NewMenuModel(config.DifficultyFixed, 80, 24, nil)
	assert.Equal(t, config.DifficultyFixed, tm.(MenuModel).Preset())

	tm, _ = update(t, tm, tea.KeyMsg{Type: tea.KeyUp})
	tm, _ = update(t, tm, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, ChoiceQuit, tm.(MenuModel).Choice())
}

func TestSessionFlow(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	defer store.Close()

	opts := testOptions()
	opts.Store = store
	opts.Preset = config.DifficultyEasy

	var tm tea.Model = NewSessionModel(opts)
	tm, cmd := update(t, tm, tea.KeyMsg{Type: tea.KeyEnter})
	s := tm.(SessionModel)
	require.Equal(t, viewMatch, s.view)
	assert.NotNil(t, cmd)
	assert.Equal(t, 5, s.match.opts.Config.Match.Lives, "easy preset applied")
	assert.Equal(t, int64(5), s.match.game.Seed())
	assert.Contains(t, tm.View(), "BREAK-IN")

	// Pause, then back to the menu.
	tm, _ = update(t, tm, runeKey('p'))
	tm, _ = update(t, tm, TickMsg(time.Now()))
	tm, _ = update(t, tm, runeKey('b'))
	s = tm.(SessionModel)
	require.Equal(t, viewMenu, s.view)
	assert.Equal(t, config.DifficultyEasy, s.menu.Preset())

	// Stale ticks are swallowed by the menu.
	tm, cmd = update(t, tm, TickMsg(time.Now()))
	assert.Nil(t, cmd)

	// History and back.
	tm, _ = update(t, tm, tea.KeyMsg{Type: tea.KeyDown})
	tm, _ = update(t, tm, tea.KeyMsg{Type: tea.KeyDown})
	tm, _ = update(t, tm, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, viewHistory, tm.(SessionModel).view)
	assert.Contains(t, tm.View(), "No matches recorded yet")

	tm, _ = update(t, tm, tea.KeyMsg{Type: tea.KeyEscape})
	require.Equal(t, viewMenu, tm.(SessionModel).view)

	tm, cmd = update(t, tm, runeKey('q'))
	assert.True(t, tm.(SessionModel).quitting)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestHistoryModelShowsMatches(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	defer store.Close()

	_, err = store.SaveMatch(storage.MatchRecord{
		MatchID: "m-1", Seed: 1, Preset: "hard", Mode: storage.ModeSSH,
		Winner: "paddle", Duration: 42.5, BricksBroken: 30,
	})
	require.NoError(t, err)

	h := NewHistoryModel(store, 100, 30, nil)
	require.Len(t, h.matches, 1)
	assert.Equal(t, 1, h.totals.PaddleWins)

	view := h.View()
	assert.Contains(t, view, "MATCH HISTORY")
	assert.Contains(t, view, "1 matches  paddle 1  bricks 0  avg 42.5s")
	assert.Contains(t, view, "42.5s")
	assert.Contains(t, view, "hard")

	rows := HistoryRows(h.matches)
	assert.Equal(t, "30", rows[0][5])
}

func TestHistoryModelWithoutStore(t *testing.T) {
	h := NewHistoryModel(nil, 80, 24, nil)
	assert.Empty(t, h.matches)
	assert.Contains(t, h.View(), "No matches recorded yet")

	next, _ := h.Update(runeKey('q'))
	assert.True(t, next.(HistoryModel).IsQuitting())
}
