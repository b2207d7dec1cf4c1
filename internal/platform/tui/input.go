package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/break-in/internal/core"
	"github.com/vovakirdan/break-in/internal/games/breakin"
)

// Terminals report key presses and auto-repeats but never releases, so a
// key counts as held until its hold deadline passes. The first press
// covers the auto-repeat delay; each repeat extends by the repeat window.
const (
	holdFirst  = 350 * time.Millisecond
	holdRepeat = 90 * time.Millisecond
)

// inputTracker accumulates terminal input between ticks and produces one
// InputFrame per step.
type inputTracker struct {
	holds   map[core.Action]time.Time
	pressed map[core.Action]bool
	mouse   core.MouseState
}

func newInputTracker() *inputTracker {
	return &inputTracker{
		holds:   make(map[core.Action]time.Time),
		pressed: make(map[core.Action]bool),
	}
}

// press records a key event for action a at time now.
func (t *inputTracker) press(a core.Action, now time.Time) {
	if a == core.ActionNone {
		return
	}

	window := holdFirst
	if until, ok := t.holds[a]; ok && now.Before(until) {
		window = holdRepeat
	} else {
		t.pressed[a] = true
	}
	t.holds[a] = now.Add(window)

	// Steering is exclusive: a new direction releases the old one.
	switch a {
	case core.ActionLeft:
		delete(t.holds, core.ActionRight)
	case core.ActionRight:
		delete(t.holds, core.ActionLeft)
	}
}

// mouseEvent folds a mouse message into the pointer state. Cells map to
// window pixels through the match renderer's layout.
func (t *inputTracker) mouseEvent(msg tea.MouseMsg) {
	t.mouse.Pos = breakin.ScreenToWindow(msg.X, msg.Y)

	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		t.mouse.Wheel++
	case msg.Button == tea.MouseButtonWheelDown:
		t.mouse.Wheel--
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		if !t.mouse.Down {
			t.mouse.Pressed = true
		}
		t.mouse.Down = true
	case msg.Action == tea.MouseActionRelease:
		if t.mouse.Down {
			t.mouse.Released = true
		}
		t.mouse.Down = false
	}
}

// frame builds the input for the step at time now and clears the edges.
func (t *inputTracker) frame(now time.Time) core.InputFrame {
	in := core.NewInputFrame()
	for a := range t.pressed {
		in.Set(a)
	}
	for a, until := range t.holds {
		if now.Before(until) {
			in.Hold(a)
		} else {
			delete(t.holds, a)
		}
	}
	in.Mouse = t.mouse

	clear(t.pressed)
	t.mouse.Pressed = false
	t.mouse.Released = false
	t.mouse.Wheel = 0
	return in
}

// reset drops every pending press and hold.
func (t *inputTracker) reset() {
	clear(t.holds)
	clear(t.pressed)
	t.mouse = core.MouseState{}
}
