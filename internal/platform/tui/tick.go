// Package tui hosts Break-In matches in a Bubble Tea program.
// It maps keys and mouse to match input, drives the step loop from tick
// messages and renders the match screen with lipgloss.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg carries the wall time of one host frame.
type TickMsg time.Time

// tickCmd schedules the next frame at fps frames per second.
func tickCmd(fps int) tea.Cmd {
	if fps <= 0 {
		fps = 60
	}
	interval := time.Second / time.Duration(fps)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// frameDT is the step length in seconds between two ticks. The first tick
// of a match has no predecessor and uses the nominal interval.
func frameDT(prev, now time.Time, fps int) float64 {
	if prev.IsZero() || !now.After(prev) {
		if fps <= 0 {
			fps = 60
		}
		return 1 / float64(fps)
	}
	return now.Sub(prev).Seconds()
}
