// Package tui provides the Bubble Tea integration for the runner. It maps
// terminal input to game keys, drives the frame clock, and renders the
// screen buffer with lipgloss styling.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger one simulation frame.
type TickMsg time.Time

// tickInterval is the frame duration for the given tick rate.
func tickInterval(tickRate int) time.Duration {
	if tickRate <= 0 {
		tickRate = 60
	}
	return time.Second / time.Duration(tickRate)
}

// tickCmd returns a Bubble Tea command that sends tick messages at the
// given rate.
func tickCmd(tickRate int) tea.Cmd {
	return tea.Tick(tickInterval(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
