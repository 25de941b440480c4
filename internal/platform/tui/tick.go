// Package tui provides the Bubble Tea editor for glyph mosaics, locally and
// over SSH.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// statusTTL is how long a status line stays visible.
const statusTTL = 4 * time.Second

// clearStatusMsg expires the status line set with the same sequence number.
type clearStatusMsg int

// clearStatusCmd schedules the expiry of status message seq.
func clearStatusCmd(seq int) tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return clearStatusMsg(seq)
	})
}
