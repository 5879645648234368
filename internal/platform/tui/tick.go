// Package tui is the Bubble Tea front end of the game: one app model that
// swaps screens on scene transitions, the tick loop of the playing field,
// and the SSH server that serves the same app remotely.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/energy-guardian/internal/core"
)

// TickMsg triggers one simulation step of the game screen with the matching run id.
// Ticks addressed to a previous run are dropped.
type TickMsg struct {
	RunID string
	Time  time.Time
}

// tickCmd returns a Bubble Tea command that sends a tick every step of cfg,
// so wall time and simulated time advance together.
func tickCmd(cfg core.RuntimeConfig, runID string) tea.Cmd {
	return tea.Tick(cfg.TickDuration(), func(t time.Time) tea.Msg {
		return TickMsg{RunID: runID, Time: t}
	})
}
