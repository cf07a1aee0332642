package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg asks the model to advance the running search by one visible step.
// ID ties the tick to the run that scheduled it so that ticks left over
// from a stopped run are ignored.
type TickMsg struct {
	ID   int
	Time time.Time
}

// TickCmd schedules a TickMsg for run id after interval.
func TickCmd(id int, interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{ID: id, Time: t}
	})
}
