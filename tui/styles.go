package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/gridpath/config"
	"github.com/katalvlaran/gridpath/gridgraph"
)

// Styles holds every lipgloss style the view renders with. Cell styles are
// derived from an injected palette so the state→colour table stays outside
// the engine.
type Styles struct {
	Cells  map[gridgraph.State]lipgloss.Style
	Cursor lipgloss.Style

	Title  lipgloss.Style
	Panel  lipgloss.Style
	Header lipgloss.Style
	Label  lipgloss.Style
	Value  lipgloss.Style
	Notice lipgloss.Style
}

// NewStyles builds Styles from palette, filling states it omits with the
// default palette.
func NewStyles(palette map[gridgraph.State]string) Styles {
	colors := config.Default().Colors()
	for s, c := range palette {
		colors[s] = c
	}

	cells := make(map[gridgraph.State]lipgloss.Style, len(colors))
	for s, c := range colors {
		cells[s] = lipgloss.NewStyle().Background(lipgloss.Color(c))
	}

	st := Styles{Cells: cells}
	st.Cursor = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Bold(true)
	st.Title = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#3F51B5"))
	st.Panel = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("62")).
		Padding(0, 1).
		Width(38)
	st.Header = lipgloss.NewStyle().Bold(true)
	st.Label = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	st.Value = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	st.Notice = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))

	return st
}

// cell returns the style for s, falling back to the empty-cell style.
func (s Styles) cell(state gridgraph.State) lipgloss.Style {
	if st, ok := s.Cells[state]; ok {
		return st
	}
	return s.Cells[gridgraph.Empty]
}
