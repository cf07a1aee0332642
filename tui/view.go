package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/gridpath/config"
	"github.com/katalvlaran/gridpath/dijkstra"
	"github.com/katalvlaran/gridpath/gridgraph"
)

// cellWidth is the number of terminal columns one grid cell occupies.
const cellWidth = 2

const title = "Dijkstra's Pathfinding Simulator"

// legend lists the cell states shown in the side panel, in display order.
var legend = []struct {
	state gridgraph.State
	label string
}{
	{gridgraph.Start, "Start Node"},
	{gridgraph.End, "End Node"},
	{gridgraph.Barrier, "Barrier"},
	{gridgraph.Explored, "Visited"},
	{gridgraph.Path, "Shortest Path"},
	{gridgraph.Empty, "Empty"},
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.splash {
		return m.renderSplash()
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top, m.renderGrid(), "  ", m.renderPanel())

	return body + "\n" + m.help.View(m.keys)
}

func (m Model) renderGrid() string {
	var b strings.Builder
	for r := 0; r < m.grid.Rows(); r++ {
		if r > 0 {
			b.WriteByte('\n')
		}
		for c := 0; c < m.grid.Cols(); c++ {
			style := m.styles.cell(m.grid.Node(r, c).State())
			if m.cursor.Row == r && m.cursor.Col == c {
				b.WriteString(style.Inherit(m.styles.Cursor).Render("[]"))
				continue
			}
			b.WriteString(style.Render(strings.Repeat(" ", cellWidth)))
		}
	}

	return b.String()
}

func (m Model) renderPanel() string {
	s := m.styles
	line := func(label string, value any) string {
		return s.Label.Render(label+": ") + s.Value.Render(fmt.Sprint(value))
	}

	lines := []string{
		s.Title.Render(title),
		"",
		s.Header.Render("Statistics"),
		line("Visited Nodes", m.stats.VisitedCount),
		line("Path Length", m.stats.PathLength),
		line("Frontier", m.stats.Frontier),
		line("Status", statusText(m.stats, m.running)),
		"",
		line("Speed", fmt.Sprintf("%d/%d", m.speed, config.MaxSpeed)),
		speedBar(m.speed),
		"",
		s.Header.Render("Legend"),
	}
	for _, item := range legend {
		swatch := s.cell(item.state).Render(strings.Repeat(" ", cellWidth))
		lines = append(lines, swatch+" "+item.label)
	}
	lines = append(lines, "", line("Cursor", m.cursor))
	if m.notice != "" {
		lines = append(lines, "", s.Notice.Render(m.notice))
	}

	return s.Panel.Render(strings.Join(lines, "\n"))
}

// splashLines are the instructions shown before the grid.
var splashLines = []string{
	"Welcome to the Dijkstra's Algorithm Visualizer!",
	"",
	"Instructions:",
	"• Left click, or s, to place/move the start point",
	"• Right click, or e, to place/move the end point",
	"• Middle click, Shift+click or b to add/remove barriers",
	"• Arrows or hjkl move the cursor",
	"• Space starts and stops the search",
	"• c clears the search, r resets the grid",
	"• 1-9 and 0 set the animation speed",
	"",
	"Press any key to start, or q to quit",
}

func (m Model) renderSplash() string {
	body := lipgloss.JoinVertical(lipgloss.Center,
		m.styles.Title.Render(title),
		"",
		lipgloss.JoinVertical(lipgloss.Left, splashLines...),
	)
	if m.width == 0 || m.height == 0 {
		return body
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
}

// statusText is the human-facing summary of a run.
func statusText(st dijkstra.Stats, running bool) string {
	switch {
	case running:
		return "Running..."
	case st.PathFound:
		return "Path Found!"
	case st.Status == dijkstra.NoPath:
		return "No Path"
	case st.Status == dijkstra.Stopped:
		return "Stopped"
	default:
		return "Ready"
	}
}

func speedBar(speed int) string {
	return "[" + strings.Repeat("=", speed) + strings.Repeat(" ", config.MaxSpeed-speed) + "]"
}
