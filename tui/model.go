// Package tui is the interactive terminal driver for the stepped
// shortest-path engine: it lets the user edit a grid with the keyboard or
// mouse, then animates the search one finalised cell per tick.
package tui

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/katalvlaran/gridpath/config"
	"github.com/katalvlaran/gridpath/dijkstra"
	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/internal/logging"
)

// Options configures a Model.
type Options struct {
	// Speed is the initial animation speed, 1..10.
	Speed int
	// Palette overrides cell colours per state.
	Palette map[gridgraph.State]string
	// Logger receives run lifecycle records. Nil discards them.
	Logger *slog.Logger
	// Splash shows the instructions screen until the first key or click.
	Splash bool
}

// Model is the bubbletea model for the simulator.
type Model struct {
	grid   *gridgraph.Grid
	engine *dijkstra.Engine
	stats  dijkstra.Stats

	styles Styles
	keys   keyMap
	help   help.Model
	log    *slog.Logger

	cursor   gridgraph.Coord
	speed    int
	running  bool
	dragging bool
	tickID   int
	notice   string

	width    int
	height   int
	splash   bool
	quitting bool
}

// New returns a Model editing g.
func New(g *gridgraph.Grid, opts Options) Model {
	speed := opts.Speed
	if speed < config.MinSpeed || speed > config.MaxSpeed {
		speed = config.Default().Speed
	}
	log := opts.Logger
	if log == nil {
		log = logging.Discard()
	}

	return Model{
		grid:   g,
		styles: NewStyles(opts.Palette),
		keys:   defaultKeyMap(),
		help:   help.New(),
		log:    log,
		speed:  speed,
		splash: opts.Splash,
		cursor: gridgraph.Coord{Row: g.Rows() / 2, Col: g.Cols() / 2},
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Grid returns the grid being edited.
func (m Model) Grid() *gridgraph.Grid { return m.grid }

// Stats returns the statistics of the current or last run.
func (m Model) Stats() dijkstra.Stats { return m.stats }

// Running reports whether a search is being animated.
func (m Model) Running() bool { return m.running }

// Speed returns the current animation speed.
func (m Model) Speed() int { return m.speed }

// Splash reports whether the instructions screen is showing.
func (m Model) Splash() bool { return m.splash }

// Cursor returns the keyboard cursor position.
func (m Model) Cursor() gridgraph.Coord { return m.cursor }

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if m.splash && !key.Matches(msg, m.keys.Quit) {
			m.splash = false
			return m, nil
		}
		return m.handleKey(msg)

	case tea.MouseMsg:
		if m.splash {
			if msg.Action == tea.MouseActionPress {
				m.splash = false
			}
			return m, nil
		}
		return m.handleMouse(msg), nil

	case TickMsg:
		if !m.running || msg.ID != m.tickID {
			return m, nil
		}
		m = m.advance()
		if !m.running {
			return m, nil
		}
		return m, TickCmd(m.tickID, config.StepInterval(m.speed))
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		if m.running {
			m = m.stopRun()
		}
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1, 0)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1, 0)
	case key.Matches(msg, m.keys.Left):
		m.moveCursor(0, -1)
	case key.Matches(msg, m.keys.Right):
		m.moveCursor(0, 1)

	case key.Matches(msg, m.keys.Start):
		m = m.edit(m.grid.SetStart, m.cursor)
	case key.Matches(msg, m.keys.End):
		m = m.edit(m.grid.SetEnd, m.cursor)
	case key.Matches(msg, m.keys.Barrier):
		m = m.edit(m.grid.ToggleBarrier, m.cursor)
	case key.Matches(msg, m.keys.Erase):
		m = m.edit(m.grid.Clear, m.cursor)

	case key.Matches(msg, m.keys.Run):
		if m.running {
			return m.stopRun(), nil
		}
		return m.startRun()

	case key.Matches(msg, m.keys.Clear):
		if !m.running {
			m.grid.ResetTraversalState()
			m.engine = nil
			m.stats = dijkstra.Stats{}
			m.notice = ""
		}

	case key.Matches(msg, m.keys.Reset):
		if m.running {
			m = m.stopRun()
		}
		m.grid.Reset()
		m.engine = nil
		m.stats = dijkstra.Stats{}
		m.notice = ""
		m.log.Info("grid reset")

	case key.Matches(msg, m.keys.Speed):
		m.speed = speedFromKey(msg.String())
	}

	return m, nil
}

// speedFromKey maps "1".."9" to 1..9 and "0" to 10.
func speedFromKey(k string) int {
	if k == "0" {
		return config.MaxSpeed
	}
	return int(k[0] - '0')
}

func (m *Model) moveCursor(dr, dc int) {
	r, c := m.cursor.Row+dr, m.cursor.Col+dc
	if m.grid.InBounds(r, c) {
		m.cursor = gridgraph.Coord{Row: r, Col: c}
	}
}

// edit applies a grid edit at at. Edits are refused while a search is
// running; after a finished search the traversal overlay is cleared first.
func (m Model) edit(apply func(row, col int) bool, at gridgraph.Coord) Model {
	if m.running {
		m.notice = "stop the search before editing"
		return m
	}
	if m.engine != nil {
		m.grid.ResetTraversalState()
		m.engine = nil
	}
	m.notice = ""
	apply(at.Row, at.Col)

	return m
}

func (m Model) handleMouse(msg tea.MouseMsg) Model {
	row, col, ok := m.cellAt(msg.X, msg.Y)

	switch msg.Action {
	case tea.MouseActionRelease:
		m.dragging = false
		return m

	case tea.MouseActionMotion:
		if m.dragging && ok {
			m.cursor = gridgraph.Coord{Row: row, Col: col}
			m = m.edit(m.grid.SetBarrier, m.cursor)
		}
		return m

	case tea.MouseActionPress:
		if !ok {
			return m
		}
		m.cursor = gridgraph.Coord{Row: row, Col: col}
		switch {
		case msg.Button == tea.MouseButtonMiddle,
			msg.Button == tea.MouseButtonLeft && msg.Shift:
			m.dragging = true
			m = m.edit(m.grid.SetBarrier, m.cursor)
		case msg.Button == tea.MouseButtonLeft:
			m = m.edit(m.grid.SetStart, m.cursor)
		case msg.Button == tea.MouseButtonRight:
			m = m.edit(m.grid.SetEnd, m.cursor)
		}
	}

	return m
}

// cellAt maps terminal coordinates to a grid cell. The grid is drawn at the
// top-left corner, two columns per cell.
func (m Model) cellAt(x, y int) (row, col int, ok bool) {
	row, col = y, x/cellWidth
	if x < 0 || !m.grid.InBounds(row, col) {
		return 0, 0, false
	}
	return row, col, true
}

func (m Model) startRun() (Model, tea.Cmd) {
	if err := m.grid.PrepareRun(); err != nil {
		m.notice = "place a start and an end first"
		return m, nil
	}
	e, err := dijkstra.New(m.grid, m.grid.Start(), m.grid.End(), dijkstra.WithLogger(m.log))
	if err != nil {
		m.notice = err.Error()
		return m, nil
	}

	m.engine = e
	m.stats = e.Stats()
	m.running = true
	m.notice = ""
	m.tickID++
	m.log.Info("run started",
		"run_id", m.stats.RunID.String(),
		"start", e.Start().Coord().String(),
		"end", e.End().Coord().String(),
		"speed", m.speed)

	return m, TickCmd(m.tickID, config.StepInterval(m.speed))
}

func (m Model) stopRun() Model {
	if m.engine != nil {
		m.engine.Stop()
		m.stats = m.engine.Stats()
	}
	m.running = false
	m.tickID++
	m.log.Info("run stopped", "run_id", m.stats.RunID.String(), "visited", m.stats.VisitedCount)

	return m
}

// advance steps the engine until a node is finalised or the search ends,
// so that each tick shows visible progress.
func (m Model) advance() Model {
	for {
		more, touched := m.engine.Step()
		if !more {
			m.running = false
			m.stats = m.engine.Stats()
			m.log.Info("run finished",
				"run_id", m.stats.RunID.String(),
				"status", m.stats.Status.String(),
				"visited", m.stats.VisitedCount,
				"path_length", m.stats.PathLength)
			return m
		}
		if touched != nil {
			break
		}
	}
	m.stats = m.engine.Stats()

	return m
}
