// Package gridgraph defines core types and constants for the grid graph model.
package gridgraph

import (
	"fmt"
	"math"
	"strings"
)

// Infinity is the Distance sentinel for nodes no search has reached.
const Infinity = math.MaxInt

// State is the role and presentation tag of a cell.
// Start, End and Barrier are set by the editor; Explored and Path are set
// by a search and cleared by ResetTraversalState.
type State int

const (
	// Empty is a passable, unmarked cell.
	Empty State = iota
	// Start is the single source cell.
	Start
	// End is the single target cell.
	End
	// Barrier is an impassable cell.
	Barrier
	// Explored marks a cell whose shortest distance has been finalised.
	Explored
	// Path marks an interior cell of the reconstructed shortest path.
	Path
)

var stateNames = [...]string{
	Empty:    "empty",
	Start:    "start",
	End:      "end",
	Barrier:  "barrier",
	Explored: "explored",
	Path:     "path",
}

var stateGlyphs = [...]byte{
	Empty:    '.',
	Start:    'S',
	End:      'E',
	Barrier:  '#',
	Explored: 'o',
	Path:     '*',
}

// States lists every State in declaration order.
func States() []State {
	return []State{Empty, Start, End, Barrier, Explored, Path}
}

// String returns the lower-case state name.
func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return fmt.Sprintf("State(%d)", int(s))
	}
	return stateNames[s]
}

// Glyph returns the ASCII map character for s.
func (s State) Glyph() byte {
	if s < 0 || int(s) >= len(stateGlyphs) {
		return '?'
	}
	return stateGlyphs[s]
}

// ParseState maps a state name (case-insensitive) back to its State.
func ParseState(name string) (State, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range stateNames {
		if n == name {
			return State(i), nil
		}
	}
	return Empty, fmt.Errorf("gridgraph: unknown state %q", name)
}

// Coord identifies a cell by row and column.
type Coord struct {
	Row, Col int
}

// String formats c as "(row,col)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// neighborOffsets is the fixed 4-connected adjacency order: up, down, left, right.
var neighborOffsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
