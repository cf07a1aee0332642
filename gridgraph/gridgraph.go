// Package gridgraph provides the grid container that owns node storage,
// start/end bookkeeping and adjacency.
//
// Editing follows a permissive policy: an edit that does not apply (out of
// bounds, cell already occupied by another role) is a no-op reported by a
// false return, never an error.
package gridgraph

// Grid is a rows×cols matrix of nodes with at most one start and one end.
// Grid is not safe for concurrent use; one driver edits and searches it.
type Grid struct {
	rows, cols int
	nodes      [][]*Node
	start, end *Node
}

// NewGrid allocates a rows×cols grid of empty cells.
// Returns ErrEmptyGrid if either dimension is below one.
// Complexity: O(R×C) time and memory.
func NewGrid(rows, cols int) (*Grid, error) {
	if rows < 1 || cols < 1 {
		return nil, ErrEmptyGrid
	}
	nodes := make([][]*Node, rows)
	for r := 0; r < rows; r++ {
		nodes[r] = make([]*Node, cols)
		for c := 0; c < cols; c++ {
			nodes[r][c] = newNode(r, c)
		}
	}

	return &Grid{rows: rows, cols: cols, nodes: nodes}, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Len returns the total number of cells.
func (g *Grid) Len() int { return g.rows * g.cols }

// InBounds reports whether (row,col) lies within the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// Node returns the node at (row,col), or nil when out of bounds.
func (g *Grid) Node(row, col int) *Node {
	if !g.InBounds(row, col) {
		return nil
	}
	return g.nodes[row][col]
}

// Nodes returns every node in row-major order.
func (g *Grid) Nodes() []*Node {
	out := make([]*Node, 0, g.Len())
	for _, row := range g.nodes {
		out = append(out, row...)
	}
	return out
}

// Contains reports whether n is a node of this grid (pointer identity).
func (g *Grid) Contains(n *Node) bool {
	if n == nil {
		return false
	}
	return g.Node(n.coord.Row, n.coord.Col) == n
}

// Start returns the start node, or nil if none is placed.
func (g *Grid) Start() *Node { return g.start }

// End returns the end node, or nil if none is placed.
func (g *Grid) End() *Node { return g.end }

// Ready reports whether a distinct start and end are both placed.
func (g *Grid) Ready() bool {
	return g.start != nil && g.end != nil && g.start != g.end
}

// SetStart moves the start marker to (row,col). The target must be empty or
// already the start; the previous start cell becomes empty.
func (g *Grid) SetStart(row, col int) bool {
	n := g.Node(row, col)
	if n == nil || !(n.IsEmpty() || n.IsStart()) {
		return false
	}
	if g.start != nil {
		g.start.SetState(Empty)
	}
	n.SetState(Start)
	g.start = n

	return true
}

// SetEnd moves the end marker to (row,col). The target must be empty or
// already the end; the previous end cell becomes empty.
func (g *Grid) SetEnd(row, col int) bool {
	n := g.Node(row, col)
	if n == nil || !(n.IsEmpty() || n.IsEnd()) {
		return false
	}
	if g.end != nil {
		g.end.SetState(Empty)
	}
	n.SetState(End)
	g.end = n

	return true
}

// SetBarrier turns an empty cell into a barrier.
func (g *Grid) SetBarrier(row, col int) bool {
	n := g.Node(row, col)
	if n == nil || !n.IsEmpty() {
		return false
	}
	n.SetState(Barrier)

	return true
}

// ToggleBarrier flips a cell between empty and barrier.
func (g *Grid) ToggleBarrier(row, col int) bool {
	n := g.Node(row, col)
	if n == nil {
		return false
	}
	switch n.State() {
	case Empty:
		n.SetState(Barrier)
	case Barrier:
		n.SetState(Empty)
	default:
		return false
	}

	return true
}

// Clear erases whatever occupies (row,col), releasing the start or end
// marker if it was there. Clearing an already blank cell is a no-op.
func (g *Grid) Clear(row, col int) bool {
	n := g.Node(row, col)
	if n == nil || n.IsEmpty() {
		return false
	}
	if n == g.start {
		g.start = nil
	}
	if n == g.end {
		g.end = nil
	}
	n.reset()

	return true
}

// Reset blanks every cell and forgets start and end.
func (g *Grid) Reset() {
	for _, row := range g.nodes {
		for _, n := range row {
			n.reset()
		}
	}
	g.start, g.end = nil, nil
}

// ResetTraversalState clears Distance, Prev and Visited on every node and
// demotes Explored/Path cells to Empty. Start, End and Barrier survive.
func (g *Grid) ResetTraversalState() {
	for _, row := range g.nodes {
		for _, n := range row {
			n.resetTraversal()
		}
	}
}

// UpdateNeighbors recomputes every node's adjacency from current passability,
// in up, down, left, right order, excluding barriers and off-grid cells.
func (g *Grid) UpdateNeighbors() {
	for r, row := range g.nodes {
		for c, n := range row {
			n.neighbors = n.neighbors[:0]
			for _, d := range neighborOffsets {
				nb := g.Node(r+d[0], c+d[1])
				if nb == nil || nb.IsBarrier() {
					continue
				}
				n.neighbors = append(n.neighbors, nb)
			}
		}
	}
}

// PrepareRun readies the grid for a fresh search: traversal state is
// cleared and adjacency recomputed. Returns ErrNotReady unless Ready().
func (g *Grid) PrepareRun() error {
	if !g.Ready() {
		return ErrNotReady
	}
	g.ResetTraversalState()
	g.UpdateNeighbors()

	return nil
}

// index maps (row,col) to a row-major index.
func (g *Grid) index(row, col int) int {
	return row*g.cols + col
}
