package gridgraph

// Node is a single grid cell and graph vertex.
//
// Distance, Prev and Visited belong to whichever search is currently running
// over the grid; they are cleared by (*Grid).ResetTraversalState. Prev is a
// lookup-only back-reference forming the shortest-path tree rooted at the
// start node.
type Node struct {
	Distance int   // best known distance from the start, Infinity if unreached
	Prev     *Node // predecessor on the best known path, nil if none
	Visited  bool  // distance is final

	coord     Coord
	state     State
	neighbors []*Node
}

func newNode(row, col int) *Node {
	return &Node{
		Distance: Infinity,
		coord:    Coord{Row: row, Col: col},
	}
}

// Coord returns the node's immutable position.
func (n *Node) Coord() Coord { return n.coord }

// Row returns the node's row.
func (n *Node) Row() int { return n.coord.Row }

// Col returns the node's column.
func (n *Node) Col() int { return n.coord.Col }

// State returns the node's current role/presentation state.
func (n *Node) State() State { return n.state }

// SetState overwrites the node's state. It does not touch start/end
// bookkeeping on the owning Grid; editors should go through the Grid.
func (n *Node) SetState(s State) { n.state = s }

// IsStart reports whether the node is the start cell.
func (n *Node) IsStart() bool { return n.state == Start }

// IsEnd reports whether the node is the end cell.
func (n *Node) IsEnd() bool { return n.state == End }

// IsBarrier reports whether the node is impassable.
func (n *Node) IsBarrier() bool { return n.state == Barrier }

// IsEmpty reports whether the node carries no mark at all.
func (n *Node) IsEmpty() bool { return n.state == Empty }

// Neighbors returns the adjacency computed by the last (*Grid).UpdateNeighbors
// call. The slice is shared; callers must not modify it.
func (n *Node) Neighbors() []*Node { return n.neighbors }

// reset returns the node to a blank cell.
func (n *Node) reset() {
	n.state = Empty
	n.resetTraversal()
}

// resetTraversal clears search fields and demotes search-only states.
func (n *Node) resetTraversal() {
	if n.state == Explored || n.state == Path {
		n.state = Empty
	}
	n.Distance = Infinity
	n.Prev = nil
	n.Visited = false
}
