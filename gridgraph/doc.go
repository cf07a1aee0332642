// Package gridgraph models a rectangular grid of cells as an unweighted,
// 4-connected graph for shortest-path search.
//
// What:
//
//   - Node is one grid cell: an immutable (row, col) coordinate, a role/presentation
//     State, the traversal fields a search owns (Distance, Prev, Visited), and a
//     precomputed, barrier-filtered neighbour list.
//   - Grid owns the nodes, enforces a single start and a single end, and applies
//     the editing rules of an interactive map editor (start/end/barrier placement).
//   - Parse and (*Grid).String convert to and from a plain ASCII map.
//
// Why:
//
//   - The search engine (package dijkstra) needs cheap neighbour access and mutable
//     per-node state; keeping both on the node avoids map lookups in the hot loop.
//   - Adjacency is recomputed explicitly (UpdateNeighbors) so that barrier edits
//     never leak into a traversal already in progress.
//
// Lifecycle:
//
//	g, _ := gridgraph.NewGrid(20, 20)
//	g.SetStart(0, 0)
//	g.SetEnd(19, 19)
//	g.SetBarrier(5, 5)
//	if err := g.PrepareRun(); err != nil { ... } // reset traversal state + neighbours
//	// hand g.Start() and g.End() to dijkstra.New
//
// Complexity:
//
//   - NewGrid, Reset, ResetTraversalState, UpdateNeighbors: O(R×C).
//   - Reachable: O(R×C) time and memory.
//   - Parse, String: O(R×C).
//
// Errors:
//
//   - ErrEmptyGrid: a grid needs at least one row and one column.
//   - ErrNonRectangular: map rows of differing lengths.
//   - ErrUnknownGlyph: unrecognised character in a map.
//   - ErrDuplicateEndpoint: a map with more than one start or end.
//   - ErrNotReady: PrepareRun called without distinct start and end.
package gridgraph
