// Package dijkstra provides a resumable, steppable implementation of Dijkstra's
// shortest-path algorithm on unweighted grid graphs (package gridgraph).
//
// Overview:
//
//   - Every traversable edge has weight 1; there is no weighted representation.
//   - An Engine owns the frontier (a min-heap keyed by tentative distance), the
//     visited set and the run statistics. Nothing else mutates them.
//   - Step performs exactly one frontier pop and returns. All state survives
//     between calls, so a driver can interleave rendering or input polling
//     with the search and resume whenever it likes.
//   - Run loops over Step until the search ends; RunContext does the same but
//     stops early when its context is cancelled.
//
// When to use:
//
//   - Visualising a search one cell at a time (see package tui).
//   - Batch shortest-path queries on small to medium grids.
//
// State machine:
//
//	Ready ──Step──▶ Running ──▶ Found   (end reached, path reconstructed)
//	                        └─▶ NoPath  (frontier exhausted)
//	Running ──Stop──▶ Stopped           (driver cancelled; no rollback)
//
// There is no Paused state: a driver pauses simply by not calling Step.
//
// Step contract:
//
//	more, touched := e.Step()
//
//   - (false, nil):  the search is over (or stopped); consult Stats.
//   - (false, end):  the end node was finalised; the path is tagged gridgraph.Path.
//   - (true,  nil):  a stale frontier entry was discarded; call Step again.
//   - (true,  node): node was finalised and tagged gridgraph.Explored
//     (unless it is the start); its neighbours were relaxed.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V) over a whole run; a single Step is O(log V).
//   - Space: O(V + E); the heap holds up to E entries under lazy decrease-key.
//
// Error handling (sentinel errors):
//
//   - ErrInvalidEndpoints:
//     Returned by New when the graph or an endpoint is nil, the endpoints are
//     the same node, or either is not part of the graph. No engine is built.
//
// “No path” is not an error: it is a normal outcome reported through Stats.
//
// Thread safety:
//
//   - An Engine is driven by a single caller. It starts no goroutines and holds
//     no timers. If several goroutines must observe one engine, synchronise
//     externally.
package dijkstra
