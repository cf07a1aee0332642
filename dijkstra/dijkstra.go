// Package dijkstra implements the stepped shortest-path engine.
//
// Notes on implementation choices:
//
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap and
//     ignoring stale entries when they surface, rather than an indexed heap.
//   - Equal distances pop in insertion order, which makes runs reproducible.
//   - Per-node traversal state lives on gridgraph.Node; the engine keeps its own
//     visited set so that finalisation never depends on fields a driver could reset.
package dijkstra

import (
	"container/heap"
	"context"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Engine holds the mutable state of one shortest-path run between a fixed
// start and end. Create one per run with New and discard it afterwards.
type Engine struct {
	start, end *gridgraph.Node
	options    Options
	log        *slog.Logger

	pq      nodePQ                       // frontier, may hold stale entries
	seq     uint64                       // push counter for tie-breaking
	visited map[*gridgraph.Node]struct{} // finalised nodes
	path    []*gridgraph.Node            // start→end, set once found

	visitedCount int
	pathLength   int
	steps        int
	stale        int
	running      bool
	complete     bool
	pathFound    bool
	stopped      bool
}

// New builds an engine for a search from start to end over g.
//
// The caller is expected to have prepared the graph (gridgraph.Grid.PrepareRun):
// fresh traversal fields and current adjacency. New sets start.Distance to 0
// and seeds the frontier with it.
//
// Preconditions (ErrInvalidEndpoints, wrapped with the reason, otherwise):
//  1. g, start and end are non-nil.
//  2. start and end are distinct nodes.
//  3. g contains both.
func New(g Graph, start, end *gridgraph.Node, opts ...Option) (*Engine, error) {
	switch {
	case g == nil:
		return nil, fmt.Errorf("%w: graph is nil", ErrInvalidEndpoints)
	case start == nil || end == nil:
		return nil, fmt.Errorf("%w: start and end must both be set", ErrInvalidEndpoints)
	case start == end:
		return nil, fmt.Errorf("%w: start and end are the same node %v", ErrInvalidEndpoints, start.Coord())
	case !g.Contains(start):
		return nil, fmt.Errorf("%w: start %v is not in the graph", ErrInvalidEndpoints, start.Coord())
	case !g.Contains(end):
		return nil, fmt.Errorf("%w: end %v is not in the graph", ErrInvalidEndpoints, end.Coord())
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	e := &Engine{
		start:   start,
		end:     end,
		options: cfg,
		log:     cfg.Logger.With("run_id", cfg.RunID.String()),
		pq:      make(nodePQ, 0, 64),
		visited: make(map[*gridgraph.Node]struct{}),
	}
	start.Distance = 0
	start.Prev = nil
	heap.Init(&e.pq)
	e.push(start, 0)

	e.log.Debug("engine created", "start", start.Coord().String(), "end", end.Coord().String())

	return e, nil
}

// Step performs one unit of progress: it pops the closest frontier entry and,
// if the entry is current, finalises that node and relaxes its neighbours.
//
// It returns whether the driver should keep stepping and the node finalised
// by this call (nil when nothing visible changed). See the package
// documentation for the four possible results.
func (e *Engine) Step() (bool, *gridgraph.Node) {
	// 1) A stopped engine does nothing more.
	if e.stopped {
		return false, nil
	}

	// 2) Frontier exhausted (or already done): terminal, no path.
	if e.pq.Len() == 0 || e.complete {
		e.finish()
		return false, nil
	}
	e.running = true
	e.steps++

	// 3) Pop the closest entry and discard it if outdated.
	item := heap.Pop(&e.pq).(nodeItem)
	cur := item.node
	if item.dist > cur.Distance {
		e.stale++
		return true, nil
	}
	if _, done := e.visited[cur]; done {
		e.stale++
		return true, nil
	}

	// 4) Finalise.
	e.visited[cur] = struct{}{}
	cur.Visited = true
	e.visitedCount++
	if cur != e.start && cur != e.end {
		cur.SetState(gridgraph.Explored)
	}

	// 5) Goal reached.
	if cur == e.end {
		e.pathFound = true
		e.reconstructPath()
		e.finish()
		return false, cur
	}

	// 6) Relax every unvisited neighbour over a unit-weight edge.
	e.relax(cur)

	return true, cur
}

// relax offers cur.Distance+1 to each unvisited neighbour of cur and pushes
// the neighbours whose best distance strictly improved.
func (e *Engine) relax(cur *gridgraph.Node) {
	candidate := cur.Distance + 1
	for _, nb := range cur.Neighbors() {
		if _, done := e.visited[nb]; done {
			continue
		}
		if candidate >= nb.Distance {
			continue
		}
		nb.Distance = candidate
		nb.Prev = cur
		e.push(nb, candidate)
	}
}

func (e *Engine) push(n *gridgraph.Node, dist int) {
	heap.Push(&e.pq, nodeItem{node: n, dist: dist, seq: e.seq})
	e.seq++
}

// reconstructPath walks Prev links from end to start, records the chain and
// tags interior nodes as gridgraph.Path.
func (e *Engine) reconstructPath() {
	if !e.pathFound {
		return
	}
	var chain []*gridgraph.Node
	for n := e.end; n != nil; n = n.Prev {
		chain = append(chain, n)
		if n == e.start {
			break
		}
	}
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}
	for _, n := range chain[1 : len(chain)-1] {
		n.SetState(gridgraph.Path)
	}
	e.path = chain
	e.pathLength = len(chain) - 1
}

// finish marks the run complete and logs the outcome once.
func (e *Engine) finish() {
	wasComplete := e.complete
	e.complete = true
	e.running = false
	if wasComplete {
		return
	}
	e.log.Debug("search finished",
		"found", e.pathFound,
		"visited", e.visitedCount,
		"path_length", e.pathLength,
		"steps", e.steps,
		"stale", e.stale,
	)
}

// Run calls Step until it reports that the search is over, invoking
// onEachStep (if non-nil) after every call whether or not it made visible
// progress. It returns whether a path was found. There is no step budget;
// on a finite grid the visited set bounds the work.
func (e *Engine) Run(onEachStep func(more bool, touched *gridgraph.Node)) bool {
	if !e.complete && !e.stopped {
		e.running = true
	}
	for {
		more, touched := e.Step()
		if onEachStep != nil {
			onEachStep(more, touched)
		}
		if !more {
			break
		}
	}

	return e.pathFound
}

// RunContext is Run with cancellation: ctx is checked before every Step, and
// once it is done the engine is stopped and ctx.Err() returned.
func (e *Engine) RunContext(ctx context.Context, onEachStep func(more bool, touched *gridgraph.Node)) (bool, error) {
	for {
		if err := ctx.Err(); err != nil {
			e.Stop()
			return false, err
		}
		more, touched := e.Step()
		if onEachStep != nil {
			onEachStep(more, touched)
		}
		if !more {
			return e.pathFound, nil
		}
	}
}

// Stop cancels the run. Node state already written stays as it is; reset the
// grid before starting another run. Stopping a finished engine has no effect.
func (e *Engine) Stop() {
	if e.complete || e.stopped {
		return
	}
	e.stopped = true
	e.running = false
	e.log.Debug("search stopped", "visited", e.visitedCount, "steps", e.steps)
}

// Path returns the shortest path from start to end inclusive, or nil unless
// a path was found. The slice is shared; callers must not modify it.
func (e *Engine) Path() []*gridgraph.Node { return e.path }

// Start returns the start node.
func (e *Engine) Start() *gridgraph.Node { return e.start }

// End returns the end node.
func (e *Engine) End() *gridgraph.Node { return e.end }

// Status returns the engine's current state-machine position.
func (e *Engine) Status() Status {
	switch {
	case e.stopped:
		return Stopped
	case e.complete && e.pathFound:
		return Found
	case e.complete:
		return NoPath
	case e.running:
		return Running
	default:
		return Ready
	}
}

// Stats returns a snapshot of the engine. It is a pure read and may be called
// at any point, including mid-run.
func (e *Engine) Stats() Stats {
	pathLength := 0
	if e.pathFound {
		pathLength = e.pathLength
	}

	return Stats{
		RunID:        e.options.RunID,
		Status:       e.Status(),
		VisitedCount: e.visitedCount,
		PathLength:   pathLength,
		Steps:        e.steps,
		Stale:        e.stale,
		Frontier:     e.pq.Len(),
		Running:      e.running,
		Complete:     e.complete,
		PathFound:    e.pathFound,
	}
}
