// Package gridpath is a step-by-step Dijkstra shortest-path simulator on an
// unweighted, 4-connected grid.
//
// 🚀 What is gridpath?
//
//	A small engine plus two drivers:
//		• gridgraph/     Node, Grid, cell states, ASCII map codec, reachability
//		• dijkstra/      resumable engine, one relaxation per Step or Run to the end
//		• config/        versioned YAML configuration (grid size, speed, palette, logs)
//		• tui/           interactive terminal simulator (Bubble Tea)
//		• cmd/gridpath/  interactive mode, or -batch over an ASCII map
//
// The engine keeps its frontier, visited set and distances between calls, so
// a driver can interleave Step with rendering and input:
//
//	g, _ := gridgraph.ParseString("S..\n.#.\n..E\n")
//	_ = g.PrepareRun()
//	e, _ := dijkstra.New(g, g.Start(), g.End())
//	for more, _ := e.Step(); more; more, _ = e.Step() {
//		// draw a frame
//	}
//	fmt.Println(e.Stats().PathLength) // 4
//
// Run the simulator:
//
//	go run ./cmd/gridpath -rows 20 -cols 30
//	go run ./cmd/gridpath -batch -map maze.txt
package gridpath
