// Package gridsearch is a step-wise path-search engine for 2-D grid maps.
//
// What is gridsearch?
//
//	A small library and command that find routes across a rectangular grid of
//	open and wall cells between a start and a goal, one expansion at a time:
//		• grid/   map model: walls, endpoints, 4-way neighbors, text format, regions
//		• search/ frontier manager, step-wise engine, event stream, path reconstruction
//		• cmd/pathfind  CLI that prints or animates (tcell) any strategy on a map
//
// Strategies:
//
//   - Combined       priority g+h (A*-like), shortest route
//   - CostOnly       priority g (Dijkstra-like), shortest route
//   - HeuristicOnly  priority h (greedy best-first), fast but not minimal
//   - Traversal      FIFO queue backed by a backtracking stack, no priorities
//
// Every run emits an ordered stream of events (CellFrontierAdded,
// CellExpanded, SearchFinished) so a renderer can replay the search cell by
// cell without touching engine internals.
//
// Quick start:
//
//	g, _ := grid.Parse(strings.NewReader("S..\n.#.\n..G\n"))
//	res, err := search.Solve(ctx, g, search.Combined)
//	fmt.Println(res.Outcome, res.Steps(), res.Path)
//
// Step by step:
//
//	r, _ := search.New(g, search.Traversal, search.WithOnEvent(draw))
//	for done := false; !done; {
//		done, _ = r.Step()
//	}
//
// Complexity per run on an R×C grid with N = R·C cells:
//
//	priority strategies: O(N log N) time, O(N) memory
//	traversal:           O(N) time, O(N) memory
package gridsearch
