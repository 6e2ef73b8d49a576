// Package search finds a route between the start and goal of a grid.Grid
// with one of four interchangeable strategies, one expansion at a time.
//
// Strategies:
//
//   - Combined:      priority f = g + h (A*-like).
//   - CostOnly:      priority f = g (Dijkstra-like; shortest in steps).
//   - HeuristicOnly: priority f = h (greedy best-first; g still tracked).
//   - Traversal:     FIFO queue with a LIFO backtracking stack; depth-biased,
//     finds a route whenever one exists but not necessarily a short one.
//
// Every move costs 1. The default heuristic is 1.41 × Euclidean distance;
// Manhattan is available through WithHeuristic.
//
// Ordering guarantees:
//
//   - Neighbors are examined in grid.Directions order: down, up, right, left.
//   - Among open cells of equal priority the earliest inserted is expanded
//     first; an improved cell keeps its original insertion rank.
//   - Events are emitted in the exact order the engine makes the changes:
//     CellFrontierAdded for the start on seeding, then per step one
//     CellExpanded followed by CellFrontierAdded for each newly opened
//     neighbor, and finally one SearchFinished. The goal is never reported
//     as expanded.
//   - Identical grids and options give identical event streams.
//
// Concurrency:
//
//	A Run is single-threaded and owns all of its state. Step is a suspension
//	point: stop calling it to cancel, call Reset to start over. Concurrent
//	runs on the same Grid are safe as long as nobody edits the Grid.
//
// Complexity (priority strategies, N = Rows×Cols):
//
//   - Time:  O(N log N); each cell is inserted once and fixed at most four times.
//   - Space: O(N) per Run.
//
// Errors (sentinel):
//
//   - ErrNilGrid, ErrUnknownStrategy, ErrOptionViolation: invalid input to New.
//   - ErrEmptyFrontier: popping an empty open set (internal fault).
//   - ErrNoPath: broken or missing predecessor chain in Reconstruct.
//   - ErrStepBudget: Solve hit WithMaxSteps.
//
// An unreachable goal is not an error: the run ends with Outcome Exhausted.
//
// Example usage:
//
//	g, _ := grid.Parse(strings.NewReader("S.#\n..#\n..G\n"))
//	res, err := search.Solve(ctx, g, search.Combined)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Outcome, res.Steps(), res.Path)
package search
