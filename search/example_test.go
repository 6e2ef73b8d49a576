// File: search/example_test.go
package search_test

import (
	"context"
	"fmt"
	"strings"

	"github.com/katalvlaran/gridsearch/grid"
	"github.com/katalvlaran/gridsearch/search"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Solve
////////////////////////////////////////////////////////////////////////////////

// ExampleSolve compares the four strategies on a 3×3 map with a wall column.
//
//	S . #
//	. . #
//	. . G
func ExampleSolve() {
	g, _ := grid.Parse(strings.NewReader("S.#\n..#\n..G\n"))

	for _, st := range search.Strategies {
		res, err := search.Solve(context.Background(), g, st)
		if err != nil {
			fmt.Println(err)
			return
		}
		fmt.Printf("%-14s %s steps=%d expanded=%d path=%v\n",
			st, res.Outcome, res.Steps(), res.Expanded, res.Path)
	}
	// Output:
	// combined       found steps=4 expanded=5 path=[(1,0) (1,1) (2,1)]
	// cost-only      found steps=4 expanded=6 path=[(1,0) (2,0) (2,1)]
	// heuristic-only found steps=4 expanded=4 path=[(1,0) (1,1) (2,1)]
	// traversal      found steps=4 expanded=6 path=[(1,0) (2,0) (2,1)]
}

////////////////////////////////////////////////////////////////////////////////
// Example: Run.Step
////////////////////////////////////////////////////////////////////////////////

// ExampleRun_Step drives a greedy search one expansion at a time and prints
// the event stream a renderer would consume.
func ExampleRun_Step() {
	g, _ := grid.Parse(strings.NewReader("S.#\n..#\n..G\n"))

	hook := func(e search.Event) {
		if e.Kind == search.SearchFinished {
			fmt.Println(e.Kind, e.Cell, e.Result.Outcome, e.Result.Path)
			return
		}
		fmt.Println(e.Kind, e.Cell)
	}
	r, _ := search.New(g, search.HeuristicOnly, search.WithOnEvent(hook))
	for {
		done, err := r.Step()
		if err != nil || done {
			break
		}
	}
	// Output:
	// frontier (0,0)
	// expanded (0,0)
	// frontier (1,0)
	// frontier (0,1)
	// expanded (1,0)
	// frontier (2,0)
	// frontier (1,1)
	// expanded (1,1)
	// frontier (2,1)
	// expanded (2,1)
	// frontier (2,2)
	// finished (2,2) found [(1,0) (1,1) (2,1)]
}
