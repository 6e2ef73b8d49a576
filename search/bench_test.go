package search_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/katalvlaran/gridsearch/grid"
	"github.com/katalvlaran/gridsearch/search"
)

// benchGrid builds an n×n grid with ~25% random walls (deterministic seed).
func benchGrid(b *testing.B, n int) *grid.Grid {
	b.Helper()
	g, err := grid.New(n, n)
	if err != nil {
		b.Fatalf("setup grid.New failed: %v", err)
	}
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < g.Len(); i++ {
		if rng.Intn(4) == 0 {
			_ = g.SetWall(g.Coordinate(i), true)
		}
	}
	return g
}

// BenchmarkSolve measures each strategy on a 200×200 grid.
// Complexity: O(N log N) for priority strategies, O(N) for traversal.
func BenchmarkSolve(b *testing.B) {
	g := benchGrid(b, 200)
	for _, st := range search.Strategies {
		b.Run(st.String(), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_, _ = search.Solve(context.Background(), g, st)
			}
		})
	}
}

// BenchmarkReset measures reusing one Run across searches.
func BenchmarkReset(b *testing.B) {
	g := benchGrid(b, 200)
	r, err := search.New(g, search.Combined)
	if err != nil {
		b.Fatalf("setup search.New failed: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r.Reset()
		for done := false; !done; {
			done, _ = r.Step()
		}
	}
}
