package search

import (
	"math"

	"github.com/katalvlaran/gridsearch/grid"
)

// Heuristic estimates the remaining cost from a to b.
type Heuristic func(a, b grid.Point) float64

// EuclideanWeight scales the straight-line distance. A weight above 1 makes
// the estimate inadmissible on a 4-connected grid and biases heuristic
// strategies toward diagonal-looking routes.
const EuclideanWeight = 1.41

// Euclidean returns EuclideanWeight × √(Δrow² + Δcol²).
//
// The root is taken of the exact integer sum rather than through math.Hypot,
// whose rescaling rounds differently: cells at equal distance (for example
// offsets (6,7) and (2,9)) must get bit-identical estimates so that ties in
// priority fall back to insertion order. The conversion rounds the product
// before a caller adds g, so it cannot be fused.
func Euclidean(a, b grid.Point) float64 {
	dr, dc := float64(a.Row-b.Row), float64(a.Col-b.Col)
	return float64(EuclideanWeight * math.Sqrt(dr*dr+dc*dc))
}

// Manhattan returns |Δrow| + |Δcol|, an admissible estimate on a
// 4-connected grid with unit step cost.
func Manhattan(a, b grid.Point) float64 {
	return math.Abs(float64(a.Row-b.Row)) + math.Abs(float64(a.Col-b.Col))
}
