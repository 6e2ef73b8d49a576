package search

import (
	"fmt"

	"github.com/katalvlaran/gridsearch/grid"
)

// Reconstruct walks predecessor links from the goal back to the start and
// returns the interior route in start→goal order. Start and goal are not
// included, so a start == goal run yields an empty path.
//
// The walk is iterative and bounded by the number of grid cells. Returns
// ErrNoPath if the chain does not end at the start (goal not reached yet,
// or a broken chain) or is longer than the grid.
//
// Complexity: O(L) time and memory, L = path length.
func (r *Run) Reconstruct() ([]grid.Point, error) {
	limit := r.grid.Len()
	path := []grid.Point{}
	cur := r.goal
	for n := 0; ; n++ {
		if n == limit {
			return nil, fmt.Errorf("%w: predecessor chain exceeds %d cells", ErrNoPath, limit)
		}
		prev := r.states[cur].pred
		if prev < 0 {
			break
		}
		if cur != r.goal {
			path = append(path, r.grid.Coordinate(cur))
		}
		cur = prev
	}
	if cur != r.start {
		return nil, fmt.Errorf("%w: chain from %v stops at %v, not at start %v",
			ErrNoPath, r.grid.Coordinate(r.goal), r.grid.Coordinate(cur), r.grid.Coordinate(r.start))
	}

	// reverse to get start → goal
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, nil
}
