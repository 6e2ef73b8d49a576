// Package search runs one path search over a grid.Grid, one expansion per
// Step, reporting every state change through an ordered event stream.
//
// A Run is the explicit run context: it owns the open and closed sets and
// all per-cell search fields, so independent Runs over the same Grid never
// share state. The Grid itself must not be edited while a Run is in flight;
// call Reset after editing to start over.
package search

import (
	"context"
	"fmt"

	"github.com/katalvlaran/gridsearch/grid"
)

// stepCost is the uniform cost of moving to an adjacent cell.
const stepCost = 1.0

// Run holds the mutable state for a single search over a grid.
type Run struct {
	grid     *grid.Grid   // read-only during the run
	strategy Strategy     // fixed for the lifetime of the Run
	opts     Options      // hooks and heuristic
	start    int          // start index, captured at Reset
	goal     int          // goal index, captured at Reset
	states   []cellState  // per-cell search fields, indexed row-major
	open     *frontier    // priority strategies
	trail    *backtracker // Traversal
	expanded int          // cells moved to the closed set
	done     bool
	result   Result
}

// New prepares a run of strategy s over g from g.Start() to g.Goal() and
// seeds its frontier with the start cell. The seeding emits one
// CellFrontierAdded event for the start.
//
// Returns ErrNilGrid, ErrUnknownStrategy or ErrOptionViolation for invalid input.
func New(g *grid.Grid, s Strategy, opts ...Option) (*Run, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if !s.valid() {
		return nil, fmt.Errorf("%w: %v", ErrUnknownStrategy, s)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	r := &Run{
		grid:     g,
		strategy: s,
		opts:     o,
		states:   make([]cellState, g.Len()),
	}
	if s == Traversal {
		r.trail = newBacktracker(r.states)
	} else {
		r.open = newFrontier(r.states, r.priorityFor(s))
	}
	r.Reset()

	return r, nil
}

// priorityFor builds the (h, f) rule of a priority strategy.
// The goal index is read at call time so Reset can relocate it.
func (r *Run) priorityFor(s Strategy) priorityFunc {
	switch s {
	case CostOnly:
		return func(_ int, g float64) (float64, float64) {
			return 0, g
		}
	case HeuristicOnly:
		return func(i int, _ float64) (float64, float64) {
			h := r.opts.Heuristic(r.grid.Coordinate(i), r.grid.Coordinate(r.goal))
			return h, h
		}
	default:
		return func(i int, g float64) (float64, float64) {
			h := r.opts.Heuristic(r.grid.Coordinate(i), r.grid.Coordinate(r.goal))
			return h, g + h
		}
	}
}

// Reset discards all search state, re-reads the endpoints from the grid and
// seeds the frontier with the start cell. Walls are kept as they are in the
// grid. A Run may be reset at any time, including mid-search.
func (r *Run) Reset() {
	for i := range r.states {
		r.states[i] = cellState{pred: -1}
	}
	r.start = r.grid.Index(r.grid.Start())
	r.goal = r.grid.Index(r.grid.Goal())
	r.expanded = 0
	r.done = false
	r.result = Result{
		Strategy: r.strategy,
		Outcome:  Running,
		Start:    r.grid.Start(),
		Goal:     r.grid.Goal(),
	}

	if r.trail != nil {
		r.trail.reset()
		r.trail.enqueue(r.start)
	} else {
		r.open.reset()
		r.open.insertOrUpdate(r.start, 0, -1)
	}
	r.emit(CellFrontierAdded, r.start)
}

// Step advances the search by exactly one expansion, or terminates it.
// It returns done == true once the run has a terminal outcome; further calls
// are no-ops. Each call leaves the run in a consistent state, so a caller may
// stop calling Step at any point to cancel.
func (r *Run) Step() (bool, error) {
	if r.done {
		return true, nil
	}
	var err error
	if r.trail != nil {
		err = r.stepTraversal()
	} else {
		err = r.stepPriority()
	}
	if err != nil {
		r.done = true
		return true, err
	}
	return r.done, nil
}

// stepPriority pops the best open cell. The goal terminates the run;
// any other cell is closed and its unexpanded neighbors relaxed in
// grid.Directions order.
func (r *Run) stepPriority() error {
	cur, err := r.open.popBest()
	if err != nil {
		return err
	}
	if cur == r.goal {
		return r.finish(Found)
	}

	r.open.markExpanded(cur)
	r.expanded++
	r.emit(CellExpanded, cur)

	g := r.states[cur].g
	for _, nb := range r.grid.Neighbors(r.grid.Coordinate(cur)) {
		ni := r.grid.Index(nb)
		if r.open.isExpanded(ni) {
			continue
		}
		if r.open.insertOrUpdate(ni, g+stepCost, cur) {
			r.emit(CellFrontierAdded, ni)
		}
	}

	if r.open.Len() == 0 {
		return r.finish(Exhausted)
	}
	return nil
}

// finish records the terminal outcome and emits SearchFinished.
func (r *Run) finish(outcome Outcome) error {
	r.done = true
	r.result.Outcome = outcome
	r.result.Expanded = r.expanded
	if outcome == Found {
		path, err := r.Reconstruct()
		if err != nil {
			return err
		}
		r.result.Path = path
		r.result.Cost = r.states[r.goal].g
	}
	res := r.Result()
	r.opts.OnEvent(Event{Kind: SearchFinished, Cell: r.grid.Coordinate(r.goal), Result: &res})
	return nil
}

func (r *Run) emit(kind EventKind, i int) {
	r.opts.OnEvent(Event{Kind: kind, Cell: r.grid.Coordinate(i)})
}

// Done reports whether the run has terminated.
func (r *Run) Done() bool { return r.done }

// Strategy returns the strategy the run was built with.
func (r *Run) Strategy() Strategy { return r.strategy }

// Result returns a copy of the current result. Before termination the
// Outcome is Running and only Expanded is meaningful.
func (r *Run) Result() Result {
	res := r.result
	if !r.done {
		res.Expanded = r.expanded
	}
	if res.Path != nil {
		res.Path = append(make([]grid.Point, 0, len(res.Path)), res.Path...)
	}
	return res
}

// State returns the search fields of the cell at p.
// Returns grid.ErrOutOfBounds for coordinates outside the grid.
func (r *Run) State(p grid.Point) (CellState, error) {
	if _, err := r.grid.CellAt(p); err != nil {
		return CellState{}, err
	}
	st := r.states[r.grid.Index(p)]
	cs := CellState{
		Point:     p,
		Cost:      st.g,
		Heuristic: st.h,
		Priority:  st.f,
		Visited:   st.visited,
		Frontier:  st.frontier,
	}
	if st.pred >= 0 {
		cs.Predecessor = r.grid.Coordinate(st.pred)
		cs.HasPredecessor = true
	}
	return cs, nil
}

// Solve runs strategy s over g to completion and returns the result.
// ctx is checked between steps; on cancellation the partial result and
// ctx.Err() are returned. With WithMaxSteps(n), Solve stops after n steps
// with ErrStepBudget. An Exhausted outcome is not an error.
func Solve(ctx context.Context, g *grid.Grid, s Strategy, opts ...Option) (Result, error) {
	r, err := New(g, s, opts...)
	if err != nil {
		return Result{}, err
	}
	for steps := 0; ; steps++ {
		select {
		case <-ctx.Done():
			return r.Result(), ctx.Err()
		default:
		}
		if r.opts.MaxSteps > 0 && steps >= r.opts.MaxSteps {
			return r.Result(), fmt.Errorf("%w: %d steps", ErrStepBudget, r.opts.MaxSteps)
		}

		done, err := r.Step()
		if err != nil {
			return r.Result(), err
		}
		if done {
			return r.Result(), nil
		}
	}
}
