// Package search defines strategies, events, results, options and sentinel
// errors for step-wise path search over a grid.Grid.
package search

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/gridsearch/grid"
)

// Sentinel errors returned by the search engine.
var (
	// ErrNilGrid indicates a nil *grid.Grid was passed to New or Solve.
	ErrNilGrid = errors.New("search: grid is nil")

	// ErrUnknownStrategy indicates a Strategy value or name outside the four
	// supported strategies.
	ErrUnknownStrategy = errors.New("search: unknown strategy")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")

	// ErrEmptyFrontier indicates popBest was called on an empty open set.
	// The engine checks emptiness before popping, so seeing this error means
	// the run state was corrupted.
	ErrEmptyFrontier = errors.New("search: frontier is empty")

	// ErrNoPath indicates a predecessor chain that does not lead from the goal
	// back to the start. Exhausted runs are not errors and never return it.
	ErrNoPath = errors.New("search: no path to goal")

	// ErrStepBudget is returned by Solve when WithMaxSteps is exceeded.
	ErrStepBudget = errors.New("search: step budget exhausted")
)

// Strategy selects how the next cell to expand is chosen.
type Strategy int

const (
	// Combined orders the open set by cost-so-far plus heuristic (A*-like).
	Combined Strategy = iota
	// CostOnly orders the open set by cost-so-far alone (Dijkstra-like).
	CostOnly
	// HeuristicOnly orders the open set by the heuristic alone (greedy best-first).
	HeuristicOnly
	// Traversal explores first-discovered branches through a FIFO queue and
	// backtracks through a LIFO stack (depth-biased, not shortest).
	Traversal
)

var strategyNames = [...]string{
	Combined:      "combined",
	CostOnly:      "cost-only",
	HeuristicOnly: "heuristic-only",
	Traversal:     "traversal",
}

// Strategies lists every strategy in declaration order.
var Strategies = []Strategy{Combined, CostOnly, HeuristicOnly, Traversal}

// String returns the canonical strategy name.
func (s Strategy) String() string {
	if !s.valid() {
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
	return strategyNames[s]
}

func (s Strategy) valid() bool {
	return s >= Combined && s <= Traversal
}

// ParseStrategy maps a name to a Strategy. Besides the canonical names it
// accepts the classic algorithm names astar, dijkstra, best-first and
// depth-first. Matching is case-insensitive.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "combined", "astar", "a*":
		return Combined, nil
	case "cost-only", "dijkstra":
		return CostOnly, nil
	case "heuristic-only", "best-first", "greedy":
		return HeuristicOnly, nil
	case "traversal", "depth-first", "dfs":
		return Traversal, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// Outcome is the terminal state of a run.
type Outcome int

const (
	// Running means the run has not terminated yet.
	Running Outcome = iota
	// Found means the goal was popped from the frontier.
	Found
	// Exhausted means the frontier emptied without reaching the goal.
	Exhausted
)

// String returns a lower-case outcome name.
func (o Outcome) String() string {
	switch o {
	case Running:
		return "running"
	case Found:
		return "found"
	case Exhausted:
		return "exhausted"
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}

// EventKind enumerates the state changes reported to the presentation layer.
type EventKind int

const (
	// CellFrontierAdded: a cell entered the open set (or traversal queue/stack).
	CellFrontierAdded EventKind = iota
	// CellExpanded: a cell was moved to the closed set and its neighbors examined.
	CellExpanded
	// SearchFinished: the run terminated; Event.Result holds the outcome.
	SearchFinished
)

// String names the event kind.
func (k EventKind) String() string {
	switch k {
	case CellFrontierAdded:
		return "frontier"
	case CellExpanded:
		return "expanded"
	case SearchFinished:
		return "finished"
	}
	return fmt.Sprintf("EventKind(%d)", int(k))
}

// Event is one entry of the ordered event stream of a run.
type Event struct {
	Kind   EventKind
	Cell   grid.Point // the affected cell; the goal for SearchFinished
	Result *Result    // non-nil only for SearchFinished
}

// Result holds the outcome of a run:
//   - Outcome: Running, Found or Exhausted.
//   - Path: interior cells from the start's successor to the goal's
//     predecessor; start and goal are excluded. Empty when start == goal.
//   - Cost: cost-so-far of the goal when Found.
//   - Expanded: number of cells moved to the closed set.
type Result struct {
	Strategy Strategy
	Outcome  Outcome
	Start    grid.Point
	Goal     grid.Point
	Path     []grid.Point
	Cost     float64
	Expanded int
}

// Steps returns the number of moves on the found route from start to goal,
// or 0 when the run did not find one.
func (r Result) Steps() int {
	if r.Outcome != Found || r.Start == r.Goal {
		return 0
	}
	return len(r.Path) + 1
}

// CellState is a read-only snapshot of the per-run search fields of a cell.
type CellState struct {
	Point          grid.Point
	Cost           float64    // g: cumulative cost from start
	Heuristic      float64    // h: estimate to goal (heuristic strategies only)
	Priority       float64    // f: expansion priority
	Predecessor    grid.Point // valid only if HasPredecessor
	HasPredecessor bool
	Visited        bool // in the closed set
	Frontier       bool // in the open set
}

// Option configures a run via functional arguments.
// Invalid options are recorded and surfaced as ErrOptionViolation by New.
type Option func(*Options)

// Options holds the tunable parameters of a run.
type Options struct {
	// OnEvent receives every event in emission order. It runs synchronously
	// inside Step and must not call back into the Run.
	OnEvent func(Event)

	// Heuristic estimates the remaining distance. Used by Combined and
	// HeuristicOnly; ignored by the other strategies.
	Heuristic Heuristic

	// MaxSteps, if > 0, makes Solve stop with ErrStepBudget after that many
	// Step calls. Step itself never enforces it.
	MaxSteps int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - a no-op OnEvent hook
//   - the Euclidean heuristic (1.41 × straight-line distance)
//   - no step budget
func DefaultOptions() Options {
	return Options{
		OnEvent:   func(Event) {},
		Heuristic: Euclidean,
		MaxSteps:  0,
	}
}

// WithOnEvent registers the event hook.
func WithOnEvent(fn func(Event)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEvent = fn
		}
	}
}

// WithHeuristic replaces the default Euclidean heuristic.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		if h != nil {
			o.Heuristic = h
		}
	}
}

// WithMaxSteps bounds the number of steps Solve may take.
//
//	n > 0:  limit to n steps
//	n == 0: no limit
//	n < 0:  invalid option → ErrOptionViolation
func WithMaxSteps(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxSteps cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxSteps = n
	}
}
