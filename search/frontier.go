package search

import "container/heap"

// cellState holds the mutable per-run fields of one grid cell.
// pred is a row-major index, -1 while the cell is unreached or is the start.
type cellState struct {
	g, h, f  float64
	pred     int
	visited  bool
	frontier bool
}

// priorityFunc derives (h, f) for cell i reached with cost g.
type priorityFunc func(i int, g float64) (h, f float64)

// frontier is the open/closed set manager of the priority strategies.
//
// The open set is a min-heap ordered by (f, seq), where seq is the insertion
// counter. Among equal priorities the earliest inserted cell wins, which is
// the same cell a linear scan in insertion order would pick. Updates keep the
// original seq, so an improved cell does not lose its place among ties.
// open[i] points at the heap item of cell i, nil when i is not open.
// The closed set is cellState.visited.
type frontier struct {
	states   []cellState
	priority priorityFunc
	pq       openPQ
	open     []*openItem
	seq      uint64
}

func newFrontier(states []cellState, priority priorityFunc) *frontier {
	return &frontier{
		states:   states,
		priority: priority,
		pq:       make(openPQ, 0, len(states)),
		open:     make([]*openItem, len(states)),
	}
}

// reset empties both sets. Cell fields are reset by the owning Run.
func (fr *frontier) reset() {
	fr.pq = fr.pq[:0]
	for i := range fr.open {
		fr.open[i] = nil
	}
	fr.seq = 0
}

// Len returns the size of the open set.
func (fr *frontier) Len() int { return fr.pq.Len() }

// contains reports open-set membership in O(1).
func (fr *frontier) contains(i int) bool { return fr.open[i] != nil }

// insertOrUpdate offers cell i at cost g through predecessor pred.
// If i is already open it is updated only on strict improvement; otherwise it
// is inserted fresh. Reports whether i was newly inserted.
func (fr *frontier) insertOrUpdate(i int, g float64, pred int) bool {
	if it := fr.open[i]; it != nil {
		if g >= fr.states[i].g {
			return false
		}
		fr.assign(i, g, pred)
		it.f = fr.states[i].f
		heap.Fix(&fr.pq, it.index)
		return false
	}

	fr.assign(i, g, pred)
	it := &openItem{cell: i, f: fr.states[i].f, seq: fr.seq}
	fr.seq++
	heap.Push(&fr.pq, it)
	fr.open[i] = it
	fr.states[i].frontier = true
	return true
}

func (fr *frontier) assign(i int, g float64, pred int) {
	st := &fr.states[i]
	st.g = g
	st.pred = pred
	st.h, st.f = fr.priority(i, g)
}

// popBest removes and returns the open cell with minimal priority.
// Returns ErrEmptyFrontier if the open set is empty.
func (fr *frontier) popBest() (int, error) {
	if fr.pq.Len() == 0 {
		return -1, ErrEmptyFrontier
	}
	it := heap.Pop(&fr.pq).(*openItem)
	fr.open[it.cell] = nil
	fr.states[it.cell].frontier = false
	return it.cell, nil
}

// isExpanded reports closed-set membership.
func (fr *frontier) isExpanded(i int) bool { return fr.states[i].visited }

// markExpanded moves cell i to the closed set.
func (fr *frontier) markExpanded(i int) { fr.states[i].visited = true }

// openItem is a cell in the open set with its cached priority.
type openItem struct {
	cell  int     // row-major cell index
	f     float64 // priority at insertion or last improvement
	seq   uint64  // insertion order, tie-breaker
	index int     // position in openPQ, maintained by Swap/Push
}

// openPQ is a min-heap of *openItem ordered by (f, seq).
type openPQ []*openItem

// Len returns the number of items in the heap.
func (pq openPQ) Len() int { return len(pq) }

// Less orders by priority, then by insertion order.
func (pq openPQ) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}
	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements and keeps their index fields current.
func (pq openPQ) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].index = i
	pq[j].index = j
}

// Push adds x onto the heap. Called by heap.Push; x must be *openItem.
func (pq *openPQ) Push(x interface{}) {
	it := x.(*openItem)
	it.index = len(*pq)
	*pq = append(*pq, it)
}

// Pop removes and returns the last element. Called by heap.Pop.
func (pq *openPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	it.index = -1
	*pq = old[:n-1]

	return it
}
