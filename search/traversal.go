package search

// backtracker is the frontier of the Traversal strategy: a FIFO primary
// queue plus a LIFO stack of deferred candidates. A cell may sit in either
// container more than once; entries for cells expanded in the meantime are
// skipped when they surface.
type backtracker struct {
	states []cellState
	queue  []int
	stack  []int
}

func newBacktracker(states []cellState) *backtracker {
	return &backtracker{states: states}
}

func (b *backtracker) reset() {
	b.queue = b.queue[:0]
	b.stack = b.stack[:0]
}

// enqueue appends i to the back of the primary queue.
// Reports whether i just became a frontier cell.
func (b *backtracker) enqueue(i int) bool {
	b.queue = append(b.queue, i)
	return b.mark(i)
}

// push puts i on top of the backtracking stack.
// Reports whether i just became a frontier cell.
func (b *backtracker) push(i int) bool {
	b.stack = append(b.stack, i)
	return b.mark(i)
}

func (b *backtracker) mark(i int) bool {
	if b.states[i].frontier {
		return false
	}
	b.states[i].frontier = true
	return true
}

// dequeue removes the front of the primary queue.
func (b *backtracker) dequeue() (int, bool) {
	if len(b.queue) == 0 {
		return -1, false
	}
	i := b.queue[0]
	b.queue = b.queue[1:]
	return i, true
}

// refill moves the top of the stack into the empty primary queue.
// Reports false when there is nothing left to explore.
func (b *backtracker) refill() bool {
	if len(b.queue) > 0 {
		return true
	}
	n := len(b.stack)
	if n == 0 {
		return false
	}
	b.queue = append(b.queue, b.stack[n-1])
	b.stack = b.stack[:n-1]
	return true
}

// stepTraversal dequeues until one cell is expanded or the run terminates.
//
// For an expanded cell every passable, unexpanded neighbor takes the cell as
// predecessor; the first such neighbor goes to the back of the queue, the
// rest onto the stack. When the queue runs dry the most recently deferred
// cell resumes the walk.
func (r *Run) stepTraversal() error {
	b := r.trail
	for {
		cur, ok := b.dequeue()
		if !ok {
			return r.finish(Exhausted)
		}
		if cur == r.goal {
			r.states[cur].frontier = false
			return r.finish(Found)
		}

		expandedNow := false
		if !r.states[cur].visited {
			r.expand(cur)
			expandedNow = true
		}

		if !b.refill() {
			return r.finish(Exhausted)
		}
		if expandedNow {
			return nil
		}
	}
}

// expand closes cur and routes its unexpanded neighbors.
func (r *Run) expand(cur int) {
	b := r.trail
	st := &r.states[cur]
	st.visited = true
	st.frontier = false
	r.expanded++
	r.emit(CellExpanded, cur)

	first := true
	for _, nb := range r.grid.Neighbors(r.grid.Coordinate(cur)) {
		ni := r.grid.Index(nb)
		if r.states[ni].visited {
			continue
		}
		r.states[ni].pred = cur
		r.states[ni].g = st.g + stepCost
		r.states[ni].f = r.states[ni].g

		var added bool
		if first {
			added = b.enqueue(ni)
			first = false
		} else {
			added = b.push(ni)
		}
		if added {
			r.emit(CellFrontierAdded, ni)
		}
	}
}
