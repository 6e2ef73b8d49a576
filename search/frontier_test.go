package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestFrontier builds a frontier over n cells whose priority equals the
// cost plus a fixed per-cell bias.
func newTestFrontier(n int, bias []float64) (*frontier, []cellState) {
	states := make([]cellState, n)
	for i := range states {
		states[i].pred = -1
	}
	fr := newFrontier(states, func(i int, g float64) (float64, float64) {
		if bias == nil {
			return 0, g
		}
		return bias[i], g + bias[i]
	})
	return fr, states
}

func TestFrontier_PopEmpty(t *testing.T) {
	fr, _ := newTestFrontier(3, nil)
	_, err := fr.popBest()
	require.ErrorIs(t, err, ErrEmptyFrontier)
}

// TestFrontier_TieBreakInsertionOrder pops equal priorities first-in first-out.
func TestFrontier_TieBreakInsertionOrder(t *testing.T) {
	fr, _ := newTestFrontier(6, nil)
	for _, i := range []int{4, 1, 5, 0, 3} {
		require.True(t, fr.insertOrUpdate(i, 2, -1))
	}
	require.True(t, fr.insertOrUpdate(2, 1, -1))

	var order []int
	for fr.Len() > 0 {
		i, err := fr.popBest()
		require.NoError(t, err)
		order = append(order, i)
	}
	assert.Equal(t, []int{2, 4, 1, 5, 0, 3}, order)
}

// TestFrontier_StrictImprovement updates only on a strictly lower cost and
// keeps the cell's insertion rank.
func TestFrontier_StrictImprovement(t *testing.T) {
	fr, states := newTestFrontier(4, nil)
	require.True(t, fr.insertOrUpdate(0, 3, 9))
	require.True(t, fr.insertOrUpdate(1, 2, 9))
	require.True(t, fr.insertOrUpdate(2, 2, 9))

	// equal cost: no change
	assert.False(t, fr.insertOrUpdate(0, 3, 7))
	assert.Equal(t, 9, states[0].pred)

	// improvement to a tie with 1 and 2: cell 0 was inserted first, so it wins
	assert.False(t, fr.insertOrUpdate(0, 2, 7))
	assert.Equal(t, 7, states[0].pred)
	assert.Equal(t, 2.0, states[0].g)
	assert.Equal(t, 3, fr.Len())

	i, err := fr.popBest()
	require.NoError(t, err)
	assert.Equal(t, 0, i)
	assert.False(t, states[0].frontier)
	assert.False(t, fr.contains(0))
}

// TestFrontier_PriorityUsesBias orders by f, not by g.
func TestFrontier_PriorityUsesBias(t *testing.T) {
	fr, states := newTestFrontier(3, []float64{5, 0, 1})
	fr.insertOrUpdate(0, 0, -1)
	fr.insertOrUpdate(1, 4, -1)
	fr.insertOrUpdate(2, 1, -1)
	assert.Equal(t, 5.0, states[0].f)
	assert.Equal(t, 1.0, states[2].h)

	var order []int
	for fr.Len() > 0 {
		i, _ := fr.popBest()
		order = append(order, i)
	}
	assert.Equal(t, []int{2, 1, 0}, order) // f = 2, 4, 5
}

func TestFrontier_ClosedSetAndReset(t *testing.T) {
	fr, states := newTestFrontier(2, nil)
	fr.insertOrUpdate(0, 0, -1)
	assert.True(t, fr.contains(0))
	assert.True(t, states[0].frontier)

	i, _ := fr.popBest()
	assert.False(t, fr.isExpanded(i))
	fr.markExpanded(i)
	assert.True(t, fr.isExpanded(i))

	fr.insertOrUpdate(1, 1, 0)
	fr.reset()
	assert.Equal(t, 0, fr.Len())
	assert.False(t, fr.contains(1))
}
