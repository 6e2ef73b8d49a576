// Package grid defines the cell model, sentinel errors and neighbor order
// for the grid subpackage of github.com/katalvlaran/gridsearch.
package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid operations.
var (
	// ErrEmptyGrid indicates the grid has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrOutOfBounds indicates a coordinate outside [0,Rows)×[0,Cols).
	ErrOutOfBounds = errors.New("grid: coordinates out of bounds")
	// ErrBadRune indicates an unknown character in a textual grid.
	ErrBadRune = errors.New("grid: unexpected character in grid text")
	// ErrDuplicateEndpoint indicates a textual grid with more than one S or G.
	ErrDuplicateEndpoint = errors.New("grid: start or goal given more than once")
)

// Text runes used by Parse and String.
const (
	RuneWall  = '#'
	RuneOpen  = '.'
	RuneStart = 'S'
	RuneGoal  = 'G'
)

// Point identifies a cell by its row and column. Two cells are the same
// cell iff their Points are equal.
type Point struct {
	Row, Col int
}

// String renders p as "(row,col)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Add returns p shifted by d.
func (p Point) Add(d Point) Point {
	return Point{Row: p.Row + d.Row, Col: p.Col + d.Col}
}

// Adjacent reports whether q is one of p's four orthogonal neighbors.
func (p Point) Adjacent(q Point) bool {
	dr, dc := p.Row-q.Row, p.Col-q.Col
	return dr*dr+dc*dc == 1
}

// Directions lists neighbor offsets in the fixed expansion order:
// down, up, right, left. Search tie-breaks and traversal backtracking
// depend on this order, so it must not change.
var Directions = [4]Point{
	{Row: 1, Col: 0},  // down
	{Row: -1, Col: 0}, // up
	{Row: 0, Col: 1},  // right
	{Row: 0, Col: -1}, // left
}

// Cell is a read-only snapshot of a single grid cell.
type Cell struct {
	Point
	Passable bool
}
