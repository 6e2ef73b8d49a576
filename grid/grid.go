// Package grid provides a fixed-size 2D grid of passable and blocked cells
// with a start and a goal endpoint. It supports:
//
//   - Four-connected neighbor lookup in a fixed order (down, up, right, left)
//   - Wall editing that never touches the endpoints
//   - Row-major indexing for per-cell arrays kept by search runs
//   - Connected region analysis of passable cells
//
// A Grid owns no search state; search runs keep their own per-cell data.
package grid

import "fmt"

// Grid is a rectangular field of cells. Dimensions are fixed once built;
// walls and endpoints may be edited between search runs.
// walls is stored row-major: walls[Row*Cols+Col].
type Grid struct {
	Rows, Cols int
	walls      []bool
	start      Point
	goal       Point
}

// New constructs an empty Rows×Cols grid with no walls, start at (0,0)
// and goal at (rows-1, cols-1).
// Returns ErrEmptyGrid if either dimension is not positive.
// Complexity: O(rows×cols) time and memory.
func New(rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrEmptyGrid
	}
	return &Grid{
		Rows:  rows,
		Cols:  cols,
		walls: make([]bool, rows*cols),
		start: Point{},
		goal:  Point{Row: rows - 1, Col: cols - 1},
	}, nil
}

// From2D constructs a grid from a non-empty, rectangular wall mask where
// walls[r][c] == true blocks cell (r,c). The mask is copied.
// Endpoint defaults match New; a wall under an endpoint is cleared.
// Returns ErrEmptyGrid or ErrNonRectangular for malformed input.
func From2D(walls [][]bool) (*Grid, error) {
	if len(walls) == 0 || len(walls[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows, cols := len(walls), len(walls[0])
	for _, row := range walls {
		if len(row) != cols {
			return nil, ErrNonRectangular
		}
	}
	g, err := New(rows, cols)
	if err != nil {
		return nil, err
	}
	for r, row := range walls {
		copy(g.walls[r*cols:(r+1)*cols], row)
	}
	g.walls[g.index(g.start)] = false
	g.walls[g.index(g.goal)] = false

	return g, nil
}

// InBounds reports whether p lies inside the grid.
func (g *Grid) InBounds(p Point) bool {
	return p.Row >= 0 && p.Row < g.Rows && p.Col >= 0 && p.Col < g.Cols
}

// Passable reports whether p is inside the grid and not a wall.
func (g *Grid) Passable(p Point) bool {
	return g.InBounds(p) && !g.walls[g.index(p)]
}

// CellAt returns a snapshot of the cell at p, or ErrOutOfBounds.
func (g *Grid) CellAt(p Point) (Cell, error) {
	if !g.InBounds(p) {
		return Cell{}, fmt.Errorf("%w: %v in %dx%d grid", ErrOutOfBounds, p, g.Rows, g.Cols)
	}
	return Cell{Point: p, Passable: !g.walls[g.index(p)]}, nil
}

// Neighbors returns the in-bounds, passable orthogonal neighbors of p in
// Directions order. p itself is not required to be passable.
// Complexity: O(1).
func (g *Grid) Neighbors(p Point) []Point {
	out := make([]Point, 0, len(Directions))
	for _, d := range Directions {
		q := p.Add(d)
		if g.Passable(q) {
			out = append(out, q)
		}
	}
	return out
}

// SetWall marks p as blocked (wall=true) or passable (wall=false).
// Editing the start or goal cell is silently ignored.
func (g *Grid) SetWall(p Point, wall bool) error {
	if !g.InBounds(p) {
		return fmt.Errorf("%w: %v", ErrOutOfBounds, p)
	}
	if p == g.start || p == g.goal {
		return nil
	}
	g.walls[g.index(p)] = wall
	return nil
}

// ClearWalls removes every wall, keeping the endpoints in place.
func (g *Grid) ClearWalls() {
	for i := range g.walls {
		g.walls[i] = false
	}
}

// Start returns the start endpoint.
func (g *Grid) Start() Point { return g.start }

// Goal returns the goal endpoint.
func (g *Grid) Goal() Point { return g.goal }

// SetStart moves the start endpoint to p, clearing any wall there.
// Start may coincide with the goal.
func (g *Grid) SetStart(p Point) error {
	if !g.InBounds(p) {
		return fmt.Errorf("%w: start %v", ErrOutOfBounds, p)
	}
	g.start = p
	g.walls[g.index(p)] = false
	return nil
}

// SetGoal moves the goal endpoint to p, clearing any wall there.
func (g *Grid) SetGoal(p Point) error {
	if !g.InBounds(p) {
		return fmt.Errorf("%w: goal %v", ErrOutOfBounds, p)
	}
	g.goal = p
	g.walls[g.index(p)] = false
	return nil
}

// Len returns the number of cells, Rows×Cols.
func (g *Grid) Len() int { return g.Rows * g.Cols }

// Index maps p to its row-major index Row*Cols + Col.
// The caller is responsible for p being in bounds.
func (g *Grid) Index(p Point) int { return g.index(p) }

// Coordinate converts a row-major index back to a Point.
func (g *Grid) Coordinate(i int) Point {
	return Point{Row: i / g.Cols, Col: i % g.Cols}
}

func (g *Grid) index(p Point) int {
	return p.Row*g.Cols + p.Col
}
