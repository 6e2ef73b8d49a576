package grid

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Parse reads a grid in text form, one row per line:
//
//	'#' wall, '.' open, 'S' start, 'G' goal
//
// Blank lines and trailing '\r' are ignored. Missing endpoints keep the
// defaults of New. Returns ErrEmptyGrid, ErrNonRectangular, ErrBadRune or
// ErrDuplicateEndpoint (wrapped with the offending line).
func Parse(r io.Reader) (*Grid, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("grid: reading text: %w", err)
	}
	if len(lines) == 0 {
		return nil, ErrEmptyGrid
	}

	cols := len([]rune(lines[0]))
	g, err := New(len(lines), cols)
	if err != nil {
		return nil, err
	}

	var start, goal *Point
	for row, line := range lines {
		runes := []rune(line)
		if len(runes) != cols {
			return nil, fmt.Errorf("%w: line %d has %d cells, want %d", ErrNonRectangular, row+1, len(runes), cols)
		}
		for col, ch := range runes {
			p := Point{Row: row, Col: col}
			switch ch {
			case RuneOpen:
			case RuneWall:
				g.walls[g.index(p)] = true
			case RuneStart:
				if start != nil {
					return nil, fmt.Errorf("%w: second %q at line %d", ErrDuplicateEndpoint, ch, row+1)
				}
				start = &p
			case RuneGoal:
				if goal != nil {
					return nil, fmt.Errorf("%w: second %q at line %d", ErrDuplicateEndpoint, ch, row+1)
				}
				goal = &p
			default:
				return nil, fmt.Errorf("%w: %q at line %d, column %d", ErrBadRune, ch, row+1, col+1)
			}
		}
	}

	if start != nil {
		g.start = *start
	}
	if goal != nil {
		g.goal = *goal
	}
	g.walls[g.index(g.start)] = false
	g.walls[g.index(g.goal)] = false

	return g, nil
}

// String renders the grid in the format read by Parse. When start and goal
// coincide the cell is written as 'S'.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.Rows * (g.Cols + 1))
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			sb.WriteRune(g.Rune(Point{Row: r, Col: c}))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Rune returns the text rune for the cell at p.
func (g *Grid) Rune(p Point) rune {
	switch {
	case p == g.start:
		return RuneStart
	case p == g.goal:
		return RuneGoal
	case g.walls[g.index(p)]:
		return RuneWall
	default:
		return RuneOpen
	}
}
