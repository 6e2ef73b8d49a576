package main

import (
	"strings"

	"github.com/katalvlaran/gridsearch/grid"
	"github.com/katalvlaran/gridsearch/search"
)

// Overlay runes layered over the map.
const (
	runeFrontier = 'o'
	runeVisited  = 'x'
	runePath     = '*'
)

// overlay folds a run's event stream into one rune per cell.
type overlay struct {
	g     *grid.Grid
	marks []rune // 0 = no mark
}

func newOverlay(g *grid.Grid) *overlay {
	return &overlay{g: g, marks: make([]rune, g.Len())}
}

// apply is a search.WithOnEvent hook.
func (ov *overlay) apply(e search.Event) {
	switch e.Kind {
	case search.CellFrontierAdded:
		ov.mark(e.Cell, runeFrontier)
	case search.CellExpanded:
		ov.mark(e.Cell, runeVisited)
	case search.SearchFinished:
		for _, p := range e.Result.Path {
			ov.mark(p, runePath)
		}
	}
}

func (ov *overlay) mark(p grid.Point, r rune) {
	ov.marks[ov.g.Index(p)] = r
}

// at returns the rune to draw for p: endpoints and walls win over marks.
func (ov *overlay) at(p grid.Point) rune {
	base := ov.g.Rune(p)
	if base != grid.RuneOpen {
		return base
	}
	if m := ov.marks[ov.g.Index(p)]; m != 0 {
		return m
	}
	return base
}

func (ov *overlay) String() string {
	var sb strings.Builder
	for r := 0; r < ov.g.Rows; r++ {
		for c := 0; c < ov.g.Cols; c++ {
			sb.WriteRune(ov.at(grid.Point{Row: r, Col: c}))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
