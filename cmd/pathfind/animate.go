package main

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/gridsearch/grid"
	"github.com/katalvlaran/gridsearch/search"
)

var (
	styleOpen     = tcell.StyleDefault
	styleWall     = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleStart    = tcell.StyleDefault.Foreground(tcell.ColorPurple).Bold(true)
	styleGoal     = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleFrontier = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleVisited  = tcell.StyleDefault.Foreground(tcell.ColorRed)
	stylePath     = tcell.StyleDefault.Foreground(tcell.ColorBlue).Bold(true)
)

// animate runs one search on an initialized screen, one Step per delay tick
// or, with delay <= 0, as fast as the loop turns. q, Esc or Ctrl-C stops
// stepping; once the search is finished the same keys close the screen. A run
// stopped early returns context.Canceled. Stepping pauses after maxSteps
// expansions when maxSteps > 0. An OnEvent hook in opts still sees every
// event after the screen is painted.
func animate(screen tcell.Screen, g *grid.Grid, st search.Strategy, delay time.Duration, maxSteps int, opts ...search.Option) (search.Result, error) {
	o := search.DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	paint := painter(screen, g)
	hook := func(e search.Event) {
		paint(e)
		o.OnEvent(e)
	}

	screen.Clear()
	drawGrid(screen, g)
	r, err := search.New(g, st, append(opts, search.WithOnEvent(hook))...)
	if err != nil {
		return search.Result{}, err
	}
	status(screen, g.Rows+1, r)
	screen.Show()

	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	tick, stopTick := pacer(delay)
	defer stopTick()

	steps := 0
	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
					(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
					if r.Done() {
						return r.Result(), nil
					}
					return r.Result(), context.Canceled
				}
			case *tcell.EventResize:
				screen.Sync()
			}

		case <-tick:
			steps++
			if _, err := r.Step(); err != nil {
				return r.Result(), err
			}
			if r.Done() || (maxSteps > 0 && steps >= maxSteps) {
				tick = nil // wait for a key
			}
			status(screen, g.Rows+1, r)
			screen.Show()
		}
	}
}

// pacer returns the step clock and its stop func. Without a positive delay
// the clock is a closed channel, always ready.
func pacer(delay time.Duration) (<-chan time.Time, func()) {
	if delay <= 0 {
		c := make(chan time.Time)
		close(c)
		return c, func() {}
	}
	t := time.NewTicker(delay)
	return t.C, t.Stop
}

// painter returns a search.WithOnEvent hook that recolors cells as events
// arrive. Endpoints keep their own rune.
func painter(screen tcell.Screen, g *grid.Grid) func(search.Event) {
	paint := func(p grid.Point, ch rune, style tcell.Style) {
		if p == g.Start() || p == g.Goal() {
			return
		}
		screen.SetContent(p.Col, p.Row, ch, nil, style)
	}
	return func(e search.Event) {
		switch e.Kind {
		case search.CellFrontierAdded:
			paint(e.Cell, runeFrontier, styleFrontier)
		case search.CellExpanded:
			paint(e.Cell, runeVisited, styleVisited)
		case search.SearchFinished:
			for _, p := range e.Result.Path {
				paint(p, runePath, stylePath)
			}
		}
	}
}

func drawGrid(screen tcell.Screen, g *grid.Grid) {
	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Cols; col++ {
			p := grid.Point{Row: row, Col: col}
			ch := g.Rune(p)
			style := styleOpen
			switch ch {
			case grid.RuneWall:
				style = styleWall
			case grid.RuneStart:
				style = styleStart
			case grid.RuneGoal:
				style = styleGoal
			}
			screen.SetContent(col, row, ch, nil, style)
		}
	}
}

func status(screen tcell.Screen, row int, r *search.Run) {
	res := r.Result()
	line := fmt.Sprintf("%-14v %-9v expanded=%-6d", r.Strategy(), res.Outcome, res.Expanded)
	if res.Outcome == search.Found {
		line += fmt.Sprintf(" steps=%d", res.Steps())
	}
	line += "  [q] quit"
	for i, ch := range line {
		screen.SetContent(i, row, ch, nil, tcell.StyleDefault)
	}
}
