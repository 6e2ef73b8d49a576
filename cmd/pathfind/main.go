// Command pathfind loads a grid map, runs one or all search strategies over
// it and prints the explored area and route, or animates the search live in
// the terminal.
//
// Usage:
//
//	pathfind [-grid map.txt] [-strategy combined|cost-only|heuristic-only|traversal|all]
//	         [-heuristic euclidean|manhattan] [-max-steps N] [-animate] [-delay 20ms]
//
// Map format: '#' wall, '.' open, 'S' start, 'G' goal, one row per line.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/gridsearch/grid"
	"github.com/katalvlaran/gridsearch/search"
)

// demoMap is used when no -grid file is given.
const demoMap = `
S.........#.........
.######...#...####..
......#...#......#..
..#...#...####...#..
..#...#..........#..
..#...######.....#..
..#..........#####..
..#####......#......
......#..#...#..###.
..##..#..#...#....#.
...#.....#........#G
`

type config struct {
	gridPath  string
	strategy  string
	heuristic string
	maxSteps  int
	animate   bool
	delay     time.Duration
}

func main() {
	log.SetFlags(0)

	var cfg config
	flag.StringVar(&cfg.gridPath, "grid", "", "map file (default: built-in demo map)")
	flag.StringVar(&cfg.strategy, "strategy", "combined", "combined, cost-only, heuristic-only, traversal or all")
	flag.StringVar(&cfg.heuristic, "heuristic", "euclidean", "euclidean or manhattan")
	flag.IntVar(&cfg.maxSteps, "max-steps", 0, "stop after this many expansions (0 = no limit)")
	flag.BoolVar(&cfg.animate, "animate", false, "animate the search in the terminal")
	flag.DurationVar(&cfg.delay, "delay", 20*time.Millisecond, "time between animation steps")
	flag.Parse()

	if err := run(cfg, os.Stdout); err != nil {
		log.Fatalf("[PATHFIND] [FATAL] %v", err)
	}
}

func run(cfg config, out io.Writer) error {
	g, err := loadGrid(cfg.gridPath)
	if err != nil {
		return err
	}
	h, err := parseHeuristic(cfg.heuristic)
	if err != nil {
		return err
	}
	opts := []search.Option{search.WithHeuristic(h), search.WithMaxSteps(cfg.maxSteps)}

	strategies := search.Strategies
	if !strings.EqualFold(cfg.strategy, "all") {
		st, err := search.ParseStrategy(cfg.strategy)
		if err != nil {
			return err
		}
		strategies = []search.Strategy{st}
	}

	log.Printf("[PATHFIND] [INFO] grid %dx%d, start %v, goal %v", g.Rows, g.Cols, g.Start(), g.Goal())
	if !g.Connected(g.Start(), g.Goal()) {
		log.Printf("[PATHFIND] [INFO] start and goal lie in different regions (%d regions)", len(g.Regions()))
	}

	if cfg.animate {
		if len(strategies) != 1 {
			return fmt.Errorf("-animate needs a single strategy, got %q", cfg.strategy)
		}
		res, err := animateTerminal(g, strategies[0], cfg, opts...)
		if err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		report(out, res)
		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	results := make([]search.Result, 0, len(strategies))
	for _, st := range strategies {
		ov := newOverlay(g)
		res, err := search.Solve(ctx, g, st, append(opts, search.WithOnEvent(ov.apply))...)
		switch {
		case errors.Is(err, search.ErrStepBudget):
			log.Printf("[PATHFIND] [WARN] %v: %v", st, err)
		case err != nil:
			return fmt.Errorf("%v: %w", st, err)
		}
		fmt.Fprintf(out, "== %v ==\n%s", st, ov)
		report(out, res)
		results = append(results, res)
	}
	if len(results) > 1 {
		compare(out, results)
	}
	return nil
}

// animateTerminal owns the real terminal screen for the length of one
// animated run, restoring it on every exit path.
func animateTerminal(g *grid.Grid, st search.Strategy, cfg config, opts ...search.Option) (search.Result, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return search.Result{}, err
	}
	if err := screen.Init(); err != nil {
		return search.Result{}, err
	}
	defer screen.Fini()

	return animate(screen, g, st, cfg.delay, cfg.maxSteps, opts...)
}

func loadGrid(path string) (*grid.Grid, error) {
	if path == "" {
		return grid.Parse(strings.NewReader(demoMap))
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	g, err := grid.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

func parseHeuristic(name string) (search.Heuristic, error) {
	switch strings.ToLower(name) {
	case "euclidean", "":
		return search.Euclidean, nil
	case "manhattan":
		return search.Manhattan, nil
	}
	return nil, fmt.Errorf("unknown heuristic %q", name)
}

func report(out io.Writer, res search.Result) {
	switch res.Outcome {
	case search.Found:
		fmt.Fprintf(out, "%v: path found, %d steps, %d cells expanded\n\n", res.Strategy, res.Steps(), res.Expanded)
	case search.Exhausted:
		fmt.Fprintf(out, "%v: no path, %d cells expanded\n\n", res.Strategy, res.Expanded)
	default:
		fmt.Fprintf(out, "%v: stopped after %d cells expanded\n\n", res.Strategy, res.Expanded)
	}
}

func compare(out io.Writer, results []search.Result) {
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "strategy\toutcome\tsteps\texpanded")
	for _, r := range results {
		fmt.Fprintf(tw, "%v\t%v\t%d\t%d\n", r.Strategy, r.Outcome, r.Steps(), r.Expanded)
	}
	tw.Flush()
}
