package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridsearch/grid"
	"github.com/katalvlaran/gridsearch/search"
)

func writeMap(t *testing.T, text string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "map.txt")
	require.NoError(t, os.WriteFile(path, []byte(text), 0o644))
	return path
}

func TestOverlayCombined(t *testing.T) {
	g, err := grid.Parse(strings.NewReader("S.#\n..#\n..G\n"))
	require.NoError(t, err)

	ov := newOverlay(g)
	_, err = search.Solve(context.Background(), g, search.Combined, search.WithOnEvent(ov.apply))
	require.NoError(t, err)

	assert.Equal(t, "Sx#\n**#\no*G\n", ov.String())
}

func TestRunSingleStrategy(t *testing.T) {
	var out bytes.Buffer
	cfg := config{gridPath: writeMap(t, "S.#\n..#\n..G\n"), strategy: "dijkstra", heuristic: "euclidean"}
	require.NoError(t, run(cfg, &out))

	assert.Contains(t, out.String(), "== cost-only ==")
	assert.Contains(t, out.String(), "cost-only: path found, 4 steps, 6 cells expanded")
	assert.NotContains(t, out.String(), "outcome", "no comparison table for a single strategy")
}

func TestRunAllStrategies(t *testing.T) {
	var out bytes.Buffer
	cfg := config{strategy: "all", heuristic: "manhattan"}
	require.NoError(t, run(cfg, &out))

	for _, st := range search.Strategies {
		assert.Contains(t, out.String(), "== "+st.String()+" ==")
	}
	assert.Contains(t, out.String(), "strategy")
	assert.Contains(t, out.String(), "outcome")
}

func TestRunNoPath(t *testing.T) {
	var out bytes.Buffer
	cfg := config{gridPath: writeMap(t, "S#.\n##.\n..G\n"), strategy: "traversal"}
	require.NoError(t, run(cfg, &out))
	assert.Contains(t, out.String(), "traversal: no path, 1 cells expanded")
}

func TestRunStepBudget(t *testing.T) {
	var out bytes.Buffer
	cfg := config{strategy: "combined", maxSteps: 3}
	require.NoError(t, run(cfg, &out))
	assert.Contains(t, out.String(), "combined: stopped after 3 cells expanded")
}

func TestRunErrors(t *testing.T) {
	var out bytes.Buffer

	err := run(config{strategy: "zigzag"}, &out)
	require.ErrorIs(t, err, search.ErrUnknownStrategy)

	err = run(config{strategy: "combined", heuristic: "chebyshev"}, &out)
	require.Error(t, err)

	err = run(config{gridPath: writeMap(t, "S.?\n..G\n"), strategy: "combined"}, &out)
	require.ErrorIs(t, err, grid.ErrBadRune)

	err = run(config{gridPath: filepath.Join(t.TempDir(), "missing.txt"), strategy: "combined"}, &out)
	require.ErrorIs(t, err, os.ErrNotExist)

	err = run(config{strategy: "all", animate: true}, &out)
	require.Error(t, err)
}
