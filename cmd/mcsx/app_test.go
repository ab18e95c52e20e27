package main

import (
	"testing"

	"github.com/katalvlaran/mcsx/mcsdomain"
	"github.com/stretchr/testify/require"
)

func TestParseHeuristicAcceptsAllFour(t *testing.T) {
	cases := map[string]mcsdomain.Heuristic{
		"min_max":     mcsdomain.HeuristicMinMax,
		"min_min":     mcsdomain.HeuristicMinMin,
		"min_sum":     mcsdomain.HeuristicMinSum,
		"min_product": mcsdomain.HeuristicMinProduct,
		"MIN_MAX":     mcsdomain.HeuristicMinMax,
	}
	for in, want := range cases {
		got, err := parseHeuristic(in)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
}

func TestParseHeuristicRejectsUnknown(t *testing.T) {
	_, err := parseHeuristic("nonsense")
	require.Error(t, err)
}

func TestFormatTuplesEmptyMapping(t *testing.T) {
	require.Equal(t, "()", formatTuples(nil, 2))
}

func TestFormatTuplesJoinsAxesAscending(t *testing.T) {
	mapping := []mcsdomain.VertexTuple{{0, 5}, {1, 3}}
	require.Equal(t, "(0 -> 5) (1 -> 3)", formatTuples(mapping, 2))
}

func TestNewAppHasExpectedFlags(t *testing.T) {
	app := newApp()
	names := make(map[string]bool)
	for _, f := range app.Flags {
		for _, n := range f.Names() {
			names[n] = true
		}
	}
	for _, want := range []string{"heuristic", "connected", "directed", "labelled", "vertex-labelled", "big-first", "verbose", "quiet", "timeout", "threads", "format"} {
		require.True(t, names[want], "missing flag %q", want)
	}
}
