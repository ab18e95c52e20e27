package mcs_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/mcsx/mcs"
	"github.com/katalvlaran/mcsx/mcsgraph"
	"github.com/stretchr/testify/require"
)

func mustGraph(t *testing.T, n int, edges [][2]int, opts ...mcsgraph.GraphOption) *mcsgraph.Graph {
	t.Helper()
	g, err := mcsgraph.NewGraph(n, opts...)
	require.NoError(t, err)
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}
	g.Freeze()

	return g
}

func triangle(t *testing.T) *mcsgraph.Graph {
	return mustGraph(t, 3, [][2]int{{0, 1}, {1, 2}, {0, 2}})
}

func k4(t *testing.T) *mcsgraph.Graph {
	return mustGraph(t, 4, [][2]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}})
}

func path(t *testing.T, n int) *mcsgraph.Graph {
	edges := make([][2]int, 0, n-1)
	for i := 0; i < n-1; i++ {
		edges = append(edges, [2]int{i, i + 1})
	}

	return mustGraph(t, n, edges)
}

func cycle(t *testing.T, n int) *mcsgraph.Graph {
	edges := make([][2]int, 0, n)
	for i := 0; i < n; i++ {
		edges = append(edges, [2]int{i, (i + 1) % n})
	}

	return mustGraph(t, n, edges)
}

func TestSolveTwoIdenticalTriangles(t *testing.T) {
	sol, stats, err := mcs.Solve(context.Background(), []*mcsgraph.Graph{triangle(t), triangle(t)}, mcs.Options{})
	require.NoError(t, err)
	require.Equal(t, 3, sol.Size)
	require.Greater(t, stats.Nodes, uint64(0))
}

func TestSolveK4VsK3(t *testing.T) {
	sol, _, err := mcs.Solve(context.Background(), []*mcsgraph.Graph{k4(t), triangle(t)}, mcs.Options{})
	require.NoError(t, err)
	require.Equal(t, 3, sol.Size)
}

func TestSolvePath4VsPath3(t *testing.T) {
	sol, _, err := mcs.Solve(context.Background(), []*mcsgraph.Graph{path(t, 4), path(t, 3)}, mcs.Options{})
	require.NoError(t, err)
	require.Equal(t, 3, sol.Size)
}

func TestSolveDisjointPairVsSingleEdge(t *testing.T) {
	disjoint := mustGraph(t, 4, [][2]int{{0, 1}, {2, 3}})
	edge := mustGraph(t, 2, [][2]int{{0, 1}})
	sol, _, err := mcs.Solve(context.Background(), []*mcsgraph.Graph{disjoint, edge}, mcs.Options{})
	require.NoError(t, err)
	require.Equal(t, 2, sol.Size)
}

func TestSolveLabelledMismatchYieldsEmptyMapping(t *testing.T) {
	ga, err := mcsgraph.NewGraph(3, mcsgraph.WithVertexLabelled())
	require.NoError(t, err)
	require.NoError(t, ga.AddEdge(0, 1))
	require.NoError(t, ga.AddEdge(1, 2))
	require.NoError(t, ga.AddEdge(0, 2))
	for v := 0; v < 3; v++ {
		require.NoError(t, ga.SetLabel(v, 1))
	}
	ga.Freeze()

	gb, err := mcsgraph.NewGraph(3, mcsgraph.WithVertexLabelled())
	require.NoError(t, err)
	require.NoError(t, gb.AddEdge(0, 1))
	require.NoError(t, gb.AddEdge(1, 2))
	require.NoError(t, gb.AddEdge(0, 2))
	for v := 0; v < 3; v++ {
		require.NoError(t, gb.SetLabel(v, 2))
	}
	gb.Freeze()

	sol, _, err := mcs.Solve(context.Background(), []*mcsgraph.Graph{ga, gb}, mcs.Options{})
	require.NoError(t, err)
	require.Equal(t, 0, sol.Size)
}

func TestSolveThreeWayFourCycles(t *testing.T) {
	gs := []*mcsgraph.Graph{cycle(t, 4), cycle(t, 4), cycle(t, 4)}
	sol, _, err := mcs.Solve(context.Background(), gs, mcs.Options{})
	require.NoError(t, err)
	require.Equal(t, 4, sol.Size)
}

func TestSolveBigFirstMatchesDefaultCardinality(t *testing.T) {
	opts, err := mcs.NewOptions(2, mcs.WithBigFirst(true))
	require.NoError(t, err)

	sol, _, err := mcs.Solve(context.Background(), []*mcsgraph.Graph{k4(t), triangle(t)}, opts)
	require.NoError(t, err)
	require.Equal(t, 3, sol.Size)
}

func TestSolveParallelMatchesSequentialCardinality(t *testing.T) {
	opts, err := mcs.NewOptions(2, mcs.WithThreads(4))
	require.NoError(t, err)

	sol, _, err := mcs.Solve(context.Background(), []*mcsgraph.Graph{k4(t), triangle(t)}, opts)
	require.NoError(t, err)
	require.Equal(t, 3, sol.Size)
}

func TestRoundtripPreservesCardinality(t *testing.T) {
	gs := []*mcsgraph.Graph{k4(t), triangle(t)}
	sol, _, err := mcs.Solve(context.Background(), gs, mcs.Options{})
	require.NoError(t, err)

	again, _, err := mcs.Roundtrip(context.Background(), gs, sol, mcs.Options{})
	require.NoError(t, err)
	require.Equal(t, sol.Size, again.Size)
}

func TestNewOptionsRejectsBadAxisPermutation(t *testing.T) {
	_, err := mcs.NewOptions(2, mcs.WithAxisPermutation([]int{0, 0}))
	require.ErrorIs(t, err, mcs.ErrAxisPermutationSize)
}

func TestNewOptionsRejectsNegativeThreads(t *testing.T) {
	_, err := mcs.NewOptions(2, mcs.WithThreads(-1))
	require.ErrorIs(t, err, mcs.ErrInvalidThreads)
}

func TestSolveRejectsTooFewGraphs(t *testing.T) {
	_, _, err := mcs.Solve(context.Background(), []*mcsgraph.Graph{triangle(t)}, mcs.Options{})
	require.ErrorIs(t, err, mcs.ErrTooFewGraphs)
}
