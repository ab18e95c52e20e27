package gformat_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/mcsx/mcsgraph/gformat"
	"github.com/stretchr/testify/require"
)

func TestReadLADStar(t *testing.T) {
	// hub 0 linked to 1 and 2; LAD records each vertex's out-neighbours.
	const src = "3\n2 1 2\n1 0\n1 0\n"
	g, err := gformat.ReadGraph(strings.NewReader(src), gformat.FormatLAD, gformat.ReadOptions{})
	require.NoError(t, err)
	require.Equal(t, 3, g.N())
	require.True(t, g.HasEdge(0, 1))
	require.True(t, g.HasEdge(0, 2))
	require.False(t, g.HasEdge(1, 2))
}

func TestReadLADRejectsOutOfRangeNeighbour(t *testing.T) {
	const src = "2\n1 5\n0\n"
	_, err := gformat.ReadGraph(strings.NewReader(src), gformat.FormatLAD, gformat.ReadOptions{})
	require.ErrorIs(t, err, gformat.ErrVertexIndexOutOfRange)
}

func TestReadLADRejectsTruncatedInput(t *testing.T) {
	const src = "2\n1\n"
	_, err := gformat.ReadGraph(strings.NewReader(src), gformat.FormatLAD, gformat.ReadOptions{})
	require.ErrorIs(t, err, gformat.ErrTruncatedInput)
}
