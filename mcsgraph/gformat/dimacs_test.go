package gformat_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/mcsx/mcsgraph/gformat"
	"github.com/stretchr/testify/require"
)

func TestReadDIMACSTriangle(t *testing.T) {
	const src = "p edge 3 3\ne 1 2\ne 2 3\ne 1 3\n"
	g, err := gformat.ReadGraph(strings.NewReader(src), gformat.FormatDIMACS, gformat.ReadOptions{})
	require.NoError(t, err)
	require.Equal(t, 3, g.N())
	require.True(t, g.HasEdge(0, 1))
	require.True(t, g.HasEdge(1, 2))
	require.True(t, g.HasEdge(0, 2))
}

func TestReadDIMACSVertexLabels(t *testing.T) {
	const src = "p edge 2 1\nn 1 7\nn 2 9\ne 1 2\n"
	g, err := gformat.ReadGraph(strings.NewReader(src), gformat.FormatDIMACS, gformat.ReadOptions{VertexLabelled: true})
	require.NoError(t, err)
	require.Equal(t, uint32(7), g.Label(0))
	require.Equal(t, uint32(9), g.Label(1))
}

func TestReadDIMACSRejectsEdgeCountMismatch(t *testing.T) {
	const src = "p edge 2 2\ne 1 2\n"
	_, err := gformat.ReadGraph(strings.NewReader(src), gformat.FormatDIMACS, gformat.ReadOptions{})
	require.ErrorIs(t, err, gformat.ErrEdgeCountMismatch)
}

func TestReadDIMACSRejectsMissingHeader(t *testing.T) {
	const src = "e 1 2\n"
	_, err := gformat.ReadGraph(strings.NewReader(src), gformat.FormatDIMACS, gformat.ReadOptions{})
	require.ErrorIs(t, err, gformat.ErrMalformedRecord)
}
