package gformat_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/mcsx/mcsgraph/gformat"
	"github.com/stretchr/testify/require"
)

func TestReadIOIPath(t *testing.T) {
	const src = "3 2\n0 0 0\n0 1\n1 2\n"
	g, err := gformat.ReadGraph(strings.NewReader(src), gformat.FormatIOI, gformat.ReadOptions{})
	require.NoError(t, err)
	require.Equal(t, 3, g.N())
	require.True(t, g.HasEdge(0, 1))
	require.True(t, g.HasEdge(1, 2))
	require.False(t, g.HasEdge(0, 2))
}

func TestReadIOIVertexLabels(t *testing.T) {
	const src = "2 1\n4 5\n0 1\n"
	g, err := gformat.ReadGraph(strings.NewReader(src), gformat.FormatIOI, gformat.ReadOptions{VertexLabelled: true})
	require.NoError(t, err)
	require.Equal(t, uint32(4), g.Label(0))
	require.Equal(t, uint32(5), g.Label(1))
}

func TestReadIOIRejectsOutOfRangeEdge(t *testing.T) {
	const src = "2 1\n0 0\n0 7\n"
	_, err := gformat.ReadGraph(strings.NewReader(src), gformat.FormatIOI, gformat.ReadOptions{})
	require.ErrorIs(t, err, gformat.ErrVertexIndexOutOfRange)
}
