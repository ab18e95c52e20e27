package gformat

import (
	"io"

	"github.com/katalvlaran/mcsx/mcsgraph"
)

// readIOI parses the IOI format: an "n m" header, n vertex labels in
// order, then m "v w" 0-based edge records. Edges carry no label in this
// format, matching original_source/graph.cc's readIOIGraph which always
// calls add_edge with the default class.
func readIOI(r io.Reader, opts ReadOptions) (*mcsgraph.Graph, error) {
	s := wordScanner(r)

	n, ok := nextInt(s)
	if !ok {
		return nil, ErrMalformedHeader
	}
	m, ok := nextInt(s)
	if !ok {
		return nil, ErrMalformedHeader
	}

	g, err := mcsgraph.NewGraph(n, opts.graphOptions()...)
	if err != nil {
		return nil, err
	}

	for v := 0; v < n; v++ {
		lbl, ok := nextInt(s)
		if !ok {
			return nil, ErrTruncatedInput
		}
		if opts.VertexLabelled {
			if err := g.SetLabel(v, uint32(lbl)); err != nil {
				return nil, err
			}
		}
	}

	for i := 0; i < m; i++ {
		v, ok := nextInt(s)
		if !ok {
			return nil, ErrTruncatedInput
		}
		w, ok := nextInt(s)
		if !ok {
			return nil, ErrTruncatedInput
		}
		if v < 0 || v >= n || w < 0 || w >= n {
			return nil, ErrVertexIndexOutOfRange
		}
		if err := g.AddEdge(v, w); err != nil {
			return nil, err
		}
	}

	return g, nil
}
