package gformat

import (
	"io"

	"github.com/katalvlaran/mcsx/mcsgraph"
)

// Format identifies one of the recognised on-disk graph encodings by its
// single-byte selector, matching original_source/graph.cc's readGraph
// dispatch switch.
type Format byte

const (
	FormatDIMACS  Format = 'D'
	FormatLAD     Format = 'L'
	FormatBinary  Format = 'B'
	FormatBinaryE Format = 'E'
	FormatIOI     Format = 'I'
)

// ReadOptions mirrors the per-invocation flags passed into readGraph: the
// flags are orthogonal to the wire format and decide how much of what was
// parsed is actually recorded into the resulting Graph.
type ReadOptions struct {
	// Directed, if true, builds a directed Graph (see mcsgraph.WithDirected).
	Directed bool

	// EdgeLabelled, if true, preserves parsed edge labels; otherwise every
	// edge is recorded with the default class 0 (original's "val=1" path).
	EdgeLabelled bool

	// VertexLabelled, if true, preserves parsed vertex labels; otherwise
	// every vertex keeps label 0 (self-loop flag still applies either way).
	VertexLabelled bool
}

func (o ReadOptions) graphOptions() []mcsgraph.GraphOption {
	var opts []mcsgraph.GraphOption
	if o.Directed {
		opts = append(opts, mcsgraph.WithDirected())
	}
	if o.EdgeLabelled {
		opts = append(opts, mcsgraph.WithEdgeLabelled())
	}
	if o.VertexLabelled {
		opts = append(opts, mcsgraph.WithVertexLabelled())
	}

	return opts
}

// ReadGraph parses r according to format and opts, producing a fresh,
// unfrozen mcsgraph.Graph. The caller is responsible for calling Freeze
// once all graphs for a search have been built.
//
// Complexity: O(n² + m) for text/binary formats (NewGraph allocates the
// n×n matrix, then each record is O(1)); LAD and DIMACS additionally
// pay O(n+m) scanning overhead for whitespace tokenisation.
func ReadGraph(r io.Reader, format Format, opts ReadOptions) (*mcsgraph.Graph, error) {
	switch format {
	case FormatDIMACS:
		return readDIMACS(r, opts)
	case FormatLAD:
		return readLAD(r, opts)
	case FormatBinary, FormatBinaryE:
		return readBinary(r, opts)
	case FormatIOI:
		return readIOI(r, opts)
	default:
		return nil, ErrUnknownFormat
	}
}
