package gformat

import (
	"encoding/binary"
	"io"

	"github.com/katalvlaran/mcsx/mcsgraph"
)

// readWord reads one little-endian 16-bit word, as original_source/graph.cc's
// read_word/custom_read_word (fread of 2 bytes, little-endian assembly).
func readWord(r io.Reader) (uint16, error) {
	var buf [2]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return 0, ErrTruncatedInput
		}

		return 0, err
	}

	return binary.LittleEndian.Uint16(buf[:]), nil
}

// labelCompressionShift computes k1 per the McSplit binary-format label
// compression convention: k1 = ceil(log2(floor(0.33*n))) capped at 16.
// Labels are then read as (word >> (16-k1)).
func labelCompressionShift(n int) int {
	m := n * 33 / 100
	p, k1 := 1, 0
	for p < m && k1 < 16 {
		p *= 2
		k1++
	}

	return k1
}

// readBinary parses the 'B'/'E' little-endian binary format: vertex
// count, per-vertex compressed label, then per-vertex a neighbour count
// followed by that many (target, compressed-label) pairs. Edge labels
// carry the +1 offset described in spec §9 so AddEdge never records 0 as
// a present edge.
func readBinary(r io.Reader, opts ReadOptions) (*mcsgraph.Graph, error) {
	nWord, err := readWord(r)
	if err != nil {
		return nil, err
	}
	n := int(nWord)
	shift := labelCompressionShift(n)

	g, err := mcsgraph.NewGraph(n, opts.graphOptions()...)
	if err != nil {
		return nil, err
	}

	for i := 0; i < n; i++ {
		raw, err := readWord(r)
		if err != nil {
			return nil, err
		}
		label := uint32(raw) >> (16 - shift)
		if opts.VertexLabelled {
			if err := g.SetLabel(i, label); err != nil {
				return nil, err
			}
		}
	}

	for i := 0; i < n; i++ {
		lenWord, err := readWord(r)
		if err != nil {
			return nil, err
		}
		for j := 0; j < int(lenWord); j++ {
			targetWord, err := readWord(r)
			if err != nil {
				return nil, err
			}
			target := int(targetWord)
			if target < 0 || target >= n {
				return nil, ErrVertexIndexOutOfRange
			}
			rawLabel, err := readWord(r)
			if err != nil {
				return nil, err
			}
			label := (uint32(rawLabel) >> (16 - shift)) + 1

			var edgeOpts []mcsgraph.EdgeOption
			if opts.EdgeLabelled {
				if label-1 > mcsgraph.MaxEdgeLabel {
					return nil, ErrMalformedRecord
				}
				edgeOpts = append(edgeOpts, mcsgraph.WithEdgeLabel(label-1))
			}
			if err := g.AddEdge(i, target, edgeOpts...); err != nil {
				return nil, err
			}
		}
	}

	return g, nil
}
