package gformat

import (
	"bufio"
	"io"
	"strconv"

	"github.com/katalvlaran/mcsx/mcsgraph"
)

// wordScanner tokenises a stream on whitespace regardless of line breaks,
// matching the original's fscanf("%d", ...) calls which simply skip
// whitespace (including newlines) between integers.
func wordScanner(r io.Reader) *bufio.Scanner {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), 1<<20)
	s.Split(bufio.ScanWords)

	return s
}

func nextInt(s *bufio.Scanner) (int, bool) {
	if !s.Scan() {
		return 0, false
	}
	v, err := strconv.Atoi(s.Text())
	if err != nil {
		return 0, false
	}

	return v, true
}

// readLAD parses the LAD format: the vertex count, then for each vertex
// (in order) its out-degree followed by that many 0-based neighbour
// indices. LAD carries no vertex or edge labels.
func readLAD(r io.Reader, opts ReadOptions) (*mcsgraph.Graph, error) {
	s := wordScanner(r)

	n, ok := nextInt(s)
	if !ok {
		return nil, ErrMalformedHeader
	}
	g, err := mcsgraph.NewGraph(n, opts.graphOptions()...)
	if err != nil {
		return nil, err
	}

	for v := 0; v < n; v++ {
		degree, ok := nextInt(s)
		if !ok {
			return nil, ErrTruncatedInput
		}
		for j := 0; j < degree; j++ {
			w, ok := nextInt(s)
			if !ok {
				return nil, ErrTruncatedInput
			}
			if w < 0 || w >= n {
				return nil, ErrVertexIndexOutOfRange
			}
			if err := g.AddEdge(v, w); err != nil {
				return nil, err
			}
		}
	}

	return g, nil
}
