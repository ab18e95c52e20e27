package gformat

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/mcsx/mcsgraph"
)

// readDIMACS parses the DIMACS text format: a "p edge n m" header line
// declares the vertex/edge counts, "e v w" lines (1-based) add edges, and
// "n v lbl" lines assign vertex labels. Lines are otherwise free-form;
// unrecognised leading tokens are ignored, matching
// original_source/graph.cc's readDimacsGraph switch on line[0].
func readDIMACS(r io.Reader, opts ReadOptions) (*mcsgraph.Graph, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)

	var g *mcsgraph.Graph
	var declaredEdges, edgesRead int

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		switch fields[0] {
		case "p":
			n, m, err := parsePHeader(fields)
			if err != nil {
				return nil, err
			}
			declaredEdges = m
			var gerr error
			g, gerr = mcsgraph.NewGraph(n, opts.graphOptions()...)
			if gerr != nil {
				return nil, gerr
			}
		case "e":
			if g == nil || len(fields) != 3 {
				return nil, ErrMalformedRecord
			}
			v, err1 := strconv.Atoi(fields[1])
			w, err2 := strconv.Atoi(fields[2])
			if err1 != nil || err2 != nil {
				return nil, ErrMalformedRecord
			}
			if err := g.AddEdge(v-1, w-1); err != nil {
				return nil, err
			}
			edgesRead++
		case "n":
			if g == nil || len(fields) != 3 {
				return nil, ErrMalformedRecord
			}
			v, err1 := strconv.Atoi(fields[1])
			lbl, err2 := strconv.Atoi(fields[2])
			if err1 != nil || err2 != nil {
				return nil, ErrMalformedRecord
			}
			if opts.VertexLabelled {
				if err := g.SetLabel(v-1, uint32(lbl)); err != nil {
					return nil, err
				}
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if g == nil {
		return nil, ErrMalformedHeader
	}
	if declaredEdges > 0 && edgesRead != declaredEdges {
		return nil, ErrEdgeCountMismatch
	}

	return g, nil
}

func parsePHeader(fields []string) (n, m int, err error) {
	if len(fields) != 4 || fields[1] != "edge" {
		return 0, 0, ErrMalformedHeader
	}
	n, err1 := strconv.Atoi(fields[2])
	m, err2 := strconv.Atoi(fields[3])
	if err1 != nil || err2 != nil {
		return 0, 0, ErrMalformedHeader
	}

	return n, m, nil
}
