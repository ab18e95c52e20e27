package mcsdomain

// MaxArgs bounds the number of graphs a single search can span. It is a
// compile-time cap so VertexTuple and MultiDomain can be plain fixed-width
// arrays instead of heap-allocated slices on the hottest path in the
// program, mirroring original_source/mcsp.cc's MAX_ARGS.
const MaxArgs = 10

// VertexTuple holds one vertex index per graph in a K-way partial mapping.
// Only the first K entries (K = the search's graph count) are meaningful;
// the rest stay zero and are never read.
type VertexTuple [MaxArgs]int

// MultiDomain is a K-way candidate window: for each graph i, the vertices
// currently eligible to extend the mapping are vv[i][Start[i] : Start[i]+Len[i]]
// in that graph's shared index buffer. IsAdjacent records whether this
// domain was split off as the neighbours of some already-matched tuple
// (children of the non-adjacent half inherit their parent's flag), which
// is what the "connected" search mode uses to restrict branching to
// domains reachable from the current partial solution.
type MultiDomain struct {
	Start [MaxArgs]int
	Len   [MaxArgs]int

	IsAdjacent bool
}

// Empty reports whether every graph's window in d is empty.
func (d MultiDomain) Empty(k int) bool {
	for i := 0; i < k; i++ {
		if d.Len[i] > 0 {
			return false
		}
	}

	return true
}
