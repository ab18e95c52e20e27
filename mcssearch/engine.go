package mcssearch

import (
	"github.com/katalvlaran/mcsx/mcsdomain"
	"github.com/katalvlaran/mcsx/mcsgraph"
	"github.com/katalvlaran/mcsx/mcspool"
	"github.com/op/go-logging"
)

// Engine bundles everything a search call needs that does not change
// between nodes: the frozen input graphs, the branching policy, and the
// shared incumbent/abort state every goroutine reads and updates.
type Engine struct {
	Graphs    []*mcsgraph.Graph
	K         int
	Heuristic mcsdomain.Heuristic
	Connected bool
	BigFirst  bool
	Multiway  bool

	// AxisOrder overrides the order in which a selected domain's graph
	// axes are explored (default, when nil: identity 0..K-1). Callers
	// validate this is a permutation of 0..K-1 before assigning it (see
	// mcs.WithAxisPermutation); the original's compile-time SORTED/
	// OSCILLATING reordering variants are not carried over, but a
	// caller-supplied static order is.
	AxisOrder []int

	Incumbent *AtomicIncumbent
	Store     *IncumbentStore
	Abort     *Abort
	Pool      *mcspool.HelperPool

	// Logger, when non-nil, receives a Debug line on every recursion
	// entry (mirroring mcsp.cc's arguments.verbose -> string_show). The
	// IsEnabledFor guard keeps formatting off the hot path when DEBUG is
	// disabled.
	Logger *logging.Logger
}

func (e *Engine) logEntry(curSize, domainCount int) {
	if e.Logger == nil || !e.Logger.IsEnabledFor(logging.DEBUG) {
		return
	}
	e.Logger.Debugf("current=%d domains=%d", curSize, domainCount)
}

// axisOrder returns the graph-axis order the kernel explores a selected
// domain in: e.AxisOrder if set, otherwise the identity 0..K-1.
func (e *Engine) axisOrder() []int {
	if e.AxisOrder != nil {
		return e.AxisOrder
	}
	order := make([]int, e.K)
	for i := range order {
		order[i] = i
	}

	return order
}

// adjacencyRows builds one AdjacencyRow closure per graph axis, each
// reporting the packed adjacency word from vertex[i] to a candidate in
// that graph. FilterDomains uses these to split a domain after a match.
func (e *Engine) adjacencyRows(vertex []int) []mcsdomain.AdjacencyRow {
	rows := make([]mcsdomain.AdjacencyRow, e.K)
	for i := 0; i < e.K; i++ {
		g, v := e.Graphs[i], vertex[i]
		rows[i] = func(u int) uint32 { return g.AdjWord(v, u) }
	}

	return rows
}

func tupleFrom(soluzione []int, k int) mcsdomain.VertexTuple {
	var t mcsdomain.VertexTuple
	for i := 0; i < k; i++ {
		t[i] = soluzione[i]
	}

	return t
}
