package mcs

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/mcsx/mcsgraph"
)

// Roundtrip builds the induced subgraphs on solution's selected vertices
// (one per graph, via mcsgraph.InducedSubgraph) and re-runs Solve on them,
// returning the re-solved Solution. §8's round-trip property holds when
// the returned size equals len(solution.Mapping).
func Roundtrip(ctx context.Context, graphs []*mcsgraph.Graph, solution Solution, opts Options) (Solution, Stats, error) {
	k := len(graphs)
	induced := make([]*mcsgraph.Graph, k)
	for axis := 0; axis < k; axis++ {
		vv := make([]int, len(solution.Mapping))
		for i, tup := range solution.Mapping {
			vv[i] = tup[axis]
		}
		sub, err := mcsgraph.InducedSubgraph(graphs[axis], vv)
		if err != nil {
			return Solution{}, Stats{}, errors.Wrapf(err, "mcs: building induced subgraph for axis %d", axis)
		}
		sub.Freeze()
		induced[axis] = sub
	}

	return Solve(ctx, induced, opts)
}
