package mcs

import (
	"context"
	"sort"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/mcsx/mcsdomain"
	"github.com/katalvlaran/mcsx/mcsgraph"
	"github.com/katalvlaran/mcsx/mcspool"
	"github.com/katalvlaran/mcsx/mcssearch"
)

// Solution is the best common induced mapping Solve found, with vertex
// indices in each input graph's original numbering (the degree-sort
// pre-pass is undone before this is returned).
type Solution struct {
	Size    int
	Mapping []mcsdomain.VertexTuple
}

// Solve runs the §4.7 driver over graphs: builds the shared-label initial
// multi-domains, pre-sorts each graph by descending degree, runs the
// sequential or parallel search kernel under opts, and remaps the winning
// mapping back to the caller's original vertex numbering. It always
// returns the best mapping found, even under a timeout (Stats.TimedOut is
// set in that case, never an error).
func Solve(ctx context.Context, graphs []*mcsgraph.Graph, opts Options) (Solution, Stats, error) {
	start := time.Now()
	k := len(graphs)
	if k < 2 {
		return Solution{}, Stats{}, errors.Wrapf(ErrTooFewGraphs, "got %d graphs", k)
	}
	if k > mcsdomain.MaxArgs {
		return Solution{}, Stats{}, errors.Wrapf(ErrTooManyGraphs, "got %d graphs, max %d", k, mcsdomain.MaxArgs)
	}

	sortedGraphs := make([]*mcsgraph.Graph, k)
	perms := make([][]int, k)
	for i, g := range graphs {
		sortedGraphs[i], perms[i] = mcsgraph.DegreeSort(g)
	}

	domains, vv, err := buildInitialState(sortedGraphs)
	if err != nil {
		return Solution{}, Stats{}, errors.Wrap(err, "mcs: building initial multi-domains")
	}

	multiway := false
	for _, g := range sortedGraphs {
		if g.Directed() || g.EdgeLabelled() {
			multiway = true

			break
		}
	}

	abort := mcssearch.NewAbort()
	if opts.timeout > 0 {
		cancel := abort.WatchDeadline(ctx, opts.timeout)
		defer cancel()
	}

	var pool *mcspool.HelperPool
	if opts.threads > 1 {
		pool = mcspool.NewHelperPool(opts.threads - 1)
		defer pool.Shutdown()
	}

	engine := &mcssearch.Engine{
		Graphs:    sortedGraphs,
		K:         k,
		Heuristic: opts.heuristic,
		Connected: opts.connected,
		BigFirst:  opts.bigFirst,
		Multiway:  multiway,
		AxisOrder: opts.axisPermutation,
		Logger:    opts.logger,
		Incumbent: &mcssearch.AtomicIncumbent{},
		Store:     &mcssearch.IncumbentStore{},
		Abort:     abort,
		Pool:      pool,
	}

	stats := Stats{}
	n0 := sortedGraphs[0].N()
	goals := []int{1}
	if opts.bigFirst {
		goals = make([]int, 0, n0)
		for g := n0; g >= 1; g-- {
			goals = append(goals, g)
		}
	}

	for _, goal := range goals {
		if abort.Triggered() {
			break
		}
		stats.GoalsTried = append(stats.GoalsTried, goal)

		roundDomains, roundVV := cloneState(domains, vv)
		var nodes uint64
		if pool != nil {
			engine.SolveParallel(mcspool.Position{}, 0, nil, roundDomains, roundVV, goal, &nodes)
		} else {
			engine.SolveSequential(nil, roundDomains, roundVV, goal, &nodes)
		}
		stats.Nodes += nodes

		if int(engine.Incumbent.Get()) >= goal {
			break
		}
	}

	if pool != nil {
		stats.PerWorker = pool.Shutdown()
		for _, w := range stats.PerWorker {
			stats.Nodes += w.Nodes
		}
	}
	stats.TimedOut = abort.Triggered() && opts.timeout > 0
	stats.Elapsed = time.Since(start)

	best := engine.Store.Best()
	remapped := make([]mcsdomain.VertexTuple, len(best))
	for i, tup := range best {
		var out mcsdomain.VertexTuple
		for axis := 0; axis < k; axis++ {
			v, rerr := mcsgraph.RemapIndex(perms[axis], tup[axis])
			if rerr != nil {
				return Solution{}, stats, errors.Wrap(rerr, "mcs: remapping solution index")
			}
			out[axis] = v
		}
		remapped[i] = out
	}

	if err := ValidateSolution(graphs, remapped); err != nil {
		return Solution{}, stats, errors.Wrap(err, "mcs: post-hoc validation")
	}

	return Solution{Size: len(remapped), Mapping: remapped}, stats, nil
}

// buildInitialState groups each graph's vertices by their raw label word
// (spec §4.7 step 1-2): one multi-domain per label shared by every graph,
// IsAdjacent false, its vertices packed contiguously into each graph's
// slot of vv.
func buildInitialState(graphs []*mcsgraph.Graph) ([]mcsdomain.MultiDomain, [][]int, error) {
	k := len(graphs)
	byLabel := make([]map[uint32][]int, k)
	for i, g := range graphs {
		m := make(map[uint32][]int)
		for v := 0; v < g.N(); v++ {
			lbl := g.Label(v)
			m[lbl] = append(m[lbl], v)
		}
		byLabel[i] = m
	}

	common := make([]uint32, 0)
	for lbl := range byLabel[0] {
		sharedByAll := true
		for i := 1; i < k; i++ {
			if _, ok := byLabel[i][lbl]; !ok {
				sharedByAll = false

				break
			}
		}
		if sharedByAll {
			common = append(common, lbl)
		}
	}
	sort.Slice(common, func(a, b int) bool { return common[a] < common[b] })

	vv := make([][]int, k)
	domains := make([]mcsdomain.MultiDomain, 0, len(common))
	for _, lbl := range common {
		var bd mcsdomain.MultiDomain
		for i := 0; i < k; i++ {
			group := byLabel[i][lbl]
			bd.Start[i] = len(vv[i])
			bd.Len[i] = len(group)
			vv[i] = append(vv[i], group...)
		}
		domains = append(domains, bd)
	}

	return domains, vv, nil
}

func cloneState(domains []mcsdomain.MultiDomain, vv [][]int) ([]mcsdomain.MultiDomain, [][]int) {
	d := append([]mcsdomain.MultiDomain(nil), domains...)
	v := make([][]int, len(vv))
	for i, buf := range vv {
		v[i] = append([]int(nil), buf...)
	}

	return d, v
}

