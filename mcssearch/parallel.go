package mcssearch

import (
	"sync/atomic"

	"github.com/katalvlaran/mcsx/mcsdomain"
	"github.com/katalvlaran/mcsx/mcspool"
)

// SolveParallel is the position-tracking counterpart of SolveSequential.
// At depth <= mcspool.SplitLevels it publishes the branch work to e.Pool
// so other goroutines can help; below that depth it falls through to the
// plain sequential kernel, exactly like mcsp.cc switches from sorted_solve
// to sorted_solve_nopar once a node is past split_levels.
//
// The branching granularity mirrors the original's shared atomic
// dispenser, but rather than replaying its single-pass cursor-sharing
// loop, this kernel first enumerates every candidate for the domain's
// second graph axis (the branch granularity the original parallelises
// at), then lets a shared dispenser hand those candidates out to whichever
// goroutine asks next — same work-stealing behaviour, easier to verify
// correct without hand-walking shared mutable cursors (see DESIGN.md).
func (e *Engine) SolveParallel(position mcspool.Position, depth int, current []mcsdomain.VertexTuple, domains []mcsdomain.MultiDomain, vv [][]int, goal int, nodes *uint64) {
	st := nodeState{current: current, domains: domains, vv: vv}
	bdIdx, ok := e.prologue(st, goal, nodes)
	if !ok {
		return
	}

	if e.Pool == nil || depth > mcspool.SplitLevels {
		e.branchAndRecurse(nil, depth, st, bdIdx, goal, nodes)

		return
	}

	e.branchAndRecurse(&position, depth, st, bdIdx, goal, nodes)
}

// branchAndRecurse fixes the pivot vertex for the selected domain, then
// either walks every completion sequentially (position == nil) or splits
// the second-axis candidates across the helper pool (position != nil).
func (e *Engine) branchAndRecurse(position *mcspool.Position, depth int, st nodeState, bdIdx, goal int, nodes *uint64) {
	bd := &st.domains[bdIdx]
	order := e.axisOrder()

	pivot := make([]int, e.K)
	for i := range pivot {
		pivot[i] = -1
	}
	solveFirstGraph(st.vv, order, bd, pivot, e.K)

	if position == nil || e.K < 2 {
		e.walkSequentially(depth, st, bdIdx, order, pivot, goal, nodes)
		st.domains = e.restoreOrRemove(st.domains, bd, bdIdx, order)
		e.step(st, goal, nodes)

		return
	}

	var branches []func(nodes *uint64)
	w := -1
	for solveOtherGraphs(st.vv, order[1], bd, &w) {
		// w now sits in bd's reserved slot, excluded from the axis
		// order[1] window: snapshot current/domains/vv right here, while
		// that exclusion holds, so w's subtree never sees itself back in
		// its own domain. Cloning after the loop instead would only
		// reflect the last candidate's exclusion.
		w1 := w
		current := append([]mcsdomain.VertexTuple(nil), st.current...)
		domains := append([]mcsdomain.MultiDomain(nil), st.domains...)
		vv := make([][]int, len(st.vv))
		for i, buf := range st.vv {
			vv[i] = append([]int(nil), buf...)
		}
		branches = append(branches, func(nodes *uint64) {
			e.exploreCandidate(depth, current, domains, vv, bdIdx, order, pivot, w1, goal, nodes)
		})
	}

	var dispenser atomic.Int64
	drain := func(nodes *uint64) {
		for {
			idx := dispenser.Add(1) - 1
			if idx >= int64(len(branches)) {
				return
			}
			if e.Abort.Triggered() {
				return
			}
			branches[idx](nodes)
		}
	}

	e.Pool.GetHelpWith(*position, drain, drain, nodes)

	st.domains = e.restoreOrRemove(st.domains, bd, bdIdx, order)
	e.recurseChild(depth+1, *position, st, goal, nodes, true)
}

// walkSequentially explores every completion of the selected domain on
// the calling goroutine alone (used once depth exceeds the split-levels
// window, or when K < 2 makes a second-axis split meaningless).
func (e *Engine) walkSequentially(depth int, st nodeState, bdIdx int, order, pivot []int, goal int, nodes *uint64) {
	bd := &st.domains[bdIdx]
	soluzione := append([]int(nil), pivot...)

	for i := 1; i > 0; {
		if solveOtherGraphs(st.vv, order[i], bd, &soluzione[order[i]]) {
			i++
			if i == e.K {
				st.current = append(st.current, tupleFrom(soluzione, e.K))
				newDomains := mcsdomain.FilterDomains(e.K, st.domains, st.vv, e.adjacencyRows(soluzione), e.Multiway)
				if e.Abort.Triggered() {
					return
				}
				e.step(nodeState{current: st.current, domains: newDomains, vv: st.vv}, goal, nodes)
				st.current = st.current[:len(st.current)-1]
				i--
			}
		} else {
			soluzione[order[i]] = -1
			i--
		}
	}
}

// exploreCandidate runs one second-axis candidate's whole completion
// subtree against current/domains/vv, an independent clone taken by the
// caller at the moment w1 was excluded from bd's axis order[1] window, so
// it can run concurrently with sibling candidates claimed by other
// goroutines without any of them re-admitting each other's pivot choice.
func (e *Engine) exploreCandidate(depth int, current []mcsdomain.VertexTuple, domains []mcsdomain.MultiDomain, vv [][]int, bdIdx int, order, pivot []int, w1 int, goal int, nodes *uint64) {
	bd := &domains[bdIdx]
	soluzione := append([]int(nil), pivot...)
	soluzione[order[1]] = w1

	for i := 2; i > 1; {
		if i == e.K {
			current = append(current, tupleFrom(soluzione, e.K))
			newDomains := mcsdomain.FilterDomains(e.K, domains, vv, e.adjacencyRows(soluzione), e.Multiway)
			if e.Abort.Triggered() {
				return
			}
			e.step(nodeState{current: current, domains: newDomains, vv: vv}, goal, nodes)
			current = current[:len(current)-1]
			i--

			continue
		}
		if solveOtherGraphs(vv, order[i], bd, &soluzione[order[i]]) {
			i++
		} else {
			soluzione[order[i]] = -1
			i--
		}
	}
}

// restoreOrRemove undoes solveFirstGraph's speculative len decrement on
// every axis but the pivot's once every completion of the domain has been
// explored: either the pivot axis is now empty (remove the domain) or
// every other axis's window is restored to its pre-pivot size. Returns
// the (possibly shrunk) domain list.
func (e *Engine) restoreOrRemove(domains []mcsdomain.MultiDomain, bd *mcsdomain.MultiDomain, bdIdx int, order []int) []mcsdomain.MultiDomain {
	if bd.Len[order[0]] == 0 {
		return mcsdomain.RemoveDomain(domains, bdIdx)
	}
	for i := 1; i < e.K; i++ {
		bd.Len[order[i]]++
	}

	return domains
}

// recurseChild continues the search one level deeper with the domain
// "skip" branch (this bidomain contributed nothing further). When
// parallel is true the next node still tracks position, switching to
// sequential once it falls past the split-levels window.
func (e *Engine) recurseChild(depth int, position mcspool.Position, st nodeState, goal int, nodes *uint64, parallel bool) {
	if !parallel || depth > mcspool.SplitLevels {
		e.step(st, goal, nodes)

		return
	}

	position.Add(uint32(depth), nextBranchIndex())
	e.SolveParallel(position, depth, st.current, st.domains, st.vv, goal, nodes)
}

var branchIndexCounter atomic.Uint32

// nextBranchIndex hands out a fresh branch-index value for Position.Add,
// standing in for mcsp.cc's process-wide global_position counter.
func nextBranchIndex() uint32 {
	return branchIndexCounter.Add(1)
}
