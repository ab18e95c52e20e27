package mcssearch

import "github.com/katalvlaran/mcsx/mcsdomain"

// solveFirstGraph picks the pivot vertex for axis order[0]: the smallest
// remaining vertex in bd's window on that axis. Every other axis has its
// window shrunk by one first, reserving a trailing slot solveOtherGraphs
// uses as swap space while it tries candidates on that axis. Grounded on
// mcsp.cc's solve_first_graph.
func solveFirstGraph(vv [][]int, order []int, bd *mcsdomain.MultiDomain, soluzione []int, k int) {
	pos := order[0]
	for i := 1; i < k; i++ {
		bd.Len[order[i]]--
	}

	v := mcsdomain.FindMinValue(vv[pos], bd.Start[pos], bd.Len[pos])
	mcsdomain.RemoveVertex(vv[pos], bd, v, pos)
	soluzione[pos] = v
}

// solveOtherGraphs advances axis pos to the next candidate vertex greater
// than the previous one tried (w), swapping it into the reserved trailing
// slot solveFirstGraph made room for. Returns false once no candidate
// remains. Grounded on mcsp.cc's solve_other_graphs.
func solveOtherGraphs(vv [][]int, pos int, bd *mcsdomain.MultiDomain, w *int) bool {
	idx := mcsdomain.IndexOfNextSmallest(vv[pos], bd.Start[pos], bd.Len[pos]+1, *w)
	if idx == -1 {
		return false
	}

	*w = vv[pos][bd.Start[pos]+idx]
	vv[pos][bd.Start[pos]+idx] = vv[pos][bd.Start[pos]+bd.Len[pos]]
	vv[pos][bd.Start[pos]+bd.Len[pos]] = *w

	return true
}

// nodeState is the mutable per-call-frame state threaded through one
// invocation of the recursive kernel: the partial mapping, the live
// domain list, and the shared vertex index buffers FilterDomains and the
// pivot helpers above permute in place.
type nodeState struct {
	current []mcsdomain.VertexTuple
	domains []mcsdomain.MultiDomain
	vv      [][]int
}

// SolveSequential runs the depth-first branch-and-bound kernel with no
// task publication: every branch is explored on the calling goroutine.
// goal is the minimum solution size worth finding (the big-first outer
// loop lowers this each round); nodes accumulates the visited-node count.
func (e *Engine) SolveSequential(current []mcsdomain.VertexTuple, domains []mcsdomain.MultiDomain, vv [][]int, goal int, nodes *uint64) {
	e.step(nodeState{current: current, domains: domains, vv: vv}, goal, nodes)
}

// prologue runs the bookkeeping every search node performs on entry,
// regardless of whether it then branches sequentially or in parallel:
// stop at once if the search was aborted, otherwise record the partial
// solution as a candidate incumbent, count the node,
// and check the admissible bound against the current incumbent and the
// matching-size goal. It returns the domain to branch on and false if the
// node should be pruned (aborted, no domain to branch on, or the bound
// fails).
func (e *Engine) prologue(st nodeState, goal int, nodes *uint64) (bdIdx int, ok bool) {
	if e.Abort.Triggered() {
		return 0, false
	}
	e.Store.Consider(st.current)
	e.Incumbent.Update(uint32(len(st.current)))
	e.logEntry(len(st.current), len(st.domains))

	*nodes++

	bound := len(st.current) + mcsdomain.CalcBound(e.K, st.domains)
	incumbent := int(e.Incumbent.Get())
	if bound <= incumbent || bound < goal {
		return 0, false
	}
	if e.BigFirst && incumbent == goal {
		return 0, false
	}

	bdIdx = mcsdomain.SelectMultiDomain(e.K, st.domains, st.vv[0], len(st.current), e.Heuristic, e.Connected)
	if bdIdx == -1 {
		return 0, false
	}

	return bdIdx, true
}

func (e *Engine) step(st nodeState, goal int, nodes *uint64) {
	bdIdx, ok := e.prologue(st, goal, nodes)
	if !ok {
		return
	}
	bd := &st.domains[bdIdx]
	order := e.axisOrder()

	soluzione := make([]int, e.K)
	for i := range soluzione {
		soluzione[i] = -1
	}
	solveFirstGraph(st.vv, order, bd, soluzione, e.K)

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

	if bd.Len[order[0]] == 0 {
		st.domains = mcsdomain.RemoveDomain(st.domains, bdIdx)
	} else {
		for i := 1; i < e.K; i++ {
			bd.Len[order[i]]++
		}
	}

	e.step(nodeState{current: st.current, domains: st.domains, vv: st.vv}, goal, nodes)
}
