package mcsdomain_test

import (
	"testing"

	"github.com/katalvlaran/mcsx/mcsdomain"
	"github.com/stretchr/testify/require"
)

func twoGraphDomain(len0, len1 int) mcsdomain.MultiDomain {
	var d mcsdomain.MultiDomain
	d.Len[0] = len0
	d.Len[1] = len1

	return d
}

func TestCalcBoundSumsMinPerDomain(t *testing.T) {
	domains := []mcsdomain.MultiDomain{
		twoGraphDomain(3, 5),
		twoGraphDomain(2, 2),
	}
	require.Equal(t, 3+2, mcsdomain.CalcBound(2, domains))
}

func TestSelectMultiDomainPicksSmallestMax(t *testing.T) {
	domains := []mcsdomain.MultiDomain{
		twoGraphDomain(5, 5),
		twoGraphDomain(1, 2),
	}
	buf0 := []int{10, 20, 0, 0, 0, 0}
	best := mcsdomain.SelectMultiDomain(2, domains, buf0, 0, mcsdomain.HeuristicMinMax, false)
	require.Equal(t, 1, best)
}

func TestSelectMultiDomainSkipsNonAdjacentWhenConnected(t *testing.T) {
	d0 := twoGraphDomain(1, 1)
	d0.IsAdjacent = false
	d1 := twoGraphDomain(4, 4)
	d1.IsAdjacent = true
	buf0 := []int{0, 0, 0, 0}
	best := mcsdomain.SelectMultiDomain(2, []mcsdomain.MultiDomain{d0, d1}, buf0, 1, mcsdomain.HeuristicMinMax, true)
	require.Equal(t, 1, best)
}

func TestPartitionSplitsAdjacentFirst(t *testing.T) {
	buf := []int{0, 1, 2, 3}
	adj := map[int]bool{1: true, 3: true}
	row := func(u int) uint32 {
		if adj[u] {
			return 1
		}

		return 0
	}
	n := mcsdomain.Partition(buf, 0, 4, row)
	require.Equal(t, 2, n)
	for i := 0; i < n; i++ {
		require.True(t, adj[buf[i]])
	}
	for i := n; i < 4; i++ {
		require.False(t, adj[buf[i]])
	}
}

func TestRemoveVertexShrinksWindow(t *testing.T) {
	buf := []int{5, 6, 7, 8}
	d := twoGraphDomain(4, 0)
	mcsdomain.RemoveVertex(buf, &d, 6, 0)
	require.Equal(t, 3, d.Len[0])
	require.NotContains(t, buf[:d.Len[0]], 6)
}

func TestIndexOfNextSmallestFindsSuccessor(t *testing.T) {
	buf := []int{9, 2, 7, 4}
	idx := mcsdomain.IndexOfNextSmallest(buf, 0, 4, 4)
	require.Equal(t, 2, idx) // value 7 at index 2 is the smallest value > 4
}

func TestFilterDomainsPlainSplitsAdjacentAndNonAdjacent(t *testing.T) {
	// graph 0 window {0,1,2,3}; vertex 2 is adjacent to {0,1} and not {3}.
	vv := [][]int{{0, 1, 2, 3}, {10, 11, 12, 13}}
	adjSet := map[int]bool{0: true, 1: true}
	rows := []mcsdomain.AdjacencyRow{
		func(u int) uint32 {
			if adjSet[u] {
				return 1
			}

			return 0
		},
		func(u int) uint32 {
			if u == 10 || u == 11 {
				return 1
			}

			return 0
		},
	}
	d := mcsdomain.MultiDomain{}
	d.Len[0] = 4
	d.Len[1] = 4

	out := mcsdomain.FilterDomains(2, []mcsdomain.MultiDomain{d}, vv, rows, false)
	require.Len(t, out, 2)

	var sawAdjacent, sawNonAdjacent bool
	for _, bd := range out {
		if bd.IsAdjacent {
			sawAdjacent = true
			require.Equal(t, 2, bd.Len[0])
		} else {
			sawNonAdjacent = true
			require.Equal(t, 2, bd.Len[0])
		}
	}
	require.True(t, sawAdjacent)
	require.True(t, sawNonAdjacent)
}
