package mcsdomain

import "sort"

// AdjacencyRow reports, for a fixed pivot vertex, the packed adjacency word
// toward candidate vertex u. A nonzero word means an edge exists; in the
// multiway case the word's value also orders same-labelled neighbours so
// the sweep below can group vertices by identical label.
type AdjacencyRow func(u int) uint32

// Partition reorders buf[start:start+length] in place so that every vertex
// adjacent to the pivot (row(v) != 0) sits before every vertex that is not,
// and returns the count of adjacent vertices. This is the binary split
// mcsp.cc's partition performs per graph before any multiway label sweep.
func Partition(buf []int, start, length int, row AdjacencyRow) int {
	i := 0
	for j := 0; j < length; j++ {
		if row(buf[start+j]) != 0 {
			buf[start+i], buf[start+j] = buf[start+j], buf[start+i]
			i++
		}
	}

	return i
}

// checkGreater reports whether every entry of greater strictly exceeds the
// matching entry of lower, over the first k entries.
func checkGreater(k int, lower, greater []int) bool {
	for i := 0; i < k; i++ {
		if greater[i] <= lower[i] {
			return false
		}
	}

	return true
}

// minElem returns the smallest of labels[:k].
func minElem(k int, labels []uint32) uint32 {
	m := labels[0]
	for i := 1; i < k; i++ {
		if labels[i] < m {
			m = labels[i]
		}
	}

	return m
}

// maxElem returns the largest of labels[:k], or -1 (as an int) if every
// entry is equal, mirroring mcsp.cc's max_elem convention: a tie means
// every graph's next neighbour shares the same label, so the whole group
// advances together instead of splitting on it.
func maxElem(k int, labels []uint32) int {
	max := labels[0]
	counter := 1
	for i := 1; i < k; i++ {
		if labels[i] > max {
			max = labels[i]
			counter = 1
		} else if labels[i] == max {
			counter++
		}
	}
	if counter == k {
		return -1
	}

	return int(max)
}

// FilterDomains narrows every domain in d to the vertices consistent with
// having just matched vertex[i] in graph i, producing the child domain
// list for the next search level.
//
// For each old domain it partitions every graph's window into the
// vertices adjacent to vertex[i] and those that are not (Partition). The
// non-adjacent remainder becomes one child domain (same IsAdjacent flag as
// the parent, since adjacency to the newest match is unrelated to it).
// The adjacent remainder becomes a child domain directly when multiway is
// false (plain graphs: any edge is as good as any other). When multiway is
// true (directed and/or edge-labelled graphs), the adjacent remainder must
// additionally agree on edge label across every graph, so it is instead
// swept group-by-group via a sort-and-scan that mirrors mcsp.cc's labelled
// multiway split: vertices are sorted by their packed adjacency word
// within each graph's window, then walked in lockstep, splitting off a new
// domain each time every graph's next group shares a label (maxElem==-1) or
// advancing past the graphs whose group is smaller (maxElem>=0).
//
// Complexity: O(sum of domain lengths * log(domain length)) dominated by
// the multiway sort.
func FilterDomains(k int, d []MultiDomain, vv [][]int, rows []AdjacencyRow, multiway bool) []MultiDomain {
	newD := make([]MultiDomain, 0, len(d))

	for _, oldBD := range d {
		var sets [MaxArgs]int
		for i := 0; i < k; i++ {
			sets[i] = oldBD.Start[i]
		}

		var lenEdge, lenNoEdge [MaxArgs]int
		for i := 0; i < k; i++ {
			lenEdge[i] = Partition(vv[i], sets[i], oldBD.Len[i], rows[i])
			lenNoEdge[i] = oldBD.Len[i] - lenEdge[i]
		}

		noEdgeNonEmpty := true
		for i := 0; i < k; i++ {
			if lenNoEdge[i] == 0 {
				noEdgeNonEmpty = false

				break
			}
		}
		if noEdgeNonEmpty {
			var child MultiDomain
			for i := 0; i < k; i++ {
				child.Start[i] = sets[i] + lenEdge[i]
				child.Len[i] = lenNoEdge[i]
			}
			child.IsAdjacent = oldBD.IsAdjacent
			newD = append(newD, child)
		}

		edgeNonEmpty := true
		for i := 0; i < k; i++ {
			if lenEdge[i] == 0 {
				edgeNonEmpty = false

				break
			}
		}

		switch {
		case multiway && edgeNonEmpty:
			newD = append(newD, sweepMultiway(k, vv, rows, sets, lenEdge)...)
		case edgeNonEmpty:
			var child MultiDomain
			for i := 0; i < k; i++ {
				child.Start[i] = sets[i]
				child.Len[i] = lenEdge[i]
			}
			child.IsAdjacent = true
			newD = append(newD, child)
		}
	}

	return newD
}

// sweepMultiway splits the adjacent windows sets[i]:sets[i]+lenEdge[i] into
// label-homogeneous child domains, one per distinct label value shared
// across every graph.
func sweepMultiway(k int, vv [][]int, rows []AdjacencyRow, sets, lenEdge [MaxArgs]int) []MultiDomain {
	var top [MaxArgs]int
	for i := 0; i < k; i++ {
		start, length := sets[i], lenEdge[i]
		window := vv[i][start : start+length]
		row := rows[i]
		sort.Slice(window, func(a, b int) bool { return row(window[a]) < row(window[b]) })
		top[i] = start + length
	}

	cur := sets
	var out []MultiDomain
	for checkGreater(k, cur[:k], top[:k]) {
		var labels [MaxArgs]uint32
		for i := 0; i < k; i++ {
			labels[i] = rows[i](vv[i][cur[i]])
		}
		maximum := maxElem(k, labels[:k])
		if maximum != -1 {
			for i := 0; i < k; i++ {
				if int(labels[i]) != maximum {
					cur[i]++
				}
			}

			continue
		}

		minSets := cur
		for i := 0; i < k; i++ {
			for {
				cur[i]++
				if cur[i] >= top[i] || rows[i](vv[i][cur[i]]) != labels[0] {
					break
				}
			}
		}

		var child MultiDomain
		for i := 0; i < k; i++ {
			child.Start[i] = minSets[i]
			child.Len[i] = cur[i] - minSets[i]
		}
		child.IsAdjacent = true
		out = append(out, child)
	}

	return out
}
