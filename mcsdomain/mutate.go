package mcsdomain

// RemoveVertex removes vertex v from domain d's window in graph axis idx,
// swapping it with the window's last element and shrinking the length by
// one. v is assumed present in that window exactly once.
func RemoveVertex(buf []int, d *MultiDomain, v, axis int) {
	i := 0
	for buf[d.Start[axis]+i] != v {
		i++
	}
	last := d.Start[axis] + d.Len[axis] - 1
	buf[d.Start[axis]+i], buf[last] = buf[last], buf[d.Start[axis]+i]
	d.Len[axis]--
}

// RemoveDomain deletes domains[idx] by swapping in the last domain and
// truncating, avoiding an O(n) shift. Order among the remaining domains is
// otherwise unspecified, matching mcsp.cc's remove_bidomain.
func RemoveDomain(domains []MultiDomain, idx int) []MultiDomain {
	last := len(domains) - 1
	domains[idx] = domains[last]

	return domains[:last]
}

// IndexOfNextSmallest returns the index within buf[start:start+length] of
// the smallest value strictly greater than w. It assumes the window holds
// no duplicates, mirroring
// mcsp.cc's index_of_next_smallest (used by the odometer enumeration over
// partner-graph domains). Returns -1 if no such value is present.
func IndexOfNextSmallest(buf []int, start, length, w int) int {
	idx := -1
	smallest := int(^uint(0) >> 1)
	for i := 0; i < length; i++ {
		v := buf[start+i]
		if v > w && v < smallest {
			smallest = v
			idx = i
		}
	}

	return idx
}
