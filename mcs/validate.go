package mcs

import (
	"github.com/katalvlaran/mcsx/mcsdomain"
	"github.com/katalvlaran/mcsx/mcsgraph"
)

// ValidateSolution re-checks a returned mapping against the §8 invariants
// (label consistency, edge consistency, injectivity), grounded on
// original_source/mcsp.cc's check_sol. It is run by Solve before returning
// success, and is exported so callers embedding this engine elsewhere keep
// the same safety net.
func ValidateSolution(graphs []*mcsgraph.Graph, mapping []mcsdomain.VertexTuple) error {
	k := len(graphs)

	seen := make([]map[int]bool, k)
	for i := range seen {
		seen[i] = make(map[int]bool, len(mapping))
	}

	for _, tup := range mapping {
		for axis := 0; axis < k; axis++ {
			v := tup[axis]
			if v < 0 || v >= graphs[axis].N() {
				return ErrInvariantViolation
			}
			if seen[axis][v] {
				return ErrInvariantViolation
			}
			seen[axis][v] = true
		}
		for axis := 1; axis < k; axis++ {
			if graphs[0].Label(tup[0]) != graphs[axis].Label(tup[axis]) {
				return ErrInvariantViolation
			}
		}
	}

	multiway := false
	for _, g := range graphs {
		if g.Directed() || g.EdgeLabelled() {
			multiway = true

			break
		}
	}

	for i := range mapping {
		for j := range mapping {
			if i == j {
				continue
			}
			ref := graphs[0].AdjWord(mapping[i][0], mapping[j][0])
			for axis := 1; axis < k; axis++ {
				word := graphs[axis].AdjWord(mapping[i][axis], mapping[j][axis])
				if (ref == 0) != (word == 0) {
					return ErrInvariantViolation
				}
				if multiway && ref != word {
					return ErrInvariantViolation
				}
			}
		}
	}

	return nil
}
