package mcs

import (
	"time"

	"github.com/katalvlaran/mcsx/mcspool"
)

// Stats reports how a Solve call spent its time, mirroring the node counts
// and per-worker busy times original_source/mcsp.cc prints on exit.
type Stats struct {
	// Nodes is the total number of search-tree nodes visited across every
	// goroutine and every big-first iteration.
	Nodes uint64

	// Elapsed is the whole call's wall-clock duration.
	Elapsed time.Duration

	// TimedOut reports whether the configured timeout fired before the
	// search completed normally; the returned Solution is still the best
	// incumbent found by that point.
	TimedOut bool

	// GoalsTried records, in descending order, every goal size the
	// big-first outer loop attempted. For a non-big-first call this holds
	// exactly one entry: 1.
	GoalsTried []int

	// PerWorker holds each helper-pool worker's lifetime busy time and
	// node count, empty when Options.WithThreads was 0 or 1.
	PerWorker []mcspool.WorkerStats
}
