package mcssearch

import (
	"sync"
	"sync/atomic"

	"github.com/katalvlaran/mcsx/mcsdomain"
)

// AtomicIncumbent tracks the best solution size found so far as a single
// lock-free word, exactly as mcsp.cc's AtomicIncumbent: every search node
// compares its bound against this value without ever blocking, and only
// a strictly larger size is ever accepted.
type AtomicIncumbent struct {
	value atomic.Uint32
}

// Get returns the current incumbent size. Complexity: O(1).
func (a *AtomicIncumbent) Get() uint32 {
	return a.value.Load()
}

// Update attempts to raise the incumbent to v, retrying the compare-and-
// swap against concurrent updates from other goroutines. Returns true iff
// v became the new incumbent.
func (a *AtomicIncumbent) Update(v uint32) bool {
	for {
		cur := a.value.Load()
		if v <= cur {
			return false
		}
		if a.value.CompareAndSwap(cur, v) {
			return true
		}
	}
}

// IncumbentStore holds the best mapping found so far, copied out whenever
// a goroutine's partial solution beats it. mcsp.cc keeps one such copy per
// OS thread (PerThreadIncumbents) purely to avoid lock contention on a
// value that changes rarely; a single mutex-guarded copy serves the same
// purpose here without the thread-identity bookkeeping a goroutine pool
// has no stable equivalent for (see DESIGN.md).
type IncumbentStore struct {
	mu   sync.Mutex
	best []mcsdomain.VertexTuple
}

// Consider replaces the stored best with current if current is longer,
// reporting whether it did so. The stored slice is an independent copy;
// callers may keep mutating current afterwards.
func (s *IncumbentStore) Consider(current []mcsdomain.VertexTuple) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(current) <= len(s.best) {
		return false
	}
	s.best = append(s.best[:0:0], current...)

	return true
}

// Best returns a copy of the best mapping found so far.
func (s *IncumbentStore) Best() []mcsdomain.VertexTuple {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]mcsdomain.VertexTuple(nil), s.best...)
}
