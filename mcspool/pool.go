package mcspool

import (
	"sync"
	"time"

	"github.com/emirpasic/gods/trees/redblacktree"
)

// taskEntry is the mutable task record stored at a Position: fn is nil
// once claimed-and-finished by some worker, pending counts workers
// currently executing it (more than one worker can run the same task
// concurrently, exactly like mcsp.cc's helper_function/main_function pair
// cooperating through a shared atomic index).
type taskEntry struct {
	fn      func(nodes *uint64)
	pending int
}

// WorkerStats reports one worker goroutine's lifetime contribution:
// total time spent inside a claimed task, and total search nodes it
// visited while doing so.
type WorkerStats struct {
	Busy  time.Duration
	Nodes uint64
}

// HelperPool is a fixed-size goroutine pool that executes tasks published
// at a Position, alongside (never instead of) whichever goroutine
// published them. It is the Go counterpart of mcsp.cc's HelpMe: a
// mutex-guarded ordered task map plus a condition variable standing in
// for the std::mutex/std::condition_variable pair there.
type HelperPool struct {
	mu       sync.Mutex
	cond     *sync.Cond
	tasks    *redblacktree.Tree
	finished bool
	wg       sync.WaitGroup
	stats    []WorkerStats
}

// NewHelperPool starts n worker goroutines, each looping over published
// tasks until Shutdown is called. n may be 0, in which case GetHelpWith
// degrades to running mainFn alone (no helper ever claims helpFn).
func NewHelperPool(n int) *HelperPool {
	p := &HelperPool{
		tasks: redblacktree.NewWith(PositionComparator),
	}
	p.cond = sync.NewCond(&p.mu)

	for i := 0; i < n; i++ {
		p.wg.Add(1)
		go p.runWorker()
	}

	return p
}

func (p *HelperPool) runWorker() {
	defer p.wg.Done()

	var totalBusy time.Duration
	var totalNodes uint64

	for {
		p.mu.Lock()
		var claimed *taskEntry
		it := p.tasks.Iterator()
		for it.Next() {
			entry := it.Value().(*taskEntry)
			if entry.fn != nil {
				claimed = entry
				claimed.pending++

				break
			}
		}
		if claimed == nil {
			if p.finished {
				p.mu.Unlock()

				break
			}
			p.cond.Wait()
			p.mu.Unlock()

			continue
		}
		p.mu.Unlock()

		fn := claimed.fn
		var workerNodes uint64
		start := time.Now()
		fn(&workerNodes)
		totalBusy += time.Since(start)
		totalNodes += workerNodes

		p.mu.Lock()
		claimed.fn = nil
		claimed.pending--
		if claimed.pending == 0 {
			p.cond.Broadcast()
		}
		p.mu.Unlock()
	}

	p.mu.Lock()
	p.stats = append(p.stats, WorkerStats{Busy: totalBusy, Nodes: totalNodes})
	p.mu.Unlock()
}

// GetHelpWith publishes helpFn at position, runs mainFn on the calling
// goroutine, then blocks until every worker that claimed the task has
// finished it, exactly like mcsp.cc's get_help_with: the publisher always
// does its share of the work itself rather than just waiting on helpers.
func (p *HelperPool) GetHelpWith(position Position, mainFn, helpFn func(nodes *uint64), mainNodes *uint64) {
	entry := &taskEntry{fn: helpFn}

	p.mu.Lock()
	p.tasks.Put(position, entry)
	p.cond.Broadcast()
	p.mu.Unlock()

	mainFn(mainNodes)

	p.mu.Lock()
	for entry.pending != 0 {
		p.cond.Wait()
	}
	p.tasks.Remove(position)
	p.mu.Unlock()
}

// Shutdown stops every worker goroutine and returns each one's lifetime
// stats, in the order they happened to exit (mcsp.cc's HelpMe reports the
// same per-thread work times on kill_workers, just printed rather than
// returned).
func (p *HelperPool) Shutdown() []WorkerStats {
	p.mu.Lock()
	p.finished = true
	p.cond.Broadcast()
	p.mu.Unlock()

	p.wg.Wait()

	p.mu.Lock()
	defer p.mu.Unlock()

	return p.stats
}
