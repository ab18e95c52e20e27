package mcssearch

import (
	"context"
	"sync/atomic"
	"time"
)

// Abort is a cooperative, whole-search cancellation flag: once Trigger (or
// the deadline timer) fires, every goroutine in the search checks it on
// its next node and unwinds. It replaces mcsp.cc's
// abort_due_to_timeout/condition_variable pair with a single atomic bool
// and a context-driven timer goroutine.
type Abort struct {
	flag atomic.Bool
}

// NewAbort returns an Abort that is not yet triggered.
func NewAbort() *Abort {
	return &Abort{}
}

// Triggered reports whether the search should stop. Complexity: O(1),
// called on the hot path once per search node.
func (a *Abort) Triggered() bool {
	return a.flag.Load()
}

// Trigger marks the search as aborted. Safe to call more than once and
// from more than one goroutine.
func (a *Abort) Trigger() {
	a.flag.Store(true)
}

// WatchDeadline triggers a after timeout elapses, unless ctx is done
// first (the search finished on its own). It returns a cancel function
// the caller must invoke once the search completes, so the timer
// goroutine does not outlive it.
func (a *Abort) WatchDeadline(ctx context.Context, timeout time.Duration) context.CancelFunc {
	if timeout <= 0 {
		return func() {}
	}

	timerCtx, cancel := context.WithTimeout(ctx, timeout)
	go func() {
		<-timerCtx.Done()
		if timerCtx.Err() == context.DeadlineExceeded {
			a.Trigger()
		}
	}()

	return cancel
}
