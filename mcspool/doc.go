// Package mcspool provides the work-helper pool the parallel search kernel
// uses to hand branches down to idle goroutines. A HelperPool publishes a
// task at a Position in the search tree; any worker can pick it up and run
// it alongside the publisher, both cooperating through the task's own
// shared state (see mcssearch's branch-index dispenser). This mirrors
// original_source/mcsp.cc's HelpMe: a mutex-guarded task map plus a
// condition variable, keyed by the search position so the ordering of
// concurrently live tasks stays deterministic for diagnostics.
package mcspool
