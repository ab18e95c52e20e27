// Package mcssearch implements the branch-and-bound search kernel: the
// sequential depth-first walk over mcsdomain.MultiDomain windows, its
// parallel counterpart that publishes shallow branches to an
// mcspool.HelperPool, and the shared incumbent/abort state both flavours
// read and update. The kernel itself is grounded on
// original_source/mcsp.cc's sorted_solve_nopar/sorted_solve pair; this
// package drops the compile-time SORTED/OSCILLATING branch-order variants
// the original carries and explores a domain's graph axes in a fixed
// order: 0..K-1 unless Engine.AxisOrder supplies another (see DESIGN.md).
package mcssearch
