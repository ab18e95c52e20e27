// Package mcsdomain implements the multi-domain bookkeeping shared by every
// search kernel: the K-graph candidate windows branching narrows between
// levels, the admissible bound computed over them, the heuristics that pick
// which domain to branch on next, and the partition/sweep that splits a
// domain once a pivot vertex is fixed.
//
// A MultiDomain never owns its vertex buffers; callers pass the per-graph
// index buffers (vv) that mcssearch maintains for the duration of a search,
// and every operation here addresses into those buffers by [start, start+len)
// windows. This mirrors original_source/mcsp.cc's Multidomain/vv split: the
// buffers get permuted in place as vertices are promoted into or filtered
// out of a domain, and only the (start, len) pair changes per branch.
package mcsdomain
