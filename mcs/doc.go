// Package mcs is the driver: it builds the initial multi-domains from a set
// of frozen graphs, runs the sequential or parallel search kernel (package
// mcssearch) under the configured heuristic and timeout, and remaps the
// result back to the caller's original vertex numbering.
package mcs
