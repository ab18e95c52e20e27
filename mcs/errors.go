package mcs

import "errors"

// Sentinel errors for the mcs package, wrapped with stack context by
// callers (mcs itself, cmd/mcsx) via github.com/cockroachdb/errors before
// they reach a terminal diagnostic.
var (
	// ErrTooFewGraphs indicates fewer than two graphs were supplied; a
	// common subgraph search needs at least two graphs to compare.
	ErrTooFewGraphs = errors.New("mcs: at least two graphs are required")

	// ErrTooManyGraphs indicates more graphs were supplied than
	// mcsdomain.MaxArgs supports.
	ErrTooManyGraphs = errors.New("mcs: graph count exceeds mcsdomain.MaxArgs")

	// ErrInvalidThreads indicates a negative thread count was requested.
	ErrInvalidThreads = errors.New("mcs: thread count must be >= 0")

	// ErrInvalidTimeout indicates a negative timeout was requested.
	ErrInvalidTimeout = errors.New("mcs: timeout must be >= 0")

	// ErrAxisPermutationSize indicates a caller-supplied axis permutation
	// does not have exactly K entries or is not a permutation of 0..K-1.
	ErrAxisPermutationSize = errors.New("mcs: axis permutation must be a permutation of 0..K-1")

	// ErrInvariantViolation indicates ValidateSolution rejected the
	// mapping the search kernel returned: a search bug, not a user error.
	ErrInvariantViolation = errors.New("mcs: returned mapping failed post-hoc validation")
)
