package gformat

import "errors"

// Sentinel errors for graph-file parsing. Input errors (spec §7) surface
// one of these, undecorated; the driver/CLI layer wraps them with
// cockroachdb/errors for a stack-annotated fatal diagnostic before exit.
var (
	// ErrUnknownFormat indicates an unrecognised format byte.
	ErrUnknownFormat = errors.New("gformat: unknown graph format")

	// ErrMalformedHeader indicates a header line could not be parsed
	// (e.g. DIMACS "p edge n m", LAD vertex count, IOI "n m").
	ErrMalformedHeader = errors.New("gformat: malformed header")

	// ErrMalformedRecord indicates a data record (an edge, a label, a
	// neighbour list entry) could not be parsed.
	ErrMalformedRecord = errors.New("gformat: malformed record")

	// ErrEdgeCountMismatch indicates the DIMACS declared edge count did
	// not match the number of "e" lines actually read.
	ErrEdgeCountMismatch = errors.New("gformat: edge count mismatch")

	// ErrTruncatedInput indicates the stream ended before all declared
	// records were read (LAD/binary/IOI all declare counts up front).
	ErrTruncatedInput = errors.New("gformat: truncated input")

	// ErrVertexIndexOutOfRange indicates a parsed vertex index is outside
	// [0, n) (after any 1-based-to-0-based adjustment).
	ErrVertexIndexOutOfRange = errors.New("gformat: vertex index out of range")
)
