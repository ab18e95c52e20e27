package mcsgraph

import "errors"

// Sentinel errors for the mcsgraph package. All algorithms return these
// directly (never wrapped) so that callers can compare with errors.Is;
// context is added only by the caller, never baked in here.
var (
	// ErrNegativeSize indicates a negative vertex count was requested.
	ErrNegativeSize = errors.New("mcsgraph: negative vertex count")

	// ErrIndexOutOfRange indicates a vertex index outside [0, n).
	ErrIndexOutOfRange = errors.New("mcsgraph: vertex index out of range")

	// ErrGraphFrozen indicates a mutation was attempted after Freeze.
	ErrGraphFrozen = errors.New("mcsgraph: graph is frozen")

	// ErrLabelOutOfRange indicates a label does not fit the packed encoding
	// (labels and edge labels must leave room for the +1 offset and, for
	// vertex labels, the self-loop flag bit).
	ErrLabelOutOfRange = errors.New("mcsgraph: label out of range")

	// ErrSizeMismatch indicates an operation (e.g. RemapIndex) was given
	// an index outside the permutation it translates through.
	ErrSizeMismatch = errors.New("mcsgraph: size mismatch")
)
