package kmervec

import (
	"github.com/diverseq/kmervec/alphabet"
	"github.com/diverseq/kmervec/kmer"
	"github.com/diverseq/kmervec/record"
	"github.com/diverseq/kmervec/vector"
)

// The facade propagates subpackage failures unchanged. The aliases below
// let callers match every class of failure against this package alone.

// Sentinel errors.
var (
	// ErrInvalidK is returned when k is not positive.
	ErrInvalidK = kmer.ErrInvalidK

	// ErrInvalidNumStates is returned for unusable alphabet sizes.
	ErrInvalidNumStates = kmer.ErrInvalidNumStates

	// ErrEmptyName is returned when a record has no sequence name.
	ErrEmptyName = record.ErrEmptyName

	// ErrInvalidLength is returned for non-positive sequence lengths.
	ErrInvalidLength = record.ErrInvalidLength
)

// Typed errors carrying context; match with errors.As.
type (
	// ErrCapacityExceeded reports numStates^k outside the 64-bit range.
	ErrCapacityExceeded = kmer.ErrCapacityExceeded

	// ErrShapeMismatch reports a vector length mismatch.
	ErrShapeMismatch = vector.ErrShapeMismatch

	// ErrKTooLarge reports k exceeding the sequence length.
	ErrKTooLarge = record.ErrKTooLarge

	// ErrInvalidAlphabet reports a malformed canonical symbol set.
	ErrInvalidAlphabet = alphabet.ErrInvalidAlphabet
)
