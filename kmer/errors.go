package kmer

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidK is returned when k is not positive.
	ErrInvalidK = errors.New("kmer: k must be positive")

	// ErrInvalidNumStates is returned when the alphabet size is outside
	// [1, 127]. Symbol indices are signed bytes with negative sentinels.
	ErrInvalidNumStates = errors.New("kmer: number of states must be between 1 and 127")
)

// ErrCapacityExceeded indicates that NumStates^K does not fit in the
// 64-bit index range (or, for dense counting, in addressable memory).
type ErrCapacityExceeded struct {
	NumStates int
	K         int
}

func (e *ErrCapacityExceeded) Error() string {
	return fmt.Sprintf("kmer: %d^%d exceeds the representable index range", e.NumStates, e.K)
}

// ErrIndexOutOfRange indicates an index that was not produced by a valid
// encoding for the given alphabet size and k.
type ErrIndexOutOfRange struct {
	Index uint64
	Limit uint64
}

func (e *ErrIndexOutOfRange) Error() string {
	return fmt.Sprintf("kmer: index %d out of range [0, %d)", e.Index, e.Limit)
}
