package vector

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidLength is returned when a vector is constructed with a
	// non-positive length.
	ErrInvalidLength = errors.New("vector: length must be positive")

	// ErrUnknownDType is returned when a portable form names a cell type
	// this package does not recognize.
	ErrUnknownDType = errors.New("vector: unknown dtype")
)

// ErrShapeMismatch indicates a length mismatch between two vectors in a
// binary operation, or a dense initializer whose length does not match the
// declared vector length.
type ErrShapeMismatch struct {
	Expected int
	Actual   int
}

func (e *ErrShapeMismatch) Error() string {
	return fmt.Sprintf("vector: shape mismatch: expected length %d, got %d", e.Expected, e.Actual)
}

// ErrIndexOutOfRange indicates an access outside [0, Length).
type ErrIndexOutOfRange struct {
	Index  int
	Length int
}

func (e *ErrIndexOutOfRange) Error() string {
	return fmt.Sprintf("vector: index %d out of range [0, %d)", e.Index, e.Length)
}
