package vector

import (
	"iter"
	"math"
)

// zeroTol is the tolerance below which a cell value is treated as zero.
// Sparse vectors never store entries within this tolerance of zero.
const zeroTol = 1e-12

// DType identifies the cell type of a vector.
//
// Cells are stored as float64 regardless of DType; k-mer counts are far
// below 2^53, so integer arithmetic stays exact. The tag controls
// truncation on writes and is preserved through serialization.
type DType uint8

const (
	// Int marks integer-valued cells (raw counts).
	Int DType = iota
	// Float marks floating-point cells (frequencies, ratios).
	Float
)

// String returns the stable name of the DType used in portable forms.
func (dt DType) String() string {
	if dt == Int {
		return "int"
	}
	return "float"
}

// dtypeByName is the inverse of DType.String.
func dtypeByName(name string) (DType, bool) {
	switch name {
	case "int":
		return Int, true
	case "float":
		return Float, true
	default:
		return 0, false
	}
}

// Vector is a fixed-length container of numeric cells indexed from 0.
//
// The two implementations, *Sparse and *Dense, are interchangeable; the
// unexported methods keep the set of implementations closed to this
// package so their equivalence can be guaranteed.
type Vector interface {
	// Len returns the vector length, fixed at construction.
	Len() int

	// DType returns the cell type tag.
	DType() DType

	// Name returns the free-form provenance name, possibly empty.
	Name() string

	// Source returns the free-form provenance source, possibly empty.
	Source() string

	// Get returns the cell at index i. Absent sparse entries read as zero.
	Get(i int) (float64, error)

	// Set writes the cell at index i. On a sparse vector a near-zero
	// write removes the entry. Int vectors truncate toward zero.
	Set(i int, v float64) error

	// Sum returns the total of all cells.
	Sum() float64

	// NonZero yields (index, value) pairs for all non-zero cells in
	// ascending index order. The sequence is finite and restartable.
	NonZero() iter.Seq2[int, float64]

	// Entropy returns the Shannon entropy in bits of the cells
	// normalized by Sum(). An all-zero vector has entropy 0. The result
	// is clamped to be non-negative against floating round-off.
	Entropy() float64

	// Clone returns a deep copy in the same representation.
	Clone() Vector

	// Dense returns the content as a new dense vector.
	Dense() *Dense

	// Sparse returns the content as a new sparse vector.
	Sparse() *Sparse

	// Add returns a new vector holding the elementwise sum. The result
	// uses the receiver's representation. Fails when lengths differ.
	Add(other Vector) (Vector, error)

	// Sub returns a new vector holding the elementwise difference.
	// Negative cells are permitted.
	Sub(other Vector) (Vector, error)

	// Div returns a new Float vector holding the elementwise quotient.
	// Cells whose divisor is zero are zero in the result.
	Div(other Vector) (Vector, error)

	// AddScalar returns a new vector with s added to every non-zero cell.
	AddScalar(s float64) Vector

	// SubScalar returns a new vector with s subtracted from every
	// non-zero cell.
	SubScalar(s float64) Vector

	// DivScalar returns a new Float vector with every non-zero cell
	// divided by s. Division by zero yields an all-zero vector.
	DivScalar(s float64) Vector

	// AddAssign adds other into the receiver in place.
	AddAssign(other Vector) error

	// SubAssign subtracts other from the receiver in place.
	SubAssign(other Vector) error

	// DivAssign divides the receiver by other in place; the receiver's
	// dtype becomes Float.
	DivAssign(other Vector) error

	// AddScalarAssign adds s to every non-zero cell in place.
	AddScalarAssign(s float64)

	// SubScalarAssign subtracts s from every non-zero cell in place.
	SubScalarAssign(s float64)

	// DivScalarAssign divides every non-zero cell by s in place; the
	// receiver's dtype becomes Float.
	DivScalarAssign(s float64)

	// Portable returns the language-neutral serializable form.
	Portable() Portable

	// at reads index i without bounds checking.
	at(i int) float64

	// setAt writes index i without bounds checking or truncation,
	// pruning near-zero sparse entries.
	setAt(i int, v float64)
}

// header carries the attributes shared by both representations.
type header struct {
	length int
	dtype  DType
	name   string
	source string
}

func (h *header) Len() int       { return h.length }
func (h *header) DType() DType   { return h.dtype }
func (h *header) Name() string   { return h.name }
func (h *header) Source() string { return h.source }

// Option configures optional vector attributes at construction.
type Option func(*header)

// WithName sets the provenance name.
func WithName(name string) Option {
	return func(h *header) {
		h.name = name
	}
}

// WithSource sets the provenance source.
func WithSource(source string) Option {
	return func(h *header) {
		h.source = source
	}
}

// isZero reports whether v is within tolerance of zero.
func isZero(v float64) bool {
	return math.Abs(v) <= zeroTol
}

// truncate applies the dtype's write conversion.
func truncate(dt DType, v float64) float64 {
	if dt == Int {
		return math.Trunc(v)
	}
	return v
}

// entropyOf computes the normalized Shannon entropy of v in bits.
func entropyOf(v Vector) float64 {
	total := v.Sum()
	if total == 0 {
		return 0
	}
	var h float64
	for _, val := range v.NonZero() {
		p := val / total
		h -= p * math.Log2(p)
	}
	if h < 0 {
		// -0.0 or round-off below zero
		return 0
	}
	return h
}

// Equal reports whether a and b have the same length, dtype and cell
// content within tolerance. Provenance strings are ignored.
func Equal(a, b Vector) bool {
	if a.Len() != b.Len() || a.DType() != b.DType() {
		return false
	}
	for i, v := range a.NonZero() {
		if !isZero(v - b.at(i)) {
			return false
		}
	}
	for i, v := range b.NonZero() {
		if !isZero(v - a.at(i)) {
			return false
		}
	}
	return true
}
