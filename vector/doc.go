// Package vector provides the numeric container used for k-mer counts and
// frequencies: a fixed-length vector with two interchangeable
// representations, a sparse map and a dense slice.
//
// Both representations are observably equivalent: indexing, length,
// non-zero iteration order (ascending index), sum and entropy agree for
// equal content. Producers choose the representation based on expected
// density; consumers program against the Vector interface and can convert
// with Dense()/Sparse() when they need guaranteed O(1) indexed access.
//
// Arithmetic never mutates its operands unless the explicit in-place
// (*Assign) variant is used. Scalar operands apply to non-zero cells only.
// Division by a zero cell yields zero in the result, not NaN or an error.
// Negative cell values are permitted and never clamped.
package vector
