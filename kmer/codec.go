package kmer

import (
	"math"
)

// validate checks the shared (numStates, k) preconditions.
func validate(numStates, k int) error {
	if k <= 0 {
		return ErrInvalidK
	}
	if numStates <= 0 || numStates > math.MaxInt8 {
		return ErrInvalidNumStates
	}
	return nil
}

// NumKmers returns numStates^k, the size of the k-mer state space. Fails
// with *ErrCapacityExceeded when the product overflows uint64.
func NumKmers(numStates, k int) (uint64, error) {
	if err := validate(numStates, k); err != nil {
		return 0, err
	}
	base := uint64(numStates)
	n := uint64(1)
	for i := 0; i < k; i++ {
		if n > math.MaxUint64/base {
			return 0, &ErrCapacityExceeded{NumStates: numStates, K: k}
		}
		n *= base
	}
	return n, nil
}

// Coeffs returns the positional weights for converting a k-dimensional
// symbol coordinate into a 1D index: coeffs[i] = numStates^(k-1-i), most
// significant position first.
func Coeffs(numStates, k int) ([]uint64, error) {
	if _, err := NumKmers(numStates, k); err != nil {
		return nil, err
	}
	coeffs := make([]uint64, k)
	c := uint64(1)
	for i := k - 1; i >= 0; i-- {
		coeffs[i] = c
		if i > 0 {
			c *= uint64(numStates)
		}
	}
	return coeffs, nil
}

// Encode converts a window of k symbol indices into its 1D index using the
// weights from Coeffs. Every window value must be in [0, numStates); the
// counting engine guarantees this by pre-filtering, and Encode does not
// re-check.
func Encode(window []int8, coeffs []uint64) uint64 {
	var index uint64
	for i, c := range coeffs {
		index += uint64(window[i]) * c
	}
	return index
}

// Decode converts a 1D index back into its k symbol indices by iterative
// mixed-radix division, most significant position first. Fails with
// *ErrIndexOutOfRange when a decoded digit is >= numStates, which signals
// that index was not produced by a valid encoding.
func Decode(index uint64, numStates, k int) ([]int8, error) {
	coeffs, err := Coeffs(numStates, k)
	if err != nil {
		return nil, err
	}
	window := make([]int8, k)
	rem := index
	for i, c := range coeffs {
		digit := rem / c
		if digit >= uint64(numStates) {
			return nil, &ErrIndexOutOfRange{Index: index, Limit: coeffs[0] * uint64(numStates)}
		}
		window[i] = int8(digit)
		rem %= c
	}
	return window, nil
}

// DecodeToSymbols converts k-mer indices back into literal k-mer strings
// using the ordered canonical states. Used to recover readable k-mers for
// diagnostics.
func DecodeToSymbols(indices []uint64, states []byte, k int) ([]string, error) {
	kmers := make([]string, len(indices))
	buf := make([]byte, k)
	for n, index := range indices {
		window, err := Decode(index, len(states), k)
		if err != nil {
			return nil, err
		}
		for i, digit := range window {
			buf[i] = states[digit]
		}
		kmers[n] = string(buf)
	}
	return kmers, nil
}
