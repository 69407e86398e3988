package kmer

import (
	"math"

	"github.com/diverseq/kmervec/vector"
)

// Indices returns the 1D encodings of all valid k-length windows of seq,
// in sequence order. seq holds one symbol index per position; any value
// outside [0, numStates) marks a non-canonical position, and every window
// touching one is excluded.
//
// Exclusion uses a skip-until cursor: when a non-canonical symbol enters
// at the trailing edge, all windows starting at or before it are skipped
// without re-scanning, keeping the walk amortized linear.
//
// A sequence shorter than k yields no windows and no error. The result
// length is at most len(seq)-k+1.
func Indices(seq []int8, numStates, k int) ([]uint64, error) {
	coeffs, err := Coeffs(numStates, k)
	if err != nil {
		return nil, err
	}
	n := len(seq) - k + 1
	if n <= 0 {
		return nil, nil
	}
	ns := int8(numStates)

	out := make([]uint64, 0, n)
	skipUntil := 0
	for i := 0; i < k-1; i++ {
		if seq[i] < 0 || seq[i] >= ns {
			skipUntil = i + 1
		}
	}
	for i := 0; i < n; i++ {
		if trail := seq[i+k-1]; trail < 0 || trail >= ns {
			skipUntil = i + k
		}
		if i < skipUntil {
			continue
		}
		var index uint64
		for j, c := range coeffs {
			index += uint64(seq[i+j]) * c
		}
		out = append(out, index)
	}
	return out, nil
}

// stateSpaceLen returns numStates^k as a vector length, rejecting sizes
// beyond the addressable range.
func stateSpaceLen(numStates, k int) (int, error) {
	size, err := NumKmers(numStates, k)
	if err != nil {
		return 0, err
	}
	if size > uint64(math.MaxInt) {
		return 0, &ErrCapacityExceeded{NumStates: numStates, K: k}
	}
	return int(size), nil
}

// DenseCounts counts the k-mers of seq into a dense integer vector of
// length numStates^k. Suited to small k where the full state space is
// affordable.
func DenseCounts(seq []int8, numStates, k int, opts ...vector.Option) (*vector.Dense, error) {
	length, err := stateSpaceLen(numStates, k)
	if err != nil {
		return nil, err
	}
	indices, err := Indices(seq, numStates, k)
	if err != nil {
		return nil, err
	}
	counts := make([]float64, length)
	for _, index := range indices {
		counts[index]++
	}
	return vector.NewDense(length, vector.Int, counts, opts...)
}

// SparseCounts counts the k-mers of seq into a sparse integer vector of
// length numStates^k. Suited to large k where few of the possible k-mers
// occur.
func SparseCounts(seq []int8, numStates, k int, opts ...vector.Option) (*vector.Sparse, error) {
	length, err := stateSpaceLen(numStates, k)
	if err != nil {
		return nil, err
	}
	indices, err := Indices(seq, numStates, k)
	if err != nil {
		return nil, err
	}
	data := make(map[int]float64)
	for _, index := range indices {
		data[int(index)]++
	}
	return vector.NewSparse(length, vector.Int, data, opts...)
}
