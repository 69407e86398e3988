package kmer

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diverseq/kmervec/vector"
)

// naiveIndices re-scans every window in full, the reference the skip-until
// cursor must agree with.
func naiveIndices(seq []int8, numStates, k int) []uint64 {
	coeffs, err := Coeffs(numStates, k)
	if err != nil {
		panic(err)
	}
	out := []uint64{}
windows:
	for i := 0; i+k <= len(seq); i++ {
		for j := i; j < i+k; j++ {
			if seq[j] < 0 || int(seq[j]) >= numStates {
				continue windows
			}
		}
		out = append(out, Encode(seq[i:i+k], coeffs))
	}
	return out
}

func TestIndices_Clean(t *testing.T) {
	// ACGCG over ACGT
	seq := []int8{0, 1, 2, 1, 2}

	got, err := Indices(seq, 4, 2)
	require.NoError(t, err)
	assert.Equal(t, []uint64{1, 6, 9, 6}, got)
	assert.Len(t, got, len(seq)-2+1)
}

func TestIndices_AmbiguousExcluded(t *testing.T) {
	tests := []struct {
		name string
		seq  []int8
		k    int
		want []uint64
	}{
		{
			name: "sentinel mid-sequence",
			seq:  []int8{0, -1, 2, 1, 2},
			k:    2,
			want: []uint64{9, 6},
		},
		{
			name: "sentinel at start",
			seq:  []int8{-1, 1, 2, 1},
			k:    2,
			want: []uint64{6, 9},
		},
		{
			name: "sentinel at end",
			seq:  []int8{0, 1, 2, -1},
			k:    2,
			want: []uint64{1, 6},
		},
		{
			name: "value at or above numStates is non-canonical",
			seq:  []int8{0, 4, 2, 1, 2},
			k:    2,
			want: []uint64{9, 6},
		},
		{
			name: "window length run of sentinels",
			seq:  []int8{0, -1, -1, -1, 0},
			k:    2,
			want: []uint64{},
		},
		{
			name: "all ambiguous",
			seq:  []int8{-1, -1, -1},
			k:    1,
			want: []uint64{},
		},
		{
			name: "k spans whole sequence",
			seq:  []int8{0, 1, 2, 3},
			k:    4,
			want: []uint64{0x1b},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Indices(tt.seq, 4, tt.k)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, naiveIndices(tt.seq, 4, tt.k), got)
		})
	}
}

func TestIndices_MatchesNaive(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for _, k := range []int{1, 2, 3, 5, 8} {
		seq := make([]int8, 200)
		for i := range seq {
			// ~10% non-canonical positions
			if rng.Intn(10) == 0 {
				seq[i] = -1
			} else {
				seq[i] = int8(rng.Intn(4))
			}
		}
		got, err := Indices(seq, 4, k)
		require.NoError(t, err)
		assert.Equal(t, naiveIndices(seq, 4, k), got, "k=%d", k)
	}
}

func TestIndices_ShortSequence(t *testing.T) {
	got, err := Indices([]int8{0, 1}, 4, 3)
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = Indices(nil, 4, 1)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestIndices_InvalidArguments(t *testing.T) {
	_, err := Indices([]int8{0, 1}, 4, 0)
	assert.ErrorIs(t, err, ErrInvalidK)

	_, err = Indices([]int8{0, 1}, 0, 1)
	assert.ErrorIs(t, err, ErrInvalidNumStates)

	var ce *ErrCapacityExceeded
	_, err = Indices([]int8{0, 1}, 4, 40)
	assert.ErrorAs(t, err, &ce)
}

func TestDenseCounts_ACGT(t *testing.T) {
	// ACGT over ACGT, k=1
	counts, err := DenseCounts([]int8{0, 1, 2, 3}, 4, 1)
	require.NoError(t, err)

	assert.Equal(t, 4, counts.Len())
	assert.Equal(t, []float64{1, 1, 1, 1}, counts.Values())
	assert.Equal(t, 2.0, counts.Entropy())
	assert.Equal(t, vector.Int, counts.DType())
}

func TestDenseCounts_AAAA(t *testing.T) {
	counts, err := DenseCounts([]int8{0, 0, 0, 0}, 4, 1)
	require.NoError(t, err)

	assert.Equal(t, []float64{4, 0, 0, 0}, counts.Values())
	assert.Zero(t, counts.Entropy())
}

func TestCounts_SumIsWindowCount(t *testing.T) {
	seq := []int8{0, 1, 2, 1, 2} // no ambiguity
	for k := 1; k <= len(seq); k++ {
		counts, err := DenseCounts(seq, 4, k)
		require.NoError(t, err)
		assert.Equal(t, float64(len(seq)-k+1), counts.Sum(), "k=%d", k)
	}
}

func TestCounts_ModesAgree(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	seq := make([]int8, 300)
	for i := range seq {
		if rng.Intn(12) == 0 {
			seq[i] = -1
		} else {
			seq[i] = int8(rng.Intn(4))
		}
	}
	for _, k := range []int{1, 2, 4} {
		dense, err := DenseCounts(seq, 4, k)
		require.NoError(t, err)
		sparse, err := SparseCounts(seq, 4, k)
		require.NoError(t, err)

		assert.True(t, vector.Equal(dense.Sparse(), sparse), "k=%d", k)
		assert.Equal(t, dense.Sum(), sparse.Sum())
		assert.Equal(t, dense.Entropy(), sparse.Entropy())
	}
}

func TestSparseCounts_NamesVector(t *testing.T) {
	counts, err := SparseCounts([]int8{0, 1, 2, 3}, 4, 2, vector.WithName("seq1"))
	require.NoError(t, err)
	assert.Equal(t, "seq1", counts.Name())
	assert.Equal(t, 16, counts.Len())
}

func BenchmarkIndices(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	seq := make([]int8, 10_000)
	for i := range seq {
		seq[i] = int8(rng.Intn(4))
	}
	b.ReportAllocs()
	for b.Loop() {
		if _, err := Indices(seq, 4, 8); err != nil {
			b.Fatal(err)
		}
	}
}
