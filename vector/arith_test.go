package vector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// both builds the same content in each representation so every arithmetic
// case runs against sparse and dense receivers.
func both(t *testing.T, length int, dtype DType, data map[int]float64) []Vector {
	t.Helper()
	s, err := NewSparse(length, dtype, data)
	require.NoError(t, err)
	return []Vector{s, s.Dense()}
}

func TestAdd_Vector(t *testing.T) {
	for _, dtype := range []DType{Int, Float} {
		for _, v1 := range both(t, 5, dtype, map[int]float64{2: 3, 3: 9}) {
			zero, err := NewSparse(5, dtype, nil)
			require.NoError(t, err)

			sum, err := v1.Add(zero)
			require.NoError(t, err)
			assert.True(t, Equal(v1, sum))

			doubled, err := v1.Add(v1)
			require.NoError(t, err)
			got, err := doubled.Get(2)
			require.NoError(t, err)
			assert.Equal(t, 6.0, got)

			// Operand untouched
			orig, err := v1.Get(2)
			require.NoError(t, err)
			assert.Equal(t, 3.0, orig)
		}
	}
}

func TestAddAssign_Self(t *testing.T) {
	for _, v1 := range both(t, 5, Int, map[int]float64{2: 3, 3: 9}) {
		require.NoError(t, v1.AddAssign(v1))
		got, err := v1.Get(3)
		require.NoError(t, err)
		assert.Equal(t, 18.0, got)
	}
}

func TestAdd_ShapeMismatch(t *testing.T) {
	v1, err := NewSparse(5, Int, nil)
	require.NoError(t, err)
	v2, err := NewDense(4, Int, nil)
	require.NoError(t, err)

	var sm *ErrShapeMismatch
	_, err = v1.Add(v2)
	require.ErrorAs(t, err, &sm)
	assert.Equal(t, 5, sm.Expected)
	assert.Equal(t, 4, sm.Actual)

	_, err = v1.Sub(v2)
	assert.ErrorAs(t, err, &sm)
	_, err = v1.Div(v2)
	assert.ErrorAs(t, err, &sm)
	assert.ErrorAs(t, v1.AddAssign(v2), &sm)
}

func TestSub_Vector(t *testing.T) {
	for _, dtype := range []DType{Int, Float} {
		for _, v1 := range both(t, 5, dtype, map[int]float64{2: 3, 3: 9}) {
			// Subtracting self leaves nothing
			diff, err := v1.Sub(v1)
			require.NoError(t, err)
			var count int
			for range diff.NonZero() {
				count++
			}
			assert.Zero(t, count)

			// Exact cancellation plus a remainder
			v2, err := NewSparse(5, dtype, map[int]float64{2: 3, 3: 10})
			require.NoError(t, err)
			diff, err = v2.Sub(v1)
			require.NoError(t, err)
			got, err := diff.Get(3)
			require.NoError(t, err)
			assert.Equal(t, 1.0, got)
			got, err = diff.Get(2)
			require.NoError(t, err)
			assert.Zero(t, got)
		}
	}
}

func TestSub_NegativeAllowed(t *testing.T) {
	for _, v1 := range both(t, 5, Int, map[int]float64{2: 3, 3: 9}) {
		v2, err := NewSparse(5, Int, map[int]float64{2: 6, 3: 10})
		require.NoError(t, err)

		diff, err := v1.Sub(v2)
		require.NoError(t, err)
		got, err := diff.Get(2)
		require.NoError(t, err)
		assert.Equal(t, -3.0, got)
	}
}

func TestAddThenSub_Roundtrip(t *testing.T) {
	for _, dtype := range []DType{Int, Float} {
		for _, v1 := range both(t, 8, dtype, map[int]float64{0: 2, 5: 7}) {
			v2, err := NewSparse(8, dtype, map[int]float64{0: 1, 3: 4, 5: 2})
			require.NoError(t, err)

			sum, err := v1.Add(v2)
			require.NoError(t, err)
			back, err := sum.Sub(v2)
			require.NoError(t, err)
			assert.True(t, Equal(v1, back))
		}
	}
}

func TestDiv_Vector(t *testing.T) {
	for _, v1 := range both(t, 5, Int, map[int]float64{2: 6, 3: 18}) {
		v2, err := NewSparse(5, Int, map[int]float64{2: 3, 3: 6})
		require.NoError(t, err)

		q, err := v1.Div(v2)
		require.NoError(t, err)
		assert.Equal(t, Float, q.DType())

		got, err := q.Get(2)
		require.NoError(t, err)
		assert.Equal(t, 2.0, got)
		got, err = q.Get(3)
		require.NoError(t, err)
		assert.Equal(t, 3.0, got)
	}
}

func TestDiv_ByZeroCellYieldsZero(t *testing.T) {
	for _, v1 := range both(t, 5, Int, map[int]float64{2: 6, 3: 18}) {
		// Divisor has no value at index 3
		v2, err := NewSparse(5, Int, map[int]float64{2: 3})
		require.NoError(t, err)

		q, err := v1.Div(v2)
		require.NoError(t, err)
		got, err := q.Get(3)
		require.NoError(t, err)
		assert.Zero(t, got)
		got, err = q.Get(2)
		require.NoError(t, err)
		assert.Equal(t, 2.0, got)
	}
}

func TestDivAssign(t *testing.T) {
	for _, v1 := range both(t, 5, Int, map[int]float64{2: 6, 3: 18}) {
		v2, err := NewSparse(5, Int, map[int]float64{2: 3, 3: 6})
		require.NoError(t, err)

		require.NoError(t, v1.DivAssign(v2))
		assert.Equal(t, Float, v1.DType())
		got, err := v1.Get(3)
		require.NoError(t, err)
		assert.Equal(t, 3.0, got)
	}
}

func TestAddScalar_NonZeroCellsOnly(t *testing.T) {
	for _, v1 := range both(t, 5, Int, map[int]float64{2: 3, 3: 9}) {
		got := v1.AddScalar(5)
		val, err := got.Get(2)
		require.NoError(t, err)
		assert.Equal(t, 8.0, val)
		val, err = got.Get(3)
		require.NoError(t, err)
		assert.Equal(t, 14.0, val)

		// Zero cells stay zero
		val, err = got.Get(0)
		require.NoError(t, err)
		assert.Zero(t, val)

		// Adding zero is identity and returns a new vector
		same := v1.AddScalar(0)
		assert.True(t, Equal(v1, same))
		require.NoError(t, same.Set(2, 99))
		val, err = v1.Get(2)
		require.NoError(t, err)
		assert.Equal(t, 3.0, val)
	}
}

func TestSubScalar(t *testing.T) {
	for _, v1 := range both(t, 5, Int, map[int]float64{2: 3, 3: 9}) {
		got := v1.SubScalar(2)
		val, err := got.Get(2)
		require.NoError(t, err)
		assert.Equal(t, 1.0, val)

		v1.SubScalarAssign(2)
		val, err = v1.Get(3)
		require.NoError(t, err)
		assert.Equal(t, 7.0, val)
	}
}

func TestDivScalar(t *testing.T) {
	for _, v1 := range both(t, 5, Int, map[int]float64{2: 6, 3: 18}) {
		q := v1.DivScalar(3)
		assert.Equal(t, Float, q.DType())
		val, err := q.Get(2)
		require.NoError(t, err)
		assert.Equal(t, 2.0, val)
		val, err = q.Get(3)
		require.NoError(t, err)
		assert.Equal(t, 6.0, val)
	}
}

func TestDivScalar_Zero(t *testing.T) {
	for _, v1 := range both(t, 5, Int, map[int]float64{2: 6, 3: 18}) {
		q := v1.DivScalar(0)
		assert.Zero(t, q.Sum())
		val, err := q.Get(2)
		require.NoError(t, err)
		assert.Zero(t, val)
	}
}

func TestDivScalar_Normalize(t *testing.T) {
	for _, v := range both(t, 4, Int, map[int]float64{0: 1, 1: 1, 2: 1, 3: 1}) {
		freqs := v.DivScalar(v.Sum())
		for _, p := range freqs.NonZero() {
			assert.InDelta(t, 0.25, p, 1e-15)
		}
		assert.InDelta(t, 1.0, freqs.Sum(), 1e-15)
	}
}
