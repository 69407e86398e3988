package vector

import (
	"iter"
	"maps"
	"slices"
)

// Compile time check to ensure Sparse satisfies the Vector interface.
var _ Vector = (*Sparse)(nil)

// Sparse is a map-backed vector. Only non-zero cells are stored; absent
// indices read as zero. Suited to counts over large state spaces where
// most k-mers never occur.
type Sparse struct {
	header
	data map[int]float64
}

// NewSparse creates a sparse vector of the given length. Entries of data
// within tolerance of zero are dropped; data may be nil for an all-zero
// vector. Fails with ErrInvalidLength or *ErrIndexOutOfRange.
func NewSparse(length int, dtype DType, data map[int]float64, opts ...Option) (*Sparse, error) {
	if length <= 0 {
		return nil, ErrInvalidLength
	}
	s := &Sparse{
		header: header{length: length, dtype: dtype},
		data:   make(map[int]float64, len(data)),
	}
	for _, opt := range opts {
		opt(&s.header)
	}
	for i, v := range data {
		if i < 0 || i >= length {
			return nil, &ErrIndexOutOfRange{Index: i, Length: length}
		}
		if isZero(v) {
			continue
		}
		s.data[i] = truncate(dtype, v)
	}
	return s, nil
}

// Get returns the cell at index i, zero for absent entries.
func (s *Sparse) Get(i int) (float64, error) {
	if i < 0 || i >= s.length {
		return 0, &ErrIndexOutOfRange{Index: i, Length: s.length}
	}
	return s.data[i], nil
}

// Set writes the cell at index i. A near-zero value removes the entry.
func (s *Sparse) Set(i int, v float64) error {
	if i < 0 || i >= s.length {
		return &ErrIndexOutOfRange{Index: i, Length: s.length}
	}
	s.setAt(i, truncate(s.dtype, v))
	return nil
}

// Sum returns the total of the stored values.
func (s *Sparse) Sum() float64 {
	var total float64
	for _, v := range s.data {
		total += v
	}
	return total
}

// NonZero yields stored entries in ascending index order.
func (s *Sparse) NonZero() iter.Seq2[int, float64] {
	return func(yield func(int, float64) bool) {
		indices := slices.Sorted(maps.Keys(s.data))
		for _, i := range indices {
			if !yield(i, s.data[i]) {
				return
			}
		}
	}
}

// Entropy returns the normalized Shannon entropy in bits.
func (s *Sparse) Entropy() float64 { return entropyOf(s) }

// Clone returns a deep copy.
func (s *Sparse) Clone() Vector { return s.clone() }

func (s *Sparse) clone() *Sparse {
	return &Sparse{header: s.header, data: maps.Clone(s.data)}
}

// Dense returns the content as a new dense vector.
func (s *Sparse) Dense() *Dense {
	d := &Dense{header: s.header, data: make([]float64, s.length)}
	for i, v := range s.data {
		d.data[i] = v
	}
	return d
}

// Sparse returns a copy of the receiver.
func (s *Sparse) Sparse() *Sparse { return s.clone() }

func (s *Sparse) at(i int) float64 { return s.data[i] }

func (s *Sparse) setAt(i int, v float64) {
	if isZero(v) {
		delete(s.data, i)
		return
	}
	s.data[i] = v
}

// Add returns a new sparse vector holding the elementwise sum.
func (s *Sparse) Add(other Vector) (Vector, error) { return addInto(s.clone(), other) }

// Sub returns a new sparse vector holding the elementwise difference.
func (s *Sparse) Sub(other Vector) (Vector, error) { return subInto(s.clone(), other) }

// Div returns a new sparse Float vector holding the elementwise quotient.
func (s *Sparse) Div(other Vector) (Vector, error) { return divInto(s.clone(), other) }

// AddScalar returns a new sparse vector with x added to non-zero cells.
func (s *Sparse) AddScalar(x float64) Vector { return addScalarInto(s.clone(), x) }

// SubScalar returns a new sparse vector with x subtracted from non-zero cells.
func (s *Sparse) SubScalar(x float64) Vector { return addScalarInto(s.clone(), -x) }

// DivScalar returns a new sparse Float vector with non-zero cells divided by x.
func (s *Sparse) DivScalar(x float64) Vector { return divScalarInto(s.clone(), x) }

// AddAssign adds other into the receiver in place.
func (s *Sparse) AddAssign(other Vector) error {
	_, err := addInto(s, other)
	return err
}

// SubAssign subtracts other from the receiver in place.
func (s *Sparse) SubAssign(other Vector) error {
	_, err := subInto(s, other)
	return err
}

// DivAssign divides the receiver by other in place.
func (s *Sparse) DivAssign(other Vector) error {
	_, err := divInto(s, other)
	return err
}

// AddScalarAssign adds x to non-zero cells in place.
func (s *Sparse) AddScalarAssign(x float64) { addScalarInto(s, x) }

// SubScalarAssign subtracts x from non-zero cells in place.
func (s *Sparse) SubScalarAssign(x float64) { addScalarInto(s, -x) }

// DivScalarAssign divides non-zero cells by x in place.
func (s *Sparse) DivScalarAssign(x float64) { divScalarInto(s, x) }

func (s *Sparse) setDType(dt DType) { s.dtype = dt }
