package vector

import (
	"iter"
	"slices"
)

// Compile time check to ensure Dense satisfies the Vector interface.
var _ Vector = (*Dense)(nil)

// Dense is a slice-backed vector. Every index in range has a stored value
// and reads are O(1). Suited to small state spaces or downstream math that
// needs guaranteed indexed access.
type Dense struct {
	header
	data []float64
}

// NewDense creates a dense vector of the given length. data may be nil for
// an all-zero vector; otherwise its length must equal length or the call
// fails with *ErrShapeMismatch. The slice is copied.
func NewDense(length int, dtype DType, data []float64, opts ...Option) (*Dense, error) {
	if length <= 0 {
		return nil, ErrInvalidLength
	}
	d := &Dense{header: header{length: length, dtype: dtype}}
	for _, opt := range opts {
		opt(&d.header)
	}
	if data == nil {
		d.data = make([]float64, length)
		return d, nil
	}
	if len(data) != length {
		return nil, &ErrShapeMismatch{Expected: length, Actual: len(data)}
	}
	d.data = make([]float64, length)
	for i, v := range data {
		if isZero(v) {
			continue
		}
		d.data[i] = truncate(dtype, v)
	}
	return d, nil
}

// Get returns the cell at index i.
func (d *Dense) Get(i int) (float64, error) {
	if i < 0 || i >= d.length {
		return 0, &ErrIndexOutOfRange{Index: i, Length: d.length}
	}
	return d.data[i], nil
}

// Set writes the cell at index i.
func (d *Dense) Set(i int, v float64) error {
	if i < 0 || i >= d.length {
		return &ErrIndexOutOfRange{Index: i, Length: d.length}
	}
	d.setAt(i, truncate(d.dtype, v))
	return nil
}

// Sum returns the total of all cells.
func (d *Dense) Sum() float64 {
	var total float64
	for _, v := range d.data {
		total += v
	}
	return total
}

// NonZero yields non-zero cells in ascending index order.
func (d *Dense) NonZero() iter.Seq2[int, float64] {
	return func(yield func(int, float64) bool) {
		for i, v := range d.data {
			if v == 0 {
				continue
			}
			if !yield(i, v) {
				return
			}
		}
	}
}

// Entropy returns the normalized Shannon entropy in bits.
func (d *Dense) Entropy() float64 { return entropyOf(d) }

// Clone returns a deep copy.
func (d *Dense) Clone() Vector { return d.clone() }

func (d *Dense) clone() *Dense {
	return &Dense{header: d.header, data: slices.Clone(d.data)}
}

// Dense returns a copy of the receiver.
func (d *Dense) Dense() *Dense { return d.clone() }

// Sparse returns the content as a new sparse vector.
func (d *Dense) Sparse() *Sparse {
	s := &Sparse{header: d.header, data: make(map[int]float64)}
	for i, v := range d.data {
		if v != 0 {
			s.data[i] = v
		}
	}
	return s
}

// Values returns a copy of the underlying cells.
func (d *Dense) Values() []float64 { return slices.Clone(d.data) }

func (d *Dense) at(i int) float64 { return d.data[i] }

func (d *Dense) setAt(i int, v float64) {
	if isZero(v) {
		d.data[i] = 0
		return
	}
	d.data[i] = v
}

// Add returns a new dense vector holding the elementwise sum.
func (d *Dense) Add(other Vector) (Vector, error) { return addInto(d.clone(), other) }

// Sub returns a new dense vector holding the elementwise difference.
func (d *Dense) Sub(other Vector) (Vector, error) { return subInto(d.clone(), other) }

// Div returns a new dense Float vector holding the elementwise quotient.
func (d *Dense) Div(other Vector) (Vector, error) { return divInto(d.clone(), other) }

// AddScalar returns a new dense vector with x added to non-zero cells.
func (d *Dense) AddScalar(x float64) Vector { return addScalarInto(d.clone(), x) }

// SubScalar returns a new dense vector with x subtracted from non-zero cells.
func (d *Dense) SubScalar(x float64) Vector { return addScalarInto(d.clone(), -x) }

// DivScalar returns a new dense Float vector with non-zero cells divided by x.
func (d *Dense) DivScalar(x float64) Vector { return divScalarInto(d.clone(), x) }

// AddAssign adds other into the receiver in place.
func (d *Dense) AddAssign(other Vector) error {
	_, err := addInto(d, other)
	return err
}

// SubAssign subtracts other from the receiver in place.
func (d *Dense) SubAssign(other Vector) error {
	_, err := subInto(d, other)
	return err
}

// DivAssign divides the receiver by other in place.
func (d *Dense) DivAssign(other Vector) error {
	_, err := divInto(d, other)
	return err
}

// AddScalarAssign adds x to non-zero cells in place.
func (d *Dense) AddScalarAssign(x float64) { addScalarInto(d, x) }

// SubScalarAssign subtracts x from non-zero cells in place.
func (d *Dense) SubScalarAssign(x float64) { addScalarInto(d, -x) }

// DivScalarAssign divides non-zero cells by x in place.
func (d *Dense) DivScalarAssign(x float64) { divScalarInto(d, x) }

func (d *Dense) setDType(dt DType) { d.dtype = dt }
