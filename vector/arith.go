package vector

// mutable is the write-side of both representations, used by the shared
// arithmetic kernels.
type mutable interface {
	Vector
	setDType(DType)
}

type entry struct {
	index int
	value float64
}

// snapshot collects v's non-zero cells so kernels can mutate their target
// safely even when it aliases the operand (v += v).
func snapshot(v Vector) []entry {
	var out []entry
	for i, val := range v.NonZero() {
		out = append(out, entry{index: i, value: val})
	}
	return out
}

func checkShape(a, b Vector) error {
	if a.Len() != b.Len() {
		return &ErrShapeMismatch{Expected: a.Len(), Actual: b.Len()}
	}
	return nil
}

// addInto adds other into dst and returns dst.
func addInto(dst mutable, other Vector) (Vector, error) {
	if err := checkShape(dst, other); err != nil {
		return nil, err
	}
	for _, e := range snapshot(other) {
		dst.setAt(e.index, dst.at(e.index)+e.value)
	}
	return dst, nil
}

// subInto subtracts other from dst and returns dst. Negative results are
// kept as-is.
func subInto(dst mutable, other Vector) (Vector, error) {
	if err := checkShape(dst, other); err != nil {
		return nil, err
	}
	for _, e := range snapshot(other) {
		dst.setAt(e.index, dst.at(e.index)-e.value)
	}
	return dst, nil
}

// divInto divides dst by other elementwise and returns dst. Cells whose
// divisor is zero become zero. The result dtype is always Float.
func divInto(dst mutable, other Vector) (Vector, error) {
	if err := checkShape(dst, other); err != nil {
		return nil, err
	}
	for _, e := range snapshot(dst) {
		div := other.at(e.index)
		if div == 0 {
			dst.setAt(e.index, 0)
			continue
		}
		dst.setAt(e.index, e.value/div)
	}
	dst.setDType(Float)
	return dst, nil
}

// addScalarInto adds x to every non-zero cell of dst and returns dst.
func addScalarInto(dst mutable, x float64) Vector {
	for _, e := range snapshot(dst) {
		dst.setAt(e.index, e.value+x)
	}
	return dst
}

// divScalarInto divides every non-zero cell of dst by x and returns dst.
// x == 0 zeroes the vector. The result dtype is always Float.
func divScalarInto(dst mutable, x float64) Vector {
	for _, e := range snapshot(dst) {
		if x == 0 {
			dst.setAt(e.index, 0)
			continue
		}
		dst.setAt(e.index, e.value/x)
	}
	dst.setDType(Float)
	return dst
}
