package vector

// Entry is one (index, value) pair of a portable form.
type Entry struct {
	Index int     `json:"i"`
	Value float64 `json:"v"`
}

// Portable is the language-neutral serializable form of a Vector: scalar
// metadata plus the non-zero cells as an ascending (index, value) list.
// It is plain data suitable for any codec.
//
// The representation (sparse or dense) is intentionally not recorded;
// FromPortable always restores a sparse vector, and Dense() converts when
// O(1) access is required.
type Portable struct {
	Length int     `json:"vector_length"`
	DType  string  `json:"dtype"`
	Source string  `json:"source,omitempty"`
	Name   string  `json:"name,omitempty"`
	Data   []Entry `json:"data"`
}

// Portable returns the serializable form of s.
func (s *Sparse) Portable() Portable { return portableOf(s) }

// Portable returns the serializable form of d.
func (d *Dense) Portable() Portable { return portableOf(d) }

func portableOf(v Vector) Portable {
	p := Portable{
		Length: v.Len(),
		DType:  v.DType().String(),
		Source: v.Source(),
		Name:   v.Name(),
		Data:   []Entry{},
	}
	for i, val := range v.NonZero() {
		p.Data = append(p.Data, Entry{Index: i, Value: val})
	}
	return p
}

// FromPortable restores a Vector from its portable form. The result is
// observably equal to the serialized vector: same length, dtype and
// non-zero cells. Fails with ErrUnknownDType, ErrInvalidLength or
// *ErrIndexOutOfRange on malformed input.
func FromPortable(p Portable) (Vector, error) {
	dt, ok := dtypeByName(p.DType)
	if !ok {
		return nil, ErrUnknownDType
	}
	data := make(map[int]float64, len(p.Data))
	for _, e := range p.Data {
		data[e.Index] = e.Value
	}
	return NewSparse(p.Length, dt, data, WithName(p.Name), WithSource(p.Source))
}
