// Package alphabet defines ordered canonical symbol sets and the encoding
// of raw sequences into symbol-index arrays.
//
// An alphabet maps each canonical symbol to a small index, sequential from
// 0. Positions holding any other symbol (ambiguity codes, gaps) encode to
// the NonCanonical sentinel and are excluded from k-mer counting.
package alphabet

import (
	"fmt"
	"math"
)

// NonCanonical is the sentinel index assigned to sequence positions whose
// symbol is not in the alphabet.
const NonCanonical int8 = -1

// ErrInvalidAlphabet indicates a malformed canonical symbol set: duplicate
// symbols, an empty set, or a symbol-to-index mapping whose image is not
// exactly {0, ..., n-1}.
type ErrInvalidAlphabet struct {
	Detail string
}

func (e *ErrInvalidAlphabet) Error() string {
	return fmt.Sprintf("alphabet: %s", e.Detail)
}

// Alphabet is an ordered set of canonical symbols with a bijection to
// indices 0..Len()-1. The zero value is not usable; construct with New or
// FromMap.
type Alphabet struct {
	states []byte
	index  [256]int8
}

// New creates an alphabet whose symbol order defines the index mapping:
// states[i] has index i. Matching is case-insensitive for ASCII letters.
func New(states string) (*Alphabet, error) {
	if len(states) == 0 {
		return nil, &ErrInvalidAlphabet{Detail: "no canonical states"}
	}
	if len(states) > math.MaxInt8 {
		return nil, &ErrInvalidAlphabet{Detail: fmt.Sprintf("%d states exceed the signed byte index range", len(states))}
	}
	a := &Alphabet{states: []byte(states)}
	for i := range a.index {
		a.index[i] = NonCanonical
	}
	for i, sym := range a.states {
		if a.index[sym] != NonCanonical {
			return nil, &ErrInvalidAlphabet{Detail: fmt.Sprintf("duplicate state %q", sym)}
		}
		a.index[sym] = int8(i)
		a.index[swapCase(sym)] = int8(i)
	}
	return a, nil
}

// FromMap creates an alphabet from an explicit symbol-to-index mapping, as
// supplied by an external alphabet provider. The image of the mapping must
// be exactly {0, ..., len(m)-1}; gaps, duplicates or offsets fail with
// *ErrInvalidAlphabet.
func FromMap(m map[byte]int) (*Alphabet, error) {
	if len(m) == 0 {
		return nil, &ErrInvalidAlphabet{Detail: "no canonical states"}
	}
	states := make([]byte, len(m))
	seen := make([]bool, len(m))
	for sym, i := range m {
		if i < 0 || i >= len(m) {
			return nil, &ErrInvalidAlphabet{Detail: fmt.Sprintf("state %q index %d not in [0, %d)", sym, i, len(m))}
		}
		if seen[i] {
			return nil, &ErrInvalidAlphabet{Detail: fmt.Sprintf("duplicate index %d", i)}
		}
		seen[i] = true
		states[i] = sym
	}
	return New(string(states))
}

// MustNew is like New but panics on error. For package-level alphabets.
func MustNew(states string) *Alphabet {
	a, err := New(states)
	if err != nil {
		panic(err)
	}
	return a
}

// Built-in molecular alphabets.
var (
	// DNA is the canonical DNA alphabet, A=0 C=1 G=2 T=3.
	DNA = MustNew("ACGT")
	// RNA is the canonical RNA alphabet, A=0 C=1 G=2 U=3.
	RNA = MustNew("ACGU")
	// Protein is the 20 canonical amino acids in lexical order.
	Protein = MustNew("ACDEFGHIKLMNPQRSTVWY")
)

// Len returns the number of canonical states.
func (a *Alphabet) Len() int { return len(a.states) }

// States returns the ordered canonical symbols.
func (a *Alphabet) States() []byte {
	out := make([]byte, len(a.states))
	copy(out, a.states)
	return out
}

// String returns the canonical symbols in index order.
func (a *Alphabet) String() string { return string(a.states) }

// Index returns the index of sym, or NonCanonical when sym is not a
// canonical state.
func (a *Alphabet) Index(sym byte) int8 { return a.index[sym] }

// Symbol returns the canonical symbol at index i.
func (a *Alphabet) Symbol(i int) (byte, error) {
	if i < 0 || i >= len(a.states) {
		return 0, &ErrInvalidAlphabet{Detail: fmt.Sprintf("index %d not in [0, %d)", i, len(a.states))}
	}
	return a.states[i], nil
}

// Encode converts a raw sequence into per-position symbol indices.
// Non-canonical positions get the NonCanonical sentinel. The result has
// the same length as seq.
func (a *Alphabet) Encode(seq []byte) []int8 {
	out := make([]int8, len(seq))
	for i, sym := range seq {
		out[i] = a.index[sym]
	}
	return out
}

// Decode converts symbol indices back into raw symbols, writing '?' for
// sentinel positions. The inverse of Encode for canonical input; used for
// diagnostics.
func (a *Alphabet) Decode(indices []int8) []byte {
	out := make([]byte, len(indices))
	for i, idx := range indices {
		if idx < 0 || int(idx) >= len(a.states) {
			out[i] = '?'
			continue
		}
		out[i] = a.states[idx]
	}
	return out
}

// swapCase flips the case of an ASCII letter, leaving other bytes alone.
func swapCase(b byte) byte {
	switch {
	case b >= 'a' && b <= 'z':
		return b - 'a' + 'A'
	case b >= 'A' && b <= 'Z':
		return b - 'A' + 'a'
	default:
		return b
	}
}
