// Package record bundles a sequence's identity with its k-mer counts and
// the statistics derived from them.
//
// A SeqRecord partitions cleanly into an immutable payload (name, length,
// k, counts) and one mutable cell, the delta JSD, written by an external
// ranking algorithm. Ordering consults only the delta JSD; equality and
// identity consult only (name, length). The asymmetry is deliberate:
// equal-but-differently-ranked records must still collide in a set keyed
// by identity, while ordered structures follow the evolving rank.
package record

import (
	"cmp"
	"errors"
	"fmt"
	"slices"

	"github.com/diverseq/kmervec/alphabet"
	"github.com/diverseq/kmervec/kmer"
	"github.com/diverseq/kmervec/vector"
)

var (
	// ErrEmptyName is returned when a record is constructed without a
	// sequence name.
	ErrEmptyName = errors.New("record: name must not be empty")

	// ErrInvalidLength is returned when the sequence length is not
	// positive.
	ErrInvalidLength = errors.New("record: length must be positive")

	// ErrNilCounts is returned when a record is constructed without a
	// counts vector.
	ErrNilCounts = errors.New("record: counts vector must not be nil")
)

// ErrKTooLarge indicates k exceeding the sequence length, which leaves no
// countable windows.
type ErrKTooLarge struct {
	K      int
	Length int
}

func (e *ErrKTooLarge) Error() string {
	return fmt.Sprintf("record: k=%d exceeds sequence length %d", e.K, e.Length)
}

// SeqRecord is the k-mer representation of a single sequence.
type SeqRecord struct {
	name     string
	length   int
	k        int
	kcounts  vector.Vector
	deltaJSD float64
}

// New builds a record by counting the k-mers of an encoded sequence. seq
// holds one symbol index per position as produced by alphabet.Encode. The
// counts are held sparse; use the facade's dense mode or FromCounts for a
// dense representation.
func New(name string, seq []int8, a *alphabet.Alphabet, k int) (*SeqRecord, error) {
	if err := checkIdentity(name, len(seq), k); err != nil {
		return nil, err
	}
	counts, err := kmer.SparseCounts(seq, a.Len(), k, vector.WithName(name))
	if err != nil {
		return nil, err
	}
	return &SeqRecord{name: name, length: len(seq), k: k, kcounts: counts}, nil
}

// FromCounts builds a record around an existing counts vector. The record
// takes exclusive ownership of counts; callers must not retain references.
func FromCounts(name string, length, k int, counts vector.Vector) (*SeqRecord, error) {
	if err := checkIdentity(name, length, k); err != nil {
		return nil, err
	}
	if counts == nil {
		return nil, ErrNilCounts
	}
	return &SeqRecord{name: name, length: length, k: k, kcounts: counts}, nil
}

func checkIdentity(name string, length, k int) error {
	if name == "" {
		return ErrEmptyName
	}
	if length <= 0 {
		return ErrInvalidLength
	}
	if k <= 0 {
		return kmer.ErrInvalidK
	}
	if k > length {
		return &ErrKTooLarge{K: k, Length: length}
	}
	return nil
}

// Name returns the sequence name.
func (r *SeqRecord) Name() string { return r.name }

// Length returns the source sequence length.
func (r *SeqRecord) Length() int { return r.length }

// K returns the word size the counts were made with.
func (r *SeqRecord) K() int { return r.k }

// Size returns the k-mer state space size, numStates^k.
func (r *SeqRecord) Size() int { return r.kcounts.Len() }

// KCounts returns the raw counts vector. The record owns it exclusively;
// callers must treat it as read-only (Clone before modifying).
func (r *SeqRecord) KCounts() vector.Vector { return r.kcounts }

// KFreqs returns the counts normalized to sum 1.0, derived on demand.
func (r *SeqRecord) KFreqs() vector.Vector {
	return r.kcounts.DivScalar(r.kcounts.Sum())
}

// Entropy returns the Shannon entropy in bits of the k-mer frequency
// distribution, always >= 0.
func (r *SeqRecord) Entropy() float64 { return r.kcounts.Entropy() }

// DeltaJSD returns the divergence contribution assigned by an external
// ranking algorithm; 0 until assigned.
func (r *SeqRecord) DeltaJSD() float64 { return r.deltaJSD }

// SetDeltaJSD assigns the divergence contribution. This is the only
// mutation a constructed record permits. Concurrent ranking passes over
// the same record must serialize their own writes.
func (r *SeqRecord) SetDeltaJSD(v float64) { r.deltaJSD = v }

// Less orders records by delta JSD only, ascending.
func (r *SeqRecord) Less(other *SeqRecord) bool {
	return r.deltaJSD < other.deltaJSD
}

// Identity is the comparable key of a record, independent of its counts
// and delta JSD. Usable directly as a map or set key.
type Identity struct {
	Name   string
	Length int
}

// Identity returns the record's identity key.
func (r *SeqRecord) Identity() Identity {
	return Identity{Name: r.name, Length: r.length}
}

// Equal reports whether two records have the same identity. Counts and
// delta JSD do not participate.
func (r *SeqRecord) Equal(other *SeqRecord) bool {
	return other != nil && r.Identity() == other.Identity()
}

// Sort stably sorts records by delta JSD, ascending. Records with equal
// delta JSD keep their relative order.
func Sort(recs []*SeqRecord) {
	slices.SortStableFunc(recs, func(a, b *SeqRecord) int {
		return cmp.Compare(a.deltaJSD, b.deltaJSD)
	})
}

// Portable is the language-neutral serializable form of a record. Derived
// values (frequencies, entropy, size) are not stored; they are recomputed
// from the counts on load.
type Portable struct {
	Name     string          `json:"name"`
	Length   int             `json:"length"`
	K        int             `json:"k"`
	DeltaJSD float64         `json:"delta_jsd"`
	KCounts  vector.Portable `json:"kcounts"`
}

// Portable returns the serializable form of r.
func (r *SeqRecord) Portable() Portable {
	return Portable{
		Name:     r.name,
		Length:   r.length,
		K:        r.k,
		DeltaJSD: r.deltaJSD,
		KCounts:  r.kcounts.Portable(),
	}
}

// FromPortable restores a record, re-validating the identity invariants
// and recomputing derived values from the counts.
func FromPortable(p Portable) (*SeqRecord, error) {
	counts, err := vector.FromPortable(p.KCounts)
	if err != nil {
		return nil, err
	}
	r, err := FromCounts(p.Name, p.Length, p.K, counts)
	if err != nil {
		return nil, err
	}
	r.deltaJSD = p.DeltaJSD
	return r, nil
}
