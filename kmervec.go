package kmervec

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/diverseq/kmervec/alphabet"
	"github.com/diverseq/kmervec/kmer"
	"github.com/diverseq/kmervec/record"
	"github.com/diverseq/kmervec/vector"
)

// Sequence is one named input sequence in its raw symbol form.
type Sequence struct {
	Name string
	Seq  []byte
}

// Vectorizer converts sequences into k-mer count records for a fixed word
// size and alphabet. It is immutable after construction and safe for
// concurrent use.
type Vectorizer struct {
	k       int
	alpha   *alphabet.Alphabet
	workers int
	dense   bool
	logger  *Logger
}

// NewVectorizer creates a Vectorizer for word size k. The capacity of the
// resulting state space, numStates^k, is validated eagerly so misuse fails
// here rather than on the first sequence.
func NewVectorizer(k int, opts ...Option) (*Vectorizer, error) {
	v := &Vectorizer{
		k:      k,
		alpha:  alphabet.DNA,
		logger: NoopLogger(),
	}
	for _, opt := range opts {
		opt(v)
	}
	if _, err := kmer.NumKmers(v.alpha.Len(), k); err != nil {
		return nil, err
	}
	return v, nil
}

// K returns the word size.
func (v *Vectorizer) K() int { return v.k }

// Alphabet returns the canonical alphabet.
func (v *Vectorizer) Alphabet() *alphabet.Alphabet { return v.alpha }

// Record converts one sequence into a record. Positions outside the
// canonical alphabet are excluded from counting.
func (v *Vectorizer) Record(name string, seq []byte) (*record.SeqRecord, error) {
	encoded := v.alpha.Encode(seq)
	if !v.dense {
		return record.New(name, encoded, v.alpha, v.k)
	}
	counts, err := kmer.DenseCounts(encoded, v.alpha.Len(), v.k, vector.WithName(name))
	if err != nil {
		return nil, err
	}
	return record.FromCounts(name, len(seq), v.k, counts)
}

// Records converts many sequences into records concurrently, preserving
// input order. Each sequence is independent, so the fan-out shares no
// mutable state; the first error cancels the remaining work.
func (v *Vectorizer) Records(ctx context.Context, seqs []Sequence) ([]*record.SeqRecord, error) {
	workers := v.workers
	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}
	v.logger.Debug("vectorizing sequences", "count", len(seqs), "k", v.k, "workers", workers)

	recs := make([]*record.SeqRecord, len(seqs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, s := range seqs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			rec, err := v.Record(s.Name, s.Seq)
			if err != nil {
				v.logger.WithSeq(s.Name).Error("vectorize failed", "error", err)
				return err
			}
			recs[i] = rec
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return recs, nil
}
