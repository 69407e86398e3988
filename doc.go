// Package kmervec turns biological sequences into k-mer frequency vectors
// for composition-based comparison.
//
// Each sequence is reduced to a fixed-length vector of counts over all
// possible k-length words of its alphabet. Downstream ranking algorithms
// read the derived frequencies and entropy off each record and assign a
// divergence contribution (delta JSD) used purely as a sort key.
//
// # Quick Start
//
//	vz, _ := kmervec.NewVectorizer(3, kmervec.WithAlphabet(alphabet.DNA))
//	rec, _ := vz.Record("seq1", []byte("ACGGTACGTT"))
//	fmt.Println(rec.Entropy(), rec.Size())
//
// Many sequences vectorize in parallel:
//
//	recs, _ := vz.Records(ctx, []kmervec.Sequence{
//	    {Name: "seq1", Seq: []byte("ACGGTACGTT")},
//	    {Name: "seq2", Seq: []byte("TTGACCA")},
//	})
//
// Counting one sequence is pure and touches no shared state, so the
// fan-out needs no synchronization beyond collecting results.
//
// # Ambiguous symbols
//
// Positions holding symbols outside the canonical alphabet (ambiguity
// codes, gaps) are never counted: every window touching one is excluded.
// Silently counting them would corrupt the frequency estimates, so the
// exclusion is exact by construction.
//
// # Layers
//
//   - vector: the numeric container (sparse or dense)
//   - kmer: mixed-radix coordinate codec and counting engine
//   - alphabet: canonical symbol sets and sequence encoding
//   - record: the per-sequence entity with derived statistics
//   - codec, store: portable serialization and a directory store
package kmervec
