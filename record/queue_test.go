package record

import (
	"container/heap"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func queueFixture(t *testing.T) []*SeqRecord {
	t.Helper()
	recs := make([]*SeqRecord, 0, 4)
	for _, tc := range []struct {
		name  string
		delta float64
	}{
		{"a", 3.0}, {"b", 1.0}, {"c", 2.0}, {"d", 0.5},
	} {
		rec := mustRecord(t, tc.name, "ACGCG", 2)
		rec.SetDeltaJSD(tc.delta)
		recs = append(recs, rec)
	}
	return recs
}

func TestQueue_Ascending(t *testing.T) {
	q := &Queue{}
	heap.Init(q)
	for _, rec := range queueFixture(t) {
		heap.Push(q, rec)
	}
	require.Equal(t, 4, q.Len())
	assert.Equal(t, 0.5, q.Top().DeltaJSD())

	var got []float64
	for q.Len() > 0 {
		got = append(got, heap.Pop(q).(*SeqRecord).DeltaJSD())
	}
	assert.Equal(t, []float64{0.5, 1.0, 2.0, 3.0}, got)
}

func TestQueue_Descending(t *testing.T) {
	q := &Queue{Descending: true}
	heap.Init(q)
	for _, rec := range queueFixture(t) {
		heap.Push(q, rec)
	}
	assert.Equal(t, 3.0, q.Top().DeltaJSD())

	var got []float64
	for q.Len() > 0 {
		got = append(got, heap.Pop(q).(*SeqRecord).DeltaJSD())
	}
	assert.Equal(t, []float64{3.0, 2.0, 1.0, 0.5}, got)
}

func TestQueue_Empty(t *testing.T) {
	q := &Queue{}
	assert.Nil(t, q.Top())
	assert.Nil(t, q.Pop())
	assert.Zero(t, q.Len())
}

func TestQueue_FixAfterRankChange(t *testing.T) {
	q := &Queue{}
	heap.Init(q)
	recs := queueFixture(t)
	for _, rec := range recs {
		heap.Push(q, rec)
	}

	// Re-rank the current top to the back
	top := q.Top()
	top.SetDeltaJSD(99.0)
	heap.Fix(q, 0)

	assert.NotEqual(t, top, q.Top())
	var last *SeqRecord
	for q.Len() > 0 {
		last = heap.Pop(q).(*SeqRecord)
	}
	assert.Equal(t, top, last)
}
