package record

import "container/heap"

// Compile time check to ensure Queue satisfies the heap interface.
var _ heap.Interface = (*Queue)(nil)

// Queue is a priority queue over records keyed by delta JSD, for ranking
// algorithms that repeatedly take the lowest (or highest) contributor.
// Use with container/heap:
//
//	q := &record.Queue{}
//	heap.Init(q)
//	heap.Push(q, rec)
//	next := heap.Pop(q).(*record.SeqRecord)
//
// Records whose delta JSD changes while queued must be re-fixed with
// heap.Fix.
type Queue struct {
	// Descending flips the order so Pop returns the highest delta JSD.
	Descending bool
	// Items holds the queued records in heap order.
	Items []*SeqRecord
}

// Len returns the number of queued records.
func (q *Queue) Len() int { return len(q.Items) }

// Less reports whether the record at i should sort before the record at j.
func (q *Queue) Less(i, j int) bool {
	if q.Descending {
		return q.Items[j].Less(q.Items[i])
	}
	return q.Items[i].Less(q.Items[j])
}

// Swap swaps the records at i and j.
func (q *Queue) Swap(i, j int) {
	q.Items[i], q.Items[j] = q.Items[j], q.Items[i]
}

// Push adds x to the queue.
func (q *Queue) Push(x any) {
	rec, _ := x.(*SeqRecord)
	q.Items = append(q.Items, rec)
}

// Pop removes and returns the top record.
func (q *Queue) Pop() any {
	if len(q.Items) == 0 {
		return nil
	}
	old := q.Items
	n := len(old)
	rec := old[n-1]
	old[n-1] = nil // Avoid memory leak
	q.Items = old[:n-1]
	return rec
}

// Top returns the top record without removing it.
func (q *Queue) Top() *SeqRecord {
	if len(q.Items) == 0 {
		return nil
	}
	return q.Items[0]
}
