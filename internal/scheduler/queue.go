package scheduler

import (
	"container/heap"
	"time"

	"dispatch/internal/core/domain/model/order"
)

type queuedOrder struct {
	order *order.Order
	seq   uint64
}

// dueQueue is a min-heap of orders keyed by (DueAt, seq). seq is the insertion counter,
// so orders sharing a due time leave the queue in the order they were added.
type dueQueue []queuedOrder

func (q dueQueue) Len() int { return len(q) }

func (q dueQueue) Less(i, j int) bool {
	di, dj := q[i].order.DueAt(), q[j].order.DueAt()
	if di.Equal(dj) {
		return q[i].seq < q[j].seq
	}
	return di.Before(dj)
}

func (q dueQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *dueQueue) Push(x any) {
	*q = append(*q, x.(queuedOrder))
}

func (q *dueQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	old[n-1] = queuedOrder{}
	*q = old[:n-1]
	return item
}

func (q *dueQueue) push(o *order.Order, seq uint64) {
	heap.Push(q, queuedOrder{order: o, seq: seq})
}

// popDue removes and returns every order due at now, earliest first.
func (q *dueQueue) popDue(now time.Time) []queuedOrder {
	var due []queuedOrder
	for q.Len() > 0 && (*q)[0].order.IsDue(now) {
		due = append(due, heap.Pop(q).(queuedOrder))
	}
	return due
}

// restore puts popped orders back with their original sequence numbers.
func (q *dueQueue) restore(items []queuedOrder) {
	for _, item := range items {
		heap.Push(q, item)
	}
}

// peek returns the earliest order without removing it.
func (q dueQueue) peek() *order.Order {
	if len(q) == 0 {
		return nil
	}
	return q[0].order
}
