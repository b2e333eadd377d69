package spatial

import (
	"container/heap"
	"errors"
)

// PriorityQueue is a min-heap over float64 costs. Values with equal
// cost pop in insertion order. The zero value is an empty queue.
type PriorityQueue[T any] struct {
	h costHeap[T]
}

// Add inserts value with the given cost.
func (q *PriorityQueue[T]) Add(value T, cost float64) {
	heap.Push(&q.h, costItem[T]{value: value, cost: cost, seq: q.h.seq})
	q.h.seq++
}

// Pop removes and returns the lowest-cost value. Popping an empty
// queue panics.
func (q *PriorityQueue[T]) Pop() T {
	if len(q.h.items) == 0 {
		panic(errors.New("spatial: pop of empty priority queue"))
	}
	return heap.Pop(&q.h).(costItem[T]).value
}

// Len returns the number of queued values.
func (q *PriorityQueue[T]) Len() int { return len(q.h.items) }

// Empty reports whether the queue holds no values.
func (q *PriorityQueue[T]) Empty() bool { return len(q.h.items) == 0 }

type costItem[T any] struct {
	value T
	cost  float64
	seq   int
}

// costHeap implements heap.Interface. seq counts insertions so that
// cost ties break first-in first-out.
type costHeap[T any] struct {
	items []costItem[T]
	seq   int
}

func (h costHeap[T]) Len() int { return len(h.items) }

func (h costHeap[T]) Less(i, j int) bool {
	if h.items[i].cost != h.items[j].cost {
		return h.items[i].cost < h.items[j].cost
	}
	return h.items[i].seq < h.items[j].seq
}

func (h costHeap[T]) Swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
}

func (h *costHeap[T]) Push(x any) {
	h.items = append(h.items, x.(costItem[T]))
}

func (h *costHeap[T]) Pop() any {
	old := h.items
	n := len(old)
	it := old[n-1]
	h.items = old[:n-1]
	return it
}
