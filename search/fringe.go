package search

import "container/heap"

// node is a partial path waiting on the fringe.
type node[S comparable, A any] struct {
	state S
	path  []A
	cost  float64
}

// extend returns the child node reached by following successor. The path is
// copied so siblings never share a backing array.
func (n node[S, A]) extend(successor Successor[S, A]) node[S, A] {
	path := make([]A, len(n.path), len(n.path)+1)
	copy(path, n.path)
	return node[S, A]{
		state: successor.State,
		path:  append(path, successor.Action),
		cost:  n.cost + successor.Cost,
	}
}

// fringe holds discovered but not yet expanded nodes. The priority is ignored
// by the stack and the queue.
type fringe[T any] interface {
	Push(item T, priority float64)
	Pop() T
	IsEmpty() bool
}

// Stack is a LIFO fringe.
type Stack[T any] struct {
	items []T
}

func (s *Stack[T]) Push(item T, _ float64) {
	s.items = append(s.items, item)
}

func (s *Stack[T]) Pop() T {
	last := len(s.items) - 1
	item := s.items[last]
	var zero T
	s.items[last] = zero
	s.items = s.items[:last]
	return item
}

func (s *Stack[T]) IsEmpty() bool {
	return len(s.items) == 0
}

// Queue is a FIFO fringe.
type Queue[T any] struct {
	items []T
	head  int
}

func (q *Queue[T]) Push(item T, _ float64) {
	q.items = append(q.items, item)
}

func (q *Queue[T]) Pop() T {
	item := q.items[q.head]
	var zero T
	q.items[q.head] = zero
	q.head++
	// Reclaim the consumed prefix once it dominates the slice
	if q.head > 32 && q.head*2 > len(q.items) {
		q.items = append(q.items[:0], q.items[q.head:]...)
		q.head = 0
	}
	return item
}

func (q *Queue[T]) IsEmpty() bool {
	return q.head == len(q.items)
}

// PriorityQueue pops the item with the lowest priority first. Equal
// priorities pop in insertion order.
type PriorityQueue[T any] struct {
	entries entries[T]
	count   uint64
}

func (pq *PriorityQueue[T]) Push(item T, priority float64) {
	heap.Push(&pq.entries, entry[T]{item: item, priority: priority, order: pq.count})
	pq.count++
}

func (pq *PriorityQueue[T]) Pop() T {
	return heap.Pop(&pq.entries).(entry[T]).item
}

func (pq *PriorityQueue[T]) IsEmpty() bool {
	return len(pq.entries) == 0
}

type entry[T any] struct {
	item     T
	priority float64
	order    uint64
}

// entries implements heap.Interface
type entries[T any] []entry[T]

func (e entries[T]) Len() int { return len(e) }

func (e entries[T]) Less(i, j int) bool {
	if e[i].priority == e[j].priority {
		return e[i].order < e[j].order
	}
	return e[i].priority < e[j].priority
}

func (e entries[T]) Swap(i, j int) { e[i], e[j] = e[j], e[i] }

func (e *entries[T]) Push(x any) {
	*e = append(*e, x.(entry[T]))
}

func (e *entries[T]) Pop() any {
	old := *e
	n := len(old)
	item := old[n-1]
	old[n-1] = entry[T]{} // avoid memory leak
	*e = old[:n-1]
	return item
}
