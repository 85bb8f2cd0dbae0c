package datastructure

import "container/heap"

type Rank interface {
	int | float64
}

type priorityQueueNode[T any, G Rank] struct {
	rank  G
	index int
	item  T
}

func NewPriorityQueueNode[T any, G Rank](rank G, item T) *priorityQueueNode[T, G] {
	return &priorityQueueNode[T, G]{rank: rank, item: item}
}

func (n *priorityQueueNode[T, G]) GetItem() T {
	return n.item
}

func (n *priorityQueueNode[T, G]) GetRank() G {
	return n.rank
}

// priorityQueue is a min-heap on rank.
type priorityQueue[T any, G Rank] []*priorityQueueNode[T, G]

func (pq priorityQueue[T, G]) Len() int {
	return len(pq)
}

func (pq priorityQueue[T, G]) Less(i, j int) bool {
	return pq[i].rank < pq[j].rank
}

func (pq priorityQueue[T, G]) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].index = i
	pq[j].index = j
}

func (pq *priorityQueue[T, G]) Push(x interface{}) {
	n := len(*pq)
	no := x.(*priorityQueueNode[T, G])
	no.index = n
	*pq = append(*pq, no)
}

func (pq *priorityQueue[T, G]) Pop() interface{} {
	old := *pq
	n := len(old)
	no := old[n-1]
	old[n-1] = nil
	no.index = -1
	*pq = old[0 : n-1]
	return no
}

// MinHeap wraps container/heap so callers never touch the heap.Interface methods directly.
type MinHeap[T any, G Rank] struct {
	pq priorityQueue[T, G]
}

func NewMinHeap[T any, G Rank]() *MinHeap[T, G] {
	return &MinHeap[T, G]{pq: priorityQueue[T, G]{}}
}

func (h *MinHeap[T, G]) Insert(item T, rank G) {
	heap.Push(&h.pq, NewPriorityQueueNode(rank, item))
}

// ExtractMin panics on an empty heap, check Size first.
func (h *MinHeap[T, G]) ExtractMin() (T, G) {
	no := heap.Pop(&h.pq).(*priorityQueueNode[T, G])
	return no.item, no.rank
}

func (h *MinHeap[T, G]) Size() int {
	return h.pq.Len()
}

func (h *MinHeap[T, G]) IsEmpty() bool {
	return h.pq.Len() == 0
}
