package heap

import (
	"iter"
)

// Heap is an exact array-backed binary min-heap ordered by less; the exact
// counterpart of soft.Heap, with no corruption and O(log n) Pop.
type Heap[T any] struct {
	s        []T
	lessFunc func(a, b T) bool
}

func New[T any](less func(a, b T) bool) *Heap[T] {
	return &Heap[T]{
		lessFunc: less,
	}
}

func (h *Heap[T]) Len() int {
	return len(h.s)
}

func (h *Heap[T]) Peek() (t T, ok bool) {
	if len(h.s) > 0 {
		t = h.s[0]
		ok = true
	}
	return
}

func (h *Heap[T]) PopAll() iter.Seq[T] {
	return func(yield func(T) bool) {
		for h.Len() > 0 {
			if !yield(h.Pop()) {
				return
			}
		}
	}
}

func (h *Heap[T]) Push(x T) {
	h.s = append(h.s, x)
	h.up(h.Len() - 1)
}

func (h *Heap[T]) Pop() T {
	n := h.Len() - 1
	h.swap(0, n)
	h.down(0, n)
	return h.pop(n)
}

func (h *Heap[T]) up(j int) {
	for {
		i := (j - 1) / 2 // parent
		if i == j || !h.less(j, i) {
			break
		}
		h.swap(i, j)
		j = i
	}
}

func (h *Heap[T]) down(i, n int) {
	for {
		j1 := 2*i + 1
		if j1 >= n || j1 < 0 { // j1 < 0 after int overflow
			break
		}
		j := j1 // left child
		if j2 := j1 + 1; j2 < n && h.less(j2, j1) {
			j = j2 // = 2*i + 2  // right child
		}
		if !h.less(j, i) {
			break
		}
		h.swap(i, j)
		i = j
	}
}

func (h *Heap[T]) swap(i, j int) {
	h.s[i], h.s[j] = h.s[j], h.s[i]
}

func (h *Heap[T]) pop(n int) T {
	e := h.s[n]
	h.s = h.s[:n]
	return e
}

func (h *Heap[T]) less(i, j int) bool {
	return h.lessFunc(h.s[i], h.s[j])
}
