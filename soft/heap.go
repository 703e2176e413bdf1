package soft

import (
	"fmt"
	"iter"
	"math"

	"github.com/ddirect/softheap"
	"github.com/ddirect/softheap/fifo"
	"github.com/ddirect/softheap/internal/forest"
)

// DefaultErrorRate is the error rate used by New.
const DefaultErrorRate = 1.0 / 3

// Heap is a soft heap: a mergeable priority queue that may raise (corrupt)
// the keys of up to an errorRate fraction of its elements in exchange for
// constant amortized operation cost beyond the rank threshold. It is not safe
// to call any method concurrently from different goroutines.
//
// The heap is a forest of rank-indexed trees kept in ascending rank order,
// with a cached suffix minimum per root for O(1) minimum lookup.
type Heap[K softheap.Comparer[K], V any] struct {
	forest   forest.List[K, *Node[K, V]]
	monitor  Monitor[K, V]
	rank     int // maximum tree rank ever built in this heap
	r        int // rank threshold below which the heap behaves exactly
	count    int
	consumed bool
}

// New creates an empty heap with the default error rate. monitor may be nil.
func New[K softheap.Comparer[K], V any](monitor Monitor[K, V]) *Heap[K, V] {
	return NewWithErrorRate[K, V](monitor, DefaultErrorRate)
}

// NewWithErrorRate creates an empty heap whose corrupted fraction is bounded
// by errorRate, which must lie in the open interval (0, 1).
func NewWithErrorRate[K softheap.Comparer[K], V any](monitor Monitor[K, V], errorRate float64) *Heap[K, V] {
	if !(errorRate > 0 && errorRate < 1) {
		panic(fmt.Errorf("soft: error rate %v outside (0, 1)", errorRate))
	}
	return &Heap[K, V]{
		monitor: monitor,
		r:       int(math.Ceil(-math.Log2(errorRate))) + 5,
	}
}

// Len returns the number of elements in the heap.
func (h *Heap[K, V]) Len() int {
	return h.count
}

// RankThreshold returns the number of rank levels that behave exactly before
// list sizes start growing; larger thresholds mean less corruption.
func (h *Heap[K, V]) RankThreshold() int {
	return h.r
}

// Insert adds value under key and returns its element.
func (h *Heap[K, V]) Insert(key K, value V) *Element[K, V] {
	h.check()
	e := &Element[K, V]{Value: value}
	n := &Node[K, V]{head: e, tail: e, count: 1, size: 1, ckey: key}
	s := &Heap[K, V]{monitor: h.monitor, r: h.r, count: 1}
	s.forest.Append(0, key, n)
	s.keyChanged(n)
	Meld(s, h)
	return e
}

// Min returns the element with the smallest current key and that key, without
// removing it. ok is false if the heap is empty.
func (h *Heap[K, V]) Min() (e *Element[K, V], key K, ok bool) {
	h.check()
	if it := h.forest.Min(); it != nil {
		n := *it.Value()
		return n.head, n.ckey, true
	}
	return
}

// Pop removes and returns the element with the smallest current key. ok is
// false if the heap is empty.
func (h *Heap[K, V]) Pop() (e *Element[K, V], key K, ok bool) {
	h.check()
	it := h.forest.Min()
	if it == nil {
		return
	}
	n := *it.Value()
	key = n.ckey
	e = n.pop()
	h.count--
	if n.count*2 <= n.size {
		if !n.leaf() {
			h.sift(n)
		}
		if n.count == 0 {
			// the whole tree is exhausted
			h.forest.UpdateSuffixMin(h.forest.Remove(it))
		} else {
			h.forest.SetKey(it, n.ckey)
			h.forest.UpdateSuffixMin(h.forest.Index(it))
		}
	}
	return e, key, true
}

// PopAll drains the heap in non-decreasing current key order.
func (h *Heap[K, V]) PopAll() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for {
			e, k, ok := h.Pop()
			if !ok || !yield(k, e.Value) {
				return
			}
		}
	}
}

// All iterates every element currently in the heap together with its current
// key, in no particular key order. The heap must not be modified during the
// iteration.
func (h *Heap[K, V]) All() iter.Seq2[*Element[K, V], K] {
	return func(yield func(*Element[K, V], K) bool) {
		h.check()
		var q fifo.Fifo[*Node[K, V]]
		for it := range h.forest.Values() {
			q.Enqueue(*it.Value())
		}
		for {
			n, ok := q.Dequeue()
			if !ok {
				return
			}
			for e := n.head; e != nil; e = e.next {
				if !yield(e, n.ckey) {
					return
				}
			}
			if n.left != nil {
				q.Enqueue(n.left)
			}
			if n.right != nil {
				q.Enqueue(n.right)
			}
		}
	}
}

// Meld moves all elements of both heaps into the returned heap. Both
// arguments are consumed: the one not returned is invalidated and any further
// use of it panics. The heaps must have been created with the same error
// rate.
func Meld[K softheap.Comparer[K], V any](a, b *Heap[K, V]) *Heap[K, V] {
	a.check()
	b.check()
	if a == b {
		panic(fmt.Errorf("soft: melding a heap with itself"))
	}
	if a.r != b.r {
		panic(fmt.Errorf("soft: melding heaps with different error rates"))
	}
	if a.rank > b.rank {
		a, b = b, a
	}
	window := a.rank
	from := b.forest.Merge(&a.forest)
	b.count += a.count
	a.consumed = true
	b.carryMerge(from, window)
	return b
}

// carryMerge walks the forest from the first position touched by a merge,
// combining adjacent equal-rank trees like binary addition propagates
// carries. Entries ranked above window belonged solely to the larger operand
// and need no further combining. Afterwards the suffix minima of the walked
// prefix are recomputed.
func (h *Heap[K, V]) carryMerge(from, window int) {
	f := &h.forest
	i := from
	for i+1 < f.Len() {
		a, b := f.At(i), f.At(i+1)
		if a.Rank() == b.Rank() && (i+2 >= f.Len() || f.At(i+2).Rank() != a.Rank()) {
			n := h.combine(*a.Value(), *b.Value())
			f.Fuse(i, n.rank, n.ckey, n)
			continue
		}
		if a.Rank() > window {
			break
		}
		i++
	}
	if f.Len() > 0 {
		if i > f.Len()-1 {
			i = f.Len() - 1
		}
		if r := f.At(i).Rank(); r > h.rank {
			h.rank = r
		}
	}
	f.UpdateSuffixMin(i)
}

func (h *Heap[K, V]) keyChanged(n *Node[K, V]) {
	if h.monitor != nil {
		h.monitor.KeyChanged(n, n.ckey)
	}
}

func (h *Heap[K, V]) check() {
	if h.consumed {
		panic(fmt.Errorf("soft: heap used after being consumed by Meld"))
	}
}
