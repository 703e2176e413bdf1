package tracker

import (
	"github.com/ddirect/softheap"
	"github.com/ddirect/softheap/soft"
)

// Tracker implements soft.Monitor. It records the key each element was
// inserted with and the key it currently carries, so a caller can tell which
// elements the heap has corrupted and by how much. Track one heap per
// Tracker; elements of different heaps would share the same index.
type Tracker[K softheap.Comparer[K], V any] struct {
	orig map[*soft.Element[K, V]]K
	cur  map[*soft.Element[K, V]]K
}

func New[K softheap.Comparer[K], V any]() *Tracker[K, V] {
	return &Tracker[K, V]{
		orig: make(map[*soft.Element[K, V]]K),
		cur:  make(map[*soft.Element[K, V]]K),
	}
}

// KeyChanged records key against every element currently in n's list. The
// first sighting of an element fixes its original key.
func (t *Tracker[K, V]) KeyChanged(n *soft.Node[K, V], key K) {
	for e := range n.Elements() {
		if _, ok := t.orig[e]; !ok {
			t.orig[e] = key
		}
		t.cur[e] = key
	}
}

// Original returns the key e was inserted with.
func (t *Tracker[K, V]) Original(e *soft.Element[K, V]) (key K, ok bool) {
	key, ok = t.orig[e]
	return
}

// Current returns the key e carried after the last event that touched it.
// For elements still in the heap this is their current key; for popped
// elements it is the key they were popped with.
func (t *Tracker[K, V]) Current(e *soft.Element[K, V]) (key K, ok bool) {
	key, ok = t.cur[e]
	return
}

// Corrupted counts the tracked elements whose current key rose above their
// original key. Linear in the number of tracked elements.
func (t *Tracker[K, V]) Corrupted() int {
	n := 0
	for e, o := range t.orig {
		if o.Before(t.cur[e]) {
			n++
		}
	}
	return n
}

// Forget stops tracking e, typically after it left the heap.
func (t *Tracker[K, V]) Forget(e *soft.Element[K, V]) {
	delete(t.orig, e)
	delete(t.cur, e)
}

func (t *Tracker[K, V]) Len() int {
	return len(t.orig)
}
