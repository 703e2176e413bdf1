// Package selection picks the k smallest keys of a slice, either exactly via
// a binary heap or approximately via a soft heap, which is faster for large
// inputs when a bounded number of misplaced keys is acceptable.
package selection

import (
	"github.com/ddirect/softheap"
	"github.com/ddirect/softheap/heap"
	"github.com/ddirect/softheap/soft"
	"github.com/ddirect/softheap/tracker"
)

// Smallest returns the min(k, len(keys)) smallest keys in ascending order.
func Smallest[K softheap.Comparer[K]](keys []K, k int) []K {
	h := heap.New(func(a, b K) bool {
		return a.Before(b)
	})
	for _, key := range keys {
		h.Push(key)
	}
	res := make([]K, 0, min(k, h.Len()))
	for h.Len() > 0 && len(res) < k {
		res = append(res, h.Pop())
	}
	return res
}

// ApproxSmallest returns min(k, len(keys)) keys drawn in ascending current
// key order from a soft heap built with the given error rate, along with the
// number of keys the heap corrupted. A corrupted key may be returned up to
// corrupted positions away from where exact selection would place it.
func ApproxSmallest[K softheap.Comparer[K]](keys []K, k int, errorRate float64) (res []K, corrupted int) {
	tr := tracker.New[K, K]()
	h := soft.NewWithErrorRate[K, K](tr, errorRate)
	for _, key := range keys {
		h.Insert(key, key)
	}
	res = make([]K, 0, min(k, h.Len()))
	for h.Len() > 0 && len(res) < k {
		e, _, _ := h.Pop()
		res = append(res, e.Value)
	}
	return res, tr.Corrupted()
}
