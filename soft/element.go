package soft

import (
	"github.com/ddirect/softheap"
)

// Element is one entry of a heap. It belongs to exactly one node list at a
// time; its current key is the owning node's and may have been raised above
// the key it was inserted with.
type Element[K softheap.Comparer[K], V any] struct {
	Value V
	next  *Element[K, V]
}
