package soft

import (
	"github.com/ddirect/softheap"
)

// Monitor observes the key events of a heap. KeyChanged fires once when a key
// is first assigned on Insert and again every time restocking raises a node's
// current key; after the call every element in n's list carries key. The
// second kind of event is how a caller learns about corruption. A nil Monitor
// disables reporting.
type Monitor[K softheap.Comparer[K], V any] interface {
	KeyChanged(n *Node[K, V], key K)
}
