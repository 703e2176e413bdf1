package forest

import (
	"github.com/ddirect/softheap"
)

type Item[K softheap.Comparer[K], T any] struct {
	value     T
	key       K
	rank      int
	suffixMin *Item[K, T]
	indexP1   uint // index plus 1 - if zero, the item does not belong to the list
}

func (it *Item[K, T]) Value() *T {
	return &it.value
}

func (it *Item[K, T]) Key() K {
	return it.key
}

func (it *Item[K, T]) Rank() int {
	return it.rank
}

// SuffixMin returns the minimum-keyed item among this item and all items
// after it, as cached by the last UpdateSuffixMin covering this position.
func (it *Item[K, T]) SuffixMin() *Item[K, T] {
	return it.suffixMin
}

func (it *Item[K, T]) Present() bool {
	return it != nil && it.indexP1 > 0
}

func (it *Item[K, T]) setNotPresent() {
	it.indexP1 = 0
}
