package forest

import (
	"fmt"
	"iter"
	"slices"

	"github.com/ddirect/softheap"
)

// List is a slice-backed arena of root entries kept in ascending rank order,
// each entry caching the minimum-keyed entry of its suffix. The zero value is
// an empty list. Merge may leave equal ranks adjacent; callers restore strict
// order through Fuse before relying on suffix minima.
type List[K softheap.Comparer[K], T any] struct {
	s []*Item[K, T]
}

func (l *List[K, T]) Len() int {
	return len(l.s)
}

func (l *List[K, T]) At(i int) *Item[K, T] {
	return l.s[i]
}

func (l *List[K, T]) Index(it *Item[K, T]) int {
	if !it.Present() {
		panic(fmt.Errorf("forest: item is not in the list"))
	}
	return int(it.indexP1) - 1
}

// Min returns the entry with the smallest key, or nil if the list is empty.
func (l *List[K, T]) Min() *Item[K, T] {
	if len(l.s) == 0 {
		return nil
	}
	return l.s[0].suffixMin
}

// Append adds an entry after all existing ones; ranks must stay strictly
// ascending.
func (l *List[K, T]) Append(rank int, key K, value T) *Item[K, T] {
	if n := len(l.s); n > 0 && l.s[n-1].rank >= rank {
		panic(fmt.Errorf("forest: appending rank %d after rank %d", rank, l.s[n-1].rank))
	}
	it := &Item[K, T]{value: value, key: key, rank: rank, indexP1: uint(len(l.s)) + 1}
	it.suffixMin = it
	l.s = append(l.s, it)
	l.UpdateSuffixMin(len(l.s) - 1)
	return it
}

// Merge splices all entries of o into l, preserving ascending rank order and
// placing entries of o before existing entries of equal rank. o is consumed.
// It returns the index of the first spliced entry, or l.Len() if o was empty;
// suffix minima from that position back to the head are left stale for the
// caller to recompute once ranks are strict again.
func (l *List[K, T]) Merge(o *List[K, T]) int {
	if o.Len() == 0 {
		return l.Len()
	}
	merged := make([]*Item[K, T], 0, len(l.s)+len(o.s))
	first := -1
	i, j := 0, 0
	for i < len(l.s) || j < len(o.s) {
		if j < len(o.s) && (i >= len(l.s) || o.s[j].rank <= l.s[i].rank) {
			if first < 0 {
				first = len(merged)
			}
			merged = append(merged, o.s[j])
			j++
		} else {
			merged = append(merged, l.s[i])
			i++
		}
	}
	l.s = merged
	l.renumber(first)
	o.s = nil
	return first
}

// Fuse replaces the entries at i and i+1 with a single new entry, the carry
// step of a rank merge. Both replaced entries leave the list.
func (l *List[K, T]) Fuse(i, rank int, key K, value T) *Item[K, T] {
	l.s[i].setNotPresent()
	l.s[i+1].setNotPresent()
	it := &Item[K, T]{value: value, key: key, rank: rank, indexP1: uint(i) + 1}
	it.suffixMin = it
	l.s[i] = it
	l.s = slices.Delete(l.s, i+1, i+2)
	l.renumber(i + 1)
	return it
}

// Remove unlinks the entry and returns its former index.
func (l *List[K, T]) Remove(it *Item[K, T]) int {
	i := l.Index(it)
	it.setNotPresent()
	l.s = slices.Delete(l.s, i, i+1)
	l.renumber(i)
	return i
}

// SetKey changes the key of an entry after its root was restocked. The caller
// must follow up with UpdateSuffixMin from the entry's position.
func (l *List[K, T]) SetKey(it *Item[K, T], key K) {
	it.key = key
}

// UpdateSuffixMin recomputes the cached suffix minima for the entries at
// from..0, assuming the entries after from are up to date. A single backward
// pass; ties go to the later entry.
func (l *List[K, T]) UpdateSuffixMin(from int) {
	if from >= len(l.s) {
		from = len(l.s) - 1
	}
	for i := from; i >= 0; i-- {
		it := l.s[i]
		if i == len(l.s)-1 {
			it.suffixMin = it
		} else if next := l.s[i+1].suffixMin; it.key.Before(next.key) {
			it.suffixMin = it
		} else {
			it.suffixMin = next
		}
	}
}

func (l *List[K, T]) Values() iter.Seq[*Item[K, T]] {
	return slices.Values(l.s)
}

func (l *List[K, T]) renumber(from int) {
	if from < 0 {
		from = 0
	}
	for i := from; i < len(l.s); i++ {
		l.s[i].indexP1 = uint(i) + 1
	}
}
