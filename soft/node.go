package soft

import (
	"iter"

	"github.com/ddirect/softheap"
)

// Node is a rank-indexed binary tree holding a list of deferred elements that
// all share the node's current key. Children always carry keys not below the
// node's, so the current key is the minimum of everything inside the tree.
type Node[K softheap.Comparer[K], V any] struct {
	left, right *Node[K, V]
	head, tail  *Element[K, V]
	ckey        K
	rank        int
	size        int
	count       int
}

func (n *Node[K, V]) Rank() int {
	return n.rank
}

// Key returns the current key shared by the elements in the node's list.
func (n *Node[K, V]) Key() K {
	return n.ckey
}

// Len returns the number of elements in the node's list.
func (n *Node[K, V]) Len() int {
	return n.count
}

// Elements iterates the node's own list, not the whole tree.
func (n *Node[K, V]) Elements() iter.Seq[*Element[K, V]] {
	return func(yield func(*Element[K, V]) bool) {
		for e := n.head; e != nil; e = e.next {
			if !yield(e) {
				return
			}
		}
	}
}

func (n *Node[K, V]) leaf() bool {
	return n.left == nil && n.right == nil
}

// splice appends o's entire list onto n's and empties o's bookkeeping.
func (n *Node[K, V]) splice(o *Node[K, V]) {
	if o.head != nil {
		if n.tail == nil {
			n.head = o.head
		} else {
			n.tail.next = o.head
		}
		n.tail = o.tail
		n.count += o.count
	}
	o.head, o.tail, o.count = nil, nil, 0
}

func (n *Node[K, V]) pop() *Element[K, V] {
	e := n.head
	n.head = e.next
	e.next = nil
	if n.head == nil {
		n.tail = nil
	}
	n.count--
	return e
}

// sift restocks n's list up to its target size by draining lists from below.
// Each drain raises n's current key to the drained child's, which is the
// corruption event: elements already in n's list now carry a larger key.
func (h *Heap[K, V]) sift(n *Node[K, V]) {
	for n.count < n.size && !n.leaf() {
		// keep the smaller-keyed child on the left; ties keep the current left
		if n.left == nil || (n.right != nil && n.right.ckey.Before(n.left.ckey)) {
			n.left, n.right = n.right, n.left
		}
		child := n.left
		n.splice(child)
		n.ckey = child.ckey
		h.keyChanged(n)
		if child.leaf() {
			n.left = n.right
			n.right = nil
		} else {
			h.sift(child)
		}
	}
}

// combine merges two equal-rank trees into one of the next rank. List sizes
// stay at 1 up to the rank threshold and then grow by 1.5x per rank, which is
// what bounds the corrupted fraction to the configured error rate.
func (h *Heap[K, V]) combine(a, b *Node[K, V]) *Node[K, V] {
	n := &Node[K, V]{left: a, right: b, rank: a.rank + 1, size: 1, ckey: a.ckey}
	if n.rank > h.r {
		n.size = (a.size*3 + 1) / 2
	}
	h.sift(n)
	return n
}
