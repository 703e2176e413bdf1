package forest_test

import (
	"testing"

	"github.com/ddirect/softheap/internal/forest"
	"github.com/stretchr/testify/assert"
)

type int32B int32

func (a int32B) Before(b int32B) bool {
	return a < b
}

func ranks(l *forest.List[int32B, int]) (r []int) {
	for it := range l.Values() {
		r = append(r, it.Rank())
	}
	return
}

func Test_AppendAndMin(t *testing.T) {
	var l forest.List[int32B, int]
	assert.Nil(t, l.Min())

	a := l.Append(0, 5, 100)
	b := l.Append(1, 3, 101)
	c := l.Append(3, 7, 102)

	assert.Equal(t, 3, l.Len())
	assert.True(t, a.Present())
	assert.True(t, b.Present())
	assert.True(t, c.Present())
	assert.Equal(t, []int{0, 1, 3}, ranks(&l))

	assert.Equal(t, b, l.Min())
	assert.Equal(t, 101, *l.Min().Value())
	assert.Equal(t, b, a.SuffixMin())
	assert.Equal(t, c, c.SuffixMin())
}

func Test_AppendOutOfOrder(t *testing.T) {
	var l forest.List[int32B, int]
	l.Append(2, 1, 0)
	assert.Panics(t, func() { l.Append(2, 1, 1) })
	assert.Panics(t, func() { l.Append(1, 1, 2) })
}

func Test_MergePlacesIncomingFirst(t *testing.T) {
	var l, o forest.List[int32B, int]
	l.Append(0, 4, 10)
	l.Append(2, 2, 12)
	l.Append(3, 9, 13)
	o.Append(1, 5, 21)
	o.Append(3, 1, 23)

	from := l.Merge(&o)
	assert.Equal(t, 1, from)
	assert.Equal(t, 0, o.Len())
	assert.Equal(t, []int{0, 1, 2, 3, 3}, ranks(&l))

	// the spliced rank 3 entry sits before the existing one
	assert.Equal(t, 23, *l.At(3).Value())
	assert.Equal(t, 13, *l.At(4).Value())
	assert.Equal(t, 3, l.Index(l.At(3)))

	l.UpdateSuffixMin(l.Len() - 1)
	assert.Equal(t, 23, *l.Min().Value())
}

func Test_MergeEmpty(t *testing.T) {
	var l, o forest.List[int32B, int]
	l.Append(0, 1, 0)
	assert.Equal(t, 1, l.Merge(&o))
	assert.Equal(t, 1, l.Len())

	var e forest.List[int32B, int]
	assert.Equal(t, 0, e.Merge(&l))
	assert.Equal(t, 1, e.Len())
	assert.Equal(t, 0, l.Len())
}

func Test_Fuse(t *testing.T) {
	var l, o forest.List[int32B, int]
	a := l.Append(1, 4, 10)
	l.Append(2, 6, 11)
	b := o.Append(1, 3, 20)
	l.Merge(&o)
	assert.Equal(t, []int{1, 1, 2}, ranks(&l))

	it := l.Fuse(0, 2, 3, 30)
	assert.Equal(t, []int{2, 2}, ranks(&l))
	assert.Equal(t, it, l.At(0))
	assert.False(t, a.Present())
	assert.False(t, b.Present())
	assert.True(t, it.Present())
	assert.Equal(t, 1, l.Index(l.At(1)))

	l.UpdateSuffixMin(l.Len() - 1)
	assert.Equal(t, 30, *l.Min().Value())
}

func Test_RemoveTwice(t *testing.T) {
	var l forest.List[int32B, int]
	a := l.Append(0, 1, 0)
	b := l.Append(1, 2, 1)

	assert.Equal(t, 0, l.Remove(a))
	assert.False(t, a.Present())
	assert.Equal(t, 0, l.Index(b))
	assert.Panics(t, func() { l.Remove(a) })
}

func Test_SuffixMinTieLaterWins(t *testing.T) {
	var l forest.List[int32B, int]
	l.Append(0, 5, 0)
	later := l.Append(1, 5, 1)
	assert.Equal(t, later, l.Min())
}

func Test_SetKey(t *testing.T) {
	var l forest.List[int32B, int]
	a := l.Append(0, 2, 0)
	b := l.Append(1, 5, 1)
	assert.Equal(t, a, l.Min())

	l.SetKey(a, 9)
	l.UpdateSuffixMin(l.Index(a))
	assert.Equal(t, b, l.Min())
	assert.Equal(t, int32B(9), a.Key())
}
