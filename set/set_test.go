package set_test

import (
	"slices"
	"testing"

	"github.com/ddirect/softheap/set"
	"github.com/stretchr/testify/assert"
)

func Test_Basic(t *testing.T) {
	s := set.New(1, 2, 3)
	assert.Equal(t, 3, s.Len())
	assert.True(t, s.Exists(2))
	assert.False(t, s.Exists(4))

	s.Insert(4)
	s.Delete(2)
	assert.Equal(t, 3, s.Len())
	assert.False(t, s.Exists(2))

	got := slices.Sorted(s.Values())
	assert.Equal(t, []int{1, 3, 4}, got)
}

func Test_CollectEqual(t *testing.T) {
	s := set.Collect(slices.Values([]string{"a", "b", "a"}))
	assert.Equal(t, 2, s.Len())
	assert.True(t, s.Equal(set.New("b", "a")))
	assert.False(t, s.Equal(set.New("b", "c")))
	assert.False(t, s.Equal(set.New("a")))
}
