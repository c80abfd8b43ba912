package linkptr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetInsertAndOrder(t *testing.T) {
	s := NewSet[*int]()
	ps := []*Ptr[*int]{newInt(1), newInt(2), newInt(3), newInt(4), newInt(5)}
	for _, p := range ps {
		assert.True(t, s.Insert(p))
	}
	assert.Equal(t, len(ps), s.Len())

	var prev *Ptr[*int]
	n := 0
	s.Ascend(func(p *Ptr[*int]) bool {
		if prev != nil && !prev.Less(p) {
			t.Fatal("ascend order disagrees with address order")
		}
		prev = p
		n++
		return true
	})
	assert.Equal(t, len(ps), n)
}

func TestSetSharedHandlesCollapse(t *testing.T) {
	s := NewSet[*int]()
	p := newInt(1)
	c := p.Clone()

	assert.True(t, s.Insert(p))
	// a clone keys the same object, so the set must not grow
	assert.False(t, s.Insert(c))
	assert.Equal(t, 1, s.Len())
	assert.True(t, s.Has(c))

	assert.True(t, s.Delete(c))
	assert.Equal(t, 0, s.Len())
	assert.False(t, s.Has(p))
}
