package linkptr

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/solopkg/linkptr/offheap"
)

// obuf lives in an offheap slot and frees it when its last owner lets go.
type obuf struct {
	pool  *offheap.Pool[obuf]
	value int
}

func (b *obuf) Dispose() { b.pool.Free(b) }

func TestOffheapBackedResource(t *testing.T) {
	var pool offheap.Pool[obuf]
	assert.NoError(t, pool.Init(-1))
	defer pool.Close()

	b, err := pool.Alloc()
	assert.NoError(t, err)
	b.pool = &pool
	b.value = 42

	h1 := New(b)
	h2 := h1.Clone()

	h1.Release()
	assert.Equal(t, int32(1), pool.Active())
	assert.Equal(t, 42, h2.Get().value)

	h2.Release()
	assert.Equal(t, int32(0), pool.Active())

	again, err := pool.Alloc()
	assert.NoError(t, err)
	if again != b {
		t.Fatalf("slot not recycled after last owner reset: got %p want %p", again, b)
	}
}

func TestOffheapSharedAcrossResets(t *testing.T) {
	var pool offheap.Pool[obuf]
	assert.NoError(t, pool.Init(-1))
	defer pool.Close()

	b, _ := pool.Alloc()
	b.pool = &pool

	handles := make([]*Ptr[*obuf], 0, 8)
	h := New(b)
	handles = append(handles, h)
	for i := 0; i < 7; i++ {
		handles = append(handles, h.Clone())
	}

	for i, h := range handles {
		assert.Equal(t, int32(1), pool.Active(), "freed before owner %d reset", i)
		h.Reset()
	}
	assert.Equal(t, int32(0), pool.Active())
}
