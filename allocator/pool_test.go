package allocator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoolAllocFreeRoundTrip(t *testing.T) {
	p := NewPool(NewHeap(), 4, 16, 8)
	assert.Equal(t, 4, p.NumBlocks())

	blocks := make([][]byte, 0, 4)
	for i := 0; i < 4; i++ {
		b := p.Alloc(16, 8, 0)
		require.NotNil(t, b)
		blocks = append(blocks, b)
	}
	assert.Nil(t, p.Alloc(16, 8, 0), "pool should be exhausted")

	p.Free(blocks[2])
	reused := p.Alloc(16, 8, 0)
	assert.NotNil(t, reused)
}

func TestPoolFreeAllRebuildsFreeList(t *testing.T) {
	p := NewPool(NewHeap(), 2, 8, 8)
	p.Alloc(8, 8, 0)
	p.Alloc(8, 8, 0)
	assert.Nil(t, p.Alloc(8, 8, 0))

	p.FreeAll()
	assert.EqualValues(t, 0, p.UsedSize())
	assert.NotNil(t, p.Alloc(8, 8, 0))
}

func TestPoolAllocSizeMismatchPanics(t *testing.T) {
	p := NewPool(NewHeap(), 2, 16, 8)
	assert.Panics(t, func() { p.Alloc(32, 8, 0) }, "oversize request")
	assert.Panics(t, func() { p.Alloc(8, 8, 0) }, "undersize request")
}

func TestPoolResizeUnsupported(t *testing.T) {
	p := NewPool(NewHeap(), 2, 16, 8)
	assert.Panics(t, func() { p.Resize(nil, 16, 8, 0) })
}
