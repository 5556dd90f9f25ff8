package allocator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStackLIFOFree(t *testing.T) {
	s := NewStack(make([]byte, 128))

	a := s.Alloc(16, 8, 0)
	require.NotNil(t, a)
	b := s.Alloc(16, 8, 0)
	require.NotNil(t, b)

	s.Free(b)
	c := s.Alloc(16, 8, 0)
	require.NotNil(t, c)

	s.Free(c)
	s.Free(a)
}

func TestStackFreeAllResets(t *testing.T) {
	s := NewStack(make([]byte, 64))
	s.Alloc(16, 8, 0)
	s.Alloc(16, 8, 0)
	s.FreeAll()
	assert.NotNil(t, s.Alloc(64-2*stackRecordSize, 8, 0))
}

func TestStackGrowsViaBackingAllocator(t *testing.T) {
	s := NewStackWithBacking(NewHeap(), 16)
	a := s.Alloc(8, 8, 0)
	require.NotNil(t, a)
	b := s.Alloc(64, 8, 0)
	require.NotNil(t, b, "stack should grow past its initial backing size")
}

func TestStackResizeUnsupported(t *testing.T) {
	s := NewStack(make([]byte, 64))
	a := s.Alloc(8, 8, 0)
	assert.Panics(t, func() { s.Resize(a, 16, 8, 0) })
}

// TestStackFreeForeignPointerPanics exercises spec.md §7: freeing memory the
// stack never allocated is a fatal programmer error, not silent corruption
// of `used` from whatever bytes happen to precede the pointer.
func TestStackFreeForeignPointerPanics(t *testing.T) {
	s := NewStack(make([]byte, 64))
	s.Alloc(8, 8, 0)

	foreign := make([]byte, 8)
	assert.Panics(t, func() { s.Free(foreign) })

	other := NewStack(make([]byte, 64))
	b := other.Alloc(8, 8, 0)
	assert.Panics(t, func() { s.Free(b) })
}
