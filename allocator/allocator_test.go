package allocator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsPowerOfTwo(t *testing.T) {
	assert.True(t, IsPowerOfTwo(1))
	assert.True(t, IsPowerOfTwo(16))
	assert.False(t, IsPowerOfTwo(0))
	assert.False(t, IsPowerOfTwo(-4))
	assert.False(t, IsPowerOfTwo(12))
}

func TestAlignForward(t *testing.T) {
	assert.Equal(t, 0, AlignForward(0, 8))
	assert.Equal(t, 8, AlignForward(1, 8))
	assert.Equal(t, 16, AlignForward(9, 8))
	assert.Equal(t, 16, AlignForward(16, 8))
}

func TestDefaultResizeAlignNoShrink(t *testing.T) {
	h := NewHeap()
	old := h.Alloc(16, 0, 0)
	same := DefaultResizeAlign(h, old, 4, 0, 0)
	assert.Same(t, &old[0], &same[0], "shrinking should return the same backing array")
}

func TestDefaultResizeAlignGrowCopies(t *testing.T) {
	h := NewHeap()
	old := h.Alloc(4, 0, 0)
	copy(old, "abcd")
	grown := DefaultResizeAlign(h, old, 8, 0, 0)
	assert.Equal(t, "abcd", string(grown[:4]))
}

func TestDefaultResizeAlignFreeOnZero(t *testing.T) {
	h := NewHeap()
	old := h.Alloc(4, 0, 0)
	assert.Nil(t, DefaultResizeAlign(h, old, 0, 0, 0))
}
