package allocator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeapAllocZerosAndTracksWithAnalysis(t *testing.T) {
	h := NewHeap()
	h.EnableAnalysis()

	b := h.Alloc(16, 0, 0)
	require.Len(t, b, 16)
	assert.Equal(t, make([]byte, 16), b)
	assert.EqualValues(t, 16, h.UsedMemory())
	assert.EqualValues(t, 1, h.AllocCount())

	h.Free(b)
	assert.EqualValues(t, 0, h.UsedMemory())
	assert.EqualValues(t, 0, h.AllocCount())
	assert.NotPanics(t, h.CheckStats)
}

func TestHeapCheckStatsPanicsOnLeak(t *testing.T) {
	h := NewHeap()
	h.EnableAnalysis()
	h.Alloc(8, 0, 0)
	assert.Panics(t, h.CheckStats)
}

func TestHeapFreeAllUnsupported(t *testing.T) {
	h := NewHeap()
	assert.Panics(t, h.FreeAll)
}

func TestHeapResizeCopiesContent(t *testing.T) {
	h := NewHeap()
	b := h.Alloc(4, 0, 0)
	copy(b, "abcd")
	grown := h.Resize(b, 8, 0, 0)
	require.Len(t, grown, 8)
	assert.Equal(t, "abcd", string(grown[:4]))
}
