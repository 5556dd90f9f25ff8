package allocator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArenaBumpAllocAndFreeAll(t *testing.T) {
	a := NewArena(make([]byte, 64))
	b1 := a.Alloc(16, 0, 0)
	require.NotNil(t, b1)
	assert.Equal(t, 16, a.Used())

	b2 := a.Alloc(16, 0, 0)
	require.NotNil(t, b2)
	assert.Equal(t, 32, a.Used())

	a.FreeAll()
	assert.Equal(t, 0, a.Used())
}

func TestArenaAllocReturnsNilWhenExhausted(t *testing.T) {
	a := NewArena(make([]byte, 8))
	assert.NotNil(t, a.Alloc(8, 1, 0))
	assert.Nil(t, a.Alloc(1, 1, 0))
}

// TestArenaSnapshotNestingS5 is spec.md scenario S5: allocate 100, begin
// snap_a, allocate 200, begin snap_b, allocate 400, end snap_b, end snap_a
// -> used returns to 100.
func TestArenaSnapshotNestingS5(t *testing.T) {
	a := NewArena(make([]byte, 1000))

	require.NotNil(t, a.Alloc(100, 1, 0))
	assert.Equal(t, 100, a.Used())

	snapA := a.Begin()
	require.NotNil(t, a.Alloc(200, 1, 0))
	assert.Equal(t, 300, a.Used())

	snapB := a.Begin()
	require.NotNil(t, a.Alloc(400, 1, 0))
	assert.Equal(t, 700, a.Used())

	snapB.End()
	assert.Equal(t, 300, a.Used())

	snapA.End()
	assert.Equal(t, 100, a.Used())
}

func TestArenaFreeAllPanicsWithOpenSnapshot(t *testing.T) {
	a := NewArena(make([]byte, 64))
	a.Begin()
	assert.Panics(t, a.FreeAll)
}

func TestArenaSnapshotEndTwicePanics(t *testing.T) {
	a := NewArena(make([]byte, 64))
	s := a.Begin()
	s.End()
	assert.Panics(t, s.End)
}

func TestArenaResizeExtendsTopOfArenaInPlace(t *testing.T) {
	a := NewArena(make([]byte, 64))
	b := a.Alloc(8, 1, 0)
	copy(b, "abcdefgh")

	grown := a.Resize(b, 16, 1, 0)
	require.Len(t, grown, 16)
	assert.Equal(t, "abcdefgh", string(grown[:8]))
	assert.Equal(t, 16, a.Used())
}
