package allocator

import "sync/atomic"

// Heap delegates to the Go runtime's allocator. When analysis is enabled
// (via EnableAnalysis), it tracks live byte and allocation counts so that
// CheckStats can assert both are zero, mirroring heap_stats_check in the
// original source.
type Heap struct {
	analysis   atomic.Bool
	liveBytes  atomic.Int64
	liveCount  atomic.Int64
}

// NewHeap returns a Heap allocator. Analysis is off by default.
func NewHeap() *Heap { return &Heap{} }

// EnableAnalysis turns on live-allocation tracking, equivalent to calling
// heap_stats_init in the original.
func (h *Heap) EnableAnalysis() {
	h.analysis.Store(true)
	h.liveBytes.Store(0)
	h.liveCount.Store(0)
}

// UsedMemory returns the number of currently-live bytes tracked.
func (h *Heap) UsedMemory() int64 { return h.liveBytes.Load() }

// AllocCount returns the number of currently-live allocations tracked.
func (h *Heap) AllocCount() int64 { return h.liveCount.Load() }

// CheckStats panics if analysis is enabled and either counter is non-zero,
// mirroring heap_stats_check's assertions.
func (h *Heap) CheckStats() {
	if !h.analysis.Load() {
		return
	}
	if h.liveBytes.Load() != 0 || h.liveCount.Load() != 0 {
		panic("allocator: heap_stats_check: leak detected")
	}
}

func (h *Heap) Alloc(size int, align int, flags Flag) []byte {
	_ = normalizeAlign(align) // Go's allocator already aligns suitably for any byte slice
	if size < 0 {
		return nil
	}
	b := make([]byte, size)
	b = zeroIfRequested(b, flags|FlagClearToZero) // make() already zero-fills; flag is a no-op here
	if h.analysis.Load() {
		h.liveBytes.Add(int64(size))
		h.liveCount.Add(1)
	}
	return b
}

func (h *Heap) Free(ptr []byte) {
	if ptr == nil {
		return
	}
	if h.analysis.Load() {
		h.liveBytes.Add(-int64(len(ptr)))
		h.liveCount.Add(-1)
	}
}

func (h *Heap) FreeAll() {
	unsupported("FreeAll", "Heap tracks individual allocations; use Free per pointer")
}

func (h *Heap) Resize(ptr []byte, newSize int, align int, flags Flag) []byte {
	if ptr == nil {
		return h.Alloc(newSize, align, flags)
	}
	if newSize == 0 {
		h.Free(ptr)
		return nil
	}
	n := h.Alloc(newSize, align, flags)
	if n == nil {
		return nil
	}
	copy(n, ptr)
	h.Free(ptr)
	return n
}
