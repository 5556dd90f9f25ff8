package allocator

// Arena is a bump allocator over a backing buffer, with LIFO-nestable
// snapshots (spec.md §3/§4.1).
type Arena struct {
	backing   Allocator // optional; owns buf if non-nil
	buf       []byte
	used      int
	tempCount int
}

// NewArena creates an arena over a caller-supplied buffer (arena_init_from_memory).
func NewArena(buf []byte) *Arena {
	return &Arena{buf: buf}
}

// NewArenaFromAllocator allocates its backing buffer from backing
// (arena_init_from_allocator).
func NewArenaFromAllocator(backing Allocator, size int) *Arena {
	buf := backing.Alloc(size, 0, 0)
	return &Arena{backing: backing, buf: buf}
}

// Used reports bytes currently in use.
func (a *Arena) Used() int { return a.used }

// TotalSize reports the arena's total capacity.
func (a *Arena) TotalSize() int { return len(a.buf) }

// Release returns the backing buffer to its backing allocator, if any.
func (a *Arena) Release() {
	if a.backing != nil {
		a.backing.Free(a.buf)
		a.buf = nil
	}
}

func (a *Arena) Alloc(size int, align int, flags Flag) []byte {
	align = normalizeAlign(align)
	start := AlignForward(a.used, align)
	end := start + size
	if end > len(a.buf) {
		return nil
	}
	a.used = end
	out := a.buf[start:end:end]
	return zeroIfRequested(out, flags)
}

// Free is a no-op: arenas only release memory via FreeAll or a Snapshot.
func (a *Arena) Free(ptr []byte) {}

// FreeAll resets used to 0. Panics if any Snapshot is still open, matching
// the arena_check / temp_count invariant of spec.md §3.
func (a *Arena) FreeAll() {
	if a.tempCount != 0 {
		panic("allocator: arena FreeAll called with open snapshot(s)")
	}
	a.used = 0
}

// Resize extends ptr in place if it is the most recent (top-of-arena)
// allocation; otherwise falls back to DefaultResizeAlign.
func (a *Arena) Resize(ptr []byte, newSize int, align int, flags Flag) []byte {
	if ptr == nil {
		return a.Alloc(newSize, align, flags)
	}
	if newSize == 0 {
		return nil
	}
	// Detect "top of arena": ptr's end equals the current used cursor, and
	// ptr is addressed within a.buf at that position.
	start := a.used - len(ptr)
	if start >= 0 && start+len(ptr) == a.used && start+len(ptr) <= len(a.buf) && samePosition(a.buf, ptr, start) {
		end := start + newSize
		if end <= len(a.buf) {
			a.used = end
			return a.buf[start:end:end]
		}
	}
	return DefaultResizeAlign(a, ptr, newSize, align, flags)
}

// samePosition reports whether ptr is exactly the sub-slice buf[start:start+len(ptr)].
func samePosition(buf, ptr []byte, start int) bool {
	if len(ptr) == 0 {
		return true
	}
	if start < 0 || start+len(ptr) > len(buf) {
		return false
	}
	return &buf[start] == &ptr[0]
}

// Snapshot is a saved Arena.used value that can later be restored, always
// in LIFO order relative to other open snapshots on the same Arena.
type Snapshot struct {
	arena        *Arena
	usedAtBegin  int
	depth        int
	ended        bool
}

// Begin captures the arena's current used offset and increments its
// temp_count, blocking FreeAll until every open snapshot Ends.
func (a *Arena) Begin() *Snapshot {
	a.tempCount++
	return &Snapshot{arena: a, usedAtBegin: a.used, depth: a.tempCount}
}

// End restores the arena to the snapshot's used offset. Panics if called
// out of LIFO order (i.e. a is not currently at a point consistent with
// this being the most recently opened, unended snapshot) or twice.
func (s *Snapshot) End() {
	if s.ended {
		panic("allocator: snapshot ended twice")
	}
	if s.arena.tempCount <= 0 {
		panic("allocator: snapshot end with no open snapshots (LIFO violation)")
	}
	if s.depth != s.arena.tempCount {
		panic("allocator: snapshot ended out of LIFO order")
	}
	s.arena.used = s.usedAtBegin
	s.arena.tempCount--
	s.ended = true
}
