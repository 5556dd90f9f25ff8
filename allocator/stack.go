package allocator

import "encoding/binary"

// stackRecordSize is the size of the inline "previous used offset" record
// that precedes every Stack allocation.
const stackRecordSize = 8

// Stack is a LIFO bump allocator: each allocation prefixes a record
// holding the previous `used` value, so Free can rewind to it in O(1)
// (spec.md §3/§4.1).
type Stack struct {
	backing Allocator // optional; grows buf via Resize when capacity is exceeded
	buf     []byte
	used    int
}

// NewStack initializes a stack allocator over a fixed buffer (no growth).
func NewStack(buf []byte) *Stack {
	return &Stack{buf: buf}
}

// NewStackWithBacking initializes a stack allocator that grows its backing
// buffer via backing.Resize when a request exceeds current capacity.
func NewStackWithBacking(backing Allocator, size int) *Stack {
	buf := backing.Alloc(size, 0, 0)
	return &Stack{backing: backing, buf: buf}
}

func (s *Stack) Alloc(size int, align int, flags Flag) []byte {
	align = normalizeAlign(align)
	total := size + stackRecordSize
	start := AlignForward(s.used, align)

	if start+total > len(s.buf) {
		if s.backing == nil {
			return nil
		}
		grown := s.backing.Resize(s.buf, len(s.buf)+total, align, 0)
		if grown == nil {
			return nil
		}
		s.buf = grown
		start = AlignForward(s.used, align)
		if start+total > len(s.buf) {
			return nil
		}
	}

	prevUsed := s.used
	binary.LittleEndian.PutUint64(s.buf[start:start+stackRecordSize], uint64(prevUsed))
	dataStart := start + stackRecordSize
	dataEnd := dataStart + size
	s.used = dataEnd
	out := s.buf[dataStart:dataEnd:dataEnd]
	return zeroIfRequested(out, flags)
}

// Free rewinds `used` to the offset recorded when ptr was allocated. Freeing
// memory not owned by this stack is a fatal programmer error (spec.md §7).
func (s *Stack) Free(ptr []byte) {
	if ptr == nil {
		return
	}
	if !s.owns(ptr) {
		panic("allocator: stack free of pointer not owned by this allocator")
	}
	dataStart := offsetWithin(s.buf, ptr)
	recordStart := dataStart - stackRecordSize
	prevUsed := binary.LittleEndian.Uint64(s.buf[recordStart : recordStart+stackRecordSize])
	s.used = int(prevUsed)
}

// FreeAll zeros the used cursor.
func (s *Stack) FreeAll() { s.used = 0 }

// Resize is forbidden for Stack.
func (s *Stack) Resize(ptr []byte, newSize int, align int, flags Flag) []byte {
	unsupported("Resize", "Stack allocations cannot be resized in place")
	return nil
}

func offsetWithin(buf, ptr []byte) int {
	if len(ptr) == 0 {
		return len(buf)
	}
	return int(addrOf(ptr) - addrOf(buf))
}

// owns reports whether ptr's backing address falls within [buf, buf+len(buf)),
// guarding Free against pointers this stack never allocated. A zero-length
// ptr carries no address to check (addrOf returns 0 for it) and is handled
// separately by offsetWithin, so it is always considered owned here.
func (s *Stack) owns(ptr []byte) bool {
	if len(ptr) == 0 {
		return true
	}
	if len(s.buf) == 0 {
		return false
	}
	base := addrOf(s.buf)
	end := base + uintptr(len(s.buf))
	p := addrOf(ptr)
	return p >= base && p < end
}
