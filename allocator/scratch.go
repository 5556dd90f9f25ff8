package allocator

import (
	"encoding/binary"
	"unsafe"
)

// scratchHeaderSize is the size in bytes of the inline allocation header
// that precedes every Scratch payload.
const scratchHeaderSize = 8

// scratchHighBit marks a header's size field as "free" (spec.md §3/§4.1).
const scratchHighBit = uint64(1) << 63

// Scratch is a ring-buffer allocator allowing out-of-order free (each
// allocation is marked free independently) while reclaiming space only in
// FIFO order, by advancing freeCursor over contiguous free headers
// (spec.md §3 "Scratch ring", §4.1).
type Scratch struct {
	buf         []byte
	allocCursor int
	freeCursor  int
	// headerOf maps a live payload's address to the offset of its inline
	// header, recovering the information the C version gets "for free"
	// from pointer arithmetic (header = data - sizeof(header), adjusted
	// for alignment padding).
	headerOf map[uintptr]int
}

// NewScratch initializes a scratch ring over buf.
func NewScratch(buf []byte) *Scratch {
	return &Scratch{buf: buf, headerOf: make(map[uintptr]int)}
}

func addrOf(b []byte) uintptr {
	if len(b) == 0 {
		return 0
	}
	return uintptr(unsafe.Pointer(&b[0]))
}

func (s *Scratch) readHeader(off int) uint64 {
	return binary.LittleEndian.Uint64(s.buf[off : off+scratchHeaderSize])
}

func (s *Scratch) writeHeader(off int, size uint64) {
	binary.LittleEndian.PutUint64(s.buf[off:off+scratchHeaderSize], size)
}

// Alloc advances allocCursor past a header and the payload (size rounded
// up to a 4-byte multiple). If the allocation would cross the buffer end,
// a wrap marker is stamped and the cursor restarts at offset 0 -- but only
// if that region isn't still in use by a pending free.
func (s *Scratch) Alloc(size int, align int, flags Flag) []byte {
	align = normalizeAlign(align)
	if align%4 != 0 {
		panic("allocator: scratch alignment must be a multiple of 4")
	}
	size = ((size + 3) / 4) * 4

	pt := s.allocCursor
	dataStart := AlignForward(pt+scratchHeaderSize, align)
	end := len(s.buf)
	newPt := dataStart + size

	// Both branches keep allocCursor at least scratchHeaderSize bytes short
	// of the end, so a later wrap marker always fits before the buffer end.
	if newPt+scratchHeaderSize > end {
		// The wrap target [0, newPt) must not overlap the still-live span
		// [freeCursor, allocCursor): wrapping there would hand out memory a
		// pending free still owns.
		wrapStart := 0
		wrapDataStart := AlignForward(wrapStart+scratchHeaderSize, align)
		wrapEnd := wrapDataStart + size
		if wrapEnd+scratchHeaderSize > end || s.liveSpanOverlaps(wrapStart, wrapEnd) {
			return nil
		}

		// Stamp a wrap marker consuming the remainder of the buffer, then
		// restart at the beginning.
		remaining := uint64(end-pt) | scratchHighBit
		s.writeHeader(pt, remaining)
		pt = wrapStart
		dataStart = wrapDataStart
		newPt = wrapEnd
	}

	s.writeHeader(pt, uint64(newPt-pt))
	s.allocCursor = newPt
	out := s.buf[dataStart : dataStart+size : dataStart+size]
	s.headerOf[addrOf(out)] = pt
	return zeroIfRequested(out, flags)
}

// liveSpanOverlaps reports whether [start, end) intersects the ring's
// currently-live (allocated, not yet fully freed) span.
func (s *Scratch) liveSpanOverlaps(start, end int) bool {
	if s.freeCursor == s.allocCursor {
		return false
	}
	if s.allocCursor > s.freeCursor {
		return start < s.allocCursor && end > s.freeCursor
	}
	// Live span wraps around the buffer end.
	return start < s.allocCursor || end > s.freeCursor
}

// Free marks ptr's header as free, then reclaims any now-contiguous run of
// free headers starting at freeCursor, advancing freeCursor past them
// (wrapping at the buffer end) until it meets allocCursor or hits a header
// that is still live.
func (s *Scratch) Free(ptr []byte) {
	if ptr == nil {
		return
	}
	headerOff, ok := s.headerOf[addrOf(ptr)]
	if !ok {
		panic("allocator: scratch free of unrecognised pointer")
	}
	delete(s.headerOf, addrOf(ptr))

	h := s.readHeader(headerOff)
	if h&scratchHighBit != 0 {
		panic("allocator: scratch double free")
	}
	s.writeHeader(headerOff, h|scratchHighBit)

	for s.freeCursor != s.allocCursor {
		header := s.readHeader(s.freeCursor)
		if header&scratchHighBit == 0 {
			break
		}
		step := int(header &^ scratchHighBit)
		s.freeCursor += step
		if s.freeCursor == len(s.buf) {
			s.freeCursor = 0
		}
	}
}

// FreeAll collapses both cursors to the start of the ring.
func (s *Scratch) FreeAll() {
	s.allocCursor = 0
	s.freeCursor = 0
	s.headerOf = make(map[uintptr]int)
}

// Resize falls back to DefaultResizeAlign (no in-place extension: the ring
// discipline only ever grows forward).
func (s *Scratch) Resize(ptr []byte, newSize int, align int, flags Flag) []byte {
	return DefaultResizeAlign(s, ptr, newSize, align, flags)
}
