// Package allocator provides the polymorphic allocation interface threaded
// through every other package in this module, plus its concrete
// implementations (Heap, Arena, Pool, Scratch, Stack).
//
// Unlike the C original, a Go []byte already carries its own length, so
// Free and Resize recover old_size from the slice header rather than
// requiring callers to pass it alongside the pointer.
package allocator

import "github.com/Ed94/zpl-sub000/internal/xerrors"

// Op identifies the operation requested of an Allocator.
type Op uint8

const (
	OpAlloc Op = iota
	OpFree
	OpFreeAll
	OpResize
)

// Flag is a bitset of allocation request modifiers.
type Flag uint32

// FlagClearToZero requests the returned region be zero-filled.
const FlagClearToZero Flag = 1 << 0

// DefaultAlignment is 2*word size, matching ZPL_DEFAULT_MEMORY_ALIGNMENT.
const DefaultAlignment = 2 * 8

// Allocator is the capability-set every allocation-aware package depends on.
// Implementations: Heap, Arena, Pool, Scratch, Stack.
type Allocator interface {
	// Alloc returns a zero-length-safe slice of size bytes aligned to align
	// (0 means DefaultAlignment), or nil if the request cannot be satisfied.
	Alloc(size int, align int, flags Flag) []byte
	// Free releases ptr. A nil ptr is a no-op.
	Free(ptr []byte)
	// FreeAll releases every outstanding allocation at once. Panics with
	// *xerrors.ErrUnsupported if the allocator doesn't support bulk free.
	FreeAll()
	// Resize changes ptr's size, per the semantics of DefaultResizeAlign.
	Resize(ptr []byte, newSize int, align int, flags Flag) []byte
}

// IsPowerOfTwo reports whether n is a positive power of two.
func IsPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// AlignForward rounds ptr up to the next multiple of align (must be a power of two).
func AlignForward(ptr, align int) int {
	if !IsPowerOfTwo(align) {
		panic("allocator: alignment must be a power of two")
	}
	mod := ptr & (align - 1)
	if mod != 0 {
		ptr += align - mod
	}
	return ptr
}

func normalizeAlign(align int) int {
	if align <= 0 {
		return DefaultAlignment
	}
	return align
}

func zeroIfRequested(b []byte, flags Flag) []byte {
	if flags&FlagClearToZero != 0 {
		for i := range b {
			b[i] = 0
		}
	}
	return b
}

// DefaultResizeAlign implements the fallback resize algorithm of spec.md
// §4.1: nil old -> alloc; new==0 -> free; new<=len(old) -> return old
// in place (mirroring the C "new_size < old_size -> new_size = old_size"
// no-shrink rule); otherwise alloc+copy+free.
func DefaultResizeAlign(a Allocator, old []byte, newSize, align int, flags Flag) []byte {
	if old == nil {
		return a.Alloc(newSize, align, flags)
	}
	if newSize == 0 {
		a.Free(old)
		return nil
	}
	oldSize := len(old)
	if newSize <= oldSize {
		return old
	}
	n := a.Alloc(newSize, align, flags)
	if n == nil {
		return nil
	}
	copy(n, old)
	a.Free(old)
	return n
}

func unsupported(op, reason string) {
	panic(&xerrors.ErrUnsupported{Op: op, Reason: reason})
}
