package allocator

import (
	"encoding/binary"
	"unsafe"
)

// Pool is a fixed-size-block free-list allocator. Free blocks form an
// intrusive singly-linked list: the first machine word of each free block
// holds the byte offset of the next free block (or poolListEnd), exactly
// as spec.md §3 describes for the C version's raw pointers, just
// expressed as indices into the backing buffer instead of pointers.
type Pool struct {
	backing    Allocator
	buf        []byte
	freeHead   int // offset into buf, or poolListEnd
	blockSize  int
	blockAlign int
	numBlocks  int
	usedSize   int
}

const poolListEnd = -1

// NewPool initializes a pool of numBlocks blocks of blockSize bytes each,
// aligned to blockAlign (pool_init_align). blockSize must be at least 8
// (one machine word) to hold the intrusive free-list pointer.
func NewPool(backing Allocator, numBlocks, blockSize, blockAlign int) *Pool {
	if blockSize < 8 {
		panic("allocator: pool block_size must be >= 8 bytes")
	}
	alignedBlockSize := AlignForward(blockSize, blockAlign)
	totalSize := numBlocks * alignedBlockSize
	buf := backing.Alloc(totalSize, blockAlign, 0)
	p := &Pool{
		backing:    backing,
		buf:        buf,
		blockSize:  alignedBlockSize,
		blockAlign: blockAlign,
		numBlocks:  numBlocks,
	}
	p.rebuildFreeList()
	return p
}

func (p *Pool) rebuildFreeList() {
	for i := 0; i < p.numBlocks; i++ {
		off := i * p.blockSize
		next := off + p.blockSize
		if i == p.numBlocks-1 {
			next = poolListEnd
		}
		binary.LittleEndian.PutUint64(p.buf[off:off+8], uint64(int64(next)))
	}
	p.freeHead = 0
	p.usedSize = 0
}

// Release returns the pool's backing buffer to its backing allocator.
func (p *Pool) Release() {
	p.backing.Free(p.buf)
	p.buf = nil
}

// Alloc pops the free list. size must equal blockSize and align must equal
// blockAlign, or Alloc panics (pool size/alignment mismatch is a
// programmer error per spec.md §7).
func (p *Pool) Alloc(size int, align int, flags Flag) []byte {
	if size != p.blockSize {
		panic("allocator: pool alloc size must equal block_size")
	}
	if align != 0 && align != p.blockAlign {
		panic("allocator: pool alloc alignment mismatch")
	}
	if p.freeHead == poolListEnd {
		return nil
	}
	off := p.freeHead
	p.freeHead = int(int64(binary.LittleEndian.Uint64(p.buf[off : off+8])))
	p.usedSize += p.blockSize
	out := p.buf[off : off+p.blockSize : off+p.blockSize]
	return zeroIfRequested(out, flags)
}

// Free pushes ptr back onto the free list.
func (p *Pool) Free(ptr []byte) {
	if ptr == nil {
		return
	}
	off := p.offsetOf(ptr)
	binary.LittleEndian.PutUint64(p.buf[off:off+8], uint64(int64(p.freeHead)))
	p.freeHead = off
	p.usedSize -= p.blockSize
}

func (p *Pool) offsetOf(ptr []byte) int {
	base := uintptr(unsafe.Pointer(&p.buf[0]))
	cur := uintptr(unsafe.Pointer(&ptr[0]))
	return int(cur - base)
}

// FreeAll rebuilds the intrusive free list over the entire region.
func (p *Pool) FreeAll() { p.rebuildFreeList() }

// Resize is forbidden for Pool (every block is a fixed size).
func (p *Pool) Resize(ptr []byte, newSize int, align int, flags Flag) []byte {
	unsupported("Resize", "Pool blocks are fixed-size; resize is not supported")
	return nil
}

// UsedSize reports bytes currently checked out.
func (p *Pool) UsedSize() int { return p.usedSize }

// NumBlocks reports the pool's total block capacity.
func (p *Pool) NumBlocks() int { return p.numBlocks }
