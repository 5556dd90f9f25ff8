// Package vfile provides a minimal file-stream abstraction (spec.md §6's
// "external collaborator" contract), plus concrete in-memory and OS-file
// implementations (SPEC_FULL.md §4.8). The json5 and csv printers write to
// an io.Writer, not to a Stream.
package vfile

import (
	"io"
	"os"

	"github.com/Ed94/zpl-sub000/internal/xerrors"
	"github.com/Ed94/zpl-sub000/zlog"
)

// Stream is the file-stream vtable: positional read/write, seek and close.
type Stream interface {
	ReadAt(p []byte, off int64) (int, error)
	WriteAt(p []byte, off int64) (int, error)
	Seek(offset int64, whence int) (int64, error)
	Close() error
}

// ReadAtFunc, WriteAtFunc, SeekFunc and CloseFunc are the individual vtable
// slots VTable assembles into a Stream.
type (
	ReadAtFunc  func(p []byte, off int64) (int, error)
	WriteAtFunc func(p []byte, off int64) (int, error)
	SeekFunc    func(offset int64, whence int) (int64, error)
	CloseFunc   func() error
)

// VTable is a caller-assembled set of stream operations, any of which may
// be left nil.
type VTable struct {
	ReadAt  ReadAtFunc
	WriteAt WriteAtFunc
	Seek    SeekFunc
	Close   CloseFunc
}

type vtableStream struct{ v VTable }

func (s *vtableStream) ReadAt(p []byte, off int64) (int, error)         { return s.v.ReadAt(p, off) }
func (s *vtableStream) WriteAt(p []byte, off int64) (int, error)        { return s.v.WriteAt(p, off) }
func (s *vtableStream) Seek(offset int64, whence int) (int64, error) { return s.v.Seek(offset, whence) }
func (s *vtableStream) Close() error                                    { return s.v.Close() }

// FromVTable builds a Stream from v, installing a default implementation on
// any nil slot. The source's analogous check only defaulted a missing
// read_at before installing write_at's default — almost certainly a bug
// (spec.md §9). Here every slot is checked independently.
func FromVTable(v VTable) Stream {
	if v.ReadAt == nil {
		zlog.Warn("vfile", "installing default ReadAt", nil)
		v.ReadAt = defaultReadAt
	}
	if v.WriteAt == nil {
		zlog.Warn("vfile", "installing default WriteAt", nil)
		v.WriteAt = defaultWriteAt
	}
	if v.Seek == nil {
		zlog.Warn("vfile", "installing default Seek", nil)
		v.Seek = defaultSeek
	}
	if v.Close == nil {
		v.Close = defaultClose
	}
	return &vtableStream{v: v}
}

func defaultReadAt(p []byte, off int64) (int, error) {
	return 0, &xerrors.ErrUnsupported{Op: "ReadAt", Reason: "no read_at implementation installed"}
}

func defaultWriteAt(p []byte, off int64) (int, error) {
	return 0, &xerrors.ErrUnsupported{Op: "WriteAt", Reason: "no write_at implementation installed"}
}

func defaultSeek(offset int64, whence int) (int64, error) {
	return 0, &xerrors.ErrUnsupported{Op: "Seek", Reason: "no seek implementation installed"}
}

func defaultClose() error { return nil }

// MemFile is an in-memory Stream that grows on WriteAt past its current
// length, the way an Arena bump-allocates and copies forward.
type MemFile struct {
	buf    []byte
	pos    int64
	closed bool
}

// NewMemFile returns a MemFile seeded with a copy of initial.
func NewMemFile(initial []byte) *MemFile {
	buf := make([]byte, len(initial))
	copy(buf, initial)
	return &MemFile{buf: buf}
}

// Bytes returns the current contents (not a copy; callers must not retain
// it past further writes).
func (f *MemFile) Bytes() []byte { return f.buf }

func (f *MemFile) ReadAt(p []byte, off int64) (int, error) {
	if f.closed {
		return 0, os.ErrClosed
	}
	if off < 0 || off >= int64(len(f.buf)) {
		return 0, io.EOF
	}
	n := copy(p, f.buf[off:])
	if n < len(p) {
		return n, io.EOF
	}
	return n, nil
}

func (f *MemFile) WriteAt(p []byte, off int64) (int, error) {
	if f.closed {
		return 0, os.ErrClosed
	}
	end := off + int64(len(p))
	if end > int64(len(f.buf)) {
		grown := make([]byte, end)
		copy(grown, f.buf)
		f.buf = grown
	}
	copy(f.buf[off:end], p)
	return len(p), nil
}

func (f *MemFile) Seek(offset int64, whence int) (int64, error) {
	var base int64
	switch whence {
	case io.SeekStart:
		base = 0
	case io.SeekCurrent:
		base = f.pos
	case io.SeekEnd:
		base = int64(len(f.buf))
	default:
		return 0, os.ErrInvalid
	}
	next := base + offset
	if next < 0 {
		return 0, os.ErrInvalid
	}
	f.pos = next
	return next, nil
}

func (f *MemFile) Close() error {
	f.closed = true
	return nil
}

// NewOSFile opens path with flag/perm and returns it as a Stream: *os.File
// already implements ReadAt/WriteAt/Seek/Close natively.
func NewOSFile(path string, flag int, perm os.FileMode) (Stream, error) {
	return os.OpenFile(path, flag, perm)
}
