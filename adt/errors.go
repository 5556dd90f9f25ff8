package adt

import (
	"github.com/Ed94/zpl-sub000/internal/xerrors"
	"github.com/Ed94/zpl-sub000/zlog"
)

// ErrKind enumerates the ADT domain's error kinds (spec.md §7).
type ErrKind int

const (
	ErrNone ErrKind = iota
	ErrInternal
	ErrAlreadyConverted
	ErrInvalidType
	ErrOutOfMemory
)

func (k ErrKind) String() string {
	switch k {
	case ErrNone:
		return "NONE"
	case ErrInternal:
		return "INTERNAL"
	case ErrAlreadyConverted:
		return "ALREADY_CONVERTED"
	case ErrInvalidType:
		return "INVALID_TYPE"
	case ErrOutOfMemory:
		return "OUT_OF_MEMORY"
	default:
		return "UNKNOWN"
	}
}

func newErr(kind ErrKind, op string, cause error) *xerrors.Error {
	err := xerrors.New(xerrors.DomainADT, kind, op, cause)
	if kind == ErrOutOfMemory {
		zlog.Error("adt", "allocator exhausted", err, map[string]any{"op": op})
	}
	return err
}
