// Package json5 implements a tokenless recursive-descent parser and a
// format-preserving printer over adt.Node trees (spec.md §4.3).
package json5

import (
	"github.com/Ed94/zpl-sub000/internal/xerrors"
	"github.com/Ed94/zpl-sub000/zlog"
)

// ErrKind enumerates the JSON5 domain's error kinds (spec.md §7).
type ErrKind int

const (
	ErrNone ErrKind = iota
	ErrInternal
	ErrInvalidName
	ErrInvalidValue
	ErrInvalidAssignment
	ErrUnknownKeyword
	ErrArrayLeftOpen
	ErrObjectEndPairMismatched
	ErrOutOfMemory
)

func (k ErrKind) String() string {
	switch k {
	case ErrNone:
		return "NONE"
	case ErrInternal:
		return "INTERNAL"
	case ErrInvalidName:
		return "INVALID_NAME"
	case ErrInvalidValue:
		return "INVALID_VALUE"
	case ErrInvalidAssignment:
		return "INVALID_ASSIGNMENT"
	case ErrUnknownKeyword:
		return "UNKNOWN_KEYWORD"
	case ErrArrayLeftOpen:
		return "ARRAY_LEFT_OPEN"
	case ErrObjectEndPairMismatched:
		return "OBJECT_END_PAIR_MISMATCHED"
	case ErrOutOfMemory:
		return "OUT_OF_MEMORY"
	default:
		return "UNKNOWN"
	}
}

func newErr(kind ErrKind, op string) *xerrors.Error {
	err := xerrors.New(xerrors.DomainJSON5, kind, op, nil)
	zlog.Warn("json5", "parse error", map[string]any{"op": op, "kind": kind.String()})
	return err
}
