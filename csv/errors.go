// Package csv implements a delimiter-parameterised table parser/printer
// over adt.Node trees: the root is an ARRAY of columns, each column an
// ARRAY of row values (spec.md §4.4).
package csv

import (
	"github.com/Ed94/zpl-sub000/internal/xerrors"
	"github.com/Ed94/zpl-sub000/zlog"
)

// ErrKind enumerates the CSV domain's error kinds (spec.md §7).
type ErrKind int

const (
	ErrNone ErrKind = iota
	ErrInternal
	ErrUnexpectedEndOfInput
	ErrMismatchedRows
)

func (k ErrKind) String() string {
	switch k {
	case ErrNone:
		return "NONE"
	case ErrInternal:
		return "INTERNAL"
	case ErrUnexpectedEndOfInput:
		return "UNEXPECTED_END_OF_INPUT"
	case ErrMismatchedRows:
		return "MISMATCHED_ROWS"
	default:
		return "UNKNOWN"
	}
}

func newErr(kind ErrKind, op string) *xerrors.Error {
	err := xerrors.New(xerrors.DomainCSV, kind, op, nil)
	zlog.Warn("csv", "parse error", map[string]any{"op": op, "kind": kind.String()})
	return err
}
