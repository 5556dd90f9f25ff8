// Package adt implements the tagged-tree data model underlying the json5
// and csv front-ends: nodes carry formatting metadata (quote style,
// assignment character, delimiter, numeric parse form) that the printers
// use to reproduce the parsed form. Whitespace layout and comments are not
// recorded, so a re-printed tree matches the original bytes only where the
// input already used the printers' own spacing.
package adt

import "github.com/Ed94/zpl-sub000/allocator"

// Kind tags what a Node holds.
type Kind uint8

const (
	KindUninitialized Kind = iota
	KindArray
	KindObject
	KindString
	KindMultistring
	KindInteger
	KindReal
)

func (k Kind) String() string {
	switch k {
	case KindArray:
		return "ARRAY"
	case KindObject:
		return "OBJECT"
	case KindString:
		return "STRING"
	case KindMultistring:
		return "MULTISTRING"
	case KindInteger:
		return "INTEGER"
	case KindReal:
		return "REAL"
	default:
		return "UNINITIALISED"
	}
}

// Props is a bitset of node properties affecting number/sentinel printing.
type Props uint16

const (
	PropNone Props = 0

	PropNaN         Props = 1 << 0
	PropNaNNeg      Props = 1 << 1
	PropInfinity    Props = 1 << 2
	PropInfinityNeg Props = 1 << 3
	PropFalse       Props = 1 << 4
	PropTrue        Props = 1 << 5
	PropNull        Props = 1 << 6

	PropIsExp        Props = 1 << 7
	PropIsHex        Props = 1 << 8
	PropIsParsedReal Props = 1 << 9
)

// NameStyle records how a container child's key was quoted, so the printer
// reproduces it (json5: bare, 'single', "double").
type NameStyle uint8

const (
	NameNone NameStyle = iota
	NameSingleQuote
	NameDoubleQuote
)

// AssignStyle records the character separating a key from its value.
type AssignStyle uint8

const (
	AssignColon AssignStyle = iota
	AssignEqual
	AssignPipe
)

func (s AssignStyle) Byte() byte {
	switch s {
	case AssignEqual:
		return '='
	case AssignPipe:
		return '|'
	default:
		return ':'
	}
}

// DelimStyle records the separator between a container's children.
type DelimStyle uint8

const (
	DelimComma DelimStyle = iota
	DelimPipe
	DelimNewline
)

func (s DelimStyle) Byte() byte {
	switch s {
	case DelimPipe:
		return '|'
	case DelimNewline:
		return '\n'
	default:
		return ','
	}
}

// Node is one element of an ADT tree. Container nodes (ARRAY/OBJECT) own an
// ordered sequence of children; leaf nodes hold a scalar payload.
type Node struct {
	name    []byte
	hasName bool

	Parent *Node
	Kind   Kind
	Props  Props

	children []*Node
	backing  allocator.Allocator

	str     []byte
	ownsStr bool

	integer int64
	real    float64

	// Analysis metadata, populated by ParseNumber and consulted by
	// PrintNumber to reproduce the original textual form.
	Base             []byte
	FracBase         []byte
	FracLeadingZeros int
	DecimalExponent  int
	NegZero          bool
	HasLeadDigit     bool

	// QuoteStyle records how a STRING/MULTISTRING leaf's own value was
	// quoted, independent of NameStyle (which quotes this node's *name* when
	// it sits inside an OBJECT).
	QuoteStyle NameStyle

	// Container formatting metadata.
	CfgMode         bool
	NameStyle       NameStyle
	AssignStyle     AssignStyle
	DelimStyle      DelimStyle
	DelimLineWidth  int
	AssignLineWidth int
}

// adtReserveBytes is the size of the bookkeeping probe MakeBranch performs
// against a caller-supplied backing allocator, so that an exhausted Arena or
// Pool surfaces ErrOutOfMemory instead of silently succeeding: Go's own
// make([]*Node, ...) never fails the way the C child-sequence allocation
// could, so this is the only place OOM can be observed.
const adtReserveBytes = 8

// IsContainer reports whether n is an ARRAY or OBJECT.
func (n *Node) IsContainer() bool {
	return n.Kind == KindArray || n.Kind == KindObject
}

// HasName reports whether n was given an explicit name.
func (n *Node) HasName() bool { return n.hasName }

// Name returns n's name, or "" if unset.
func (n *Node) Name() string { return string(n.name) }

// SetName assigns n's name, copying through n's backing allocator when one
// is set (so the bytes survive the lifetime of whatever buffer name came
// from), otherwise retaining name as a Go string-backed borrow.
func (n *Node) SetName(name string) {
	if name == "" {
		n.name = nil
		n.hasName = false
		return
	}
	n.name = copyOrBorrow(n.backing, name)
	n.hasName = true
}

// Children returns n's child sequence. Nil for non-containers.
func (n *Node) Children() []*Node { return n.children }

// Len returns the number of children (0 for non-containers).
func (n *Node) Len() int { return len(n.children) }

// MakeBranch initializes a fresh container node (object or array), attaching
// an empty child sequence allocated through backing.
func MakeBranch(backing allocator.Allocator, name string, isArray bool) (*Node, error) {
	n := &Node{}
	if err := n.InitBranch(backing, name, isArray); err != nil {
		return nil, err
	}
	return n, nil
}

// InitBranch turns an already-allocated node (e.g. one returned by Alloc or
// AllocAt) into a container in place, attaching an empty child sequence
// allocated through backing. This mirrors the source's make_branch, which
// always operates on a node the caller already owns.
func (n *Node) InitBranch(backing allocator.Allocator, name string, isArray bool) error {
	if backing != nil {
		if probe := backing.Alloc(adtReserveBytes, 0, 0); probe == nil {
			return newErr(ErrOutOfMemory, "InitBranch", nil)
		}
	}
	n.backing = backing
	if isArray {
		n.Kind = KindArray
	} else {
		n.Kind = KindObject
	}
	n.children = make([]*Node, 0, 4)
	if name != "" {
		n.SetName(name)
	}
	return nil
}

// DestroyBranch recursively releases a branch's children. Leaves non-branch
// nodes untouched (matches the source: calling it on a leaf is a no-op).
func DestroyBranch(n *Node) {
	if n == nil || !n.IsContainer() {
		return
	}
	for _, c := range n.children {
		if c.IsContainer() {
			DestroyBranch(c)
		}
		if n.backing != nil {
			n.backing.Free(c.str)
			n.backing.Free(c.name)
		}
	}
	n.children = nil
}

// MakeLeaf initializes n as a scalar node of the given kind. Panics if kind
// is ARRAY or OBJECT (programmer error, not a recoverable condition).
func MakeLeaf(n *Node, backing allocator.Allocator, name string, kind Kind) {
	if kind == KindArray || kind == KindObject {
		panic("adt: MakeLeaf called with a container kind")
	}
	n.backing = backing
	n.Kind = kind
	n.Props = PropNone
	if name != "" {
		n.SetName(name)
	}
}

func copyOrBorrow(backing allocator.Allocator, s string) []byte {
	if backing == nil {
		return []byte(s)
	}
	buf := backing.Alloc(len(s), 0, 0)
	if buf == nil {
		return []byte(s)
	}
	copy(buf, s)
	return buf
}

// SetString sets n as a STRING (or MULTISTRING) leaf, copying value through
// n's backing allocator.
func (n *Node) SetString(value string, multi bool) {
	if multi {
		n.Kind = KindMultistring
	} else {
		n.Kind = KindString
	}
	n.str = copyOrBorrow(n.backing, value)
	n.ownsStr = n.backing != nil
}

// String returns a STRING/MULTISTRING node's value.
func (n *Node) String() string { return string(n.str) }

// SetInteger sets n as an INTEGER leaf.
func (n *Node) SetInteger(v int64) {
	n.Kind = KindInteger
	n.integer = v
}

// Integer returns an INTEGER node's value.
func (n *Node) Integer() int64 { return n.integer }

// SetReal sets n as a REAL leaf.
func (n *Node) SetReal(v float64) {
	n.Kind = KindReal
	n.real = v
}

// Real returns a REAL node's value.
func (n *Node) Real() float64 { return n.real }
