package adt

import (
	"strconv"
	"strings"
)

// Alloc appends a new, uninitialised child to parent and returns it, or nil
// if parent is not a container.
func Alloc(parent *Node) *Node {
	return AllocAt(parent, len(parent.children))
}

// AllocAt inserts a new, uninitialised child into parent at index, or
// returns nil if parent is not a container or index is out of range.
func AllocAt(parent *Node, index int) *Node {
	if parent == nil || !parent.IsContainer() {
		return nil
	}
	if index < 0 || index > len(parent.children) {
		return nil
	}
	child := &Node{backing: parent.backing, Parent: parent}
	parent.children = append(parent.children, nil)
	copy(parent.children[index+1:], parent.children[index:])
	parent.children[index] = child
	return child
}

// RemoveNode removes n from its parent's child sequence. No-op if n has no
// parent or is not actually present.
func RemoveNode(n *Node) {
	if n == nil || n.Parent == nil {
		return
	}
	p := n.Parent
	for i, c := range p.children {
		if c == n {
			p.children = append(p.children[:i], p.children[i+1:]...)
			n.Parent = nil
			return
		}
	}
}

// MoveNode detaches n from its current parent and appends it to newParent.
// Both must be containers (n's old parent, if any, and newParent).
func MoveNode(n *Node, newParent *Node) bool {
	return MoveNodeAt(n, newParent, len(newParent.children))
}

// MoveNodeAt is MoveNode with an explicit insertion index in newParent.
func MoveNodeAt(n *Node, newParent *Node, index int) bool {
	if n == nil || newParent == nil || !newParent.IsContainer() {
		return false
	}
	if index < 0 || index > len(newParent.children) {
		return false
	}
	if n.Parent != nil {
		if !n.Parent.IsContainer() {
			return false
		}
		RemoveNode(n)
		if index > len(newParent.children) {
			index = len(newParent.children)
		}
	}
	newParent.children = append(newParent.children, nil)
	copy(newParent.children[index+1:], newParent.children[index:])
	newParent.children[index] = n
	n.Parent = newParent
	return true
}

// SwapNodes exchanges the positions of a and b, which may belong to two
// different containers, re-stitching parent back-pointers.
func SwapNodes(a, b *Node) bool {
	if a == nil || b == nil || a.Parent == nil || b.Parent == nil {
		return false
	}
	pa, pb := a.Parent, b.Parent
	ia, ok := indexOf(pa, a)
	if !ok {
		return false
	}
	ib, ok := indexOf(pb, b)
	if !ok {
		return false
	}
	pa.children[ia], pb.children[ib] = b, a
	a.Parent, b.Parent = pb, pa
	return true
}

func indexOf(parent *Node, n *Node) (int, bool) {
	for i, c := range parent.children {
		if c == n {
			return i, true
		}
	}
	return 0, false
}

// Find looks up an OBJECT's child by name. If deep is true, searches
// pre-order into grandchildren when a direct match isn't found.
func Find(n *Node, name string, deep bool) *Node {
	if n == nil || n.Kind != KindObject {
		return nil
	}
	for _, c := range n.children {
		if c.hasName && c.Name() == name {
			return c
		}
	}
	if deep {
		for _, c := range n.children {
			if c.IsContainer() {
				if found := Find(c, name, true); found != nil {
					return found
				}
			}
		}
	}
	return nil
}

// Query resolves a path expression over a containers tree, per spec.md
// §4.2: "a/b/c" steps into named children; "arr/N" indexes an array;
// "arr/[value]" matches a scalar child by printed value;
// "arr/[field=value]" matches an object child (or self) by field.
func Query(root *Node, uri string) *Node {
	cur := root
	for _, step := range strings.Split(uri, "/") {
		if step == "" || cur == nil {
			continue
		}
		cur = queryStep(cur, step)
	}
	return cur
}

func queryStep(cur *Node, step string) *Node {
	if strings.HasPrefix(step, "[") && strings.HasSuffix(step, "]") {
		return queryBracket(cur, step[1:len(step)-1])
	}
	if n, err := strconv.Atoi(step); err == nil {
		if cur.Kind != KindArray || n < 0 || n >= len(cur.children) {
			return nil
		}
		return cur.children[n]
	}
	// Named-child lookup applies to any container, not just OBJECT: a CSV
	// root is an ARRAY of named column ARRAYs (spec.md §4.4), so "name/0"
	// must be able to find the "name" column by its name before indexing
	// into it by position.
	if !cur.IsContainer() {
		return nil
	}
	for _, c := range cur.children {
		if c.hasName && c.Name() == step {
			return c
		}
	}
	return nil
}

func queryBracket(cur *Node, expr string) *Node {
	if field, value, ok := strings.Cut(expr, "="); ok {
		if cur.Kind == KindObject {
			if scalarPrintedValue(Find(cur, field, false)) == value {
				return cur
			}
			return nil
		}
		for _, c := range cur.children {
			if c.Kind != KindObject {
				continue
			}
			if scalarPrintedValue(Find(c, field, false)) == value {
				return c
			}
		}
		return nil
	}
	for _, c := range cur.children {
		if scalarPrintedValue(c) == expr {
			return c
		}
	}
	return nil
}

// scalarPrintedValue renders n the way query matching compares values:
// strings byte-for-byte, numbers via PrintNumber.
func scalarPrintedValue(n *Node) string {
	if n == nil {
		return ""
	}
	switch n.Kind {
	case KindString, KindMultistring:
		return n.String()
	case KindInteger, KindReal:
		return PrintNumber(n)
	default:
		return ""
	}
}
