package adt

import "testing"

func TestMakeBranchAndAlloc(t *testing.T) {
	root, err := MakeBranch(nil, "", false)
	if err != nil {
		t.Fatalf("MakeBranch: %v", err)
	}
	if !root.IsContainer() {
		t.Fatal("root should be a container")
	}

	child := Alloc(root)
	if child == nil {
		t.Fatal("Alloc returned nil")
	}
	child.SetName("a")
	child.SetInteger(42)

	if got := Find(root, "a", false); got != child {
		t.Fatalf("Find: got %v, want %v", got, child)
	}
	if root.Len() != 1 {
		t.Fatalf("Len: got %d, want 1", root.Len())
	}
}

func TestAllocAtAndRemoveNode(t *testing.T) {
	root, _ := MakeBranch(nil, "", true)
	a := Alloc(root)
	a.SetInteger(1)
	c := Alloc(root)
	c.SetInteger(3)
	b := AllocAt(root, 1)
	b.SetInteger(2)

	if root.Len() != 3 {
		t.Fatalf("Len: got %d, want 3", root.Len())
	}
	for i, want := range []int64{1, 2, 3} {
		if got := root.Children()[i].Integer(); got != want {
			t.Fatalf("child[%d] = %d, want %d", i, got, want)
		}
	}

	RemoveNode(b)
	if root.Len() != 2 {
		t.Fatalf("after remove Len: got %d, want 2", root.Len())
	}
	if b.Parent != nil {
		t.Fatal("removed node should have nil parent")
	}
}

func TestMoveNodeConsistency(t *testing.T) {
	src, _ := MakeBranch(nil, "", true)
	dst, _ := MakeBranch(nil, "", true)
	n := Alloc(src)
	n.SetInteger(7)

	if !MoveNode(n, dst) {
		t.Fatal("MoveNode failed")
	}
	if n.Parent != dst {
		t.Fatalf("n.Parent = %v, want dst", n.Parent)
	}
	if src.Len() != 0 {
		t.Fatalf("src should be empty after move, got %d", src.Len())
	}
	if dst.Len() != 1 || dst.Children()[0] != n {
		t.Fatal("dst should contain n exactly once")
	}
}

func TestSwapNodes(t *testing.T) {
	a, _ := MakeBranch(nil, "", true)
	b, _ := MakeBranch(nil, "", true)
	x := Alloc(a)
	x.SetInteger(1)
	y := Alloc(b)
	y.SetInteger(2)

	if !SwapNodes(x, y) {
		t.Fatal("SwapNodes failed")
	}
	if a.Children()[0] != y || b.Children()[0] != x {
		t.Fatal("nodes were not swapped in their sequences")
	}
	if x.Parent != b || y.Parent != a {
		t.Fatal("parent back-pointers not re-stitched")
	}
}

func TestQueryPath(t *testing.T) {
	root, _ := MakeBranch(nil, "", false)
	arr := Alloc(root)
	arr.SetName("xs")
	arr.Kind = KindArray
	arr.children = []*Node{}

	o1 := AllocAt(arr, 0)
	o1.Kind = KindObject
	o1.children = []*Node{}
	id1 := Alloc(o1)
	id1.SetName("id")
	id1.SetString("a", false)
	n1 := Alloc(o1)
	n1.SetName("n")
	n1.SetInteger(1)

	o2 := AllocAt(arr, 1)
	o2.Kind = KindObject
	o2.children = []*Node{}
	id2 := Alloc(o2)
	id2.SetName("id")
	id2.SetString("b", false)
	n2 := Alloc(o2)
	n2.SetName("n")
	n2.SetInteger(2)

	got := Query(root, "xs/[id=b]/n")
	if got == nil || got.Integer() != 2 {
		t.Fatalf("Query xs/[id=b]/n = %v, want integer 2", got)
	}

	got2 := Query(root, "xs/0/id")
	if got2 == nil || got2.String() != "a" {
		t.Fatalf("Query xs/0/id = %v, want string a", got2)
	}
}
