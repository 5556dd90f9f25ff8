package ring

import "testing"

func TestDropOldestOnFull(t *testing.T) {
	r := New[int](4)
	for i := 1; i <= 5; i++ {
		r.Append(i)
	}
	var got []int
	for {
		v, ok := r.Get()
		if !ok {
			break
		}
		got = append(got, v)
	}
	want := []int{2, 3, 4, 5}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestEmptyAndFullPredicates(t *testing.T) {
	r := New[string](2)
	if !r.Empty() {
		t.Fatal("new ring should be empty")
	}
	r.Append("a")
	r.Append("b")
	if !r.Full() {
		t.Fatal("ring should be full after 2 appends with capacity 2")
	}
	v, ok := r.Get()
	if !ok || v != "a" {
		t.Fatalf("Get() = %q, %v; want a, true", v, ok)
	}
}
