// Package ring implements the generic single-producer/single-consumer
// fixed-capacity FIFO used by the job queues (spec.md §4.5), modeled on the
// teacher's generic ringBuffer[E constraints.Ordered] in catrate/ring.go —
// simplified to Buffer[E any] since nothing here needs ordering, only FIFO
// semantics with overwrite-oldest-on-full.
package ring

// Buffer is a fixed-capacity FIFO over a backing slice of length cap+1 (one
// slot is always kept empty to distinguish full from empty using only head
// and tail indices, per spec.md §3's "Ring buffer" data model).
type Buffer[E any] struct {
	buf  []E
	head int
	tail int
}

// New returns a ring buffer holding at most capacity elements.
func New[E any](capacity int) *Buffer[E] {
	if capacity < 1 {
		panic("ring: capacity must be >= 1")
	}
	return &Buffer[E]{buf: make([]E, capacity+1)}
}

// Capacity returns the buffer's maximum element count.
func (r *Buffer[E]) Capacity() int { return len(r.buf) - 1 }

// Empty reports whether the buffer holds no elements.
func (r *Buffer[E]) Empty() bool { return r.head == r.tail }

// Full reports whether the buffer holds Capacity() elements.
func (r *Buffer[E]) Full() bool {
	return (r.head+1)%len(r.buf) == r.tail
}

// Len reports the number of elements currently stored.
func (r *Buffer[E]) Len() int {
	n := len(r.buf)
	return (r.head - r.tail + n) % n
}

// Append stores x at head and advances head modulo len(buf). If the buffer
// was full, tail is also advanced, overwriting (dropping) the oldest
// element, per spec.md §4.5.
func (r *Buffer[E]) Append(x E) {
	wasFull := r.Full()
	r.buf[r.head] = x
	r.head = (r.head + 1) % len(r.buf)
	if wasFull {
		r.tail = (r.tail + 1) % len(r.buf)
	}
}

// AppendArray appends each element of xs in order.
func (r *Buffer[E]) AppendArray(xs []E) {
	for _, x := range xs {
		r.Append(x)
	}
}

// Get pops the element at tail and advances tail, or reports ok=false when
// the buffer is empty.
func (r *Buffer[E]) Get() (value E, ok bool) {
	if r.Empty() {
		var zero E
		return zero, false
	}
	value = r.buf[r.tail]
	r.tail = (r.tail + 1) % len(r.buf)
	return value, true
}
