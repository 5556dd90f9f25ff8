package jobs

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func drainUntilDone(t *testing.T, s *System, timeout time.Duration) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for !s.Done() {
		s.Process()
		if time.Now().After(deadline) {
			t.Fatal("scheduler did not reach Done() before timeout")
		}
		time.Sleep(time.Millisecond)
	}
}

func TestJobOrderingPerPriority(t *testing.T) {
	s := Init(2, 16)
	defer s.Destroy()

	var mu sync.Mutex
	var order []int
	for i := 0; i < 5; i++ {
		i := i
		if !s.EnqueueWithPriority(Normal, func(any) {
			mu.Lock()
			order = append(order, i)
			mu.Unlock()
		}, nil) {
			t.Fatalf("enqueue %d failed", i)
		}
	}

	drainUntilDone(t, s, 2*time.Second)

	if len(order) != 5 {
		t.Fatalf("got %d completions, want 5", len(order))
	}
	for i, v := range order {
		if v != i {
			t.Fatalf("completion order = %v, want 0..4 in order", order)
		}
	}
}

// TestSchedulerFairnessS4 runs scenario S4's workload and checks that all
// ten jobs complete (counter == 10); the relative completion order of the
// REALTIME and IDLE jobs is not asserted.
func TestSchedulerFairnessS4(t *testing.T) {
	s := Init(2, 16)
	defer s.Destroy()

	var counter int64
	for i := 0; i < 5; i++ {
		s.EnqueueWithPriority(Idle, func(any) { atomic.AddInt64(&counter, 1) }, nil)
	}
	for i := 0; i < 5; i++ {
		s.EnqueueWithPriority(Realtime, func(any) { atomic.AddInt64(&counter, 1) }, nil)
	}

	drainUntilDone(t, s, 2*time.Second)

	if got := atomic.LoadInt64(&counter); got != 10 {
		t.Fatalf("counter = %d, want 10", got)
	}
}

func TestEnqueueFullQueueReturnsFalse(t *testing.T) {
	s := Init(1, 2)
	defer s.Destroy()

	if !s.EnqueueWithPriority(Low, func(any) {}, nil) {
		t.Fatal("first enqueue should succeed")
	}
	if !s.EnqueueWithPriority(Low, func(any) {}, nil) {
		t.Fatal("second enqueue should succeed")
	}
	if s.EnqueueWithPriority(Low, func(any) {}, nil) {
		t.Fatal("third enqueue should fail: queue full")
	}
}
