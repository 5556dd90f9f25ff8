package threading

import "sync"

// Semaphore is a counting semaphore: Post(n) releases n permits, Wait blocks
// until one is available, TryWait is the non-blocking variant (spec.md §4.7).
type Semaphore struct {
	mu    sync.Mutex
	cond  *sync.Cond
	count int
}

// NewSemaphore returns a semaphore initialised with `initial` permits.
func NewSemaphore(initial int) *Semaphore {
	s := &Semaphore{count: initial}
	s.cond = sync.NewCond(&s.mu)
	return s
}

// Post releases n permits, waking any blocked waiters.
func (s *Semaphore) Post(n int) {
	s.mu.Lock()
	s.count += n
	s.mu.Unlock()
	s.cond.Broadcast()
}

// Wait blocks until a permit is available, then consumes one.
func (s *Semaphore) Wait() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for s.count == 0 {
		s.cond.Wait()
	}
	s.count--
}

// TryWait consumes a permit without blocking, reporting success.
func (s *Semaphore) TryWait() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.count == 0 {
		return false
	}
	s.count--
	return true
}
