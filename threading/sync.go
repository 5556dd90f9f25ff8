package threading

import "sync"

// Barrier ("Sync" in the source) releases all waiters once `target` threads
// have reached it. Implemented with a condition variable rather than the
// source's "start mutex" trick, per design note: equivalent and clearer
// (spec.md §9).
type Barrier struct {
	mu         sync.Mutex
	cond       *sync.Cond
	target     int
	count      int
	generation int
}

// NewBarrier returns a Barrier with no target set; call SetTarget before use.
func NewBarrier() *Barrier {
	b := &Barrier{}
	b.cond = sync.NewCond(&b.mu)
	return b
}

// SetTarget configures the number of arrivals that release the barrier,
// resetting the arrival count.
func (b *Barrier) SetTarget(n int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.target = n
	b.count = 0
}

// Reach records one arrival. The target-th arrival releases every thread
// currently blocked in ReachAndWait.
func (b *Barrier) Reach() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.arriveLocked()
}

// ReachAndWait records an arrival and blocks until the target-th arrival
// (from any thread) occurs.
func (b *Barrier) ReachAndWait() {
	b.mu.Lock()
	defer b.mu.Unlock()
	gen := b.generation
	if b.arriveLocked() {
		return
	}
	for b.generation == gen {
		b.cond.Wait()
	}
}

// arriveLocked must be called with b.mu held. Returns true if this arrival
// was the one that released the barrier.
func (b *Barrier) arriveLocked() bool {
	b.count++
	if b.count < b.target {
		return false
	}
	b.count = 0
	b.generation++
	b.cond.Broadcast()
	return true
}
