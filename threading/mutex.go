package threading

import "sync"

// Mutex is a thin rename of sync.Mutex, giving the package its own vtable
// entry point the way the source's "OS critical section" wrapper does.
type Mutex struct {
	m sync.Mutex
}

func (m *Mutex) Lock()   { m.m.Lock() }
func (m *Mutex) Unlock() { m.m.Unlock() }

// TryLock attempts to acquire m without blocking.
func (m *Mutex) TryLock() bool { return m.m.TryLock() }
