package threading

import "runtime"

// Proc is a thread entry point.
type Proc func(userData any)

// Thread wraps a goroutine pinned to its own OS thread via
// runtime.LockOSThread, standing in for the source's raw OS thread handle.
// stackSize is accepted for API fidelity but unused: Go goroutine stacks
// grow on demand and cannot be preallocated to a fixed size.
type Thread struct {
	done chan struct{}
}

// Start spawns proc(userData) on a new OS-thread-pinned goroutine.
// If wait is true, Start blocks until the child has actually entered proc
// (handshaking through an internal semaphore), avoiding races where the
// caller mutates stack-local userData before the child reads it; nowait
// skips that handshake (spec.md §4.7).
func Start(proc Proc, userData any, stackSize int, wait bool) *Thread {
	t := &Thread{done: make(chan struct{})}
	var ready *Semaphore
	if wait {
		ready = NewSemaphore(0)
	}

	go func() {
		runtime.LockOSThread()
		defer runtime.UnlockOSThread()
		defer close(t.done)
		if ready != nil {
			ready.Post(1)
		}
		proc(userData)
	}()

	if ready != nil {
		ready.Wait()
	}
	return t
}

// Join blocks until the thread's proc has returned.
func (t *Thread) Join() { <-t.done }
