package jobs

import "sync/atomic"

// WorkerState is a worker's lifecycle state, held in an atomic word. This
// mirrors the teacher's FastState pattern (eventloop/state.go): the main
// thread writes a worker's job slot, then stores WAITING->READY; the worker
// loads its own status, compare-exchanges READY->BUSY before running the
// job, and BUSY->WAITING when the job returns. Destroy stores TERM
// unconditionally, whatever the current state.
type WorkerState int32

const (
	WorkerReady WorkerState = iota
	WorkerBusy
	WorkerWaiting
	WorkerTerm
)

func (s WorkerState) String() string {
	switch s {
	case WorkerReady:
		return "READY"
	case WorkerBusy:
		return "BUSY"
	case WorkerWaiting:
		return "WAITING"
	case WorkerTerm:
		return "TERM"
	default:
		return "UNKNOWN"
	}
}

// fastState is a small atomic wrapper giving the worker status word the
// same load-acquire/store-release discipline as FastState, without pulling
// in its full generality (jobs only ever needs four states and three legal
// transitions).
type fastState struct {
	v atomic.Int32
}

func (s *fastState) Load() WorkerState { return WorkerState(s.v.Load()) }

func (s *fastState) Store(v WorkerState) { s.v.Store(int32(v)) }

// TryTransition performs an atomic compare-and-swap from `from` to `to`,
// returning whether it succeeded.
func (s *fastState) TryTransition(from, to WorkerState) bool {
	return s.v.CompareAndSwap(int32(from), int32(to))
}

// ForceTerm unconditionally stores TERM, used by Destroy to end workers
// cooperatively regardless of their current state.
func (s *fastState) ForceTerm() { s.v.Store(int32(WorkerTerm)) }
