// Package jobs implements the priority-weighted cooperative job scheduler
// of spec.md §4.6: a fixed worker pool dispatches from five priority
// queues, biased by a fixed "chance" divisor per priority, with the only
// cross-thread synchronisation being each worker's atomic status word.
package jobs

import (
	"runtime"

	"github.com/Ed94/zpl-sub000/threading"
	"github.com/Ed94/zpl-sub000/zlog"
)

type worker struct {
	status fastState
	job    Job
	thread *threading.Thread
}

// System owns a worker pool and five priority queues.
type System struct {
	maxWorkers int
	maxJobs    int
	rrCounter  int
	workers    []*worker
	queues     [numPriorities]*queue
}

// Init constructs a System with maxWorkers worker goroutines (each pinned to
// its own OS thread via threading.Start) and maxJobs capacity per priority
// queue.
func Init(maxWorkers, maxJobs int) *System {
	s := &System{maxWorkers: maxWorkers, maxJobs: maxJobs}
	for p := 0; p < numPriorities; p++ {
		s.queues[p] = newQueue(maxJobs, chances[p])
	}

	s.workers = make([]*worker, maxWorkers)
	for i := range s.workers {
		w := &worker{}
		w.status.Store(WorkerWaiting)
		s.workers[i] = w
		w.thread = threading.Start(func(userData any) {
			runWorker(w)
		}, nil, 0, false)
	}
	return s
}

func runWorker(w *worker) {
	for {
		switch w.status.Load() {
		case WorkerReady:
			if w.status.TryTransition(WorkerReady, WorkerBusy) {
				job := w.job
				if job.Proc != nil {
					job.Proc(job.UserData)
				}
				w.status.TryTransition(WorkerBusy, WorkerWaiting)
			}
		case WorkerTerm:
			return
		default: // WAITING, or a transient BUSY observed by a stale read
			runtime.Gosched()
		}
	}
}

// Enqueue enqueues a job at NORMAL priority.
func (s *System) Enqueue(proc func(userData any), data any) bool {
	return s.EnqueueWithPriority(Normal, proc, data)
}

// EnqueueWithPriority enqueues a job at the given priority, returning false
// if that queue is full.
func (s *System) EnqueueWithPriority(p Priority, proc func(userData any), data any) bool {
	ok := s.queues[p].Enqueue(proc, data)
	if !ok {
		zlog.Warn("jobs", "enqueue rejected: queue full", map[string]any{"priority": p.String()})
	}
	return ok
}

// Empty reports whether priority queue p is empty.
func (s *System) Empty(p Priority) bool { return s.queues[p].Empty() }

// Full reports whether priority queue p is full.
func (s *System) Full(p Priority) bool { return s.queues[p].Full() }

// EmptyAll reports whether every priority queue is empty.
func (s *System) EmptyAll() bool {
	for _, q := range s.queues {
		if !q.Empty() {
			return false
		}
	}
	return true
}

// FullAll reports whether every priority queue is full.
func (s *System) FullAll() bool {
	for _, q := range s.queues {
		if !q.Full() {
			return false
		}
	}
	return true
}

// Done reports whether every queue is empty and every worker is WAITING.
func (s *System) Done() bool {
	if !s.EmptyAll() {
		return false
	}
	for _, w := range s.workers {
		if w.status.Load() != WorkerWaiting {
			return false
		}
	}
	return true
}

// Process runs one dispatch pass (spec.md §4.6): for each WAITING worker,
// walks priorities REALTIME..IDLE and hands the worker a job from the first
// non-empty queue whose "chance" divisor divides a shared round-robin
// counter. The counter advances on every visit to a non-empty queue, so a
// queue passed over is reached again on a later pass; a worker can end a
// pass without a job even while queues hold work.
// Returns false iff every queue was empty when Process was called.
func (s *System) Process() bool {
	if s.EmptyAll() {
		return false
	}

	for _, w := range s.workers {
		if w.status.Load() != WorkerWaiting {
			continue
		}
		lastEmpty := false
		for p := Realtime; int(p) < numPriorities; p++ {
			q := s.queues[p]
			if q.Empty() {
				lastEmpty = p == Idle
				continue
			}
			counter := s.rrCounter
			s.rrCounter++
			if !lastEmpty && counter%q.chance != 0 {
				continue
			}
			lastEmpty = false
			job, ok := q.pop()
			if !ok {
				continue
			}
			w.job = job
			w.status.Store(WorkerReady)
			break
		}
	}
	return true
}

// Destroy terminates every worker cooperatively (status -> TERM) and joins
// their threads. A running job runs to completion; there is no per-job
// cancellation.
func (s *System) Destroy() {
	for _, w := range s.workers {
		w.status.ForceTerm()
	}
	for _, w := range s.workers {
		w.thread.Join()
	}
	zlog.Debug("jobs", "scheduler destroyed", map[string]any{"workers": len(s.workers)})
}
