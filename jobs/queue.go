package jobs

import "github.com/Ed94/zpl-sub000/ring"

// Priority orders the five fixed job queues, highest first.
type Priority int

const (
	Realtime Priority = iota
	High
	Normal
	Low
	Idle

	numPriorities = int(Idle) + 1
)

func (p Priority) String() string {
	switch p {
	case Realtime:
		return "REALTIME"
	case High:
		return "HIGH"
	case Normal:
		return "NORMAL"
	case Low:
		return "LOW"
	case Idle:
		return "IDLE"
	default:
		return "UNKNOWN"
	}
}

// chances biases dispatch towards higher priorities: a queue is only
// skipped when (rr_counter % chance) != 0, so smaller chances are hit more
// often (spec.md §4.6).
var chances = [numPriorities]int{2, 3, 5, 7, 11}

// Job is a unit of work: proc is invoked with userData on some worker.
type Job struct {
	Proc     func(userData any)
	UserData any
}

// Stats tracks a queue's lifetime enqueue/dispatch counters.
type Stats struct {
	Enqueued  int64
	Dispatched int64
}

type queue struct {
	buf    *ring.Buffer[Job]
	chance int
	stats  Stats
}

func newQueue(maxJobs int, chance int) *queue {
	return &queue{buf: ring.New[Job](maxJobs), chance: chance}
}

// Enqueue appends proc/data to the queue. Returns false if the queue is at
// capacity (spec.md: "enqueue returns false on full queue").
func (q *queue) Enqueue(proc func(userData any), data any) bool {
	if q.buf.Full() {
		return false
	}
	q.buf.Append(Job{Proc: proc, UserData: data})
	q.stats.Enqueued++
	return true
}

func (q *queue) Empty() bool { return q.buf.Empty() }
func (q *queue) Full() bool  { return q.buf.Full() }

func (q *queue) pop() (Job, bool) {
	j, ok := q.buf.Get()
	if ok {
		q.stats.Dispatched++
	}
	return j, ok
}
