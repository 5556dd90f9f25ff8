package main

import (
	"fmt"
	"sync"
	"time"

	"github.com/Ed94/zpl-sub000/jobs"
)

// runBenchJobs drives the scheduler end to end per spec.md §8 scenario S4:
// 5 IDLE jobs and 5 REALTIME jobs, reporting the order completions land in.
func runBenchJobs(args []string) error {
	s := jobs.Init(4, 32)
	defer s.Destroy()

	var mu sync.Mutex
	var order []string

	record := func(label string) func(any) {
		return func(any) {
			mu.Lock()
			order = append(order, label)
			mu.Unlock()
		}
	}

	for i := 0; i < 5; i++ {
		s.EnqueueWithPriority(jobs.Idle, record(fmt.Sprintf("idle-%d", i)), nil)
	}
	for i := 0; i < 5; i++ {
		s.EnqueueWithPriority(jobs.Realtime, record(fmt.Sprintf("realtime-%d", i)), nil)
	}

	deadline := time.Now().Add(2 * time.Second)
	for !s.Done() {
		s.Process()
		if time.Now().After(deadline) {
			return fmt.Errorf("bench-jobs: scheduler did not finish in time")
		}
		time.Sleep(time.Millisecond)
	}

	fmt.Println("completion order:")
	for i, label := range order {
		fmt.Printf("  %2d: %s\n", i, label)
	}
	return nil
}
