package webserver

import (
	"io"
	"sync"
	"sync/atomic"
	"testing"
)

func TestPoolSizeCannotBeZero(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected NewPool(0) to panic")
		}
	}()
	NewPool(0)
}

func TestTwoWorkersExecuteJobs(t *testing.T) {
	pool := newPool(2, io.Discard)

	var results [2]int
	var wg sync.WaitGroup
	wg.Add(2)

	pool.Submit(func() {
		defer wg.Done()
		results[0] = 2 + 5
	})
	pool.Submit(func() {
		defer wg.Done()
		results[1] = 5 * 5
	})

	wg.Wait()
	if results[0] != 7 || results[1] != 25 {
		t.Errorf("jobs did not run, results = %v", results)
	}

	pool.Shutdown()
}

func TestShutdownDrainsInFlightJobs(t *testing.T) {
	pool := newPool(3, io.Discard)

	var done atomic.Int32
	for i := 0; i < 20; i++ {
		pool.Submit(func() {
			done.Add(1)
		})
	}

	// Shutdown must not return before every submitted job ran.
	pool.Shutdown()
	if got := done.Load(); got != 20 {
		t.Errorf("expected 20 completed jobs after Shutdown, got %d", got)
	}
}

func TestManyJobsShareFewWorkers(t *testing.T) {
	pool := newPool(2, io.Discard)

	var current, peak atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		pool.Submit(func() {
			defer wg.Done()
			n := current.Add(1)
			for {
				p := peak.Load()
				if n <= p || peak.CompareAndSwap(p, n) {
					break
				}
			}
			current.Add(-1)
		})
	}

	wg.Wait()
	pool.Shutdown()

	if peak.Load() > 2 {
		t.Errorf("pool of 2 ran %d jobs at once", peak.Load())
	}
}
