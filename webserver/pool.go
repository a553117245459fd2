package webserver

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// Job is a unit of work for the pool.
type Job func()

// Pool manages a fixed set of worker goroutines performing jobs.
type Pool struct {
	jobs chan Job
	wg   sync.WaitGroup
	log  io.Writer
}

// NewPool creates a pool with size workers, already running.
//
// NewPool panics if size is zero or negative; a pool with no workers would
// accept jobs and never run them, which is strictly worse than failing
// loudly at construction.
func NewPool(size int) *Pool {
	return newPool(size, os.Stdout)
}

func newPool(size int, log io.Writer) *Pool {
	if size <= 0 {
		panic(fmt.Sprintf("pool size must be positive, got %d", size))
	}

	p := &Pool{
		jobs: make(chan Job),
		log:  log,
	}

	for id := 0; id < size; id++ {
		p.wg.Add(1)
		go p.worker(id)
	}
	return p
}

// worker pulls jobs until the channel closes. No Arc<Mutex<Receiver>>
// dance here: a Go channel is already safe for many readers.
func (p *Pool) worker(id int) {
	defer p.wg.Done()
	for job := range p.jobs {
		fmt.Fprintf(p.log, "Worker %d got a job; executing.\n", id)
		job()
	}
	fmt.Fprintf(p.log, "Worker %d disconnected; shutting down.\n", id)
}

// Submit hands a job to the pool, blocking until a worker is free to take
// it. Submitting after Shutdown panics on the closed channel, the same
// contract an mpsc sender has once it is dropped.
func (p *Pool) Submit(job Job) {
	p.jobs <- job
}

// Shutdown stops accepting work and waits for in-flight jobs to finish.
// Closing the channel is the drop(sender); Wait is the join loop.
func (p *Pool) Shutdown() {
	close(p.jobs)
	p.wg.Wait()
}
