// Package concurrency covers goroutines, channels and mutexes.
//
// The translation table from Rust: thread::spawn is the go
// statement, JoinHandle.join is a sync.WaitGroup (goroutines cannot be
// joined individually), mpsc channels are just channels (Go's are multi-
// producer multi-consumer out of the box), and Arc<Mutex<T>> collapses to
// a sync.Mutex next to the data because sharing needs no reference
// counting under a garbage collector. The move keyword has no counterpart;
// closures capture by reference and the race detector, not the compiler,
// is what catches misuse.
package concurrency

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// PrintFromGoroutine interleaves prints from a spawned goroutine and the
// caller, then waits. Without the Wait call the program could exit with
// the goroutine mid-loop, exactly the failure mode join prevented.
func PrintFromGoroutine(out io.Writer) {
	var mu sync.Mutex
	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 1; i < 10; i++ {
			mu.Lock()
			fmt.Fprintf(out, "hi number %d from the spawned goroutine!\n", i)
			mu.Unlock()
			time.Sleep(time.Millisecond)
		}
	}()

	for i := 1; i < 5; i++ {
		mu.Lock()
		fmt.Fprintf(out, "hi number %d from the main goroutine!\n", i)
		mu.Unlock()
		time.Sleep(time.Millisecond)
	}

	wg.Wait()
}

// CaptureSlice shows a goroutine using data from the enclosing scope. No
// move keyword needed: the closure keeps the slice alive for as long as
// the goroutine runs.
func CaptureSlice(out io.Writer) {
	v := []int{1, 2, 3}

	done := make(chan struct{})
	go func() {
		fmt.Fprintf(out, "Here's a slice: %v\n", v)
		close(done)
	}()
	<-done
}

// SendSingleValue is the hello-channel example: one value sent from a
// goroutine, received by the caller. An unbuffered channel makes the send
// block until the receive happens, which is the synchronization.
func SendSingleValue() string {
	ch := make(chan string)

	go func() {
		ch <- "hi"
	}()

	return <-ch
}

// StreamValues sends several values then closes the channel. Ranging over
// a channel ends when it is closed, the same way iterating the receiver
// ended when the sender hung up.
func StreamValues() []string {
	ch := make(chan string)

	go func() {
		defer close(ch)
		for _, val := range []string{"hi", "from", "the", "goroutine"} {
			ch <- val
		}
	}()

	var got []string
	for received := range ch {
		got = append(got, received)
	}
	return got
}

// MultipleProducers fans several goroutines into one channel. The
// WaitGroup-then-close pattern is load bearing: only the producers know
// when they are done, and the channel must close exactly once, after all
// of them.
func MultipleProducers(producers int, perProducer int) []int {
	ch := make(chan int)
	var wg sync.WaitGroup

	for p := 0; p < producers; p++ {
		p := p
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				ch <- p*perProducer + i
			}
		}()
	}

	go func() {
		wg.Wait()
		close(ch)
	}()

	var got []int
	for v := range ch {
		got = append(got, v)
	}
	return got
}

// ReceiveWithTimeout is select in its most common role: a receive that
// gives up. try_recv's non-blocking poll is the same select with a default
// arm instead of the timer.
func ReceiveWithTimeout(ch <-chan string, timeout time.Duration) (string, bool) {
	select {
	case v := <-ch:
		return v, true
	case <-time.After(timeout):
		return "", false
	}
}

// Counter is the Arc<Mutex<i32>> example reduced to its Go form: a mutex
// guarding the field it sits next to. The mutex must not be copied once
// used, which is why the methods take a pointer receiver.
type Counter struct {
	mu    sync.Mutex
	value int
}

// Increment adds one under the lock.
func (c *Counter) Increment() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.value++
}

// Value reads the count under the same lock.
func (c *Counter) Value() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.value
}

// CountAcrossGoroutines spins up n goroutines that each increment the
// shared counter once, then waits for all of them.
func CountAcrossGoroutines(n int) int {
	var counter Counter
	var wg sync.WaitGroup

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			counter.Increment()
		}()
	}

	wg.Wait()
	return counter.Value()
}
