package logkick

import (
	"fmt"
	"os"
	"sync"
	"time"

	"go.uber.org/atomic"
)

// asyncDrain decouples log call sites from sink I/O. Records are appended to
// an in-memory queue and a single consumer goroutine forwards them in FIFO
// order, so per-producer ordering is preserved and cross-producer ordering is
// enqueue order.
//
// The queue is unbounded by default: enqueueing never blocks the caller. With
// a positive limit the queue is bounded and full-queue enqueues block until
// the consumer frees space (explicit back-pressure opt-in).
type asyncDrain struct {
	next Drain

	mu       sync.Mutex
	nonEmpty *sync.Cond
	notFull  *sync.Cond
	queue    []Record
	limit    int
	closed   bool

	done chan struct{}
}

func newAsyncDrain(next Drain, limit int) *asyncDrain {
	d := &asyncDrain{
		next:  next,
		limit: limit,
		done:  make(chan struct{}),
	}
	d.nonEmpty = sync.NewCond(&d.mu)
	d.notFull = sync.NewCond(&d.mu)
	go d.consume()
	return d
}

func (d *asyncDrain) Log(r Record) {
	d.mu.Lock()
	for d.limit > 0 && len(d.queue) >= d.limit && !d.closed {
		d.notFull.Wait()
	}
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.queue = append(d.queue, r)
	d.mu.Unlock()
	d.nonEmpty.Signal()
}

func (d *asyncDrain) consume() {
	defer close(d.done)
	for {
		d.mu.Lock()
		for len(d.queue) == 0 && !d.closed {
			d.nonEmpty.Wait()
		}
		batch := d.queue
		d.queue = nil
		closed := d.closed
		d.mu.Unlock()
		d.notFull.Broadcast()

		for _, r := range batch {
			d.next.Log(r)
		}
		if closed && len(batch) == 0 {
			return
		}
	}
}

// shutdown flags the queue closed, wakes everyone, and waits for the consumer
// to finish up to timeout. On timeout the remaining queue is discarded and
// its length returned alongside ErrFlushTimeout.
func (d *asyncDrain) shutdown(timeout time.Duration) (int, error) {
	d.mu.Lock()
	d.closed = true
	d.mu.Unlock()
	d.nonEmpty.Broadcast()
	d.notFull.Broadcast()

	t := time.NewTimer(timeout)
	defer t.Stop()
	select {
	case <-d.done:
		return 0, nil
	case <-t.C:
		d.mu.Lock()
		dropped := len(d.queue)
		d.queue = nil
		d.mu.Unlock()
		d.nonEmpty.Broadcast()
		return dropped, ErrFlushTimeout
	}
}

// Guard owns the async consumer. Keep it alive for as long as logging is
// needed, typically in the entry-point scope, and Close it on shutdown to
// flush buffered records.
//
// A Guard returned from a builder with async disabled is a no-op.
type Guard struct {
	drain   *asyncDrain
	timeout time.Duration
	closed  atomic.Bool
}

// Close drains the queue and stops the consumer, waiting up to the flush
// timeout. When the timeout elapses the remaining records are discarded, the
// condition is reported on stderr, and ErrFlushTimeout is returned; Close
// never panics. Close is idempotent.
func (g *Guard) Close() error {
	if g == nil || g.drain == nil {
		return nil
	}
	if !g.closed.CompareAndSwap(false, true) {
		return nil
	}
	dropped, err := g.drain.shutdown(g.timeout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logkick: flush timed out after %s, %d records dropped\n", g.timeout, dropped)
	}
	return err
}
