package logkick

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsyncDrainDeliversEverything(t *testing.T) {
	const producers = 4
	const perProducer = 2500

	capture := &captureDrain{}
	drain := newAsyncDrain(capture, 0)
	guard := &Guard{drain: drain, timeout: 30 * time.Second}

	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func(p int) {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				drain.Log(Record{
					Level:   InfoLevel,
					Module:  fmt.Sprintf("producer-%d", p),
					Message: "payload",
					Fields:  []Field{Int("seq", i)},
				})
			}
		}(p)
	}
	wg.Wait()
	require.NoError(t, guard.Close())

	records := capture.all()
	require.Len(t, records, producers*perProducer)

	// Per-producer order must be preserved; cross-producer order is not.
	next := make(map[string]int, producers)
	for _, r := range records {
		want := next[r.Module]
		require.Equal(t, want, r.Fields[0].Value, "module %s", r.Module)
		next[r.Module] = want + 1
	}
}

func TestGuardCloseIsIdempotent(t *testing.T) {
	capture := &captureDrain{}
	drain := newAsyncDrain(capture, 0)
	guard := &Guard{drain: drain, timeout: time.Second}

	drain.Log(Record{Level: InfoLevel, Message: "one"})
	require.NoError(t, guard.Close())
	require.NoError(t, guard.Close())
	assert.Equal(t, 1, capture.len())
}

func TestNoopGuard(t *testing.T) {
	var guard *Guard
	require.NoError(t, guard.Close())
	require.NoError(t, (&Guard{}).Close())
}

// stallDrain blocks every write until released.
type stallDrain struct {
	release chan struct{}
	inner   Drain
}

func (d *stallDrain) Log(r Record) {
	<-d.release
	d.inner.Log(r)
}

func TestGuardCloseFlushTimeout(t *testing.T) {
	capture := &captureDrain{}
	stalled := &stallDrain{release: make(chan struct{}), inner: capture}
	drain := newAsyncDrain(stalled, 0)
	guard := &Guard{drain: drain, timeout: 20 * time.Millisecond}

	for i := 0; i < 50; i++ {
		drain.Log(Record{Level: InfoLevel, Message: "queued"})
	}

	err := guard.Close()
	require.ErrorIs(t, err, ErrFlushTimeout)

	// Unblock the consumer so the goroutine can exit.
	close(stalled.release)
}

func TestBoundedQueueBackpressure(t *testing.T) {
	capture := &captureDrain{}
	stalled := &stallDrain{release: make(chan struct{}), inner: capture}
	drain := newAsyncDrain(stalled, 2)
	guard := &Guard{drain: drain, timeout: 5 * time.Second}

	produced := make(chan struct{})
	go func() {
		for i := 0; i < 10; i++ {
			drain.Log(Record{Level: InfoLevel, Message: "bp", Fields: []Field{Int("seq", i)}})
		}
		close(produced)
	}()

	// With the consumer stalled and a queue limit of 2 the producer cannot
	// finish all 10 enqueues.
	select {
	case <-produced:
		t.Fatal("producer finished despite full bounded queue")
	case <-time.After(50 * time.Millisecond):
	}

	close(stalled.release)
	<-produced
	require.NoError(t, guard.Close())
	assert.Equal(t, 10, capture.len())
}
