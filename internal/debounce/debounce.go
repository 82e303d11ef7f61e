// Package debounce delays propagation of a rapidly changing value until it
// has been stable for a fixed quiet period.
package debounce

import (
	"context"
	"sync"
	"time"
)

// DefaultDelay is the quiet period used for search input
const DefaultDelay = 300 * time.Millisecond

// Timer is the subset of *time.Timer the debouncer needs
type Timer interface {
	Stop() bool
}

// Clock schedules callbacks. The zero configuration uses the wall clock.
type Clock interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type realClock struct{}

func (realClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// Option configures a Debouncer
type Option func(*options)

type options struct {
	clock Clock
}

// WithClock replaces the wall clock, mostly for tests
func WithClock(c Clock) Option {
	return func(o *options) {
		if c != nil {
			o.clock = c
		}
	}
}

// Debouncer owns at most one live timer for a single logical value.
// Every Set restarts the quiet period; the settled value only moves once
// the period elapses with no newer Set.
type Debouncer[T any] struct {
	// deliverMu serializes fire: each timer checks its sequence and runs
	// onSettle under it, so settles reach onSettle in Set order
	deliverMu sync.Mutex

	mu       sync.Mutex
	delay    time.Duration
	clock    Clock
	onSettle func(T)

	timer      Timer
	seq        uint64
	pending    T
	hasPending bool
	settled    T
	stopped    bool

	releaseCtx func() bool
}

// New creates a debouncer with quiet period delay. onSettle, if non-nil, is
// called from the timer goroutine each time a value settles. When ctx is
// done the debouncer stops and drops anything pending.
func New[T any](ctx context.Context, delay time.Duration, onSettle func(T), opts ...Option) *Debouncer[T] {
	o := options{clock: realClock{}}
	for _, opt := range opts {
		opt(&o)
	}
	if delay <= 0 {
		delay = DefaultDelay
	}

	d := &Debouncer[T]{
		delay:    delay,
		clock:    o.clock,
		onSettle: onSettle,
	}
	if ctx != nil {
		if ctx.Err() != nil {
			d.stopped = true
			return d
		}
		d.releaseCtx = context.AfterFunc(ctx, d.Stop)
	}
	return d
}

// Set records a new input value and restarts the quiet period
func (d *Debouncer[T]) Set(v T) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}
	if d.timer != nil {
		d.timer.Stop()
	}

	d.seq++
	seq := d.seq
	d.pending = v
	d.hasPending = true
	d.timer = d.clock.AfterFunc(d.delay, func() { d.fire(seq) })
}

// Value returns the last settled value without blocking
func (d *Debouncer[T]) Value() T {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.settled
}

// Pending returns the value waiting for its quiet period, if any
func (d *Debouncer[T]) Pending() (T, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pending, d.hasPending
}

// Stop cancels any pending timer. Later calls to Set are ignored.
func (d *Debouncer[T]) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}
	d.stopped = true
	d.seq++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	var zero T
	d.pending = zero
	d.hasPending = false
	if d.releaseCtx != nil {
		d.releaseCtx()
	}
}

// Stopped reports whether the debouncer has been torn down
func (d *Debouncer[T]) Stopped() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.stopped
}

func (d *Debouncer[T]) fire(seq uint64) {
	d.deliverMu.Lock()
	defer d.deliverMu.Unlock()

	d.mu.Lock()
	// A newer Set or a Stop raced with this timer; its value is stale.
	if d.stopped || seq != d.seq {
		d.mu.Unlock()
		return
	}
	v := d.pending
	d.settled = v
	var zero T
	d.pending = zero
	d.hasPending = false
	d.timer = nil
	cb := d.onSettle
	d.mu.Unlock()

	if cb != nil {
		cb(v)
	}
}
