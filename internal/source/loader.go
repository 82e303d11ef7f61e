package source

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"advocates/internal/eventbus"
)

// Loader runs dataset fetches in the background and reports results on the bus.
// At most one fetch is in flight: a new request cancels the previous one, and
// results of cancelled fetches are never published.
type Loader struct {
	ctx    context.Context
	bus    eventbus.EventBus
	source Source
	logger *zap.Logger

	mu     sync.Mutex
	seq    uint64
	cancel context.CancelFunc
	closed bool
	wg     sync.WaitGroup

	unsubscribe func()
}

// NewLoader creates a loader bound to ctx. It subscribes to load requests on
// the bus; once ctx is done nothing more is published.
func NewLoader(ctx context.Context, bus eventbus.EventBus, src Source, logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	l := &Loader{
		ctx:    ctx,
		bus:    bus,
		source: src,
		logger: logger.Named("loader"),
	}

	l.unsubscribe = bus.Subscribe(eventbus.EventLoadRequested, func(eventbus.DomainEvent) {
		l.Load()
	})

	return l
}

// Load starts a fetch, cancelling any fetch still in flight.
// It returns the sequence number carried by the resulting events.
func (l *Loader) Load() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed || l.ctx.Err() != nil {
		return l.seq
	}
	if l.cancel != nil {
		l.cancel()
	}

	l.seq++
	seq := l.seq
	fetchCtx, cancel := context.WithCancel(l.ctx)
	l.cancel = cancel

	l.bus.Publish(eventbus.LoadStartedEvent{Seq: seq, Source: l.source.Name()})

	l.wg.Add(1)
	go l.run(fetchCtx, cancel, seq)

	return seq
}

func (l *Loader) run(ctx context.Context, cancel context.CancelFunc, seq uint64) {
	defer l.wg.Done()
	defer cancel()

	advocates, err := l.source.Fetch(ctx)

	l.mu.Lock()
	defer l.mu.Unlock()

	if ctx.Err() != nil || seq != l.seq {
		l.logger.Debug("dropping superseded load", zap.Uint64("seq", seq))
		return
	}
	l.cancel = nil

	if err != nil {
		l.logger.Error("failed to load advocates",
			zap.String("source", l.source.Name()),
			zap.Uint64("seq", seq),
			zap.Error(err))
		l.bus.Publish(eventbus.AdvocatesLoadFailedEvent{Seq: seq, Source: l.source.Name(), Err: err})
		return
	}

	l.logger.Info("advocates loaded",
		zap.String("source", l.source.Name()),
		zap.Uint64("seq", seq),
		zap.Int("count", len(advocates)))
	l.bus.Publish(eventbus.AdvocatesLoadedEvent{Seq: seq, Source: l.source.Name(), Advocates: advocates})
}

// Close cancels any in-flight fetch, stops listening for requests and waits
// for background work to finish. Load is a no-op afterwards, including calls
// from request handlers the bus dispatched before Close.
func (l *Loader) Close() {
	l.unsubscribe()

	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return
	}
	// No wg.Add can happen once closed is set
	l.closed = true
	if l.cancel != nil {
		l.cancel()
		l.cancel = nil
	}
	// Invalidate whatever is still running
	l.seq++
	l.mu.Unlock()

	l.wg.Wait()
}

// Wait blocks until all started fetches have finished
func (l *Loader) Wait() {
	l.wg.Wait()
}
