package stream

import (
	"context"
	"sync"
	"time"

	"github.com/c360/streamkit/errors"
	"github.com/c360/streamkit/metric"
	"github.com/c360/streamkit/pkg/worker"
)

// DefaultDrainCadence is the interval at which an idle Dispatcher
// re-checks its stream for data.
const DefaultDrainCadence = 5 * time.Millisecond

type dispatcherConfig struct {
	workers   int
	queueSize int
	cadence   time.Duration
	registry  *metric.Registry
	prefix    string
}

// DispatcherOption configures a Dispatcher at construction time.
type DispatcherOption func(*dispatcherConfig)

// WithWorkers sets the number of pool workers. One worker preserves
// the stream's FIFO order end to end.
func WithWorkers(n int) DispatcherOption {
	return func(c *dispatcherConfig) { c.workers = n }
}

// WithQueueSize sets the pool's pending-work bound.
func WithQueueSize(n int) DispatcherOption {
	return func(c *dispatcherConfig) { c.queueSize = n }
}

// WithDrainCadence sets the stream polling interval.
func WithDrainCadence(d time.Duration) DispatcherOption {
	return func(c *dispatcherConfig) {
		if d > 0 {
			c.cadence = d
		}
	}
}

// WithPoolMetrics exports the underlying worker pool's metrics through
// the given registry under the supplied prefix.
func WithPoolMetrics(registry *metric.Registry, prefix string) DispatcherOption {
	return func(c *dispatcherConfig) {
		c.registry = registry
		c.prefix = prefix
	}
}

// Dispatcher drains a Stream and hands each element to a handler
// through a bounded worker pool. It is the consumer side of a pipeline:
// the producer writes to the stream, the dispatcher's workers process.
//
// Delivery order across multiple workers is unspecified; configure a
// single worker when FIFO processing matters.
type Dispatcher[T any] struct {
	stream  *Stream[T]
	pool    *worker.Pool[T]
	cadence time.Duration

	lifecycleMu sync.Mutex
	started     bool
	stopping    bool
	stopped     bool
	quit        chan struct{}
	done        chan struct{}
}

// NewDispatcher creates a Dispatcher over the given stream and handler.
func NewDispatcher[T any](s *Stream[T], handler func(context.Context, T) error, opts ...DispatcherOption) (*Dispatcher[T], error) {
	if s == nil {
		return nil, errors.WrapInvalid(errors.ErrNilValue, "stream", "NewDispatcher", "stream check")
	}
	if handler == nil {
		return nil, errors.WrapInvalid(errors.ErrNilValue, "stream", "NewDispatcher", "handler check")
	}

	cfg := &dispatcherConfig{cadence: DefaultDrainCadence}
	for _, opt := range opts {
		opt(cfg)
	}

	var poolOpts []worker.Option[T]
	if cfg.registry != nil && cfg.prefix != "" {
		poolOpts = append(poolOpts, worker.WithMetricsRegistry[T](cfg.registry, cfg.prefix))
	}
	pool := worker.NewPool(cfg.workers, cfg.queueSize, handler, poolOpts...)

	return &Dispatcher[T]{
		stream:  s,
		pool:    pool,
		cadence: cfg.cadence,
	}, nil
}

// Start launches the worker pool and the drain loop. The drain loop
// exits on its own once the stream is terminal and fully drained.
func (d *Dispatcher[T]) Start(ctx context.Context) error {
	d.lifecycleMu.Lock()
	defer d.lifecycleMu.Unlock()

	if d.started {
		return errors.WrapInvalid(errors.ErrAlreadyStarted, "stream", "Dispatcher.Start", "lifecycle check")
	}
	if err := d.pool.Start(ctx); err != nil {
		return errors.Wrap(err, "stream", "Dispatcher.Start", "pool start")
	}

	d.quit = make(chan struct{})
	d.done = make(chan struct{})
	d.started = true

	go d.drainLoop(ctx)
	return nil
}

// Stop shuts down the dispatcher: the drain loop first pushes
// everything still buffered in the stream into the pool, then the pool
// finishes its queued work, all bounded by the timeout. Safe to call
// again after a timeout; idempotent once stopped.
func (d *Dispatcher[T]) Stop(timeout time.Duration) error {
	d.lifecycleMu.Lock()
	defer d.lifecycleMu.Unlock()

	if !d.started {
		return errors.WrapInvalid(errors.ErrNotStarted, "stream", "Dispatcher.Stop", "lifecycle check")
	}
	if d.stopped {
		return nil
	}

	if !d.stopping {
		close(d.quit)
		d.stopping = true
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case <-d.done:
	case <-timer.C:
		return errors.WrapFatal(worker.ErrStopTimeout, "stream", "Dispatcher.Stop", "drain loop shutdown")
	}

	if err := d.pool.Stop(timeout); err != nil {
		return errors.Wrap(err, "stream", "Dispatcher.Stop", "pool shutdown")
	}
	d.stopped = true
	return nil
}

// PoolStats returns the underlying worker pool statistics.
func (d *Dispatcher[T]) PoolStats() worker.PoolStats {
	return d.pool.Stats()
}

func (d *Dispatcher[T]) drainLoop(ctx context.Context) {
	defer close(d.done)

	ticker := time.NewTicker(d.cadence)
	defer ticker.Stop()

	var pending *T
	for {
		select {
		case <-ctx.Done():
			return
		case <-d.quit:
			d.finalDrain(ctx, pending)
			return
		case <-ticker.C:
			pending = d.drainOnce(pending)
			if pending == nil && d.stream.State().Terminal() && !d.stream.CanRead() {
				return
			}
		}
	}
}

// finalDrain empties the stream into the pool before the drain loop
// exits, so elements buffered at Stop time are processed rather than
// abandoned. Stop's timeout bounds the wait; context cancellation
// aborts it.
func (d *Dispatcher[T]) finalDrain(ctx context.Context, pending *T) {
	for {
		pending = d.drainOnce(pending)
		if pending == nil && !d.stream.CanRead() {
			return
		}
		select {
		case <-ctx.Done():
			return
		case <-time.After(d.cadence):
		}
	}
}

// drainOnce moves as many elements as the pool will accept, returning
// the element still awaiting queue space, if any.
func (d *Dispatcher[T]) drainOnce(pending *T) *T {
	for {
		if pending == nil {
			v, ok := d.stream.Read()
			if !ok {
				return nil
			}
			pending = &v
		}
		if err := d.pool.Submit(*pending); err != nil {
			// Pool queue full (or shutting down); retry on the next tick.
			return pending
		}
		pending = nil
	}
}
