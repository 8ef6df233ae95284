// Package worker provides a generic, thread-safe worker pool for concurrent task processing.
//
// # Overview
//
// The worker package implements a worker pool pattern with:
//   - Generic type support for type-safe work processing
//   - Bounded queues with backpressure (non-blocking submit)
//   - Context-aware cancellation and graceful shutdown
//   - Always-on statistics plus optional Prometheus metrics
//   - Configurable worker count and queue sizing
//
// In StreamKit the pool's primary consumer is stream.Dispatcher, which uses
// it to hand drained stream elements to a caller-supplied handler.
//
// # Usage
//
//	pool := worker.NewPool[Job](
//	    5,     // workers
//	    100,   // queue size
//	    func(ctx context.Context, job Job) error {
//	        return handle(ctx, job)
//	    },
//	)
//
//	if err := pool.Start(ctx); err != nil {
//	    return err
//	}
//	defer pool.Stop(5 * time.Second)
//
//	if err := pool.Submit(job); err != nil {
//	    if errors.Is(err, worker.ErrQueueFull) {
//	        // backpressure: back off or drop
//	    }
//	}
//
// # Design Notes
//
// Submit is non-blocking: a full queue returns ErrQueueFull immediately, so
// callers never stall a request path waiting for queue space. Stop closes
// the work channel, lets workers drain queued items, and waits up to the
// given timeout, returning ErrStopTimeout if workers don't finish.
//
// The pool does not interpret processor errors beyond counting failures; a
// processor that needs classification-aware handling applies it itself.
// Worker count is fixed at construction. FIFO dispatch to workers is
// guaranteed; processing completion order across multiple workers is not.
//
// # Thread Safety
//
// All public methods are safe for concurrent use. Statistics use atomic
// counters; lifecycle transitions are mutex-protected; Stop is idempotent.
package worker
