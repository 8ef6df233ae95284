// Package stream implements a bounded, in-process data channel with an
// explicit lifecycle, synchronous and asynchronous write paths, and
// edge-triggered notification callbacks.
//
// # Lifecycle
//
// A stream starts Ready and accepts reads and writes. Close moves it to
// ClosePending until the buffer drains and in-flight asynchronous
// writes resolve, then to Closed. Protocol violations (writing after
// close, failed element validation) and asynchronous write timeouts
// move it to Errored. Closed and Errored are terminal.
//
//	Ready ──close──▶ ClosePending ──drained──▶ Closed
//	  │                   │
//	  └───── violation / timeout ─────▶ Errored
//
// # Synchronous use
//
//	s, err := stream.New[int](stream.WithCapacity[int](128))
//	if err != nil { ... }
//
//	if err := s.Write(1, 2, 3); err != nil {
//	    // errors.IsTransient(err): buffer overrun, retry after a read
//	}
//	v, ok := s.Read() // ok == false means "no data yet", never an error
//
// Overflow is the one recoverable failure: a Write that does not fit
// leaves the buffer and state untouched and returns ErrBufferOverrun.
// Callers that need the write to land should check Free first or use
// WriteAsync.
//
// # Callbacks
//
// Handlers are bound at construction and invoked outside the stream's
// lock. OnData fires only on empty→non-empty transitions; OnClosed and
// OnError each fire at most once per stream:
//
//	s, _ := stream.New[int](
//	    stream.WithOnData(func(s *stream.Stream[int]) { drain(s) }),
//	    stream.WithOnClosed(func(s *stream.Stream[int]) { done() }),
//	    stream.WithOnError(func(s *stream.Stream[int], err error) { report(err) }),
//	)
//
// # Asynchronous writes
//
// WriteAsync waits for buffer capacity by polling on a fixed cadence
// under a hard deadline. The result channel receives exactly one value;
// failures are also routed through OnError because the caller may not
// be watching:
//
//	errc := s.WriteAsync(batch, 2*time.Second)
//	if err := <-errc; err != nil { ... }
//
// There is no ordering guarantee across concurrent WriteAsync calls.
//
// # Typed variants and dispatch
//
// ByteStream and BitStringStream bind element validators to the same
// state machine. Dispatcher consumes a stream through a worker pool for
// pipeline-style processing.
package stream
