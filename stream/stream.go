package stream

import (
	"sync"

	"github.com/c360/streamkit/errors"
)

// Stream is a bounded, in-process, single-producer/single-consumer data
// channel with an explicit lifecycle. Elements are buffered FIFO in a
// circular buffer whose capacity is fixed at construction.
//
// All methods are safe for concurrent use; the synchronous surface
// (Write, Read, ReadAll, Close) executes atomically with respect to
// other operations. Callbacks are always invoked outside the stream's
// internal lock, so a handler may call back into the stream.
type Stream[T any] struct {
	mu    sync.Mutex
	items []T
	head  int // next write position
	tail  int // next read position
	size  int

	state     State
	storedErr error

	// closedFired/errorFired enforce the at-most-once callback
	// contract independently of the state transition itself.
	closedFired bool
	errorFired  bool

	outstandingAsync int

	stats   *Statistics
	metrics *streamMetrics
	opts    *streamOptions[T]
}

// New creates a Stream with the given options. The only error condition
// is invalid metrics configuration.
func New[T any](opts ...Option[T]) (*Stream[T], error) {
	o := defaultOptions[T]()
	for _, opt := range opts {
		opt(o)
	}

	var metrics *streamMetrics
	if o.metricsReg != nil {
		var err error
		metrics, err = newStreamMetrics(o.metricsReg, o.metricsName)
		if err != nil {
			return nil, err
		}
	}

	s := &Stream[T]{
		items:   make([]T, o.capacity),
		state:   Ready,
		stats:   NewStatistics(),
		metrics: metrics,
		opts:    o,
	}

	if s.metrics != nil {
		s.metrics.opened()
	}
	return s, nil
}

// Write appends values to the buffer in the order supplied.
//
// Overflow is recoverable: when the values do not all fit, nothing is
// admitted, the state is unchanged and ErrBufferOverrun is returned.
// Writing after Close has been requested is a protocol violation that
// drives the stream to Errored. A value rejected by the element
// validator also drives the stream to Errored.
func (s *Stream[T]) Write(values ...T) error {
	if len(values) == 0 {
		return nil
	}

	s.mu.Lock()

	switch s.state {
	case Closed, Errored:
		s.mu.Unlock()
		return errors.WrapFatal(errors.ErrStreamTerminated, "stream", "Write", "state check")
	case ClosePending:
		err := errors.WrapFatal(errors.ErrStreamClosing, "stream", "Write", "state check")
		s.stats.Reject()
		if s.metrics != nil {
			s.metrics.writeFailure("closing")
		}
		fire := s.failLocked(err)
		s.mu.Unlock()
		if fire != nil {
			fire()
		}
		return err
	}

	// Validate every element before admitting any.
	for _, v := range values {
		if verr := s.opts.validator(v); verr != nil {
			err := errors.WrapInvalid(verr, "stream", "Write", "element validation")
			s.stats.Reject()
			if s.metrics != nil {
				s.metrics.writeFailure("invalid")
			}
			fire := s.failLocked(err)
			s.mu.Unlock()
			if fire != nil {
				fire()
			}
			return err
		}
	}

	if s.size+len(values) > len(s.items) {
		s.stats.Overflow()
		if s.metrics != nil {
			s.metrics.writeFailure("overrun")
		}
		s.mu.Unlock()
		return errors.WrapTransient(errors.ErrBufferOverrun, "stream", "Write", "capacity check")
	}

	wasEmpty := s.size == 0
	for _, v := range values {
		s.items[s.head] = v
		s.head = (s.head + 1) % len(s.items)
		s.size++
		s.stats.Write()
	}
	s.stats.UpdateSize(int64(s.size))
	if s.metrics != nil {
		s.metrics.recordWrite(len(values))
	}

	var fire func()
	if wasEmpty && s.opts.onData != nil {
		onData := s.opts.onData
		fire = func() { onData(s) }
	}
	s.mu.Unlock()
	if fire != nil {
		fire()
	}
	return nil
}

// Read removes and returns the oldest buffered element. The second
// return is false when the buffer is empty; missing data is never an
// error. Buffered leftovers remain readable after close.
func (s *Stream[T]) Read() (T, bool) {
	var zero T

	s.mu.Lock()
	if s.size == 0 {
		s.mu.Unlock()
		return zero, false
	}

	v := s.items[s.tail]
	s.items[s.tail] = zero // release for GC
	s.tail = (s.tail + 1) % len(s.items)
	s.size--
	s.stats.Read()
	s.stats.UpdateSize(int64(s.size))
	if s.metrics != nil {
		s.metrics.recordRead(1)
	}

	fire := s.completeCloseLocked()
	s.mu.Unlock()
	if fire != nil {
		fire()
	}
	return v, true
}

// ReadAll atomically removes and returns the entire buffer contents in
// FIFO order. Returns an empty slice when there is nothing buffered.
func (s *Stream[T]) ReadAll() []T {
	var zero T

	s.mu.Lock()
	out := make([]T, 0, s.size)
	for s.size > 0 {
		out = append(out, s.items[s.tail])
		s.items[s.tail] = zero
		s.tail = (s.tail + 1) % len(s.items)
		s.size--
		s.stats.Read()
	}
	s.stats.UpdateSize(0)
	if s.metrics != nil && len(out) > 0 {
		s.metrics.recordRead(len(out))
	}

	fire := s.completeCloseLocked()
	s.mu.Unlock()
	if fire != nil {
		fire()
	}
	return out
}

// Close requests an orderly shutdown. Idempotent; a no-op on terminal
// streams. The stream reaches Closed immediately when the buffer is
// empty and no asynchronous writes are outstanding; otherwise it parks
// in ClosePending until the last element is read and the last async
// write resolves.
func (s *Stream[T]) Close() error {
	s.mu.Lock()
	if s.state.Terminal() {
		s.mu.Unlock()
		return nil
	}
	s.state = ClosePending

	fire := s.completeCloseLocked()
	s.mu.Unlock()
	if fire != nil {
		fire()
	}
	return nil
}

// State returns the current lifecycle state.
func (s *Stream[T]) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Err returns the stored terminal failure, non-nil exactly when the
// stream is Errored.
func (s *Stream[T]) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.storedErr
}

// Len returns the number of buffered elements.
func (s *Stream[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.size
}

// Cap returns the immutable buffer capacity.
func (s *Stream[T]) Cap() int {
	return len(s.items)
}

// Free returns the remaining buffer capacity.
func (s *Stream[T]) Free() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items) - s.size
}

// CanRead reports whether a Read would return an element.
func (s *Stream[T]) CanRead() bool {
	return s.Len() > 0
}

// HasData is an alias for CanRead.
func (s *Stream[T]) HasData() bool {
	return s.CanRead()
}

// CanWrite reports whether the stream still accepts writes.
func (s *Stream[T]) CanWrite() bool {
	return s.State() == Ready
}

// HasError reports whether the stream is Errored.
func (s *Stream[T]) HasError() bool {
	return s.State() == Errored
}

// Closed reports whether the stream reached the orderly terminal state.
func (s *Stream[T]) Closed() bool {
	return s.State() == Closed
}

// Stats returns the stream's statistics tracker (always available).
func (s *Stream[T]) Stats() *Statistics {
	return s.stats
}

// failLocked transitions to Errored, stores the cause and returns the
// onError invocation to run after the lock is released. No-op (nil)
// when the stream is already terminal.
func (s *Stream[T]) failLocked(err error) func() {
	if s.state.Terminal() {
		return nil
	}
	s.state = Errored
	s.storedErr = err
	if s.metrics != nil {
		s.metrics.errored()
		s.metrics.terminal()
	}
	if s.opts.onError != nil && !s.errorFired {
		s.errorFired = true
		onError := s.opts.onError
		return func() { onError(s, err) }
	}
	return nil
}

// completeCloseLocked finishes a pending close once the buffer is empty
// and no asynchronous writes remain, returning the onClosed invocation
// to run after the lock is released.
func (s *Stream[T]) completeCloseLocked() func() {
	if s.state != ClosePending || s.size != 0 || s.outstandingAsync != 0 {
		return nil
	}
	s.state = Closed
	if s.metrics != nil {
		s.metrics.terminal()
	}
	if s.opts.onClosed != nil && !s.closedFired {
		s.closedFired = true
		onClosed := s.opts.onClosed
		return func() { onClosed(s) }
	}
	return nil
}
