package stream

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/c360/streamkit/errors"
	"github.com/c360/streamkit/pkg/retry"
)

// WriteAsync writes values once the buffer has room for all of them,
// polling for free space on the stream's cadence until the timeout
// elapses. The outcome is delivered on the returned channel (buffered,
// never blocks the stream) exactly once: nil on success, otherwise the
// failure.
//
// A timeout drives the stream to Errored with ErrWriteTimeout; close
// requested while the write is still waiting drives it to Errored with
// ErrStreamClosing. Both are also routed through the onError handler,
// since the caller may not be watching the returned channel. There is
// no ordering guarantee across concurrent WriteAsync calls, and the
// operation cannot be cancelled from outside.
func (s *Stream[T]) WriteAsync(values []T, timeout time.Duration) <-chan error {
	result := make(chan error, 1)
	if timeout <= 0 {
		timeout = DefaultAsyncTimeout
	}

	s.mu.Lock()
	switch s.state {
	case Closed, Errored:
		s.mu.Unlock()
		result <- errors.WrapFatal(errors.ErrStreamTerminated, "stream", "WriteAsync", "state check")
		return result
	case ClosePending:
		err := errors.WrapFatal(errors.ErrStreamClosing, "stream", "WriteAsync", "state check")
		s.stats.Reject()
		if s.metrics != nil {
			s.metrics.writeFailure("closing")
		}
		fire := s.failLocked(err)
		s.mu.Unlock()
		if fire != nil {
			fire()
		}
		result <- err
		return result
	}

	s.outstandingAsync++
	s.stats.AsyncWrite()
	if s.metrics != nil {
		s.metrics.asyncStarted()
	}
	s.mu.Unlock()

	go s.runAsyncWrite(values, timeout, result)
	return result
}

// runAsyncWrite polls the synchronous admission path under a deadline.
func (s *Stream[T]) runAsyncWrite(values []T, timeout time.Duration, result chan<- error) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	cadence := s.opts.pollCadence
	attempts := int(timeout/cadence) + 1
	cfg := retry.Fixed(cadence, attempts)

	err := retry.Do(ctx, cfg, func() error {
		return s.tryAdmit(values)
	})

	var final error
	if err != nil {
		final = s.resolveAsyncFailure(err)
	}

	// The outstanding counter gates close completion, so it is only
	// released after the failure (if any) has been applied.
	s.mu.Lock()
	s.outstandingAsync--
	if s.metrics != nil {
		s.metrics.asyncFinished()
	}
	fire := s.completeCloseLocked()
	s.mu.Unlock()
	if fire != nil {
		fire()
	}

	result <- final
}

// tryAdmit is one polling attempt: a synchronous write that reports
// overflow as retryable and everything else as final.
func (s *Stream[T]) tryAdmit(values []T) error {
	s.mu.Lock()

	switch s.state {
	case Closed, Errored:
		s.mu.Unlock()
		return retry.NonRetryable(errors.ErrStreamTerminated)
	case ClosePending:
		s.mu.Unlock()
		return retry.NonRetryable(errors.ErrStreamClosing)
	}

	for _, v := range values {
		if verr := s.opts.validator(v); verr != nil {
			s.mu.Unlock()
			return retry.NonRetryable(
				errors.WrapInvalid(verr, "stream", "WriteAsync", "element validation"))
		}
	}

	if s.size+len(values) > len(s.items) {
		s.mu.Unlock()
		return errors.ErrBufferOverrun
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

// resolveAsyncFailure maps a polling outcome to the caller-visible
// failure and applies the corresponding state transition.
func (s *Stream[T]) resolveAsyncFailure(err error) error {
	var final error
	var kind string

	switch {
	case stderrors.Is(err, errors.ErrStreamTerminated):
		// Another failure already terminated the stream; reject the
		// write without a second transition.
		return errors.WrapFatal(errors.ErrStreamTerminated, "stream", "WriteAsync", "state check")

	case stderrors.Is(err, errors.ErrStreamClosing):
		final = errors.WrapFatal(errors.ErrStreamClosing, "stream", "WriteAsync", "close detection")
		kind = "closing"
		s.stats.Reject()

	case stderrors.Is(err, context.DeadlineExceeded), stderrors.Is(err, errors.ErrBufferOverrun):
		final = errors.WrapFatal(errors.ErrWriteTimeout, "stream", "WriteAsync", "deadline check")
		kind = "timeout"
		s.stats.Timeout()

	default:
		// Element validation failure, already classified and wrapped.
		final = err
		kind = "invalid"
		s.stats.Reject()
	}

	s.mu.Lock()
	if s.metrics != nil {
		s.metrics.writeFailure(kind)
	}
	fire := s.failLocked(final)
	s.mu.Unlock()
	if fire != nil {
		fire()
	}
	return final
}

// OutstandingAsyncWrites returns the number of in-flight asynchronous
// writes that have not yet resolved or rejected.
func (s *Stream[T]) OutstandingAsyncWrites() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.outstandingAsync
}
