package stream

import (
	"time"

	"github.com/c360/streamkit/metric"
	"github.com/c360/streamkit/validate"
)

const (
	// DefaultCapacity bounds streams constructed without WithCapacity.
	DefaultCapacity = 64
	// DefaultPollCadence is the interval at which asynchronous writes
	// re-check for free buffer space.
	DefaultPollCadence = 10 * time.Millisecond
	// DefaultAsyncTimeout applies when WriteAsync is given a
	// non-positive timeout.
	DefaultAsyncTimeout = 5 * time.Second
)

// streamOptions holds construction-time configuration. All fields are
// immutable once the stream exists.
type streamOptions[T any] struct {
	capacity    int
	validator   validate.Element[T]
	pollCadence time.Duration

	onData   func(*Stream[T])
	onClosed func(*Stream[T])
	onError  func(*Stream[T], error)

	metricsReg  *metric.Registry
	metricsName string
}

// Option configures a Stream at construction time.
type Option[T any] func(*streamOptions[T])

func defaultOptions[T any]() *streamOptions[T] {
	return &streamOptions[T]{
		capacity:    DefaultCapacity,
		validator:   validate.Identity[T](),
		pollCadence: DefaultPollCadence,
	}
}

// WithCapacity sets the buffer bound. Non-positive values fall back to
// DefaultCapacity.
func WithCapacity[T any](capacity int) Option[T] {
	return func(o *streamOptions[T]) {
		if capacity > 0 {
			o.capacity = capacity
		}
	}
}

// WithValidator sets the element validator consulted before any element
// is admitted to the buffer.
func WithValidator[T any](v validate.Element[T]) Option[T] {
	return func(o *streamOptions[T]) {
		if v != nil {
			o.validator = v
		}
	}
}

// WithPollCadence sets the asynchronous write polling interval.
func WithPollCadence[T any](cadence time.Duration) Option[T] {
	return func(o *streamOptions[T]) {
		if cadence > 0 {
			o.pollCadence = cadence
		}
	}
}

// WithOnData registers a handler invoked when the buffer transitions
// from empty to non-empty (edge-triggered, not per element).
func WithOnData[T any](fn func(*Stream[T])) Option[T] {
	return func(o *streamOptions[T]) {
		o.onData = fn
	}
}

// WithOnClosed registers a handler invoked at most once, when the
// stream reaches Closed.
func WithOnClosed[T any](fn func(*Stream[T])) Option[T] {
	return func(o *streamOptions[T]) {
		o.onClosed = fn
	}
}

// WithOnError registers a handler invoked at most once, when the stream
// reaches Errored.
func WithOnError[T any](fn func(*Stream[T], error)) Option[T] {
	return func(o *streamOptions[T]) {
		o.onError = fn
	}
}

// WithMetrics exports the stream's counters through the given registry
// under the supplied stream name label.
func WithMetrics[T any](registry *metric.Registry, name string) Option[T] {
	return func(o *streamOptions[T]) {
		o.metricsReg = registry
		o.metricsName = name
	}
}
