// Package errors provides standardized error handling patterns for StreamKit components.
//
// # Overview
//
// The errors package implements a three-class error classification system for
// bounded stream processing: Transient (temporary, retryable), Invalid (bad
// input, non-retryable), and Fatal (unrecoverable, stop processing).
//
// This classification enables intelligent error handling strategies throughout
// StreamKit, allowing callers to make informed decisions about retries and
// failure recovery without hardcoded error string matching. The canonical
// example is a buffer overrun: a synchronous write that exceeds the free
// buffer space returns ErrBufferOverrun, which classifies as Transient,
// so the caller consumes or waits and retries. A write attempted after
// close was requested returns ErrStreamClosing, which classifies as
// Fatal; the stream is terminally errored and nothing should retry.
//
// # Error Classification
//
//   - Transient: buffer overruns, context timeouts (retry recommended)
//   - Invalid: malformed input, validation failures, bad configuration (do not retry)
//   - Fatal: protocol violations, async write timeouts, terminal stream states
//
// The classification system integrates with Go's standard error handling,
// supporting errors.Is(), errors.As(), and error wrapping chains.
//
// # Quick Start
//
// Use standard error variables for known conditions:
//
//	if free < len(values) {
//	    return errors.ErrBufferOverrun
//	}
//
// Wrap errors with context for debugging:
//
//	if err := validator(v); err != nil {
//	    return errors.WrapInvalid(err, "ByteStream", "Write", "element validation")
//	}
//
// Check classification for retry logic:
//
//	if err := s.Write(v); err != nil {
//	    if errors.IsTransient(err) {
//	        // consume or wait, then retry
//	    } else if errors.IsFatal(err) {
//	        // stream is dead; stop producing
//	    }
//	}
//
// # Error Wrapping Pattern
//
// All error wrapping follows the standardized format:
//
//	"component.method: action failed: %w"
//
// Three wrapper functions provide classification-aware wrapping:
//
//	errors.WrapTransient(err, "Component", "Method", "action")  // For retryable errors
//	errors.WrapInvalid(err, "Component", "Method", "action")    // For validation errors
//	errors.WrapFatal(err, "Component", "Method", "action")      // For unrecoverable errors
//
// The generic Wrap() function preserves the original error's classification
// through the chain.
//
// # Retry Configuration
//
// RetryConfig carries classification-aware retry policy and converts to the
// streamkit pkg/retry framework's Config via ToRetryConfig(), so retry
// decisions and backoff calculation share one source of truth.
//
// # Thread Safety
//
// All classification and wrapping operations are thread-safe. Error variables
// are immutable and safe for concurrent access.
package errors
