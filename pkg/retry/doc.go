// Package retry provides simple exponential backoff retry logic for transient failures.
//
// # Overview
//
// This package offers a minimal retry mechanism with exponential backoff, designed to
// handle transient failures such as buffer overruns, resource initialization, and
// component startup.
//
// # Core Functions
//
//   - Do: Execute function with retry and exponential backoff
//   - DoWithResult: Execute function with retry, returns both result and error
//
// # Configuration Presets
//
//   - DefaultConfig(): 3 attempts, 100ms-5s delay (normal operations)
//   - Quick(): 10 attempts, 50ms-1s delay (component startup)
//   - Persistent(): 30 attempts, 200ms-10s delay (critical resources)
//   - Fixed(cadence, attempts): constant-delay polling (capacity waits)
//
// # Usage Examples
//
// Basic retry with defaults:
//
//	err := retry.Do(ctx, retry.DefaultConfig(), func() error {
//	    return store.Open()
//	})
//
// Polling a bounded stream for free capacity on a fixed cadence:
//
//	cfg := retry.Fixed(10*time.Millisecond, attempts)
//	err := retry.Do(ctx, cfg, func() error {
//	    return s.Write(values...)
//	})
//
// Retry with result:
//
//	v, err := retry.DoWithResult(ctx, retry.DefaultConfig(), func() (int, error) {
//	    return fetch()
//	})
//
// # Design Philosophy
//
// This package is intentionally minimal:
//
//   - No circuit breakers
//   - No metrics collection (use instrumentation at call site)
//   - No complex error classification (caller decides what to retry)
//   - Just backoff with optional jitter
//
// Callers that must stop retrying on a specific failure wrap it with
// NonRetryable(); Do returns such errors immediately.
//
// # Context Cancellation
//
// All retry operations respect context cancellation and will immediately stop retrying
// when the context is cancelled, either during operation execution or during backoff delay.
//
// # Thread Safety
//
// All functions are safe for concurrent use. The jitter mechanism uses a thread-safe
// random source to avoid contention.
package retry
