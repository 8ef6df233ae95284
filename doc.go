// Package streamkit is a support library for bounded, in-process data
// channels and the small utilities that surround them.
//
// # Architecture
//
// The core abstraction is the one-shot stream: a bounded, single-producer/
// single-consumer transport with an explicit lifecycle and backpressure
// signalling. Everything else in the module is thin, stateless glue that
// the stream layer (or its callers) lean on.
//
//	┌─────────────────────────────────────┐
//	│            stream                   │  Stream[T] state machine,
//	│  (Write, WriteAsync, Read, Close)   │  typed variants, Dispatcher
//	└─────────────────────────────────────┘
//	           ↓ uses
//	┌─────────────────────────────────────┐
//	│   validate   errors   pkg/retry     │  element validators, error
//	│   pkg/worker metric                 │  classification, polling,
//	└─────────────────────────────────────┘  pools, observability
//	           +
//	┌─────────────────────────────────────┐
//	│     codec     guid     numeric      │  independent stateless
//	└─────────────────────────────────────┘  utilities
//
// # Package Overview
//
//   - stream: the bounded one-shot channel core and its typed variants
//   - validate: parameter guards and the pluggable element-validator contract
//   - errors: classified error handling (transient/invalid/fatal)
//   - codec: Base64, UTF-16, hex and bit-string conversions
//   - guid: random and time-based GUIDs plus a sequence generator
//   - numeric: checked 64-bit unsigned arithmetic helpers
//   - metric: Prometheus registry and scrape endpoint
//   - pkg/retry, pkg/worker: backoff polling and generic worker pools
//
// StreamKit deliberately contains no network transport, persistence or
// multi-consumer fan-out: streams live and die inside a single process.
package streamkit
