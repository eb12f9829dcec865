// Package ringbuffer provides a fixed-capacity, allocation-free FIFO ring
// buffer with built-in statistics tracking and optional Prometheus metrics
// integration.
//
// # Overview
//
// The ringbuffer package implements a generic circular queue over a single
// slice allocated at construction. Elements arrive at the write cursor and
// leave from the read cursor in strict FIFO order; no operation allocates,
// copies storage, or blocks. The buffer is built for the single-owner hot
// path: one goroutine owns the buffer and pays no synchronization cost.
//
// # Quick Start
//
// Basic buffer creation:
//
//	buf, err := ringbuffer.New[int](1024)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Insert one element
//	err = buf.Push(42)
//
//	// Consume one element
//	value, ok := buf.Pop()
//
// Bulk transfer:
//
//	n, err := buf.Write(samples)      // inserts a prefix, ErrFull when truncated
//	n = buf.Read(out)                 // fills up to len(out), never fails
//
// With metrics:
//
//	buf, err := ringbuffer.New[[]byte](4096,
//		ringbuffer.WithMetrics(registry, "ingest-queue"),
//	)
//
// # Failure Contract
//
// The buffer rejects rather than overwrites: when it is full, Push and Write
// return ErrFull and the buffered elements are untouched. Every error is
// recoverable - the buffer is never corrupted by a failed call, and the same
// call succeeds once the condition is cleared (drain for ErrFull, a smaller
// request for ErrOutOfRange and ErrNonContiguous).
//
// Absence is not failure: Pop and Front report an empty buffer with a false
// second return, and Read of an empty buffer returns 0. Error returns are
// reserved for refused inserts and out-of-contract requests.
//
// # Borrowed Views
//
// Peek and Slices expose buffered elements without copying by returning
// slices backed directly by buffer storage:
//
//	view, err := buf.Peek(64)      // oldest 64 elements, contiguous or error
//	first, rest := buf.Slices()    // everything buffered, split at the wrap
//
// Peek returns ErrNonContiguous when the requested window wraps the physical
// end of storage; Slices serves exactly that case by returning the two runs
// separately. A view stays valid until the next call that inserts, consumes,
// or clears - treat it as borrowed, not owned.
//
// # Observability Architecture
//
// The package implements a dual-tracking pattern for observability:
//
// Statistics (Always On):
//   - Tracks all operations using atomic counters
//   - Zero configuration required
//   - Available via buf.Stats()
//   - Provides computed metrics (throughput, reject rate, utilization)
//   - No external dependencies
//
// Prometheus Metrics (Optional):
//   - Enabled via WithMetrics() option
//   - Exports to Prometheus for time-series monitoring
//   - Includes component labels for instance identification
//   - Standard metric types (Counter, Gauge)
//
// # Design Decision: Dual Tracking Pattern
//
// Both Statistics and Metrics track operations independently, which appears
// redundant but serves distinct operational purposes:
//
// 1. Independence: Statistics work without Prometheus dependency
//   - Always available for debugging, even in minimal deployments
//   - No external infrastructure required for basic observability
//
// 2. Computed Metrics: Statistics provide derived values not available in raw Prometheus
//   - Throughput (inserts/sec) with built-in timing
//   - Reject rate as a fraction of insert attempts
//   - Utilization relative to capacity
//
// 3. Different Use Cases:
//   - Statistics: Programmatic access, debugging, tests, local monitoring
//   - Metrics: Time-series analysis, dashboards, alerting, production monitoring
//
// 4. Performance Trade-off:
//   - Overhead: one atomic increment per operation, plus counter and gauge
//     updates when metrics are enabled
//   - Cost is negligible compared to observability value
//
// # Design Decision: Single-Owner Concurrency
//
// The buffer performs no internal locking. Cursor and length updates are
// plain field writes, so a buffer must be owned by one goroutine at a time;
// callers that share one across goroutines serialize access themselves.
// This is deliberate: the buffer targets hot paths where a mutex acquisition
// per element would dominate the cost of the operation itself, and where
// ownership transfer between stages is already part of the surrounding
// design.
//
// Statistics are the exception: counters use atomic operations and the
// length watermark is mutex-protected, so Stats() may be read from a
// monitoring goroutine while the owner operates the buffer.
//
// # Performance Characteristics
//
// Operations:
//   - Push/Pop/Front: O(1) constant time
//   - Write/Read: O(n) where n is elements transferred
//   - Discard: O(1) cursor arithmetic (O(n) only WithZeroOnRelease)
//   - Peek/Slices: O(1) - views are subslices, never copies
//   - Len/IsFull/IsEmpty/Available: O(1) constant time
//
// Memory:
//   - Pre-allocated circular array
//   - No dynamic allocations during operation
//   - Memory usage: capacity * sizeof(T)
//   - Statistics overhead: ~200 bytes
//   - Metrics overhead: ~1KB when enabled
//
// Consumed slots retain their last value by default so the release path
// stays write-free. When T holds pointers and that pinning matters, build
// the buffer WithZeroOnRelease() to clear slots as they are consumed.
//
// # Common Use Cases
//
// Network Packet Staging:
//
//	udpBuffer, _ := ringbuffer.New[[]byte](8192,
//		ringbuffer.WithMetrics(registry, "udp-input"),
//	)
//
// Telemetry Sample Windows:
//
//	samples, _ := ringbuffer.New[Sample](4096)
//	// producer: samples.Write(batch)
//	// consumer: samples.Read(chunk), or samples.Discard(n) to skip
//
// Zero-Copy Framing:
//
//	if frame, err := buf.Peek(frameLen); err == nil {
//		decode(frame)
//		buf.Discard(frameLen)
//	}
//
// # Testing
//
// The package includes comprehensive tests, property-based tests against a
// reference model, and benchmarks:
//
//	go test ./ringbuffer
//	go test -bench=. ./ringbuffer
//
// # Examples
//
// See example_test.go for runnable examples that appear in godoc.
package ringbuffer
