// Package ringkit provides fixed-capacity in-memory staging for
// single-owner hot paths, together with the observability plumbing a
// production service wants around it.
//
// # Philosophy: Bounded Staging Without Allocation
//
// Unbounded queues turn load spikes into memory pressure and GC pauses
// exactly when a service can least afford them. RingKit takes the
// opposite position: storage is sized once at construction, a full
// buffer refuses new elements instead of growing or silently dropping
// old ones, and the steady-state operations never allocate. The caller
// decides what buffer pressure means - shed load, age out the oldest
// elements with an explicit discard, or backpressure the producer.
//
// The core buffer is deliberately not thread-safe. It is built for the
// single-owner hot loop (a network reader, a decoder, a sampler) where
// internal locking would only add cost that the caller then cannot
// remove. Ownership transfer between goroutines belongs to channels;
// staging within one goroutine belongs here.
//
// # Architecture
//
//	┌──────────────────────────────────┐
//	│           ringbuffer             │  Fixed-capacity FIFO core
//	│   (Push, Pop, Write, Read,       │  Single-owner, no locking,
//	│    Peek, Slices, Discard)        │  no steady-state allocation
//	└──────────────────────────────────┘
//	      ↓ always             ↓ optional
//	┌───────────────┐   ┌───────────────┐
//	│  Statistics   │   │    metric     │  Prometheus registry and
//	│ (atomic ctrs) │   │ (+HTTP server)│  exposition endpoint
//	└───────────────┘   └───────────────┘
//
// Every buffer carries lightweight atomic statistics. Prometheus
// export is opt-in per buffer and shares one registry and one scrape
// endpoint across all instrumented buffers in the process. The errors
// package underpins both layers with classified errors that separate
// transient pressure from caller mistakes.
//
// # Package Map
//
//   - ringbuffer: generic fixed-capacity FIFO ring with bulk transfer
//     and borrowed views
//   - metric: centralized Prometheus registry plus the HTTP server
//     that exposes it
//   - errors: error classification (transient, invalid, fatal) and
//     component/operation wrapping
//
// # Ring Layout
//
// The buffer is a slice walked by two cursors that wrap modulo the
// capacity. After four elements have been pushed and three older ones
// consumed, storage can look like this:
//
//	 index:   0     1     2     3     4     5
//	        [ e4 ][ -- ][ -- ][ e1 ][ e2 ][ e3 ]
//	                ↑           ↑
//	              head         tail
//	          (next write)    (oldest)
//
// The live window runs from tail forward and may wrap the physical
// end of the slice. Peek serves a borrowed view only while the window
// is contiguous; Slices always serves it as at most two spans, here
// [e1 e2 e3] and [e4].
//
// # Quick Start
//
//	buf, err := ringbuffer.New[Sample](4096)
//	if err != nil {
//		return err
//	}
//
//	if err := buf.Push(sample); errors.Is(err, ringbuffer.ErrFull) {
//		// Shed load, discard the oldest, or backpressure upstream
//	}
//
//	out := make([]Sample, 64)
//	n := buf.Read(out)
//	process(out[:n])
//
// # With Prometheus Export
//
//	registry := metric.NewRegistry()
//	server := metric.NewServer(9090, "/metrics", registry)
//	if err := server.Start(); err != nil {
//		return err
//	}
//	defer server.Stop()
//
//	buf, err := ringbuffer.New[Sample](4096,
//		ringbuffer.WithMetrics(registry, "ingest-staging"))
//
// Each instrumented buffer reports pushes, pops, discards, rejects,
// current length, and utilization under its component label.
package ringkit
