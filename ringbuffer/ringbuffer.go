package ringbuffer

import (
	"fmt"

	"github.com/c360/ringkit/errors"
)

// RingBuffer is a fixed-capacity FIFO queue over a single preallocated slice.
// Storage is allocated once at construction; no operation allocates afterward.
// A RingBuffer belongs to one goroutine at a time and performs no internal
// locking. Callers that share a buffer across goroutines must serialize
// access themselves.
type RingBuffer[T any] struct {
	items    []T
	capacity int
	head     int // Points to the next write position
	tail     int // Points to the next read position
	length   int

	stats         *Statistics    // ALWAYS initialized for observability
	metrics       *bufferMetrics // Optional Prometheus metrics
	zeroOnRelease bool
}

// New creates a ring buffer that holds at most capacity elements.
// Stats are ALWAYS collected for observability. Metrics are optional via WithMetrics().
// Returns an error if metrics registration fails when metrics are requested.
// Capacity is required - all other configuration is via functional options.
func New[T any](capacity int, options ...Option) (*RingBuffer[T], error) {
	if capacity <= 0 {
		capacity = 1 // Minimum capacity
	}

	opts := applyOptions(options...)

	// Stats are ALWAYS initialized - observability is not optional
	stats := NewStatistics()

	var metrics *bufferMetrics
	// Optionally expose stats as Prometheus metrics
	if opts.metricsReg != nil && opts.metricsComponent != "" {
		var err error
		metrics, err = newBufferMetrics(opts.metricsReg, opts.metricsComponent)
		if err != nil {
			// Return classified error instead of silently ignoring
			return nil, errors.WrapTransient(err, "RingBuffer", "New", "metrics registration")
		}
	}

	return &RingBuffer[T]{
		items:         make([]T, capacity),
		capacity:      capacity,
		stats:         stats,   // ALWAYS present
		metrics:       metrics, // Optional
		zeroOnRelease: opts.zeroOnRelease,
	}, nil
}

// Push inserts item at the back of the buffer.
// Returns ErrFull without modifying the buffer when it is at capacity;
// the caller can drain and retry.
func (rb *RingBuffer[T]) Push(item T) error {
	if rb.length == rb.capacity {
		// ALWAYS track in stats
		rb.stats.Reject()

		// ALSO track in metrics if enabled
		if rb.metrics != nil {
			rb.metrics.recordReject()
		}
		return ErrFull
	}

	rb.items[rb.head] = item
	rb.head = (rb.head + 1) % rb.capacity
	rb.length++

	// ALWAYS track in stats
	rb.stats.Push()
	rb.stats.UpdateLength(int64(rb.length))

	// ALSO track in metrics if enabled
	if rb.metrics != nil {
		rb.metrics.recordPushes(1, rb.length, rb.capacity)
	}

	return nil
}

// Pop removes and returns the oldest element.
// Returns the zero value and false if the buffer is empty.
func (rb *RingBuffer[T]) Pop() (T, bool) {
	var zero T

	if rb.length == 0 {
		// An empty buffer is a normal condition, not an error
		return zero, false
	}

	item := rb.items[rb.tail]
	if rb.zeroOnRelease {
		rb.items[rb.tail] = zero // Clear for GC
	}
	rb.tail = (rb.tail + 1) % rb.capacity
	rb.length--

	// ALWAYS track in stats
	rb.stats.Pop()
	rb.stats.UpdateLength(int64(rb.length))

	// ALSO track in metrics if enabled
	if rb.metrics != nil {
		rb.metrics.recordPops(1, rb.length, rb.capacity)
	}

	return item, true
}

// Front returns the oldest element without removing it.
// Returns the zero value and false if the buffer is empty.
func (rb *RingBuffer[T]) Front() (T, bool) {
	var zero T

	if rb.length == 0 {
		return zero, false
	}

	item := rb.items[rb.tail]

	// ALWAYS track in stats
	rb.stats.Peek()

	// ALSO track in metrics if enabled
	if rb.metrics != nil {
		rb.metrics.recordPeek()
	}

	return item, true
}

// Write inserts elements from data in order until the buffer fills.
// It returns the number of elements inserted. When the buffer fills before
// data is exhausted the inserted prefix stays committed and the remainder
// is reported with ErrFull, mirroring the short-write contract of io.Writer.
func (rb *RingBuffer[T]) Write(data []T) (int, error) {
	n := 0
	for n < len(data) && rb.length < rb.capacity {
		rb.items[rb.head] = data[n]
		rb.head = (rb.head + 1) % rb.capacity
		rb.length++
		n++

		// ALWAYS track in stats
		rb.stats.Push()
	}

	if n > 0 {
		// ALWAYS track in stats
		rb.stats.UpdateLength(int64(rb.length))

		// ALSO track in metrics if enabled - use final state after all inserts
		if rb.metrics != nil {
			rb.metrics.recordPushes(n, rb.length, rb.capacity)
		}
	}

	if n < len(data) {
		// ALWAYS track in stats
		rb.stats.Reject()

		// ALSO track in metrics if enabled
		if rb.metrics != nil {
			rb.metrics.recordReject()
		}
		return n, ErrFull
	}

	return n, nil
}

// Read removes up to len(out) elements into out in arrival order and
// returns how many were copied. Elements of out beyond the returned count
// are left untouched. An empty buffer reads zero elements; Read never fails.
func (rb *RingBuffer[T]) Read(out []T) int {
	n := len(out)
	if n > rb.length {
		n = rb.length
	}
	if n == 0 {
		return 0
	}

	var zero T
	for i := 0; i < n; i++ {
		out[i] = rb.items[rb.tail]
		if rb.zeroOnRelease {
			rb.items[rb.tail] = zero // Clear for GC
		}
		rb.tail = (rb.tail + 1) % rb.capacity
		rb.length--

		// ALWAYS track in stats
		rb.stats.Pop()
	}

	// ALWAYS track in stats
	rb.stats.UpdateLength(int64(rb.length))

	// ALSO track in metrics if enabled - use final state after all reads
	if rb.metrics != nil {
		rb.metrics.recordPops(n, rb.length, rb.capacity)
	}

	return n
}

// Discard drops the oldest count elements without copying them out.
// The drop is all-or-nothing: if count exceeds the buffered length the
// buffer is left unchanged and ErrOutOfRange is reported. On success it
// returns the remaining free capacity.
func (rb *RingBuffer[T]) Discard(count int) (int, error) {
	if count < 0 || count > rb.length {
		return 0, errors.WrapInvalid(ErrOutOfRange, "RingBuffer", "Discard",
			fmt.Sprintf("drop %d of %d buffered", count, rb.length))
	}

	if rb.zeroOnRelease {
		var zero T
		for i := 0; i < count; i++ {
			rb.items[(rb.tail+i)%rb.capacity] = zero // Clear for GC
		}
	}

	rb.tail = (rb.tail + count) % rb.capacity
	rb.length -= count

	// ALWAYS track in stats
	rb.stats.Discard(int64(count))
	rb.stats.UpdateLength(int64(rb.length))

	// ALSO track in metrics if enabled
	if rb.metrics != nil {
		rb.metrics.recordDiscards(count, rb.length, rb.capacity)
	}

	return rb.capacity - rb.length, nil
}

// Peek returns a view of the oldest n elements backed directly by buffer
// storage. The view is a borrow: it stays valid until the next call that
// consumes, inserts, or clears, and writing through it mutates buffered
// elements. Peek reports ErrOutOfRange when n exceeds the buffered length
// and ErrNonContiguous when the window wraps the physical end of storage;
// Slices serves the wrapped case.
func (rb *RingBuffer[T]) Peek(n int) ([]T, error) {
	if n < 0 || n > rb.length {
		return nil, errors.WrapInvalid(ErrOutOfRange, "RingBuffer", "Peek",
			fmt.Sprintf("view %d of %d buffered", n, rb.length))
	}

	if rb.tail+n > rb.capacity {
		return nil, errors.WrapInvalid(ErrNonContiguous, "RingBuffer", "Peek",
			fmt.Sprintf("contiguous view of %d from offset %d", n, rb.tail))
	}

	// ALWAYS track in stats
	rb.stats.Peek()

	// ALSO track in metrics if enabled
	if rb.metrics != nil {
		rb.metrics.recordPeek()
	}

	return rb.items[rb.tail : rb.tail+n : rb.tail+n], nil
}

// Slices returns the buffered elements as up to two views in arrival order:
// the run from the read cursor to the physical end of storage, then the
// wrapped run from the start. The second slice is nil when the elements are
// contiguous. Like Peek, the views borrow buffer storage.
func (rb *RingBuffer[T]) Slices() ([]T, []T) {
	if rb.length == 0 {
		return nil, nil
	}

	// ALWAYS track in stats
	rb.stats.Peek()

	// ALSO track in metrics if enabled
	if rb.metrics != nil {
		rb.metrics.recordPeek()
	}

	end := rb.tail + rb.length
	if end <= rb.capacity {
		return rb.items[rb.tail:end:end], nil
	}

	wrap := end - rb.capacity
	return rb.items[rb.tail:rb.capacity:rb.capacity], rb.items[0:wrap:wrap]
}

// Len returns the current number of elements in the buffer.
func (rb *RingBuffer[T]) Len() int {
	return rb.length
}

// Capacity returns the maximum number of elements the buffer can hold.
func (rb *RingBuffer[T]) Capacity() int {
	return rb.capacity // This is immutable
}

// Available returns how many more elements fit before the buffer is full.
func (rb *RingBuffer[T]) Available() int {
	return rb.capacity - rb.length
}

// IsFull returns true if the buffer is at maximum capacity.
func (rb *RingBuffer[T]) IsFull() bool {
	return rb.length == rb.capacity
}

// IsEmpty returns true if the buffer contains no elements.
func (rb *RingBuffer[T]) IsEmpty() bool {
	return rb.length == 0
}

// Clear discards all buffered elements by resetting the cursors.
// Storage is left as-is unless the buffer was built WithZeroOnRelease.
func (rb *RingBuffer[T]) Clear() {
	if rb.zeroOnRelease {
		var zero T
		for i := 0; i < rb.length; i++ {
			rb.items[(rb.tail+i)%rb.capacity] = zero // Clear for GC
		}
	}

	rb.head = 0
	rb.tail = 0
	rb.length = 0

	// ALWAYS track in stats
	rb.stats.UpdateLength(0)

	// ALSO track in metrics if enabled
	if rb.metrics != nil {
		rb.metrics.updateLength(0, rb.capacity)
	}
}

// Stats returns buffer statistics (always available for observability).
func (rb *RingBuffer[T]) Stats() *Statistics {
	return rb.stats
}
