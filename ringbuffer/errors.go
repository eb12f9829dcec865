package ringbuffer

import "errors"

// Sentinel errors for ring buffer operations
var (
	// ErrFull indicates an insert was rejected because the buffer is at capacity
	ErrFull = errors.New("ring buffer full")

	// ErrOutOfRange indicates a request for more elements than the buffer holds
	ErrOutOfRange = errors.New("request exceeds buffered elements")

	// ErrNonContiguous indicates a contiguous view would wrap the end of storage
	ErrNonContiguous = errors.New("requested span wraps the buffer boundary")
)
