package ringbuffer

import (
	"github.com/c360/ringkit/metric"
)

// Option configures ring buffer behavior using the functional options pattern.
// This provides a clean, extensible API for configuring buffers.
type Option func(*bufferOptions)

// bufferOptions holds internal configuration for buffer instances.
// Stats are ALWAYS collected - they are not optional.
// Metrics are optional and exposed via WithMetrics().
type bufferOptions struct {
	// zeroOnRelease controls whether consumed slots are reset to the zero value
	zeroOnRelease bool

	// metricsReg is optional - if provided, buffer stats are also exposed as Prometheus metrics
	metricsReg *metric.Registry

	// metricsComponent is used as the component label for Prometheus metrics
	metricsComponent string
}

// WithMetrics enables Prometheus metrics export for buffer statistics.
// If registry is nil, this option is ignored.
// Registry should not be nil in normal usage - this handles edge cases gracefully.
func WithMetrics(registry *metric.Registry, component string) Option {
	return func(opts *bufferOptions) {
		if registry != nil && component != "" {
			opts.metricsReg = registry
			opts.metricsComponent = component
		}
	}
}

// WithZeroOnRelease resets consumed slots to the zero value of T so the
// buffer does not pin references after Pop, Read, Discard, or Clear.
// Useful when T holds pointers and buffered elements should become
// collectible as soon as they are consumed. Off by default: the plain
// cursor-only release is what keeps the hot path allocation and write free.
func WithZeroOnRelease() Option {
	return func(opts *bufferOptions) {
		opts.zeroOnRelease = true
	}
}

// applyOptions applies functional options to create final buffer configuration.
// This is an internal helper used by buffer constructors.
func applyOptions(options ...Option) *bufferOptions {
	opts := &bufferOptions{}

	for _, opt := range options {
		if opt != nil {
			opt(opts)
		}
	}

	return opts
}
