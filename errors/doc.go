// Package errors provides standardized error handling patterns for RingKit packages.
//
// # Overview
//
// The errors package implements a three-class error classification system:
// Transient (temporary, retryable), Invalid (bad input, non-retryable), and
// Fatal (unrecoverable, stop processing).
//
// Classification lets callers react to failure by kind rather than by string
// matching. A full buffer is transient pressure the caller can drain away; an
// out-of-range request is a caller bug no amount of retrying will fix; a
// metrics backend that refuses registration outright is fatal to the feature
// that needed it.
//
// # Error Classification
//
// Errors are classified based on their type or content:
//
//   - Transient: capacity pressure, timeouts, temporary unavailability (retry recommended)
//   - Invalid: malformed requests, out-of-range arguments, duplicate registration (do not retry)
//   - Fatal: invalid configuration, resource exhaustion, unrecoverable states (stop processing)
//
// The classification system integrates with Go's standard error handling,
// supporting errors.Is(), errors.As(), and error wrapping chains.
//
// # Quick Start
//
// Use standard error variables for common conditions:
//
//	if registered {
//	    return errors.ErrAlreadyRegistered
//	}
//
// Wrap errors with context for debugging:
//
//	if err := reg.RegisterCounter(component, name, counter); err != nil {
//	    return errors.Wrap(err, "Registry", "RegisterCounter", "register collector")
//	}
//
// Check classification to decide what to do next:
//
//	if err := buf.Push(item); err != nil {
//	    if errors.IsTransient(err) {
//	        // Buffer full - drain some elements and try again
//	    } else if errors.IsInvalid(err) {
//	        // Caller bug - fix the request, do not retry
//	    }
//	}
//
// # Error Wrapping Pattern
//
// All error wrapping follows the standardized format:
//
//	"component.method: action failed: %w"
//
// This format enables consistent log parsing and debugging across the module.
// Three wrapper functions provide classification-aware wrapping:
//
//	errors.WrapTransient(err, "Component", "Method", "action")  // For retryable errors
//	errors.WrapInvalid(err, "Component", "Method", "action")    // For validation errors
//	errors.WrapFatal(err, "Component", "Method", "action")      // For unrecoverable errors
//
// The generic Wrap() function adds context without forcing a class:
//
//	errors.Wrap(err, "Component", "Method", "action")
//
// # Standard Error Variables
//
// Pre-defined error variables cover common conditions, organized by category:
//
//   - Component lifecycle: ErrAlreadyStarted, ErrNotStarted, ErrAlreadyStopped
//   - Registration: ErrAlreadyRegistered, ErrNotRegistered
//   - Request validation: ErrInvalidArgument, ErrInvalidConfig
//   - Capacity and resources: ErrCapacityExceeded, ErrResourceExhausted
//
// Packages with their own failure vocabulary declare package-local sentinels
// (ringbuffer.ErrFull, ringbuffer.ErrOutOfRange) and rely on this package only
// for classification and wrapping; the standard variables here cover the
// cross-cutting conditions shared by every component.
//
// # Integration with errors.As/Is
//
// All error types support standard library error inspection:
//
//	// Check error classification and origin
//	var ce *errors.ClassifiedError
//	if errors.As(err, &ce) {
//	    log.Printf("Component: %s, Class: %s", ce.Component, ce.Class)
//	}
//
//	// Check for specific standard errors through wrap chains
//	wrapped := errors.WrapInvalid(errors.ErrAlreadyRegistered, "Registry", "RegisterGauge", "register")
//	errors.Is(wrapped, errors.ErrAlreadyRegistered)  // true
//	errors.IsInvalid(wrapped)                        // true
//
// # Context Cancellation
//
// Context errors (context.DeadlineExceeded, context.Canceled) are classified
// as Transient, so context-based timeouts are handled the same way as any
// other temporary condition.
//
// # Performance Considerations
//
// Classification is cheap on error paths: known types classify via a type
// assertion, and unknown errors fall back to pattern matching over a short
// list. Wrapping allocates, so hot paths that reject with a package-local
// sentinel (for example a full buffer) return the sentinel bare and leave
// wrapping to the cold paths where the added context pays for itself.
//
// # Thread Safety
//
// All classification and wrapping operations are thread-safe. Error variables
// are immutable and safe for concurrent access. The ClassifiedError type is
// safe to share across goroutines after creation.
//
// # Design Philosophy
//
//   - Classification over string matching: errors are classified by type, not content
//   - Wrapping over replacement: preserve original errors, add context via wrapping
//   - Standards over invention: use Go's error handling idioms (Is/As/Unwrap)
//   - Simplicity over completeness: three classes cover the conditions that matter
package errors
