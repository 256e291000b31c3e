// Package errors provides structured error types for the hermes codec core.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type includes context: operation path, offending value, and cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseConstruct, errors.KindViewRange).
//		Detail("byteOffset %d must be <= the buffer's byte length %d", off, n).
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.Detached(errors.PhaseGet, "GetUint32")
//	err := errors.OutOfBounds(errors.PhaseSet, "SetFloat64", off, 8, length)
//
// All errors implement the standard error interface and support errors.Is/As.
// Is matches on Phase and Kind, so callers can test for a category:
//
//	errors.Is(err, &errors.Error{Phase: errors.PhaseGet, Kind: errors.KindDetachedBuffer})
package errors
