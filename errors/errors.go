package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseConstruct Phase = "construct" // view construction
	PhaseIndex     Phase = "index"     // index argument validation
	PhaseGet       Phase = "get"       // typed read
	PhaseSet       Phase = "set"       // typed write
	PhaseAccessor  Phase = "accessor"  // buffer/byteLength/byteOffset accessors
)

// Kind categorizes the error
type Kind string

const (
	// KindReceiverType: a view method invoked on something that is not a
	// live view (nil or zero-value receiver).
	KindReceiverType Kind = "receiver_type"
	// KindBufferType: the construction buffer argument is not a Buffer.
	KindBufferType Kind = "buffer_type"
	// KindIndexRange: an index argument coerced to NaN, a negative,
	// non-integral, or over-large value.
	KindIndexRange Kind = "index_range"
	// KindViewRange: offset/length violate the buffer-size invariant at
	// construction.
	KindViewRange Kind = "view_range"
	// KindDetachedBuffer: access attempted after the backing buffer
	// detached.
	KindDetachedBuffer Kind = "detached_buffer"
	// KindOutOfBounds: access would read or write past the view's length.
	KindOutOfBounds Kind = "out_of_bounds"
)

// Error is the structured error type used throughout the codec core
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	Detail string
	Path   []string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "."))
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Path sets the operation path
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// NonReceiver reports op invoked on a value that is not a live view
func NonReceiver(phase Phase, op string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindReceiverType,
		Path:   []string{op},
		Detail: op + " called on a non DataView object",
	}
}

// Detached reports op attempted against a detached buffer
func Detached(phase Phase, op string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindDetachedBuffer,
		Path:   []string{op},
		Detail: op + " called on a detached buffer",
	}
}

// OutOfBounds reports an access past the view's fixed length
func OutOfBounds(phase Phase, op string, offset, size, length uint64) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOutOfBounds,
		Path:   []string{op},
		Detail: fmt.Sprintf("cannot access %d bytes at offset %d in a view of length %d", size, offset, length),
	}
}

// IndexRange reports an index argument that failed validation
func IndexRange(v float64, reason string) *Error {
	return &Error{
		Phase:  PhaseIndex,
		Kind:   KindIndexRange,
		Value:  v,
		Detail: reason,
	}
}
