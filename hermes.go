package hermes

// Buffer is an opaque capability owning a contiguous byte region.
//
// A Buffer starts attached and may transition to detached exactly once;
// the transition never reverses. After detachment the backing storage is
// permanently inaccessible: Bytes returns nil and ByteLength returns 0.
// Views over a Buffer do not own it and must poll Attached themselves
// before every data access.
type Buffer interface {
	// ByteLength reports the current size of the byte region.
	ByteLength() uint64
	// Attached reports whether the backing storage is still accessible.
	Attached() bool
	// Bytes exposes the backing storage. The returned slice aliases the
	// buffer's memory and is nil once the buffer is detached.
	Bytes() []byte
}

// Detachable is implemented by buffers whose storage can be released
// out from under existing views.
type Detachable interface {
	Buffer
	// Detach permanently invalidates the backing storage. Idempotent.
	Detach()
}

// Value is an argument supplied by the host to a view operation. Plain Go
// numeric types are used as-is; a value implementing NumberCoercer is
// coerced through it; nil stands for an absent argument.
type Value = any

// NumberCoercer is the observable numeric-coercion capability. ToNumber
// may execute arbitrary host logic, including logic that detaches the
// very buffer the enclosing operation is about to touch. Callers run the
// coercion to completion before any liveness or bounds validation.
type NumberCoercer interface {
	ToNumber() (float64, error)
}
