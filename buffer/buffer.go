// Package buffer provides concrete implementations of the hermes.Buffer
// capability: heap-backed ArrayBuffers and read-only file-backed buffers.
//
// A buffer owns its byte region exclusively. Detach is the only lifecycle
// transition: one-way, idempotent, and immediate. Views holding references
// observe it through the Attached flag on their next access; nothing
// notifies them.
package buffer

import (
	"go.uber.org/zap"

	"github.com/shaunstanislauslau/hermes"
)

// ArrayBuffer is a heap- or file-backed byte region implementing
// hermes.Detachable. The zero value is an attached, empty buffer.
type ArrayBuffer struct {
	data     []byte
	release  func([]byte)
	detached bool
}

var _ hermes.Detachable = (*ArrayBuffer)(nil)

// New allocates an attached, zero-filled buffer of the given size.
func New(size uint64) *ArrayBuffer {
	return &ArrayBuffer{data: make([]byte, size)}
}

// FromBytes wraps data in an attached buffer. The buffer takes ownership;
// the caller must not retain the slice.
func FromBytes(data []byte) *ArrayBuffer {
	return &ArrayBuffer{data: data}
}

// ByteLength reports the current size. Zero once detached.
func (b *ArrayBuffer) ByteLength() uint64 {
	return uint64(len(b.data))
}

// Attached reports whether the backing storage is still accessible.
func (b *ArrayBuffer) Attached() bool {
	return !b.detached
}

// Bytes exposes the backing storage, nil once detached.
func (b *ArrayBuffer) Bytes() []byte {
	if b.detached {
		return nil
	}
	return b.data
}

// Detach permanently invalidates the backing storage. Idempotent; the
// transition never reverses. Existing views keep their references but
// every access through them fails from this point on.
func (b *ArrayBuffer) Detach() {
	if b.detached {
		return
	}
	Logger().Debug("buffer detached", zap.Uint64("byteLength", uint64(len(b.data))))
	if b.release != nil {
		b.release(b.data)
		b.release = nil
	}
	b.data = nil
	b.detached = true
}
