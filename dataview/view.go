package dataview

import (
	"github.com/shaunstanislauslau/hermes"
	"github.com/shaunstanislauslau/hermes/errors"
)

// View is a fixed offset+length window onto a Buffer supporting typed,
// bounds-checked reads and writes in either byte order.
//
// The offset and length are validated once, at construction, against the
// buffer length observed at that moment. The buffer's attached flag is NOT
// part of that invariant: it is re-polled on every access, because the
// buffer can detach at any time between construction and use.
type View struct {
	buf        hermes.Buffer
	byteOffset uint64
	byteLength uint64
}

// New constructs a View over buf.
//
// byteOffset and byteLength are coercible Values; nil byteLength means
// "the rest of the buffer". Validation order is observable and fixed:
// buffer-type check, offset coercion, offset bound against the buffer
// length read at that point, length coercion, combined bound against
// the buffer length re-read after the length coercion. Re-entrant
// mutation between the coercions is tolerated, not guarded against
// retroactively.
func New(buf hermes.Value, byteOffset hermes.Value, byteLength hermes.Value) (*View, error) {
	b, ok := buf.(hermes.Buffer)
	if !ok {
		return nil, errors.New(errors.PhaseConstruct, errors.KindBufferType).
			Path("New").
			Detail("buffer must be an ArrayBuffer").
			Build()
	}

	offset, err := ToIndex(byteOffset)
	if err != nil {
		return nil, err
	}
	bufLen := b.ByteLength()
	if offset > bufLen {
		return nil, errors.New(errors.PhaseConstruct, errors.KindViewRange).
			Path("New").
			Detail("byteOffset %d must be <= the buffer's byte length %d", offset, bufLen).
			Build()
	}

	var viewLen uint64
	if byteLength == nil {
		viewLen = bufLen - offset
	} else {
		viewLen, err = ToIndex(byteLength)
		if err != nil {
			return nil, err
		}
		// The length coercion may have resized or replaced the backing
		// region; the combined bound holds against the length as of now.
		if cur := b.ByteLength(); offset+viewLen > cur {
			return nil, errors.New(errors.PhaseConstruct, errors.KindViewRange).
				Path("New").
				Detail("byteOffset %d + byteLength %d must be <= the buffer's byte length %d", offset, viewLen, cur).
				Build()
		}
	}

	return &View{buf: b, byteOffset: offset, byteLength: viewLen}, nil
}

// live reports whether v is a genuine, constructed View. The zero value
// and a nil pointer both fail the receiver guard, mirroring a method
// invoked on a value that is not a DataView at all.
func (v *View) live() bool {
	return v != nil && v.buf != nil
}

// Buffer returns the backing buffer.
func (v *View) Buffer() (hermes.Buffer, error) {
	if !v.live() {
		return nil, errors.NonReceiver(errors.PhaseAccessor, "buffer")
	}
	return v.buf, nil
}

// ByteLength returns the view's fixed length in bytes.
func (v *View) ByteLength() (uint64, error) {
	if !v.live() {
		return 0, errors.NonReceiver(errors.PhaseAccessor, "byteLength")
	}
	return v.byteLength, nil
}

// ByteOffset returns the view's fixed offset into the buffer.
func (v *View) ByteOffset() (uint64, error) {
	if !v.live() {
		return 0, errors.NonReceiver(errors.PhaseAccessor, "byteOffset")
	}
	return v.byteOffset, nil
}
