package dataview

import (
	"github.com/shaunstanislauslau/hermes"
	"github.com/shaunstanislauslau/hermes/dataview/internal/codec"
	"github.com/shaunstanislauslau/hermes/errors"
)

// span validates an access of size bytes at the coerced local offset and
// returns the target byte slice. It runs the two late checks in their
// mandated order: attachment first, then bounds, with no coercion allowed
// between them and the memory touch.
func (v *View) span(phase errors.Phase, op string, localOffset uint64, size uint64) ([]byte, error) {
	if !v.buf.Attached() {
		return nil, errors.Detached(phase, op)
	}
	if localOffset+size > v.byteLength {
		return nil, errors.OutOfBounds(phase, op, localOffset, size, v.byteLength)
	}
	start := v.byteOffset + localOffset
	return v.buf.Bytes()[start : start+size], nil
}

// getNumber is the shared typed-read path: receiver guard, offset
// coercion (side effects run here), then attachment and bounds
// immediately before the read.
func (v *View) getNumber(k codec.Kind, op string, byteOffset hermes.Value, littleEndian bool) (float64, error) {
	if !v.live() {
		return 0, errors.NonReceiver(errors.PhaseGet, op)
	}
	off, err := ToIndex(byteOffset)
	if err != nil {
		return 0, err
	}
	b, err := v.span(errors.PhaseGet, op, off, k.Size())
	if err != nil {
		return 0, err
	}
	return codec.Decode(k, b, littleEndian), nil
}

// setNumber is the shared typed-write path. The value coercion runs after
// the offset coercion and before any validation; either coercion may
// detach the buffer, which is why attachment is checked last. The write
// happens only after every check passes, so failures leave the buffer
// untouched.
func (v *View) setNumber(k codec.Kind, op string, byteOffset, value hermes.Value, littleEndian bool) error {
	if !v.live() {
		return errors.NonReceiver(errors.PhaseSet, op)
	}
	off, err := ToIndex(byteOffset)
	if err != nil {
		return err
	}
	n, err := toNumber(value)
	if err != nil {
		return err
	}
	b, err := v.span(errors.PhaseSet, op, off, k.Size())
	if err != nil {
		return err
	}
	codec.Encode(k, b, n, littleEndian)
	return nil
}

// GetInt8 reads a signed byte at byteOffset.
func (v *View) GetInt8(byteOffset hermes.Value) (float64, error) {
	return v.getNumber(codec.KindInt8, "GetInt8", byteOffset, false)
}

// GetUint8 reads an unsigned byte at byteOffset.
func (v *View) GetUint8(byteOffset hermes.Value) (float64, error) {
	return v.getNumber(codec.KindUint8, "GetUint8", byteOffset, false)
}

// GetInt16 reads a signed 16-bit integer at byteOffset.
func (v *View) GetInt16(byteOffset hermes.Value, littleEndian bool) (float64, error) {
	return v.getNumber(codec.KindInt16, "GetInt16", byteOffset, littleEndian)
}

// GetUint16 reads an unsigned 16-bit integer at byteOffset.
func (v *View) GetUint16(byteOffset hermes.Value, littleEndian bool) (float64, error) {
	return v.getNumber(codec.KindUint16, "GetUint16", byteOffset, littleEndian)
}

// GetInt32 reads a signed 32-bit integer at byteOffset.
func (v *View) GetInt32(byteOffset hermes.Value, littleEndian bool) (float64, error) {
	return v.getNumber(codec.KindInt32, "GetInt32", byteOffset, littleEndian)
}

// GetUint32 reads an unsigned 32-bit integer at byteOffset.
func (v *View) GetUint32(byteOffset hermes.Value, littleEndian bool) (float64, error) {
	return v.getNumber(codec.KindUint32, "GetUint32", byteOffset, littleEndian)
}

// GetFloat32 reads an IEEE-754 single at byteOffset. The stored bit
// pattern is returned without normalization.
func (v *View) GetFloat32(byteOffset hermes.Value, littleEndian bool) (float64, error) {
	return v.getNumber(codec.KindFloat32, "GetFloat32", byteOffset, littleEndian)
}

// GetFloat64 reads an IEEE-754 double at byteOffset. NaN payloads and
// signed zero round-trip bit-for-bit.
func (v *View) GetFloat64(byteOffset hermes.Value, littleEndian bool) (float64, error) {
	return v.getNumber(codec.KindFloat64, "GetFloat64", byteOffset, littleEndian)
}

// SetInt8 writes a signed byte at byteOffset. The value wraps modulo 2^8.
func (v *View) SetInt8(byteOffset, value hermes.Value) error {
	return v.setNumber(codec.KindInt8, "SetInt8", byteOffset, value, false)
}

// SetUint8 writes an unsigned byte at byteOffset. The value wraps modulo 2^8.
func (v *View) SetUint8(byteOffset, value hermes.Value) error {
	return v.setNumber(codec.KindUint8, "SetUint8", byteOffset, value, false)
}

// SetInt16 writes a signed 16-bit integer at byteOffset.
func (v *View) SetInt16(byteOffset, value hermes.Value, littleEndian bool) error {
	return v.setNumber(codec.KindInt16, "SetInt16", byteOffset, value, littleEndian)
}

// SetUint16 writes an unsigned 16-bit integer at byteOffset.
func (v *View) SetUint16(byteOffset, value hermes.Value, littleEndian bool) error {
	return v.setNumber(codec.KindUint16, "SetUint16", byteOffset, value, littleEndian)
}

// SetInt32 writes a signed 32-bit integer at byteOffset.
func (v *View) SetInt32(byteOffset, value hermes.Value, littleEndian bool) error {
	return v.setNumber(codec.KindInt32, "SetInt32", byteOffset, value, littleEndian)
}

// SetUint32 writes an unsigned 32-bit integer at byteOffset.
func (v *View) SetUint32(byteOffset, value hermes.Value, littleEndian bool) error {
	return v.setNumber(codec.KindUint32, "SetUint32", byteOffset, value, littleEndian)
}

// SetFloat32 writes an IEEE-754 single at byteOffset, rounding the value
// to single precision (nearest, ties to even).
func (v *View) SetFloat32(byteOffset, value hermes.Value, littleEndian bool) error {
	return v.setNumber(codec.KindFloat32, "SetFloat32", byteOffset, value, littleEndian)
}

// SetFloat64 writes an IEEE-754 double at byteOffset.
func (v *View) SetFloat64(byteOffset, value hermes.Value, littleEndian bool) error {
	return v.setNumber(codec.KindFloat64, "SetFloat64", byteOffset, value, littleEndian)
}

// GetBigInt64 reads a signed 64-bit integer at byteOffset. The 64-bit
// codecs exchange Go integers directly; the host's BigInt coercion is not
// this core's concern.
func (v *View) GetBigInt64(byteOffset hermes.Value, littleEndian bool) (int64, error) {
	if !v.live() {
		return 0, errors.NonReceiver(errors.PhaseGet, "GetBigInt64")
	}
	off, err := ToIndex(byteOffset)
	if err != nil {
		return 0, err
	}
	b, err := v.span(errors.PhaseGet, "GetBigInt64", off, 8)
	if err != nil {
		return 0, err
	}
	return codec.DecodeInt64(b, littleEndian), nil
}

// GetBigUint64 reads an unsigned 64-bit integer at byteOffset.
func (v *View) GetBigUint64(byteOffset hermes.Value, littleEndian bool) (uint64, error) {
	if !v.live() {
		return 0, errors.NonReceiver(errors.PhaseGet, "GetBigUint64")
	}
	off, err := ToIndex(byteOffset)
	if err != nil {
		return 0, err
	}
	b, err := v.span(errors.PhaseGet, "GetBigUint64", off, 8)
	if err != nil {
		return 0, err
	}
	return codec.DecodeUint64(b, littleEndian), nil
}

// SetBigInt64 writes a signed 64-bit integer at byteOffset.
func (v *View) SetBigInt64(byteOffset hermes.Value, value int64, littleEndian bool) error {
	return v.setBits64("SetBigInt64", byteOffset, uint64(value), littleEndian)
}

// SetBigUint64 writes an unsigned 64-bit integer at byteOffset.
func (v *View) SetBigUint64(byteOffset hermes.Value, value uint64, littleEndian bool) error {
	return v.setBits64("SetBigUint64", byteOffset, value, littleEndian)
}

func (v *View) setBits64(op string, byteOffset hermes.Value, bits uint64, littleEndian bool) error {
	if !v.live() {
		return errors.NonReceiver(errors.PhaseSet, op)
	}
	off, err := ToIndex(byteOffset)
	if err != nil {
		return err
	}
	b, err := v.span(errors.PhaseSet, op, off, 8)
	if err != nil {
		return err
	}
	codec.EncodeUint64(b, bits, littleEndian)
	return nil
}
