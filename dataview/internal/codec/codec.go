// Package codec encodes and decodes fixed-width numeric values against raw
// bytes in a chosen byte order.
//
// Decoding reinterprets bytes as the kind's native bit pattern: integers
// sign- or zero-extend, floats round-trip their IEEE-754 bits without
// normalization (NaN payloads and signed zero survive). Integer encoding
// wraps the number to the kind's width with two's-complement wraparound,
// never saturation; Float32 encoding rounds to nearest, ties to even.
package codec

import (
	"encoding/binary"
	"math"
)

func order(littleEndian bool) binary.ByteOrder {
	if littleEndian {
		return binary.LittleEndian
	}
	return binary.BigEndian
}

// Decode reads k.Size() bytes from b and returns the numeric value as the
// host number type. Valid for every kind except the Big pair; use
// DecodeInt64/DecodeUint64 for those.
func Decode(k Kind, b []byte, littleEndian bool) float64 {
	switch k {
	case KindInt8:
		return float64(int8(b[0]))
	case KindUint8:
		return float64(b[0])
	case KindInt16:
		return float64(int16(order(littleEndian).Uint16(b)))
	case KindUint16:
		return float64(order(littleEndian).Uint16(b))
	case KindInt32:
		return float64(int32(order(littleEndian).Uint32(b)))
	case KindUint32:
		return float64(order(littleEndian).Uint32(b))
	case KindFloat32:
		return float64(math.Float32frombits(order(littleEndian).Uint32(b)))
	case KindFloat64:
		return math.Float64frombits(order(littleEndian).Uint64(b))
	}
	panic("codec: Decode called with a 64-bit integer kind")
}

// Encode writes the number v to dst as k.Size() bytes. Integer kinds wrap
// v to their width; NaN and infinities wrap to 0.
func Encode(k Kind, dst []byte, v float64, littleEndian bool) {
	switch k {
	case KindInt8, KindUint8:
		dst[0] = uint8(wrap(v))
	case KindInt16, KindUint16:
		order(littleEndian).PutUint16(dst, uint16(wrap(v)))
	case KindInt32, KindUint32:
		order(littleEndian).PutUint32(dst, uint32(wrap(v)))
	case KindFloat32:
		order(littleEndian).PutUint32(dst, math.Float32bits(float32(v)))
	case KindFloat64:
		order(littleEndian).PutUint64(dst, math.Float64bits(v))
	default:
		panic("codec: Encode called with a 64-bit integer kind")
	}
}

// DecodeInt64 reads 8 bytes as a signed 64-bit integer.
func DecodeInt64(b []byte, littleEndian bool) int64 {
	return int64(order(littleEndian).Uint64(b))
}

// DecodeUint64 reads 8 bytes as an unsigned 64-bit integer.
func DecodeUint64(b []byte, littleEndian bool) uint64 {
	return order(littleEndian).Uint64(b)
}

// EncodeUint64 writes bits as 8 bytes. Signed values pass through their
// two's-complement bit pattern (uint64(v) for an int64 v).
func EncodeUint64(dst []byte, bits uint64, littleEndian bool) {
	order(littleEndian).PutUint64(dst, bits)
}

// wrap reduces v modulo 2^64 after truncation toward zero. NaN and the
// infinities map to 0. Narrower integer kinds take the low bits, which is
// exactly the modulo-2^width reduction.
func wrap(v float64) uint64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	v = math.Trunc(v)
	// math.Mod is exact for floats, so m is an integer in [0, 2^64) and
	// converts without overflow. Negation below is two's-complement, i.e.
	// modulo arithmetic, which is why the sign is applied after reduction.
	m := math.Mod(math.Abs(v), 1<<64)
	u := uint64(m)
	if v < 0 {
		return -u
	}
	return u
}
