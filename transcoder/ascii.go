package transcoder

import "encoding/binary"

const asciiHighBits = 0x8080808080808080

// IsAllASCII reports whether every byte of b is <= 0x7F. The empty slice
// is vacuously ASCII.
//
// Words are tested eight bytes at a time with a high-bit mask; the tail
// falls back to a byte scan. Both paths agree bit-for-bit with the naive
// scan for every sub-range, alignment and length.
func IsAllASCII(b []byte) bool {
	for len(b) >= 8 {
		if binary.LittleEndian.Uint64(b)&asciiHighBits != 0 {
			return false
		}
		b = b[8:]
	}
	for _, c := range b {
		if c > 0x7F {
			return false
		}
	}
	return true
}
