package transcoder

// UTF-16 surrogate range boundaries.
const (
	leadFirst  = 0xD800
	leadLast   = 0xDBFF
	trailFirst = 0xDC00
	trailLast  = 0xDFFF
)

// appendScalar appends the UTF-8 encoding of a code point below 0x10000.
// Surrogate values pass through and produce the standalone 3-byte sequence;
// that is the exact-mode lone-surrogate policy, not an oversight.
func appendScalar(dst []byte, u uint32) []byte {
	switch {
	case u <= 0x7F:
		return append(dst, byte(u))
	case u <= 0x7FF:
		return append(dst, 0xC0|byte(u>>6), 0x80|byte(u&0x3F))
	default:
		return append(dst, 0xE0|byte(u>>12), 0x80|byte(u>>6&0x3F), 0x80|byte(u&0x3F))
	}
}

// appendSupplementary appends the 4-byte UTF-8 encoding of a code point in
// [0x10000, 0x10FFFF].
func appendSupplementary(dst []byte, u uint32) []byte {
	return append(dst,
		0xF0|byte(u>>18),
		0x80|byte(u>>12&0x3F),
		0x80|byte(u>>6&0x3F),
		0x80|byte(u&0x3F))
}

// pairScalar combines a lead/trail surrogate pair into its code point.
func pairScalar(lead, trail uint32) uint32 {
	return 0x10000 + (lead-leadFirst)<<10 + (trail - trailFirst)
}

// UTF16ToUTF8WithSingleSurrogates converts units to UTF-8, appending to dst
// and returning the extended slice. A lead surrogate immediately followed
// by a trail surrogate combines into one 4-byte sequence; a lone surrogate
// is encoded as if it were a standalone code point, a 3-byte sequence that
// is not valid UTF-8 but losslessly reversible.
//
// Single pass, one unit of lookahead, no backtracking. Prior contents of
// dst are untouched.
func UTF16ToUTF8WithSingleSurrogates(dst []byte, units []uint16) []byte {
	for i := 0; i < len(units); i++ {
		u := uint32(units[i])
		if u >= leadFirst && u <= leadLast && i+1 < len(units) {
			if next := uint32(units[i+1]); next >= trailFirst && next <= trailLast {
				dst = appendSupplementary(dst, pairScalar(u, next))
				i++
				continue
			}
		}
		dst = appendScalar(dst, u)
	}
	return dst
}

// replacement is the UTF-8 encoding of U+FFFD.
var replacement = []byte{0xEF, 0xBF, 0xBD}

// UTF16ToUTF8WithReplacements converts units to UTF-8, appending to dst and
// returning the extended slice. Valid surrogate pairs combine exactly as in
// UTF16ToUTF8WithSingleSurrogates; every lone surrogate becomes one U+FFFD,
// unpaired leads and unpaired trails each independently. The two policies
// agree byte-for-byte on well-formed input.
func UTF16ToUTF8WithReplacements(dst []byte, units []uint16) []byte {
	for i := 0; i < len(units); i++ {
		u := uint32(units[i])
		if u < leadFirst || u > trailLast {
			dst = appendScalar(dst, u)
			continue
		}
		if u <= leadLast && i+1 < len(units) {
			if next := uint32(units[i+1]); next >= trailFirst && next <= trailLast {
				dst = appendSupplementary(dst, pairScalar(u, next))
				i++
				continue
			}
		}
		dst = append(dst, replacement...)
	}
	return dst
}
