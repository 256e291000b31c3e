// Package transcoder converts UTF-16 code-unit sequences to UTF-8 bytes
// and classifies byte ranges as ASCII.
//
// # Two Lone-Surrogate Policies
//
// UTF-16 sequences arriving from the host carry no well-formedness
// guarantee: a lead surrogate may lack its trail and vice versa. The two
// converters agree on everything except those lone units:
//
//	Input unit(s)            WithSingleSurrogates   WithReplacements
//	──────────────────────────────────────────────────────────────────
//	[0, 0x7F]                1 byte                 1 byte
//	[0x80, 0x7FF]            2 bytes                2 bytes
//	non-surrogate BMP        3 bytes                3 bytes
//	lead+trail pair          4 bytes                4 bytes
//	lone surrogate           3-byte exact encoding  EF BF BD (U+FFFD)
//
// The exact encoding is not valid UTF-8 by the formal standard; it is the
// lossless internal representation and must not be "fixed" to the
// replacement character.
//
// Both converters are pure, single-pass, left-to-right with one unit of
// lookahead, and append-only: they extend the caller's accumulator and
// never touch its prior contents.
//
// # ASCII Classification
//
// IsAllASCII answers whether a byte range is pure 7-bit data, the cheap
// precondition for treating bytes as both UTF-8 and Latin-1. The wide
// fast path is an optimization only; results are identical to a
// byte-by-byte scan for every input.
package transcoder
