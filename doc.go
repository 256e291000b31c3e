// Package hermes provides the binary and text codec core of a JavaScript
// runtime's standard library: a bounds-checked, endianness-aware DataView
// over a detachable byte buffer, and UTF-16 to UTF-8 transcoding with
// bit-exact handling of lone surrogates.
//
// # Architecture Overview
//
// The library is organized into packages with distinct responsibilities:
//
//	hermes/              Root package with the Buffer and coercion capabilities
//	├── buffer/          ArrayBuffer implementations (heap and file backed)
//	├── dataview/        DataView construction, accessors and typed get/set
//	├── transcoder/      UTF-16 to UTF-8 conversion and the ASCII classifier
//	└── errors/          Structured error types for debugging
//
// # Quick Start
//
// Construct a view and read typed values:
//
//	buf := buffer.FromBytes([]byte{0x01, 0x02, 0x03, 0x04})
//	view, err := dataview.New(buf, 0, nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	v, _ := view.GetUint16(0, true) // 0x0201, little-endian
//
// # Coercion Model
//
// Offset, length and value arguments are hermes.Value. A value implementing
// hermes.NumberCoercer runs arbitrary host code when coerced; that code may
// detach the buffer mid-operation. Every operation therefore runs all
// coercions first and re-validates attachment and bounds immediately before
// touching memory. Moving those checks earlier reintroduces a
// use-after-detach hazard.
//
// # Error Handling
//
// Errors use the structured types from the errors package:
//
//	[get] detached_buffer: GetInt32 called on a detached buffer
//	[construct] view_range: byteOffset 9 must be <= the buffer's byte length 8
//
// # Thread Safety
//
// Execution is single-threaded and cooperative: nothing in this core
// synchronizes. Buffers and views must be confined to one goroutine or
// synchronized externally.
package hermes
