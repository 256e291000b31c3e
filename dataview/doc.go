// Package dataview implements the DataView over a detachable byte buffer:
// a fixed offset+length window with typed, endianness-aware, bounds-checked
// reads and writes.
//
// # Ordering Discipline
//
// Argument coercion can re-enter arbitrary host logic, including logic that
// detaches the buffer being operated on. Every operation therefore follows
// one fixed sequence:
//
//  1. receiver guard
//  2. offset coercion (side effects run to completion)
//  3. value coercion, for writes (side effects run to completion)
//  4. attachment re-check
//  5. bounds check against the view's fixed length
//  6. the memory touch
//
// No coercion happens after step 3. Moving step 4 or 5 any earlier
// reintroduces a use-after-detach hazard; keep them adjacent to the access.
//
// # Failure Atomicity
//
// Writes happen only after every check passes. A failed operation leaves
// the buffer byte-for-byte untouched.
package dataview
