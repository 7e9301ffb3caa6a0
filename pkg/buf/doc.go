// Package buf provides reference-counted byte buffers for I/O and binary
// encoding.
//
// The central type is Buffer, a linear byte range with shared ownership
// through an atomic reference count. Buffers are created by explicit
// constructors, shared via Retain/Release, and destroyed when the last
// reference is released. Zero-copy slices describe sub-ranges of another
// buffer's bytes while keeping the owning buffer alive.
//
// In-place mutation (Resize, Reserve, Append, Clear, MutableBytes) is only
// permitted on a buffer that is exclusively owned: its reference count must
// be exactly one and it must not be a slice. Violations are reported as
// errors and never corrupt the buffer.
//
// Two cursor types layer structured binary encode/decode over a buffer:
//
//   - Builder: an append/overwrite cursor that grows a buffer while writing
//     fixed-width integers (little- or big-endian) and raw byte runs.
//
//   - Reader: a sequential, bounds-checked cursor that decodes the same
//     primitives back out of a buffer.
//
// Reference counting is the only thread-safe operation. Byte-level mutation
// of a single buffer from multiple goroutines requires external
// synchronization.
//
// Example usage:
//
//	b := buf.NewWithData([]byte("Hello"))
//	s := b.Slice(1, 4) // "ello", zero-copy view
//
//	w := buf.NewBuilder(16)
//	w.WriteUint16LE(0x1234).WriteString("Test")
//	out := w.Finish()
//
//	r := buf.NewReader(out)
//	v := r.ReadUint16LE()
//	_ = v
//	r.Free()
//
//	s.Release()
//	b.Release()
//	out.Release()
package buf
