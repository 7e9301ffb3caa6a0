package buf

import "bytes"

// Concat creates a new buffer holding a's bytes followed by b's bytes.
// A nil operand is treated as zero-length, so Concat(a, nil) copies a and
// Concat(nil, nil) yields an empty buffer.
func Concat(a, b *Buffer) *Buffer {
	return ConcatMany(a, b)
}

// ConcatMany creates a new buffer holding the bytes of all operands in
// order. Nil operands are treated as zero-length. The total size is
// computed up front so the result is allocated exactly once.
func ConcatMany(bufs ...*Buffer) *Buffer {
	total := 0
	for _, b := range bufs {
		if b != nil {
			b.live()
			total += b.Len()
		}
	}
	out := New(total)
	for _, b := range bufs {
		if b != nil {
			out.data = append(out.data, b.bytes()...)
		}
	}
	return out
}

// Equal reports whether two buffers hold the same bytes. The same handle
// is always equal to itself; two nil buffers are equal; a nil buffer
// never equals a live one.
func Equal(a, b *Buffer) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	a.live()
	b.live()
	return bytes.Equal(a.bytes(), b.bytes())
}

// Compare orders two buffers lexicographically, returning -1, 0, or +1.
// The shared prefix is compared byte-wise; ties are broken by
// shorter-is-less. A nil buffer orders before any live buffer and two nil
// buffers are equal.
func Compare(a, b *Buffer) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}
	a.live()
	b.live()
	return bytes.Compare(a.bytes(), b.bytes())
}
