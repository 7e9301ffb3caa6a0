package buf

import (
	"encoding/binary"
	"io"
)

// Reader is a sequential, bounds-checked cursor that decodes fixed-width
// binary values from a buffer.
//
// The reader retains the buffer on creation and releases it on Free.
// Reading past the end of the buffer is a contract violation and panics:
// silently returning zeroes would mask decode bugs. Use CanRead or
// Remaining to probe before reading variable-layout data.
type Reader struct {
	buf *Buffer
	pos int
}

// NewReader creates a reader over the buffer, retaining it for the
// lifetime of the reader.
func NewReader(b *Buffer) *Reader {
	if b == nil {
		panic("buf: reader over nil buffer")
	}
	return &Reader{buf: b.Retain()}
}

// active panics if the reader has been freed.
func (r *Reader) active() {
	if r.buf == nil {
		panic("buf: use of freed reader")
	}
}

// need panics unless n more bytes are available. Compared against the
// remaining window so huge n cannot wrap around.
func (r *Reader) need(n int) {
	if n > r.buf.Len()-r.pos {
		panic("buf: read past end of buffer")
	}
}

// Position returns the current read position.
func (r *Reader) Position() int {
	r.active()
	return r.pos
}

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int {
	r.active()
	return r.buf.Len() - r.pos
}

// CanRead reports whether n more bytes are available.
func (r *Reader) CanRead(n int) bool {
	r.active()
	// Compare against the remaining window so huge n cannot wrap around.
	return n >= 0 && n <= r.buf.Len()-r.pos
}

// Seek moves the read position. The position must lie within the buffer;
// seeking out of range panics.
func (r *Reader) Seek(position int) {
	r.active()
	if position < 0 || position > r.buf.Len() {
		panic("buf: reader seek out of range")
	}
	r.pos = position
}

// ReadUint8 decodes a single byte.
func (r *Reader) ReadUint8() uint8 {
	r.active()
	r.need(1)
	v := r.buf.bytes()[r.pos]
	r.pos++
	return v
}

// ReadUint16LE decodes a 16-bit value in little-endian byte order.
func (r *Reader) ReadUint16LE() uint16 {
	r.active()
	r.need(2)
	v := binary.LittleEndian.Uint16(r.buf.bytes()[r.pos:])
	r.pos += 2
	return v
}

// ReadUint16BE decodes a 16-bit value in big-endian byte order.
func (r *Reader) ReadUint16BE() uint16 {
	r.active()
	r.need(2)
	v := binary.BigEndian.Uint16(r.buf.bytes()[r.pos:])
	r.pos += 2
	return v
}

// ReadUint32LE decodes a 32-bit value in little-endian byte order.
func (r *Reader) ReadUint32LE() uint32 {
	r.active()
	r.need(4)
	v := binary.LittleEndian.Uint32(r.buf.bytes()[r.pos:])
	r.pos += 4
	return v
}

// ReadUint32BE decodes a 32-bit value in big-endian byte order.
func (r *Reader) ReadUint32BE() uint32 {
	r.active()
	r.need(4)
	v := binary.BigEndian.Uint32(r.buf.bytes()[r.pos:])
	r.pos += 4
	return v
}

// ReadUint64LE decodes a 64-bit value in little-endian byte order.
func (r *Reader) ReadUint64LE() uint64 {
	r.active()
	r.need(8)
	v := binary.LittleEndian.Uint64(r.buf.bytes()[r.pos:])
	r.pos += 8
	return v
}

// ReadUint64BE decodes a 64-bit value in big-endian byte order.
func (r *Reader) ReadUint64BE() uint64 {
	r.active()
	r.need(8)
	v := binary.BigEndian.Uint64(r.buf.bytes()[r.pos:])
	r.pos += 8
	return v
}

// ReadBytes decodes a raw byte run of length n into a fresh slice.
func (r *Reader) ReadBytes(n int) []byte {
	r.active()
	if n < 0 {
		panic("buf: negative read length")
	}
	r.need(n)
	out := make([]byte, n)
	copy(out, r.buf.bytes()[r.pos:])
	r.pos += n
	return out
}

// Read implements io.Reader over the remaining bytes, returning io.EOF
// when the buffer is exhausted. Unlike the fixed-width decoders, a short
// read here is not a contract violation.
func (r *Reader) Read(p []byte) (int, error) {
	r.active()
	if r.pos >= r.buf.Len() {
		return 0, io.EOF
	}
	n := copy(p, r.buf.bytes()[r.pos:])
	r.pos += n
	return n, nil
}

// Free releases the reader's reference to the buffer and invalidates the
// reader. Any use after Free panics.
func (r *Reader) Free() {
	r.active()
	r.buf.Release()
	r.buf = nil
}
