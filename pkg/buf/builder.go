package buf

import "encoding/binary"

// Builder is an append/overwrite cursor that grows a buffer while encoding
// fixed-width binary values.
//
// The write position is distinct from the buffer's size: seeking backward
// and writing overwrites bytes in place without truncating, and the size
// only grows when the position moves past it. Write methods return the
// builder for chaining.
//
// A builder exclusively owns its buffer until Finish hands the buffer back
// and invalidates the builder. Using a finished builder panics.
type Builder struct {
	buf *Buffer
	pos int
}

// NewBuilder creates a builder over a fresh empty buffer with the given
// initial capacity.
func NewBuilder(initialCapacity int) *Builder {
	return &Builder{buf: New(initialCapacity)}
}

// NewBuilderFromBuffer creates a builder that continues appending to an
// existing buffer. The cursor starts at the buffer's current size and
// ownership of the handle transfers to the builder: the caller must not
// retain, release, or mutate the buffer until Finish returns it.
//
// The buffer must be exclusively owned; a shared buffer or a slice fails
// with ErrShared or ErrSliceBuffer.
func NewBuilderFromBuffer(b *Buffer) (*Builder, error) {
	b.live()
	if err := b.mutable(); err != nil {
		return nil, err
	}
	return &Builder{buf: b, pos: b.Len()}, nil
}

// active panics if the builder has been finished.
func (w *Builder) active() {
	if w.buf == nil {
		panic("buf: use of finished builder")
	}
}

// ensure makes room for n bytes at the current position, growing the
// buffer's capacity and extending its size when the write reaches past
// the current end.
func (w *Builder) ensure(n int) {
	need := w.pos + n
	if need > cap(w.buf.data) {
		if err := w.buf.Reserve(need); err != nil {
			// The builder holds the only handle; a guard failure here
			// means the caller broke the ownership transfer contract.
			panic("buf: builder buffer retained elsewhere: " + err.Error())
		}
	}
	if need > len(w.buf.data) {
		w.buf.data = w.buf.data[:need]
	}
}

// Position returns the current write position.
func (w *Builder) Position() int {
	w.active()
	return w.pos
}

// Len returns the current size of the buffer under construction.
func (w *Builder) Len() int {
	w.active()
	return w.buf.Len()
}

// Seek moves the write position. The position must not exceed the
// buffer's current size: seeking into unwritten territory panics.
func (w *Builder) Seek(position int) {
	w.active()
	if position < 0 || position > w.buf.Len() {
		panic("buf: builder seek out of range")
	}
	w.pos = position
}

// WriteUint8 writes a single byte at the current position.
func (w *Builder) WriteUint8(v uint8) *Builder {
	w.active()
	w.ensure(1)
	w.buf.data[w.pos] = v
	w.pos++
	return w
}

// WriteUint16LE writes a 16-bit value in little-endian byte order.
func (w *Builder) WriteUint16LE(v uint16) *Builder {
	w.active()
	w.ensure(2)
	binary.LittleEndian.PutUint16(w.buf.data[w.pos:], v)
	w.pos += 2
	return w
}

// WriteUint16BE writes a 16-bit value in big-endian byte order.
func (w *Builder) WriteUint16BE(v uint16) *Builder {
	w.active()
	w.ensure(2)
	binary.BigEndian.PutUint16(w.buf.data[w.pos:], v)
	w.pos += 2
	return w
}

// WriteUint32LE writes a 32-bit value in little-endian byte order.
func (w *Builder) WriteUint32LE(v uint32) *Builder {
	w.active()
	w.ensure(4)
	binary.LittleEndian.PutUint32(w.buf.data[w.pos:], v)
	w.pos += 4
	return w
}

// WriteUint32BE writes a 32-bit value in big-endian byte order.
func (w *Builder) WriteUint32BE(v uint32) *Builder {
	w.active()
	w.ensure(4)
	binary.BigEndian.PutUint32(w.buf.data[w.pos:], v)
	w.pos += 4
	return w
}

// WriteUint64LE writes a 64-bit value in little-endian byte order.
func (w *Builder) WriteUint64LE(v uint64) *Builder {
	w.active()
	w.ensure(8)
	binary.LittleEndian.PutUint64(w.buf.data[w.pos:], v)
	w.pos += 8
	return w
}

// WriteUint64BE writes a 64-bit value in big-endian byte order.
func (w *Builder) WriteUint64BE(v uint64) *Builder {
	w.active()
	w.ensure(8)
	binary.BigEndian.PutUint64(w.buf.data[w.pos:], v)
	w.pos += 8
	return w
}

// WriteBytes writes a raw byte run at the current position.
// Writing zero bytes is a no-op.
func (w *Builder) WriteBytes(data []byte) *Builder {
	w.active()
	if len(data) == 0 {
		return w
	}
	w.ensure(len(data))
	copy(w.buf.data[w.pos:], data)
	w.pos += len(data)
	return w
}

// WriteString writes the raw bytes of s, without any terminator.
func (w *Builder) WriteString(s string) *Builder {
	w.active()
	if len(s) == 0 {
		return w
	}
	w.ensure(len(s))
	copy(w.buf.data[w.pos:], s)
	w.pos += len(s)
	return w
}

// Finish hands back ownership of the constructed buffer and invalidates
// the builder. The caller is responsible for releasing the buffer.
func (w *Builder) Finish() *Buffer {
	w.active()
	b := w.buf
	w.buf = nil
	return b
}
