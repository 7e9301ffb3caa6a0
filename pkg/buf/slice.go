package buf

// Slice creates a zero-copy view of length bytes starting at offset.
//
// The slice retains the root owner of the storage, so slicing a slice
// references the root directly and keeps the ownership chain flat. The
// returned buffer has capacity equal to its length and can never be
// mutated in place.
//
// Returns nil if the requested range does not lie within the buffer.
// A zero-length slice at a valid offset is a valid empty buffer.
func (b *Buffer) Slice(offset, length int) *Buffer {
	b.live()
	if offset < 0 || length < 0 {
		return nil
	}
	// length is checked against the remaining window rather than
	// offset+length against the size, so huge lengths cannot wrap around.
	if offset > b.Len() || length > b.Len()-offset {
		return nil
	}

	root, base := b, 0
	if b.parent != nil {
		root, base = b.parent, b.off
	}

	s := &Buffer{
		parent: root.Retain(),
		off:    base + offset,
		length: length,
	}
	s.refs.Store(1)
	return s
}

// SliceFrom creates a zero-copy view from offset to the end of the buffer.
// Returns nil if offset is out of range.
func (b *Buffer) SliceFrom(offset int) *Buffer {
	b.live()
	if offset < 0 || offset > b.Len() {
		return nil
	}
	return b.Slice(offset, b.Len()-offset)
}

// SliceTo creates a zero-copy view of the first length bytes.
// Returns nil if length exceeds the buffer's size.
func (b *Buffer) SliceTo(length int) *Buffer {
	b.live()
	if length < 0 || length > b.Len() {
		return nil
	}
	return b.Slice(0, length)
}

// Clone creates an independent copy of the buffer's bytes. The copy is a
// root buffer with its own storage and a reference count of one.
func (b *Buffer) Clone() *Buffer {
	b.live()
	return NewWithData(b.bytes())
}
