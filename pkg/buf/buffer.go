package buf

import (
	"errors"
	"sync/atomic"
)

// Sentinel errors for recoverable mutation failures.
var (
	// ErrShared is returned when an in-place mutation is attempted on a
	// buffer whose reference count is greater than one.
	ErrShared = errors.New("buf: buffer is shared")

	// ErrSliceBuffer is returned when an in-place mutation is attempted on
	// a slice. Slices view another buffer's storage and can never be
	// resized or reallocated, even when exclusively owned.
	ErrSliceBuffer = errors.New("buf: buffer is a slice")
)

// Buffer is a reference-counted byte range.
//
// A root buffer owns its storage directly. A slice buffer owns no storage;
// it views a window of the root buffer's bytes and holds a reference to the
// root so the storage cannot be freed while the slice is alive. The slice
// chain is always flat: slicing a slice references the root, never the
// intermediate slice.
//
// All methods except Retain and Release must be externally synchronized
// when a single buffer is used from multiple goroutines.
type Buffer struct {
	refs atomic.Int32

	// Root buffers: data holds the bytes, len(data) is the size and
	// cap(data) is the capacity. Nil for slices and released buffers.
	data []byte

	// Slice buffers: parent is the root owner, off/length locate the
	// window inside the root's storage. parent is nil for roots.
	parent *Buffer
	off    int
	length int
}

// New creates an empty buffer with the given initial capacity.
// The capacity must not be negative.
func New(capacity int) *Buffer {
	if capacity < 0 {
		panic("buf: negative capacity")
	}
	b := &Buffer{data: make([]byte, 0, capacity)}
	b.refs.Store(1)
	return b
}

// NewWithData creates a buffer initialized with a copy of data.
// A nil or empty input yields a valid empty buffer.
func NewWithData(data []byte) *Buffer {
	b := &Buffer{data: append(make([]byte, 0, len(data)), data...)}
	b.refs.Store(1)
	return b
}

// NewFromOwned creates a buffer that adopts data directly, without copying.
// The buffer's size is len(data) and its capacity is cap(data). The caller
// transfers ownership: data must not be read or written through the
// original slice after this call.
func NewFromOwned(data []byte) *Buffer {
	if data == nil {
		data = []byte{}
	}
	b := &Buffer{data: data}
	b.refs.Store(1)
	return b
}

// live panics if the buffer has already been released.
func (b *Buffer) live() {
	if b.refs.Load() <= 0 {
		panic("buf: use of released buffer")
	}
}

// bytes returns the buffer's effective byte window.
func (b *Buffer) bytes() []byte {
	if b.parent != nil {
		return b.parent.data[b.off : b.off+b.length]
	}
	return b.data
}

// Retain increments the reference count and returns the same buffer for
// chaining. Retaining a nil buffer is a no-op.
func (b *Buffer) Retain() *Buffer {
	if b == nil {
		return nil
	}
	b.live()
	b.refs.Add(1)
	return b
}

// Release decrements the reference count. When the count reaches zero the
// storage is dropped, or, for a slice, the reference to the root owner is
// released. Releasing a nil buffer is a no-op. Any use of the buffer after
// its final release panics.
func (b *Buffer) Release() {
	if b == nil {
		return
	}
	n := b.refs.Add(-1)
	if n < 0 {
		panic("buf: release of released buffer")
	}
	if n == 0 {
		if b.parent != nil {
			b.parent.Release()
			b.parent = nil
		}
		b.data = nil
	}
}

// Len returns the number of valid bytes in the buffer.
func (b *Buffer) Len() int {
	b.live()
	if b.parent != nil {
		return b.length
	}
	return len(b.data)
}

// Cap returns the buffer's allocated capacity in bytes.
// For a slice the capacity equals its length: a slice cannot grow.
func (b *Buffer) Cap() int {
	b.live()
	if b.parent != nil {
		return b.length
	}
	return cap(b.data)
}

// IsEmpty reports whether the buffer holds no bytes.
func (b *Buffer) IsEmpty() bool {
	return b.Len() == 0
}

// IsSlice reports whether the buffer is a view of another buffer's storage.
func (b *Buffer) IsSlice() bool {
	b.live()
	return b.parent != nil
}

// Refs returns the current reference count.
func (b *Buffer) Refs() int {
	b.live()
	return int(b.refs.Load())
}

// Bytes returns the buffer's contents as a byte slice.
//
// The returned slice aliases the buffer's storage and must be treated as
// read-only. It is valid until the buffer is mutated or released. Use
// MutableBytes for guarded write access.
func (b *Buffer) Bytes() []byte {
	b.live()
	return b.bytes()
}

// MutableBytes returns the buffer's contents for in-place modification.
// It fails with ErrShared or ErrSliceBuffer unless the buffer is
// exclusively owned.
func (b *Buffer) MutableBytes() ([]byte, error) {
	b.live()
	if err := b.mutable(); err != nil {
		return nil, err
	}
	return b.data, nil
}

// mutable reports whether in-place mutation is permitted: the buffer must
// not be a slice and must have exactly one live reference.
func (b *Buffer) mutable() error {
	if b.parent != nil {
		return ErrSliceBuffer
	}
	if b.refs.Load() != 1 {
		return ErrShared
	}
	return nil
}

// grownCap returns the new capacity for growing to at least need bytes,
// doubling the current capacity to amortize reallocation. Saturates to
// need if doubling overflows.
func grownCap(oldCap, need int) int {
	c := 2 * oldCap
	if c < need {
		c = need
	}
	if c < 0 { // overflow
		c = need
	}
	return c
}

// Resize sets the buffer's size to n, growing the capacity if needed.
// Bytes exposed by growing within existing capacity are unspecified.
// The size must not be negative. Fails with ErrShared or ErrSliceBuffer
// unless the buffer is exclusively owned; a failed resize leaves the
// buffer unchanged.
func (b *Buffer) Resize(n int) error {
	b.live()
	if n < 0 {
		panic("buf: negative size")
	}
	if err := b.mutable(); err != nil {
		return err
	}
	if n <= cap(b.data) {
		b.data = b.data[:n]
		return nil
	}
	fresh := make([]byte, n, grownCap(cap(b.data), n))
	copy(fresh, b.data)
	b.data = fresh
	return nil
}

// Reserve grows the buffer's capacity to at least min bytes without
// changing its size. It is a no-op if the capacity is already sufficient
// and never shrinks. Fails with ErrShared or ErrSliceBuffer unless the
// buffer is exclusively owned.
func (b *Buffer) Reserve(min int) error {
	b.live()
	if min < 0 {
		panic("buf: negative capacity")
	}
	if min <= cap(b.data) && b.parent == nil {
		return nil
	}
	if err := b.mutable(); err != nil {
		return err
	}
	fresh := make([]byte, len(b.data), grownCap(cap(b.data), min))
	copy(fresh, b.data)
	b.data = fresh
	return nil
}

// Append appends data to the end of the buffer, growing as needed.
// Appending zero bytes always succeeds, even on a shared buffer.
// Fails with ErrShared or ErrSliceBuffer unless the buffer is exclusively
// owned; a failed append leaves the buffer unchanged.
func (b *Buffer) Append(data []byte) error {
	b.live()
	if len(data) == 0 {
		return nil
	}
	if err := b.mutable(); err != nil {
		return err
	}
	if need := len(b.data) + len(data); need > cap(b.data) {
		if err := b.Reserve(need); err != nil {
			return err
		}
	}
	b.data = append(b.data, data...)
	return nil
}

// Clear sets the buffer's size to zero. Capacity and storage are kept.
// Fails with ErrShared or ErrSliceBuffer unless the buffer is exclusively
// owned.
func (b *Buffer) Clear() error {
	b.live()
	if err := b.mutable(); err != nil {
		return err
	}
	b.data = b.data[:0]
	return nil
}
