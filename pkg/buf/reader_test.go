package buf

import (
	"bytes"
	"io"
	"math"
	"testing"
)

func TestReader_ReadPrimitives(t *testing.T) {
	b := NewWithData([]byte{
		0x42,
		0x34, 0x12,
		0x78, 0x56, 0x34, 0x12,
		0xF0, 0xDE, 0xBC, 0x9A, 0x78, 0x56, 0x34, 0x12,
	})
	defer b.Release()

	r := NewReader(b)
	defer r.Free()

	if v := r.ReadUint8(); v != 0x42 {
		t.Fatalf("ReadUint8() = %#x, want 0x42", v)
	}
	if v := r.ReadUint16LE(); v != 0x1234 {
		t.Fatalf("ReadUint16LE() = %#x, want 0x1234", v)
	}
	if v := r.ReadUint32LE(); v != 0x12345678 {
		t.Fatalf("ReadUint32LE() = %#x, want 0x12345678", v)
	}
	if v := r.ReadUint64LE(); v != 0x123456789ABCDEF0 {
		t.Fatalf("ReadUint64LE() = %#x, want 0x123456789abcdef0", v)
	}
	if r.Remaining() != 0 {
		t.Fatalf("Remaining() = %d, want 0", r.Remaining())
	}
}

func TestReader_ReadBigEndian(t *testing.T) {
	b := NewWithData([]byte{
		0x12, 0x34,
		0x12, 0x34, 0x56, 0x78,
		0x12, 0x34, 0x56, 0x78, 0x9A, 0xBC, 0xDE, 0xF0,
	})
	defer b.Release()

	r := NewReader(b)
	defer r.Free()

	if v := r.ReadUint16BE(); v != 0x1234 {
		t.Fatalf("ReadUint16BE() = %#x, want 0x1234", v)
	}
	if v := r.ReadUint32BE(); v != 0x12345678 {
		t.Fatalf("ReadUint32BE() = %#x, want 0x12345678", v)
	}
	if v := r.ReadUint64BE(); v != 0x123456789ABCDEF0 {
		t.Fatalf("ReadUint64BE() = %#x, want 0x123456789abcdef0", v)
	}
}

func TestReader_RetainsBuffer(t *testing.T) {
	b := NewWithData([]byte{1, 2, 3})

	r := NewReader(b)
	if b.Refs() != 2 {
		t.Fatalf("Refs() = %d with live reader, want 2", b.Refs())
	}

	r.Free()
	if b.Refs() != 1 {
		t.Fatalf("Refs() = %d after Free, want 1", b.Refs())
	}
	b.Release()
}

func TestReader_BoundsChecking(t *testing.T) {
	b := NewWithData([]byte{1, 2})
	defer b.Release()

	r := NewReader(b)
	defer r.Free()

	if !r.CanRead(2) {
		t.Fatal("CanRead(2) = false, want true")
	}
	if r.CanRead(3) {
		t.Fatal("CanRead(3) = true, want false")
	}

	r.ReadUint8()
	if r.Remaining() != 1 {
		t.Fatalf("Remaining() = %d, want 1", r.Remaining())
	}

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on out-of-bounds read")
		}
	}()
	r.ReadUint16LE()
}

func TestReader_CanReadHugeLengthDoesNotWrap(t *testing.T) {
	b := NewWithData(make([]byte, 10))
	defer b.Release()

	r := NewReader(b)
	defer r.Free()

	r.Seek(5)
	// pos+n would overflow int; CanRead must still report false.
	if r.CanRead(math.MaxInt) {
		t.Fatal("CanRead(MaxInt) = true at pos 5, want false")
	}
	if !r.CanRead(5) {
		t.Fatal("CanRead(5) = false at pos 5, want true")
	}

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on huge ReadBytes length")
		}
	}()
	r.ReadBytes(math.MaxInt)
}

func TestReader_SeekAndPosition(t *testing.T) {
	b := NewWithData([]byte{10, 20, 30, 40})
	defer b.Release()

	r := NewReader(b)
	defer r.Free()

	r.ReadUint16LE()
	if r.Position() != 2 {
		t.Fatalf("Position() = %d, want 2", r.Position())
	}

	r.Seek(1)
	if v := r.ReadUint8(); v != 20 {
		t.Fatalf("ReadUint8() after seek = %d, want 20", v)
	}

	r.Seek(4) // end is a valid position
	if r.Remaining() != 0 {
		t.Fatalf("Remaining() = %d at end, want 0", r.Remaining())
	}

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on seek out of range")
		}
	}()
	r.Seek(5)
}

func TestReader_ReadBytes(t *testing.T) {
	b := NewWithData([]byte("HelloWorld"))
	defer b.Release()

	r := NewReader(b)
	defer r.Free()

	got := r.ReadBytes(5)
	if string(got) != "Hello" {
		t.Fatalf("ReadBytes(5) = %q, want %q", got, "Hello")
	}

	// The returned slice is a copy.
	got[0] = 'X'
	if b.Bytes()[0] != 'H' {
		t.Fatal("ReadBytes result aliases the buffer")
	}
}

func TestReader_IoReader(t *testing.T) {
	b := NewWithData([]byte("stream"))
	defer b.Release()

	r := NewReader(b)
	defer r.Free()

	got, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("ReadAll error: %v", err)
	}
	if string(got) != "stream" {
		t.Fatalf("ReadAll = %q, want %q", got, "stream")
	}
	if _, err := r.Read(make([]byte, 1)); err != io.EOF {
		t.Fatalf("Read at end: err = %v, want io.EOF", err)
	}
}

func TestReader_OverSlice(t *testing.T) {
	root := NewWithData([]byte{0xFF, 0x34, 0x12, 0xFF})
	s := root.Slice(1, 2)
	root.Release()

	r := NewReader(s)
	if v := r.ReadUint16LE(); v != 0x1234 {
		t.Fatalf("ReadUint16LE() over slice = %#x, want 0x1234", v)
	}
	r.Free()
	s.Release()
}

func TestReader_UseAfterFreePanics(t *testing.T) {
	b := NewWithData([]byte{1})
	defer b.Release()

	r := NewReader(b)
	r.Free()

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on read after Free")
		}
	}()
	r.ReadUint8()
}

func TestBuilderReader_RoundTrip(t *testing.T) {
	w := NewBuilder(32)
	w.WriteUint8(0x42).
		WriteUint16LE(0x1234).
		WriteUint32BE(0x12345678).
		WriteString("Test")

	b := w.Finish()
	defer b.Release()

	r := NewReader(b)
	defer r.Free()

	if v := r.ReadUint8(); v != 0x42 {
		t.Fatalf("ReadUint8() = %#x, want 0x42", v)
	}
	if v := r.ReadUint16LE(); v != 0x1234 {
		t.Fatalf("ReadUint16LE() = %#x, want 0x1234", v)
	}
	if v := r.ReadUint32BE(); v != 0x12345678 {
		t.Fatalf("ReadUint32BE() = %#x, want 0x12345678", v)
	}
	if got := r.ReadBytes(4); !bytes.Equal(got, []byte("Test")) {
		t.Fatalf("ReadBytes(4) = %q, want %q", got, "Test")
	}
	if r.Remaining() != 0 {
		t.Fatalf("Remaining() = %d at end of round-trip, want 0", r.Remaining())
	}
}
