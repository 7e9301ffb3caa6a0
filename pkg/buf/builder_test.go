package buf

import (
	"bytes"
	"errors"
	"testing"
)

func TestBuilder_WritePrimitives(t *testing.T) {
	w := NewBuilder(16)
	w.WriteUint8(0x42).
		WriteUint16LE(0x1234).
		WriteUint32LE(0x12345678).
		WriteUint64LE(0x123456789ABCDEF0)

	b := w.Finish()
	defer b.Release()

	want := []byte{
		0x42,
		0x34, 0x12,
		0x78, 0x56, 0x34, 0x12,
		0xF0, 0xDE, 0xBC, 0x9A, 0x78, 0x56, 0x34, 0x12,
	}
	if !bytes.Equal(b.Bytes(), want) {
		t.Fatalf("Bytes() = %x, want %x", b.Bytes(), want)
	}
}

func TestBuilder_Endianness(t *testing.T) {
	w := NewBuilder(4)
	w.WriteUint16LE(0x1234).WriteUint16BE(0x1234)

	b := w.Finish()
	defer b.Release()

	want := []byte{0x34, 0x12, 0x12, 0x34}
	if !bytes.Equal(b.Bytes(), want) {
		t.Fatalf("Bytes() = %x, want 34 12 12 34", b.Bytes())
	}
}

func TestBuilder_BigEndianWidths(t *testing.T) {
	w := NewBuilder(16)
	w.WriteUint32BE(0x12345678).WriteUint64BE(0x123456789ABCDEF0)

	b := w.Finish()
	defer b.Release()

	want := []byte{
		0x12, 0x34, 0x56, 0x78,
		0x12, 0x34, 0x56, 0x78, 0x9A, 0xBC, 0xDE, 0xF0,
	}
	if !bytes.Equal(b.Bytes(), want) {
		t.Fatalf("Bytes() = %x, want %x", b.Bytes(), want)
	}
}

func TestBuilder_GrowsBeyondInitialCapacity(t *testing.T) {
	w := NewBuilder(2)
	for i := 0; i < 100; i++ {
		w.WriteUint8(byte(i))
	}

	b := w.Finish()
	defer b.Release()

	if b.Len() != 100 {
		t.Fatalf("Len() = %d, want 100", b.Len())
	}
	for i, v := range b.Bytes() {
		if v != byte(i) {
			t.Fatalf("byte %d = %#x, want %#x", i, v, byte(i))
		}
	}
}

func TestBuilder_FromBuffer_ContinuesAppending(t *testing.T) {
	b := NewWithData([]byte("head"))

	w, err := NewBuilderFromBuffer(b)
	if err != nil {
		t.Fatalf("NewBuilderFromBuffer error: %v", err)
	}
	if w.Position() != 4 {
		t.Fatalf("Position() = %d, want 4 (current size)", w.Position())
	}
	w.WriteString("tail")

	out := w.Finish()
	defer out.Release()

	if string(out.Bytes()) != "headtail" {
		t.Fatalf("Bytes() = %q, want %q", out.Bytes(), "headtail")
	}
}

func TestBuilder_FromBuffer_RejectsSharedAndSlice(t *testing.T) {
	b := NewWithData([]byte("shared"))
	b.Retain()
	if _, err := NewBuilderFromBuffer(b); !errors.Is(err, ErrShared) {
		t.Fatalf("err = %v, want ErrShared", err)
	}
	b.Release()
	b.Release()

	root := NewWithData([]byte("root"))
	s := root.Slice(0, 2)
	if _, err := NewBuilderFromBuffer(s); !errors.Is(err, ErrSliceBuffer) {
		t.Fatalf("err = %v, want ErrSliceBuffer", err)
	}
	s.Release()
	root.Release()
}

func TestBuilder_SeekOverwritesWithoutTruncating(t *testing.T) {
	w := NewBuilder(8)
	w.WriteUint32LE(0xAAAAAAAA).WriteUint32LE(0xBBBBBBBB)

	// Overwrite the first word; the size must stay at 8.
	w.Seek(0)
	w.WriteUint32LE(0xCCCCCCCC)
	if w.Len() != 8 {
		t.Fatalf("Len() = %d after overwrite, want 8", w.Len())
	}
	if w.Position() != 4 {
		t.Fatalf("Position() = %d, want 4", w.Position())
	}

	b := w.Finish()
	defer b.Release()

	want := []byte{0xCC, 0xCC, 0xCC, 0xCC, 0xBB, 0xBB, 0xBB, 0xBB}
	if !bytes.Equal(b.Bytes(), want) {
		t.Fatalf("Bytes() = %x, want %x", b.Bytes(), want)
	}
}

func TestBuilder_SeekPastSizePanics(t *testing.T) {
	w := NewBuilder(8)
	w.WriteUint8(1)

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on seek past size")
		}
	}()
	w.Seek(2)
}

func TestBuilder_UseAfterFinishPanics(t *testing.T) {
	w := NewBuilder(8)
	b := w.Finish()
	defer b.Release()

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on write after Finish")
		}
	}()
	w.WriteUint8(1)
}

func TestBuilder_WriteBytesAndString(t *testing.T) {
	w := NewBuilder(4)
	w.WriteBytes([]byte{1, 2}).WriteBytes(nil).WriteString("Test").WriteString("")

	b := w.Finish()
	defer b.Release()

	want := []byte{1, 2, 'T', 'e', 's', 't'}
	if !bytes.Equal(b.Bytes(), want) {
		t.Fatalf("Bytes() = %x, want %x", b.Bytes(), want)
	}
}

func BenchmarkBuilderWriteUint32LE(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		w := NewBuilder(64)
		for j := 0; j < 16; j++ {
			w.WriteUint32LE(uint32(j))
		}
		w.Finish().Release()
	}
}
