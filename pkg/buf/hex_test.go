package buf

import (
	"bytes"
	"strings"
	"testing"
)

func TestToHex_Converts(t *testing.T) {
	b := NewWithData([]byte{0xDE, 0xAD, 0xBE, 0xEF})
	defer b.Release()

	lower := ToHex(b, false)
	if string(lower.Bytes()) != "deadbeef" {
		t.Fatalf("ToHex lower = %q, want %q", lower.Bytes(), "deadbeef")
	}
	lower.Release()

	upper := ToHex(b, true)
	if string(upper.Bytes()) != "DEADBEEF" {
		t.Fatalf("ToHex upper = %q, want %q", upper.Bytes(), "DEADBEEF")
	}
	upper.Release()
}

func TestToHex_Empty(t *testing.T) {
	b := New(0)
	defer b.Release()

	h := ToHex(b, false)
	if h.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", h.Len())
	}
	h.Release()
}

func TestFromHex_Converts(t *testing.T) {
	b, err := FromHex("deadBEEF")
	if err != nil {
		t.Fatalf("FromHex error: %v", err)
	}
	defer b.Release()

	if !bytes.Equal(b.Bytes(), []byte{0xDE, 0xAD, 0xBE, 0xEF}) {
		t.Fatalf("Bytes() = %x, want deadbeef", b.Bytes())
	}
}

func TestFromHex_RejectsInvalidInput(t *testing.T) {
	for _, in := range []string{"abc", "zz", "12 34"} {
		if b, err := FromHex(in); err == nil {
			b.Release()
			t.Errorf("FromHex(%q) succeeded, want error", in)
		}
	}
}

func TestHex_RoundTrip(t *testing.T) {
	data := make([]byte, 256)
	for i := range data {
		data[i] = byte(i)
	}
	b := NewWithData(data)
	defer b.Release()

	h := ToHex(b, false)
	defer h.Release()
	if h.Len() != 2*b.Len() {
		t.Fatalf("hex Len() = %d, want %d", h.Len(), 2*b.Len())
	}

	back, err := FromHex(string(h.Bytes()))
	if err != nil {
		t.Fatalf("FromHex error: %v", err)
	}
	defer back.Release()

	if !Equal(b, back) {
		t.Fatal("hex round-trip did not reproduce original bytes")
	}
}

func TestDebugString_Format(t *testing.T) {
	b := NewWithData([]byte{0xAB, 0xCD})
	defer b.Release()

	s := b.DebugString("label")
	for _, want := range []string{"label:", "size=2", "capacity=2", "refcount=1", "ab cd"} {
		if !strings.Contains(s, want) {
			t.Errorf("DebugString() = %q, missing %q", s, want)
		}
	}
}

func TestDebugString_BoundedPreview(t *testing.T) {
	b := NewWithData(make([]byte, 64))
	defer b.Release()

	s := b.String()
	if !strings.Contains(s, "(48 more bytes)") {
		t.Fatalf("String() = %q, missing bounded preview marker", s)
	}
}

func TestDebugString_NilAndReleased(t *testing.T) {
	var nilBuf *Buffer
	if got := nilBuf.DebugString("x"); got != "x: <nil>" {
		t.Fatalf("DebugString(nil) = %q", got)
	}

	b := New(4)
	b.Release()
	if got := b.DebugString("x"); got != "x: <released>" {
		t.Fatalf("DebugString(released) = %q", got)
	}
}
