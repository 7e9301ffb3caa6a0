package buf

import (
	"fmt"
	"strings"
)

// previewLen bounds the hex preview in debug output.
const previewLen = 16

// String returns a one-line summary of the buffer for debugging:
// size, capacity, reference count, and a bounded hex preview of the
// leading bytes. It never mutates the buffer and never fails; a nil or
// released buffer formats as a placeholder.
func (b *Buffer) String() string {
	return b.DebugString("Buffer")
}

// DebugString is String with a caller-supplied label.
func (b *Buffer) DebugString(label string) string {
	if label == "" {
		label = "buffer"
	}
	if b == nil {
		return label + ": <nil>"
	}
	if b.refs.Load() <= 0 {
		return label + ": <released>"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s: size=%d, capacity=%d, refcount=%d",
		label, b.Len(), b.Cap(), b.Refs())

	data := b.bytes()
	if len(data) > 0 {
		sb.WriteString(", data: ")
		n := len(data)
		if n > previewLen {
			n = previewLen
		}
		for i := 0; i < n; i++ {
			if i > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%02x", data[i])
		}
		if len(data) > previewLen {
			fmt.Fprintf(&sb, " ... (%d more bytes)", len(data)-previewLen)
		}
	}
	return sb.String()
}
