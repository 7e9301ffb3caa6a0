package buf

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// ToHex creates a new buffer holding the hexadecimal text of b's bytes.
// The result is always exactly twice the size of b. An empty buffer
// encodes to an empty buffer.
func ToHex(b *Buffer, uppercase bool) *Buffer {
	b.live()
	s := hex.EncodeToString(b.bytes())
	if uppercase {
		s = strings.ToUpper(s)
	}
	return NewFromOwned([]byte(s))
}

// FromHex creates a buffer from hexadecimal text. Both upper- and
// lower-case digits are accepted. Odd-length input or any non-hex digit
// fails with an error and yields no partial buffer.
func FromHex(s string) (*Buffer, error) {
	data, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("buf: decode hex: %w", err)
	}
	return NewFromOwned(data), nil
}
