package buf

import (
	"io"
	"os"
)

// readChunk is the growth step for ReadFrom when the source size is
// unknown.
const readChunk = 4096

// ReadFile reads the named file into a new buffer.
func ReadFile(path string) (*Buffer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return NewFromOwned(data), nil
}

// WriteFile writes the buffer's full contents to the named file,
// truncating it if it exists.
func (b *Buffer) WriteFile(path string, perm os.FileMode) error {
	b.live()
	return os.WriteFile(path, b.bytes(), perm)
}

// ReadFrom appends bytes from r until EOF, implementing io.ReaderFrom.
// The buffer grows as needed; on a partial read only the bytes actually
// read are committed to the buffer's size. Requires exclusive ownership
// and fails with ErrShared or ErrSliceBuffer otherwise.
func (b *Buffer) ReadFrom(r io.Reader) (int64, error) {
	b.live()
	if err := b.mutable(); err != nil {
		return 0, err
	}
	var total int64
	for {
		if len(b.data) == cap(b.data) {
			if err := b.Reserve(cap(b.data) + readChunk); err != nil {
				return total, err
			}
		}
		n, err := r.Read(b.data[len(b.data):cap(b.data)])
		b.data = b.data[:len(b.data)+n]
		total += int64(n)
		if err == io.EOF {
			return total, nil
		}
		if err != nil {
			return total, err
		}
	}
}

// WriteTo offers the buffer's full contents to w, implementing
// io.WriterTo.
func (b *Buffer) WriteTo(w io.Writer) (int64, error) {
	b.live()
	n, err := w.Write(b.bytes())
	return int64(n), err
}
