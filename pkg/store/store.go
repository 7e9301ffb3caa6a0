// Package store persists whole buffers in file-oriented backends.
//
// A FileStore moves *buf.Buffer contents in and out of a named location:
// local disk for exports next to the working tree, or an S3-compatible
// bucket for sharing blobs between machines. Backends load and save
// complete buffers rather than exposing byte streams, so the reference
// counting and guard semantics of the buf package stay in force end to
// end.
package store

import (
	"context"

	"github.com/haivivi/dynbuf/pkg/buf"
)

// FileStore is the interface for whole-buffer persistence.
//
// Paths are forward-slash separated and relative to the store root.
// Implementations must be safe for concurrent use.
type FileStore interface {
	// Load reads the named object's full contents into a new buffer.
	// The caller owns the returned buffer and must release it. A missing
	// object fails with an error wrapping os.ErrNotExist.
	Load(ctx context.Context, path string) (*buf.Buffer, error)

	// Save writes the buffer's full contents under the named path,
	// replacing any existing object. The buffer is only read; ownership
	// stays with the caller.
	Save(ctx context.Context, path string, b *buf.Buffer) error

	// Delete removes the named object. Deleting a missing object is not
	// an error.
	Delete(ctx context.Context, path string) error

	// Exists reports whether the named object exists.
	Exists(ctx context.Context, path string) (bool, error)
}
