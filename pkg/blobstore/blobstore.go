// Package blobstore provides keyed persistence for byte buffers.
//
// Blobs are stored under generated UUIDs together with a small metadata
// record (size, CRC-32 checksum, creation time, optional labels). The
// metadata is msgpack-encoded and kept under a separate key so that Stat
// and List never load blob contents.
//
// The package includes a BadgerDB-backed implementation for production use
// and an in-memory implementation for testing.
package blobstore

import (
	"context"
	"errors"
	"hash/crc32"
	"iter"
	"time"

	"github.com/google/uuid"

	"github.com/haivivi/dynbuf/pkg/buf"
)

// Sentinel errors.
var (
	// ErrNotFound is returned when a blob ID does not exist in the store.
	ErrNotFound = errors.New("blobstore: not found")

	// ErrChecksum is returned by Get when stored contents do not match
	// the recorded CRC-32.
	ErrChecksum = errors.New("blobstore: checksum mismatch")
)

// Meta describes a stored blob.
type Meta struct {
	// ID is the blob's UUID, assigned by Put.
	ID string `msgpack:"id"`

	// Size is the blob's length in bytes.
	Size int `msgpack:"size"`

	// CRC32 is the IEEE CRC-32 of the blob contents, verified on Get.
	CRC32 uint32 `msgpack:"crc32"`

	// CreatedAt records when the blob was stored.
	CreatedAt time.Time `msgpack:"created_at"`

	// Labels are optional caller-supplied annotations.
	Labels map[string]string `msgpack:"labels,omitempty"`
}

// Store is the interface for blob persistence.
//
// Buffers returned by Get are owned by the caller, who must release them.
// Buffers passed to Put are only read during the call; the store keeps its
// own copy of the bytes.
type Store interface {
	// Put stores the buffer's contents under a fresh UUID and returns
	// the blob's metadata. A nil buffer stores an empty blob.
	Put(ctx context.Context, b *buf.Buffer, labels map[string]string) (Meta, error)

	// Get retrieves a blob's contents and metadata.
	// Returns ErrNotFound if the ID does not exist.
	Get(ctx context.Context, id string) (*buf.Buffer, Meta, error)

	// Stat retrieves a blob's metadata without loading its contents.
	Stat(ctx context.Context, id string) (Meta, error)

	// Delete removes a blob. No error if the ID does not exist.
	Delete(ctx context.Context, id string) error

	// List iterates over the metadata of all stored blobs, ordered by ID.
	List(ctx context.Context) iter.Seq2[Meta, error]

	// Close releases any resources held by the store.
	Close() error
}

// newMeta builds the metadata record for a blob about to be stored.
// The labels map is copied so later caller mutations cannot rewrite
// stored metadata.
func newMeta(data []byte, labels map[string]string) Meta {
	var cp map[string]string
	if len(labels) > 0 {
		cp = make(map[string]string, len(labels))
		for k, v := range labels {
			cp[k] = v
		}
	}
	return Meta{
		ID:        uuid.NewString(),
		Size:      len(data),
		CRC32:     crc32.ChecksumIEEE(data),
		CreatedAt: time.Now().UTC(),
		Labels:    cp,
	}
}

// contents returns the bytes to store for a Put operand.
func contents(b *buf.Buffer) []byte {
	if b == nil {
		return nil
	}
	return b.Bytes()
}

// verify checks retrieved contents against the recorded metadata.
func verify(data []byte, m Meta) error {
	if len(data) != m.Size || crc32.ChecksumIEEE(data) != m.CRC32 {
		return ErrChecksum
	}
	return nil
}
