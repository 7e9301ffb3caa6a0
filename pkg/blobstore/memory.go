package blobstore

import (
	"context"
	"iter"
	"sort"
	"sync"

	"github.com/haivivi/dynbuf/pkg/buf"
)

// Memory is an in-memory Store implementation backed by a map.
// It is safe for concurrent use and intended primarily for testing.
type Memory struct {
	mu    sync.RWMutex
	metas map[string]Meta
	blobs map[string][]byte
}

// NewMemory creates a new in-memory Store.
func NewMemory() *Memory {
	return &Memory{
		metas: make(map[string]Meta),
		blobs: make(map[string][]byte),
	}
}

func (m *Memory) Put(_ context.Context, b *buf.Buffer, labels map[string]string) (Meta, error) {
	data := contents(b)
	meta := newMeta(data, labels)

	// Keep a private copy; the caller may mutate or release the buffer.
	cp := make([]byte, len(data))
	copy(cp, data)

	m.mu.Lock()
	m.metas[meta.ID] = meta
	m.blobs[meta.ID] = cp
	m.mu.Unlock()
	return meta, nil
}

func (m *Memory) Get(_ context.Context, id string) (*buf.Buffer, Meta, error) {
	m.mu.RLock()
	meta, ok := m.metas[id]
	data := m.blobs[id]
	m.mu.RUnlock()
	if !ok {
		return nil, Meta{}, ErrNotFound
	}
	if err := verify(data, meta); err != nil {
		return nil, Meta{}, err
	}
	return buf.NewWithData(data), meta, nil
}

func (m *Memory) Stat(_ context.Context, id string) (Meta, error) {
	m.mu.RLock()
	meta, ok := m.metas[id]
	m.mu.RUnlock()
	if !ok {
		return Meta{}, ErrNotFound
	}
	return meta, nil
}

func (m *Memory) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	delete(m.metas, id)
	delete(m.blobs, id)
	m.mu.Unlock()
	return nil
}

func (m *Memory) List(_ context.Context) iter.Seq2[Meta, error] {
	// Snapshot under read lock so iteration never holds the lock.
	m.mu.RLock()
	metas := make([]Meta, 0, len(m.metas))
	for _, meta := range m.metas {
		metas = append(metas, meta)
	}
	m.mu.RUnlock()

	sort.Slice(metas, func(i, j int) bool { return metas[i].ID < metas[j].ID })

	return func(yield func(Meta, error) bool) {
		for _, meta := range metas {
			if !yield(meta, nil) {
				return
			}
		}
	}
}

func (m *Memory) Close() error {
	return nil
}
