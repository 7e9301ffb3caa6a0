package blobstore

import (
	"context"
	"errors"
	"iter"
	"log"

	badger "github.com/dgraph-io/badger/v4"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/haivivi/dynbuf/pkg/buf"
)

// Badger is a Store implementation backed by BadgerDB v4.
type Badger struct {
	db *badger.DB
}

// BadgerOptions configures the BadgerDB store.
type BadgerOptions struct {
	// Dir is the directory for BadgerDB data files.
	// Required unless InMemory is set.
	Dir string

	// InMemory runs BadgerDB in memory-only mode (no disk persistence).
	// Useful for testing with a real badger engine.
	InMemory bool

	// Logger sets the badger logger. If nil, a quiet logger is used that
	// only forwards errors and warnings.
	Logger badger.Logger
}

// NewBadger creates a new BadgerDB-backed Store.
func NewBadger(opts BadgerOptions) (*Badger, error) {
	if !opts.InMemory && opts.Dir == "" {
		return nil, errors.New("blobstore: BadgerOptions.Dir is required for on-disk mode")
	}
	dbOpts := badger.DefaultOptions(opts.Dir)
	if opts.InMemory {
		dbOpts = dbOpts.WithInMemory(true)
	}
	if opts.Logger != nil {
		dbOpts = dbOpts.WithLogger(opts.Logger)
	} else {
		dbOpts = dbOpts.WithLogger(quietLogger{})
	}
	db, err := badger.Open(dbOpts)
	if err != nil {
		return nil, err
	}
	return &Badger{db: db}, nil
}

func (s *Badger) Put(_ context.Context, b *buf.Buffer, labels map[string]string) (Meta, error) {
	data := contents(b)
	meta := newMeta(data, labels)

	encoded, err := msgpack.Marshal(meta)
	if err != nil {
		return Meta{}, err
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set(metaKey(meta.ID), encoded); err != nil {
			return err
		}
		return txn.Set(dataKey(meta.ID), data)
	})
	if err != nil {
		return Meta{}, err
	}
	return meta, nil
}

func (s *Badger) Get(_ context.Context, id string) (*buf.Buffer, Meta, error) {
	var meta Meta
	var data []byte

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(metaKey(id))
		if err != nil {
			return err
		}
		encoded, err := item.ValueCopy(nil)
		if err != nil {
			return err
		}
		if err := msgpack.Unmarshal(encoded, &meta); err != nil {
			return err
		}

		item, err = txn.Get(dataKey(id))
		if err != nil {
			return err
		}
		data, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, Meta{}, ErrNotFound
	}
	if err != nil {
		return nil, Meta{}, err
	}
	if err := verify(data, meta); err != nil {
		return nil, Meta{}, err
	}
	return buf.NewFromOwned(data), meta, nil
}

func (s *Badger) Stat(_ context.Context, id string) (Meta, error) {
	var meta Meta
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(metaKey(id))
		if err != nil {
			return err
		}
		encoded, err := item.ValueCopy(nil)
		if err != nil {
			return err
		}
		return msgpack.Unmarshal(encoded, &meta)
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return Meta{}, ErrNotFound
	}
	return meta, err
}

func (s *Badger) Delete(_ context.Context, id string) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		if err := txn.Delete(metaKey(id)); err != nil {
			return err
		}
		return txn.Delete(dataKey(id))
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil
	}
	return err
}

func (s *Badger) List(_ context.Context) iter.Seq2[Meta, error] {
	prefix := []byte(keyPrefix)

	return func(yield func(Meta, error) bool) {
		err := s.db.View(func(txn *badger.Txn) error {
			iterOpts := badger.DefaultIteratorOptions
			iterOpts.Prefix = prefix
			it := txn.NewIterator(iterOpts)
			defer it.Close()

			for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
				item := it.Item()
				if !isMetaKey(item.Key()) {
					continue
				}
				encoded, err := item.ValueCopy(nil)
				if err != nil {
					if !yield(Meta{}, err) {
						return nil
					}
					continue
				}
				var meta Meta
				if err := msgpack.Unmarshal(encoded, &meta); err != nil {
					if !yield(Meta{}, err) {
						return nil
					}
					continue
				}
				if !yield(meta, nil) {
					return nil
				}
			}
			return nil
		})
		if err != nil {
			yield(Meta{}, err)
		}
	}
}

func (s *Badger) Close() error {
	return s.db.Close()
}

// isMetaKey reports whether a storage key holds a metadata record.
func isMetaKey(k []byte) bool {
	return len(k) >= len(metaSuffix) &&
		string(k[len(k)-len(metaSuffix):]) == metaSuffix
}

// quietLogger wraps the standard log package for badger, suppressing
// debug and info level messages.
type quietLogger struct{}

func (quietLogger) Errorf(f string, v ...interface{}) { log.Printf("[badger] ERROR: "+f, v...) }
func (quietLogger) Warningf(f string, v ...interface{}) {
	log.Printf("[badger] WARN: "+f, v...)
}
func (quietLogger) Infof(string, ...interface{})  {}
func (quietLogger) Debugf(string, ...interface{}) {}
