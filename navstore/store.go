// SPDX-License-Identifier: MIT

// Package navstore keeps named networks in an embedded BadgerDB.
//
// Values are the YAML records produced by package persist, stored under
// "network/<name>". Anything that implements persist.Object can be stored;
// loading needs a registry that knows the stored type tags.
package navstore

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/dgraph-io/badger/v4"

	"github.com/idledeity/marsminingco-sub000/persist"
)

const keyPrefix = "network/"

// Sentinel errors.
var (
	ErrNotFound  = errors.New("navstore: network not found")
	ErrEmptyName = errors.New("navstore: empty network name")
	ErrNoPath    = errors.New("navstore: path is required for a persistent store")
)

// Options configures Open.
type Options struct {
	// Path is the database directory. Ignored when InMemory is set.
	Path string

	// InMemory keeps everything in RAM; data is lost on Close.
	InMemory bool

	// SyncWrites fsyncs every commit.
	SyncWrites bool

	// Logger receives Badger's own log lines. Nil silences them.
	Logger *slog.Logger
}

// InMemoryOptions returns options for a throwaway store.
func InMemoryOptions() Options {
	return Options{InMemory: true}
}

// Store is a named collection of persisted networks.
// It is safe for concurrent use.
type Store struct {
	db  *badger.DB
	reg *persist.Registry
}

// badgerLogger adapts slog to badger.Logger.
type badgerLogger struct {
	logger *slog.Logger
}

func (l *badgerLogger) Errorf(format string, args ...interface{}) {
	l.logger.Error(strings.TrimSpace(fmt.Sprintf(format, args...)))
}

func (l *badgerLogger) Warningf(format string, args ...interface{}) {
	l.logger.Warn(strings.TrimSpace(fmt.Sprintf(format, args...)))
}

func (l *badgerLogger) Infof(format string, args ...interface{}) {
	l.logger.Info(strings.TrimSpace(fmt.Sprintf(format, args...)))
}

func (l *badgerLogger) Debugf(format string, args ...interface{}) {
	l.logger.Debug(strings.TrimSpace(fmt.Sprintf(format, args...)))
}

// Open opens (creating if needed) a store. reg decodes values in Get.
func Open(opts Options, reg *persist.Registry) (*Store, error) {
	var bo badger.Options
	if opts.InMemory {
		bo = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if opts.Path == "" {
			return nil, ErrNoPath
		}
		if err := os.MkdirAll(opts.Path, 0o750); err != nil {
			return nil, fmt.Errorf("navstore: create %s: %w", opts.Path, err)
		}
		bo = badger.DefaultOptions(opts.Path)
	}
	bo = bo.WithSyncWrites(opts.SyncWrites).WithNumVersionsToKeep(1)
	if opts.Logger != nil {
		bo = bo.WithLogger(&badgerLogger{logger: opts.Logger})
	} else {
		bo = bo.WithLogger(nil)
	}

	db, err := badger.Open(bo)
	if err != nil {
		return nil, fmt.Errorf("navstore: open: %w", err)
	}

	return &Store{db: db, reg: reg}, nil
}

// Close releases the database.
func (s *Store) Close() error { return s.db.Close() }

func key(name string) ([]byte, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyName
	}

	return []byte(keyPrefix + name), nil
}

// Put stores obj under name, replacing any previous value.
func (s *Store) Put(ctx context.Context, name string, obj persist.Object) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	k, err := key(name)
	if err != nil {
		return err
	}
	data, err := persist.Marshal(obj)
	if err != nil {
		return fmt.Errorf("navstore: put %q: %w", name, err)
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(k, data)
	})
}

// Raw returns the stored YAML document for name.
func (s *Store) Raw(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	k, err := key(name)
	if err != nil {
		return nil, err
	}

	var data []byte
	err = s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(k)
		if err != nil {
			return err
		}
		data, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("navstore: get %q: %w", name, err)
	}

	return data, nil
}

// Get loads the object stored under name.
func (s *Store) Get(ctx context.Context, name string) (persist.Object, error) {
	data, err := s.Raw(ctx, name)
	if err != nil {
		return nil, err
	}
	obj, err := persist.Unmarshal(s.reg, data)
	if err != nil {
		return nil, fmt.Errorf("navstore: decode %q: %w", name, err)
	}

	return obj, nil
}

// Delete removes name. Deleting a missing name returns ErrNotFound.
func (s *Store) Delete(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	k, err := key(name)
	if err != nil {
		return err
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		if _, err := txn.Get(k); err != nil {
			return err
		}
		return txn.Delete(k)
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return fmt.Errorf("%w: %q", ErrNotFound, name)
	}

	return err
}

// Names lists stored names in key order.
func (s *Store) Names(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var names []string
	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.IteratorOptions{Prefix: []byte(keyPrefix)})
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			names = append(names, strings.TrimPrefix(string(it.Item().Key()), keyPrefix))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("navstore: list: %w", err)
	}

	return names, nil
}
