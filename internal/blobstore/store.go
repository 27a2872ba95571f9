// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package blobstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/internal/adapter"
	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/internal/logger"
)

// Key layout:
//
//	blob/<cid> -> content bytes
//	pin/<cid>  -> JSON Pin record
const (
	blobPrefix = "blob/"
	pinPrefix  = "pin/"
)

// Pin describes a stored blob.
type Pin struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Size     int64     `json:"size"`
	PinnedAt time.Time `json:"pinned_at"`
	// Duplicate is set by Put when the blob was already stored.
	Duplicate bool `json:"-"`
}

// Store is a Badger-backed blob store.
type Store struct {
	db     *badger.DB
	logger *logger.Logger
}

// Open opens the store in dir. An empty dir opens an in-memory store that
// is lost on Close.
func Open(dir string, logger *logger.Logger) (*Store, error) {
	opts := badger.DefaultOptions(dir)
	if dir == "" {
		opts = opts.WithInMemory(true)
	}
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOpeningStore, err)
	}

	logger.Info().Str("dir", dir).Bool("in_memory", dir == "").Msg("blob store opened")
	return &Store{db: db, logger: logger}, nil
}

// Put stores data under its raw CIDv1 and returns the pin record. Storing
// the same bytes twice keeps the first record.
func (s *Store) Put(ctx context.Context, name string, data []byte) (Pin, error) {
	id, err := adapter.NewRawContentID(data)
	if err != nil {
		return Pin{}, err
	}
	return s.PutWithID(ctx, id, name, data)
}

// PutWithID stores data under id after checking that id addresses data.
// Only raw sha2-256 ids can be checked this way.
func (s *Store) PutWithID(ctx context.Context, id adapter.ContentID, name string, data []byte) (Pin, error) {
	if err := ctx.Err(); err != nil {
		return Pin{}, err
	}

	want, err := adapter.NewRawContentID(data)
	if err != nil {
		return Pin{}, err
	}
	if !want.Cid().Equals(id.Cid()) {
		return Pin{}, fmt.Errorf("%w: %s", ErrIDMismatch, id)
	}

	pin := Pin{ID: id.String(), Name: name, Size: int64(len(data)), PinnedAt: time.Now().UTC()}

	err = s.db.Update(func(txn *badger.Txn) error {
		existing, err := readPin(txn, id)
		switch {
		case err == nil:
			pin = existing
			pin.Duplicate = true
			return nil
		case !errors.Is(err, ErrNotFound):
			return err
		}

		record, err := json.Marshal(pin)
		if err != nil {
			return err
		}
		if err := txn.Set(blobKey(id), data); err != nil {
			return err
		}
		return txn.Set(pinKey(id), record)
	})
	if err != nil {
		return Pin{}, fmt.Errorf("store blob %s: %w", id, err)
	}

	logger.FromContext(ctx).Debug().
		Str("cid", pin.ID).
		Int64("size", pin.Size).
		Bool("duplicate", pin.Duplicate).
		Msg("blob pinned")
	return pin, nil
}

// Get returns a copy of the stored bytes.
func (s *Store) Get(ctx context.Context, id adapter.ContentID) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var data []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(blobKey(id))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}
		data, err = item.ValueCopy(nil)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("get blob %s: %w", id, err)
	}
	return data, nil
}

// Stat returns the pin record without reading the blob.
func (s *Store) Stat(ctx context.Context, id adapter.ContentID) (Pin, error) {
	if err := ctx.Err(); err != nil {
		return Pin{}, err
	}

	var pin Pin
	err := s.db.View(func(txn *badger.Txn) error {
		var err error
		pin, err = readPin(txn, id)
		return err
	})
	if err != nil {
		return Pin{}, fmt.Errorf("stat blob %s: %w", id, err)
	}
	return pin, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func readPin(txn *badger.Txn, id adapter.ContentID) (Pin, error) {
	item, err := txn.Get(pinKey(id))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return Pin{}, ErrNotFound
	}
	if err != nil {
		return Pin{}, err
	}

	var pin Pin
	err = item.Value(func(val []byte) error {
		return json.Unmarshal(val, &pin)
	})
	return pin, err
}

func blobKey(id adapter.ContentID) []byte { return []byte(blobPrefix + id.String()) }
func pinKey(id adapter.ContentID) []byte  { return []byte(pinPrefix + id.String()) }
