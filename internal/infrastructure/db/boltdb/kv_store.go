// Package boltdb keeps session and profile state in a local BoltDB file. It
// backs the command-line client, where there is no shared Redis.
package boltdb

import (
	"context"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/fleetdemo/commute-benefits/internal/core/ports"
)

var (
	bucketSessions = []byte("sessions")
	bucketProfiles = []byte("profiles")
)

// Stores is a file-backed ports.KeyValueStores. Each session and profile is
// a nested bucket under its namespace bucket.
type Stores struct {
	db *bolt.DB
}

// Open opens (creating if needed) the profile file at path.
func Open(path string) (*Stores, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, err
	}
	if err := db.Update(func(tx *bolt.Tx) error {
		for _, b := range [][]byte{bucketSessions, bucketProfiles} {
			if _, err := tx.CreateBucketIfNotExists(b); err != nil {
				return err
			}
		}
		return nil
	}); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Stores{db: db}, nil
}

// Close releases the underlying Bolt database handle.
func (s *Stores) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

var _ ports.KeyValueStores = (*Stores)(nil)

func (s *Stores) Session(sessionID string) ports.KeyValueStore {
	return &KVStore{db: s.db, parent: bucketSessions, name: []byte(sessionID)}
}

func (s *Stores) Profile(owner string) ports.KeyValueStore {
	return &KVStore{db: s.db, parent: bucketProfiles, name: []byte(owner)}
}

// KVStore is one nested bucket.
type KVStore struct {
	db     *bolt.DB
	parent []byte
	name   []byte
}

func (k *KVStore) Get(_ context.Context, key string) (string, bool, error) {
	var (
		out   string
		found bool
	)
	err := k.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(k.parent).Bucket(k.name)
		if b == nil {
			return nil
		}
		if v := b.Get([]byte(key)); v != nil {
			out, found = string(v), true
		}
		return nil
	})
	return out, found, err
}

func (k *KVStore) Set(_ context.Context, key, value string) error {
	return k.db.Update(func(tx *bolt.Tx) error {
		b, err := tx.Bucket(k.parent).CreateBucketIfNotExists(k.name)
		if err != nil {
			return err
		}
		return b.Put([]byte(key), []byte(value))
	})
}

func (k *KVStore) Delete(_ context.Context, keys ...string) error {
	return k.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(k.parent).Bucket(k.name)
		if b == nil {
			return nil
		}
		for _, key := range keys {
			if err := b.Delete([]byte(key)); err != nil {
				return err
			}
		}
		return nil
	})
}
