// Package memory provides process-local key-value stores for development
// runs without Redis.
package memory

import (
	"context"
	"sync"

	"github.com/fleetdemo/commute-benefits/internal/core/ports"
)

// Stores is an in-memory ports.KeyValueStores. Nothing expires.
type Stores struct {
	mu   sync.RWMutex
	data map[string]string
}

func NewStores() *Stores {
	return &Stores{data: make(map[string]string)}
}

var _ ports.KeyValueStores = (*Stores)(nil)

func (s *Stores) Session(sessionID string) ports.KeyValueStore {
	return &kvStore{s: s, prefix: "session:" + sessionID + ":"}
}

func (s *Stores) Profile(owner string) ports.KeyValueStore {
	return &kvStore{s: s, prefix: "profile:" + owner + ":"}
}

type kvStore struct {
	s      *Stores
	prefix string
}

func (k *kvStore) Get(_ context.Context, key string) (string, bool, error) {
	k.s.mu.RLock()
	defer k.s.mu.RUnlock()
	v, ok := k.s.data[k.prefix+key]
	return v, ok, nil
}

func (k *kvStore) Set(_ context.Context, key, value string) error {
	k.s.mu.Lock()
	defer k.s.mu.Unlock()
	k.s.data[k.prefix+key] = value
	return nil
}

func (k *kvStore) Delete(_ context.Context, keys ...string) error {
	k.s.mu.Lock()
	defer k.s.mu.Unlock()
	for _, key := range keys {
		delete(k.s.data, k.prefix+key)
	}
	return nil
}
