package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/fleetdemo/commute-benefits/internal/core/ports"
)

const keyPrefix = "commute"

// Stores hands out Redis-backed key-value stores.
// Key format: commute:<namespace>:<owner>:<key>
type Stores struct {
	client     *redis.Client
	sessionTTL time.Duration
	profileTTL time.Duration
}

// NewStores wraps client. Session keys expire after sessionTTL; profile keys
// expire after profileTTL, or never when it is zero.
func NewStores(client *redis.Client, sessionTTL, profileTTL time.Duration) *Stores {
	return &Stores{client: client, sessionTTL: sessionTTL, profileTTL: profileTTL}
}

var _ ports.KeyValueStores = (*Stores)(nil)

func (s *Stores) Session(sessionID string) ports.KeyValueStore {
	return &KVStore{client: s.client, prefix: fmt.Sprintf("%s:session:%s:", keyPrefix, sessionID), ttl: s.sessionTTL}
}

func (s *Stores) Profile(owner string) ports.KeyValueStore {
	return &KVStore{client: s.client, prefix: fmt.Sprintf("%s:profile:%s:", keyPrefix, owner), ttl: s.profileTTL}
}

// KVStore is one namespace of keys.
type KVStore struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

func (k *KVStore) Get(ctx context.Context, key string) (string, bool, error) {
	v, err := k.client.Get(ctx, k.prefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("kv get %s: %w", key, err)
	}
	return v, true, nil
}

// Set writes value and refreshes the namespace TTL on that key.
func (k *KVStore) Set(ctx context.Context, key, value string) error {
	if err := k.client.Set(ctx, k.prefix+key, value, k.ttl).Err(); err != nil {
		return fmt.Errorf("kv set %s: %w", key, err)
	}
	return nil
}

func (k *KVStore) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	full := make([]string, len(keys))
	for i, key := range keys {
		full[i] = k.prefix + key
	}
	if err := k.client.Del(ctx, full...).Err(); err != nil {
		return fmt.Errorf("kv delete: %w", err)
	}
	return nil
}
