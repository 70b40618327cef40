package redis

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

func TestStores_KeyNamespaces(t *testing.T) {
	s := NewStores(nil, time.Hour, 0)

	sess := s.Session("abc").(*KVStore)
	if sess.prefix != "commute:session:abc:" || sess.ttl != time.Hour {
		t.Errorf("session store = %q ttl %v", sess.prefix, sess.ttl)
	}
	prof := s.Profile("alice").(*KVStore)
	if prof.prefix != "commute:profile:alice:" || prof.ttl != 0 {
		t.Errorf("profile store = %q ttl %v", prof.prefix, prof.ttl)
	}
}

// TestKVStore_RoundTrip needs a disposable Redis; set REDIS_TEST_ADDR to run it.
func TestKVStore_RoundTrip(t *testing.T) {
	addr := os.Getenv("REDIS_TEST_ADDR")
	if addr == "" {
		t.Skip("REDIS_TEST_ADDR not set")
	}
	ctx := context.Background()
	client, err := Connect(ctx, Config{Addr: addr})
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })

	kv := NewStores(client, time.Minute, 0).Session("test-" + time.Now().Format("150405.000000000"))
	t.Cleanup(func() { _ = kv.Delete(ctx, "token", "mode") })

	if _, ok, err := kv.Get(ctx, "token"); ok || err != nil {
		t.Fatalf("missing key: ok=%v err=%v", ok, err)
	}
	if err := kv.Set(ctx, "token", "t1"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if v, ok, err := kv.Get(ctx, "token"); !ok || err != nil || v != "t1" {
		t.Fatalf("get = %q %v %v", v, ok, err)
	}
	ttl, err := client.TTL(ctx, kv.(*KVStore).prefix+"token").Result()
	if err != nil || ttl <= 0 || ttl > time.Minute {
		t.Fatalf("ttl = %v, %v", ttl, err)
	}
	if err := kv.Delete(ctx, "token", "mode"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := client.Get(ctx, kv.(*KVStore).prefix+"token").Result(); err != redis.Nil {
		t.Fatalf("expected redis.Nil after delete, got %v", err)
	}
}
