package ports

import "context"

// KeyValueStore is the persistence port behind the state a browser used to
// keep in local storage: the upstream token, the login mode and the rewards
// pool. One store instance is scoped to one namespace.
type KeyValueStore interface {
	// Get returns the stored value and whether the key exists.
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, keys ...string) error
}

// KeyValueStores hands out namespaced stores. Session stores hold the
// token and mode and live as long as the login; profile stores hold the
// rewards pool and survive logout, the way local storage outlives a tab.
type KeyValueStores interface {
	Session(sessionID string) KeyValueStore
	Profile(owner string) KeyValueStore
}
