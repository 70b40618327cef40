package service

import (
	"context"
	"errors"
	"maps"
	"strconv"
	"sync"
	"time"

	"github.com/fleetdemo/commute-benefits/internal/api/metrics"
	"github.com/fleetdemo/commute-benefits/internal/core/domain"
	"github.com/fleetdemo/commute-benefits/internal/core/ports"
)

// ConsoleRegistry keeps one Console per live session. A console lives until
// its session logs out or ends on its own, which plays the part of a page
// lifetime: the overlay and the seed-once flag reset only when a new session
// starts.
type ConsoleRegistry struct {
	deps   ConsoleDeps
	stores ports.KeyValueStores

	mu       sync.Mutex
	consoles map[string]*Console
}

func NewConsoleRegistry(deps ConsoleDeps, stores ports.KeyValueStores) *ConsoleRegistry {
	if deps.Now == nil {
		deps.Now = time.Now
	}
	return &ConsoleRegistry{
		deps:     deps,
		stores:   stores,
		consoles: make(map[string]*Console),
	}
}

var _ ports.Consoles = (*ConsoleRegistry)(nil)

// Get returns the session's console, creating it on first use. The rewards
// pool is kept in the actor's profile so it outlives the session. A console
// that finds its session token gone removes itself.
func (r *ConsoleRegistry) Get(sessionID, actor string) ports.Console {
	r.mu.Lock()
	defer r.mu.Unlock()

	if c, ok := r.consoles[sessionID]; ok {
		return c
	}
	c := NewConsole(r.deps, sessionID, actor, r.stores.Session(sessionID), r.stores.Profile(actor))
	c.onExpired = func() { r.evict(sessionID, c) }
	r.consoles[sessionID] = c
	metrics.ConsolesActive.Set(float64(len(r.consoles)))
	return c
}

// Drop forgets the session's console.
func (r *ConsoleRegistry) Drop(sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.consoles, sessionID)
	metrics.ConsolesActive.Set(float64(len(r.consoles)))
}

// Len is the number of live consoles.
func (r *ConsoleRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.consoles)
}

// Sweep drops the consoles of sessions that ended without a logout: the
// token is gone from the store or expires_at has passed. Expired session
// keys are deleted too. Store read errors leave the console in place.
func (r *ConsoleRegistry) Sweep(ctx context.Context) int {
	r.mu.Lock()
	live := maps.Clone(r.consoles)
	r.mu.Unlock()

	now := r.deps.Now()
	dropped := 0
	for sid, c := range live {
		ended, expired := sessionEnded(ctx, c.session, now)
		if !ended {
			continue
		}
		if expired {
			if err := c.session.Delete(ctx, domain.KeyToken, domain.KeyMode, domain.KeyUsername, domain.KeyExpiresAt); err != nil {
				r.deps.Log.Warn().Err(err).Str("session_id", sid).Msg("could not clear expired session")
			}
		}
		if r.evict(sid, c) {
			dropped++
		}
	}
	if dropped > 0 {
		r.deps.Log.Info().Int("dropped", dropped).Int("live", r.Len()).Msg("expired consoles swept")
	}
	return dropped
}

// Run sweeps every interval until ctx is done. A non-positive interval
// disables sweeping.
func (r *ConsoleRegistry) Run(ctx context.Context, every time.Duration) {
	if every <= 0 {
		return
	}
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.Sweep(ctx)
		}
	}
}

// evict removes c only if it is still the console registered for sid.
func (r *ConsoleRegistry) evict(sessionID string, c *Console) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.consoles[sessionID] != c {
		return false
	}
	delete(r.consoles, sessionID)
	metrics.ConsolesActive.Set(float64(len(r.consoles)))
	return true
}

// sessionEnded reports whether the session is over, and whether that is
// because expires_at passed while its keys were still stored.
func sessionEnded(ctx context.Context, kv ports.KeyValueStore, now time.Time) (ended, expired bool) {
	if _, err := sessionToken(ctx, kv); err != nil {
		return errors.Is(err, domain.ErrSessionExpired), false
	}
	raw, ok, err := kv.Get(ctx, domain.KeyExpiresAt)
	if err != nil || !ok {
		return false, false
	}
	sec, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return false, false
	}
	if now.Before(time.Unix(sec, 0)) {
		return false, false
	}
	return true, true
}
