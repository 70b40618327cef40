package service

import (
	"context"
	"math"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/fleetdemo/commute-benefits/internal/api/metrics"
	"github.com/fleetdemo/commute-benefits/internal/core/domain"
	"github.com/fleetdemo/commute-benefits/internal/core/ports"
)

// PoolStore persists the rewards pool membership list as a JSON array under
// domain.KeyPoolIDs. It never fails: an unreadable store reads as an empty
// pool and a failed write is logged and dropped.
type PoolStore struct {
	kv  ports.KeyValueStore
	log zerolog.Logger
}

func NewPoolStore(kv ports.KeyValueStore, log zerolog.Logger) *PoolStore {
	return &PoolStore{kv: kv, log: log}
}

// Load returns the stored member ids in stored order. Entries that are not
// integral numbers are dropped; anything that is not a JSON array yields an
// empty result.
func (s *PoolStore) Load(ctx context.Context) []domain.EmployeeID {
	if s == nil || s.kv == nil {
		return nil
	}

	raw, ok, err := s.kv.Get(ctx, domain.KeyPoolIDs)
	if err != nil {
		s.log.Warn().Err(err).Msg("rewards pool read failed, treating as empty")
		metrics.PoolStoreOpsTotal.WithLabelValues("load", "error").Inc()
		return nil
	}
	if !ok || raw == "" {
		metrics.PoolStoreOpsTotal.WithLabelValues("load", "empty").Inc()
		return nil
	}

	var values []any
	if err := json.Unmarshal([]byte(raw), &values); err != nil {
		s.log.Warn().Err(err).Msg("rewards pool is not a JSON array, treating as empty")
		metrics.PoolStoreOpsTotal.WithLabelValues("load", "malformed").Inc()
		return nil
	}

	ids := make([]domain.EmployeeID, 0, len(values))
	for _, v := range values {
		f, ok := v.(float64)
		if !ok || f != math.Trunc(f) || math.IsInf(f, 0) || math.Abs(f) > 1<<53 {
			continue
		}
		ids = append(ids, domain.EmployeeID(f))
	}
	metrics.PoolStoreOpsTotal.WithLabelValues("load", "ok").Inc()
	return ids
}

// Save overwrites the stored list with ids.
func (s *PoolStore) Save(ctx context.Context, ids []domain.EmployeeID) {
	if s == nil || s.kv == nil {
		return
	}
	if ids == nil {
		ids = []domain.EmployeeID{}
	}

	b, err := json.Marshal(ids)
	if err != nil {
		s.log.Warn().Err(err).Msg("rewards pool encode failed")
		metrics.PoolStoreOpsTotal.WithLabelValues("save", "error").Inc()
		return
	}
	if err := s.kv.Set(ctx, domain.KeyPoolIDs, string(b)); err != nil {
		s.log.Warn().Err(err).Int("members", len(ids)).Msg("rewards pool write failed")
		metrics.PoolStoreOpsTotal.WithLabelValues("save", "error").Inc()
		return
	}
	metrics.PoolStoreOpsTotal.WithLabelValues("save", "ok").Inc()
}
