package queue

import (
	"context"
	"hash/fnv"
	"strconv"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/fleetdemo/commute-benefits/internal/api/metrics"
	"github.com/fleetdemo/commute-benefits/internal/core/domain"
	"github.com/fleetdemo/commute-benefits/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
	insertTimeout  = 5 * time.Second
)

// AuditDispatcher routes console actions to a fixed set of workers using
// consistent hashing on the employee id, so actions for one employee are
// persisted in the order they settled.
type AuditDispatcher struct {
	workers []chan domain.EnrollmentAction
	repo    ports.AuditRepository
	log     zerolog.Logger
	wg      sync.WaitGroup
}

// NewAuditDispatcher creates a dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewAuditDispatcher(numWorkers int, repo ports.AuditRepository, log zerolog.Logger) *AuditDispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &AuditDispatcher{
		workers: make([]chan domain.EnrollmentAction, numWorkers),
		repo:    repo,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan domain.EnrollmentAction, channelBuffer)
	}
	return d
}

var _ ports.ActionRecorder = (*AuditDispatcher)(nil)

// Start launches all worker goroutines. Workers drain their channel and
// stop once ctx is cancelled.
func (d *AuditDispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		d.wg.Add(1)
		go d.runWorker(ctx, i, ch)
	}
}

// Wait blocks until every worker has stopped.
func (d *AuditDispatcher) Wait() { d.wg.Wait() }

// Record enqueues an action without blocking. When the worker's buffer is
// full the action is dropped and counted.
func (d *AuditDispatcher) Record(action domain.EnrollmentAction) {
	idx := d.shardIndex(action.EmployeeID)
	select {
	case d.workers[idx] <- action:
		metrics.AuditQueueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(d.workers[idx])))
	default:
		metrics.AuditErrorsTotal.WithLabelValues("queue_full").Inc()
		d.log.Warn().
			Int64("employee_id", int64(action.EmployeeID)).
			Str("kind", string(action.Kind)).
			Int("worker_id", idx).
			Msg("audit queue full, action dropped")
	}
}

// shardIndex maps an employee id deterministically to a worker index.
func (d *AuditDispatcher) shardIndex(employee domain.EmployeeID) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(strconv.FormatInt(int64(employee), 10)))
	return int(h.Sum32() % uint32(len(d.workers)))
}

func (d *AuditDispatcher) runWorker(ctx context.Context, id int, ch <-chan domain.EnrollmentAction) {
	defer d.wg.Done()
	label := strconv.Itoa(id)
	for {
		select {
		case <-ctx.Done():
			d.drain(id, ch)
			return
		case action := <-ch:
			metrics.AuditQueueDepth.WithLabelValues(label).Set(float64(len(ch)))
			d.persist(context.Background(), id, action)
		}
	}
}

// drain flushes whatever is already buffered after shutdown begins.
func (d *AuditDispatcher) drain(id int, ch <-chan domain.EnrollmentAction) {
	for {
		select {
		case action := <-ch:
			d.persist(context.Background(), id, action)
		default:
			return
		}
	}
}

func (d *AuditDispatcher) persist(parent context.Context, id int, action domain.EnrollmentAction) {
	ctx, cancel := context.WithTimeout(parent, insertTimeout)
	defer cancel()
	if err := d.repo.InsertAction(ctx, &action); err != nil {
		metrics.AuditErrorsTotal.WithLabelValues("insert_failed").Inc()
		d.log.Error().Err(err).
			Str("action_id", action.ID).
			Int64("employee_id", int64(action.EmployeeID)).
			Int("worker_id", id).
			Msg("audit insert failed")
	}
}

// LogRecorder is the recorder used when no audit store is configured; it
// only writes actions to the log.
type LogRecorder struct {
	log zerolog.Logger
}

func NewLogRecorder(log zerolog.Logger) *LogRecorder { return &LogRecorder{log: log} }

func (r *LogRecorder) Record(a domain.EnrollmentAction) {
	r.log.Debug().
		Str("session_id", a.SessionID).
		Int64("employee_id", int64(a.EmployeeID)).
		Str("kind", string(a.Kind)).
		Str("outcome", string(a.Outcome)).
		Msg("console action")
}
