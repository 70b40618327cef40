// Package metrics defines and registers the custom Prometheus metrics of the
// commute console. Metrics are registered on the default registry at package
// init through promauto; HTTP metrics come from echoprometheus.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "commute_console"

// ── Console metrics ───────────────────────────────────────────────────────────

// ConsoleActionsTotal counts settled console actions.
// Labels:
//   - action: "enroll", "cancel", "pool_join", "pool_leave", "pool_seed"
//   - outcome: "succeeded", "failed", "skipped"
var ConsoleActionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "actions_total",
		Help:      "Total number of console actions, by action and outcome.",
	},
	[]string{"action", "outcome"},
)

// ConsolesActive tracks how many session consoles are held in memory.
var ConsolesActive = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "consoles_active",
		Help:      "Number of session consoles currently held in memory.",
	},
)

// PoolStoreOpsTotal counts rewards pool reads and writes.
// Labels:
//   - op: "load" or "save"
//   - result: "ok", "empty", "malformed", "error"
var PoolStoreOpsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "pool_store_ops_total",
		Help:      "Total number of rewards pool store operations, by op and result.",
	},
	[]string{"op", "result"},
)

// LoginsTotal counts login attempts.
// Labels:
//   - mode: "admin" or "commuter"
//   - result: "ok", "rejected", "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by mode and result.",
	},
	[]string{"mode", "result"},
)

// ── Upstream metrics ──────────────────────────────────────────────────────────

// UpstreamRequestsTotal counts calls to the commute API.
// Labels:
//   - endpoint: logical endpoint name (e.g. "list_employees")
//   - code: HTTP status code, or "error" when no response was received
var UpstreamRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "upstream_requests_total",
		Help:      "Total number of commute API requests, by endpoint and status code.",
	},
	[]string{"endpoint", "code"},
)

// UpstreamRequestDuration measures commute API round trips.
var UpstreamRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "upstream_request_duration_seconds",
		Help:      "Duration of commute API requests.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"endpoint"},
)

// ── Audit metrics ─────────────────────────────────────────────────────────────

// AuditQueueDepth tracks pending audit records per dispatcher worker.
var AuditQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "audit_queue_depth",
		Help:      "Current number of audit records pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

// AuditErrorsTotal counts audit records that could not be persisted or queued.
// Label:
//   - reason: "insert_failed" or "queue_full"
var AuditErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_errors_total",
		Help:      "Total number of audit records dropped, by reason.",
	},
	[]string{"reason"},
)
