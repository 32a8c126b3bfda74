// Package metrics defines the custom Prometheus metrics for the GearGuard
// maintenance tracker. It is the single source of truth for metric names,
// labels, and help strings. Metrics register with the default registry via
// promauto at package load.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "gearguard"

// AuthAttemptsTotal counts credential operations by method and outcome.
// Labels:
//   - method: "sign_in", "sign_up", "sign_out"
//   - result: "success", "validation_error", "rejected", "error"
var AuthAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_attempts_total",
		Help:      "Total number of credential operations, by method and result.",
	},
	[]string{"method", "result"},
)

// DemoLoginsTotal counts sign-ins served by the demo bypass, which never
// contact the provider.
var DemoLoginsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "demo_logins_total",
		Help:      "Total number of demo-credential sign-ins.",
	},
)

// ProfileReconcileTotal counts reconciliation attempts for profile rows
// whose best-effort insert failed at sign-up time.
// Label:
//   - result: "created", "retry", "dropped"
var ProfileReconcileTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "profile_reconcile_total",
		Help:      "Total number of profile reconciliation attempts, by result.",
	},
	[]string{"result"},
)

// StageTransitionsTotal counts maintenance request stage transitions.
// Label:
//   - stage: the stage the request moved into (e.g. "in_progress")
var StageTransitionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "stage_transitions_total",
		Help:      "Total number of maintenance request stage transitions, by target stage.",
	},
	[]string{"stage"},
)

// ReconcileQueueDepth tracks the number of profiles waiting in each
// reconciler worker channel.
// Label:
//   - worker_id: numeric worker index ("0", "1", ...)
var ReconcileQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "reconcile_queue_depth",
		Help:      "Current number of profiles pending in each reconciler worker channel.",
	},
	[]string{"worker_id"},
)
