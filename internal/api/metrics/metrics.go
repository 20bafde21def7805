// Package metrics defines and registers all custom Prometheus metrics for the
// AccuBooks accounting API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register with the default Prometheus registry at package init; the
// router exposes them on /metrics via promhttp.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/accubooks/accounting-system/internal/core/domain"
)

const namespace = "accubooks"

// ── Authentication metrics ────────────────────────────────────────────────────

// LoginsTotal counts login attempts by strategy and outcome.
// Labels:
//   - strategy: "remote" or "local"
//   - result: "ok" or "fail"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by strategy and result.",
	},
	[]string{"strategy", "result"},
)

// CredentialMigrationsTotal counts stored credentials rewritten to the salted
// hash format during login.
// Label:
//   - from_format: "marker" or "legacy_hash"
var CredentialMigrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "credential_migrations_total",
		Help:      "Total number of credentials migrated to the salted hash format.",
	},
	[]string{"from_format"},
)

// ── Inventory metrics ─────────────────────────────────────────────────────────

// StockMovementsTotal counts successfully applied stock movements.
// Label:
//   - movement_type: "in", "out", "adjustment", or "return"
var StockMovementsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "stock_movements_total",
		Help:      "Total number of stock movements applied, by movement type.",
	},
	[]string{"movement_type"},
)

// StockMovementErrorsTotal counts rejected or failed stock movements.
// Label:
//   - reason: short description of the failure (e.g. "negative_stock", "product_not_found", "persistence")
var StockMovementErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "stock_movement_errors_total",
		Help:      "Total number of stock movements that were rejected or failed.",
	},
	[]string{"reason"},
)

// StockAlerts tracks the number of currently active stock alerts.
// Label:
//   - alert_type: "out_of_stock", "low_stock", or "reorder_point"
var StockAlerts = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "stock_alerts",
		Help:      "Current number of active stock alerts, by alert type.",
	},
	[]string{"alert_type"},
)

// PublishStockAlerts resets and republishes the per-type alert gauge so
// cleared alerts drop back to zero.
func PublishStockAlerts(alerts []domain.StockAlert) {
	counts := map[domain.AlertType]int{
		domain.AlertOutOfStock:   0,
		domain.AlertLowStock:     0,
		domain.AlertReorderPoint: 0,
	}
	for _, a := range alerts {
		counts[a.AlertType]++
	}
	for alertType, n := range counts {
		StockAlerts.WithLabelValues(string(alertType)).Set(float64(n))
	}
}

// MovementQueueDepth tracks the current number of movements waiting in each
// dispatcher worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var MovementQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "movement_queue_depth",
		Help:      "Current number of stock movements pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)
