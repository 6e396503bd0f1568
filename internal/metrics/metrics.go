// Package metrics defines and registers the custom Prometheus metrics for
// the culture media service. It is the single source of truth for metric
// names, labels, and help strings. Metrics register themselves with the
// default registry at init time via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "culture_media"

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "invalid", or "error" (store unavailable)
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// BootstrapTotal counts first-run administrator provisioning attempts.
// Label:
//   - result: "ok", "invalid_input", "conflict", or "error"
var BootstrapTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "bootstrap_total",
		Help:      "Total number of first-run setup attempts, by result.",
	},
	[]string{"result"},
)

// RecordMutationsTotal counts media-record mutations.
// Label:
//   - action: "create", "update", or "delete"
var RecordMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "record_mutations_total",
		Help:      "Total number of media record mutations, by action.",
	},
	[]string{"action"},
)

// ExportsTotal counts CSV exports of the record listing.
var ExportsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "exports_total",
		Help:      "Total number of CSV exports served.",
	},
)
