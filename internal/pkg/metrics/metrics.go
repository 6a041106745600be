// Package metrics defines and registers all custom Prometheus metrics for
// the complaint intake API. It is the single source of truth for metric
// names, labels, and help strings; metrics register with the default
// registry at init time via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "complaint"

// ComplaintsCreatedTotal counts newly submitted complaints.
// Label:
//   - type: "COMPLAINT" or "ASPIRATION"
var ComplaintsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "complaints_created_total",
		Help:      "Total number of complaints submitted, by type.",
	},
	[]string{"type"},
)

// LoginsTotal counts authentication attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// RegistrationsTotal counts successful account registrations.
// Label:
//   - role: the role assigned to the new account
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of accounts registered, by role.",
	},
	[]string{"role"},
)
