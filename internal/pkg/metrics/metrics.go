// Package metrics defines and registers all custom Prometheus metrics for the
// NyayaSetu portal API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics are registered with the default Prometheus registry on package init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "portal"

// ── Account metrics ───────────────────────────────────────────────────────────

// SignupsTotal counts completed registrations.
// Label:
//   - role: "User" or "Advocate"
var SignupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signups_total",
		Help:      "Total number of users registered, by role.",
	},
	[]string{"role"},
)

// SignupRejectionsTotal counts registrations refused for a domain reason.
// Label:
//   - reason: "validation" or "duplicate_email"
var SignupRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signup_rejections_total",
		Help:      "Total number of rejected registrations, by reason.",
	},
	[]string{"reason"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "rejected"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// SessionsCreatedTotal counts sessions opened by signup or login.
var SessionsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sessions_created_total",
		Help:      "Total number of sessions created.",
	},
)

// ── Infrastructure metrics ────────────────────────────────────────────────────

// StorageCorruptTotal counts loads that found an unparseable user store and
// fell back to an empty collection.
var StorageCorruptTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "storage_corrupt_total",
		Help:      "Total number of user store loads that recovered from corrupt data.",
	},
)

// NewsUpstreamErrorsTotal counts failed calls to the headline provider.
var NewsUpstreamErrorsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "news_upstream_errors_total",
		Help:      "Total number of failed requests to the news upstream.",
	},
)
