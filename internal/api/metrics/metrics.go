// Package metrics defines and registers the custom Prometheus metrics for
// the workflow monitoring API. It is the single source of truth for metric
// names, labels, and help strings; promauto registers everything with the
// default registry at init time.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "workflow"

// LoginsTotal counts login attempts by outcome.
// Label:
//   - result: "success", "invalid" (bad or missing credentials), or "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// LoginDuration measures how long a login attempt takes end-to-end, which is
// dominated by the bcrypt comparison and the user lookup.
var LoginDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "auth_login_duration_seconds",
		Help:      "Duration of login attempts.",
		Buckets:   prometheus.DefBuckets,
	},
)

// TokenChecksTotal counts bearer token validations in the auth middleware.
// Label:
//   - result: "ok", "missing", "invalid", "expired", or "revoked"
var TokenChecksTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_token_checks_total",
		Help:      "Total number of bearer token validations, labelled by result.",
	},
	[]string{"result"},
)
