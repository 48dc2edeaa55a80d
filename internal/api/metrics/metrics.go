// Package metrics defines and registers the custom Prometheus metrics
// for the residence API. It is the single source of truth for metric
// names, labels, and help strings.
//
// Metrics register with the default registry at package init; the
// echoprometheus middleware exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "residence"

// AuthDenialsTotal counts requests rejected before reaching a handler.
// Label:
//   - reason: "missing_header", "invalid_token", "missing_claims",
//     "role_mismatch", "self_mismatch", "rate_limited"
var AuthDenialsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_denials_total",
		Help:      "Total number of requests rejected by the authorization chain.",
	},
	[]string{"reason"},
)

// TokensIssuedTotal counts credentials issued via POST /jwt.
var TokensIssuedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tokens_issued_total",
		Help:      "Total number of signed credentials issued.",
	},
)

// StoreFailuresTotal counts requests that ended in an unexpected store
// or handler failure.
// Label:
//   - path: the matched route path
var StoreFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "store_failures_total",
		Help:      "Total number of requests that failed with an internal error.",
	},
	[]string{"path"},
)
