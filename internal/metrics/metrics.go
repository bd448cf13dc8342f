// Package metrics exposes the portal's Prometheus collectors.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RPCRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "portal", Name: "rpc_requests_total", Help: "Handled RPCs by procedure and result code",
	}, []string{"procedure", "code"})

	RPCDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "portal", Name: "rpc_duration_seconds", Help: "RPC latency",
		Buckets: prometheus.DefBuckets,
	}, []string{"procedure"})

	LedgerTransactions = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "portal", Name: "ledger_transactions_total", Help: "Transactions posted by type",
	}, []string{"type"})

	VoidTransitions = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "portal", Name: "void_transitions_total", Help: "Void workflow transitions by target status",
	}, []string{"status"})
)

func init() {
	prometheus.MustRegister(RPCRequests, RPCDuration, LedgerTransactions, VoidTransitions)
}

func Handler() http.Handler { return promhttp.Handler() }

// ObserveRPC records one finished RPC. code is "ok" for successes.
func ObserveRPC(procedure, code string, d time.Duration) {
	RPCRequests.WithLabelValues(procedure, code).Inc()
	RPCDuration.WithLabelValues(procedure).Observe(d.Seconds())
}
