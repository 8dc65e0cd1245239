// Package observability provides Prometheus metrics for the application.
package observability

import (
	"sync"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ArticlesApprovedTotal counts editorial approvals.
	ArticlesApprovedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "newsroom_articles_approved_total",
		Help: "Total number of articles approved by editors",
	})

	// FeedRequestsTotal counts reader feed computations by cache outcome.
	FeedRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "newsroom_feed_requests_total",
		Help: "Total number of reader feed requests by cache outcome",
	}, []string{"outcome"})

	// RoleChangesTotal counts role transitions by target role.
	RoleChangesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "newsroom_role_changes_total",
		Help: "Total number of user role changes by new role",
	}, []string{"role"})

	// RoleGroupFailuresTotal counts suppressed role-group bookkeeping failures.
	RoleGroupFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "newsroom_role_group_failures_total",
		Help: "Total number of suppressed role-group assignment failures",
	})
)

var (
	httpMetricsOnce sync.Once
	httpMetrics     *fiberprometheus.FiberPrometheus
)

// HTTPMetrics returns the Fiber request-level Prometheus middleware.
// Collectors register in the default registry, so the instance is created
// once per process regardless of how many apps are built (tests included).
func HTTPMetrics(serviceName string) *fiberprometheus.FiberPrometheus {
	httpMetricsOnce.Do(func() {
		httpMetrics = fiberprometheus.New(serviceName)
	})
	return httpMetrics
}
