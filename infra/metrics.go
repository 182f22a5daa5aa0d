package infra

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	StaleCasesDemoted = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "mdt",
		Subsystem: "reconciliation",
		Name:      "stale_cases_demoted_total",
		Help:      "Cases moved back from submitted to pending by the stale case sweep.",
	})

	SweepRuns = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "mdt",
		Subsystem: "reconciliation",
		Name:      "sweep_runs_total",
		Help:      "Stale case sweep executions, by outcome.",
	}, []string{"status"})
)
