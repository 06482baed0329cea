package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	auditEventsWritten = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "cyltest",
		Subsystem: "audit",
		Name:      "events_written_total",
		Help:      "Audit entries persisted, by log type.",
	}, []string{"log_type"})

	auditEventsDropped = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "cyltest",
		Subsystem: "audit",
		Name:      "events_dropped_total",
		Help:      "Audit entries dropped instead of persisted, by reason.",
	}, []string{"reason"})

	auditQueryFailures = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "cyltest",
		Subsystem: "audit",
		Name:      "query_failures_total",
		Help:      "Audit queries that failed and returned an empty result.",
	})
)
