// Package metrics holds the service's prometheus collectors.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	DecodeAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "partscan_decode_attempts_total",
		Help: "Decode attempts per pipeline stage.",
	}, []string{"stage"})

	DecodeSuccess = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "partscan_decode_success_total",
		Help: "Successful decodes attributed to the pipeline stage that produced them.",
	}, []string{"stage"})

	ScansQueued = promauto.NewCounter(prometheus.CounterOpts{
		Name: "partscan_scans_queued_total",
		Help: "Scans diverted to the offline queue on connectivity failure.",
	})

	ScansCommitted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "partscan_scans_committed_total",
		Help: "Scans committed to the record store.",
	})

	ScansRejected = promauto.NewCounter(prometheus.CounterOpts{
		Name: "partscan_scans_rejected_total",
		Help: "Scans rejected by a business rule.",
	})

	QueueDepth = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "partscan_queue_depth",
		Help: "Pending scans currently in the offline queue.",
	})

	DrainCommitted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "partscan_drain_committed_total",
		Help: "Pending scans committed by reconciliation drains.",
	})

	DrainRetained = promauto.NewCounter(prometheus.CounterOpts{
		Name: "partscan_drain_retained_total",
		Help: "Pending scans left queued after a drain attempt.",
	})
)

func Handler() http.Handler {
	return promhttp.Handler()
}
