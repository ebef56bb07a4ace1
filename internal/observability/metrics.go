// Package observability holds the Prometheus metrics and OpenTelemetry
// tracing setup for the server.
package observability

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics for the server.
type Metrics struct {
	// Registry is the Prometheus registry that owns these metrics.
	Registry *prometheus.Registry

	rpcDuration     *prometheus.HistogramVec
	ocrRequests     *prometheus.CounterVec
	ocrDuration     prometheus.Histogram
	receiptItems    *prometheus.CounterVec
	receiptFailures *prometheus.CounterVec
	transfers       prometheus.Histogram
	activeSessions  prometheus.Gauge
}

// NewMetrics creates a dedicated Prometheus registry and registers all
// server metrics in it. A private registry lets tests build as many
// instances as they like.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		Registry: reg,

		rpcDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "dutchie_rpc_duration_seconds",
				Help:    "Duration of RPCs by procedure and result code.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"procedure", "code"},
		),
		ocrRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dutchie_ocr_requests_total",
				Help: "Total OCR recognitions by result.",
			},
			[]string{"result"},
		),
		ocrDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "dutchie_ocr_duration_seconds",
				Help:    "Duration of single-image OCR recognitions.",
				Buckets: []float64{0.1, 0.25, 0.5, 1, 2, 5, 10},
			},
		),
		receiptItems: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dutchie_receipt_items_total",
				Help: "Total receipt items extracted by strategy.",
			},
			[]string{"strategy"},
		),
		receiptFailures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dutchie_receipt_parse_failures_total",
				Help: "Total receipts that yielded no prices, by strategy.",
			},
			[]string{"strategy"},
		),
		transfers: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "dutchie_settlement_transfers",
				Help:    "Number of transfers per computed settlement.",
				Buckets: prometheus.LinearBuckets(0, 1, 10),
			},
		),
		activeSessions: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "dutchie_active_sessions",
				Help: "Sessions started and not yet ended.",
			},
		),
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}

// ObserveRPC records one RPC outcome.
func (m *Metrics) ObserveRPC(procedure, code string, d time.Duration) {
	m.rpcDuration.WithLabelValues(procedure, code).Observe(d.Seconds())
}

// RecordOCR records one recognition. result is "ok", "error" or
// "unavailable".
func (m *Metrics) RecordOCR(result string, d time.Duration) {
	m.ocrRequests.WithLabelValues(result).Inc()
	if result == "ok" {
		m.ocrDuration.Observe(d.Seconds())
	}
}

// RecordExtraction records how many items a receipt produced. Zero counts
// as a parse failure.
func (m *Metrics) RecordExtraction(strategy string, items int) {
	if items == 0 {
		m.receiptFailures.WithLabelValues(strategy).Inc()
		return
	}
	m.receiptItems.WithLabelValues(strategy).Add(float64(items))
}

// RecordSettlement records the size of a computed settlement.
func (m *Metrics) RecordSettlement(transfers int) {
	m.transfers.Observe(float64(transfers))
}

// SessionStarted increments the active session gauge.
func (m *Metrics) SessionStarted() { m.activeSessions.Inc() }

// SessionEnded decrements the active session gauge.
func (m *Metrics) SessionEnded() { m.activeSessions.Dec() }
