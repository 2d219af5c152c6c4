package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements domain.repository.Metrics using Prometheus.
type Recorder struct {
	documentsAnalyzed *prometheus.CounterVec
	recordsSent       *prometheus.CounterVec
	errorsTotal       *prometheus.CounterVec
	toneIndex         *prometheus.GaugeVec
	backtestAccuracy  prometheus.Gauge
	latency           *prometheus.HistogramVec
}

// New creates a new Prometheus metrics recorder.
func New() *Recorder {
	return &Recorder{
		documentsAnalyzed: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "policytone_documents_analyzed_total",
				Help: "Total number of documents scored for policy tone",
			},
			[]string{"source"},
		),
		recordsSent: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "policytone_records_sent_total",
				Help: "Total number of tone records delivered to a backend",
			},
			[]string{"backend"},
		),
		errorsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "policytone_errors_total",
				Help: "Total number of errors encountered",
			},
			[]string{"type"},
		),
		toneIndex: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "policytone_tone_index",
				Help: "Last computed tone index for a document",
			},
			[]string{"document"},
		),
		backtestAccuracy: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "policytone_backtest_accuracy",
				Help: "Overall accuracy of the most recent backtest run",
			},
		),
		latency: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "policytone_operation_duration_seconds",
				Help:    "Duration of operations in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
	}
}

// RecordDocumentAnalyzed records a scored document.
func (r *Recorder) RecordDocumentAnalyzed(source string) {
	r.documentsAnalyzed.WithLabelValues(source).Inc()
}

// RecordRecordSent records a tone record delivered to a backend.
func (r *Recorder) RecordRecordSent(backend string) {
	r.recordsSent.WithLabelValues(backend).Inc()
}

// RecordError records an error occurrence.
func (r *Recorder) RecordError(kind string) {
	r.errorsTotal.WithLabelValues(kind).Inc()
}

// RecordToneIndex records the tone index computed for a document.
func (r *Recorder) RecordToneIndex(documentID string, tone float64) {
	r.toneIndex.WithLabelValues(documentID).Set(tone)
}

// RecordBacktestAccuracy records the overall accuracy of a backtest run.
func (r *Recorder) RecordBacktestAccuracy(accuracy float64) {
	r.backtestAccuracy.Set(accuracy)
}

// RecordLatency records operation latency in seconds.
func (r *Recorder) RecordLatency(op string, seconds float64) {
	r.latency.WithLabelValues(op).Observe(seconds)
}
