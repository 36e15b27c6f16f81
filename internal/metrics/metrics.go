// Package metrics exposes tracker counters in Prometheus format.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Collector owns its registry so tests can build as many as they like.
// All recording methods are safe on a nil *Collector.
type Collector struct {
	registry *prometheus.Registry

	predictions     prometheus.Counter
	periodsSaved    *prometheus.CounterVec
	symptomToggles  prometheus.Counter
	storageFailures *prometheus.CounterVec
	httpRequests    *prometheus.CounterVec
	skippedRecords  prometheus.Counter
}

func NewCollector(namespace string) *Collector {
	registry := prometheus.NewRegistry()

	collector := &Collector{
		registry: registry,
		predictions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "predictions_total",
			Help:      "Number of cycle predictions computed.",
		}),
		periodsSaved: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "periods_saved_total",
			Help:      "Number of logged periods by merge outcome.",
		}, []string{"outcome"}),
		symptomToggles: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "symptom_toggles_total",
			Help:      "Number of symptom toggles.",
		}),
		storageFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "storage_failures_total",
			Help:      "Persisted state writes that failed and fell back to memory.",
		}, []string{"key"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route and status.",
		}, []string{"method", "route", "status"}),
		skippedRecords: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "skipped_cycle_records_total",
			Help:      "Stored cycle records ignored because their dates did not parse.",
		}),
	}

	registry.MustRegister(
		collector.predictions,
		collector.periodsSaved,
		collector.symptomToggles,
		collector.storageFailures,
		collector.httpRequests,
		collector.skippedRecords,
		collectors.NewGoCollector(),
	)
	return collector
}

func (collector *Collector) Registry() *prometheus.Registry {
	if collector == nil {
		return nil
	}
	return collector.registry
}

func (collector *Collector) PredictionComputed() {
	if collector == nil {
		return
	}
	collector.predictions.Inc()
}

func (collector *Collector) PeriodSaved(replaced bool) {
	if collector == nil {
		return
	}
	outcome := "appended"
	if replaced {
		outcome = "replaced"
	}
	collector.periodsSaved.WithLabelValues(outcome).Inc()
}

func (collector *Collector) SymptomToggled() {
	if collector == nil {
		return
	}
	collector.symptomToggles.Inc()
}

func (collector *Collector) StorageFailed(key string) {
	if collector == nil {
		return
	}
	collector.storageFailures.WithLabelValues(key).Inc()
}

func (collector *Collector) CycleRecordsSkipped(count int) {
	if collector == nil || count <= 0 {
		return
	}
	collector.skippedRecords.Add(float64(count))
}

func (collector *Collector) HTTPRequest(method string, route string, status string) {
	if collector == nil {
		return
	}
	collector.httpRequests.WithLabelValues(method, route, status).Inc()
}
