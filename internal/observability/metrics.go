// Package observability holds the Prometheus collectors of the server.
package observability

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector holds all metrics on a private registry.
type Collector struct {
	registry *prometheus.Registry

	Requests        *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec

	StoreOperations *prometheus.CounterVec
	StoreDuration   *prometheus.HistogramVec

	MomentsCreated   prometheus.Counter
	MalformedReads   prometheus.Counter
	CountdownStreams prometheus.Gauge
}

// NewCollector creates and registers every metric under namespace.
func NewCollector(namespace string) *Collector {
	reg := prometheus.NewRegistry()

	c := &Collector{
		registry: reg,
		Requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "requests_total",
			Help:      "Handled requests by transport, method and result code.",
		}, []string{"transport", "method", "code"}),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "request_duration_seconds",
			Help:      "Request handling time.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"transport", "method"}),
		StoreOperations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "store_operations_total",
			Help:      "Key-value store operations by operation and status.",
		}, []string{"operation", "status"}),
		StoreDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "store_operation_duration_seconds",
			Help:      "Key-value store operation time.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation"}),
		MomentsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "moments_created_total",
			Help:      "Moments appended to a collection.",
		}),
		MalformedReads: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "store_malformed_reads_total",
			Help:      "Reads that found persisted text which does not parse.",
		}),
		CountdownStreams: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "countdown_streams_active",
			Help:      "Open countdown streams.",
		}),
	}

	reg.MustRegister(
		c.Requests,
		c.RequestDuration,
		c.StoreOperations,
		c.StoreDuration,
		c.MomentsCreated,
		c.MalformedReads,
		c.CountdownStreams,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return c
}

// ObserveRequest records one handled request.
func (c *Collector) ObserveRequest(transport, method, code string, d time.Duration) {
	c.Requests.WithLabelValues(transport, method, code).Inc()
	c.RequestDuration.WithLabelValues(transport, method).Observe(d.Seconds())
}

// Registry returns the registry backing this collector.
func (c *Collector) Registry() *prometheus.Registry { return c.registry }

// Handler serves the registry in the Prometheus exposition format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{Registry: c.registry})
}
