package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector holds all Prometheus metrics for the application
type Collector struct {
	registry *prometheus.Registry

	// HTTP metrics
	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec

	// Business metrics
	ProjectsCreated prometheus.Counter
	NotesCreated    prometheus.Counter
	NotesScratched  prometheus.Counter
	ThoughtsCreated prometheus.Counter

	// Event channel metrics
	EventsPublished *prometheus.CounterVec
	EventQueueDepth prometheus.Gauge
}

// NewCollector creates a metrics collector with the given namespace. Each
// collector registers into its own private registry, so independent
// collectors never collide.
func NewCollector(namespace string) *Collector {
	registry := prometheus.NewRegistry()

	httpRequests := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	httpDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	projectsCreated := prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "projects_created_total",
			Help:      "Total number of projects created",
		},
	)

	notesCreated := prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notes_created_total",
			Help:      "Total number of notes created",
		},
	)

	notesScratched := prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notes_scratched_total",
			Help:      "Total number of notes scratched",
		},
	)

	thoughtsCreated := prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "thoughts_created_total",
			Help:      "Total number of thoughts created",
		},
	)

	eventsPublished := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "model_events_published_total",
			Help:      "Total number of model events published to the channel",
		},
		[]string{"model", "kind"},
	)

	eventQueueDepth := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "event_queue_depth",
			Help:      "Number of model events waiting for the dispatcher",
		},
	)

	registry.MustRegister(
		httpRequests,
		httpDuration,
		projectsCreated,
		notesCreated,
		notesScratched,
		thoughtsCreated,
		eventsPublished,
		eventQueueDepth,
	)

	return &Collector{
		registry:        registry,
		HTTPRequests:    httpRequests,
		HTTPDuration:    httpDuration,
		ProjectsCreated: projectsCreated,
		NotesCreated:    notesCreated,
		NotesScratched:  notesScratched,
		ThoughtsCreated: thoughtsCreated,
		EventsPublished: eventsPublished,
		EventQueueDepth: eventQueueDepth,
	}
}

// Handler returns the HTTP handler exposing this collector's registry
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
