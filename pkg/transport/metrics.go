package transport

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/chemspider/chemspider-sdk-go/pkg/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the request instrumentation of a Transport.
type Metrics struct {
	// Requests counts requests by method and outcome ("ok" or "error").
	Requests *prometheus.CounterVec
	// Duration observes request latency in seconds by method.
	Duration *prometheus.HistogramVec
}

// NewMetrics creates the metrics and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Requests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "chemspider_requests_total",
			Help: "Total number of requests sent to remote operations",
		}, []string{"method", "outcome"}),
		Duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "chemspider_request_duration_seconds",
			Help:    "Time to complete a request to a remote operation (in seconds)",
			Buckets: prometheus.DefBuckets,
		}, []string{"method"}),
	}
}

// Instrument wraps t so every call is recorded in m.
func Instrument(t Transport, m *Metrics) Transport {
	return &instrumented{next: t, metrics: m}
}

type instrumented struct {
	next    Transport
	metrics *Metrics
}

func (i *instrumented) Fetch(ctx context.Context, u *url.URL) ([]byte, error) {
	start := time.Now()
	body, err := i.next.Fetch(ctx, u)
	i.observe(http.MethodGet, start, err)
	return body, err
}

func (i *instrumented) Submit(ctx context.Context, u *url.URL, form model.Params) ([]byte, error) {
	start := time.Now()
	body, err := i.next.Submit(ctx, u, form)
	i.observe(http.MethodPost, start, err)
	return body, err
}

func (i *instrumented) observe(method string, start time.Time, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	i.metrics.Requests.WithLabelValues(method, outcome).Inc()
	i.metrics.Duration.WithLabelValues(method).Observe(time.Since(start).Seconds())
}
