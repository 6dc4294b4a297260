package server

import (
	"github.com/prometheus/client_golang/prometheus"
)

// DefaultBuckets are latency buckets in seconds.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

type metrics struct {
	requests       *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
	renders        *prometheus.CounterVec
	renderLatency  *prometheus.HistogramVec
}

func newMetrics(reg prometheus.Registerer) (*metrics, error) {
	m := &metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "intakeform",
			Name:      "http_requests_total",
			Help:      "HTTP requests served, by status code and method.",
		}, []string{"code", "method"}),
		requestLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "intakeform",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   DefaultBuckets,
		}, []string{"code", "method"}),
		renders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "intakeform",
			Name:      "renders_total",
			Help:      "Form renderings, by renderer and outcome.",
		}, []string{"renderer", "outcome"}),
		renderLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "intakeform",
			Name:      "render_duration_seconds",
			Help:      "Time spent rendering a form.",
			Buckets:   DefaultBuckets,
		}, []string{"renderer"}),
	}

	for _, c := range []prometheus.Collector{m.requests, m.requestLatency, m.renders, m.renderLatency} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}
