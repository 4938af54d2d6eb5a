package server

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

type metrics struct {
	requests    *prometheus.CounterVec
	duration    *prometheus.HistogramVec
	assessments *prometheus.CounterVec
	throttled   prometheus.Counter
}

func newMetrics(reg prometheus.Registerer) *metrics {
	m := &metrics{
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "careerfit",
				Subsystem: "http",
				Name:      "requests_total",
				Help:      "HTTP requests by route and status code.",
			},
			[]string{"route", "code"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "careerfit",
				Subsystem: "http",
				Name:      "request_duration_seconds",
				Help:      "HTTP request latency by route.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"route"},
		),
		assessments: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "careerfit",
				Name:      "assessments_total",
				Help:      "Computed assessments by selected career.",
			},
			[]string{"career", "fallback"},
		),
		throttled: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: "careerfit",
				Subsystem: "http",
				Name:      "throttled_total",
				Help:      "Requests rejected by the per-client rate limiter.",
			},
		),
	}

	reg.MustRegister(m.requests, m.duration, m.assessments, m.throttled)
	return m
}

func (m *metrics) observe(route string, code int, elapsed time.Duration) {
	m.requests.WithLabelValues(route, strconv.Itoa(code)).Inc()
	m.duration.WithLabelValues(route).Observe(elapsed.Seconds())
}
