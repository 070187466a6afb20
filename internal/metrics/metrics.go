package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP server metrics.
var (
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "uroman_http_requests_total",
		Help: "Total HTTP requests by route, method, and status code",
	}, []string{"route", "method", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "uroman_http_request_duration_seconds",
		Help:    "HTTP request duration in seconds",
		Buckets: []float64{0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
	}, []string{"route", "method"})

	RateLimitHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "uroman_rate_limit_hits_total",
		Help: "Total rate limit rejections",
	})
)

// Romanization metrics.
var (
	RomanizeTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "uroman_romanize_total",
		Help: "Romanization calls by output format and result",
	}, []string{"format", "result"})

	RomanizeDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "uroman_romanize_duration_seconds",
		Help:    "Romanization call duration in seconds",
		Buckets: []float64{0.0001, 0.00025, 0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1},
	})

	RomanizeInputRunes = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "uroman_romanize_input_runes",
		Help:    "Input length of romanization requests in codepoints",
		Buckets: prometheus.ExponentialBuckets(1, 4, 8),
	})

	RomanizeFallbackEdges = promauto.NewCounter(prometheus.CounterOpts{
		Name: "uroman_romanize_fallback_edges_total",
		Help: "Unmatched fallback edges on winning paths of edges-format responses",
	})
)
