// Package web wires the romanization API: routes, middleware, health.
package web

import (
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jusunglee/uroman"
	"github.com/jusunglee/uroman/internal/web/handlers"
	"github.com/jusunglee/uroman/internal/web/middleware"
)

type Router struct {
	engine *uroman.Uroman
	log    *slog.Logger
}

func NewRouter(engine *uroman.Uroman, log *slog.Logger) *Router {
	return &Router{engine: engine, log: log}
}

func (r *Router) Handler() http.Handler {
	mux := http.NewServeMux()

	romanizeHandler := handlers.NewRomanizeHandler(r.engine, r.log)
	rateLimiter := middleware.NewRateLimiter(120, 60)

	mux.Handle("POST /api/v1/romanize",
		middleware.Chain(
			http.HandlerFunc(romanizeHandler.Create),
			middleware.PrometheusMetrics(),
			middleware.RequestLogger(r.log),
			middleware.RateLimit(rateLimiter),
		),
	)

	mux.Handle("GET /healthz", http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	}))

	mux.Handle("GET /metrics", promhttp.Handler())

	return middleware.CORS(mux)
}
