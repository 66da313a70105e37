// Package metrics exposes Prometheus instrumentation for the bot.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

var (
	// CommandsTotal counts handled slash command invocations by subcommand
	// and outcome ("ok" or an error kind).
	CommandsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "demacia_commands_total",
		Help: "Slash command invocations handled, by subcommand and outcome.",
	}, []string{"command", "status"})

	// RiotRequestsTotal counts outbound Riot API calls by endpoint and
	// HTTP status (or "network_error").
	RiotRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "demacia_riot_requests_total",
		Help: "Outbound Riot API requests, by endpoint and status.",
	}, []string{"endpoint", "status"})

	// RiotRequestDuration observes outbound Riot API call latency.
	RiotRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "demacia_riot_request_seconds",
		Help:    "Riot API request latency in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"endpoint"})
)

// Serve starts a /metrics listener on addr in a background goroutine.
func Serve(addr string, logger zerolog.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info().Str("addr", addr).Msg("metrics listener started")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error().Err(err).Msg("metrics listener stopped")
		}
	}()
}
