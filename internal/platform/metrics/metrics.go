// SPDX-License-Identifier: MIT

// Package metrics holds the service's Prometheus collectors.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds Prometheus counters, gauges and histograms for the visualizer.
type Metrics struct {
	registry       *prometheus.Registry
	requestsTotal  *prometheus.CounterVec
	errorsTotal    *prometheus.CounterVec
	latency        *prometheus.HistogramVec
	runsTotal      *prometheus.CounterVec
	invalidTotal   *prometheus.CounterVec
	commandsTotal  *prometheus.CounterVec
	framesPerRun   prometheus.Histogram
	activeSessions prometheus.Gauge
}

// New creates and registers the collectors on a private registry.
func New() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "algoviz_requests_total",
			Help: "HTTP requests served, by method and route pattern",
		}, []string{"method", "route"}),
		errorsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "algoviz_errors_total",
			Help: "HTTP responses with status >= 400, by route pattern and status class",
		}, []string{"route", "class"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "algoviz_request_duration_seconds",
			Help:    "HTTP request latency, by route pattern",
			Buckets: prometheus.DefBuckets,
		}, []string{"route"}),
		runsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "algoviz_runs_total",
			Help: "Frame sequences generated, by algorithm",
		}, []string{"algorithm"}),
		invalidTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "algoviz_invalid_inputs_total",
			Help: "Generation requests rejected as invalid input, by algorithm",
		}, []string{"algorithm"}),
		commandsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "algoviz_transport_commands_total",
			Help: "Playback transport commands applied, by command",
		}, []string{"command"}),
		framesPerRun: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "algoviz_frames_per_run",
			Help:    "Number of frames in each generated sequence",
			Buckets: prometheus.ExponentialBuckets(2, 2, 10),
		}),
		activeSessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "algoviz_active_sessions",
			Help: "Number of live playback sessions",
		}),
	}

	registry.MustRegister(
		m.requestsTotal,
		m.errorsTotal,
		m.latency,
		m.runsTotal,
		m.invalidTotal,
		m.commandsTotal,
		m.framesPerRun,
		m.activeSessions,
	)

	return m
}

// ObserveRequest records one served request. Statuses >= 400 also count
// as errors under their class ("4xx", "5xx").
func (m *Metrics) ObserveRequest(method, route string, status int, d time.Duration) {
	m.requestsTotal.WithLabelValues(method, route).Inc()
	m.latency.WithLabelValues(route).Observe(d.Seconds())
	if status >= http.StatusBadRequest {
		m.errorsTotal.WithLabelValues(route, strconv.Itoa(status/100)+"xx").Inc()
	}
}

// ObserveRun records one generated sequence of n frames.
func (m *Metrics) ObserveRun(algorithm string, n int) {
	m.runsTotal.WithLabelValues(algorithm).Inc()
	m.framesPerRun.Observe(float64(n))
}

// IncInvalidInput counts a rejected generation request.
func (m *Metrics) IncInvalidInput(algorithm string) {
	m.invalidTotal.WithLabelValues(algorithm).Inc()
}

// IncCommand counts one transport command.
func (m *Metrics) IncCommand(command string) {
	m.commandsTotal.WithLabelValues(command).Inc()
}

// SetActiveSessions sets the active sessions gauge.
func (m *Metrics) SetActiveSessions(n int) {
	m.activeSessions.Set(float64(n))
}

// Handler returns an http.Handler that serves Prometheus metrics.
// updateGauges is called before each scrape to refresh gauge values.
func (m *Metrics) Handler(updateGauges func()) http.Handler {
	inner := promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if updateGauges != nil {
			updateGauges()
		}
		inner.ServeHTTP(w, r)
	})
}
