package service

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	submissionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "submissions_total",
			Help: "Total number of submissions by result",
		},
		[]string{"result"},
	)
	oracleFallbacksTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "oracle_fallbacks_total",
			Help: "Submissions dated by the local clock because the oracle failed",
		},
	)
	streakLength = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "streak_length",
			Help: "Current streak length after the last submission",
		},
	)
)

// InitMetrics registers the domain metrics. Call this from main.go
func InitMetrics() {
	prometheus.MustRegister(submissionsTotal)
	prometheus.MustRegister(oracleFallbacksTotal)
	prometheus.MustRegister(streakLength)
}
