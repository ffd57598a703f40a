// Package metrics defines the prometheus collectors for the activity registry.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// SignupsTotal tracks successful signups by activity
	SignupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "activity_signups_total",
			Help: "Total successful signups by activity",
		},
		[]string{"activity"},
	)

	// UnregistrationsTotal tracks successful unregistrations by activity
	UnregistrationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "activity_unregistrations_total",
			Help: "Total successful unregistrations by activity",
		},
		[]string{"activity"},
	)

	// RegistryActivities tracks the number of activities in the registry
	RegistryActivities = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "registry_activities",
			Help: "Number of activities currently in the registry",
		},
	)
)
