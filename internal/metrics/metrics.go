// Copyright (c) twofivesha (dev@twofivesha.dev)
// SPDX-License-Identifier: BUSL-1.1

// Package metrics holds the service's Prometheus collectors.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// CommandsTotal counts processed commands by parsed kind.
	CommandsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "souschef_commands_total",
			Help: "Total commands processed, by command kind.",
		},
		[]string{"kind"},
	)

	// CollaboratorFailures counts failed language-model calls.
	CollaboratorFailures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "souschef_collaborator_failures_total",
			Help: "Total failed collaborator calls.",
		},
	)

	// ActiveSessions tracks the number of live sessions.
	ActiveSessions = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "souschef_active_sessions",
			Help: "Number of active cooking sessions.",
		},
	)
)

// Register registers all collectors with the given registerer.
func Register(r prometheus.Registerer) {
	r.MustRegister(CommandsTotal, CollaboratorFailures, ActiveSessions)
}
