// Copyright 2025 NetApp, Inc. All Rights Reserved.

package core

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/netapp/dataops/config"
)

var (
	buildInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "netapp_dataops",
			Name:      "build_info",
			Help:      "Toolkit build and release information",
		},
		[]string{"version", "backend_type"},
	)
	operationDurationInMsSummary = promauto.NewSummaryVec(
		prometheus.SummaryOpts{
			Namespace:  "netapp_dataops",
			Name:       "operation_duration_milliseconds",
			Help:       "The duration of toolkit operations",
			Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.99: 0.001},
		},
		[]string{"operation", "success"},
	)
	snapshotsPrunedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "netapp_dataops",
			Name:      "snapshots_pruned_total",
			Help:      "The number of snapshots deleted by retention pruning",
		},
		[]string{"success"},
	)
	transfersTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "netapp_dataops",
			Name:      "replication_transfers_total",
			Help:      "The number of replication transfers triggered, by kind",
		},
		[]string{"kind"},
	)
)

func recordBuildInfo(backendType string) {
	buildInfo.WithLabelValues(config.ToolkitVersion, backendType).Set(1)
}
