// Copyright 2025 NetApp, Inc. All Rights Reserved.

package poll

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var checks = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "netapp_dataops",
		Subsystem: "poll",
		Name:      "checks_total",
		Help:      "The number of readiness checks issued, by resource",
	},
	[]string{"resource"},
)
