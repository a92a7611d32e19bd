// Copyright 2025 NetApp, Inc. All Rights Reserved.

package logging

import (
	"net/http"
	"net/http/httputil"
	"regexp"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	log "github.com/sirupsen/logrus"
)

const (
	RequestTargetONTAP     = "ontap"
	RequestTargetCloudSync = "cloudsync"
	RequestTargetS3        = "s3"
	RequestTargetUnknown   = "unknown"
)

var (
	outgoingRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "netapp_dataops",
			Name:      "outgoing_api_request_duration_seconds",
			Help:      "Duration of requests issued to storage control-plane APIs",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"target", "method", "status"},
	)

	basicAuthorization  = regexp.MustCompile(`Authorization: Basic [A-Za-z0-9+/=]+`)
	bearerAuthorization = regexp.MustCompile(`Authorization: Bearer [A-Za-z0-9._\-]+`)
)

// RedactSecrets masks authorization headers in a dumped HTTP request.
func RedactSecrets(dump []byte) []byte {
	dump = basicAuthorization.ReplaceAll(dump, []byte("Authorization: Basic <REDACTED>"))
	return bearerAuthorization.ReplaceAll(dump, []byte("Authorization: Bearer <REDACTED>"))
}

// MetricsTransport is an HTTP transport that records request metrics and, at trace level,
// logs each outgoing request with its credentials redacted.
type MetricsTransport struct {
	base   http.RoundTripper
	target string
}

// NewMetricsTransport wraps base; the target labels the control plane being called.
func NewMetricsTransport(base http.RoundTripper, target string) http.RoundTripper {
	if base == nil {
		base = http.DefaultTransport
	}
	if target == "" {
		target = RequestTargetUnknown
	}
	return &MetricsTransport{base: base, target: target}
}

func (m *MetricsTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if log.IsLevelEnabled(log.TraceLevel) {
		if dump, err := httputil.DumpRequestOut(req, false); err == nil {
			Logc(req.Context()).WithField("target", m.target).Trace(string(RedactSecrets(dump)))
		}
	}

	start := time.Now()
	res, err := m.base.RoundTrip(req)

	status := "error"
	if err == nil && res != nil {
		status = strconv.Itoa(res.StatusCode)
	}
	outgoingRequestDuration.WithLabelValues(m.target, req.Method, status).Observe(time.Since(start).Seconds())

	return res, err
}
