// Copyright 2025 NetApp, Inc. All Rights Reserved.

package metrics

import (
	"context"
	"errors"
	"net"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/netapp/dataops/config"
	"github.com/netapp/dataops/frontend"
	. "github.com/netapp/dataops/logging"
)

var _ frontend.Plugin = (*Server)(nil)

// Server exposes the toolkit's Prometheus metrics over plain HTTP.
type Server struct {
	server *http.Server
}

// NewMetricsServer see also: https://godoc.org/github.com/prometheus/client_golang/prometheus/promauto
func NewMetricsServer(address string) *Server {
	ctx := GenerateRequestContext(context.Background(), "", ContextSourceInternal)

	metricsServer := &Server{
		server: &http.Server{
			Addr:         address,
			Handler:      NewRouter(),
			ReadTimeout:  config.HTTPTimeout,
			WriteTimeout: config.HTTPTimeout,
		},
	}

	Logc(ctx).WithField("address", metricsServer.server.Addr).Info("Initializing metrics frontend.")

	return metricsServer
}

// NewRouter serves /metrics and a liveness check at /healthz.
func NewRouter() *mux.Router {
	router := mux.NewRouter().StrictSlash(true)
	router.Methods(http.MethodGet).Path("/metrics").Name("Metrics").Handler(promhttp.Handler())
	router.Methods(http.MethodGet).Path("/healthz").Name("Healthz").HandlerFunc(
		func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ok"))
		})
	return router
}

// Activate starts listening before returning so that a bad address is reported to the
// caller.
func (s *Server) Activate() error {
	ctx := GenerateRequestContext(context.Background(), "", ContextSourceInternal)

	listener, err := net.Listen("tcp", s.server.Addr)
	if err != nil {
		return err
	}
	s.server.Addr = listener.Addr().String()

	go func() {
		Logc(ctx).WithField("address", s.server.Addr).Info("Activating metrics frontend.")

		err := s.server.Serve(listener)
		if errors.Is(err, http.ErrServerClosed) {
			Logc(ctx).WithField("address", s.server.Addr).Info("Metrics frontend server has closed.")
		} else if err != nil {
			Logc(ctx).WithError(err).Error("Metrics frontend stopped.")
		}
	}()
	return nil
}

func (s *Server) Deactivate() error {
	ctx := GenerateRequestContext(context.Background(), "", ContextSourceInternal)

	Logc(ctx).WithField("address", s.server.Addr).Info("Deactivating metrics frontend.")
	ctx, cancel := context.WithTimeout(ctx, config.HTTPTimeout)
	defer cancel()
	return s.server.Shutdown(ctx)
}

// Address is the address the server listens on once activated.
func (s *Server) Address() string {
	return s.server.Addr
}

func (s *Server) GetName() string {
	return "metrics"
}

func (s *Server) Version() string {
	return config.ToolkitVersion
}
