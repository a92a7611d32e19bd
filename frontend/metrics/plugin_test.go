// Copyright 2025 NetApp, Inc. All Rights Reserved.

package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/netapp/dataops/logging"
)

func TestMain(m *testing.M) {
	// Disable any standard log output
	InitLogOutput(io.Discard)
	os.Exit(m.Run())
}

func TestNewRouter(t *testing.T) {
	router := NewRouter()

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "go_goroutines")

	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "ok", recorder.Body.String())

	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/metrics", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, recorder.Code)
}

func TestServerLifecycle(t *testing.T) {
	server := NewMetricsServer("127.0.0.1:0")
	assert.Equal(t, "metrics", server.GetName())
	assert.NotEmpty(t, server.Version())

	require.NoError(t, server.Activate())
	assert.NotEqual(t, "127.0.0.1:0", server.Address())

	response, err := http.Get("http://" + server.Address() + "/healthz")
	require.NoError(t, err)
	_ = response.Body.Close()
	assert.Equal(t, http.StatusOK, response.StatusCode)

	assert.NoError(t, server.Deactivate())
}

func TestActivate_BadAddress(t *testing.T) {
	server := NewMetricsServer("256.0.0.1:bad")
	assert.Error(t, server.Activate())
}
