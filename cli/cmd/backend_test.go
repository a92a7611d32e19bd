// Copyright 2025 NetApp, Inc. All Rights Reserved.

package cmd

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/netapp/dataops/config"
	"github.com/netapp/dataops/storage"
	"github.com/netapp/dataops/utils/errors"
)

const testConfigPath = "/home/user/.netapp_dataops/config.json"

func writeTestConfig(t *testing.T, fs afero.Fs, extra map[string]interface{}) {
	t.Helper()
	values := map[string]interface{}{
		"connectionType":         "ONTAP",
		"hostname":               "10.0.0.1",
		"svm":                    "svm0",
		"dataLif":                "10.0.0.2",
		"defaultVolumeType":      "flexvol",
		"defaultExportPolicy":    "default",
		"defaultSnapshotPolicy":  "none",
		"defaultUnixUID":         "0",
		"defaultUnixGID":         "0",
		"defaultUnixPermissions": "0777",
		"defaultAggregate":       "aggr1",
		"username":               "admin",
		"password":               base64.StdEncoding.EncodeToString([]byte("secret")),
		"verifySSLCert":          false,
	}
	for k, v := range extra {
		values[k] = v
	}
	data, err := json.Marshal(values)
	require.NoError(t, err)
	require.NoError(t, afero.WriteFile(fs, testConfigPath, data, 0o600))
}

// withBackendFlags sets the global flags newToolkit reads and restores them afterwards.
func withBackendFlags(t *testing.T, backend, configPath string) {
	t.Helper()
	originalFs, originalBackend, originalPath := appFs, BackendName, ConfigPath
	appFs = afero.NewMemMapFs()
	BackendName, ConfigPath = backend, configPath
	t.Cleanup(func() {
		appFs, BackendName, ConfigPath = originalFs, originalBackend, originalPath
	})
}

func TestNewToolkit_MissingConfig(t *testing.T) {
	for _, backend := range []config.BackendType{config.BackendONTAP, config.BackendGCNV} {
		t.Run(string(backend), func(t *testing.T) {
			withBackendFlags(t, string(backend), testConfigPath)

			_, err := newToolkit(context.Background(), scopeStorage)
			assert.True(t, errors.IsInvalidConfigError(err), "got %v", err)
		})
	}
}

func TestNewToolkit_XCPNeedsNoConfig(t *testing.T) {
	withBackendFlags(t, string(config.BackendONTAP), testConfigPath)

	toolkit, err := newToolkit(context.Background(), scopeXCP)
	require.NoError(t, err)
	assert.Nil(t, toolkit.Backend())

	_, err = toolkit.ListVolumes(context.Background(), storage.VolumeFilter{})
	assert.True(t, errors.IsInvalidConfigError(err), "storage calls need a backend")
}

func TestNewToolkit_CloudSync(t *testing.T) {
	withBackendFlags(t, string(config.BackendKubernetes), testConfigPath)

	_, err := newToolkit(context.Background(), scopeCloudSync)
	assert.True(t, errors.IsInvalidConfigError(err), "a config file is required")

	writeTestConfig(t, appFs, nil)
	_, err = newToolkit(context.Background(), scopeCloudSync)
	assert.True(t, errors.IsInvalidConfigError(err), "a refresh token is required")

	writeTestConfig(t, appFs, map[string]interface{}{
		"cloudCentralRefreshToken": base64.StdEncoding.EncodeToString([]byte("refresh")),
	})
	toolkit, err := newToolkit(context.Background(), scopeCloudSync)
	require.NoError(t, err)
	assert.Nil(t, toolkit.Backend())
}

func TestNewStorageBackend_Unknown(t *testing.T) {
	_, err := newStorageBackend(context.Background(), config.BackendType("azure"), nil)
	assert.ErrorContains(t, err, "unknown backend")
}
