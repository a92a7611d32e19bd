// Copyright 2025 NetApp, Inc. All Rights Reserved.

package config

import (
	"encoding/base64"
	"encoding/json"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/netapp/dataops/utils/errors"
)

const testConfigPath = "/home/user/.netapp_dataops/config.json"

func validConfigMap() map[string]interface{} {
	return map[string]interface{}{
		"connectionType":         "ONTAP",
		"hostname":               "10.0.0.1",
		"svm":                    "svm0",
		"dataLif":                "10.0.0.2",
		"defaultVolumeType":      "flexvol",
		"defaultExportPolicy":    "default",
		"defaultSnapshotPolicy":  "none",
		"defaultUnixUID":         "0",
		"defaultUnixGID":         0,
		"defaultUnixPermissions": "0777",
		"defaultAggregate":       "aggr1, aggr2",
		"username":               "admin",
		"password":               base64.StdEncoding.EncodeToString([]byte("secret")),
		"verifySSLCert":          false,
	}
}

func writeConfig(t *testing.T, fs afero.Fs, path string, values map[string]interface{}) {
	t.Helper()
	data, err := json.Marshal(values)
	require.NoError(t, err)
	require.NoError(t, afero.WriteFile(fs, path, data, 0o600))
}

func TestLoad(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeConfig(t, fs, testConfigPath, validConfigMap())

	cfg, err := Load(fs, testConfigPath)
	require.NoError(t, err)

	assert.Equal(t, ConnectionTypeONTAP, cfg.ConnectionType)
	assert.Equal(t, "secret", cfg.Password, "password should be decoded")
	assert.Equal(t, StringValue("0"), cfg.DefaultUnixUID)
	assert.Equal(t, StringValue("0"), cfg.DefaultUnixGID, "numeric GID should be accepted")
	assert.Equal(t, []string{"aggr1", "aggr2"}, cfg.Aggregates())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(afero.NewMemMapFs(), testConfigPath)
	assert.True(t, errors.IsInvalidConfigError(err))
}

func TestLoad_MissingKeys(t *testing.T) {
	fs := afero.NewMemMapFs()
	values := validConfigMap()
	delete(values, "svm")
	delete(values, "dataLif")
	writeConfig(t, fs, testConfigPath, values)

	_, err := Load(fs, testConfigPath)
	require.Error(t, err)
	assert.True(t, errors.IsInvalidConfigError(err))
	assert.Contains(t, err.Error(), "dataLif, svm")
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value interface{}
		check func(error) bool
	}{
		{"unsupported connection type", "connectionType", "ZAPI", errors.IsConnectionTypeError},
		{"bad volume type", "defaultVolumeType", "qtree", errors.IsInvalidConfigError},
		{"bad uid", "defaultUnixUID", "root", errors.IsInvalidConfigError},
		{"bad password encoding", "password", "not base64!", errors.IsInvalidConfigError},
		{"empty hostname", "hostname", " ", errors.IsInvalidConfigError},
		{"wrong type", "verifySSLCert", "yes", errors.IsInvalidConfigError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			values := validConfigMap()
			values[tc.key] = tc.value
			writeConfig(t, fs, testConfigPath, values)

			_, err := Load(fs, testConfigPath)
			assert.True(t, tc.check(err), "unexpected error: %v", err)
		})
	}
}

func TestLoad_NotJSON(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, testConfigPath, []byte("hostname: x"), 0o600))

	_, err := Load(fs, testConfigPath)
	assert.True(t, errors.IsInvalidConfigError(err))
}

func TestDefaultConfigPath(t *testing.T) {
	fs := afero.NewMemMapFs()
	assert.Equal(t, "/home/user/.netapp_dataops/config.json", DefaultConfigPath(fs, "/home/user"))

	writeConfig(t, fs, "/home/user/.ntap_dsutil/config.json", validConfigMap())
	assert.Equal(t, "/home/user/.ntap_dsutil/config.json", DefaultConfigPath(fs, "/home/user"),
		"legacy path should be used when it is the only one present")

	writeConfig(t, fs, testConfigPath, validConfigMap())
	assert.Equal(t, testConfigPath, DefaultConfigPath(fs, "/home/user"))
}

func TestIsValidBackend(t *testing.T) {
	assert.True(t, IsValidBackend(BackendONTAP))
	assert.True(t, IsValidBackend(BackendKubernetes))
	assert.True(t, IsValidBackend(BackendGCNV))
	assert.False(t, IsValidBackend("azure"))
}
