// Copyright 2025 NetApp, Inc. All Rights Reserved.

package storagedrivers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/netapp/dataops/config"
	"github.com/netapp/dataops/storage"
	"github.com/netapp/dataops/utils/errors"
)

func TestVolumeDefaults(t *testing.T) {
	cfg := &config.Config{
		DefaultVolumeType:      config.VolumeTypeFlexGroup,
		DefaultExportPolicy:    "default",
		DefaultSnapshotPolicy:  "none",
		DefaultUnixUID:         "1000",
		DefaultUnixGID:         "2000",
		DefaultUnixPermissions: "0755",
		DefaultAggregate:       "aggr1,aggr2",
	}

	defaults := VolumeDefaults(cfg)
	assert.Equal(t, config.VolumeTypeFlexGroup, defaults.Type)
	assert.Equal(t, []string{"aggr1", "aggr2"}, defaults.Aggregates)
	assert.Equal(t, "1000", defaults.UnixUID)
	assert.Equal(t, storage.VolumeSpec{}, VolumeDefaults(nil))
}

func TestApplyVolumeDefaults(t *testing.T) {
	defaults := storage.VolumeSpec{
		Type:            "flexvol",
		Aggregates:      []string{"aggr1"},
		ExportPolicy:    "default",
		UnixPermissions: "0777",
	}

	spec := storage.VolumeSpec{Name: "v1", ExportPolicy: "open"}
	ApplyVolumeDefaults(context.Background(), &spec, defaults)

	assert.Equal(t, "flexvol", spec.Type)
	assert.Equal(t, "open", spec.ExportPolicy, "set values must be kept")
	assert.Equal(t, "0777", spec.UnixPermissions)
	assert.Equal(t, []string{"aggr1"}, spec.Aggregates)

	spec.Aggregates[0] = "changed"
	assert.Equal(t, "aggr1", defaults.Aggregates[0], "defaults must not be aliased")
}

func TestCheckMinVolumeSize(t *testing.T) {
	assert.NoError(t, CheckMinVolumeSize(OntapMinimumVolumeSizeBytes, OntapMinimumVolumeSizeBytes))

	err := CheckMinVolumeSize(1024, OntapMinimumVolumeSizeBytes)
	assert.True(t, errors.IsInvalidVolumeParameterError(err))
}

func TestGetConfigRedactList(t *testing.T) {
	list := GetConfigRedactList()
	assert.Contains(t, list, "Password")

	list[0] = "changed"
	assert.Equal(t, "Password", GetConfigRedactList()[0])
}

func TestRedactedConfigFields(t *testing.T) {
	fields := RedactedConfigFields(&config.Config{Hostname: "10.0.0.1", Username: "admin", Password: "secret"})

	assert.Equal(t, "10.0.0.1", fields["Hostname"])
	assert.Equal(t, "admin", fields["Username"])
	assert.Equal(t, "<REDACTED>", fields["Password"])
	assert.NotContains(t, fields, "CloudCentralRefreshToken", "unset secrets are left out")
	assert.Empty(t, RedactedConfigFields(nil))
}
