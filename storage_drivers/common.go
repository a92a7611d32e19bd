// Copyright 2025 NetApp, Inc. All Rights Reserved.

package storagedrivers

import (
	"context"
	"reflect"
	"slices"

	"github.com/netapp/dataops/config"
	. "github.com/netapp/dataops/logging"
	"github.com/netapp/dataops/storage"
	"github.com/netapp/dataops/utils/errors"
)

var configRedactList = [...]string{
	"Password", "CloudCentralRefreshToken", "S3SecretAccessKey",
}

func GetConfigRedactList() []string {
	clone := configRedactList
	return clone[:]
}

// RedactedConfigFields renders the config file for logging with every secret replaced.
func RedactedConfigFields(cfg *config.Config) LogFields {
	fields := LogFields{}
	if cfg == nil {
		return fields
	}
	value := reflect.ValueOf(*cfg)
	for i := 0; i < value.NumField(); i++ {
		field := value.Type().Field(i)
		if slices.Contains(configRedactList[:], field.Name) {
			if !value.Field(i).IsZero() {
				fields[field.Name] = "<REDACTED>"
			}
			continue
		}
		fields[field.Name] = value.Field(i).Interface()
	}
	return fields
}

// VolumeDefaults returns the volume attributes the config file supplies for unset fields.
func VolumeDefaults(cfg *config.Config) storage.VolumeSpec {
	if cfg == nil {
		return storage.VolumeSpec{}
	}
	return storage.VolumeSpec{
		Type:            cfg.DefaultVolumeType,
		Aggregates:      cfg.Aggregates(),
		ExportPolicy:    cfg.DefaultExportPolicy,
		SnapshotPolicy:  cfg.DefaultSnapshotPolicy,
		UnixUID:         string(cfg.DefaultUnixUID),
		UnixGID:         string(cfg.DefaultUnixGID),
		UnixPermissions: cfg.DefaultUnixPermissions,
		CapacityPool:    cfg.GCNVCapacityPool,
	}
}

// ApplyVolumeDefaults fills every unset attribute of spec from defaults.
func ApplyVolumeDefaults(ctx context.Context, spec *storage.VolumeSpec, defaults storage.VolumeSpec) {
	fill := func(field string, value *string, def string) {
		if *value == "" && def != "" {
			*value = def
			Logc(ctx).WithFields(LogFields{"volume": spec.Name, field: def}).Trace("Applied default.")
		}
	}

	fill("type", &spec.Type, defaults.Type)
	fill("storageClass", &spec.StorageClass, defaults.StorageClass)
	fill("capacityPool", &spec.CapacityPool, defaults.CapacityPool)
	fill("exportPolicy", &spec.ExportPolicy, defaults.ExportPolicy)
	fill("snapshotPolicy", &spec.SnapshotPolicy, defaults.SnapshotPolicy)
	fill("unixUID", &spec.UnixUID, defaults.UnixUID)
	fill("unixGID", &spec.UnixGID, defaults.UnixGID)
	fill("unixPermissions", &spec.UnixPermissions, defaults.UnixPermissions)
	fill("securityStyle", &spec.SecurityStyle, defaults.SecurityStyle)

	if len(spec.Aggregates) == 0 && len(defaults.Aggregates) > 0 {
		spec.Aggregates = append([]string(nil), defaults.Aggregates...)
	}
	if len(spec.Protocols) == 0 && len(defaults.Protocols) > 0 {
		spec.Protocols = append([]string(nil), defaults.Protocols...)
	}
}

// CheckMinVolumeSize returns InvalidVolumeParameterError if the requested volume size is less than the minimum
// volume size
func CheckMinVolumeSize(requestedSizeBytes, minVolumeSizeBytes uint64) error {
	if requestedSizeBytes < minVolumeSizeBytes {
		return errors.InvalidVolumeParameterError("requested volume size (%d bytes) is too small; "+
			"the minimum volume size is %d bytes", requestedSizeBytes, minVolumeSizeBytes)
	}
	return nil
}
