// Copyright 2025 NetApp, Inc. All Rights Reserved.

package gcp

import (
	"context"
	"sort"

	"github.com/spf13/afero"

	"github.com/netapp/dataops/config"
	. "github.com/netapp/dataops/logging"
	"github.com/netapp/dataops/storage"
	storagedrivers "github.com/netapp/dataops/storage_drivers"
	"github.com/netapp/dataops/storage_drivers/gcp/gcnvapi"
	"github.com/netapp/dataops/utils/errors"
)

// NASStorageDriver is the Google Cloud NetApp Volumes backend. It manages volumes in the
// configured project and location.
type NASStorageDriver struct {
	API    gcnvapi.GCNV
	Config DriverConfig
}

var (
	_ storage.Backend          = &NASStorageDriver{}
	_ storage.SnapshotRestorer = &NASStorageDriver{}
)

// NewNASStorageDriver creates a GCNV client from the GCNV settings of the config file.
func NewNASStorageDriver(ctx context.Context, fs afero.Fs, cfg *config.Config) (*NASStorageDriver, error) {
	if cfg == nil {
		return nil, errors.InvalidConfigError("GCNV backend requires a config file")
	}
	Logc(ctx).WithFields(storagedrivers.RedactedConfigFields(cfg)).Debug("Initializing storage driver.")
	driverConfig := NewDriverConfig(cfg, storagedrivers.VolumeDefaults(cfg))

	client, err := gcnvapi.NewClient(ctx, fs, &gcnvapi.ClientConfig{
		ProjectNumber: driverConfig.ProjectNumber,
		Location:      driverConfig.Location,
		APIKeyFile:    driverConfig.APIKeyFile,
		SDKTimeout:    config.DefaultSDKTimeout,
	})
	if err != nil {
		return nil, err
	}

	return NewNASStorageDriverWithAPI(client, driverConfig), nil
}

// NewNASStorageDriverWithAPI builds a driver around an existing GCNV client.
func NewNASStorageDriverWithAPI(client gcnvapi.GCNV, driverConfig DriverConfig) *NASStorageDriver {
	return &NASStorageDriver{API: client, Config: driverConfig}
}

func (d *NASStorageDriver) Name() string {
	return storagedrivers.GCNVStorageDriverName
}

// CreateVolume creates a volume in a capacity pool, or a clone restored from a snapshot when
// spec.ClonedFrom is set. GCNV clones are independent of their parent, so SplitClone has no
// effect.
func (d *NASStorageDriver) CreateVolume(ctx context.Context, spec storage.VolumeSpec) (*storage.Volume, error) {
	fields := LogFields{"Method": "CreateVolume", "Type": "NASStorageDriver", "name": spec.Name}
	Logc(ctx).WithFields(fields).Trace(">>>> CreateVolume")
	defer Logc(ctx).WithFields(fields).Trace("<<<< CreateVolume")

	storagedrivers.ApplyVolumeDefaults(ctx, &spec, d.Config.Defaults)

	request, err := d.volumeRequest(spec)
	if err != nil {
		return nil, err
	}

	pool, err := d.API.CapacityPool(ctx, spec.CapacityPool)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.WrapWithInvalidVolumeParameterError(err, "capacity pool %s does not exist",
				spec.CapacityPool)
		}
		return nil, err
	}
	request.CapacityPool = pool.Name

	if spec.ClonedFrom != nil {
		source, err := d.API.VolumeByName(ctx, spec.ClonedFrom.SourceVolume)
		if err != nil {
			return nil, err
		}
		snapshot, err := d.API.SnapshotForVolume(ctx, source, spec.ClonedFrom.SourceSnapshot)
		if err != nil {
			return nil, err
		}
		request.SnapshotID = snapshot.FullName
		request.Labels[labelSourceVolume] = labelValue(spec.ClonedFrom.SourceVolume)
		request.Labels[labelSourceSnapshot] = labelValue(spec.ClonedFrom.SourceSnapshot)
		if spec.SplitClone {
			Logc(ctx).WithField("volume", spec.Name).Debug("GCNV clones are independent volumes; ignoring split.")
		}
	}

	created, err := d.API.CreateVolume(ctx, request)
	if err != nil {
		return nil, err
	}

	Logc(ctx).WithFields(LogFields{
		"volume":       spec.Name,
		"capacityPool": pool.Name,
		"sizeBytes":    request.SizeBytes,
	}).Info("Created GCNV volume.")

	return volumeFromGCNV(created), nil
}

// volumeRequest validates spec against GCNV's rules and builds the create request.
func (d *NASStorageDriver) volumeRequest(spec storage.VolumeSpec) (*gcnvapi.VolumeCreateRequest, error) {
	if spec.CapacityPool == "" {
		return nil, errors.InvalidVolumeParameterError("a capacity pool is required for GCNV volumes")
	}
	if spec.ClonedFrom != nil && spec.ClonedFrom.SourceSnapshot == "" {
		return nil, errors.InvalidVolumeParameterError("GCNV clones require a source snapshot")
	}
	if spec.UnixPermissions != "" {
		if err := storage.ValidateUnixPermissions(spec.UnixPermissions); err != nil {
			return nil, err
		}
	}

	sizeBytes := roundUpToGiB(spec.SizeBytes)
	if err := storagedrivers.CheckMinVolumeSize(sizeBytes, storagedrivers.GCNVMinimumVolumeSizeBytes); err != nil {
		return nil, err
	}

	protocols, err := protocolsToGCNV(spec.Protocols)
	if err != nil {
		return nil, err
	}

	securityStyle := spec.SecurityStyle
	if securityStyle == "" {
		securityStyle = defaultSecurityStyle
	}

	request := &gcnvapi.VolumeCreateRequest{
		Name:            spec.Name,
		CapacityPool:    spec.CapacityPool,
		SizeBytes:       int64(sizeBytes),
		ProtocolTypes:   protocols,
		UnixPermissions: spec.UnixPermissions,
		SecurityStyle:   securityStyle,
		Labels:          map[string]string{labelCreatedBy: config.LabelCreatedByValue},
	}
	if spec.SnapshotReserve != nil {
		if *spec.SnapshotReserve < 0 || *spec.SnapshotReserve > 90 {
			return nil, errors.InvalidVolumeParameterError("snapshot reserve %d is not between 0 and 90",
				*spec.SnapshotReserve)
		}
		reserve := int64(*spec.SnapshotReserve)
		request.SnapshotReserve = &reserve
	}
	return request, nil
}

func (d *NASStorageDriver) GetVolume(ctx context.Context, name string) (*storage.Volume, error) {
	volume, err := d.API.VolumeByName(ctx, name)
	if err != nil {
		return nil, err
	}
	return volumeFromGCNV(volume), nil
}

// DeleteVolume deletes a volume. GCNV deletes are always forced so that the volume's
// snapshots go with it.
func (d *NASStorageDriver) DeleteVolume(ctx context.Context, name string, _ bool) error {
	volume, err := d.API.VolumeByName(ctx, name)
	if err != nil {
		return err
	}
	if err = d.API.DeleteVolume(ctx, volume); err != nil {
		return err
	}

	Logc(ctx).WithField("volume", name).Info("Deleted GCNV volume.")
	return nil
}

// ListVolumes returns the volumes in the location that match the filter, sorted by name.
func (d *NASStorageDriver) ListVolumes(ctx context.Context, filter storage.VolumeFilter) ([]*storage.Volume, error) {
	volumes, err := d.API.Volumes(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*storage.Volume, 0, len(volumes))
	for _, volume := range volumes {
		converted := volumeFromGCNV(volume)
		if filter.Matches(converted) {
			result = append(result, converted)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

// CreateSnapshot snapshots a volume. SnapMirror labels are not supported by GCNV and are
// ignored.
func (d *NASStorageDriver) CreateSnapshot(ctx context.Context, spec storage.SnapshotSpec) (*storage.Snapshot, error) {
	volume, err := d.API.VolumeByName(ctx, spec.Volume)
	if err != nil {
		return nil, err
	}
	if spec.Label != "" {
		Logc(ctx).WithField("label", spec.Label).Debug("Ignoring SnapMirror label for GCNV snapshot.")
	}

	snapshot, err := d.API.CreateSnapshot(ctx, volume, spec.Name,
		map[string]string{labelCreatedBy: config.LabelCreatedByValue})
	if err != nil {
		return nil, err
	}

	Logc(ctx).WithFields(LogFields{"volume": spec.Volume, "snapshot": spec.Name}).Info("Created GCNV snapshot.")
	return snapshotFromGCNV(snapshot), nil
}

// volumeAndSnapshot looks up a volume and one of its snapshots.
func (d *NASStorageDriver) volumeAndSnapshot(
	ctx context.Context, volumeName, snapshotName string,
) (*gcnvapi.Volume, *gcnvapi.Snapshot, error) {
	volume, err := d.API.VolumeByName(ctx, volumeName)
	if err != nil {
		return nil, nil, err
	}
	snapshot, err := d.API.SnapshotForVolume(ctx, volume, snapshotName)
	if err != nil {
		return nil, nil, err
	}
	return volume, snapshot, nil
}

func (d *NASStorageDriver) GetSnapshot(ctx context.Context, volume, name string) (*storage.Snapshot, error) {
	_, snapshot, err := d.volumeAndSnapshot(ctx, volume, name)
	if err != nil {
		return nil, err
	}
	return snapshotFromGCNV(snapshot), nil
}

func (d *NASStorageDriver) DeleteSnapshot(ctx context.Context, volume, name string) error {
	gcnvVolume, snapshot, err := d.volumeAndSnapshot(ctx, volume, name)
	if err != nil {
		return err
	}
	if err = d.API.DeleteSnapshot(ctx, gcnvVolume, snapshot); err != nil {
		return err
	}

	Logc(ctx).WithFields(LogFields{"volume": volume, "snapshot": name}).Info("Deleted GCNV snapshot.")
	return nil
}

// ListSnapshots returns the snapshots of one volume, or of every volume in the location.
func (d *NASStorageDriver) ListSnapshots(ctx context.Context, volume string) ([]*storage.Snapshot, error) {
	var volumes []*gcnvapi.Volume
	if volume != "" {
		gcnvVolume, err := d.API.VolumeByName(ctx, volume)
		if err != nil {
			return nil, err
		}
		volumes = []*gcnvapi.Volume{gcnvVolume}
	} else {
		all, err := d.API.Volumes(ctx)
		if err != nil {
			return nil, err
		}
		volumes = all
		sort.Slice(volumes, func(i, j int) bool { return volumes[i].Name < volumes[j].Name })
	}

	var result []*storage.Snapshot
	for _, gcnvVolume := range volumes {
		snapshots, err := d.API.SnapshotsForVolume(ctx, gcnvVolume)
		if err != nil {
			return nil, err
		}
		for _, snapshot := range snapshots {
			result = append(result, snapshotFromGCNV(snapshot))
		}
	}
	return result, nil
}

// RestoreSnapshot reverts a volume to one of its snapshots.
func (d *NASStorageDriver) RestoreSnapshot(ctx context.Context, volume, name string) error {
	gcnvVolume, snapshot, err := d.volumeAndSnapshot(ctx, volume, name)
	if err != nil {
		return err
	}
	if err = d.API.RestoreSnapshot(ctx, gcnvVolume, snapshot); err != nil {
		return err
	}

	Logc(ctx).WithFields(LogFields{"volume": volume, "snapshot": name}).Info("Reverted GCNV volume to snapshot.")
	return nil
}
