// Copyright 2025 NetApp, Inc. All Rights Reserved.

package ontap

import (
	"context"
	"sort"

	"github.com/netapp/dataops/config"
	. "github.com/netapp/dataops/logging"
	"github.com/netapp/dataops/pkg/convert"
	"github.com/netapp/dataops/storage"
	storagedrivers "github.com/netapp/dataops/storage_drivers"
	"github.com/netapp/dataops/storage_drivers/ontap/api"
	"github.com/netapp/dataops/utils/errors"
)

// NASStorageDriver is the ONTAP backend. It manages FlexVol and FlexGroup volumes of one
// SVM through the ONTAP REST API, and it triggers SnapMirror transfers.
type NASStorageDriver struct {
	API    api.RestClientInterface
	Config DriverConfig
}

var (
	_ storage.Backend            = &NASStorageDriver{}
	_ storage.SnapshotRestorer   = &NASStorageDriver{}
	_ storage.ReplicationBackend = &NASStorageDriver{}
)

// NewNASStorageDriver connects to the cluster named in the config file.
func NewNASStorageDriver(ctx context.Context, cfg *config.Config) (*NASStorageDriver, error) {
	if cfg == nil {
		return nil, errors.InvalidConfigError("ONTAP backend requires a config file")
	}
	Logc(ctx).WithFields(storagedrivers.RedactedConfigFields(cfg)).Debug("Initializing storage driver.")
	driverConfig := NewDriverConfig(cfg, storagedrivers.VolumeDefaults(cfg))

	client, err := api.NewRestClient(ctx, api.ClientConfig{
		ManagementLIF: driverConfig.ManagementLIF,
		SVM:           driverConfig.SVM,
		Username:      driverConfig.Username,
		Password:      driverConfig.Password,
		VerifySSLCert: driverConfig.VerifySSLCert,
	})
	if err != nil {
		return nil, err
	}

	return NewNASStorageDriverWithAPI(client, driverConfig), nil
}

// NewNASStorageDriverWithAPI builds a driver around an existing REST client.
func NewNASStorageDriverWithAPI(client api.RestClientInterface, driverConfig DriverConfig) *NASStorageDriver {
	return &NASStorageDriver{API: client, Config: driverConfig}
}

func (d *NASStorageDriver) Name() string {
	return storagedrivers.OntapNASStorageDriverName
}

func traceFields(method string, fields LogFields) LogFields {
	result := LogFields{"Method": method, "Type": "NASStorageDriver"}
	for k, v := range fields {
		result[k] = v
	}
	return result
}

// CreateVolume creates a FlexVol or FlexGroup, or a FlexClone when spec.ClonedFrom is set.
func (d *NASStorageDriver) CreateVolume(ctx context.Context, spec storage.VolumeSpec) (*storage.Volume, error) {
	fields := traceFields("CreateVolume", LogFields{"name": spec.Name})
	Logc(ctx).WithFields(fields).Trace(">>>> CreateVolume")
	defer Logc(ctx).WithFields(fields).Trace("<<<< CreateVolume")

	storagedrivers.ApplyVolumeDefaults(ctx, &spec, d.Config.Defaults)

	volume, err := d.volumeRequest(spec)
	if err != nil {
		return nil, err
	}

	if err = d.API.VolumeCreate(ctx, volume); err != nil {
		return nil, api.ClassifyError(err, "could not create volume %s", spec.Name)
	}

	created, err := d.API.VolumeGetByName(ctx, spec.Name)
	if err != nil {
		return nil, api.ClassifyError(err, "could not read volume %s after creation", spec.Name)
	}

	if spec.ClonedFrom != nil && spec.SplitClone {
		if err = d.API.VolumeCloneSplitStart(ctx, created.UUID); err != nil {
			return nil, api.ClassifyError(err, "could not split clone %s", spec.Name)
		}
		Logc(ctx).WithField("volume", spec.Name).Debug("Started clone split.")
	}

	Logc(ctx).WithFields(LogFields{
		"volume": spec.Name,
		"uuid":   created.UUID,
		"style":  created.Style,
	}).Info("Created ONTAP volume.")

	return volumeFromREST(created, d.Config.DataLIF), nil
}

// volumeRequest validates spec against ONTAP's rules and builds the REST body.
func (d *NASStorageDriver) volumeRequest(spec storage.VolumeSpec) (*api.Volume, error) {
	permissions, err := permissionsToREST(spec.UnixPermissions)
	if err != nil {
		return nil, err
	}
	uid, err := idToREST("unix uid", spec.UnixUID)
	if err != nil {
		return nil, err
	}
	gid, err := idToREST("unix gid", spec.UnixGID)
	if err != nil {
		return nil, err
	}

	nas := &api.VolumeNas{
		Path:            junctionPath(spec.Name),
		UID:             uid,
		GID:             gid,
		UnixPermissions: permissions,
		SecurityStyle:   spec.SecurityStyle,
	}
	if spec.ExportPolicy != "" {
		nas.ExportPolicy = &api.NamedReference{Name: spec.ExportPolicy}
	}

	volume := &api.Volume{
		Name: spec.Name,
		Svm:  &api.NamedReference{Name: d.Config.SVM},
		Nas:  nas,
	}
	if spec.SnapshotPolicy != "" {
		volume.SnapshotPolicy = &api.NamedReference{Name: spec.SnapshotPolicy}
	}
	if spec.SnapshotReserve != nil {
		if *spec.SnapshotReserve < 0 || *spec.SnapshotReserve > 90 {
			return nil, errors.InvalidVolumeParameterError("snapshot reserve must be between 0 and 90 percent")
		}
		volume.Space = &api.VolumeSpace{
			Snapshot: &api.VolumeSpaceSnapshot{ReservePercent: convert.ToPtr(int64(*spec.SnapshotReserve))},
		}
	}

	if spec.ClonedFrom != nil {
		// FlexClones inherit style, size and placement from the parent
		volume.Clone = &api.VolumeClone{
			IsFlexclone:  convert.ToPtr(true),
			ParentVolume: &api.NamedReference{Name: spec.ClonedFrom.SourceVolume},
		}
		if spec.ClonedFrom.SourceSnapshot != "" {
			volume.Clone.ParentSnapshot = &api.NamedReference{Name: spec.ClonedFrom.SourceSnapshot}
		}
		if spec.SizeBytes > 0 {
			volume.Size = convert.ToPtr(int64(spec.SizeBytes))
		}
		return volume, nil
	}

	if err = storagedrivers.CheckMinVolumeSize(spec.SizeBytes, storagedrivers.OntapMinimumVolumeSizeBytes); err != nil {
		return nil, err
	}
	volume.Size = convert.ToPtr(int64(spec.SizeBytes))

	if spec.SecurityStyle == "" {
		nas.SecurityStyle = defaultSecurityStyle
	}

	volume.Type = volumeTypeReadWrite
	if spec.ReadOnly {
		volume.Type = volumeTypeDataProtect
		// Data protection volumes cannot be mounted until the relationship is initialized
		nas.Path = ""
	}

	switch spec.Type {
	case config.VolumeTypeFlexVol, "":
		volume.Style = api.VolumeStyleFlexVol
		if len(spec.Aggregates) > 1 {
			return nil, errors.InvalidVolumeParameterError("a FlexVol can be placed on a single aggregate only")
		}
	case config.VolumeTypeFlexGroup:
		volume.Style = api.VolumeStyleFlexGroup
	default:
		return nil, errors.InvalidVolumeParameterError("invalid volume type '%s'; must be '%s' or '%s'",
			spec.Type, config.VolumeTypeFlexVol, config.VolumeTypeFlexGroup)
	}
	for _, aggr := range spec.Aggregates {
		volume.Aggregates = append(volume.Aggregates, api.NamedReference{Name: aggr})
	}

	return volume, nil
}

// GetVolume returns the named volume.
func (d *NASStorageDriver) GetVolume(ctx context.Context, name string) (*storage.Volume, error) {
	volume, err := d.API.VolumeGetByName(ctx, name)
	if err != nil {
		return nil, api.ClassifyError(err, "could not get volume %s", name)
	}
	return volumeFromREST(volume, d.Config.DataLIF), nil
}

// DeleteVolume deletes the named volume. ONTAP refuses to delete a volume that is the parent of
// a FlexClone or the source of a SnapMirror relationship; that refusal is returned unchanged.
func (d *NASStorageDriver) DeleteVolume(ctx context.Context, name string, force bool) error {
	fields := traceFields("DeleteVolume", LogFields{"name": name, "force": force})
	Logc(ctx).WithFields(fields).Trace(">>>> DeleteVolume")
	defer Logc(ctx).WithFields(fields).Trace("<<<< DeleteVolume")

	volume, err := d.API.VolumeGetByName(ctx, name)
	if err != nil {
		return api.ClassifyError(err, "could not get volume %s", name)
	}

	if err = d.API.VolumeDelete(ctx, volume.UUID, force); err != nil {
		return api.ClassifyError(err, "could not delete volume %s", name)
	}

	Logc(ctx).WithField("volume", name).Info("Deleted ONTAP volume.")
	return nil
}

// ListVolumes returns the SVM's volumes that match the filter.
func (d *NASStorageDriver) ListVolumes(ctx context.Context, filter storage.VolumeFilter) ([]*storage.Volume, error) {
	pattern := ""
	if filter.NamePrefix != "" {
		pattern = filter.NamePrefix + "*"
	}

	volumes, err := d.API.VolumeList(ctx, pattern)
	if err != nil {
		return nil, api.ClassifyError(err, "could not list volumes")
	}

	result := make([]*storage.Volume, 0, len(volumes))
	for _, volume := range volumes {
		converted := volumeFromREST(volume, d.Config.DataLIF)
		if filter.Matches(converted) {
			result = append(result, converted)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })

	return result, nil
}

// CreateSnapshot creates a snapshot of an existing volume.
func (d *NASStorageDriver) CreateSnapshot(ctx context.Context, spec storage.SnapshotSpec) (*storage.Snapshot, error) {
	fields := traceFields("CreateSnapshot", LogFields{"volume": spec.Volume, "name": spec.Name})
	Logc(ctx).WithFields(fields).Trace(">>>> CreateSnapshot")
	defer Logc(ctx).WithFields(fields).Trace("<<<< CreateSnapshot")

	volume, err := d.API.VolumeGetByName(ctx, spec.Volume)
	if err != nil {
		return nil, api.ClassifyError(err, "could not get volume %s", spec.Volume)
	}

	if err = d.API.SnapshotCreate(ctx, volume.UUID, spec.Name, spec.Label); err != nil {
		return nil, api.ClassifyError(err, "could not create snapshot %s of volume %s", spec.Name, spec.Volume)
	}

	snapshot, err := d.API.SnapshotGetByName(ctx, volume.UUID, spec.Name)
	if err != nil {
		return nil, api.ClassifyError(err, "could not read snapshot %s after creation", spec.Name)
	}

	Logc(ctx).WithFields(LogFields{"volume": spec.Volume, "snapshot": spec.Name}).Info("Created ONTAP snapshot.")
	return snapshotFromREST(spec.Volume, snapshot), nil
}

// GetSnapshot returns one snapshot of a volume.
func (d *NASStorageDriver) GetSnapshot(ctx context.Context, volumeName, name string) (*storage.Snapshot, error) {
	volume, err := d.API.VolumeGetByName(ctx, volumeName)
	if err != nil {
		return nil, api.ClassifyError(err, "could not get volume %s", volumeName)
	}
	snapshot, err := d.API.SnapshotGetByName(ctx, volume.UUID, name)
	if err != nil {
		return nil, api.ClassifyError(err, "could not get snapshot %s of volume %s", name, volumeName)
	}
	return snapshotFromREST(volumeName, snapshot), nil
}

// DeleteSnapshot deletes one snapshot. A snapshot backing a FlexClone is busy and cannot be
// deleted until the clone is split or removed.
func (d *NASStorageDriver) DeleteSnapshot(ctx context.Context, volumeName, name string) error {
	fields := traceFields("DeleteSnapshot", LogFields{"volume": volumeName, "name": name})
	Logc(ctx).WithFields(fields).Trace(">>>> DeleteSnapshot")
	defer Logc(ctx).WithFields(fields).Trace("<<<< DeleteSnapshot")

	volume, err := d.API.VolumeGetByName(ctx, volumeName)
	if err != nil {
		return api.ClassifyError(err, "could not get volume %s", volumeName)
	}
	snapshot, err := d.API.SnapshotGetByName(ctx, volume.UUID, name)
	if err != nil {
		return api.ClassifyError(err, "could not get snapshot %s of volume %s", name, volumeName)
	}

	if err = d.API.SnapshotDelete(ctx, volume.UUID, snapshot.UUID); err != nil {
		var restErr api.RestError
		if errors.As(err, &restErr) && restErr.IsSnapshotBusy() {
			Logc(ctx).WithFields(LogFields{"volume": volumeName, "snapshot": name}).Warn(
				"Snapshot is busy, it may back a clone.")
		}
		return api.ClassifyError(err, "could not delete snapshot %s of volume %s", name, volumeName)
	}

	Logc(ctx).WithFields(LogFields{"volume": volumeName, "snapshot": name}).Info("Deleted ONTAP snapshot.")
	return nil
}

// ListSnapshots returns the snapshots of one volume, or of every volume when volumeName is empty.
func (d *NASStorageDriver) ListSnapshots(ctx context.Context, volumeName string) ([]*storage.Snapshot, error) {
	var volumes []*api.Volume
	if volumeName != "" {
		volume, err := d.API.VolumeGetByName(ctx, volumeName)
		if err != nil {
			return nil, api.ClassifyError(err, "could not get volume %s", volumeName)
		}
		volumes = []*api.Volume{volume}
	} else {
		var err error
		if volumes, err = d.API.VolumeList(ctx, ""); err != nil {
			return nil, api.ClassifyError(err, "could not list volumes")
		}
		sort.Slice(volumes, func(i, j int) bool { return volumes[i].Name < volumes[j].Name })
	}

	var result []*storage.Snapshot
	for _, volume := range volumes {
		snapshots, err := d.API.SnapshotList(ctx, volume.UUID)
		if err != nil {
			return nil, api.ClassifyError(err, "could not list snapshots of volume %s", volume.Name)
		}
		for _, snapshot := range snapshots {
			result = append(result, snapshotFromREST(volume.Name, snapshot))
		}
	}

	return result, nil
}

// RestoreSnapshot reverts a volume to one of its snapshots. Newer snapshots are discarded by ONTAP.
func (d *NASStorageDriver) RestoreSnapshot(ctx context.Context, volumeName, name string) error {
	fields := traceFields("RestoreSnapshot", LogFields{"volume": volumeName, "name": name})
	Logc(ctx).WithFields(fields).Trace(">>>> RestoreSnapshot")
	defer Logc(ctx).WithFields(fields).Trace("<<<< RestoreSnapshot")

	volume, err := d.API.VolumeGetByName(ctx, volumeName)
	if err != nil {
		return api.ClassifyError(err, "could not get volume %s", volumeName)
	}
	if err = d.API.VolumeRestoreSnapshot(ctx, volume.UUID, name); err != nil {
		return api.ClassifyError(err, "could not restore volume %s to snapshot %s", volumeName, name)
	}
	return nil
}
