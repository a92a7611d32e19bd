// Copyright 2025 NetApp, Inc. All Rights Reserved.

package core

import (
	"context"

	. "github.com/netapp/dataops/logging"
	"github.com/netapp/dataops/storage"
	"github.com/netapp/dataops/utils/errors"
)

// VolumeManager drives volumes through creation and deletion, waiting for the backend to
// settle after each request.
type VolumeManager struct {
	volumes   storage.VolumeBackend
	snapshots *SnapshotManager
	settings  Settings
}

func NewVolumeManager(volumes storage.VolumeBackend, snapshots *SnapshotManager, settings Settings) *VolumeManager {
	return &VolumeManager{volumes: volumes, snapshots: snapshots, settings: settings}
}

// Create validates spec, requests the volume and waits until it is Ready. Adapter errors are
// returned as is; the request is not retried.
func (m *VolumeManager) Create(ctx context.Context, spec storage.VolumeSpec) (*storage.Volume, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	fields := LogFields{"volume": spec.Name, "sizeBytes": spec.SizeBytes}
	if spec.ClonedFrom != nil {
		fields["sourceVolume"] = spec.ClonedFrom.SourceVolume
		fields["sourceSnapshot"] = spec.ClonedFrom.SourceSnapshot
	}
	Logc(ctx).WithFields(fields).Debug("Creating volume.")

	if _, err := m.volumes.CreateVolume(ctx, spec); err != nil {
		return nil, err
	}

	volume, err := waitForVolumeReady(ctx, m.volumes, spec.Name, m.settings.Volume)
	if err != nil {
		Logc(ctx).WithFields(fields).WithError(err).Error("Volume did not become ready.")
		return nil, err
	}

	Logc(ctx).WithFields(fields).Info("Volume created.")
	return volume, nil
}

// Delete removes a volume and, unless preserveSnapshots is set, every snapshot it owns,
// one at a time in list order. A snapshot that vanishes mid-way is skipped; any other
// failure aborts without undoing earlier deletions. Deleting an absent volume succeeds.
func (m *VolumeManager) Delete(ctx context.Context, name string, preserveSnapshots, force bool) error {
	if name == "" {
		return errors.InvalidVolumeParameterError("volume name is mandatory")
	}

	fields := LogFields{"volume": name, "preserveSnapshots": preserveSnapshots, "force": force}

	if _, err := m.volumes.GetVolume(ctx, name); err != nil {
		if errors.IsNotFoundError(err) {
			Logc(ctx).WithFields(fields).Info("Volume not found, nothing to delete.")
			return nil
		}
		return err
	}

	if !preserveSnapshots {
		snapshots, err := m.snapshots.List(ctx, SnapshotFilter{Volume: name})
		if err != nil {
			return err
		}
		for _, snapshot := range snapshots {
			if err = m.snapshots.Delete(ctx, name, snapshot.Name); err != nil {
				Logc(ctx).WithFields(fields).WithField("snapshot", snapshot.Name).WithError(err).Error(
					"Could not delete snapshot; volume not deleted.")
				return err
			}
		}
	}

	Logc(ctx).WithFields(fields).Debug("Deleting volume.")
	if err := m.volumes.DeleteVolume(ctx, name, force); err != nil {
		if errors.IsNotFoundError(err) {
			return nil
		}
		return err
	}

	if err := waitForVolumeGone(ctx, m.volumes, name, m.settings.Volume); err != nil {
		return err
	}

	Audit().Log(ctx, AuditVolumeDelete, fields, "Volume deleted.")
	return nil
}

// Get returns a single volume.
func (m *VolumeManager) Get(ctx context.Context, name string) (*storage.Volume, error) {
	if name == "" {
		return nil, errors.InvalidVolumeParameterError("volume name is mandatory")
	}
	return m.volumes.GetVolume(ctx, name)
}

func (m *VolumeManager) List(ctx context.Context, filter storage.VolumeFilter) ([]*storage.Volume, error) {
	return m.volumes.ListVolumes(ctx, filter)
}

// MountTarget returns the NFS export a volume can be mounted from.
func (m *VolumeManager) MountTarget(ctx context.Context, name string) (*storage.MountTarget, error) {
	volume, err := m.Get(ctx, name)
	if err != nil {
		return nil, err
	}
	if volume.MountTarget == nil || volume.MountTarget.Server == "" {
		return nil, errors.MountOperationError("volume %s has no NFS export", name)
	}
	return volume.MountTarget, nil
}
