// Copyright 2025 NetApp, Inc. All Rights Reserved.

package core

import (
	"context"

	. "github.com/netapp/dataops/logging"
	"github.com/netapp/dataops/storage"
	"github.com/netapp/dataops/utils/errors"
)

// CleanupPolicy decides what happens to a snapshot taken for a clone when the clone fails.
type CleanupPolicy string

const (
	// CleanupRetain leaves the implicit snapshot in place for the caller to inspect or remove.
	CleanupRetain = CleanupPolicy("retain")
	// CleanupDeleteImplicitSnapshot deletes the implicit snapshot if the clone cannot be created.
	CleanupDeleteImplicitSnapshot = CleanupPolicy("delete")
)

func IsValidCleanupPolicy(policy CleanupPolicy) bool {
	switch policy {
	case "", CleanupRetain, CleanupDeleteImplicitSnapshot:
		return true
	}
	return false
}

// CloneRequest describes a clone. SourceSnapshot may name a snapshot, select the newest
// snapshot with a prefix ("daily*"), or be empty to snapshot the source first.
type CloneRequest struct {
	Name           string
	SourceVolume   string
	SourceSnapshot string
	// Size overrides the source size. It may grow the clone but never shrink it.
	Size string
	// Overrides carries optional attributes for the clone; unset fields are inherited from
	// the source volume.
	Overrides     storage.VolumeSpec
	CleanupPolicy CleanupPolicy
}

// CloneManager instantiates new volumes from point-in-time copies of existing ones.
type CloneManager struct {
	volumes   *VolumeManager
	snapshots *SnapshotManager
}

func NewCloneManager(volumes *VolumeManager, snapshots *SnapshotManager) *CloneManager {
	return &CloneManager{volumes: volumes, snapshots: snapshots}
}

// Clone resolves or creates the source snapshot, then creates the clone and waits for it.
func (m *CloneManager) Clone(ctx context.Context, request CloneRequest) (*storage.Volume, error) {
	if request.Name == "" {
		return nil, errors.InvalidVolumeParameterError("clone name is mandatory")
	}
	if request.SourceVolume == "" {
		return nil, errors.InvalidVolumeParameterError("clone source volume is mandatory")
	}
	if !IsValidCleanupPolicy(request.CleanupPolicy) {
		return nil, errors.InvalidVolumeParameterError("unknown cleanup policy '%s'", request.CleanupPolicy)
	}

	var sizeOverride uint64
	if request.Size != "" {
		var err error
		if sizeOverride, err = storage.ParseVolumeSize(request.Size); err != nil {
			return nil, err
		}
	}

	source, err := m.volumes.Get(ctx, request.SourceVolume)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.WrapWithInvalidVolumeParameterError(err, "source volume %s does not exist",
				request.SourceVolume)
		}
		return nil, err
	}
	if sizeOverride != 0 && sizeOverride < source.SizeBytes {
		return nil, errors.InvalidVolumeParameterError("clone size %s is smaller than source volume %s",
			request.Size, request.SourceVolume)
	}

	fields := LogFields{"clone": request.Name, "sourceVolume": request.SourceVolume}

	implicit := false
	var snapshotName string
	if request.SourceSnapshot != "" {
		snapshot, err := m.snapshots.resolve(ctx, request.SourceVolume, request.SourceSnapshot)
		if err != nil {
			return nil, err
		}
		snapshotName = snapshot.Name
	} else {
		snapshot, err := m.snapshots.Create(ctx, SnapshotRequest{Volume: request.SourceVolume})
		if err != nil {
			return nil, err
		}
		implicit = true
		snapshotName = snapshot.Name
		Logc(ctx).WithFields(fields).WithField("snapshot", snapshotName).Debug("Created snapshot for clone.")
	}
	fields["sourceSnapshot"] = snapshotName

	spec := cloneSpec(request, source, snapshotName, sizeOverride)
	clone, err := m.volumes.Create(ctx, spec)
	if err != nil {
		Logc(ctx).WithFields(fields).WithError(err).Error("Could not create clone.")
		if implicit && request.CleanupPolicy == CleanupDeleteImplicitSnapshot {
			if cleanupErr := m.snapshots.Delete(ctx, request.SourceVolume, snapshotName); cleanupErr != nil {
				return nil, errors.Combine(err, cleanupErr)
			}
			Logc(ctx).WithFields(fields).Info("Deleted snapshot taken for failed clone.")
		}
		return nil, err
	}

	Logc(ctx).WithFields(fields).Info("Clone created.")
	return clone, nil
}

// DeleteClone deletes a clone and then the snapshot it was cloned from. A source snapshot
// already gone is not an error; one still in use by another clone is.
func (m *CloneManager) DeleteClone(ctx context.Context, name string, preserveSnapshots, force bool) error {
	volume, err := m.volumes.Get(ctx, name)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil
		}
		return err
	}
	if err = m.volumes.Delete(ctx, name, preserveSnapshots, force); err != nil {
		return err
	}
	if volume.ClonedFrom == nil || volume.ClonedFrom.SourceSnapshot == "" {
		return nil
	}
	return m.snapshots.Delete(ctx, volume.ClonedFrom.SourceVolume, volume.ClonedFrom.SourceSnapshot)
}

func cloneSpec(request CloneRequest, source *storage.Volume, snapshot string, size uint64) storage.VolumeSpec {
	spec := request.Overrides
	spec.Name = request.Name
	spec.Size = ""
	spec.SizeBytes = source.SizeBytes
	if size > spec.SizeBytes {
		spec.SizeBytes = size
	}
	spec.ClonedFrom = &storage.ClonedFrom{SourceVolume: source.Name, SourceSnapshot: snapshot}

	inherit := func(field *string, value string) {
		if *field == "" {
			*field = value
		}
	}
	inherit(&spec.Type, source.Type)
	inherit(&spec.StorageClass, source.StorageClass)
	inherit(&spec.CapacityPool, source.CapacityPool)
	inherit(&spec.UnixUID, source.UnixUID)
	inherit(&spec.UnixGID, source.UnixGID)
	inherit(&spec.UnixPermissions, source.UnixPermissions)
	inherit(&spec.ExportPolicy, source.ExportPolicy)
	inherit(&spec.SnapshotPolicy, source.SnapshotPolicy)
	inherit(&spec.SecurityStyle, source.SecurityStyle)
	if len(spec.Aggregates) == 0 {
		spec.Aggregates = source.Aggregates
	}
	if len(spec.Protocols) == 0 {
		spec.Protocols = source.Protocols
	}
	return spec
}
