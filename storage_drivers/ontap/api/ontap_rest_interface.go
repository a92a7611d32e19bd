// Copyright 2025 NetApp, Inc. All Rights Reserved.

package api

//go:generate mockgen -destination=../../../mocks/mock_storage_drivers/mock_ontap/mock_ontap_rest_interface.go -package=mock_api github.com/netapp/dataops/storage_drivers/ontap/api RestClientInterface

import (
	"context"
)

// RestClientInterface ...
type RestClientInterface interface {
	SVM() string
	// JobGet returns the job by ID
	JobGet(ctx context.Context, jobUUID string) (*Job, error)
	// PollJobStatus polls for the ONTAP job to complete, with backoff retry logic
	PollJobStatus(ctx context.Context, jobUUID string) error
	// VolumeList returns the volumes of the SVM whose names match the supplied pattern
	VolumeList(ctx context.Context, pattern string) ([]*Volume, error)
	// VolumeGetByName returns the named volume, or a not-found RestError.
	VolumeGetByName(ctx context.Context, name string) (*Volume, error)
	// VolumeCreate creates a volume, or a FlexClone when volume.Clone is set.
	VolumeCreate(ctx context.Context, volume *Volume) error
	// VolumeCloneSplitStart starts splitting a FlexClone from its parent.
	VolumeCloneSplitStart(ctx context.Context, volumeUUID string) error
	// VolumeRestoreSnapshot reverts the volume to the named snapshot.
	VolumeRestoreSnapshot(ctx context.Context, volumeUUID, snapshotName string) error
	// VolumeDelete deletes the volume by UUID.
	VolumeDelete(ctx context.Context, volumeUUID string, force bool) error
	// SnapshotList returns the snapshots of a volume
	SnapshotList(ctx context.Context, volumeUUID string) ([]*Snapshot, error)
	// SnapshotGetByName returns the named snapshot of a volume, or a not-found RestError.
	SnapshotGetByName(ctx context.Context, volumeUUID, name string) (*Snapshot, error)
	// SnapshotCreate creates a snapshot of a volume
	SnapshotCreate(ctx context.Context, volumeUUID, name, label string) error
	// SnapshotDelete deletes a snapshot of a volume
	SnapshotDelete(ctx context.Context, volumeUUID, snapshotUUID string) error
	// SnapmirrorRelationshipList returns every SnapMirror relationship visible to the cluster
	SnapmirrorRelationshipList(ctx context.Context) ([]*SnapmirrorRelationship, error)
	// SnapmirrorRelationshipGet returns a SnapMirror relationship by UUID
	SnapmirrorRelationshipGet(ctx context.Context, uuid string) (*SnapmirrorRelationship, error)
	// SnapmirrorTransferStart starts an update transfer on a SnapMirror relationship
	SnapmirrorTransferStart(ctx context.Context, uuid string) error
}
