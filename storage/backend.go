// Copyright 2025 NetApp, Inc. All Rights Reserved.

package storage

//go:generate mockgen -destination=../mocks/mock_storage/mock_backend.go -package=mock_storage github.com/netapp/dataops/storage Backend,ReplicationBackend,SnapshotBackend,SnapshotRestorer,VolumeBackend

import (
	"context"
)

// VolumeBackend creates, reads, deletes and lists volumes. Calls are synchronous requests
// against the control plane and never wait for the resource to settle. GetVolume returns a
// NotFoundError when the volume does not exist.
type VolumeBackend interface {
	CreateVolume(ctx context.Context, spec VolumeSpec) (*Volume, error)
	GetVolume(ctx context.Context, name string) (*Volume, error)
	DeleteVolume(ctx context.Context, name string, force bool) error
	ListVolumes(ctx context.Context, filter VolumeFilter) ([]*Volume, error)
}

// SnapshotBackend manages snapshots of volumes. ListSnapshots with an empty volume name
// returns every snapshot the backend can see.
type SnapshotBackend interface {
	CreateSnapshot(ctx context.Context, spec SnapshotSpec) (*Snapshot, error)
	GetSnapshot(ctx context.Context, volume, name string) (*Snapshot, error)
	DeleteSnapshot(ctx context.Context, volume, name string) error
	ListSnapshots(ctx context.Context, volume string) ([]*Snapshot, error)
}

// SnapshotRestorer is implemented by backends that can revert a volume in place.
type SnapshotRestorer interface {
	RestoreSnapshot(ctx context.Context, volume, name string) error
}

// ReplicationBackend reads replication relationships and triggers transfers.
type ReplicationBackend interface {
	GetRelationship(ctx context.Context, id string) (*Relationship, error)
	ListRelationships(ctx context.Context) ([]*Relationship, error)
	StartTransfer(ctx context.Context, id string) error
}

// Backend is a storage backend offering both volumes and snapshots.
type Backend interface {
	Name() string
	VolumeBackend
	SnapshotBackend
}
