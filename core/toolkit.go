// Copyright 2025 NetApp, Inc. All Rights Reserved.

package core

import (
	"context"

	. "github.com/netapp/dataops/logging"
	"github.com/netapp/dataops/storage"
	"github.com/netapp/dataops/utils/errors"
)

// DeleteVolumeRequest describes a volume deletion. DeleteSourceSnapshot additionally deletes
// the snapshot a clone was created from once the clone is gone.
type DeleteVolumeRequest struct {
	Name                 string
	PreserveSnapshots    bool
	Force                bool
	DeleteSourceSnapshot bool
}

// Toolkit is the library surface. It holds the backends it was constructed with and no
// other state, so independent toolkits may be used side by side.
type Toolkit struct {
	backend    storage.Backend
	volumes    *VolumeManager
	snapshots  *SnapshotManager
	clones     *CloneManager
	replicator *ReplicationTrigger
	settings   Settings
	relations  map[storage.ReplicationKind]storage.ReplicationBackend
}

type Option func(*Toolkit)

// WithSettings overrides the default polling settings.
func WithSettings(settings Settings) Option {
	return func(t *Toolkit) {
		t.settings = settings
	}
}

// WithReplicationBackend registers the backend used to trigger transfers of one kind.
func WithReplicationBackend(kind storage.ReplicationKind, backend storage.ReplicationBackend) Option {
	return func(t *Toolkit) {
		t.relations[kind] = backend
	}
}

// NewToolkit builds a toolkit over backend. A backend that also implements
// storage.ReplicationBackend is registered for SnapMirror unless another one is given.
func NewToolkit(backend storage.Backend, opts ...Option) *Toolkit {
	t := &Toolkit{
		backend:   backend,
		settings:  DefaultSettings(),
		relations: make(map[storage.ReplicationKind]storage.ReplicationBackend),
	}
	for _, opt := range opts {
		opt(t)
	}
	if rb, ok := backend.(storage.ReplicationBackend); ok {
		if _, set := t.relations[storage.ReplicationSnapMirror]; !set {
			t.relations[storage.ReplicationSnapMirror] = rb
		}
	}

	t.snapshots = NewSnapshotManager(backend, backend, t.settings)
	t.volumes = NewVolumeManager(backend, t.snapshots, t.settings)
	t.clones = NewCloneManager(t.volumes, t.snapshots)
	t.replicator = NewReplicationTrigger(t.relations, t.settings)

	if backend != nil {
		recordBuildInfo(backend.Name())
	}
	return t
}

func (t *Toolkit) context(ctx context.Context) context.Context {
	ctx = GenerateRequestContext(ctx, "", ContextSourceLibrary)
	if t.backend != nil && ctx.Value(ContextKeyBackend) == nil {
		ctx = WithBackend(ctx, t.backend.Name())
	}
	return ctx
}

func (t *Toolkit) ensureBackend() error {
	if t.backend == nil {
		return errors.InvalidConfigError("no storage backend is configured")
	}
	return nil
}

// Backend returns the storage backend the toolkit drives.
func (t *Toolkit) Backend() storage.Backend {
	return t.backend
}

func (t *Toolkit) CreateVolume(ctx context.Context, spec storage.VolumeSpec) (volume *storage.Volume, err error) {
	ctx = t.context(ctx)
	defer recordTiming("volume_create", &err)()
	if err = t.ensureBackend(); err != nil {
		return nil, err
	}
	return t.volumes.Create(ctx, spec)
}

func (t *Toolkit) CloneVolume(ctx context.Context, request CloneRequest) (volume *storage.Volume, err error) {
	ctx = t.context(ctx)
	defer recordTiming("volume_clone", &err)()
	if err = t.ensureBackend(); err != nil {
		return nil, err
	}
	return t.clones.Clone(ctx, request)
}

func (t *Toolkit) DeleteVolume(ctx context.Context, request DeleteVolumeRequest) (err error) {
	ctx = t.context(ctx)
	defer recordTiming("volume_delete", &err)()
	if err = t.ensureBackend(); err != nil {
		return err
	}
	if request.DeleteSourceSnapshot {
		return t.clones.DeleteClone(ctx, request.Name, request.PreserveSnapshots, request.Force)
	}
	return t.volumes.Delete(ctx, request.Name, request.PreserveSnapshots, request.Force)
}

func (t *Toolkit) GetVolume(ctx context.Context, name string) (volume *storage.Volume, err error) {
	ctx = t.context(ctx)
	defer recordTiming("volume_get", &err)()
	if err = t.ensureBackend(); err != nil {
		return nil, err
	}
	return t.volumes.Get(ctx, name)
}

func (t *Toolkit) ListVolumes(ctx context.Context, filter storage.VolumeFilter) (volumes []*storage.Volume, err error) {
	ctx = t.context(ctx)
	defer recordTiming("volume_list", &err)()
	if err = t.ensureBackend(); err != nil {
		return nil, err
	}
	return t.volumes.List(ctx, filter)
}

// MountTarget returns the export a volume can be mounted from.
func (t *Toolkit) MountTarget(ctx context.Context, name string) (target *storage.MountTarget, err error) {
	ctx = t.context(ctx)
	defer recordTiming("volume_mount_target", &err)()
	if err = t.ensureBackend(); err != nil {
		return nil, err
	}
	return t.volumes.MountTarget(ctx, name)
}

// CreateSnapshot may return both a snapshot and an error when retention pruning was only
// partly successful.
func (t *Toolkit) CreateSnapshot(ctx context.Context, request SnapshotRequest) (snapshot *storage.Snapshot, err error) {
	ctx = t.context(ctx)
	defer recordTiming("snapshot_create", &err)()
	if err = t.ensureBackend(); err != nil {
		return nil, err
	}
	return t.snapshots.Create(ctx, request)
}

func (t *Toolkit) DeleteSnapshot(ctx context.Context, volume, name string) (err error) {
	ctx = t.context(ctx)
	defer recordTiming("snapshot_delete", &err)()
	if err = t.ensureBackend(); err != nil {
		return err
	}
	return t.snapshots.Delete(ctx, volume, name)
}

func (t *Toolkit) ListSnapshots(ctx context.Context, filter SnapshotFilter) (snapshots []*storage.Snapshot, err error) {
	ctx = t.context(ctx)
	defer recordTiming("snapshot_list", &err)()
	if err = t.ensureBackend(); err != nil {
		return nil, err
	}
	return t.snapshots.List(ctx, filter)
}

func (t *Toolkit) RestoreSnapshot(ctx context.Context, volume, name string) (err error) {
	ctx = t.context(ctx)
	defer recordTiming("snapshot_restore", &err)()
	if err = t.ensureBackend(); err != nil {
		return err
	}
	return t.snapshots.Restore(ctx, volume, name)
}

func (t *Toolkit) SyncSnapMirrorRelationship(ctx context.Context, uuid string, wait bool) (err error) {
	ctx = t.context(ctx)
	defer recordTiming("snapmirror_sync", &err)()
	return t.replicator.Trigger(ctx, storage.ReplicationSnapMirror, uuid, wait)
}

func (t *Toolkit) SyncCloudSyncRelationship(ctx context.Context, id string, wait bool) (err error) {
	ctx = t.context(ctx)
	defer recordTiming("cloudsync_sync", &err)()
	return t.replicator.Trigger(ctx, storage.ReplicationCloudSync, id, wait)
}

// SyncXCPJob runs an XCP sync of a previously copied catalog id and returns when it ends.
func (t *Toolkit) SyncXCPJob(ctx context.Context, id string) (err error) {
	ctx = t.context(ctx)
	defer recordTiming("xcp_sync", &err)()
	return t.replicator.Trigger(ctx, storage.ReplicationXCP, id, true)
}

func (t *Toolkit) ListSnapMirrorRelationships(ctx context.Context) (relationships []*storage.Relationship, err error) {
	ctx = t.context(ctx)
	defer recordTiming("snapmirror_list", &err)()
	backend, err := t.replicator.backend(storage.ReplicationSnapMirror)
	if err != nil {
		return nil, err
	}
	return backend.ListRelationships(ctx)
}
