// Copyright 2025 NetApp, Inc. All Rights Reserved.

// Package fake is an in-memory storage backend. Tests script the phases that successive
// reads report so that readiness polling can be exercised without a control plane.
package fake

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	. "github.com/netapp/dataops/logging"
	"github.com/netapp/dataops/storage"
	storagedrivers "github.com/netapp/dataops/storage_drivers"
	"github.com/netapp/dataops/utils/errors"
)

const BackendName = storagedrivers.FakeStorageDriverName

// RelationshipStatus is one scripted observation of a replication relationship.
type RelationshipStatus struct {
	State   storage.TransferState
	Healthy bool
	Message string
}

type volumeRecord struct {
	volume storage.Volume
	phases []storage.VolumePhase
	// deleteReads counts reads that still see the volume after a delete request.
	deleteReads int
	deleting    bool
}

type snapshotRecord struct {
	snapshot    storage.Snapshot
	phases      []storage.SnapshotPhase
	deleteReads int
	deleting    bool
}

type relationshipRecord struct {
	relationship storage.Relationship
	script       []RelationshipStatus
	transfers    int
}

// Backend implements storage.Backend, storage.SnapshotRestorer and
// storage.ReplicationBackend.
type Backend struct {
	mu sync.Mutex

	volumes       map[string]*volumeRecord
	volumeOrder   []string
	snapshots     map[string][]*snapshotRecord
	relationships map[string]*relationshipRecord

	volumePhases   []storage.VolumePhase
	snapshotPhases []storage.SnapshotPhase
	deleteReads    int

	failures map[string]error
	calls    []string

	now func() time.Time
}

// NewBackend returns an empty backend whose clock advances one second per call, so that
// snapshot creation times are distinct and ordered.
func NewBackend() *Backend {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	tick := 0
	return &Backend{
		volumes:       make(map[string]*volumeRecord),
		snapshots:     make(map[string][]*snapshotRecord),
		relationships: make(map[string]*relationshipRecord),
		failures:      make(map[string]error),
		now: func() time.Time {
			tick++
			return base.Add(time.Duration(tick) * time.Second)
		},
	}
}

func (b *Backend) Name() string {
	return BackendName
}

// SetClock replaces the clock used to stamp new snapshots.
func (b *Backend) SetClock(now func() time.Time) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.now = now
}

// ScriptVolumePhases sets the phases reported by successive GetVolume calls on volumes
// created from now on. The last phase sticks; with no script volumes are Ready at once.
func (b *Backend) ScriptVolumePhases(phases ...storage.VolumePhase) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.volumePhases = phases
}

// ScriptSnapshotPhases is ScriptVolumePhases for snapshots.
func (b *Backend) ScriptSnapshotPhases(phases ...storage.SnapshotPhase) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.snapshotPhases = phases
}

// SetDeleteReads makes deleted resources visible, in a Deleting phase, to n further reads.
func (b *Backend) SetDeleteReads(n int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.deleteReads = n
}

// FailNext makes the next call of the named method, e.g. "CreateVolume", return err.
func (b *Backend) FailNext(method string, err error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.failures[method] = err
}

// Calls returns every mutating call made so far, e.g. "DeleteSnapshot v1/s1".
func (b *Backend) Calls() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.calls...)
}

// AddVolume seeds a Ready volume.
func (b *Backend) AddVolume(volume storage.Volume) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if volume.Phase == "" {
		volume.Phase = storage.VolumePhaseReady
	}
	b.putVolume(&volumeRecord{volume: volume})
}

// AddSnapshot seeds a Ready snapshot.
func (b *Backend) AddSnapshot(snapshot storage.Snapshot) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if snapshot.Phase == "" {
		snapshot.Phase = storage.SnapshotPhaseReady
	}
	if snapshot.Created.IsZero() {
		snapshot.Created = b.now()
	}
	b.snapshots[snapshot.Volume] = append(b.snapshots[snapshot.Volume], &snapshotRecord{snapshot: snapshot})
}

// AddRelationship seeds a relationship. After each StartTransfer, successive
// GetRelationship calls report the scripted statuses in order; the last one sticks.
func (b *Backend) AddRelationship(relationship storage.Relationship, script ...RelationshipStatus) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.relationships[relationship.ID] = &relationshipRecord{relationship: relationship, script: script}
}

// Transfers returns how many transfers were started on a relationship.
func (b *Backend) Transfers(id string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	if rec, ok := b.relationships[id]; ok {
		return rec.transfers
	}
	return 0
}

func (b *Backend) putVolume(rec *volumeRecord) {
	if _, ok := b.volumes[rec.volume.Name]; !ok {
		b.volumeOrder = append(b.volumeOrder, rec.volume.Name)
	}
	b.volumes[rec.volume.Name] = rec
}

func (b *Backend) removeVolume(name string) {
	delete(b.volumes, name)
	for i, n := range b.volumeOrder {
		if n == name {
			b.volumeOrder = append(b.volumeOrder[:i], b.volumeOrder[i+1:]...)
			break
		}
	}
}

// injected returns and clears a failure registered with FailNext.
func (b *Backend) injected(method string) error {
	if err, ok := b.failures[method]; ok {
		delete(b.failures, method)
		return err
	}
	return nil
}

func (b *Backend) record(format string, a ...any) {
	b.calls = append(b.calls, fmt.Sprintf(format, a...))
}

// ///////////////////////////////////////////////////////////////////////////
// Volumes
// ///////////////////////////////////////////////////////////////////////////

func (b *Backend) CreateVolume(ctx context.Context, spec storage.VolumeSpec) (*storage.Volume, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.injected("CreateVolume"); err != nil {
		return nil, err
	}
	if _, ok := b.volumes[spec.Name]; ok {
		return nil, errors.AlreadyExistsError("volume %s already exists", spec.Name)
	}

	volume := storage.Volume{
		Name:            spec.Name,
		ID:              fmt.Sprintf("fake-%s", spec.Name),
		SizeBytes:       spec.SizeBytes,
		Type:            spec.Type,
		StorageClass:    spec.StorageClass,
		Aggregates:      spec.Aggregates,
		CapacityPool:    spec.CapacityPool,
		Protocols:       spec.Protocols,
		UnixUID:         spec.UnixUID,
		UnixGID:         spec.UnixGID,
		UnixPermissions: spec.UnixPermissions,
		ExportPolicy:    spec.ExportPolicy,
		SnapshotPolicy:  spec.SnapshotPolicy,
		SecurityStyle:   spec.SecurityStyle,
		Phase:           storage.VolumePhaseReady,
		MountTarget:     &storage.MountTarget{Server: "127.0.0.1", Path: "/" + spec.Name},
	}

	if spec.ClonedFrom != nil {
		source, ok := b.volumes[spec.ClonedFrom.SourceVolume]
		if !ok || source.deleting {
			return nil, errors.NotFoundError("clone source volume %s not found", spec.ClonedFrom.SourceVolume)
		}
		if spec.ClonedFrom.SourceSnapshot != "" && b.findSnapshot(spec.ClonedFrom.SourceVolume,
			spec.ClonedFrom.SourceSnapshot) == nil {
			return nil, errors.NotFoundError("clone source snapshot %s not found", spec.ClonedFrom.SourceSnapshot)
		}
		if volume.SizeBytes < source.volume.SizeBytes {
			volume.SizeBytes = source.volume.SizeBytes
		}
		cloned := *spec.ClonedFrom
		volume.ClonedFrom = &cloned
	}

	rec := &volumeRecord{volume: volume}
	if len(b.volumePhases) > 0 {
		rec.phases = append([]storage.VolumePhase(nil), b.volumePhases...)
		rec.volume.Phase = rec.phases[0]
	}
	b.putVolume(rec)
	b.record("CreateVolume %s", spec.Name)

	Logc(ctx).WithField("volume", spec.Name).Debug("Fake volume created.")

	result := rec.volume
	return &result, nil
}

func (b *Backend) GetVolume(_ context.Context, name string) (*storage.Volume, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.injected("GetVolume"); err != nil {
		return nil, err
	}
	rec, ok := b.volumes[name]
	if !ok {
		return nil, errors.NotFoundError("volume %s not found", name)
	}

	if rec.deleting {
		if rec.deleteReads <= 0 {
			b.removeVolume(name)
			return nil, errors.NotFoundError("volume %s not found", name)
		}
		rec.deleteReads--
		rec.volume.Phase = storage.VolumePhaseDeleting
	} else if len(rec.phases) > 0 {
		rec.volume.Phase = rec.phases[0]
		if len(rec.phases) > 1 {
			rec.phases = rec.phases[1:]
		}
	}

	result := rec.volume
	return &result, nil
}

func (b *Backend) DeleteVolume(ctx context.Context, name string, force bool) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.injected("DeleteVolume"); err != nil {
		return err
	}
	rec, ok := b.volumes[name]
	if !ok || rec.deleting {
		return errors.NotFoundError("volume %s not found", name)
	}
	for _, rel := range b.relationships {
		if rel.relationship.Source.Volume == name || rel.relationship.Destination.Volume == name {
			return errors.APIConnectionError("volume %s is part of replication relationship %s",
				name, rel.relationship.ID)
		}
	}

	b.record("DeleteVolume %s", name)
	Logc(ctx).WithFields(LogFields{"volume": name, "force": force}).Debug("Fake volume deleted.")

	if b.deleteReads == 0 {
		b.removeVolume(name)
		return nil
	}
	rec.deleting = true
	rec.deleteReads = b.deleteReads
	return nil
}

func (b *Backend) ListVolumes(_ context.Context, filter storage.VolumeFilter) ([]*storage.Volume, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.injected("ListVolumes"); err != nil {
		return nil, err
	}
	volumes := make([]*storage.Volume, 0, len(b.volumeOrder))
	for _, name := range b.volumeOrder {
		rec := b.volumes[name]
		if rec.deleting && rec.deleteReads <= 0 {
			continue
		}
		volume := rec.volume
		if filter.Matches(&volume) {
			volumes = append(volumes, &volume)
		}
	}
	return volumes, nil
}

// ///////////////////////////////////////////////////////////////////////////
// Snapshots
// ///////////////////////////////////////////////////////////////////////////

func (b *Backend) findSnapshot(volume, name string) *snapshotRecord {
	for _, rec := range b.snapshots[volume] {
		if rec.snapshot.Name == name {
			return rec
		}
	}
	return nil
}

func (b *Backend) removeSnapshot(volume, name string) {
	records := b.snapshots[volume]
	for i, rec := range records {
		if rec.snapshot.Name == name {
			b.snapshots[volume] = append(records[:i], records[i+1:]...)
			return
		}
	}
}

func (b *Backend) CreateSnapshot(ctx context.Context, spec storage.SnapshotSpec) (*storage.Snapshot, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.injected("CreateSnapshot"); err != nil {
		return nil, err
	}
	source, ok := b.volumes[spec.Volume]
	if !ok || source.deleting {
		return nil, errors.NotFoundError("volume %s not found", spec.Volume)
	}
	if b.findSnapshot(spec.Volume, spec.Name) != nil {
		return nil, errors.AlreadyExistsError("snapshot %s already exists on volume %s", spec.Name, spec.Volume)
	}

	rec := &snapshotRecord{snapshot: storage.Snapshot{
		Name:      spec.Name,
		Volume:    spec.Volume,
		ID:        fmt.Sprintf("fake-%s-%s", spec.Volume, spec.Name),
		Created:   b.now(),
		SizeBytes: source.volume.SizeBytes,
		Phase:     storage.SnapshotPhaseReady,
		Label:     spec.Label,
	}}
	if len(b.snapshotPhases) > 0 {
		rec.phases = append([]storage.SnapshotPhase(nil), b.snapshotPhases...)
		rec.snapshot.Phase = rec.phases[0]
	}
	b.snapshots[spec.Volume] = append(b.snapshots[spec.Volume], rec)
	b.record("CreateSnapshot %s/%s", spec.Volume, spec.Name)

	Logc(ctx).WithFields(LogFields{"volume": spec.Volume, "snapshot": spec.Name}).Debug("Fake snapshot created.")

	result := rec.snapshot
	return &result, nil
}

func (b *Backend) GetSnapshot(_ context.Context, volume, name string) (*storage.Snapshot, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.injected("GetSnapshot"); err != nil {
		return nil, err
	}
	rec := b.findSnapshot(volume, name)
	if rec == nil {
		return nil, errors.NotFoundError("snapshot %s not found on volume %s", name, volume)
	}

	if rec.deleting {
		if rec.deleteReads <= 0 {
			b.removeSnapshot(volume, name)
			return nil, errors.NotFoundError("snapshot %s not found on volume %s", name, volume)
		}
		rec.deleteReads--
		rec.snapshot.Phase = storage.SnapshotPhaseDeleting
	} else if len(rec.phases) > 0 {
		rec.snapshot.Phase = rec.phases[0]
		if len(rec.phases) > 1 {
			rec.phases = rec.phases[1:]
		}
	}

	result := rec.snapshot
	return &result, nil
}

func (b *Backend) DeleteSnapshot(ctx context.Context, volume, name string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.injected("DeleteSnapshot"); err != nil {
		return err
	}
	rec := b.findSnapshot(volume, name)
	if rec == nil || rec.deleting {
		return errors.NotFoundError("snapshot %s not found on volume %s", name, volume)
	}
	for _, v := range b.volumes {
		if cf := v.volume.ClonedFrom; cf != nil && cf.SourceVolume == volume && cf.SourceSnapshot == name {
			return errors.APIConnectionError("snapshot %s is in use by clone %s", name, v.volume.Name)
		}
	}

	b.record("DeleteSnapshot %s/%s", volume, name)
	Logc(ctx).WithFields(LogFields{"volume": volume, "snapshot": name}).Debug("Fake snapshot deleted.")

	if b.deleteReads == 0 {
		b.removeSnapshot(volume, name)
		return nil
	}
	rec.deleting = true
	rec.deleteReads = b.deleteReads
	return nil
}

func (b *Backend) ListSnapshots(_ context.Context, volume string) ([]*storage.Snapshot, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.injected("ListSnapshots"); err != nil {
		return nil, err
	}

	var volumes []string
	if volume != "" {
		volumes = []string{volume}
	} else {
		for name := range b.snapshots {
			volumes = append(volumes, name)
		}
		sort.Strings(volumes)
	}

	snapshots := make([]*storage.Snapshot, 0)
	for _, v := range volumes {
		for _, rec := range b.snapshots[v] {
			if rec.deleting && rec.deleteReads <= 0 {
				continue
			}
			snapshot := rec.snapshot
			snapshots = append(snapshots, &snapshot)
		}
	}
	return snapshots, nil
}

func (b *Backend) RestoreSnapshot(ctx context.Context, volume, name string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.injected("RestoreSnapshot"); err != nil {
		return err
	}
	rec := b.findSnapshot(volume, name)
	if rec == nil {
		return errors.NotFoundError("snapshot %s not found on volume %s", name, volume)
	}

	// Snapshots newer than the restored one are discarded, as a volume revert does.
	var kept []*snapshotRecord
	for _, r := range b.snapshots[volume] {
		if !r.snapshot.Created.After(rec.snapshot.Created) {
			kept = append(kept, r)
		}
	}
	b.snapshots[volume] = kept
	b.record("RestoreSnapshot %s/%s", volume, name)

	Logc(ctx).WithFields(LogFields{"volume": volume, "snapshot": name}).Debug("Fake snapshot restored.")
	return nil
}

// ///////////////////////////////////////////////////////////////////////////
// Replication
// ///////////////////////////////////////////////////////////////////////////

func (b *Backend) GetRelationship(_ context.Context, id string) (*storage.Relationship, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.injected("GetRelationship"); err != nil {
		return nil, err
	}
	rec, ok := b.relationships[id]
	if !ok {
		return nil, errors.NotFoundError("relationship %s not found", id)
	}

	if rec.transfers > 0 && len(rec.script) > 0 {
		status := rec.script[0]
		if len(rec.script) > 1 {
			rec.script = rec.script[1:]
		}
		rec.relationship.State = status.State
		rec.relationship.Healthy = status.Healthy
		rec.relationship.Message = status.Message
	}

	result := rec.relationship
	return &result, nil
}

func (b *Backend) ListRelationships(_ context.Context) ([]*storage.Relationship, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.injected("ListRelationships"); err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(b.relationships))
	for id := range b.relationships {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	relationships := make([]*storage.Relationship, 0, len(ids))
	for _, id := range ids {
		relationship := b.relationships[id].relationship
		relationships = append(relationships, &relationship)
	}
	return relationships, nil
}

func (b *Backend) StartTransfer(ctx context.Context, id string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.injected("StartTransfer"); err != nil {
		return err
	}
	rec, ok := b.relationships[id]
	if !ok {
		return errors.NotFoundError("relationship %s not found", id)
	}
	rec.transfers++
	b.record("StartTransfer %s", id)

	Logc(ctx).WithField("relationship", id).Debug("Fake transfer started.")
	return nil
}
