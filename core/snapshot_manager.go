// Copyright 2025 NetApp, Inc. All Rights Reserved.

package core

import (
	"context"
	"strings"
	"time"

	. "github.com/netapp/dataops/logging"
	"github.com/netapp/dataops/storage"
	"github.com/netapp/dataops/utils/errors"
)

const defaultRetentionPrefix = "snapshot"

// SnapshotRequest describes a snapshot to create. With a retention policy Name is a prefix
// to which a timestamp is appended.
type SnapshotRequest struct {
	Volume    string
	Name      string
	Retention *storage.Retention
	Label     string
}

// SnapshotFilter narrows List. An empty Volume lists every snapshot.
type SnapshotFilter struct {
	Volume     string
	NamePrefix string
}

type SnapshotManager struct {
	volumes   storage.VolumeBackend
	snapshots storage.SnapshotBackend
	settings  Settings
}

func NewSnapshotManager(
	volumes storage.VolumeBackend, snapshots storage.SnapshotBackend, settings Settings,
) *SnapshotManager {
	return &SnapshotManager{volumes: volumes, snapshots: snapshots, settings: settings}
}

func (r *SnapshotRequest) validate() error {
	if r.Volume == "" {
		return errors.InvalidSnapshotParameterError("volume name is mandatory")
	}
	if strings.Contains(r.Name, "*") {
		return errors.InvalidSnapshotParameterError("snapshot name '%s' must not contain wildcards", r.Name)
	}
	if r.Retention != nil {
		if r.Retention.Count < 0 || r.Retention.Days < 0 {
			return errors.InvalidSnapshotParameterError("snapshot retention must not be negative")
		}
		if r.Retention.Count > 0 && r.Retention.Days > 0 {
			return errors.InvalidSnapshotParameterError("snapshot retention takes a count or a number of days, not both")
		}
	}
	return nil
}

// Create takes a snapshot and waits until it is Ready. When a retention policy is given the
// older snapshots sharing the prefix are pruned afterwards; pruning failures are combined
// and returned together with the new snapshot.
func (m *SnapshotManager) Create(ctx context.Context, request SnapshotRequest) (*storage.Snapshot, error) {
	if err := request.validate(); err != nil {
		return nil, err
	}

	if _, err := m.volumes.GetVolume(ctx, request.Volume); err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.WrapWithInvalidSnapshotParameterError(err, "volume %s does not exist", request.Volume)
		}
		return nil, err
	}

	now := m.settings.now()
	name := request.Name
	prefix := ""
	if !request.Retention.IsZero() {
		prefix = name
		if prefix == "" {
			prefix = defaultRetentionPrefix
		}
		name = storage.RetentionSnapshotName(prefix, now)
	} else if name == "" {
		name = storage.TimestampSnapshotName(now)
	}

	fields := LogFields{"volume": request.Volume, "snapshot": name}
	Logc(ctx).WithFields(fields).Debug("Creating snapshot.")

	if _, err := m.snapshots.CreateSnapshot(ctx, storage.SnapshotSpec{
		Volume: request.Volume,
		Name:   name,
		Label:  request.Label,
	}); err != nil {
		return nil, err
	}

	snapshot, err := waitForSnapshotReady(ctx, m.snapshots, request.Volume, name, m.settings.Snapshot)
	if err != nil {
		Logc(ctx).WithFields(fields).WithError(err).Error("Snapshot did not become ready.")
		return nil, err
	}
	Logc(ctx).WithFields(fields).Info("Snapshot created.")

	if prefix != "" {
		if pruneErr := m.prune(ctx, request.Volume, prefix, *request.Retention, snapshot.Name, now); pruneErr != nil {
			return snapshot, pruneErr
		}
	}
	return snapshot, nil
}

// prune deletes snapshots named <prefix>.<timestamp> beyond the retention policy. The
// snapshot just created is never a candidate.
func (m *SnapshotManager) prune(
	ctx context.Context, volume, prefix string, retention storage.Retention, keep string, now time.Time,
) error {
	all, err := m.snapshots.ListSnapshots(ctx, volume)
	if err != nil {
		return errors.WrapWithAPIConnectionError(err, "could not list snapshots for retention")
	}
	matched := storage.SnapshotsWithPrefix(all, prefix+".")

	var expired []*storage.Snapshot
	if retention.Count > 0 {
		if excess := len(matched) - retention.Count; excess > 0 {
			expired = matched[:excess]
		}
	} else if retention.Days > 0 {
		cutoff := now.AddDate(0, 0, -retention.Days)
		for _, snapshot := range matched {
			if snapshot.Created.Before(cutoff) {
				expired = append(expired, snapshot)
			}
		}
	}

	var errs []error
	for _, snapshot := range expired {
		if snapshot.Name == keep {
			continue
		}
		fields := LogFields{"volume": volume, "snapshot": snapshot.Name, "created": snapshot.Created}
		if err := m.Delete(ctx, volume, snapshot.Name); err != nil {
			Logc(ctx).WithFields(fields).WithError(err).Warning("Could not prune snapshot.")
			snapshotsPrunedTotal.WithLabelValues("false").Inc()
			errs = append(errs, err)
			continue
		}
		snapshotsPrunedTotal.WithLabelValues("true").Inc()
		Audit().Log(ctx, AuditSnapshotPrune, fields, "Snapshot pruned.")
	}
	return errors.Combine(errs...)
}

// Delete removes a snapshot and waits until it is gone. An absent snapshot is not an error.
func (m *SnapshotManager) Delete(ctx context.Context, volume, name string) error {
	if volume == "" || name == "" {
		return errors.InvalidSnapshotParameterError("volume and snapshot names are mandatory")
	}

	fields := LogFields{"volume": volume, "snapshot": name}
	if err := m.snapshots.DeleteSnapshot(ctx, volume, name); err != nil {
		if errors.IsNotFoundError(err) {
			Logc(ctx).WithFields(fields).Debug("Snapshot not found, nothing to delete.")
			return nil
		}
		return err
	}

	if err := waitForSnapshotGone(ctx, m.snapshots, volume, name, m.settings.Snapshot); err != nil {
		return err
	}

	Audit().Log(ctx, AuditSnapshotDelete, fields, "Snapshot deleted.")
	return nil
}

func (m *SnapshotManager) List(ctx context.Context, filter SnapshotFilter) ([]*storage.Snapshot, error) {
	snapshots, err := m.snapshots.ListSnapshots(ctx, filter.Volume)
	if err != nil {
		return nil, err
	}

	result := make([]*storage.Snapshot, 0, len(snapshots))
	for _, snapshot := range snapshots {
		if filter.Volume != "" && snapshot.Volume != filter.Volume {
			continue
		}
		if filter.NamePrefix != "" && !strings.HasPrefix(snapshot.Name, filter.NamePrefix) {
			continue
		}
		result = append(result, snapshot)
	}
	return result, nil
}

// Restore reverts a volume to a snapshot on backends that support in-place restore, then
// waits for the volume to be Ready again.
func (m *SnapshotManager) Restore(ctx context.Context, volume, name string) error {
	if volume == "" || name == "" {
		return errors.InvalidSnapshotParameterError("volume and snapshot names are mandatory")
	}
	restorer, ok := m.snapshots.(storage.SnapshotRestorer)
	if !ok {
		return errors.UnsupportedError("this backend cannot restore a volume from a snapshot in place")
	}

	if _, err := m.snapshots.GetSnapshot(ctx, volume, name); err != nil {
		if errors.IsNotFoundError(err) {
			return errors.WrapWithInvalidSnapshotParameterError(err, "snapshot %s does not exist on volume %s",
				name, volume)
		}
		return err
	}

	fields := LogFields{"volume": volume, "snapshot": name}
	if err := restorer.RestoreSnapshot(ctx, volume, name); err != nil {
		return err
	}
	if _, err := waitForVolumeReady(ctx, m.volumes, volume, m.settings.Volume); err != nil {
		return err
	}

	Audit().Log(ctx, AuditRestore, fields, "Volume restored from snapshot.")
	return nil
}

// resolve turns a wildcard name such as "daily*" into the newest snapshot with that prefix;
// other names must exist as given.
func (m *SnapshotManager) resolve(ctx context.Context, volume, name string) (*storage.Snapshot, error) {
	if !storage.IsWildcard(name) {
		snapshot, err := m.snapshots.GetSnapshot(ctx, volume, name)
		if errors.IsNotFoundError(err) {
			return nil, errors.WrapWithInvalidSnapshotParameterError(err, "snapshot %s does not exist on volume %s",
				name, volume)
		}
		return snapshot, err
	}

	snapshots, err := m.snapshots.ListSnapshots(ctx, volume)
	if err != nil {
		return nil, err
	}
	prefix := storage.WildcardPrefix(name)
	snapshot, ok := storage.NewestWithPrefix(snapshots, prefix)
	if !ok {
		return nil, errors.InvalidSnapshotParameterError("no snapshot of volume %s matches '%s'", volume, name)
	}
	Logc(ctx).WithFields(LogFields{"volume": volume, "pattern": name, "snapshot": snapshot.Name}).Debug(
		"Resolved snapshot wildcard.")
	return snapshot, nil
}
