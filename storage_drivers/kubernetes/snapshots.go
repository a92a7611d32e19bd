// Copyright 2025 NetApp, Inc. All Rights Reserved.

package kubernetes

import (
	"context"
	"sort"
	"time"

	snapshotv1 "github.com/kubernetes-csi/external-snapshotter/client/v8/apis/volumesnapshot/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/utils/ptr"

	. "github.com/netapp/dataops/logging"
	"github.com/netapp/dataops/storage"
	"github.com/netapp/dataops/utils/errors"
)

// CreateSnapshot creates a VolumeSnapshot of the named PVC. SnapMirror labels have no meaning
// here and are ignored.
func (d *Driver) CreateSnapshot(ctx context.Context, spec storage.SnapshotSpec) (*storage.Snapshot, error) {
	if spec.Label != "" {
		Logc(ctx).WithField("label", spec.Label).Debug("Ignoring SnapMirror label for VolumeSnapshot.")
	}

	volumeSnapshot := &snapshotv1.VolumeSnapshot{
		ObjectMeta: metav1.ObjectMeta{
			Name:      spec.Name,
			Namespace: d.config.Namespace,
			Labels:    createdByLabels(),
		},
		Spec: snapshotv1.VolumeSnapshotSpec{
			VolumeSnapshotClassName: ptr.To(d.config.VolumeSnapshotClass),
			Source: snapshotv1.VolumeSnapshotSource{
				PersistentVolumeClaimName: ptr.To(spec.Volume),
			},
		},
	}

	created, err := d.snapClient.SnapshotV1().VolumeSnapshots(d.config.Namespace).Create(
		ctx, volumeSnapshot, metav1.CreateOptions{})
	if err != nil {
		return nil, classifyError(err, "could not create VolumeSnapshot %s", spec.Name)
	}

	Logc(ctx).WithFields(LogFields{
		"snapshot":      spec.Name,
		"pvc":           spec.Volume,
		"snapshotClass": d.config.VolumeSnapshotClass,
	}).Info("Created VolumeSnapshot.")

	return snapshotFromVolumeSnapshot(created), nil
}

// snapshotErrorGracePeriod is how long status.error must persist before a VolumeSnapshot that
// is not ready counts as failed. The snapshot controller sets and later clears it on retryable
// failures.
const snapshotErrorGracePeriod = 2 * time.Minute

func snapshotFromVolumeSnapshot(volumeSnapshot *snapshotv1.VolumeSnapshot) *storage.Snapshot {
	snapshot := &storage.Snapshot{
		Name:    volumeSnapshot.Name,
		Created: volumeSnapshot.CreationTimestamp.UTC(),
		Phase:   storage.SnapshotPhaseCreating,
	}
	if volumeSnapshot.Spec.Source.PersistentVolumeClaimName != nil {
		snapshot.Volume = *volumeSnapshot.Spec.Source.PersistentVolumeClaimName
	}

	status := volumeSnapshot.Status
	if status != nil {
		if status.BoundVolumeSnapshotContentName != nil {
			snapshot.ID = *status.BoundVolumeSnapshotContentName
		}
		if status.CreationTime != nil {
			snapshot.Created = status.CreationTime.UTC()
		}
		if status.RestoreSize != nil {
			snapshot.SizeBytes = uint64(status.RestoreSize.Value())
		}
		switch {
		case status.ReadyToUse != nil && *status.ReadyToUse:
			snapshot.Phase = storage.SnapshotPhaseReady
		case status.Error != nil:
			if status.Error.Message != nil {
				snapshot.Message = *status.Error.Message
			}
			if status.Error.Time != nil && time.Since(status.Error.Time.Time) >= snapshotErrorGracePeriod {
				snapshot.Phase = storage.SnapshotPhaseFailed
			}
		}
	}

	if volumeSnapshot.DeletionTimestamp != nil {
		snapshot.Phase = storage.SnapshotPhaseDeleting
	}
	return snapshot
}

// getVolumeSnapshot fetches a VolumeSnapshot and checks that it belongs to the named PVC.
func (d *Driver) getVolumeSnapshot(ctx context.Context, volume, name string) (*storage.Snapshot, error) {
	volumeSnapshot, err := d.snapClient.SnapshotV1().VolumeSnapshots(d.config.Namespace).Get(
		ctx, name, metav1.GetOptions{})
	if err != nil {
		return nil, classifyError(err, "could not get VolumeSnapshot %s", name)
	}

	snapshot := snapshotFromVolumeSnapshot(volumeSnapshot)
	if volume != "" && snapshot.Volume != volume {
		return nil, errors.WrapWithAPIConnectionError(
			errors.NotFoundError("VolumeSnapshot %s does not belong to PersistentVolumeClaim %s", name, volume),
			"could not get VolumeSnapshot %s", name)
	}
	return snapshot, nil
}

func (d *Driver) GetSnapshot(ctx context.Context, volume, name string) (*storage.Snapshot, error) {
	return d.getVolumeSnapshot(ctx, volume, name)
}

// DeleteSnapshot deletes a VolumeSnapshot owned by the named PVC.
func (d *Driver) DeleteSnapshot(ctx context.Context, volume, name string) error {
	if _, err := d.getVolumeSnapshot(ctx, volume, name); err != nil {
		return err
	}

	err := d.snapClient.SnapshotV1().VolumeSnapshots(d.config.Namespace).Delete(ctx, name, metav1.DeleteOptions{})
	if err != nil {
		return classifyError(err, "could not delete VolumeSnapshot %s", name)
	}

	Logc(ctx).WithFields(LogFields{"snapshot": name, "pvc": volume}).Info("Deleted VolumeSnapshot.")
	return nil
}

// ListSnapshots returns the VolumeSnapshots of the named PVC, or all of them in the namespace.
func (d *Driver) ListSnapshots(ctx context.Context, volume string) ([]*storage.Snapshot, error) {
	list, err := d.snapClient.SnapshotV1().VolumeSnapshots(d.config.Namespace).List(ctx, metav1.ListOptions{})
	if err != nil {
		return nil, classifyError(err, "could not list VolumeSnapshots")
	}

	result := make([]*storage.Snapshot, 0, len(list.Items))
	for i := range list.Items {
		snapshot := snapshotFromVolumeSnapshot(&list.Items[i])
		if volume == "" || snapshot.Volume == volume {
			result = append(result, snapshot)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		if result[i].Volume != result[j].Volume {
			return result[i].Volume < result[j].Volume
		}
		return result[i].Name < result[j].Name
	})

	return result, nil
}
