// Copyright 2025 NetApp, Inc. All Rights Reserved.

package core

import (
	"context"
	"strconv"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/netapp/dataops/config"
	"github.com/netapp/dataops/pkg/poll"
	"github.com/netapp/dataops/storage"
	"github.com/netapp/dataops/utils/errors"
)

// recordTiming is used to record in Prometheus the total time taken for an operation as follows:
//
//	defer recordTiming("volume_create", &err)()
func recordTiming(operation string, err *error) func() {
	startTime := time.Now()
	return func() {
		endTimeMS := float64(time.Since(startTime).Milliseconds())
		operationDurationInMsSummary.WithLabelValues(operation, strconv.FormatBool(*err == nil)).Observe(endTimeMS)
	}
}

// Settings holds the polling behavior of every lifecycle manager.
type Settings struct {
	Volume      poll.Config
	Snapshot    poll.Config
	Replication poll.Config
	// Now stamps generated snapshot names and evaluates day-based retention.
	Now func() time.Time
}

func DefaultSettings() Settings {
	return Settings{
		Volume: poll.Config{
			Name:     "volume",
			Interval: config.VolumeReadyInterval,
			Timeout:  config.VolumeReadyTimeout,
		},
		Snapshot: poll.Config{
			Name:     "snapshot",
			Interval: config.SnapshotReadyInterval,
			Timeout:  config.SnapshotReadyTimeout,
		},
		Replication: poll.Config{
			Name:     "replication",
			Warmup:   config.ReplicationWarmup,
			Interval: config.ReplicationPollInterval,
			Timeout:  config.ReplicationTransferLimit,
		},
		Now: time.Now,
	}
}

// WithTimer returns a copy of s whose polls all use timer.
func (s Settings) WithTimer(timer backoff.Timer) Settings {
	s.Volume.Timer = timer
	s.Snapshot.Timer = timer
	s.Replication.Timer = timer
	return s
}

// WithTimeout returns a copy of s with every poll bounded by timeout. Zero means unbounded.
func (s Settings) WithTimeout(timeout time.Duration) Settings {
	s.Volume.Timeout = timeout
	s.Snapshot.Timeout = timeout
	s.Replication.Timeout = timeout
	return s
}

func (s Settings) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}

// waitForVolumeReady polls until the volume is Ready. A volume that turns Deleting or Gone
// while being created has regressed and fails the wait.
func waitForVolumeReady(
	ctx context.Context, backend storage.VolumeBackend, name string, cfg poll.Config,
) (*storage.Volume, error) {
	return poll.WaitUntil(ctx, func(ctx context.Context) (*storage.Volume, poll.Status, error) {
		volume, err := backend.GetVolume(ctx, name)
		if err != nil {
			return nil, poll.Pending, err
		}
		switch volume.Phase {
		case storage.VolumePhaseReady:
			return volume, poll.Done, nil
		case storage.VolumePhasePending:
			return volume, poll.Pending, nil
		default:
			if volume.Message == "" {
				volume.Message = "volume " + name + " is " + string(volume.Phase)
			}
			return volume, poll.Failed, nil
		}
	}, cfg)
}

// waitForVolumeGone polls until the volume no longer exists. Once Deleting has been seen a
// return to any other phase fails the wait.
func waitForVolumeGone(ctx context.Context, backend storage.VolumeBackend, name string, cfg poll.Config) error {
	seenDeleting := false
	_, err := poll.WaitUntil(ctx, func(ctx context.Context) (*storage.Volume, poll.Status, error) {
		volume, err := backend.GetVolume(ctx, name)
		if errors.IsNotFoundError(err) {
			return nil, poll.Done, nil
		} else if err != nil {
			return nil, poll.Pending, err
		}
		switch volume.Phase {
		case storage.VolumePhaseGone:
			return volume, poll.Done, nil
		case storage.VolumePhaseDeleting:
			seenDeleting = true
			return volume, poll.Pending, nil
		case storage.VolumePhaseFailed:
			return volume, poll.Failed, nil
		default:
			if seenDeleting {
				volume.Message = "volume " + name + " returned to " + string(volume.Phase) + " while deleting"
				return volume, poll.Failed, nil
			}
			return volume, poll.Pending, nil
		}
	}, cfg)
	return err
}

// waitForSnapshotReady polls until the snapshot can be used as a clone source.
func waitForSnapshotReady(
	ctx context.Context, backend storage.SnapshotBackend, volume, name string, cfg poll.Config,
) (*storage.Snapshot, error) {
	return poll.WaitUntil(ctx, func(ctx context.Context) (*storage.Snapshot, poll.Status, error) {
		snapshot, err := backend.GetSnapshot(ctx, volume, name)
		if err != nil {
			return nil, poll.Pending, err
		}
		switch snapshot.Phase {
		case storage.SnapshotPhaseReady:
			return snapshot, poll.Done, nil
		case storage.SnapshotPhaseCreating:
			return snapshot, poll.Pending, nil
		default:
			if snapshot.Message == "" {
				snapshot.Message = "snapshot " + name + " is " + string(snapshot.Phase)
			}
			return snapshot, poll.Failed, nil
		}
	}, cfg)
}

func waitForSnapshotGone(
	ctx context.Context, backend storage.SnapshotBackend, volume, name string, cfg poll.Config,
) error {
	seenDeleting := false
	_, err := poll.WaitUntil(ctx, func(ctx context.Context) (*storage.Snapshot, poll.Status, error) {
		snapshot, err := backend.GetSnapshot(ctx, volume, name)
		if errors.IsNotFoundError(err) {
			return nil, poll.Done, nil
		} else if err != nil {
			return nil, poll.Pending, err
		}
		switch snapshot.Phase {
		case storage.SnapshotPhaseGone:
			return snapshot, poll.Done, nil
		case storage.SnapshotPhaseDeleting:
			seenDeleting = true
			return snapshot, poll.Pending, nil
		case storage.SnapshotPhaseFailed:
			return snapshot, poll.Failed, nil
		default:
			if seenDeleting {
				snapshot.Message = "snapshot " + name + " returned to " + string(snapshot.Phase) + " while deleting"
				return snapshot, poll.Failed, nil
			}
			return snapshot, poll.Pending, nil
		}
	}, cfg)
	return err
}
