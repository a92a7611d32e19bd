// Copyright 2025 NetApp, Inc. All Rights Reserved.

package core

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/netapp/dataops/config"
	"github.com/netapp/dataops/pkg/poll"
	"github.com/netapp/dataops/storage"
	"github.com/netapp/dataops/storage_drivers/fake"
	"github.com/netapp/dataops/utils/errors"
)

func TestDefaultSettings(t *testing.T) {
	settings := DefaultSettings()

	assert.Equal(t, config.VolumeReadyInterval, settings.Volume.Interval)
	assert.Equal(t, config.SnapshotReadyTimeout, settings.Snapshot.Timeout)
	assert.Equal(t, config.ReplicationWarmup, settings.Replication.Warmup)
	assert.Equal(t, config.ReplicationPollInterval, settings.Replication.Interval)

	timer := poll.NewRecordingTimer()
	withTimer := settings.WithTimer(timer).WithTimeout(time.Minute)
	assert.Equal(t, timer, withTimer.Volume.Timer)
	assert.Equal(t, timer, withTimer.Replication.Timer)
	assert.Equal(t, time.Minute, withTimer.Snapshot.Timeout)
	assert.Nil(t, settings.Volume.Timer, "the original settings are not modified")
}

func TestSettingsNow(t *testing.T) {
	fixed := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	assert.Equal(t, fixed, Settings{Now: func() time.Time { return fixed }}.now())
	assert.False(t, Settings{}.now().IsZero())
}

func TestRecordTiming(t *testing.T) {
	var err error
	recordTiming("common_test", &err)()
	err = fmt.Errorf("failed")
	recordTiming("common_test", &err)()

	assert.GreaterOrEqual(t, testutil.CollectAndCount(operationDurationInMsSummary), 2)
}

func TestWaitForVolumeGone_Regression(t *testing.T) {
	backend := fakeBackendWithPhases(storage.VolumePhaseDeleting, storage.VolumePhaseReady)
	_, err := backend.CreateVolume(context.Background(), storage.VolumeSpec{Name: "v1", SizeBytes: 1 << 30})
	require.NoError(t, err)

	cfg := testSettings(poll.NewRecordingTimer()).Volume
	err = waitForVolumeGone(context.Background(), backend, "v1", cfg)
	assert.True(t, errors.IsTerminalStateError(err), "returning to Ready while deleting is a failure, got %v", err)
	assert.Contains(t, err.Error(), "returned to Ready")
}

func TestWaitForVolumeGone_Failed(t *testing.T) {
	backend := fake.NewBackend()
	backend.AddVolume(storage.Volume{Name: "v1", Phase: storage.VolumePhaseFailed})

	cfg := testSettings(poll.NewRecordingTimer()).Volume
	err := waitForVolumeGone(context.Background(), backend, "v1", cfg)
	assert.True(t, errors.IsTerminalStateError(err))
}

func TestWaitForSnapshotReady_Failed(t *testing.T) {
	backend := fake.NewBackend()
	backend.AddVolume(storage.Volume{Name: "v1", Phase: storage.VolumePhaseReady})
	backend.AddSnapshot(storage.Snapshot{Volume: "v1", Name: "s1", Phase: storage.SnapshotPhaseFailed})

	cfg := testSettings(poll.NewRecordingTimer()).Snapshot
	_, err := waitForSnapshotReady(context.Background(), backend, "v1", "s1", cfg)
	require.Error(t, err)
	assert.True(t, errors.IsTerminalStateError(err))
	assert.Contains(t, err.Error(), "Failed")
}
