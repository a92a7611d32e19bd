// Copyright 2025 NetApp, Inc. All Rights Reserved.

package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/netapp/dataops/storage"
	"github.com/netapp/dataops/utils/errors"
)

func seedSource(backend interface{ AddVolume(storage.Volume) }) {
	backend.AddVolume(storage.Volume{
		Name:            "v1",
		SizeBytes:       10 << 30,
		StorageClass:    "ontap-flexvol",
		UnixPermissions: "0755",
		ExportPolicy:    "default",
	})
}

func TestCloneVolume_FromExplicitSnapshot(t *testing.T) {
	toolkit, backend, _ := newTestToolkit()
	seedSource(backend)
	backend.AddSnapshot(storage.Snapshot{Name: "s1", Volume: "v1"})

	clone, err := toolkit.CloneVolume(ctx, CloneRequest{Name: "v2", SourceVolume: "v1", SourceSnapshot: "s1"})

	require.NoError(t, err)
	assert.Equal(t, &storage.ClonedFrom{SourceVolume: "v1", SourceSnapshot: "s1"}, clone.ClonedFrom)
	assert.Equal(t, uint64(10<<30), clone.SizeBytes)
	assert.Equal(t, "ontap-flexvol", clone.StorageClass, "placement is inherited from the source")
	assert.Equal(t, "0755", clone.UnixPermissions)
	assert.Equal(t, []string{"CreateVolume v2"}, backend.Calls(), "no implicit snapshot is taken")
}

func TestCloneVolume_FromCurrentState(t *testing.T) {
	toolkit, backend, _ := newTestToolkit()
	seedSource(backend)

	clone, err := toolkit.CloneVolume(ctx, CloneRequest{Name: "v2", SourceVolume: "v1"})

	require.NoError(t, err)
	assert.Equal(t, "v1", clone.ClonedFrom.SourceVolume)
	assert.Equal(t, "snapshot-20240601123045", clone.ClonedFrom.SourceSnapshot)
	assert.Equal(t, []string{"CreateSnapshot v1/snapshot-20240601123045", "CreateVolume v2"}, backend.Calls())
}

func TestCloneVolume_Wildcard(t *testing.T) {
	toolkit, backend, _ := newTestToolkit()
	seedSource(backend)

	base := testNow.Add(-time.Hour)
	backend.AddSnapshot(storage.Snapshot{Name: "daily.1", Volume: "v1", Created: base})
	backend.AddSnapshot(storage.Snapshot{Name: "daily.3", Volume: "v1", Created: base.Add(time.Minute)})
	backend.AddSnapshot(storage.Snapshot{Name: "daily.2", Volume: "v1", Created: base.Add(time.Minute)})
	backend.AddSnapshot(storage.Snapshot{Name: "weekly.1", Volume: "v1", Created: base.Add(time.Hour)})

	clone, err := toolkit.CloneVolume(ctx, CloneRequest{Name: "v2", SourceVolume: "v1", SourceSnapshot: "daily*"})

	require.NoError(t, err)
	assert.Equal(t, "daily.3", clone.ClonedFrom.SourceSnapshot)

	_, err = toolkit.CloneVolume(ctx, CloneRequest{Name: "v3", SourceVolume: "v1", SourceSnapshot: "hourly*"})
	assert.True(t, errors.IsInvalidSnapshotParameterError(err))
}

func TestCloneVolume_MissingSnapshot(t *testing.T) {
	toolkit, backend, _ := newTestToolkit()
	seedSource(backend)

	_, err := toolkit.CloneVolume(ctx, CloneRequest{Name: "v2", SourceVolume: "v1", SourceSnapshot: "nope"})

	assert.True(t, errors.IsInvalidSnapshotParameterError(err))
	assert.Empty(t, backend.Calls())
}

func TestCloneVolume_InvalidRequests(t *testing.T) {
	toolkit, backend, _ := newTestToolkit()
	seedSource(backend)

	tests := []struct {
		name    string
		request CloneRequest
	}{
		{"missing name", CloneRequest{SourceVolume: "v1"}},
		{"missing source", CloneRequest{Name: "v2"}},
		{"unknown source", CloneRequest{Name: "v2", SourceVolume: "v9"}},
		{"bad size", CloneRequest{Name: "v2", SourceVolume: "v1", Size: "big"}},
		{"smaller than source", CloneRequest{Name: "v2", SourceVolume: "v1", Size: "1GB"}},
		{"bad policy", CloneRequest{Name: "v2", SourceVolume: "v1", CleanupPolicy: "sometimes"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := toolkit.CloneVolume(ctx, tc.request)
			assert.True(t, errors.IsInvalidVolumeParameterError(err), "unexpected error: %v", err)
		})
	}
	assert.Empty(t, backend.Calls(), "validation happens before any snapshot is taken")
}

func TestCloneVolume_LargerSize(t *testing.T) {
	toolkit, backend, _ := newTestToolkit()
	seedSource(backend)

	clone, err := toolkit.CloneVolume(ctx, CloneRequest{Name: "v2", SourceVolume: "v1", Size: "1TB"})

	require.NoError(t, err)
	assert.Equal(t, uint64(1<<40), clone.SizeBytes)
}

func TestCloneVolume_CleanupPolicy(t *testing.T) {
	tests := []struct {
		policy            CleanupPolicy
		snapshotsExpected int
	}{
		{"", 1},
		{CleanupRetain, 1},
		{CleanupDeleteImplicitSnapshot, 0},
	}
	for _, tc := range tests {
		t.Run(string(tc.policy), func(t *testing.T) {
			toolkit, backend, _ := newTestToolkit()
			seedSource(backend)
			cloneErr := errors.APIConnectionError("aggregate is full")
			backend.FailNext("CreateVolume", cloneErr)

			_, err := toolkit.CloneVolume(ctx, CloneRequest{Name: "v2", SourceVolume: "v1", CleanupPolicy: tc.policy})

			assert.Equal(t, cloneErr, err)
			snapshots, _ := toolkit.ListSnapshots(ctx, SnapshotFilter{Volume: "v1"})
			assert.Len(t, snapshots, tc.snapshotsExpected)
		})
	}
}

func TestCloneVolume_CleanupNeverTouchesExplicitSnapshot(t *testing.T) {
	toolkit, backend, _ := newTestToolkit()
	seedSource(backend)
	backend.AddSnapshot(storage.Snapshot{Name: "s1", Volume: "v1"})
	backend.FailNext("CreateVolume", errors.APIConnectionError("aggregate is full"))

	_, err := toolkit.CloneVolume(ctx, CloneRequest{
		Name: "v2", SourceVolume: "v1", SourceSnapshot: "s1", CleanupPolicy: CleanupDeleteImplicitSnapshot,
	})

	assert.Error(t, err)
	snapshots, _ := toolkit.ListSnapshots(ctx, SnapshotFilter{Volume: "v1"})
	assert.Len(t, snapshots, 1)
}

func TestDeleteVolume_WithSourceSnapshot(t *testing.T) {
	toolkit, backend, _ := newTestToolkit()
	seedSource(backend)

	clone, err := toolkit.CloneVolume(ctx, CloneRequest{Name: "v2", SourceVolume: "v1"})
	require.NoError(t, err)

	require.NoError(t, toolkit.DeleteVolume(ctx, DeleteVolumeRequest{Name: "v2", DeleteSourceSnapshot: true}))

	calls := backend.Calls()
	assert.Equal(t, []string{"DeleteVolume v2", "DeleteSnapshot v1/" + clone.ClonedFrom.SourceSnapshot}, calls[2:])
	snapshots, _ := toolkit.ListSnapshots(ctx, SnapshotFilter{Volume: "v1"})
	assert.Empty(t, snapshots)
}

// create_volume -> create_snapshot -> clone_volume -> list_volumes
func TestEndToEnd(t *testing.T) {
	toolkit, _, _ := newTestToolkit()

	v1, err := toolkit.CreateVolume(ctx, storage.VolumeSpec{Name: "v1", Size: "10GB"})
	require.NoError(t, err)

	_, err = toolkit.CreateSnapshot(ctx, SnapshotRequest{Volume: "v1", Name: "s1"})
	require.NoError(t, err)

	v2, err := toolkit.CloneVolume(ctx, CloneRequest{Name: "v2", SourceVolume: "v1", SourceSnapshot: "s1"})
	require.NoError(t, err)
	assert.Equal(t, v1.SizeBytes, v2.SizeBytes)

	volumes, err := toolkit.ListVolumes(ctx, storage.VolumeFilter{})
	require.NoError(t, err)
	require.Len(t, volumes, 2)

	listed := volumes[1]
	assert.Equal(t, "v2", listed.Name)
	assert.True(t, listed.IsClone())
	assert.Equal(t, "v1", listed.ClonedFrom.SourceVolume)
	assert.Equal(t, "s1", listed.ClonedFrom.SourceSnapshot)
	assert.False(t, volumes[0].IsClone())
}
