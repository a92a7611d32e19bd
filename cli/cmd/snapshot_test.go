// Copyright 2025 NetApp, Inc. All Rights Reserved.

package cmd

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/netapp/dataops/storage"
	"github.com/netapp/dataops/utils/errors"
)

func TestCreateSnapshot(t *testing.T) {
	backend := withFakeBackend(t)
	backend.AddVolume(storage.Volume{Name: testVolume, SizeBytes: 1 << 30, Phase: storage.VolumePhaseReady})

	out, err := runCommand(t, "", "create", "snapshot", "--volume", testVolume, "--name", testSnapshot,
		"--snapmirror-label", "daily", "-o", "json")
	require.NoError(t, err)

	var response MultipleSnapshotResponse
	require.NoError(t, json.Unmarshal([]byte(out), &response))
	require.Len(t, response.Items, 1)
	assert.Equal(t, testSnapshot, response.Items[0].Name)
	assert.Equal(t, testVolume, response.Items[0].Volume)
	assert.Equal(t, "daily", response.Items[0].Label)

	_, err = runCommand(t, "", "create", "snapshot", "--volume", testVolume, "--retention", "often")
	assert.ErrorContains(t, err, "invalid retention")

	_, err = runCommand(t, "", "create", "snapshot", "--volume", "missing")
	assert.Error(t, err)
}

func TestListSnapshots(t *testing.T) {
	backend := withFakeBackend(t)
	backend.AddVolume(storage.Volume{Name: testVolume, SizeBytes: 1 << 30, Phase: storage.VolumePhaseReady})
	created := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	backend.AddSnapshot(storage.Snapshot{Volume: testVolume, Name: "daily-1", Created: created,
		Phase: storage.SnapshotPhaseReady})
	backend.AddSnapshot(storage.Snapshot{Volume: testVolume, Name: "weekly-1", Created: created,
		Phase: storage.SnapshotPhaseReady})

	out, err := runCommand(t, "", "list", "snapshots", "--volume", testVolume)
	require.NoError(t, err)
	assert.Contains(t, out, "daily-1")
	assert.Contains(t, out, "2025-03-01 12:00:00")

	out, err = runCommand(t, "", "list", "snapshots", "--volume", testVolume, "--prefix", "weekly", "-o", "name")
	require.NoError(t, err)
	assert.Equal(t, "weekly-1\n", out)
}

func TestDeleteSnapshot(t *testing.T) {
	backend := withFakeBackend(t)
	backend.AddVolume(storage.Volume{Name: testVolume, SizeBytes: 1 << 30, Phase: storage.VolumePhaseReady})
	backend.AddSnapshot(storage.Snapshot{Volume: testVolume, Name: testSnapshot, Phase: storage.SnapshotPhaseReady})

	_, err := runCommand(t, "no\n", "delete", "snapshot", "--volume", testVolume, "--name", testSnapshot)
	assert.ErrorContains(t, err, "canceled")

	out, err := runCommand(t, "", "delete", "snapshot", "--volume", testVolume, "--name", testSnapshot, "-f",
		"-o", "json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"success","message":"Snapshot baseline deleted."}`, out)

	_, err = backend.GetSnapshot(context.Background(), testVolume, testSnapshot)
	assert.True(t, errors.IsNotFoundError(err))

	_, err = runCommand(t, "", "delete", "snapshot", "--volume", testVolume, "-f")
	assert.ErrorContains(t, err, "not specified")
}

func TestRestoreSnapshot(t *testing.T) {
	backend := withFakeBackend(t)
	backend.AddVolume(storage.Volume{Name: testVolume, SizeBytes: 1 << 30, Phase: storage.VolumePhaseReady})
	backend.AddSnapshot(storage.Snapshot{Volume: testVolume, Name: testSnapshot, Phase: storage.SnapshotPhaseReady})

	_, err := runCommand(t, "n\n", "restore", "snapshot", "--volume", testVolume, "--name", testSnapshot)
	assert.ErrorContains(t, err, "canceled")
	assert.NotContains(t, backend.Calls(), "RestoreSnapshot "+testVolume+"/"+testSnapshot)

	out, err := runCommand(t, "y\n", "restore", "snapshot", "--volume", testVolume, "--name", testSnapshot)
	require.NoError(t, err)
	assert.Contains(t, out, "restored to snapshot "+testSnapshot)

	_, err = runCommand(t, "", "restore", "snapshot", "--volume", testVolume, "--name", "missing", "--force")
	assert.Error(t, err)
}

func TestParseRetention(t *testing.T) {
	tests := []struct {
		value   string
		want    *storage.Retention
		wantErr bool
	}{
		{value: "", want: nil},
		{value: "5", want: &storage.Retention{Count: 5}},
		{value: "7d", want: &storage.Retention{Days: 7}},
		{value: "0", wantErr: true},
		{value: "-2", wantErr: true},
		{value: "d", wantErr: true},
		{value: "weekly", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			got, err := parseRetention(tt.value)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
