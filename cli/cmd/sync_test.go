// Copyright 2025 NetApp, Inc. All Rights Reserved.

package cmd

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/netapp/dataops/storage"
	"github.com/netapp/dataops/storage_drivers/fake"
	"github.com/netapp/dataops/utils/errors"
)

func TestSyncSnapMirrorRelationship(t *testing.T) {
	backend := withFakeBackend(t)
	backend.AddRelationship(storage.Relationship{
		ID:      "uuid-1",
		Kind:    storage.ReplicationSnapMirror,
		Healthy: true,
		State:   storage.TransferStateIdle,
	},
		fake.RelationshipStatus{State: storage.TransferStateTransferring, Healthy: true},
		fake.RelationshipStatus{State: storage.TransferStateIdle, Healthy: true},
	)

	out, err := runCommand(t, "", "sync", "snapmirror-relationship", "--uuid", "uuid-1")
	require.NoError(t, err)
	assert.Contains(t, out, "started")

	out, err = runCommand(t, "", "sync", "snapmirror-relationship", "--uuid", "uuid-1", "--wait")
	require.NoError(t, err)
	assert.Contains(t, out, "completed")
	assert.Equal(t, 2, backend.Transfers("uuid-1"))

	_, err = runCommand(t, "", "sync", "snapmirror-relationship", "--uuid", "uuid-2")
	assert.True(t, errors.IsInvalidSnapMirrorParameterError(err))

	_, err = runCommand(t, "", "sync", "snapmirror-relationship")
	assert.True(t, errors.IsInvalidSnapMirrorParameterError(err))
}

func TestSyncSnapMirrorRelationship_Failed(t *testing.T) {
	backend := withFakeBackend(t)
	backend.AddRelationship(storage.Relationship{ID: "uuid-1", Kind: storage.ReplicationSnapMirror, Healthy: true},
		fake.RelationshipStatus{State: storage.TransferStateFailed, Message: "transfer aborted"},
	)

	_, err := runCommand(t, "", "sync", "snapmirror-relationship", "--uuid", "uuid-1", "-w")
	require.Error(t, err)
	assert.True(t, errors.IsSnapMirrorSyncOperationError(err))
}

func TestListSnapMirrorRelationships(t *testing.T) {
	backend := withFakeBackend(t)
	backend.AddRelationship(storage.Relationship{
		ID:          "uuid-1",
		Kind:        storage.ReplicationSnapMirror,
		Source:      storage.Endpoint{SVM: "svm0", Volume: "project1"},
		Destination: storage.Endpoint{SVM: "svm1", Volume: "project1_dr"},
		Policy:      "MirrorAllSnapshots",
		Healthy:     true,
		State:       storage.TransferStateIdle,
	})

	out, err := runCommand(t, "", "list", "snapmirror-relationships")
	require.NoError(t, err)
	assert.Contains(t, out, "svm0:project1")
	assert.Contains(t, out, "svm1:project1_dr")

	out, err = runCommand(t, "", "list", "snapmirror-relationships", "-o", "json")
	require.NoError(t, err)
	var response MultipleRelationshipResponse
	require.NoError(t, json.Unmarshal([]byte(out), &response))
	require.Len(t, response.Items, 1)
	assert.Equal(t, "MirrorAllSnapshots", response.Items[0].Policy)
}

func TestSyncCloudSyncRelationship(t *testing.T) {
	backend := withFakeBackend(t)
	backend.AddRelationship(storage.Relationship{ID: "cs-1", Kind: storage.ReplicationCloudSync, Healthy: true},
		fake.RelationshipStatus{State: storage.TransferStateIdle, Healthy: true},
	)

	out, err := runCommand(t, "", "sync", "cloud-sync-relationship", "--id", "cs-1", "--wait")
	require.NoError(t, err)
	assert.Contains(t, out, "Cloud Sync transfer of cs-1 completed.")

	_, err = runCommand(t, "", "sync", "cloud-sync-relationship")
	assert.True(t, errors.IsReplicationSyncError(err))
}

func TestSyncXCPJob(t *testing.T) {
	backend := withFakeBackend(t)
	backend.AddRelationship(storage.Relationship{ID: "autoname_copy_2025-03-01", Kind: storage.ReplicationXCP})

	out, err := runCommand(t, "", "sync", "xcp-job", "--id", "autoname_copy_2025-03-01")
	require.NoError(t, err)
	assert.Contains(t, out, "completed")
	assert.Equal(t, 1, backend.Transfers("autoname_copy_2025-03-01"))

	_, err = runCommand(t, "", "sync", "xcp-job")
	assert.Error(t, err)
}
