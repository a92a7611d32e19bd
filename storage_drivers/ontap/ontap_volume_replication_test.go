// Copyright 2025 NetApp, Inc. All Rights Reserved.

package ontap

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/netapp/dataops/pkg/convert"
	"github.com/netapp/dataops/storage"
	"github.com/netapp/dataops/storage_drivers/ontap/api"
	"github.com/netapp/dataops/utils/errors"
)

func TestGetRelationship(t *testing.T) {
	driver, mockAPI := newTestDriver(t)
	ctx := context.Background()

	mockAPI.EXPECT().SnapmirrorRelationshipGet(ctx, "r1").Return(&api.SnapmirrorRelationship{
		UUID:        "r1",
		Source:      &api.SnapmirrorEndpoint{Path: "svm0:vol1", Cluster: &api.NamedReference{Name: "cluster1"}},
		Destination: &api.SnapmirrorEndpoint{Path: "svm1:vol1_dst"},
		Policy:      &api.NamedReference{Name: "MirrorAllSnapshots"},
		Schedule:    "hourly",
		Healthy:     convert.ToPtr(false),
		Transfer:    &api.SnapmirrorTransfer{State: api.TransferStateFailed},
		UnhealthyReason: []api.UnhealthyReason{
			{Message: "transfer failed"}, {Message: ""}, {Message: "destination offline"},
		},
	}, nil)

	relationship, err := driver.GetRelationship(ctx, "r1")
	require.NoError(t, err)

	assert.Equal(t, storage.ReplicationSnapMirror, relationship.Kind)
	assert.Equal(t, storage.Endpoint{Cluster: "cluster1", SVM: "svm0", Volume: "vol1", Path: "svm0:vol1"},
		relationship.Source)
	assert.Equal(t, "vol1_dst", relationship.Destination.Volume)
	assert.Equal(t, "MirrorAllSnapshots", relationship.Policy)
	assert.Equal(t, "hourly", relationship.Schedule)
	assert.False(t, relationship.Healthy)
	assert.Equal(t, storage.TransferStateFailed, relationship.State)
	assert.Equal(t, "transfer failed; destination offline", relationship.Message)
}

func TestGetRelationship_NotFound(t *testing.T) {
	driver, mockAPI := newTestDriver(t)
	ctx := context.Background()

	mockAPI.EXPECT().SnapmirrorRelationshipGet(ctx, "r1").Return(nil, notFound())

	_, err := driver.GetRelationship(ctx, "r1")
	assert.True(t, errors.IsNotFoundError(err))
}

func TestListRelationships(t *testing.T) {
	driver, mockAPI := newTestDriver(t)
	ctx := context.Background()

	mockAPI.EXPECT().SnapmirrorRelationshipList(ctx).Return([]*api.SnapmirrorRelationship{
		{UUID: "r2", Destination: &api.SnapmirrorEndpoint{Path: "svm1:b"}, Healthy: convert.ToPtr(true)},
		{UUID: "r1", Destination: &api.SnapmirrorEndpoint{Path: "svm1:a"}, Healthy: convert.ToPtr(true)},
	}, nil)

	relationships, err := driver.ListRelationships(ctx)
	require.NoError(t, err)
	require.Len(t, relationships, 2)
	assert.Equal(t, "r1", relationships[0].ID)
	assert.True(t, relationships[0].Healthy)
	assert.Equal(t, storage.TransferStateIdle, relationships[0].State)
}

func TestStartTransfer(t *testing.T) {
	tests := []struct {
		name        string
		apiErr      error
		expectError bool
	}{
		{"started", nil, false},
		{
			"already transferring",
			api.NewRestErrorFromPayload(&api.Job{State: api.JobStateFailure, Code: 13303812}),
			false,
		},
		{
			"failed",
			api.NewRestErrorFromPayload(&api.Job{State: api.JobStateFailure, Code: 13303800}),
			true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			driver, mockAPI := newTestDriver(t)
			ctx := context.Background()

			mockAPI.EXPECT().SnapmirrorTransferStart(ctx, "r1").Return(tc.apiErr)

			err := driver.StartTransfer(ctx, "r1")
			if tc.expectError {
				assert.True(t, errors.IsAPIConnectionError(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTransferState(t *testing.T) {
	tests := map[string]storage.TransferState{
		"":                            storage.TransferStateIdle,
		api.TransferStateSuccess:      storage.TransferStateIdle,
		api.TransferStateQueued:       storage.TransferStateTransferring,
		api.TransferStateTransferring: storage.TransferStateTransferring,
		api.TransferStateFinalizing:   storage.TransferStateTransferring,
		api.TransferStateFailed:       storage.TransferStateFailed,
		api.TransferStateHardAborted:  storage.TransferStateFailed,
		"paused":                      storage.TransferState("paused"),
	}
	for state, expected := range tests {
		assert.Equal(t, expected, transferState(&api.SnapmirrorTransfer{State: state}), state)
	}
	assert.Equal(t, storage.TransferStateIdle, transferState(nil))
}
