// Copyright 2025 NetApp, Inc. All Rights Reserved.

package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrappedErrorMessage(t *testing.T) {
	inner := New("connection refused")

	assert.Equal(t, "volume v1 not found", NotFoundError("volume %s not found", "v1").Error())
	assert.Equal(t, "100% full", NotFoundError("100% full").Error(), "no args should not format")
	assert.Equal(t, "could not list volumes; connection refused",
		WrapWithAPIConnectionError(inner, "could not list volumes").Error())
	assert.Equal(t, "connection refused", WrapWithAPIConnectionError(inner, "").Error())
	assert.Equal(t, "outer", WrapWithAPIConnectionError(nil, "outer").Error())
}

func TestErrorPredicates(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		check func(error) bool
	}{
		{"not found", NotFoundError("x"), IsNotFoundError},
		{"already exists", AlreadyExistsError("x"), IsAlreadyExistsError},
		{"unsupported", UnsupportedError("x"), IsUnsupportedError},
		{"timeout", TimeoutError("x"), IsTimeoutError},
		{"terminal state", TerminalStateError("x"), IsTerminalStateError},
		{"invalid config", InvalidConfigError("x"), IsInvalidConfigError},
		{"api connection", APIConnectionError("x"), IsAPIConnectionError},
		{"invalid volume parameter", InvalidVolumeParameterError("x"), IsInvalidVolumeParameterError},
		{"invalid snapshot parameter", InvalidSnapshotParameterError("x"), IsInvalidSnapshotParameterError},
		{"invalid snapmirror parameter", InvalidSnapMirrorParameterError("x"), IsInvalidSnapMirrorParameterError},
		{"mount operation", MountOperationError("x"), IsMountOperationError},
		{"connection type", ConnectionTypeError("zapi"), IsConnectionTypeError},
		{"snapmirror sync", SnapMirrorSyncOperationError("x"), IsSnapMirrorSyncOperationError},
		{"cloud sync sync", CloudSyncSyncOperationError("x"), IsCloudSyncSyncOperationError},
		{"replication sync", ReplicationSyncError("x"), IsReplicationSyncError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.True(t, tc.check(tc.err))
			assert.True(t, tc.check(fmt.Errorf("wrapped: %w", tc.err)), "predicate should see through wrapping")
			assert.False(t, tc.check(nil))
			assert.False(t, tc.check(New("plain")))
		})
	}
}

func TestAPIConnectionErrorPreservesCause(t *testing.T) {
	err := WrapWithAPIConnectionError(NotFoundError("volume v1 not found"), "ONTAP API call failed")

	assert.True(t, IsAPIConnectionError(err))
	assert.True(t, IsNotFoundError(err), "not-found identity must survive the API wrapper")
	assert.False(t, IsAlreadyExistsError(err))
}

func TestIsReplicationSyncError(t *testing.T) {
	assert.True(t, IsReplicationSyncError(SnapMirrorSyncOperationError("failed")))
	assert.True(t, IsReplicationSyncError(CloudSyncSyncOperationError("failed")))
	assert.False(t, IsSnapMirrorSyncOperationError(CloudSyncSyncOperationError("failed")))
	assert.False(t, IsReplicationSyncError(TimeoutError("late")))
}

func TestConnectionTypeErrorMessage(t *testing.T) {
	assert.Equal(t, "unsupported connection type 'zapi'", ConnectionTypeError("zapi").Error())
}

func TestCombine(t *testing.T) {
	assert.NoError(t, Combine(nil, nil))

	err := Combine(New("a"), nil, New("b"))
	assert.Len(t, Errors(err), 2)
	assert.Contains(t, err.Error(), "a")
	assert.Contains(t, err.Error(), "b")
}
