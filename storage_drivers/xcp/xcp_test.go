// Copyright 2025 NetApp, Inc. All Rights Reserved.

package xcp

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/netapp/dataops/mocks/mock_utils/mock_exec"
	"github.com/netapp/dataops/utils/errors"
)

func newTestDriver(t *testing.T) (*Driver, *mock_exec.MockCommand) {
	ctrl := gomock.NewController(t)
	command := mock_exec.NewMockCommand(ctrl)
	return NewDriverWithCommand("", command), command
}

func TestStartTransfer_Success(t *testing.T) {
	driver, command := newTestDriver(t)
	command.EXPECT().Execute(gomock.Any(), "xcp", "sync", "-id", "autoname_copy_2025").
		Return([]byte("Sync complete\n"), nil)

	assert.NoError(t, driver.StartTransfer(context.Background(), "autoname_copy_2025"))
}

func TestStartTransfer_CustomBinary(t *testing.T) {
	ctrl := gomock.NewController(t)
	command := mock_exec.NewMockCommand(ctrl)
	driver := NewDriverWithCommand("/opt/NetApp/xcp/xcp", command)

	command.EXPECT().Execute(gomock.Any(), "/opt/NetApp/xcp/xcp", "sync", "-id", "job1").Return(nil, nil)
	assert.NoError(t, driver.StartTransfer(context.Background(), "job1"))
}

func TestStartTransfer_NonZeroExit(t *testing.T) {
	driver, command := newTestDriver(t)
	command.EXPECT().Execute(gomock.Any(), "xcp", "sync", "-id", "job1").
		Return([]byte("scanning\nxcp: ERROR: catalog id job1 not found\n"), mock_exec.NewMockExitError(1, "failed"))

	err := driver.StartTransfer(context.Background(), "job1")
	assert.True(t, errors.IsReplicationSyncError(err))
	assert.Contains(t, err.Error(), "exited with code 1")
	assert.Contains(t, err.Error(), "catalog id job1 not found")
}

func TestStartTransfer_BinaryMissing(t *testing.T) {
	driver, command := newTestDriver(t)
	command.EXPECT().Execute(gomock.Any(), "xcp", "sync", "-id", "job1").
		Return(nil, fmt.Errorf("executable file not found in $PATH"))

	err := driver.StartTransfer(context.Background(), "job1")
	assert.True(t, errors.IsReplicationSyncError(err))
	assert.Contains(t, err.Error(), "could not run xcp")
}

func TestStartTransfer_Cancelled(t *testing.T) {
	driver, command := newTestDriver(t)
	ctx, cancel := context.WithCancel(context.Background())
	command.EXPECT().Execute(gomock.Any(), "xcp", "sync", "-id", "job1").
		DoAndReturn(func(context.Context, string, ...string) ([]byte, error) {
			cancel()
			return nil, fmt.Errorf("signal: killed")
		})

	err := driver.StartTransfer(ctx, "job1")
	assert.True(t, errors.IsTimeoutError(err))
}

func TestRelationshipQueriesUnsupported(t *testing.T) {
	driver, _ := newTestDriver(t)

	_, err := driver.GetRelationship(context.Background(), "job1")
	assert.True(t, errors.IsUnsupportedError(err))

	_, err = driver.ListRelationships(context.Background())
	assert.True(t, errors.IsUnsupportedError(err))
}

func TestLastLine(t *testing.T) {
	assert.Equal(t, "done", lastLine("a\nb\ndone\n\n"))
	assert.Equal(t, "", lastLine(""))
}
