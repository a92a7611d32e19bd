// Copyright 2025 NetApp, Inc. All Rights Reserved.

package ontap

import (
	"context"
	"io"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/go-openapi/strfmt"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/netapp/dataops/config"
	mockapi "github.com/netapp/dataops/mocks/mock_storage_drivers/mock_ontap"
	"github.com/netapp/dataops/pkg/convert"
	"github.com/netapp/dataops/storage"
	"github.com/netapp/dataops/storage_drivers/ontap/api"
	"github.com/netapp/dataops/utils/errors"
)

func TestMain(m *testing.M) {
	// Disable any standard log output
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func newTestDriver(t *testing.T) (*NASStorageDriver, *mockapi.MockRestClientInterface) {
	t.Helper()

	mockCtrl := gomock.NewController(t)
	mockAPI := mockapi.NewMockRestClientInterface(mockCtrl)

	driver := NewNASStorageDriverWithAPI(mockAPI, DriverConfig{
		DataLIF: "10.0.0.2",
		SVM:     "svm0",
		Defaults: storage.VolumeSpec{
			Type:            config.VolumeTypeFlexVol,
			Aggregates:      []string{"aggr1"},
			ExportPolicy:    "default",
			SnapshotPolicy:  "none",
			UnixUID:         "0",
			UnixGID:         "0",
			UnixPermissions: "0777",
		},
	})
	return driver, mockAPI
}

func notFound() error {
	return api.NewRestErrorFromResponse(http.StatusNotFound, nil)
}

func onlineVolume(name, uuid string, size int64) *api.Volume {
	return &api.Volume{
		UUID:  uuid,
		Name:  name,
		Size:  &size,
		State: api.VolumeStateOnline,
		Style: api.VolumeStyleFlexVol,
		Nas: &api.VolumeNas{
			Path:            "/" + name,
			UID:             convert.ToPtr(int64(0)),
			GID:             convert.ToPtr(int64(0)),
			UnixPermissions: convert.ToPtr(int64(755)),
			ExportPolicy:    &api.NamedReference{Name: "default"},
		},
		Aggregates: []api.NamedReference{{Name: "aggr1"}},
	}
}

func TestName(t *testing.T) {
	driver, _ := newTestDriver(t)
	assert.Equal(t, "ontap-nas", driver.Name())
}

func TestCreateVolume(t *testing.T) {
	driver, mockAPI := newTestDriver(t)
	ctx := context.Background()

	var request *api.Volume
	mockAPI.EXPECT().VolumeCreate(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, volume *api.Volume) error {
			request = volume
			return nil
		})
	mockAPI.EXPECT().VolumeGetByName(ctx, "vol1").Return(onlineVolume("vol1", "u1", 1<<30), nil)

	volume, err := driver.CreateVolume(ctx, storage.VolumeSpec{
		Name:            "vol1",
		SizeBytes:       1 << 30,
		UnixPermissions: "0755",
		SnapshotReserve: convert.ToPtr(5),
	})
	require.NoError(t, err)

	assert.Equal(t, api.VolumeStyleFlexVol, request.Style)
	assert.Equal(t, "rw", request.Type)
	assert.Equal(t, int64(755), *request.Nas.UnixPermissions)
	assert.Equal(t, "default", request.Nas.ExportPolicy.Name, "default export policy should apply")
	assert.Equal(t, "/vol1", request.Nas.Path)
	assert.Equal(t, "unix", request.Nas.SecurityStyle)
	assert.Equal(t, []api.NamedReference{{Name: "aggr1"}}, request.Aggregates)
	assert.Equal(t, int64(5), *request.Space.Snapshot.ReservePercent)
	assert.Equal(t, "none", request.SnapshotPolicy.Name)

	assert.Equal(t, "u1", volume.ID)
	assert.Equal(t, storage.VolumePhaseReady, volume.Phase)
	assert.Equal(t, "0755", volume.UnixPermissions)
	assert.Equal(t, "10.0.0.2:/vol1", volume.MountTarget.String())
	assert.Equal(t, uint64(1<<30), volume.SizeBytes)
}

func TestCreateVolume_Invalid(t *testing.T) {
	tests := []struct {
		name string
		spec storage.VolumeSpec
	}{
		{"bad volume type", storage.VolumeSpec{Name: "v", SizeBytes: 1 << 30, Type: "qtree"}},
		{"too small", storage.VolumeSpec{Name: "v", SizeBytes: 1024}},
		{"flexvol on two aggregates", storage.VolumeSpec{Name: "v", SizeBytes: 1 << 30, Aggregates: []string{"a", "b"}}},
		{"bad permissions", storage.VolumeSpec{Name: "v", SizeBytes: 1 << 30, UnixPermissions: "755"}},
		{"bad uid", storage.VolumeSpec{Name: "v", SizeBytes: 1 << 30, UnixUID: "root"}},
		{"bad snapshot reserve", storage.VolumeSpec{Name: "v", SizeBytes: 1 << 30, SnapshotReserve: convert.ToPtr(95)}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			driver, _ := newTestDriver(t)

			// No API expectations: validation must fail before any remote call
			_, err := driver.CreateVolume(context.Background(), tc.spec)
			assert.True(t, errors.IsInvalidVolumeParameterError(err), "unexpected error: %v", err)
		})
	}
}

func TestCreateVolume_FlexGroup(t *testing.T) {
	driver, mockAPI := newTestDriver(t)
	ctx := context.Background()

	mockAPI.EXPECT().VolumeCreate(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, volume *api.Volume) error {
			assert.Equal(t, api.VolumeStyleFlexGroup, volume.Style)
			assert.Len(t, volume.Aggregates, 2)
			return nil
		})
	mockAPI.EXPECT().VolumeGetByName(ctx, "fg").Return(onlineVolume("fg", "u2", 1<<40), nil)

	_, err := driver.CreateVolume(ctx, storage.VolumeSpec{
		Name: "fg", SizeBytes: 1 << 40, Type: config.VolumeTypeFlexGroup, Aggregates: []string{"aggr1", "aggr2"},
	})
	assert.NoError(t, err)
}

func TestCreateVolume_Clone(t *testing.T) {
	driver, mockAPI := newTestDriver(t)
	ctx := context.Background()

	clone := onlineVolume("clone1", "u3", 1<<30)
	clone.Clone = &api.VolumeClone{
		IsFlexclone:    convert.ToPtr(true),
		ParentVolume:   &api.NamedReference{Name: "vol1"},
		ParentSnapshot: &api.NamedReference{Name: "snap1"},
	}

	gomock.InOrder(
		mockAPI.EXPECT().VolumeCreate(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, volume *api.Volume) error {
				require.NotNil(t, volume.Clone)
				assert.True(t, *volume.Clone.IsFlexclone)
				assert.Equal(t, "vol1", volume.Clone.ParentVolume.Name)
				assert.Equal(t, "snap1", volume.Clone.ParentSnapshot.Name)
				assert.Empty(t, volume.Style, "clones inherit the parent's style")
				return nil
			}),
		mockAPI.EXPECT().VolumeGetByName(ctx, "clone1").Return(clone, nil),
		mockAPI.EXPECT().VolumeCloneSplitStart(ctx, "u3").Return(nil),
	)

	volume, err := driver.CreateVolume(ctx, storage.VolumeSpec{
		Name:       "clone1",
		ClonedFrom: &storage.ClonedFrom{SourceVolume: "vol1", SourceSnapshot: "snap1"},
		SplitClone: true,
	})
	require.NoError(t, err)
	assert.Equal(t, &storage.ClonedFrom{SourceVolume: "vol1", SourceSnapshot: "snap1"}, volume.ClonedFrom)
}

func TestCreateVolume_Conflict(t *testing.T) {
	driver, mockAPI := newTestDriver(t)
	ctx := context.Background()

	mockAPI.EXPECT().VolumeCreate(ctx, gomock.Any()).Return(
		api.NewRestErrorFromPayload(&api.Job{State: api.JobStateFailure, Code: 917731, Message: "duplicate"}))

	_, err := driver.CreateVolume(ctx, storage.VolumeSpec{Name: "vol1", SizeBytes: 1 << 30})
	assert.True(t, errors.IsAlreadyExistsError(err))
	assert.True(t, errors.IsAPIConnectionError(err))
}

func TestGetVolume_NotFound(t *testing.T) {
	driver, mockAPI := newTestDriver(t)
	ctx := context.Background()

	mockAPI.EXPECT().VolumeGetByName(ctx, "missing").Return(nil, notFound())

	_, err := driver.GetVolume(ctx, "missing")
	assert.True(t, errors.IsNotFoundError(err))
	assert.True(t, errors.IsAPIConnectionError(err))
}

func TestDeleteVolume(t *testing.T) {
	driver, mockAPI := newTestDriver(t)
	ctx := context.Background()

	mockAPI.EXPECT().VolumeGetByName(ctx, "vol1").Return(onlineVolume("vol1", "u1", 1<<30), nil)
	mockAPI.EXPECT().VolumeDelete(ctx, "u1", true).Return(nil)

	assert.NoError(t, driver.DeleteVolume(ctx, "vol1", true))
}

func TestDeleteVolume_NotFound(t *testing.T) {
	driver, mockAPI := newTestDriver(t)
	ctx := context.Background()

	mockAPI.EXPECT().VolumeGetByName(ctx, "vol1").Return(nil, notFound())

	err := driver.DeleteVolume(ctx, "vol1", false)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestListVolumes(t *testing.T) {
	driver, mockAPI := newTestDriver(t)
	ctx := context.Background()

	clone := onlineVolume("data_clone", "u2", 1<<30)
	clone.Clone = &api.VolumeClone{IsFlexclone: convert.ToPtr(true), ParentVolume: &api.NamedReference{Name: "data"}}

	mockAPI.EXPECT().VolumeList(ctx, "data*").Return([]*api.Volume{clone, onlineVolume("data", "u1", 1<<30)}, nil).Times(2)

	volumes, err := driver.ListVolumes(ctx, storage.VolumeFilter{NamePrefix: "data"})
	require.NoError(t, err)
	require.Len(t, volumes, 2)
	assert.Equal(t, "data", volumes[0].Name, "volumes should be sorted by name")

	volumes, err = driver.ListVolumes(ctx, storage.VolumeFilter{NamePrefix: "data", ClonesOnly: true})
	require.NoError(t, err)
	require.Len(t, volumes, 1)
	assert.Equal(t, "data", volumes[0].ClonedFrom.SourceVolume)
}

func TestSnapshots(t *testing.T) {
	driver, mockAPI := newTestDriver(t)
	ctx := context.Background()

	created := strfmt.DateTime(time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC))
	snapshot := &api.Snapshot{UUID: "s1", Name: "snap1", CreateTime: &created, SnapmirrorLabel: "daily"}

	mockAPI.EXPECT().VolumeGetByName(ctx, "vol1").Return(onlineVolume("vol1", "u1", 1<<30), nil).AnyTimes()
	mockAPI.EXPECT().SnapshotCreate(ctx, "u1", "snap1", "daily").Return(nil)
	mockAPI.EXPECT().SnapshotGetByName(ctx, "u1", "snap1").Return(snapshot, nil).Times(2)
	mockAPI.EXPECT().SnapshotDelete(ctx, "u1", "s1").Return(nil)

	result, err := driver.CreateSnapshot(ctx, storage.SnapshotSpec{Volume: "vol1", Name: "snap1", Label: "daily"})
	require.NoError(t, err)
	assert.Equal(t, storage.SnapshotPhaseReady, result.Phase)
	assert.Equal(t, "vol1", result.Volume)
	assert.Equal(t, time.Time(created), result.Created)
	assert.Equal(t, "daily", result.Label)

	assert.NoError(t, driver.DeleteSnapshot(ctx, "vol1", "snap1"))
}

func TestCreateSnapshot_VolumeMissing(t *testing.T) {
	driver, mockAPI := newTestDriver(t)
	ctx := context.Background()

	mockAPI.EXPECT().VolumeGetByName(ctx, "vol1").Return(nil, notFound())

	_, err := driver.CreateSnapshot(ctx, storage.SnapshotSpec{Volume: "vol1", Name: "snap1"})
	assert.True(t, errors.IsNotFoundError(err))
}

func TestDeleteSnapshot_Busy(t *testing.T) {
	driver, mockAPI := newTestDriver(t)
	ctx := context.Background()

	mockAPI.EXPECT().VolumeGetByName(ctx, "vol1").Return(onlineVolume("vol1", "u1", 1<<30), nil)
	mockAPI.EXPECT().SnapshotGetByName(ctx, "u1", "snap1").Return(&api.Snapshot{UUID: "s1", Name: "snap1"}, nil)
	mockAPI.EXPECT().SnapshotDelete(ctx, "u1", "s1").Return(
		api.NewRestErrorFromPayload(&api.Job{State: api.JobStateFailure, Code: 1638555, Message: "busy"}))

	err := driver.DeleteSnapshot(ctx, "vol1", "snap1")
	assert.True(t, errors.IsAPIConnectionError(err))
	assert.False(t, errors.IsNotFoundError(err))
}

func TestListSnapshots_AllVolumes(t *testing.T) {
	driver, mockAPI := newTestDriver(t)
	ctx := context.Background()

	mockAPI.EXPECT().VolumeList(ctx, "").Return([]*api.Volume{
		onlineVolume("b", "ub", 1<<30), onlineVolume("a", "ua", 1<<30),
	}, nil)
	gomock.InOrder(
		mockAPI.EXPECT().SnapshotList(ctx, "ua").Return([]*api.Snapshot{{Name: "a1"}}, nil),
		mockAPI.EXPECT().SnapshotList(ctx, "ub").Return([]*api.Snapshot{{Name: "b1"}, {Name: "b2"}}, nil),
	)

	snapshots, err := driver.ListSnapshots(ctx, "")
	require.NoError(t, err)
	require.Len(t, snapshots, 3)
	assert.Equal(t, "a", snapshots[0].Volume)
	assert.Equal(t, "b", snapshots[2].Volume)
}

func TestRestoreSnapshot(t *testing.T) {
	driver, mockAPI := newTestDriver(t)
	ctx := context.Background()

	mockAPI.EXPECT().VolumeGetByName(ctx, "vol1").Return(onlineVolume("vol1", "u1", 1<<30), nil)
	mockAPI.EXPECT().VolumeRestoreSnapshot(ctx, "u1", "snap1").Return(nil)

	assert.NoError(t, driver.RestoreSnapshot(ctx, "vol1", "snap1"))
}

func TestVolumeFromREST(t *testing.T) {
	volume := volumeFromREST(&api.Volume{Name: "v", State: api.VolumeStateError}, "lif")
	assert.Equal(t, storage.VolumePhaseFailed, volume.Phase)
	assert.Contains(t, volume.FailureMessage(), "error")
	assert.Nil(t, volume.MountTarget)

	assert.Equal(t, storage.VolumePhasePending, volumeFromREST(&api.Volume{State: api.VolumeStateMixed}, "").Phase)
	assert.Equal(t, storage.VolumePhaseReady, volumeFromREST(&api.Volume{State: api.VolumeStateOffline}, "").Phase)
}

func TestPermissions(t *testing.T) {
	value, err := permissionsToREST("0750")
	require.NoError(t, err)
	assert.Equal(t, int64(750), *value)
	assert.Equal(t, "0750", permissionsFromREST(value))
	assert.Equal(t, "0007", permissionsFromREST(convert.ToPtr(int64(7))))

	value, err = permissionsToREST("")
	assert.NoError(t, err)
	assert.Nil(t, value)
}
