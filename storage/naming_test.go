// Copyright 2025 NetApp, Inc. All Rights Reserved.

package storage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotNames(t *testing.T) {
	now := time.Date(2024, 3, 9, 4, 5, 6, 0, time.FixedZone("EST", -5*3600))

	assert.Equal(t, "snapshot-20240309090506", TimestampSnapshotName(now), "names use UTC")
	assert.Equal(t, "daily.2024-03-09_090506", RetentionSnapshotName("daily", now))
}

func TestWildcard(t *testing.T) {
	assert.True(t, IsWildcard("daily*"))
	assert.False(t, IsWildcard("daily"))
	assert.Equal(t, "daily", WildcardPrefix("daily*"))
	assert.Equal(t, "", WildcardPrefix("*"))
}

func TestNewestWithPrefix(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	snapshots := []*Snapshot{
		{Name: "daily.b", Created: base.Add(2 * time.Hour)},
		{Name: "weekly.a", Created: base.Add(5 * time.Hour)},
		{Name: "daily.a", Created: base.Add(time.Hour)},
		{Name: "daily.c", Created: base.Add(2 * time.Hour)},
	}

	newest, ok := NewestWithPrefix(snapshots, "daily")
	require.True(t, ok)
	assert.Equal(t, "daily.c", newest.Name, "equal timestamps resolve to the lexically greatest name")

	matched := SnapshotsWithPrefix(snapshots, "daily")
	names := make([]string, 0, len(matched))
	for _, s := range matched {
		names = append(names, s.Name)
	}
	assert.Equal(t, []string{"daily.a", "daily.b", "daily.c"}, names)

	_, ok = NewestWithPrefix(snapshots, "hourly")
	assert.False(t, ok)
}

func TestVolumeFilter(t *testing.T) {
	clone := &Volume{Name: "proj-clone", ClonedFrom: &ClonedFrom{SourceVolume: "proj"}}
	plain := &Volume{Name: "proj"}

	assert.True(t, VolumeFilter{}.Matches(plain))
	assert.False(t, VolumeFilter{}.Matches(nil))
	assert.True(t, VolumeFilter{NamePrefix: "proj-"}.Matches(clone))
	assert.False(t, VolumeFilter{NamePrefix: "proj-"}.Matches(plain))
	assert.False(t, VolumeFilter{ClonesOnly: true}.Matches(plain))
	assert.True(t, VolumeFilter{ClonesOnly: true}.Matches(clone))
}

func TestEndpointString(t *testing.T) {
	assert.Equal(t, "svm1:vol1", Endpoint{SVM: "svm1", Volume: "vol1"}.String())
	assert.Equal(t, "vol1", Endpoint{Volume: "vol1"}.String())
	assert.Equal(t, "nfs://server/export", Endpoint{Path: "nfs://server/export"}.String())
	assert.Equal(t, "10.0.0.2:/vol1", MountTarget{Server: "10.0.0.2", Path: "/vol1"}.String())
}
