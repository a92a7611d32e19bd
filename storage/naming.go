// Copyright 2025 NetApp, Inc. All Rights Reserved.

package storage

import (
	"sort"
	"strings"
	"time"

	"github.com/netapp/dataops/config"
)

const wildcard = "*"

// TimestampSnapshotName returns the name used when a snapshot is created without one.
func TimestampSnapshotName(now time.Time) string {
	return "snapshot-" + now.UTC().Format(config.SnapshotTimestampFormat)
}

// RetentionSnapshotName appends a timestamp to a retention prefix.
func RetentionSnapshotName(prefix string, now time.Time) string {
	return prefix + "." + now.UTC().Format(config.RetentionTimestampFormat)
}

// IsWildcard reports whether name selects snapshots by prefix, e.g. "daily*".
func IsWildcard(name string) bool {
	return strings.HasSuffix(name, wildcard)
}

func WildcardPrefix(name string) string {
	return strings.TrimSuffix(name, wildcard)
}

// SortSnapshotsByCreation orders snapshots oldest first. Equal timestamps are ordered by
// name so that the lexically greatest name sorts last.
func SortSnapshotsByCreation(snapshots []*Snapshot) {
	sort.SliceStable(snapshots, func(i, j int) bool {
		if snapshots[i].Created.Equal(snapshots[j].Created) {
			return snapshots[i].Name < snapshots[j].Name
		}
		return snapshots[i].Created.Before(snapshots[j].Created)
	})
}

// SnapshotsWithPrefix returns the snapshots whose name starts with prefix, oldest first.
func SnapshotsWithPrefix(snapshots []*Snapshot, prefix string) []*Snapshot {
	var matched []*Snapshot
	for _, snapshot := range snapshots {
		if snapshot != nil && strings.HasPrefix(snapshot.Name, prefix) {
			matched = append(matched, snapshot)
		}
	}
	SortSnapshotsByCreation(matched)
	return matched
}

// NewestWithPrefix returns the most recently created snapshot whose name starts with prefix.
func NewestWithPrefix(snapshots []*Snapshot, prefix string) (*Snapshot, bool) {
	matched := SnapshotsWithPrefix(snapshots, prefix)
	if len(matched) == 0 {
		return nil, false
	}
	return matched[len(matched)-1], true
}
