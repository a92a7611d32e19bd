// Copyright 2025 NetApp, Inc. All Rights Reserved.

// Package gcnvapi provides a high-level interface to the Google Cloud NetApp Volumes SDK
package gcnvapi

import (
	"context"
	"time"
)

//go:generate mockgen -destination=../../../mocks/mock_storage_drivers/mock_gcp/mock_gcnvapi.go -package=mock_gcnvapi github.com/netapp/dataops/storage_drivers/gcp/gcnvapi GCNV

// GCNV is the subset of the NetApp Volumes API the toolkit uses. Calls issue the request and
// return once GCNV has accepted it; long-running operations are not awaited unless noted.
type GCNV interface {
	CapacityPool(context.Context, string) (*CapacityPool, error)

	Volumes(context.Context) ([]*Volume, error)
	VolumeByName(context.Context, string) (*Volume, error)
	CreateVolume(context.Context, *VolumeCreateRequest) (*Volume, error)
	DeleteVolume(context.Context, *Volume) error

	SnapshotsForVolume(context.Context, *Volume) ([]*Snapshot, error)
	SnapshotForVolume(context.Context, *Volume, string) (*Snapshot, error)
	CreateSnapshot(context.Context, *Volume, string, map[string]string) (*Snapshot, error)
	DeleteSnapshot(context.Context, *Volume, *Snapshot) error
	// RestoreSnapshot waits for the revert operation to finish.
	RestoreSnapshot(context.Context, *Volume, *Snapshot) error
}

const (
	VolumeStateUnspecified = "unspecified"
	VolumeStateReady       = "ready"
	VolumeStateCreating    = "creating"
	VolumeStateDeleting    = "deleting"
	VolumeStateUpdating    = "updating"
	VolumeStateRestoring   = "restoring"
	VolumeStateDisabled    = "disabled"
	VolumeStateError       = "error"

	SnapshotStateUnspecified = "unspecified"
	SnapshotStateReady       = "ready"
	SnapshotStateCreating    = "creating"
	SnapshotStateDeleting    = "deleting"
	SnapshotStateUpdating    = "updating"
	SnapshotStateDisabled    = "disabled"
	SnapshotStateError       = "error"

	ProtocolTypeUnknown = "unknown"
	ProtocolTypeNFSv3   = "NFSv3"
	ProtocolTypeNFSv41  = "NFSv4.1"
	ProtocolTypeSMB     = "SMB"

	SecurityStyleUnspecified = "unspecified"
	SecurityStyleNTFS        = "ntfs"
	SecurityStyleUnix        = "unix"

	ServiceLevelUnspecified = "unspecified"
	ServiceLevelFlex        = "flex"
	ServiceLevelStandard    = "standard"
	ServiceLevelPremium     = "premium"
	ServiceLevelExtreme     = "extreme"
)

// CapacityPool records details of a GCNV storage pool.
type CapacityPool struct {
	Name         string
	FullName     string
	Location     string
	ServiceLevel string
	State        string
	NetworkName  string
}

// Volume records details of a GCNV volume.
type Volume struct {
	Name            string
	ShareName       string
	FullName        string
	Location        string
	State           string
	StateDetails    string
	CapacityPool    string
	SizeBytes       int64
	ProtocolTypes   []string
	MountTargets    []MountTarget
	UnixPermissions string
	Labels          map[string]string
	SnapshotReserve int64
	SecurityStyle   string
	// SourceSnapshot is the full name of the snapshot the volume was restored from, if any.
	SourceSnapshot string
}

// MountTarget is one export of a GCNV volume.
type MountTarget struct {
	Export     string
	ExportPath string
	Protocol   string
}

// VolumeCreateRequest embodies all the details of a volume to be created.
type VolumeCreateRequest struct {
	Name            string
	CapacityPool    string
	SizeBytes       int64
	ProtocolTypes   []string
	UnixPermissions string
	Labels          map[string]string
	SnapshotReserve *int64
	SecurityStyle   string
	// SnapshotID is the full name of the snapshot to clone from.
	SnapshotID string
}

// Snapshot records details of a GCNV snapshot.
type Snapshot struct {
	Name         string
	FullName     string
	Volume       string
	Location     string
	State        string
	StateDetails string
	Created      time.Time
	UsedBytes    int64
	Labels       map[string]string
}
