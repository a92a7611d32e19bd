// Copyright 2025 NetApp, Inc. All Rights Reserved.

package api

import (
	"github.com/go-openapi/strfmt"
)

// Job states reported by /api/cluster/jobs
const (
	JobStateQueued  = "queued"
	JobStateRunning = "running"
	JobStatePaused  = "paused"
	JobStateSuccess = "success"
	JobStateFailure = "failure"
)

// Volume styles
const (
	VolumeStyleFlexVol   = "flexvol"
	VolumeStyleFlexGroup = "flexgroup"
)

// Volume states
const (
	VolumeStateOnline  = "online"
	VolumeStateOffline = "offline"
	VolumeStateError   = "error"
	VolumeStateMixed   = "mixed"
)

// SnapMirror transfer states
const (
	TransferStateQueued       = "queued"
	TransferStatePreparing    = "preparing"
	TransferStateTransferring = "transferring"
	TransferStateFinalizing   = "finalizing"
	TransferStateAborting     = "aborting"
	TransferStateSuccess      = "success"
	TransferStateFailed       = "failed"
	TransferStateHardAborted  = "hard_aborted"
)

// NamedReference is the {"name": ..., "uuid": ...} shape ONTAP uses for every linked object.
type NamedReference struct {
	Name string `json:"name,omitempty"`
	UUID string `json:"uuid,omitempty"`
}

type VolumeNas struct {
	Path            string          `json:"path,omitempty"`
	UID             *int64          `json:"uid,omitempty"`
	GID             *int64          `json:"gid,omitempty"`
	UnixPermissions *int64          `json:"unix_permissions,omitempty"`
	SecurityStyle   string          `json:"security_style,omitempty"`
	ExportPolicy    *NamedReference `json:"export_policy,omitempty"`
}

type VolumeClone struct {
	IsFlexclone    *bool           `json:"is_flexclone,omitempty"`
	ParentVolume   *NamedReference `json:"parent_volume,omitempty"`
	ParentSnapshot *NamedReference `json:"parent_snapshot,omitempty"`
	SplitInitiated *bool           `json:"split_initiated,omitempty"`
}

type VolumeSpaceSnapshot struct {
	ReservePercent *int64 `json:"reserve_percent,omitempty"`
}

type VolumeSpace struct {
	Snapshot *VolumeSpaceSnapshot `json:"snapshot,omitempty"`
}

// Volume is the subset of the ONTAP volume object this client reads and writes.
type Volume struct {
	UUID           string           `json:"uuid,omitempty"`
	Name           string           `json:"name,omitempty"`
	Size           *int64           `json:"size,omitempty"`
	State          string           `json:"state,omitempty"`
	Style          string           `json:"style,omitempty"`
	Type           string           `json:"type,omitempty"`
	Svm            *NamedReference  `json:"svm,omitempty"`
	Aggregates     []NamedReference `json:"aggregates,omitempty"`
	Nas            *VolumeNas       `json:"nas,omitempty"`
	SnapshotPolicy *NamedReference  `json:"snapshot_policy,omitempty"`
	Space          *VolumeSpace     `json:"space,omitempty"`
	Clone          *VolumeClone     `json:"clone,omitempty"`
	Comment        string           `json:"comment,omitempty"`
}

// Snapshot is an ONTAP volume snapshot.
type Snapshot struct {
	UUID            string           `json:"uuid,omitempty"`
	Name            string           `json:"name,omitempty"`
	CreateTime      *strfmt.DateTime `json:"create_time,omitempty"`
	Volume          *NamedReference  `json:"volume,omitempty"`
	SnapmirrorLabel string           `json:"snapmirror_label,omitempty"`
	Size            *int64           `json:"size,omitempty"`
}

type SnapmirrorEndpoint struct {
	Path    string          `json:"path,omitempty"`
	Svm     *NamedReference `json:"svm,omitempty"`
	Cluster *NamedReference `json:"cluster,omitempty"`
}

type SnapmirrorTransfer struct {
	State string `json:"state,omitempty"`
	UUID  string `json:"uuid,omitempty"`
}

type UnhealthyReason struct {
	Message string `json:"message,omitempty"`
	Code    string `json:"code,omitempty"`
}

// SnapmirrorRelationship is an entry of /api/snapmirror/relationships.
type SnapmirrorRelationship struct {
	UUID            string              `json:"uuid,omitempty"`
	Source          *SnapmirrorEndpoint `json:"source,omitempty"`
	Destination     *SnapmirrorEndpoint `json:"destination,omitempty"`
	Policy          *NamedReference     `json:"policy,omitempty"`
	Schedule        string              `json:"transfer_schedule,omitempty"`
	Healthy         *bool               `json:"healthy,omitempty"`
	State           string              `json:"state,omitempty"`
	Transfer        *SnapmirrorTransfer `json:"transfer,omitempty"`
	UnhealthyReason []UnhealthyReason   `json:"unhealthy_reason,omitempty"`
}

// Job is an asynchronous cluster job.
type Job struct {
	UUID        string           `json:"uuid,omitempty"`
	Description string           `json:"description,omitempty"`
	State       string           `json:"state,omitempty"`
	Message     string           `json:"message,omitempty"`
	Code        int64            `json:"code,omitempty"`
	StartTime   *strfmt.DateTime `json:"start_time,omitempty"`
	EndTime     *strfmt.DateTime `json:"end_time,omitempty"`
}

// JobLinkResponse is returned by every asynchronous POST, PATCH and DELETE.
type JobLinkResponse struct {
	Job *NamedReference `json:"job,omitempty"`
}

type VolumeCollection struct {
	NumRecords int64     `json:"num_records"`
	Records    []*Volume `json:"records"`
}

type SnapshotCollection struct {
	NumRecords int64       `json:"num_records"`
	Records    []*Snapshot `json:"records"`
}

type SnapmirrorRelationshipCollection struct {
	NumRecords int64                     `json:"num_records"`
	Records    []*SnapmirrorRelationship `json:"records"`
}

// ErrorResponse is the body ONTAP returns with 4xx and 5xx responses.
type ErrorResponse struct {
	Error *struct {
		Code    string `json:"code,omitempty"`
		Message string `json:"message,omitempty"`
		Target  string `json:"target,omitempty"`
	} `json:"error,omitempty"`
}
