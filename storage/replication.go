// Copyright 2025 NetApp, Inc. All Rights Reserved.

package storage

import (
	"fmt"
)

type ReplicationKind string

const (
	ReplicationSnapMirror = ReplicationKind("snapmirror")
	ReplicationCloudSync  = ReplicationKind("cloudsync")
	ReplicationXCP        = ReplicationKind("xcp")
)

// TransferState is the backend's transfer status. Values other than the constants below are
// kept verbatim so that callers can report them.
type TransferState string

const (
	TransferStateIdle         = TransferState("Idle")
	TransferStateTransferring = TransferState("Transferring")
	TransferStateFailed       = TransferState("Failed")
)

type Endpoint struct {
	Cluster string `json:"cluster,omitempty"`
	SVM     string `json:"svm,omitempty"`
	Volume  string `json:"volume,omitempty"`
	Path    string `json:"path,omitempty"`
}

func (e Endpoint) String() string {
	if e.Path != "" {
		return e.Path
	}
	if e.SVM == "" {
		return e.Volume
	}
	return fmt.Sprintf("%s:%s", e.SVM, e.Volume)
}

// Relationship is a standing replication configuration. It is read-only apart from
// triggering a transfer.
type Relationship struct {
	ID          string          `json:"id"`
	Kind        ReplicationKind `json:"kind"`
	Source      Endpoint        `json:"source"`
	Destination Endpoint        `json:"destination"`
	Policy      string          `json:"policy,omitempty"`
	Schedule    string          `json:"schedule,omitempty"`
	Healthy     bool            `json:"healthy"`
	State       TransferState   `json:"state"`
	Message     string          `json:"message,omitempty"`
}

func (r *Relationship) FailureMessage() string {
	if r == nil {
		return ""
	}
	return r.Message
}
