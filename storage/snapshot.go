// Copyright 2025 NetApp, Inc. All Rights Reserved.

package storage

import (
	"time"
)

type SnapshotPhase string

const (
	SnapshotPhaseCreating = SnapshotPhase("Creating")
	SnapshotPhaseReady    = SnapshotPhase("Ready")
	SnapshotPhaseDeleting = SnapshotPhase("Deleting")
	SnapshotPhaseGone     = SnapshotPhase("Gone")
	SnapshotPhaseFailed   = SnapshotPhase("Failed")
)

// Snapshot is a point-in-time copy of a volume. Volume is the owning volume's name.
type Snapshot struct {
	Name      string        `json:"name"`
	Volume    string        `json:"volume"`
	ID        string        `json:"id,omitempty"`
	Created   time.Time     `json:"created"`
	SizeBytes uint64        `json:"sizeBytes,omitempty"`
	Phase     SnapshotPhase `json:"phase"`
	Message   string        `json:"message,omitempty"`
	// Label is the SnapMirror label used by vault policies.
	Label string `json:"snapmirrorLabel,omitempty"`
}

func (s *Snapshot) FailureMessage() string {
	if s == nil {
		return ""
	}
	return s.Message
}

type SnapshotSpec struct {
	Volume string
	Name   string
	Label  string
}

// Retention is a keep-N-most-recent or keep-N-days pruning policy. Exactly one of Count and
// Days is set.
type Retention struct {
	Count int
	Days  int
}

func (r *Retention) IsZero() bool {
	return r == nil || (r.Count == 0 && r.Days == 0)
}
