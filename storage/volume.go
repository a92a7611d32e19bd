// Copyright 2025 NetApp, Inc. All Rights Reserved.

package storage

import (
	"fmt"
	"strings"
)

type VolumePhase string

const (
	VolumePhasePending  = VolumePhase("Pending")
	VolumePhaseReady    = VolumePhase("Ready")
	VolumePhaseDeleting = VolumePhase("Deleting")
	VolumePhaseGone     = VolumePhase("Gone")
	VolumePhaseFailed   = VolumePhase("Failed")
)

// IsTerminal reports whether no further automatic transition is expected.
func (p VolumePhase) IsTerminal() bool {
	return p == VolumePhaseReady || p == VolumePhaseGone || p == VolumePhaseFailed
}

// ClonedFrom records the provenance of a clone. It is set at creation and never changes.
type ClonedFrom struct {
	SourceVolume   string `json:"sourceVolume"`
	SourceSnapshot string `json:"sourceSnapshot"`
}

// MountTarget is the NFS export a volume is reachable at.
type MountTarget struct {
	Server string `json:"server"`
	Path   string `json:"path"`
}

func (m MountTarget) String() string {
	return fmt.Sprintf("%s:%s", m.Server, m.Path)
}

// Volume is the normalized view of a PVC, ONTAP volume or GCNV volume.
type Volume struct {
	Name            string       `json:"name"`
	ID              string       `json:"id,omitempty"`
	SizeBytes       uint64       `json:"sizeBytes"`
	Type            string       `json:"type,omitempty"`
	StorageClass    string       `json:"storageClass,omitempty"`
	Aggregates      []string     `json:"aggregates,omitempty"`
	CapacityPool    string       `json:"capacityPool,omitempty"`
	Protocols       []string     `json:"protocols,omitempty"`
	UnixUID         string       `json:"unixUID,omitempty"`
	UnixGID         string       `json:"unixGID,omitempty"`
	UnixPermissions string       `json:"unixPermissions,omitempty"`
	ExportPolicy    string       `json:"exportPolicy,omitempty"`
	SnapshotPolicy  string       `json:"snapshotPolicy,omitempty"`
	SecurityStyle   string       `json:"securityStyle,omitempty"`
	Phase           VolumePhase  `json:"phase"`
	Message         string       `json:"message,omitempty"`
	ClonedFrom      *ClonedFrom  `json:"clonedFrom,omitempty"`
	MountTarget     *MountTarget `json:"mountTarget,omitempty"`
}

func (v *Volume) IsClone() bool {
	return v.ClonedFrom != nil
}

// FailureMessage returns the backend's explanation for a Failed phase.
func (v *Volume) FailureMessage() string {
	if v == nil {
		return ""
	}
	return v.Message
}

// VolumeSpec describes a volume to create. Size is the user-facing size string; the volume
// manager parses it into SizeBytes, which is what backends consume.
type VolumeSpec struct {
	Name            string
	Size            string
	SizeBytes       uint64
	Type            string
	StorageClass    string
	Aggregates      []string
	CapacityPool    string
	Protocols       []string
	UnixUID         string
	UnixGID         string
	UnixPermissions string
	ExportPolicy    string
	SnapshotPolicy  string
	SecurityStyle   string
	SnapshotReserve *int
	// ClonedFrom makes this a clone request.
	ClonedFrom *ClonedFrom
	// SplitClone detaches the clone from its parent once created, where the backend supports it.
	SplitClone bool
	ReadOnly   bool
}

// VolumeFilter narrows ListVolumes. The zero value matches everything.
type VolumeFilter struct {
	NamePrefix string
	ClonesOnly bool
}

func (f VolumeFilter) Matches(v *Volume) bool {
	if v == nil {
		return false
	}
	if f.NamePrefix != "" && !strings.HasPrefix(v.Name, f.NamePrefix) {
		return false
	}
	if f.ClonesOnly && !v.IsClone() {
		return false
	}
	return true
}
