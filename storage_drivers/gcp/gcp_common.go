// Copyright 2025 NetApp, Inc. All Rights Reserved.

package gcp

import (
	"strings"

	"github.com/netapp/dataops/config"
	"github.com/netapp/dataops/storage"
	"github.com/netapp/dataops/storage_drivers/gcp/gcnvapi"
	"github.com/netapp/dataops/utils/errors"
)

const (
	defaultSecurityStyle = "unix"

	// GCP label keys and values allow only lowercase letters, digits, '-' and '_'
	labelCreatedBy      = "created-by"
	labelSourceVolume   = "dataops-source-volume"
	labelSourceSnapshot = "dataops-source-snapshot"
	maxLabelLength      = 63
)

// DriverConfig holds the settings the driver applies to every request.
type DriverConfig struct {
	ProjectNumber string
	Location      string
	APIKeyFile    string
	Defaults      storage.VolumeSpec
}

// NewDriverConfig builds the driver settings from the toolkit config file.
func NewDriverConfig(cfg *config.Config, defaults storage.VolumeSpec) DriverConfig {
	return DriverConfig{
		ProjectNumber: cfg.GCNVProjectNumber,
		Location:      cfg.GCNVLocation,
		APIKeyFile:    cfg.GCNVAPIKeyFile,
		Defaults:      defaults,
	}
}

// protocolsToGCNV maps toolkit protocol names onto GCNV protocol types. NFSv3 is the default.
func protocolsToGCNV(protocols []string) ([]string, error) {
	if len(protocols) == 0 {
		return []string{gcnvapi.ProtocolTypeNFSv3}, nil
	}
	result := make([]string, 0, len(protocols))
	for _, protocol := range protocols {
		switch strings.ToLower(protocol) {
		case "nfs", "nfsv3":
			result = append(result, gcnvapi.ProtocolTypeNFSv3)
		case "nfsv4", "nfsv4.1":
			result = append(result, gcnvapi.ProtocolTypeNFSv41)
		case "smb":
			result = append(result, gcnvapi.ProtocolTypeSMB)
		default:
			return nil, errors.InvalidVolumeParameterError("unsupported protocol '%s'", protocol)
		}
	}
	return result, nil
}

// roundUpToGiB rounds a size up to whole GiB, since GCNV provisions in GiB.
func roundUpToGiB(sizeBytes uint64) uint64 {
	gib := uint64(gcnvapi.GiB)
	return (sizeBytes + gib - 1) / gib * gib
}

// labelValue shortens a value to fit a GCP label.
func labelValue(value string) string {
	value = strings.ToLower(value)
	if len(value) > maxLabelLength {
		value = value[:maxLabelLength]
	}
	return value
}

func volumePhase(state string) storage.VolumePhase {
	switch state {
	case gcnvapi.VolumeStateReady:
		return storage.VolumePhaseReady
	case gcnvapi.VolumeStateDeleting:
		return storage.VolumePhaseDeleting
	case gcnvapi.VolumeStateError, gcnvapi.VolumeStateDisabled:
		return storage.VolumePhaseFailed
	default:
		return storage.VolumePhasePending
	}
}

func snapshotPhase(state string) storage.SnapshotPhase {
	switch state {
	case gcnvapi.SnapshotStateReady:
		return storage.SnapshotPhaseReady
	case gcnvapi.SnapshotStateDeleting:
		return storage.SnapshotPhaseDeleting
	case gcnvapi.SnapshotStateError, gcnvapi.SnapshotStateDisabled:
		return storage.SnapshotPhaseFailed
	default:
		return storage.SnapshotPhaseCreating
	}
}

// lastSegment returns the short name of a full GCP resource name.
func lastSegment(name string) string {
	if i := strings.LastIndex(name, "/"); i >= 0 {
		return name[i+1:]
	}
	return name
}

// mountTargetFromExport splits "10.0.0.4:/share" into server and path.
func mountTargetFromExport(exportPath string) *storage.MountTarget {
	server, path, found := strings.Cut(exportPath, ":")
	if !found || server == "" || path == "" {
		return nil
	}
	return &storage.MountTarget{Server: server, Path: path}
}

func volumeFromGCNV(volume *gcnvapi.Volume) *storage.Volume {
	result := &storage.Volume{
		Name:            volume.Name,
		ID:              volume.FullName,
		SizeBytes:       uint64(volume.SizeBytes),
		CapacityPool:    lastSegment(volume.CapacityPool),
		Protocols:       volume.ProtocolTypes,
		UnixPermissions: volume.UnixPermissions,
		SecurityStyle:   volume.SecurityStyle,
		Phase:           volumePhase(volume.State),
	}
	if result.Phase == storage.VolumePhaseFailed {
		result.Message = volume.StateDetails
	}

	for _, mountTarget := range volume.MountTargets {
		if target := mountTargetFromExport(mountTarget.ExportPath); target != nil {
			result.MountTarget = target
			break
		}
	}

	if source := volume.Labels[labelSourceVolume]; source != "" {
		result.ClonedFrom = &storage.ClonedFrom{
			SourceVolume:   source,
			SourceSnapshot: volume.Labels[labelSourceSnapshot],
		}
	} else if volume.SourceSnapshot != "" {
		parts := strings.Split(volume.SourceSnapshot, "/")
		if len(parts) >= 4 && parts[len(parts)-2] == "snapshots" {
			result.ClonedFrom = &storage.ClonedFrom{
				SourceVolume:   parts[len(parts)-3],
				SourceSnapshot: parts[len(parts)-1],
			}
		}
	}

	return result
}

func snapshotFromGCNV(snapshot *gcnvapi.Snapshot) *storage.Snapshot {
	result := &storage.Snapshot{
		Name:      snapshot.Name,
		Volume:    snapshot.Volume,
		ID:        snapshot.FullName,
		Created:   snapshot.Created.UTC(),
		SizeBytes: uint64(snapshot.UsedBytes),
		Phase:     snapshotPhase(snapshot.State),
	}
	if result.Phase == storage.SnapshotPhaseFailed {
		result.Message = snapshot.StateDetails
	}
	return result
}
