// Copyright 2025 NetApp, Inc. All Rights Reserved.

package ontap

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/netapp/dataops/config"
	"github.com/netapp/dataops/pkg/convert"
	"github.com/netapp/dataops/storage"
	"github.com/netapp/dataops/storage_drivers/ontap/api"
	"github.com/netapp/dataops/utils/errors"
)

const (
	ProtocolNFS = "nfs"

	volumeTypeReadWrite   = "rw"
	volumeTypeDataProtect = "dp"
	defaultSecurityStyle  = "unix"
	junctionPathSeparator = "/"
)

// DriverConfig holds the settings the driver applies to every request.
type DriverConfig struct {
	ManagementLIF string
	DataLIF       string
	SVM           string
	Username      string
	Password      string
	VerifySSLCert bool
	Defaults      storage.VolumeSpec
}

// NewDriverConfig builds the driver settings from the toolkit config file.
func NewDriverConfig(cfg *config.Config, defaults storage.VolumeSpec) DriverConfig {
	return DriverConfig{
		ManagementLIF: cfg.Hostname,
		DataLIF:       cfg.DataLIF,
		SVM:           cfg.SVM,
		Username:      cfg.Username,
		Password:      cfg.Password,
		VerifySSLCert: cfg.VerifySSLCert,
		Defaults:      defaults,
	}
}

// permissionsToREST converts "0755" into the integer form ONTAP expects (755).
func permissionsToREST(permissions string) (*int64, error) {
	if permissions == "" {
		return nil, nil
	}
	if err := storage.ValidateUnixPermissions(permissions); err != nil {
		return nil, err
	}
	value, err := strconv.ParseInt(permissions, 10, 64)
	if err != nil {
		return nil, errors.WrapWithInvalidVolumeParameterError(err, "invalid unix permissions %s", permissions)
	}
	return &value, nil
}

// permissionsFromREST converts 755 into "0755".
func permissionsFromREST(permissions *int64) string {
	if permissions == nil {
		return ""
	}
	return fmt.Sprintf("0%03d", *permissions)
}

func idToREST(name, value string) (*int64, error) {
	if value == "" {
		return nil, nil
	}
	id, err := convert.ToPositiveInt(value)
	if err != nil {
		return nil, errors.WrapWithInvalidVolumeParameterError(err, "invalid %s '%s'", name, value)
	}
	id64 := int64(id)
	return &id64, nil
}

func volumePhase(state string) storage.VolumePhase {
	switch state {
	case api.VolumeStateError:
		return storage.VolumePhaseFailed
	case api.VolumeStateMixed:
		return storage.VolumePhasePending
	default:
		return storage.VolumePhaseReady
	}
}

func junctionPath(name string) string {
	return junctionPathSeparator + name
}

// volumeFromREST converts an ONTAP volume into the toolkit volume model.
func volumeFromREST(volume *api.Volume, dataLIF string) *storage.Volume {
	result := &storage.Volume{
		Name:      volume.Name,
		ID:        volume.UUID,
		SizeBytes: uint64(convert.Deref(volume.Size)),
		Type:      volume.Style,
		Protocols: []string{ProtocolNFS},
		Phase:     volumePhase(volume.State),
	}
	if volume.State == api.VolumeStateError {
		result.Message = fmt.Sprintf("volume %s is in state %s", volume.Name, volume.State)
	}

	for _, aggr := range volume.Aggregates {
		result.Aggregates = append(result.Aggregates, aggr.Name)
	}
	if volume.SnapshotPolicy != nil {
		result.SnapshotPolicy = volume.SnapshotPolicy.Name
	}

	if nas := volume.Nas; nas != nil {
		if nas.UID != nil {
			result.UnixUID = strconv.FormatInt(*nas.UID, 10)
		}
		if nas.GID != nil {
			result.UnixGID = strconv.FormatInt(*nas.GID, 10)
		}
		result.UnixPermissions = permissionsFromREST(nas.UnixPermissions)
		result.SecurityStyle = nas.SecurityStyle
		if nas.ExportPolicy != nil {
			result.ExportPolicy = nas.ExportPolicy.Name
		}
		if nas.Path != "" {
			result.MountTarget = &storage.MountTarget{Server: dataLIF, Path: nas.Path}
		}
	}

	if clone := volume.Clone; clone != nil && convert.Deref(clone.IsFlexclone) && clone.ParentVolume != nil {
		result.ClonedFrom = &storage.ClonedFrom{SourceVolume: clone.ParentVolume.Name}
		if clone.ParentSnapshot != nil {
			result.ClonedFrom.SourceSnapshot = clone.ParentSnapshot.Name
		}
	}

	return result
}

// snapshotFromREST converts an ONTAP snapshot. ONTAP snapshots are created atomically, so
// every snapshot it reports is ready.
func snapshotFromREST(volumeName string, snapshot *api.Snapshot) *storage.Snapshot {
	result := &storage.Snapshot{
		Name:      snapshot.Name,
		Volume:    volumeName,
		ID:        snapshot.UUID,
		SizeBytes: uint64(convert.Deref(snapshot.Size)),
		Phase:     storage.SnapshotPhaseReady,
		Label:     snapshot.SnapmirrorLabel,
	}
	if snapshot.CreateTime != nil {
		result.Created = time.Time(*snapshot.CreateTime).UTC()
	}
	return result
}

func endpointFromREST(endpoint *api.SnapmirrorEndpoint) storage.Endpoint {
	if endpoint == nil {
		return storage.Endpoint{}
	}
	result := storage.Endpoint{Path: endpoint.Path}
	if endpoint.Cluster != nil {
		result.Cluster = endpoint.Cluster.Name
	}
	if svm, volume, found := strings.Cut(endpoint.Path, ":"); found {
		result.SVM = svm
		result.Volume = volume
	}
	if endpoint.Svm != nil && endpoint.Svm.Name != "" {
		result.SVM = endpoint.Svm.Name
	}
	return result
}

func transferState(transfer *api.SnapmirrorTransfer) storage.TransferState {
	if transfer == nil {
		return storage.TransferStateIdle
	}
	switch transfer.State {
	case "", api.TransferStateSuccess:
		return storage.TransferStateIdle
	case api.TransferStateQueued, api.TransferStatePreparing, api.TransferStateTransferring,
		api.TransferStateFinalizing, api.TransferStateAborting:
		return storage.TransferStateTransferring
	case api.TransferStateFailed, api.TransferStateHardAborted:
		return storage.TransferStateFailed
	default:
		return storage.TransferState(transfer.State)
	}
}

// relationshipFromREST converts a SnapMirror relationship.
func relationshipFromREST(relationship *api.SnapmirrorRelationship) *storage.Relationship {
	result := &storage.Relationship{
		ID:          relationship.UUID,
		Kind:        storage.ReplicationSnapMirror,
		Source:      endpointFromREST(relationship.Source),
		Destination: endpointFromREST(relationship.Destination),
		Schedule:    relationship.Schedule,
		Healthy:     convert.Deref(relationship.Healthy),
		State:       transferState(relationship.Transfer),
	}
	if relationship.Policy != nil {
		result.Policy = relationship.Policy.Name
	}

	var reasons []string
	for _, reason := range relationship.UnhealthyReason {
		if reason.Message != "" {
			reasons = append(reasons, reason.Message)
		}
	}
	result.Message = strings.Join(reasons, "; ")

	return result
}
