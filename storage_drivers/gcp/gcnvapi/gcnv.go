// Copyright 2025 NetApp, Inc. All Rights Reserved.

package gcnvapi

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	netapp "cloud.google.com/go/netapp/apiv1"
	"cloud.google.com/go/netapp/apiv1/netapppb"
	"github.com/spf13/afero"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	. "github.com/netapp/dataops/logging"
	"github.com/netapp/dataops/utils/errors"
)

const (
	DefaultSDKTimeout = 30 * time.Second
	RevertTimeout     = 10 * time.Minute
	PaginationLimit   = 100
	GiB               = int64(1073741824)
)

var (
	capacityPoolNameRegex = regexp.MustCompile(`^projects/(?P<projectNumber>[^/]+)/locations/(?P<location>[^/]+)/storagePools/(?P<capacityPool>[^/]+)$`)
	volumeNameRegex       = regexp.MustCompile(`^projects/(?P<projectNumber>[^/]+)/locations/(?P<location>[^/]+)/volumes/(?P<volume>[^/]+)$`)
	snapshotNameRegex     = regexp.MustCompile(`^projects/(?P<projectNumber>[^/]+)/locations/(?P<location>[^/]+)/volumes/(?P<volume>[^/]+)/snapshots/(?P<snapshot>[^/]+)$`)
	networkNameRegex      = regexp.MustCompile(`^projects/(?P<projectNumber>[^/]+)/global/networks/(?P<network>[^/]+)$`)
)

// ClientConfig holds configuration data for the API driver object.
type ClientConfig struct {
	// GCP project number
	ProjectNumber string

	// GCP region
	Location string

	// Path to a service account key file; empty uses application default credentials
	APIKeyFile string

	SDKTimeout time.Duration // Timeout applied to all calls to the GCNV SDK
}

// Client encapsulates connection details.
type Client struct {
	config    *ClientConfig
	sdkClient *netapp.Client
}

var _ GCNV = Client{}

// NewClient is a factory method for creating a new SDK interface.
func NewClient(ctx context.Context, fs afero.Fs, config *ClientConfig) (GCNV, error) {
	if config.ProjectNumber == "" || config.Location == "" {
		return nil, errors.InvalidConfigError("GCNV project number and location are required")
	}
	if config.SDKTimeout == 0 {
		config.SDKTimeout = DefaultSDKTimeout
	}

	var credentials *google.Credentials
	var err error
	if config.APIKeyFile == "" {
		credentials, err = google.FindDefaultCredentials(ctx, netapp.DefaultAuthScopes()...)
		if err != nil {
			return nil, errors.WrapWithInvalidConfigError(err, "could not find default GCP credentials")
		}
	} else {
		keyBytes, readErr := afero.ReadFile(fs, config.APIKeyFile)
		if readErr != nil {
			return nil, errors.WrapWithInvalidConfigError(readErr, "could not read GCP key file")
		}
		credentials, err = google.CredentialsFromJSON(ctx, keyBytes, netapp.DefaultAuthScopes()...)
		if err != nil {
			return nil, errors.WrapWithInvalidConfigError(err, "invalid GCP key file")
		}
	}

	gcnvClient, err := netapp.NewClient(ctx, option.WithCredentials(credentials))
	if err != nil {
		return nil, errors.WrapWithAPIConnectionError(err, "could not create GCNV client")
	}

	return Client{
		config:    config,
		sdkClient: gcnvClient,
	}, nil
}

// ///////////////////////////////////////////////////////////////////////////////
// Functions to create & parse GCNV resource names
// ///////////////////////////////////////////////////////////////////////////////

// createBaseID creates the base GCNV-style ID for a project & location.
func (c Client) createBaseID(location string) string {
	return fmt.Sprintf("projects/%s/locations/%s", c.config.ProjectNumber, location)
}

// createCapacityPoolID creates the GCNV-style ID for a capacity pool.
func (c Client) createCapacityPoolID(location, capacityPool string) string {
	return fmt.Sprintf("projects/%s/locations/%s/storagePools/%s",
		c.config.ProjectNumber, location, capacityPool)
}

// createVolumeID creates the GCNV-style ID for a volume.
func (c Client) createVolumeID(location, volume string) string {
	return fmt.Sprintf("projects/%s/locations/%s/volumes/%s", c.config.ProjectNumber, location, volume)
}

// createSnapshotID creates the GCNV-style ID for a snapshot.
func (c Client) createSnapshotID(location, volume, snapshot string) string {
	return fmt.Sprintf("projects/%s/locations/%s/volumes/%s/snapshots/%s",
		c.config.ProjectNumber, location, volume, snapshot)
}

// parseResourceID matches a full resource name and returns its named parts.
func parseResourceID(regex *regexp.Regexp, kind, fullName string) (map[string]string, error) {
	match := regex.FindStringSubmatch(fullName)
	if match == nil {
		return nil, fmt.Errorf("%s name %s is invalid", kind, fullName)
	}

	paramsMap := make(map[string]string)
	for i, name := range regex.SubexpNames() {
		if i > 0 && i < len(match) {
			paramsMap[name] = match[i]
		}
	}
	return paramsMap, nil
}

// parseCapacityPoolID parses the GCNV-style full name for a capacity pool.
func parseCapacityPoolID(fullName string) (projectNumber, location, capacityPool string, err error) {
	params, err := parseResourceID(capacityPoolNameRegex, "capacity pool", fullName)
	if err != nil {
		return
	}
	return params["projectNumber"], params["location"], params["capacityPool"], nil
}

// parseVolumeID parses the GCNV-style full name for a volume.
func parseVolumeID(fullName string) (projectNumber, location, volume string, err error) {
	params, err := parseResourceID(volumeNameRegex, "volume", fullName)
	if err != nil {
		return
	}
	return params["projectNumber"], params["location"], params["volume"], nil
}

// parseSnapshotID parses the GCNV-style full name for a snapshot.
func parseSnapshotID(fullName string) (projectNumber, location, volume, snapshot string, err error) {
	params, err := parseResourceID(snapshotNameRegex, "snapshot", fullName)
	if err != nil {
		return
	}
	return params["projectNumber"], params["location"], params["volume"], params["snapshot"], nil
}

// parseNetworkID parses the GCNV-style full name for a network.
func parseNetworkID(fullName string) (projectNumber, network string, err error) {
	params, err := parseResourceID(networkNameRegex, "network", fullName)
	if err != nil {
		return
	}
	return params["projectNumber"], params["network"], nil
}

// ///////////////////////////////////////////////////////////////////////////////
// Functions to convert between GCNV SDK & internal structs
// ///////////////////////////////////////////////////////////////////////////////

func newCapacityPoolFromGCNVCapacityPool(pool *netapppb.StoragePool) (*CapacityPool, error) {
	_, location, name, err := parseCapacityPoolID(pool.Name)
	if err != nil {
		return nil, err
	}

	capacityPool := &CapacityPool{
		Name:         name,
		FullName:     pool.Name,
		Location:     location,
		ServiceLevel: ServiceLevelFromGCNVServiceLevel(pool.ServiceLevel),
		State:        pool.State.String(),
	}
	if _, network, err := parseNetworkID(pool.Network); err == nil {
		capacityPool.NetworkName = network
	}
	return capacityPool, nil
}

// newVolumeFromGCNVVolume creates a new internal Volume struct from a GCNV volume.
func newVolumeFromGCNVVolume(volume *netapppb.Volume) (*Volume, error) {
	if volume == nil {
		return nil, errors.New("nil volume")
	}

	_, location, volumeName, err := parseVolumeID(volume.Name)
	if err != nil {
		return nil, err
	}

	var protocolTypes []string
	for _, gcnvProtocolType := range volume.Protocols {
		protocolTypes = append(protocolTypes, VolumeProtocolFromGCNVProtocol(gcnvProtocolType))
	}

	result := &Volume{
		Name:            volumeName,
		ShareName:       volume.ShareName,
		FullName:        volume.Name,
		Location:        location,
		State:           VolumeStateFromGCNVState(volume.State),
		StateDetails:    volume.StateDetails,
		CapacityPool:    volume.StoragePool,
		SizeBytes:       volume.CapacityGib * GiB,
		ProtocolTypes:   protocolTypes,
		MountTargets:    mountTargetsFromGCNVVolume(volume),
		UnixPermissions: volume.UnixPermissions,
		Labels:          volume.Labels,
		SnapshotReserve: int64(volume.SnapReserve),
		SecurityStyle:   VolumeSecurityStyleFromGCNVSecurityStyle(volume.SecurityStyle),
	}
	if volume.RestoreParameters != nil {
		result.SourceSnapshot = volume.RestoreParameters.GetSourceSnapshot()
	}
	return result, nil
}

// mountTargetsFromGCNVVolume extracts the mount targets from a GCNV volume.
func mountTargetsFromGCNVVolume(volume *netapppb.Volume) []MountTarget {
	mounts := make([]MountTarget, 0, len(volume.MountOptions))
	for _, gcnvMountTarget := range volume.MountOptions {
		mounts = append(mounts, MountTarget{
			Export:     gcnvMountTarget.Export,
			ExportPath: gcnvMountTarget.ExportFull,
			Protocol:   VolumeProtocolFromGCNVProtocol(gcnvMountTarget.Protocol),
		})
	}
	return mounts
}

// newSnapshotFromGCNVSnapshot creates a new internal Snapshot struct from a GCNV snapshot.
func newSnapshotFromGCNVSnapshot(gcnvSnapshot *netapppb.Snapshot) (*Snapshot, error) {
	_, location, volumeName, snapshotName, err := parseSnapshotID(gcnvSnapshot.Name)
	if err != nil {
		return nil, err
	}

	snapshot := &Snapshot{
		Name:         snapshotName,
		FullName:     gcnvSnapshot.Name,
		Volume:       volumeName,
		Location:     location,
		State:        SnapshotStateFromGCNVState(gcnvSnapshot.State),
		StateDetails: gcnvSnapshot.StateDetails,
		UsedBytes:    int64(gcnvSnapshot.UsedBytes),
		Labels:       gcnvSnapshot.Labels,
	}

	if gcnvSnapshot.CreateTime != nil {
		snapshot.Created = gcnvSnapshot.CreateTime.AsTime()
	}

	return snapshot, nil
}

// classifyError converts a GCNV SDK failure into the shared taxonomy.
func classifyError(err error, message string, a ...any) error {
	switch {
	case IsGCNVNotFoundError(err):
		err = errors.WrapWithNotFoundError(err, "")
	case IsGCNVAlreadyExistsError(err):
		err = errors.WrapWithAlreadyExistsError(err, "")
	}
	return errors.WrapWithAPIConnectionError(err, message, a...)
}

// ///////////////////////////////////////////////////////////////////////////////
// Functions to retrieve capacity pools
// ///////////////////////////////////////////////////////////////////////////////

// CapacityPool fetches a capacity pool in the configured location by its short name.
func (c Client) CapacityPool(ctx context.Context, name string) (*CapacityPool, error) {
	logFields := LogFields{
		"API":          "GCNV.GetStoragePool",
		"capacityPool": name,
	}

	sdkCtx, sdkCancel := context.WithTimeout(ctx, c.config.SDKTimeout)
	defer sdkCancel()
	req := &netapppb.GetStoragePoolRequest{
		Name: c.createCapacityPoolID(c.config.Location, name),
	}
	pool, err := c.sdkClient.GetStoragePool(sdkCtx, req)
	if err != nil {
		Logc(ctx).WithFields(logFields).WithError(err).Debug("Could not read capacity pool.")
		return nil, classifyError(err, "could not get capacity pool %s", name)
	}

	return newCapacityPoolFromGCNVCapacityPool(pool)
}

// ///////////////////////////////////////////////////////////////////////////////
// Functions to retrieve and manage volumes
// ///////////////////////////////////////////////////////////////////////////////

// Volumes queries GCNV SDK for all volumes in the configured location.
func (c Client) Volumes(ctx context.Context) ([]*Volume, error) {
	logFields := LogFields{
		"API": "GCNV.ListVolumes",
	}

	var volumes []*Volume

	sdkCtx, sdkCancel := context.WithTimeout(ctx, c.config.SDKTimeout)
	defer sdkCancel()

	req := &netapppb.ListVolumesRequest{
		Parent:   c.createBaseID(c.config.Location),
		PageSize: PaginationLimit,
	}
	it := c.sdkClient.ListVolumes(sdkCtx, req)
	for {
		gcnvVolume, err := it.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			Logc(ctx).WithFields(logFields).WithError(err).Error("Could not read volumes.")
			return nil, classifyError(err, "could not list volumes")
		}

		volume, err := newVolumeFromGCNVVolume(gcnvVolume)
		if err != nil {
			Logc(ctx).WithFields(logFields).WithError(err).Warning("Skipping volume.")
			continue
		}
		volumes = append(volumes, volume)
	}

	return volumes, nil
}

// VolumeByName fetches a volume in the configured location by its short name.
func (c Client) VolumeByName(ctx context.Context, name string) (*Volume, error) {
	logFields := LogFields{
		"API":    "GCNV.GetVolume",
		"volume": name,
	}

	Logc(ctx).WithFields(logFields).Trace("Fetching volume by name.")

	sdkCtx, sdkCancel := context.WithTimeout(ctx, c.config.SDKTimeout)
	defer sdkCancel()
	req := &netapppb.GetVolumeRequest{
		Name: c.createVolumeID(c.config.Location, name),
	}
	gcnvVolume, err := c.sdkClient.GetVolume(sdkCtx, req)
	if err != nil {
		if IsGCNVNotFoundError(err) {
			Logc(ctx).WithFields(logFields).Debug("Volume not found.")
		} else {
			Logc(ctx).WithFields(logFields).WithError(err).Error("Error fetching volume.")
		}
		return nil, classifyError(err, "could not get volume %s", name)
	}

	return newVolumeFromGCNVVolume(gcnvVolume)
}

// CreateVolume issues a volume create request. The returned volume reflects the request, since
// GCNV has not finished provisioning it yet.
func (c Client) CreateVolume(ctx context.Context, request *VolumeCreateRequest) (*Volume, error) {
	var protocols []netapppb.Protocols
	for _, protocolType := range request.ProtocolTypes {
		protocols = append(protocols, GCNVProtocolFromVolumeProtocol(protocolType))
	}

	newVol := &netapppb.Volume{
		ShareName:       request.Name,
		StoragePool:     request.CapacityPool,
		CapacityGib:     request.SizeBytes / GiB,
		Protocols:       protocols,
		UnixPermissions: request.UnixPermissions,
		Labels:          request.Labels,
		SecurityStyle:   GCNVSecurityStyleFromVolumeSecurityStyle(request.SecurityStyle),
	}
	if request.SnapshotReserve != nil {
		newVol.SnapReserve = float64(*request.SnapshotReserve)
	}

	// Only set the snapshot ID if we are cloning
	if request.SnapshotID != "" {
		newVol.RestoreParameters = &netapppb.RestoreParameters{
			Source: &netapppb.RestoreParameters_SourceSnapshot{
				SourceSnapshot: request.SnapshotID,
			},
		}
	}

	logFields := LogFields{
		"API":          "GCNV.CreateVolume",
		"volume":       request.Name,
		"capacityPool": request.CapacityPool,
	}

	sdkCtx, sdkCancel := context.WithTimeout(ctx, c.config.SDKTimeout)
	defer sdkCancel()
	req := &netapppb.CreateVolumeRequest{
		Parent:   c.createBaseID(c.config.Location),
		VolumeId: request.Name,
		Volume:   newVol,
	}
	poller, err := c.sdkClient.CreateVolume(sdkCtx, req)
	if err != nil {
		Logc(ctx).WithFields(logFields).WithError(err).Error("Error creating volume.")
		return nil, classifyError(err, "could not create volume %s", request.Name)
	}

	Logc(ctx).WithFields(logFields).Info("Volume create request issued.")

	if _, pollErr := poller.Poll(sdkCtx); pollErr != nil {
		return nil, classifyError(pollErr, "volume %s create failed", request.Name)
	}

	// The volume doesn't exist yet, so forge the name to enable conversion to a Volume struct
	newVol.Name = c.createVolumeID(c.config.Location, request.Name)
	newVol.State = netapppb.Volume_CREATING
	return newVolumeFromGCNVVolume(newVol)
}

// DeleteVolume issues a volume delete request.
func (c Client) DeleteVolume(ctx context.Context, volume *Volume) error {
	name := volume.Name
	logFields := LogFields{
		"API":    "GCNV.DeleteVolume",
		"volume": name,
	}

	sdkCtx, sdkCancel := context.WithTimeout(ctx, c.config.SDKTimeout)
	defer sdkCancel()

	req := &netapppb.DeleteVolumeRequest{
		Name:  volume.FullName,
		Force: true,
	}
	poller, err := c.sdkClient.DeleteVolume(sdkCtx, req)
	if err != nil {
		Logc(ctx).WithFields(logFields).WithError(err).Error("Error deleting volume.")
		return classifyError(err, "could not delete volume %s", name)
	}

	Logc(ctx).WithFields(logFields).Debug("Volume delete request issued.")

	if pollErr := poller.Poll(sdkCtx); pollErr != nil {
		return classifyError(pollErr, "volume %s delete failed", name)
	}

	return nil
}

// ///////////////////////////////////////////////////////////////////////////////
// Functions to retrieve and manage snapshots
// ///////////////////////////////////////////////////////////////////////////////

// SnapshotsForVolume returns a list of snapshots on a volume.
func (c Client) SnapshotsForVolume(ctx context.Context, volume *Volume) ([]*Snapshot, error) {
	logFields := LogFields{
		"API":    "GCNV.ListSnapshots",
		"volume": volume.Name,
	}

	var snapshots []*Snapshot

	sdkCtx, sdkCancel := context.WithTimeout(ctx, c.config.SDKTimeout)
	defer sdkCancel()
	req := &netapppb.ListSnapshotsRequest{
		Parent:   volume.FullName,
		PageSize: PaginationLimit,
	}
	it := c.sdkClient.ListSnapshots(sdkCtx, req)
	for {
		gcnvSnapshot, err := it.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			Logc(ctx).WithFields(logFields).WithError(err).Error("Could not read snapshots.")
			return nil, classifyError(err, "could not list snapshots of volume %s", volume.Name)
		}

		snapshot, err := newSnapshotFromGCNVSnapshot(gcnvSnapshot)
		if err != nil {
			Logc(ctx).WithFields(logFields).WithError(err).Warning("Skipping snapshot.")
			continue
		}
		snapshots = append(snapshots, snapshot)
	}

	Logc(ctx).WithFields(logFields).Debug("Read snapshots from volume.")

	return snapshots, nil
}

// SnapshotForVolume fetches a specific snapshot on a volume by its name.
func (c Client) SnapshotForVolume(ctx context.Context, volume *Volume, snapshotName string) (*Snapshot, error) {
	logFields := LogFields{
		"API":      "GCNV.GetSnapshot",
		"volume":   volume.Name,
		"snapshot": snapshotName,
	}

	sdkCtx, sdkCancel := context.WithTimeout(ctx, c.config.SDKTimeout)
	defer sdkCancel()
	req := &netapppb.GetSnapshotRequest{
		Name: c.createSnapshotID(volume.Location, volume.Name, snapshotName),
	}
	gcnvSnapshot, err := c.sdkClient.GetSnapshot(sdkCtx, req)
	if err != nil {
		if IsGCNVNotFoundError(err) {
			Logc(ctx).WithFields(logFields).Debug("Snapshot not found.")
		} else {
			Logc(ctx).WithFields(logFields).WithError(err).Error("Error fetching snapshot.")
		}
		return nil, classifyError(err, "could not get snapshot %s", snapshotName)
	}

	return newSnapshotFromGCNVSnapshot(gcnvSnapshot)
}

// CreateSnapshot issues a snapshot create request.
func (c Client) CreateSnapshot(
	ctx context.Context, volume *Volume, snapshotName string, labels map[string]string,
) (*Snapshot, error) {
	logFields := LogFields{
		"API":      "GCNV.CreateSnapshot",
		"volume":   volume.Name,
		"snapshot": snapshotName,
	}

	newSnapshot := &netapppb.Snapshot{Labels: labels}

	sdkCtx, sdkCancel := context.WithTimeout(ctx, c.config.SDKTimeout)
	defer sdkCancel()
	req := &netapppb.CreateSnapshotRequest{
		Parent:     volume.FullName,
		Snapshot:   newSnapshot,
		SnapshotId: snapshotName,
	}
	poller, err := c.sdkClient.CreateSnapshot(sdkCtx, req)
	if err != nil {
		Logc(ctx).WithFields(logFields).WithError(err).Error("Error creating snapshot.")
		return nil, classifyError(err, "could not create snapshot %s", snapshotName)
	}

	Logc(ctx).WithFields(logFields).Info("Snapshot create request issued.")

	created, pollErr := poller.Poll(sdkCtx)
	if pollErr != nil {
		return nil, classifyError(pollErr, "snapshot %s create failed", snapshotName)
	}
	if created != nil {
		return newSnapshotFromGCNVSnapshot(created)
	}

	newSnapshot.Name = c.createSnapshotID(volume.Location, volume.Name, snapshotName)
	newSnapshot.State = netapppb.Snapshot_CREATING
	return newSnapshotFromGCNVSnapshot(newSnapshot)
}

// RestoreSnapshot reverts a volume to a snapshot and waits for the revert to finish.
func (c Client) RestoreSnapshot(ctx context.Context, volume *Volume, snapshot *Snapshot) error {
	logFields := LogFields{
		"API":      "GCNV.RevertVolume",
		"volume":   volume.Name,
		"snapshot": snapshot.Name,
	}

	sdkCtx, sdkCancel := context.WithTimeout(ctx, c.config.SDKTimeout)
	defer sdkCancel()
	req := &netapppb.RevertVolumeRequest{
		Name:       volume.FullName,
		SnapshotId: snapshot.Name,
	}
	poller, err := c.sdkClient.RevertVolume(sdkCtx, req)
	if err != nil {
		Logc(ctx).WithFields(logFields).WithError(err).Error("Error reverting volume to snapshot.")
		return classifyError(err, "could not revert volume %s to snapshot %s", volume.Name, snapshot.Name)
	}

	waitCtx, waitCancel := context.WithTimeout(ctx, RevertTimeout)
	defer waitCancel()
	if _, pollErr := poller.Wait(waitCtx); pollErr != nil {
		Logc(ctx).WithFields(logFields).WithError(pollErr).Error("Error polling for volume revert to snapshot result.")
		if IsGCNVTimeoutError(pollErr) {
			return errors.WrapWithTimeoutError(pollErr, "revert of volume %s did not finish", volume.Name)
		}
		return classifyError(pollErr, "revert of volume %s to snapshot %s failed", volume.Name, snapshot.Name)
	}

	Logc(ctx).WithFields(logFields).Debug("Volume reverted to snapshot.")

	return nil
}

// DeleteSnapshot issues a snapshot delete request.
func (c Client) DeleteSnapshot(ctx context.Context, volume *Volume, snapshot *Snapshot) error {
	logFields := LogFields{
		"API":      "GCNV.DeleteSnapshot",
		"volume":   volume.Name,
		"snapshot": snapshot.Name,
	}

	sdkCtx, sdkCancel := context.WithTimeout(ctx, c.config.SDKTimeout)
	defer sdkCancel()
	req := &netapppb.DeleteSnapshotRequest{
		Name: c.createSnapshotID(volume.Location, volume.Name, snapshot.Name),
	}
	poller, err := c.sdkClient.DeleteSnapshot(sdkCtx, req)
	if err != nil {
		Logc(ctx).WithFields(logFields).WithError(err).Error("Error deleting snapshot.")
		return classifyError(err, "could not delete snapshot %s", snapshot.Name)
	}

	Logc(ctx).WithFields(logFields).Debug("Snapshot delete request issued.")

	if pollErr := poller.Poll(sdkCtx); pollErr != nil {
		return classifyError(pollErr, "snapshot %s delete failed", snapshot.Name)
	}

	return nil
}

// ///////////////////////////////////////////////////////////////////////////////
// Miscellaneous utility functions and error types
// ///////////////////////////////////////////////////////////////////////////////

// ServiceLevelFromGCNVServiceLevel converts GCNV service level to string
func ServiceLevelFromGCNVServiceLevel(serviceLevel netapppb.ServiceLevel) string {
	switch serviceLevel {
	default:
		fallthrough
	case netapppb.ServiceLevel_SERVICE_LEVEL_UNSPECIFIED:
		return ServiceLevelUnspecified
	case netapppb.ServiceLevel_FLEX:
		return ServiceLevelFlex
	case netapppb.ServiceLevel_STANDARD:
		return ServiceLevelStandard
	case netapppb.ServiceLevel_PREMIUM:
		return ServiceLevelPremium
	case netapppb.ServiceLevel_EXTREME:
		return ServiceLevelExtreme
	}
}

// VolumeStateFromGCNVState converts GCNV volume state to string
func VolumeStateFromGCNVState(state netapppb.Volume_State) string {
	switch state {
	default:
		fallthrough
	case netapppb.Volume_STATE_UNSPECIFIED:
		return VolumeStateUnspecified
	case netapppb.Volume_READY:
		return VolumeStateReady
	case netapppb.Volume_CREATING:
		return VolumeStateCreating
	case netapppb.Volume_DELETING:
		return VolumeStateDeleting
	case netapppb.Volume_UPDATING:
		return VolumeStateUpdating
	case netapppb.Volume_RESTORING:
		return VolumeStateRestoring
	case netapppb.Volume_DISABLED:
		return VolumeStateDisabled
	case netapppb.Volume_ERROR:
		return VolumeStateError
	}
}

// VolumeSecurityStyleFromGCNVSecurityStyle converts GCNV volume security style to string
func VolumeSecurityStyleFromGCNVSecurityStyle(state netapppb.SecurityStyle) string {
	switch state {
	default:
		fallthrough
	case netapppb.SecurityStyle_SECURITY_STYLE_UNSPECIFIED:
		return SecurityStyleUnspecified
	case netapppb.SecurityStyle_NTFS:
		return SecurityStyleNTFS
	case netapppb.SecurityStyle_UNIX:
		return SecurityStyleUnix
	}
}

// GCNVSecurityStyleFromVolumeSecurityStyle converts string to GCNV volume security style
func GCNVSecurityStyleFromVolumeSecurityStyle(state string) netapppb.SecurityStyle {
	switch strings.ToLower(state) {
	default:
		fallthrough
	case SecurityStyleUnspecified:
		return netapppb.SecurityStyle_SECURITY_STYLE_UNSPECIFIED
	case SecurityStyleNTFS:
		return netapppb.SecurityStyle_NTFS
	case SecurityStyleUnix:
		return netapppb.SecurityStyle_UNIX
	}
}

// VolumeProtocolFromGCNVProtocol converts GCNV protocol type to string
func VolumeProtocolFromGCNVProtocol(protocol netapppb.Protocols) string {
	switch protocol {
	default:
		fallthrough
	case netapppb.Protocols_PROTOCOLS_UNSPECIFIED:
		return ProtocolTypeUnknown
	case netapppb.Protocols_NFSV3:
		return ProtocolTypeNFSv3
	case netapppb.Protocols_NFSV4:
		return ProtocolTypeNFSv41
	case netapppb.Protocols_SMB:
		return ProtocolTypeSMB
	}
}

// GCNVProtocolFromVolumeProtocol converts string to GCNV protocol type
func GCNVProtocolFromVolumeProtocol(protocol string) netapppb.Protocols {
	switch protocol {
	default:
		fallthrough
	case ProtocolTypeUnknown:
		return netapppb.Protocols_PROTOCOLS_UNSPECIFIED
	case ProtocolTypeNFSv3:
		return netapppb.Protocols_NFSV3
	case ProtocolTypeNFSv41:
		return netapppb.Protocols_NFSV4
	case ProtocolTypeSMB:
		return netapppb.Protocols_SMB
	}
}

// SnapshotStateFromGCNVState converts GCNV snapshot state to string
func SnapshotStateFromGCNVState(state netapppb.Snapshot_State) string {
	switch state {
	default:
		fallthrough
	case netapppb.Snapshot_STATE_UNSPECIFIED:
		return SnapshotStateUnspecified
	case netapppb.Snapshot_READY:
		return SnapshotStateReady
	case netapppb.Snapshot_CREATING:
		return SnapshotStateCreating
	case netapppb.Snapshot_DELETING:
		return SnapshotStateDeleting
	case netapppb.Snapshot_UPDATING:
		return SnapshotStateUpdating
	case netapppb.Snapshot_DISABLED:
		return SnapshotStateDisabled
	case netapppb.Snapshot_ERROR:
		return SnapshotStateError
	}
}

func hasCode(err error, code codes.Code) bool {
	if err == nil {
		return false
	}
	s, ok := status.FromError(err)
	return ok && s.Code() == code
}

// IsGCNVNotFoundError checks whether an error returned from the GCNV SDK contains a 404 (Not Found) error.
func IsGCNVNotFoundError(err error) bool {
	return hasCode(err, codes.NotFound)
}

// IsGCNVAlreadyExistsError checks whether an error returned from the GCNV SDK contains a 409 (Conflict) error.
func IsGCNVAlreadyExistsError(err error) bool {
	return hasCode(err, codes.AlreadyExists)
}

// IsGCNVTimeoutError checks whether an error returned from the GCNV indicates a timeout, deadline exceeded, or
// context cancellation.
func IsGCNVTimeoutError(err error) bool {
	return errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded) ||
		hasCode(err, codes.DeadlineExceeded) ||
		hasCode(err, codes.Canceled)
}
