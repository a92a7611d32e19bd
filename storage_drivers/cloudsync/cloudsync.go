// Copyright 2025 NetApp, Inc. All Rights Reserved.

package cloudsync

import (
	"context"
	"fmt"
	"sort"

	"github.com/netapp/dataops/config"
	. "github.com/netapp/dataops/logging"
	"github.com/netapp/dataops/storage"
	"github.com/netapp/dataops/utils/errors"
)

// API is the subset of the Cloud Sync REST API the driver uses.
type API interface {
	RelationshipGet(ctx context.Context, id string) (*Relationship, error)
	RelationshipList(ctx context.Context) ([]*Relationship, error)
	RelationshipSync(ctx context.Context, id string) error
}

// Driver exposes Cloud Sync relationships as replication relationships.
type Driver struct {
	API API
}

var _ storage.ReplicationBackend = &Driver{}

// NewDriver builds a driver from the Cloud Central refresh token in the config file.
func NewDriver(ctx context.Context, cfg *config.Config) (*Driver, error) {
	if cfg == nil || cfg.CloudCentralRefreshToken == "" {
		return nil, errors.InvalidConfigError(
			"Cloud Sync requires cloudCentralRefreshToken to be set in the config file")
	}
	client, err := NewClient(ctx, ClientConfig{RefreshToken: cfg.CloudCentralRefreshToken})
	if err != nil {
		return nil, err
	}
	return &Driver{API: client}, nil
}

func (d *Driver) Name() string {
	return "cloudsync"
}

func (d *Driver) GetRelationship(ctx context.Context, id string) (*storage.Relationship, error) {
	relationship, err := d.API.RelationshipGet(ctx, id)
	if err != nil {
		return nil, err
	}
	return relationshipFromCloudSync(relationship), nil
}

// ListRelationships returns every relationship of the account, sorted by id.
func (d *Driver) ListRelationships(ctx context.Context) ([]*storage.Relationship, error) {
	relationships, err := d.API.RelationshipList(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*storage.Relationship, 0, len(relationships))
	for _, relationship := range relationships {
		result = append(result, relationshipFromCloudSync(relationship))
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

// StartTransfer starts a sync. A missing relationship is reported as a sync failure since
// Cloud Sync ids cannot be validated before the call.
func (d *Driver) StartTransfer(ctx context.Context, id string) error {
	if err := d.API.RelationshipSync(ctx, id); err != nil {
		if errors.IsNotFoundError(err) {
			return errors.CloudSyncSyncOperationError("Cloud Sync relationship %s does not exist", id)
		}
		return err
	}

	Logc(ctx).WithField("relationship", id).Debug("Cloud Sync transfer requested.")
	return nil
}

func relationshipFromCloudSync(relationship *Relationship) *storage.Relationship {
	result := &storage.Relationship{
		ID:          relationship.ID,
		Kind:        storage.ReplicationCloudSync,
		Source:      endpointFromCloudSync(relationship.Source),
		Destination: endpointFromCloudSync(relationship.Target),
		Healthy:     true,
		State:       storage.TransferStateIdle,
	}
	if relationship.Schedule != nil && relationship.Schedule.Enabled {
		result.Schedule = scheduleString(relationship.Schedule)
	}

	if relationship.Activity == nil {
		return result
	}
	switch relationship.Activity.Status {
	case ActivityStatusRunning:
		result.State = storage.TransferStateTransferring
	case ActivityStatusDone:
		result.State = storage.TransferStateIdle
	case ActivityStatusFailed:
		result.State = storage.TransferStateFailed
		result.Healthy = false
		result.Message = relationship.Activity.FailureMessage
	default:
		result.State = storage.TransferState(relationship.Activity.Status)
	}
	return result
}

func endpointFromCloudSync(endpoint *Endpoint) storage.Endpoint {
	switch {
	case endpoint == nil:
		return storage.Endpoint{}
	case endpoint.NFS != nil:
		path := endpoint.NFS.Path
		if path == "" {
			path = endpoint.NFS.Export
		}
		return storage.Endpoint{
			Cluster: endpoint.NFS.Host,
			Path:    fmt.Sprintf("%s:%s", endpoint.NFS.Host, path),
		}
	case endpoint.S3 != nil:
		path := "s3://" + endpoint.S3.Bucket
		if endpoint.S3.Prefix != "" {
			path += "/" + endpoint.S3.Prefix
		}
		return storage.Endpoint{Path: path}
	default:
		return storage.Endpoint{Path: endpoint.Protocol}
	}
}

func scheduleString(schedule *Schedule) string {
	switch {
	case schedule.SyncInDays > 0 && schedule.SyncInHours > 0:
		return fmt.Sprintf("every %dd%dh", schedule.SyncInDays, schedule.SyncInHours)
	case schedule.SyncInDays > 0:
		return fmt.Sprintf("every %dd", schedule.SyncInDays)
	case schedule.SyncInHours > 0:
		return fmt.Sprintf("every %dh", schedule.SyncInHours)
	default:
		return ""
	}
}
