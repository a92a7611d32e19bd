// Copyright 2025 NetApp, Inc. All Rights Reserved.

package ontap

import (
	"context"
	"sort"

	. "github.com/netapp/dataops/logging"
	"github.com/netapp/dataops/storage"
	"github.com/netapp/dataops/storage_drivers/ontap/api"
	"github.com/netapp/dataops/utils/errors"
)

// GetRelationship returns a SnapMirror relationship by UUID.
func (d *NASStorageDriver) GetRelationship(ctx context.Context, id string) (*storage.Relationship, error) {
	relationship, err := d.API.SnapmirrorRelationshipGet(ctx, id)
	if err != nil {
		return nil, api.ClassifyError(err, "could not get SnapMirror relationship %s", id)
	}
	return relationshipFromREST(relationship), nil
}

// ListRelationships returns every SnapMirror relationship, sorted by destination.
func (d *NASStorageDriver) ListRelationships(ctx context.Context) ([]*storage.Relationship, error) {
	relationships, err := d.API.SnapmirrorRelationshipList(ctx)
	if err != nil {
		return nil, api.ClassifyError(err, "could not list SnapMirror relationships")
	}

	result := make([]*storage.Relationship, 0, len(relationships))
	for _, relationship := range relationships {
		result = append(result, relationshipFromREST(relationship))
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Destination.String() < result[j].Destination.String()
	})
	return result, nil
}

// StartTransfer starts a SnapMirror update. A transfer already in progress is not an error;
// the caller observes it through GetRelationship.
func (d *NASStorageDriver) StartTransfer(ctx context.Context, id string) error {
	fields := traceFields("StartTransfer", LogFields{"relationship": id})
	Logc(ctx).WithFields(fields).Trace(">>>> StartTransfer")
	defer Logc(ctx).WithFields(fields).Trace("<<<< StartTransfer")

	err := d.API.SnapmirrorTransferStart(ctx, id)
	if err == nil {
		Logc(ctx).WithField("relationship", id).Info("Started SnapMirror transfer.")
		return nil
	}

	var restErr api.RestError
	if errors.As(err, &restErr) && restErr.Code() == api.SNAPMIRROR_TRANSFER_IN_PROGRESS {
		Logc(ctx).WithField("relationship", id).Warn("SnapMirror transfer already in progress.")
		return nil
	}
	return api.ClassifyError(err, "could not start transfer on SnapMirror relationship %s", id)
}
