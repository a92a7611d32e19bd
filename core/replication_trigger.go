// Copyright 2025 NetApp, Inc. All Rights Reserved.

package core

import (
	"context"

	. "github.com/netapp/dataops/logging"
	"github.com/netapp/dataops/pkg/poll"
	"github.com/netapp/dataops/storage"
	"github.com/netapp/dataops/utils/errors"
)

// ReplicationTrigger starts transfers on existing replication relationships.
type ReplicationTrigger struct {
	backends map[storage.ReplicationKind]storage.ReplicationBackend
	settings Settings
}

func NewReplicationTrigger(
	backends map[storage.ReplicationKind]storage.ReplicationBackend, settings Settings,
) *ReplicationTrigger {
	if backends == nil {
		backends = make(map[storage.ReplicationKind]storage.ReplicationBackend)
	}
	return &ReplicationTrigger{backends: backends, settings: settings}
}

func (r *ReplicationTrigger) backend(kind storage.ReplicationKind) (storage.ReplicationBackend, error) {
	backend, ok := r.backends[kind]
	if !ok || backend == nil {
		return nil, errors.UnsupportedError("no %s backend is configured", kind)
	}
	return backend, nil
}

// Trigger starts a transfer. With wait set it polls, after a warm-up, until the transfer
// ends. XCP transfers run to completion within StartTransfer and are never polled.
func (r *ReplicationTrigger) Trigger(ctx context.Context, kind storage.ReplicationKind, id string, wait bool) error {
	if id == "" {
		if kind == storage.ReplicationSnapMirror {
			return errors.InvalidSnapMirrorParameterError("relationship UUID is mandatory")
		}
		return errors.ReplicationSyncError("%s relationship id is mandatory", kind)
	}
	backend, err := r.backend(kind)
	if err != nil {
		return err
	}

	fields := LogFields{"kind": kind, "relationship": id}
	Logc(ctx).WithFields(fields).Debug("Starting transfer.")

	if err = backend.StartTransfer(ctx, id); err != nil {
		if kind == storage.ReplicationSnapMirror && errors.IsNotFoundError(err) {
			return errors.InvalidSnapMirrorParameterError("SnapMirror relationship %s does not exist", id)
		}
		return err
	}
	transfersTotal.WithLabelValues(string(kind)).Inc()
	Logc(ctx).WithFields(fields).Info("Transfer started.")

	if !wait || kind == storage.ReplicationXCP {
		return nil
	}

	cfg := r.settings.Replication
	cfg.Name = string(kind)
	_, err = poll.WaitUntil(ctx, func(ctx context.Context) (*storage.Relationship, poll.Status, error) {
		relationship, err := backend.GetRelationship(ctx, id)
		if err != nil {
			return nil, poll.Pending, err
		}
		status, err := transferStatus(kind, relationship)
		return relationship, status, err
	}, cfg)
	if err != nil {
		Logc(ctx).WithFields(fields).WithError(err).Error("Transfer did not complete.")
		return err
	}

	Logc(ctx).WithFields(fields).Info("Transfer complete.")
	return nil
}

// transferStatus classifies one observation of a relationship. Failures are reported with
// the kind-specific error; any state not recognized here is itself a failure.
func transferStatus(kind storage.ReplicationKind, relationship *storage.Relationship) (poll.Status, error) {
	switch relationship.State {
	case storage.TransferStateTransferring:
		return poll.Pending, nil
	case storage.TransferStateIdle:
		if relationship.Healthy {
			return poll.Done, nil
		}
		return poll.Failed, syncFailure(kind, relationship, "relationship is unhealthy")
	case storage.TransferStateFailed:
		return poll.Failed, syncFailure(kind, relationship, "transfer failed")
	default:
		return poll.Failed, errors.ReplicationSyncError("unknown transfer state '%s' for %s relationship %s",
			relationship.State, kind, relationship.ID)
	}
}

func syncFailure(kind storage.ReplicationKind, relationship *storage.Relationship, fallback string) error {
	message := relationship.Message
	if message == "" {
		message = fallback
	}
	switch kind {
	case storage.ReplicationSnapMirror:
		return errors.SnapMirrorSyncOperationError(message)
	case storage.ReplicationCloudSync:
		return errors.CloudSyncSyncOperationError(message)
	default:
		return errors.ReplicationSyncError(message)
	}
}
