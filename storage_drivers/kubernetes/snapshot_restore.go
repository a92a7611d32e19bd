// Copyright 2025 NetApp, Inc. All Rights Reserved.

package kubernetes

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
	"k8s.io/apimachinery/pkg/runtime/schema"

	. "github.com/netapp/dataops/logging"
	"github.com/netapp/dataops/utils/errors"
)

// Trident in-place snapshot restore action
const (
	restoreActionAPIVersion = "trident.netapp.io/v1"
	restoreActionKind       = "TridentActionSnapshotRestore"

	restoreStateSucceeded  = "Succeeded"
	restoreStateInProgress = "In progress"
	restoreStateFailed     = "Failed"
)

var restoreActionResource = schema.GroupVersionResource{
	Group:    "trident.netapp.io",
	Version:  "v1",
	Resource: "tridentactionsnapshotrestores",
}

func restoreActionName(volume string) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return fmt.Sprintf("restore-%s-%s", volume, suffix)
}

// RestoreSnapshot reverts a PVC to one of its VolumeSnapshots by creating a Trident snapshot
// restore action and waiting for it to finish. The action is removed once it completes.
func (d *Driver) RestoreSnapshot(ctx context.Context, volume, name string) error {
	if _, err := d.getVolumeSnapshot(ctx, volume, name); err != nil {
		return err
	}

	actionName := restoreActionName(volume)
	action := &unstructured.Unstructured{Object: map[string]any{
		"apiVersion": restoreActionAPIVersion,
		"kind":       restoreActionKind,
		"metadata": map[string]any{
			"name":      actionName,
			"namespace": d.config.Namespace,
		},
		"spec": map[string]any{
			"pvcName":            volume,
			"volumeSnapshotName": name,
		},
	}}

	actions := d.dynamicClient.Resource(restoreActionResource).Namespace(d.config.Namespace)
	if _, err := actions.Create(ctx, action, metav1.CreateOptions{}); err != nil {
		return classifyError(err, "could not create snapshot restore action for PersistentVolumeClaim %s", volume)
	}

	logFields := LogFields{"pvc": volume, "snapshot": name, "action": actionName}
	Logc(ctx).WithFields(logFields).Info("Created snapshot restore action.")

	defer func() {
		if err := actions.Delete(ctx, actionName, metav1.DeleteOptions{}); err != nil {
			Logc(ctx).WithFields(logFields).WithError(err).Warn("Could not delete snapshot restore action.")
		}
	}()

	checkAction := func() error {
		current, err := actions.Get(ctx, actionName, metav1.GetOptions{})
		if err != nil {
			return backoff.Permanent(classifyError(err, "could not read snapshot restore action %s", actionName))
		}

		state, _, _ := unstructured.NestedString(current.Object, "status", "state")
		message, _, _ := unstructured.NestedString(current.Object, "status", "message")
		switch state {
		case restoreStateSucceeded:
			return nil
		case restoreStateFailed:
			return backoff.Permanent(errors.TerminalStateError(
				"snapshot restore of %s to %s failed: %s", volume, name, message))
		case "", restoreStateInProgress:
			return fmt.Errorf("snapshot restore action %s is %q", actionName, state)
		default:
			return backoff.Permanent(errors.TerminalStateError(
				"snapshot restore action %s is in unexpected state %q", actionName, state))
		}
	}

	notify := func(err error, duration time.Duration) {
		Logc(ctx).WithFields(logFields).WithField("increment", duration).Debug("Waiting for snapshot restore.")
	}

	if err := backoff.RetryNotify(checkAction, backoff.WithContext(d.restoreBackOff(), ctx), notify); err != nil {
		if errors.IsTerminalStateError(err) || errors.IsAPIConnectionError(err) {
			return err
		}
		return errors.TimeoutError("snapshot restore of %s to %s did not finish: %v", volume, name, err)
	}

	Logc(ctx).WithFields(logFields).Info("Restored PersistentVolumeClaim from VolumeSnapshot.")
	return nil
}
