// Copyright 2025 NetApp, Inc. All Rights Reserved.

// Package xcp runs NetApp XCP sync jobs with the locally installed xcp binary.
package xcp

import (
	"context"
	"strings"

	. "github.com/netapp/dataops/logging"
	"github.com/netapp/dataops/storage"
	"github.com/netapp/dataops/utils/errors"
	"github.com/netapp/dataops/utils/exec"
)

const DefaultBinary = "xcp"

type exitCoder interface {
	ExitCode() int
}

// Driver treats an XCP catalog id as a replication relationship. A transfer is one run of
// `xcp sync -id <id>`, and it ends when the process exits.
type Driver struct {
	Binary  string
	command exec.Command
}

var _ storage.ReplicationBackend = &Driver{}

func NewDriver(binary string) *Driver {
	return NewDriverWithCommand(binary, exec.NewCommand())
}

func NewDriverWithCommand(binary string, command exec.Command) *Driver {
	if binary == "" {
		binary = DefaultBinary
	}
	return &Driver{Binary: binary, command: command}
}

func (d *Driver) Name() string {
	return "xcp"
}

// StartTransfer blocks until the sync finishes. A non-zero exit is a ReplicationSyncError
// carrying the tail of the output.
func (d *Driver) StartTransfer(ctx context.Context, id string) error {
	fields := LogFields{"binary": d.Binary, "id": id}
	Logc(ctx).WithFields(fields).Info("Running XCP sync.")

	out, err := d.command.Execute(ctx, d.Binary, "sync", "-id", id)
	if err == nil {
		Logc(ctx).WithFields(fields).Info("XCP sync complete.")
		return nil
	}

	if ctx.Err() != nil {
		return errors.WrapWithTimeoutError(ctx.Err(), "XCP sync of %s was interrupted", id)
	}

	var exitErr exitCoder
	if errors.As(err, &exitErr) {
		Logc(ctx).WithFields(fields).WithField("exitCode", exitErr.ExitCode()).Error("XCP sync failed.")
		return errors.ReplicationSyncError("XCP sync of %s exited with code %d: %s", id, exitErr.ExitCode(),
			lastLine(string(out)))
	}
	return errors.ReplicationSyncError("could not run %s; %v", d.Binary, err)
}

// GetRelationship is not supported; XCP keeps no queryable transfer state.
func (d *Driver) GetRelationship(_ context.Context, id string) (*storage.Relationship, error) {
	return nil, errors.UnsupportedError("XCP job %s has no observable state", id)
}

func (d *Driver) ListRelationships(_ context.Context) ([]*storage.Relationship, error) {
	return nil, errors.UnsupportedError("listing XCP jobs is not supported")
}

func lastLine(out string) string {
	lines := strings.Split(strings.TrimSpace(out), "\n")
	return strings.TrimSpace(lines[len(lines)-1])
}
