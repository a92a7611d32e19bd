// Copyright 2025 NetApp, Inc. All Rights Reserved.

package logging

import (
	log "github.com/sirupsen/logrus"
)

const (
	ContextKeyRequestID     ContextKey = "requestID"
	ContextKeyRequestSource ContextKey = "requestSource"
	ContextKeyBackend       ContextKey = "backend"

	ContextSourceCLI      = "CLI"
	ContextSourceMCP      = "MCP"
	ContextSourceLibrary  = "Library"
	ContextSourceInternal = "Internal"

	AuditVolumeDelete   = AuditEvent("volume_delete")
	AuditSnapshotDelete = AuditEvent("snapshot_delete")
	AuditSnapshotPrune  = AuditEvent("snapshot_prune")
	AuditRestore        = AuditEvent("snapshot_restore")
)

// ContextKey is used for context.Context value. The value requires a key that is not primitive type.
type ContextKey string

type LogFields = log.Fields

type AuditEvent string
