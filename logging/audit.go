// Copyright 2025 NetApp, Inc. All Rights Reserved.

package logging

import (
	"context"
)

const auditKey = ContextKey("audit")

var auditor AuditLogger = newAuditLogger(false)

// AuditLogger records destructive operations (deletes, prunes, restores) at info level with
// an "audit" field so they can be filtered out of the regular log stream.
type AuditLogger interface {
	Log(ctx context.Context, event AuditEvent, fields LogFields, message string)
	Logf(ctx context.Context, event AuditEvent, fields LogFields, format string, args ...interface{})
}

type auditLogger struct {
	enabled bool
}

func InitAuditLogger(disabled bool) {
	auditor = newAuditLogger(disabled)
}

func Audit() AuditLogger {
	return auditor
}

func newAuditLogger(disabled bool) AuditLogger {
	return &auditLogger{enabled: !disabled}
}

func (a *auditLogger) Log(ctx context.Context, event AuditEvent, fields LogFields, message string) {
	if a.enabled {
		Logc(ctx).WithField(string(auditKey), event).WithFields(map[string]interface{}(fields)).Info(message)
	}
}

func (a *auditLogger) Logf(ctx context.Context, event AuditEvent, fields LogFields, format string, args ...interface{}) {
	if a.enabled {
		Logc(ctx).WithField(string(auditKey), event).WithFields(map[string]interface{}(fields)).Infof(format, args...)
	}
}
