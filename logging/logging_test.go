// Copyright 2025 NetApp, Inc. All Rights Reserved.

package logging

import (
	"context"
	"io"
	"os"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	// Disable any standard log output
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func TestLogc(t *testing.T) {
	ctx := GenerateRequestContext(context.Background(), "req1", ContextSourceCLI)
	entry := Logc(ctx)

	assert.Equal(t, "req1", entry.Data[string(ContextKeyRequestID)])
	assert.Equal(t, ContextSourceCLI, entry.Data[string(ContextKeyRequestSource)])
	_, ok := entry.Data[string(ContextKeyBackend)]
	assert.False(t, ok, "backend field should be absent")
}

func TestLogc_WithBackend(t *testing.T) {
	ctx := WithBackend(context.Background(), "ontap")
	entry := Logc(ctx)
	assert.Equal(t, "ontap", entry.Data[string(ContextKeyBackend)])
}

func TestLogc_WithLogFields(t *testing.T) {
	ctx := GenerateRequestContext(context.Background(), "req1", ContextSourceCLI)
	fields := LogFields{"volume": "v1", "size": 1024}

	entry := Logc(ctx).WithFields(fields)
	assert.Equal(t, "v1", entry.Data["volume"])
	assert.Equal(t, 1024, entry.Data["size"])
	assert.Equal(t, "req1", entry.Data[string(ContextKeyRequestID)])

	var logrusFields log.Fields = fields
	assert.Len(t, logrusFields, 2)
}

func TestGenerateRequestContext(t *testing.T) {
	tests := []struct {
		name           string
		ctx            context.Context
		requestID      string
		requestSource  string
		expectedID     string
		expectedSource string
	}{
		{"new ids", context.Background(), "id", "CLI", "id", "CLI"},
		{"nil context", nil, "id", "", "id", "Unknown"},
		{
			"existing id wins", context.WithValue(context.Background(), ContextKeyRequestID, "1234"),
			"id", "MCP", "1234", "MCP",
		},
		{
			"existing source wins", context.WithValue(context.Background(), ContextKeyRequestSource, "CLI"),
			"id", "MCP", "id", "CLI",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctx := GenerateRequestContext(tc.ctx, tc.requestID, tc.requestSource)
			assert.Equal(t, tc.expectedID, ctx.Value(ContextKeyRequestID))
			assert.Equal(t, tc.expectedSource, ctx.Value(ContextKeyRequestSource))
		})
	}

	ctx := GenerateRequestContext(context.Background(), "", "")
	assert.NotEmpty(t, ctx.Value(ContextKeyRequestID), "a request ID should be generated")
}

func TestInitLogLevel(t *testing.T) {
	defer log.SetLevel(log.InfoLevel)

	assert.NoError(t, InitLogLevel(true, "error"))
	assert.Equal(t, log.DebugLevel, log.GetLevel())

	assert.NoError(t, InitLogLevel(false, "warn"))
	assert.Equal(t, log.WarnLevel, log.GetLevel())

	assert.Error(t, InitLogLevel(false, "loud"))
}

func TestInitLogFormat(t *testing.T) {
	defer log.SetFormatter(&log.TextFormatter{})

	assert.NoError(t, InitLogFormat(TextFormat))
	assert.NoError(t, InitLogFormat(JSONFormat))
	assert.Error(t, InitLogFormat("xml"))
}

func TestAuditLogger(t *testing.T) {
	InitAuditLogger(true)
	assert.False(t, Audit().(*auditLogger).enabled)

	InitAuditLogger(false)
	assert.True(t, Audit().(*auditLogger).enabled)

	// Should not panic with or without fields
	Audit().Log(context.Background(), AuditVolumeDelete, LogFields{"volume": "v1"}, "Deleted volume.")
	Audit().Logf(context.Background(), AuditSnapshotDelete, nil, "Deleted snapshot %s.", "s1")
}
