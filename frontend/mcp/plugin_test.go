// Copyright 2025 NetApp, Inc. All Rights Reserved.

package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	mcpgo "github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/netapp/dataops/core"
	. "github.com/netapp/dataops/logging"
	"github.com/netapp/dataops/pkg/poll"
	"github.com/netapp/dataops/storage"
	"github.com/netapp/dataops/storage_drivers/fake"
)

func TestMain(m *testing.M) {
	InitLogOutput(io.Discard)
	os.Exit(m.Run())
}

func newTestPlugin(t *testing.T) (*Plugin, *fake.Backend) {
	t.Helper()
	backend := fake.NewBackend()
	settings := core.DefaultSettings().WithTimer(poll.NewRecordingTimer())
	return NewPlugin(core.NewToolkit(backend, core.WithSettings(settings))), backend
}

func callTool(t *testing.T, p *Plugin, name string, args map[string]any) (*mcpgo.CallToolResult, string) {
	t.Helper()
	var handler func(context.Context, mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error)
	for _, tool := range p.tools() {
		if tool.tool.Name == name {
			handler = tool.handler
		}
	}
	require.NotNil(t, handler, "tool %s is not registered", name)

	request := mcpgo.CallToolRequest{}
	request.Params.Name = name
	request.Params.Arguments = args

	result, err := handler(context.Background(), request)
	require.NoError(t, err)
	require.Len(t, result.Content, 1)
	text, ok := result.Content[0].(mcpgo.TextContent)
	require.True(t, ok)
	return result, text.Text
}

func TestToolNames(t *testing.T) {
	p, _ := newTestPlugin(t)

	var names []string
	for _, tool := range p.tools() {
		names = append(names, tool.tool.Name)
		assert.NotEmpty(t, tool.tool.Description, tool.tool.Name)
	}
	assert.ElementsMatch(t, []string{
		"create_volume", "clone_volume", "delete_volume", "get_volume", "list_volumes",
		"create_snapshot", "delete_snapshot", "list_snapshots", "restore_snapshot",
		"list_snapmirror_relationships", "sync_snapmirror_relationship", "sync_cloud_sync_relationship",
		"sync_xcp_job",
	}, names)
	assert.Equal(t, "mcp", p.GetName())
}

func TestCreateVolumeTool(t *testing.T) {
	p, backend := newTestPlugin(t)

	result, text := callTool(t, p, "create_volume", map[string]any{
		"name":             "project1",
		"size":             "10GB",
		"unix_permissions": "0755",
		"protocols":        "nfs3, nfs4",
		"snapshot_reserve": float64(5),
	})
	assert.False(t, result.IsError)

	var volume storage.Volume
	require.NoError(t, json.Unmarshal([]byte(text), &volume))
	assert.Equal(t, "project1", volume.Name)
	assert.Equal(t, storage.VolumePhaseReady, volume.Phase)
	assert.Equal(t, []string{"nfs3", "nfs4"}, volume.Protocols)

	_, err := backend.GetVolume(context.Background(), "project1")
	assert.NoError(t, err)
}

func TestCreateVolumeTool_Errors(t *testing.T) {
	p, _ := newTestPlugin(t)

	result, text := callTool(t, p, "create_volume", map[string]any{"size": "10GB"})
	assert.True(t, result.IsError)
	assert.Contains(t, text, `"status":"error"`)

	result, text = callTool(t, p, "create_volume", map[string]any{"name": "v1", "size": "10XB"})
	assert.True(t, result.IsError)

	var payload errorResult
	require.NoError(t, json.Unmarshal([]byte(text), &payload))
	assert.Equal(t, "error", payload.Status)
	assert.NotEmpty(t, payload.Message)
}

func TestSnapshotAndCloneTools(t *testing.T) {
	p, backend := newTestPlugin(t)
	backend.AddVolume(storage.Volume{Name: "base", SizeBytes: 1 << 30, Phase: storage.VolumePhaseReady})

	result, _ := callTool(t, p, "create_snapshot", map[string]any{"volume": "base", "name": "snap1"})
	require.False(t, result.IsError)

	result, text := callTool(t, p, "clone_volume", map[string]any{
		"name":            "base-clone",
		"source_volume":   "base",
		"source_snapshot": "snap1",
	})
	require.False(t, result.IsError, text)

	_, text = callTool(t, p, "list_volumes", map[string]any{"clones_only": true})
	var volumes []storage.Volume
	require.NoError(t, json.Unmarshal([]byte(text), &volumes))
	require.Len(t, volumes, 1)
	assert.Equal(t, &storage.ClonedFrom{SourceVolume: "base", SourceSnapshot: "snap1"}, volumes[0].ClonedFrom)

	_, text = callTool(t, p, "list_snapshots", map[string]any{"volume": "base"})
	assert.Contains(t, text, "snap1")

	result, text = callTool(t, p, "clone_volume", map[string]any{
		"name": "x", "source_volume": "base", "cleanup_policy": "maybe",
	})
	assert.True(t, result.IsError)
	assert.Contains(t, text, "cleanup_policy")
}

func TestDeleteTools(t *testing.T) {
	p, backend := newTestPlugin(t)
	backend.AddVolume(storage.Volume{Name: "v1", SizeBytes: 1 << 30, Phase: storage.VolumePhaseReady})
	backend.AddSnapshot(storage.Snapshot{Volume: "v1", Name: "s1", Phase: storage.SnapshotPhaseReady})

	result, text := callTool(t, p, "delete_snapshot", map[string]any{"volume": "v1", "name": "s1"})
	require.False(t, result.IsError, text)
	assert.Contains(t, text, `"status":"success"`)

	result, text = callTool(t, p, "delete_volume", map[string]any{"name": "v1"})
	require.False(t, result.IsError, text)

	result, _ = callTool(t, p, "get_volume", map[string]any{"name": "v1"})
	assert.True(t, result.IsError)
}

func TestEmptyListsAreArrays(t *testing.T) {
	p, _ := newTestPlugin(t)

	_, text := callTool(t, p, "list_volumes", nil)
	assert.Equal(t, "[]", text)

	_, text = callTool(t, p, "list_snapshots", nil)
	assert.Equal(t, "[]", text)
}

func TestSyncTools(t *testing.T) {
	p, backend := newTestPlugin(t)
	backend.AddRelationship(storage.Relationship{
		ID:      "uuid-1",
		Kind:    storage.ReplicationSnapMirror,
		Healthy: true,
		State:   storage.TransferStateIdle,
	})

	result, text := callTool(t, p, "sync_snapmirror_relationship", map[string]any{"uuid": "uuid-1"})
	require.False(t, result.IsError, text)
	assert.Contains(t, text, "started")
	assert.Equal(t, 1, backend.Transfers("uuid-1"))

	_, text = callTool(t, p, "list_snapmirror_relationships", nil)
	assert.Contains(t, text, "uuid-1")

	result, _ = callTool(t, p, "sync_cloud_sync_relationship", map[string]any{"relationship_id": "r1"})
	assert.True(t, result.IsError, "no Cloud Sync backend is registered")

	result, _ = callTool(t, p, "sync_xcp_job", map[string]any{})
	assert.True(t, result.IsError)
}

func TestServe(t *testing.T) {
	p, _ := newTestPlugin(t)

	requests := strings.Join([]string{
		`{"jsonrpc":"2.0","id":1,"method":"initialize","params":{"protocolVersion":"2024-11-05",` +
			`"capabilities":{},"clientInfo":{"name":"test","version":"1.0"}}}`,
		`{"jsonrpc":"2.0","method":"notifications/initialized"}`,
		`{"jsonrpc":"2.0","id":2,"method":"tools/list"}`,
	}, "\n") + "\n"

	in, writer := io.Pipe()
	var out safeBuffer
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- p.Serve(ctx, in, &out) }()

	_, err := writer.Write([]byte(requests))
	require.NoError(t, err)

	assert.Eventually(t, func() bool {
		return strings.Contains(out.String(), "sync_cloud_sync_relationship")
	}, 5*time.Second, 10*time.Millisecond)

	cancel()
	_ = writer.Close()
	assert.NoError(t, <-done)
}

type safeBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *safeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *safeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}
