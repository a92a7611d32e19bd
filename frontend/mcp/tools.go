// Copyright 2025 NetApp, Inc. All Rights Reserved.

package mcp

import (
	"context"
	"fmt"
	"strings"

	mcpgo "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/netapp/dataops/core"
	"github.com/netapp/dataops/storage"
)

type toolDefinition struct {
	tool    mcpgo.Tool
	handler server.ToolHandlerFunc
}

func (p *Plugin) tools() []toolDefinition {
	return []toolDefinition{
		{
			tool: mcpgo.NewTool("create_volume",
				mcpgo.WithDescription("Create a volume and wait until it is ready."),
				mcpgo.WithString("name", mcpgo.Required(), mcpgo.Description("Name of the new volume.")),
				mcpgo.WithString("size", mcpgo.Required(), mcpgo.Description("Size such as 800GB or 10TB.")),
				mcpgo.WithString("volume_type", mcpgo.Enum("flexvol", "flexgroup"),
					mcpgo.Description("ONTAP volume type.")),
				mcpgo.WithString("storage_class", mcpgo.Description("Kubernetes storage class.")),
				mcpgo.WithString("aggregate", mcpgo.Description("ONTAP aggregates, comma separated.")),
				mcpgo.WithString("capacity_pool", mcpgo.Description("GCNV capacity pool.")),
				mcpgo.WithString("protocols", mcpgo.Description("NFS protocols, comma separated.")),
				mcpgo.WithString("unix_uid", mcpgo.Description("Owner UID.")),
				mcpgo.WithString("unix_gid", mcpgo.Description("Owner GID.")),
				mcpgo.WithString("unix_permissions", mcpgo.Description("Octal permissions such as 0755.")),
				mcpgo.WithString("export_policy", mcpgo.Description("ONTAP export policy.")),
				mcpgo.WithString("snapshot_policy", mcpgo.Description("ONTAP snapshot policy.")),
				mcpgo.WithNumber("snapshot_reserve", mcpgo.Description("Snapshot reserve percentage.")),
				mcpgo.WithBoolean("read_only", mcpgo.Description("Mount the volume read-only.")),
			),
			handler: p.handler("create_volume", p.createVolume),
		},
		{
			tool: mcpgo.NewTool("clone_volume",
				mcpgo.WithDescription("Clone a volume from one of its snapshots, or from a new snapshot."),
				mcpgo.WithString("name", mcpgo.Required(), mcpgo.Description("Name of the clone.")),
				mcpgo.WithString("source_volume", mcpgo.Required(), mcpgo.Description("Volume to clone.")),
				mcpgo.WithString("source_snapshot",
					mcpgo.Description("Snapshot to clone from; a trailing * selects the newest match.")),
				mcpgo.WithString("size", mcpgo.Description("Size of the clone; defaults to the source size.")),
				mcpgo.WithString("unix_uid", mcpgo.Description("Owner UID of the clone.")),
				mcpgo.WithString("unix_gid", mcpgo.Description("Owner GID of the clone.")),
				mcpgo.WithBoolean("split", mcpgo.Description("Split the clone from its parent.")),
				mcpgo.WithString("cleanup_policy", mcpgo.Enum("retain", "delete"),
					mcpgo.Description("What to do with an implicitly created snapshot.")),
			),
			handler: p.handler("clone_volume", p.cloneVolume),
		},
		{
			tool: mcpgo.NewTool("delete_volume",
				mcpgo.WithDescription("Delete a volume and, unless preserved, its snapshots."),
				mcpgo.WithString("name", mcpgo.Required(), mcpgo.Description("Volume to delete.")),
				mcpgo.WithBoolean("preserve_snapshots", mcpgo.Description("Keep the volume's snapshots.")),
				mcpgo.WithBoolean("delete_source_snapshot",
					mcpgo.Description("Also delete the snapshot a clone was created from.")),
				mcpgo.WithBoolean("force", mcpgo.Description("Delete even if the volume is in use.")),
			),
			handler: p.handler("delete_volume", p.deleteVolume),
		},
		{
			tool: mcpgo.NewTool("get_volume",
				mcpgo.WithDescription("Show one volume."),
				mcpgo.WithString("name", mcpgo.Required(), mcpgo.Description("Volume name.")),
			),
			handler: p.handler("get_volume", p.getVolume),
		},
		{
			tool: mcpgo.NewTool("list_volumes",
				mcpgo.WithDescription("List volumes with their clone provenance."),
				mcpgo.WithString("name_prefix", mcpgo.Description("Only volumes whose name starts with this.")),
				mcpgo.WithBoolean("clones_only", mcpgo.Description("Only clones.")),
			),
			handler: p.handler("list_volumes", p.listVolumes),
		},
		{
			tool: mcpgo.NewTool("create_snapshot",
				mcpgo.WithDescription("Snapshot a volume, optionally pruning older snapshots."),
				mcpgo.WithString("volume", mcpgo.Required(), mcpgo.Description("Volume to snapshot.")),
				mcpgo.WithString("name", mcpgo.Description("Snapshot name; generated when empty.")),
				mcpgo.WithNumber("retention_count", mcpgo.Description("Keep this many snapshots.")),
				mcpgo.WithNumber("retention_days", mcpgo.Description("Keep snapshots for this many days.")),
				mcpgo.WithString("snapmirror_label", mcpgo.Description("SnapMirror label.")),
			),
			handler: p.handler("create_snapshot", p.createSnapshot),
		},
		{
			tool: mcpgo.NewTool("delete_snapshot",
				mcpgo.WithDescription("Delete a snapshot."),
				mcpgo.WithString("volume", mcpgo.Required(), mcpgo.Description("Volume owning the snapshot.")),
				mcpgo.WithString("name", mcpgo.Required(), mcpgo.Description("Snapshot to delete.")),
			),
			handler: p.handler("delete_snapshot", p.deleteSnapshot),
		},
		{
			tool: mcpgo.NewTool("list_snapshots",
				mcpgo.WithDescription("List snapshots of one volume or all volumes."),
				mcpgo.WithString("volume", mcpgo.Description("Only snapshots of this volume.")),
				mcpgo.WithString("name_prefix", mcpgo.Description("Only snapshots whose name starts with this.")),
			),
			handler: p.handler("list_snapshots", p.listSnapshots),
		},
		{
			tool: mcpgo.NewTool("restore_snapshot",
				mcpgo.WithDescription("Revert a volume to a snapshot in place."),
				mcpgo.WithString("volume", mcpgo.Required(), mcpgo.Description("Volume to revert.")),
				mcpgo.WithString("name", mcpgo.Required(), mcpgo.Description("Snapshot to revert to.")),
			),
			handler: p.handler("restore_snapshot", p.restoreSnapshot),
		},
		{
			tool: mcpgo.NewTool("list_snapmirror_relationships",
				mcpgo.WithDescription("List SnapMirror relationships."),
			),
			handler: p.handler("list_snapmirror_relationships", p.listSnapMirrorRelationships),
		},
		{
			tool: mcpgo.NewTool("sync_snapmirror_relationship",
				mcpgo.WithDescription("Trigger a SnapMirror transfer."),
				mcpgo.WithString("uuid", mcpgo.Required(), mcpgo.Description("Relationship UUID.")),
				mcpgo.WithBoolean("wait", mcpgo.Description("Wait for the transfer to finish.")),
			),
			handler: p.handler("sync_snapmirror_relationship", p.syncSnapMirrorRelationship),
		},
		{
			tool: mcpgo.NewTool("sync_cloud_sync_relationship",
				mcpgo.WithDescription("Trigger a Cloud Sync transfer."),
				mcpgo.WithString("relationship_id", mcpgo.Required(), mcpgo.Description("Relationship id.")),
				mcpgo.WithBoolean("wait", mcpgo.Description("Wait for the transfer to finish.")),
			),
			handler: p.handler("sync_cloud_sync_relationship", p.syncCloudSyncRelationship),
		},
		{
			tool: mcpgo.NewTool("sync_xcp_job",
				mcpgo.WithDescription("Run an XCP sync of a previous copy and wait for it."),
				mcpgo.WithString("id", mcpgo.Required(), mcpgo.Description("XCP catalog id.")),
			),
			handler: p.handler("sync_xcp_job", p.syncXCPJob),
		},
	}
}

func splitList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

func arguments(request mcpgo.CallToolRequest) map[string]any {
	return request.GetArguments()
}

func hasArgument(request mcpgo.CallToolRequest, name string) bool {
	_, ok := arguments(request)[name]
	return ok
}

func (p *Plugin) createVolume(ctx context.Context, request mcpgo.CallToolRequest) (any, error) {
	name, err := request.RequireString("name")
	if err != nil {
		return nil, err
	}
	size, err := request.RequireString("size")
	if err != nil {
		return nil, err
	}

	spec := storage.VolumeSpec{
		Name:            name,
		Size:            size,
		Type:            request.GetString("volume_type", ""),
		StorageClass:    request.GetString("storage_class", ""),
		Aggregates:      splitList(request.GetString("aggregate", "")),
		CapacityPool:    request.GetString("capacity_pool", ""),
		Protocols:       splitList(request.GetString("protocols", "")),
		UnixUID:         request.GetString("unix_uid", ""),
		UnixGID:         request.GetString("unix_gid", ""),
		UnixPermissions: request.GetString("unix_permissions", ""),
		ExportPolicy:    request.GetString("export_policy", ""),
		SnapshotPolicy:  request.GetString("snapshot_policy", ""),
		ReadOnly:        request.GetBool("read_only", false),
	}
	if hasArgument(request, "snapshot_reserve") {
		reserve := request.GetInt("snapshot_reserve", 0)
		spec.SnapshotReserve = &reserve
	}
	return p.toolkit.CreateVolume(ctx, spec)
}

func (p *Plugin) cloneVolume(ctx context.Context, request mcpgo.CallToolRequest) (any, error) {
	name, err := request.RequireString("name")
	if err != nil {
		return nil, err
	}
	source, err := request.RequireString("source_volume")
	if err != nil {
		return nil, err
	}

	policy := core.CleanupPolicy(request.GetString("cleanup_policy", string(core.CleanupRetain)))
	if !core.IsValidCleanupPolicy(policy) {
		return nil, fmt.Errorf("cleanup_policy must be retain or delete, not %s", policy)
	}

	return p.toolkit.CloneVolume(ctx, core.CloneRequest{
		Name:           name,
		SourceVolume:   source,
		SourceSnapshot: request.GetString("source_snapshot", ""),
		Size:           request.GetString("size", ""),
		Overrides: storage.VolumeSpec{
			UnixUID:    request.GetString("unix_uid", ""),
			UnixGID:    request.GetString("unix_gid", ""),
			SplitClone: request.GetBool("split", false),
		},
		CleanupPolicy: policy,
	})
}

func (p *Plugin) deleteVolume(ctx context.Context, request mcpgo.CallToolRequest) (any, error) {
	name, err := request.RequireString("name")
	if err != nil {
		return nil, err
	}
	err = p.toolkit.DeleteVolume(ctx, core.DeleteVolumeRequest{
		Name:                 name,
		PreserveSnapshots:    request.GetBool("preserve_snapshots", false),
		Force:                request.GetBool("force", false),
		DeleteSourceSnapshot: request.GetBool("delete_source_snapshot", false),
	})
	if err != nil {
		return nil, err
	}
	return success(fmt.Sprintf("volume %s deleted", name)), nil
}

func (p *Plugin) getVolume(ctx context.Context, request mcpgo.CallToolRequest) (any, error) {
	name, err := request.RequireString("name")
	if err != nil {
		return nil, err
	}
	return p.toolkit.GetVolume(ctx, name)
}

func (p *Plugin) listVolumes(ctx context.Context, request mcpgo.CallToolRequest) (any, error) {
	volumes, err := p.toolkit.ListVolumes(ctx, storage.VolumeFilter{
		NamePrefix: request.GetString("name_prefix", ""),
		ClonesOnly: request.GetBool("clones_only", false),
	})
	if err != nil {
		return nil, err
	}
	if volumes == nil {
		volumes = []*storage.Volume{}
	}
	return volumes, nil
}

func (p *Plugin) createSnapshot(ctx context.Context, request mcpgo.CallToolRequest) (any, error) {
	volume, err := request.RequireString("volume")
	if err != nil {
		return nil, err
	}

	snapshotRequest := core.SnapshotRequest{
		Volume: volume,
		Name:   request.GetString("name", ""),
		Label:  request.GetString("snapmirror_label", ""),
	}
	count, days := request.GetInt("retention_count", 0), request.GetInt("retention_days", 0)
	if count != 0 || days != 0 {
		snapshotRequest.Retention = &storage.Retention{Count: count, Days: days}
	}

	snapshot, err := p.toolkit.CreateSnapshot(ctx, snapshotRequest)
	if err != nil {
		return nil, err
	}
	return snapshot, nil
}

func (p *Plugin) deleteSnapshot(ctx context.Context, request mcpgo.CallToolRequest) (any, error) {
	volume, err := request.RequireString("volume")
	if err != nil {
		return nil, err
	}
	name, err := request.RequireString("name")
	if err != nil {
		return nil, err
	}
	if err = p.toolkit.DeleteSnapshot(ctx, volume, name); err != nil {
		return nil, err
	}
	return success(fmt.Sprintf("snapshot %s of volume %s deleted", name, volume)), nil
}

func (p *Plugin) listSnapshots(ctx context.Context, request mcpgo.CallToolRequest) (any, error) {
	snapshots, err := p.toolkit.ListSnapshots(ctx, core.SnapshotFilter{
		Volume:     request.GetString("volume", ""),
		NamePrefix: request.GetString("name_prefix", ""),
	})
	if err != nil {
		return nil, err
	}
	if snapshots == nil {
		snapshots = []*storage.Snapshot{}
	}
	return snapshots, nil
}

func (p *Plugin) restoreSnapshot(ctx context.Context, request mcpgo.CallToolRequest) (any, error) {
	volume, err := request.RequireString("volume")
	if err != nil {
		return nil, err
	}
	name, err := request.RequireString("name")
	if err != nil {
		return nil, err
	}
	if err = p.toolkit.RestoreSnapshot(ctx, volume, name); err != nil {
		return nil, err
	}
	return success(fmt.Sprintf("volume %s restored to snapshot %s", volume, name)), nil
}

func (p *Plugin) listSnapMirrorRelationships(ctx context.Context, _ mcpgo.CallToolRequest) (any, error) {
	relationships, err := p.toolkit.ListSnapMirrorRelationships(ctx)
	if err != nil {
		return nil, err
	}
	if relationships == nil {
		relationships = []*storage.Relationship{}
	}
	return relationships, nil
}

func (p *Plugin) syncSnapMirrorRelationship(ctx context.Context, request mcpgo.CallToolRequest) (any, error) {
	uuid, err := request.RequireString("uuid")
	if err != nil {
		return nil, err
	}
	wait := request.GetBool("wait", false)
	if err = p.toolkit.SyncSnapMirrorRelationship(ctx, uuid, wait); err != nil {
		return nil, err
	}
	return syncResult("SnapMirror", uuid, wait), nil
}

func (p *Plugin) syncCloudSyncRelationship(ctx context.Context, request mcpgo.CallToolRequest) (any, error) {
	id, err := request.RequireString("relationship_id")
	if err != nil {
		return nil, err
	}
	wait := request.GetBool("wait", false)
	if err = p.toolkit.SyncCloudSyncRelationship(ctx, id, wait); err != nil {
		return nil, err
	}
	return syncResult("Cloud Sync", id, wait), nil
}

func (p *Plugin) syncXCPJob(ctx context.Context, request mcpgo.CallToolRequest) (any, error) {
	id, err := request.RequireString("id")
	if err != nil {
		return nil, err
	}
	if err = p.toolkit.SyncXCPJob(ctx, id); err != nil {
		return nil, err
	}
	return syncResult("XCP", id, true), nil
}

func syncResult(kind, id string, waited bool) statusResult {
	if waited {
		return success(fmt.Sprintf("%s transfer of %s complete", kind, id))
	}
	return success(fmt.Sprintf("%s transfer of %s started", kind, id))
}
