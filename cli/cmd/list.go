// Copyright 2025 NetApp, Inc. All Rights Reserved.

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/netapp/dataops/core"
	. "github.com/netapp/dataops/logging"
	"github.com/netapp/dataops/storage"
)

var (
	listVolumePrefix   string
	listClonesOnly     bool
	listSnapshotVolume string
	listSnapshotPrefix string
)

func init() {
	RootCmd.AddCommand(listCmd)
	listCmd.AddCommand(listVolumesCmd)
	listCmd.AddCommand(listSnapshotsCmd)
	listCmd.AddCommand(listSnapMirrorRelationshipsCmd)

	listVolumesCmd.Flags().StringVar(&listVolumePrefix, "prefix", "", "Only list volumes whose name starts with this")
	listVolumesCmd.Flags().BoolVar(&listClonesOnly, "clones-only", false, "Only list clones")

	listSnapshotsCmd.Flags().StringVarP(&listSnapshotVolume, "volume", "V", "", "Only list snapshots of this volume")
	listSnapshotsCmd.Flags().StringVar(&listSnapshotPrefix, "prefix", "",
		"Only list snapshots whose name starts with this")
}

var listCmd = &cobra.Command{
	Use:     "list",
	Short:   "List resources",
	Aliases: []string{"get"},
}

var listVolumesCmd = &cobra.Command{
	Use:     "volumes",
	Short:   "List all data volumes",
	Aliases: []string{"v", "volume"},
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := GenerateRequestContext(cmd.Context(), "", ContextSourceCLI)

		toolkit, err := initToolkit(ctx, scopeStorage)
		if err != nil {
			return err
		}
		volumes, err := toolkit.ListVolumes(ctx, storage.VolumeFilter{
			NamePrefix: listVolumePrefix,
			ClonesOnly: listClonesOnly,
		})
		if err != nil {
			return err
		}

		WriteVolumes(cmd.OutOrStdout(), volumes)
		return nil
	},
}

var listSnapshotsCmd = &cobra.Command{
	Use:     "snapshots",
	Short:   "List all snapshots of a data volume",
	Aliases: []string{"s", "snapshot"},
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := GenerateRequestContext(cmd.Context(), "", ContextSourceCLI)

		toolkit, err := initToolkit(ctx, scopeStorage)
		if err != nil {
			return err
		}
		snapshots, err := toolkit.ListSnapshots(ctx, core.SnapshotFilter{
			Volume:     listSnapshotVolume,
			NamePrefix: listSnapshotPrefix,
		})
		if err != nil {
			return err
		}

		WriteSnapshots(cmd.OutOrStdout(), snapshots)
		return nil
	},
}

var listSnapMirrorRelationshipsCmd = &cobra.Command{
	Use:     "snapmirror-relationships",
	Short:   "List all SnapMirror relationships",
	Aliases: []string{"sm", "snapmirror-relationship"},
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := GenerateRequestContext(cmd.Context(), "", ContextSourceCLI)

		toolkit, err := initToolkit(ctx, scopeStorage)
		if err != nil {
			return err
		}
		relationships, err := toolkit.ListSnapMirrorRelationships(ctx)
		if err != nil {
			return err
		}

		WriteRelationships(cmd.OutOrStdout(), relationships)
		return nil
	},
}
