// Copyright 2025 NetApp, Inc. All Rights Reserved.

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	. "github.com/netapp/dataops/logging"
)

var (
	restoreVolume   string
	restoreSnapshot string
	restoreForce    bool
)

func init() {
	RootCmd.AddCommand(restoreCmd)
	restoreCmd.AddCommand(restoreSnapshotCmd)

	restoreSnapshotCmd.Flags().StringVarP(&restoreVolume, "volume", "V", "", "Volume to restore")
	restoreSnapshotCmd.Flags().StringVarP(&restoreSnapshot, "name", "N", "", "Snapshot to restore")
	restoreSnapshotCmd.Flags().BoolVarP(&restoreForce, forceConfirmation, "f", false, "Restore without confirmation")
}

var restoreCmd = &cobra.Command{
	Use:   "restore",
	Short: "Restore a resource",
}

var restoreSnapshotCmd = &cobra.Command{
	Use:     "snapshot",
	Short:   "Restore a data volume to a snapshot",
	Aliases: []string{"s", "snap"},
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := GenerateRequestContext(cmd.Context(), "", ContextSourceCLI)

		question := fmt.Sprintf("Restore volume %s to snapshot %s? Changes made after the snapshot will be lost.",
			restoreVolume, restoreSnapshot)
		if err := confirm(cmd, restoreForce, question); err != nil {
			return err
		}

		toolkit, err := initToolkit(ctx, scopeStorage)
		if err != nil {
			return err
		}
		if err = toolkit.RestoreSnapshot(ctx, restoreVolume, restoreSnapshot); err != nil {
			return err
		}

		WriteStatus(cmd.OutOrStdout(), fmt.Sprintf("Volume %s restored to snapshot %s.", restoreVolume, restoreSnapshot))
		return nil
	},
}
