// Copyright 2025 NetApp, Inc. All Rights Reserved.

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/netapp/dataops/core"
	. "github.com/netapp/dataops/logging"
)

var (
	deleteVolumeName         string
	deletePreserveSnapshots  bool
	deleteSourceSnapshot     bool
	deleteVolumeForceOffline bool
	deleteForce              bool
	deleteSnapshotVolume     string
	deleteSnapshotName       string
	deleteSnapshotForce      bool
)

func init() {
	RootCmd.AddCommand(deleteCmd)
	deleteCmd.AddCommand(deleteVolumeCmd)
	deleteCmd.AddCommand(deleteSnapshotCmd)

	deleteVolumeCmd.Flags().StringVarP(&deleteVolumeName, "name", "N", "", "Volume name")
	deleteVolumeCmd.Flags().BoolVar(&deletePreserveSnapshots, "preserve-snapshots", false,
		"Keep the volume's snapshots where the backend stores them separately")
	deleteVolumeCmd.Flags().BoolVar(&deleteSourceSnapshot, "delete-source-snapshot", false,
		"Also delete the snapshot a clone was created from")
	deleteVolumeCmd.Flags().BoolVar(&deleteVolumeForceOffline, "force-offline", false,
		"Take the volume offline without waiting for clients")
	deleteVolumeCmd.Flags().BoolVarP(&deleteForce, forceConfirmation, "f", false, "Delete without confirmation")

	deleteSnapshotCmd.Flags().StringVarP(&deleteSnapshotVolume, "volume", "V", "", "Volume the snapshot belongs to")
	deleteSnapshotCmd.Flags().StringVarP(&deleteSnapshotName, "name", "N", "", "Snapshot name")
	deleteSnapshotCmd.Flags().BoolVarP(&deleteSnapshotForce, forceConfirmation, "f", false,
		"Delete without confirmation")
}

var deleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete a resource",
}

var deleteVolumeCmd = &cobra.Command{
	Use:     "volume",
	Short:   "Delete an existing data volume",
	Aliases: []string{"v", "vol"},
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := GenerateRequestContext(cmd.Context(), "", ContextSourceCLI)

		if deleteVolumeName == "" {
			return fmt.Errorf("volume name not specified")
		}
		question := fmt.Sprintf("Delete volume %s and all of its snapshots?", deleteVolumeName)
		if deletePreserveSnapshots {
			question = fmt.Sprintf("Delete volume %s?", deleteVolumeName)
		}
		if err := confirm(cmd, deleteForce, question); err != nil {
			return err
		}

		toolkit, err := initToolkit(ctx, scopeStorage)
		if err != nil {
			return err
		}
		err = toolkit.DeleteVolume(ctx, core.DeleteVolumeRequest{
			Name:                 deleteVolumeName,
			PreserveSnapshots:    deletePreserveSnapshots,
			Force:                deleteVolumeForceOffline,
			DeleteSourceSnapshot: deleteSourceSnapshot,
		})
		if err != nil {
			return err
		}

		WriteStatus(cmd.OutOrStdout(), fmt.Sprintf("Volume %s deleted.", deleteVolumeName))
		return nil
	},
}

var deleteSnapshotCmd = &cobra.Command{
	Use:     "snapshot",
	Short:   "Delete an existing snapshot of a data volume",
	Aliases: []string{"s", "snap"},
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := GenerateRequestContext(cmd.Context(), "", ContextSourceCLI)

		if deleteSnapshotName == "" {
			return fmt.Errorf("snapshot name not specified")
		}
		question := fmt.Sprintf("Delete snapshot %s of volume %s?", deleteSnapshotName, deleteSnapshotVolume)
		if err := confirm(cmd, deleteSnapshotForce, question); err != nil {
			return err
		}

		toolkit, err := initToolkit(ctx, scopeStorage)
		if err != nil {
			return err
		}
		if err = toolkit.DeleteSnapshot(ctx, deleteSnapshotVolume, deleteSnapshotName); err != nil {
			return err
		}

		WriteStatus(cmd.OutOrStdout(), fmt.Sprintf("Snapshot %s deleted.", deleteSnapshotName))
		return nil
	},
}
