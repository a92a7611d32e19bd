// Copyright 2025 NetApp, Inc. All Rights Reserved.

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	. "github.com/netapp/dataops/logging"
)

var (
	syncUUID          string
	syncWait          bool
	syncID            string
	syncCloudSyncWait bool
	syncXCPID         string
)

func init() {
	RootCmd.AddCommand(syncCmd)
	syncCmd.AddCommand(syncSnapMirrorCmd)
	syncCmd.AddCommand(syncCloudSyncCmd)
	syncCmd.AddCommand(syncXCPCmd)

	syncSnapMirrorCmd.Flags().StringVarP(&syncUUID, "uuid", "i", "", "SnapMirror relationship UUID")
	syncSnapMirrorCmd.Flags().BoolVarP(&syncWait, "wait", "w", false, "Wait for the transfer to complete")

	syncCloudSyncCmd.Flags().StringVarP(&syncID, "id", "i", "", "Cloud Sync relationship id")
	syncCloudSyncCmd.Flags().BoolVarP(&syncCloudSyncWait, "wait", "w", false, "Wait for the transfer to complete")

	syncXCPCmd.Flags().StringVarP(&syncXCPID, "id", "i", "", "XCP catalog id of a previous copy")
	syncXCPCmd.Flags().StringVar(&XCPBinary, "xcp-binary", "xcp", "XCP executable")
}

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Trigger a replication transfer",
}

var syncSnapMirrorCmd = &cobra.Command{
	Use:     "snapmirror-relationship",
	Short:   "Trigger a sync of an existing SnapMirror relationship",
	Aliases: []string{"sm"},
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := GenerateRequestContext(cmd.Context(), "", ContextSourceCLI)

		toolkit, err := initToolkit(ctx, scopeStorage)
		if err != nil {
			return err
		}
		if err = toolkit.SyncSnapMirrorRelationship(ctx, syncUUID, syncWait); err != nil {
			return err
		}

		WriteStatus(cmd.OutOrStdout(), transferMessage("SnapMirror", syncUUID, syncWait))
		return nil
	},
}

var syncCloudSyncCmd = &cobra.Command{
	Use:     "cloud-sync-relationship",
	Short:   "Trigger a sync of an existing Cloud Sync relationship",
	Aliases: []string{"cs"},
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := GenerateRequestContext(cmd.Context(), "", ContextSourceCLI)

		toolkit, err := initToolkit(ctx, scopeCloudSync)
		if err != nil {
			return err
		}
		if err = toolkit.SyncCloudSyncRelationship(ctx, syncID, syncCloudSyncWait); err != nil {
			return err
		}

		WriteStatus(cmd.OutOrStdout(), transferMessage("Cloud Sync", syncID, syncCloudSyncWait))
		return nil
	},
}

var syncXCPCmd = &cobra.Command{
	Use:   "xcp-job",
	Short: "Run an XCP sync of a previous copy",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := GenerateRequestContext(cmd.Context(), "", ContextSourceCLI)

		toolkit, err := initToolkit(ctx, scopeXCP)
		if err != nil {
			return err
		}
		if err = toolkit.SyncXCPJob(ctx, syncXCPID); err != nil {
			return err
		}

		WriteStatus(cmd.OutOrStdout(), fmt.Sprintf("XCP sync of %s completed.", syncXCPID))
		return nil
	},
}

func transferMessage(kind, id string, wait bool) string {
	if wait {
		return fmt.Sprintf("%s transfer of %s completed.", kind, id)
	}
	return fmt.Sprintf("%s transfer of %s started.", kind, id)
}
