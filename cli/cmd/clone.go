// Copyright 2025 NetApp, Inc. All Rights Reserved.

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/netapp/dataops/core"
	. "github.com/netapp/dataops/logging"
	"github.com/netapp/dataops/storage"
)

var (
	cloneName           string
	cloneSourceVolume   string
	cloneSourceSnapshot string
	cloneSize           string
	cloneSplit          bool
	cloneCleanupPolicy  string
	cloneVolume         volumeFlags
)

func init() {
	RootCmd.AddCommand(cloneCmd)
	cloneCmd.AddCommand(cloneVolumeCmd)

	cloneVolumeCmd.Flags().StringVarP(&cloneName, "name", "N", "", "Clone name")
	cloneVolumeCmd.Flags().StringVarP(&cloneSourceVolume, "source-volume", "v", "", "Volume to clone")
	cloneVolumeCmd.Flags().StringVarP(&cloneSourceSnapshot, "source-snapshot", "S", "",
		"Snapshot to clone from; a trailing * selects the newest match (default is a new snapshot)")
	cloneVolumeCmd.Flags().StringVarP(&cloneSize, "size", "s", "", "Clone size; may only grow the clone")
	cloneVolumeCmd.Flags().BoolVar(&cloneSplit, "split", false, "Split the clone from its parent")
	cloneVolumeCmd.Flags().StringVar(&cloneCleanupPolicy, "cleanup-policy", string(core.CleanupRetain),
		"What to do with a snapshot taken for a clone that fails: retain or delete")
	cloneVolume.register(cloneVolumeCmd)
}

var cloneCmd = &cobra.Command{
	Use:   "clone",
	Short: "Clone a resource",
}

var cloneVolumeCmd = &cobra.Command{
	Use:     "volume",
	Short:   "Create a new data volume that is an exact copy of an existing volume",
	Aliases: []string{"v", "vol"},
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := GenerateRequestContext(cmd.Context(), "", ContextSourceCLI)

		overrides := cloneVolume.spec(cmd)
		overrides.SplitClone = cloneSplit

		toolkit, err := initToolkit(ctx, scopeStorage)
		if err != nil {
			return err
		}
		volume, err := toolkit.CloneVolume(ctx, core.CloneRequest{
			Name:           cloneName,
			SourceVolume:   cloneSourceVolume,
			SourceSnapshot: cloneSourceSnapshot,
			Size:           cloneSize,
			Overrides:      overrides,
			CleanupPolicy:  core.CleanupPolicy(cloneCleanupPolicy),
		})
		if err != nil {
			return err
		}

		if cloneVolume.mountpoint != "" {
			if err = mountVolume(ctx, toolkit, volume.Name, cloneVolume.mountpoint, cloneVolume.readOnly); err != nil {
				return err
			}
		}

		WriteVolumes(cmd.OutOrStdout(), []*storage.Volume{volume})
		return nil
	},
}
