// Copyright 2025 NetApp, Inc. All Rights Reserved.

package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"k8s.io/mount-utils"

	"github.com/netapp/dataops/core"
	. "github.com/netapp/dataops/logging"
	"github.com/netapp/dataops/utils/errors"
)

const nfsFSType = "nfs"

var (
	mountVolumeName string
	mountPoint      string
	mountReadOnly   bool

	// mounter is replaced by a fake in tests.
	mounter mount.Interface = mount.New("")
)

func init() {
	RootCmd.AddCommand(mountCmd)
	mountCmd.AddCommand(mountVolumeCmd)

	mountVolumeCmd.Flags().StringVarP(&mountVolumeName, "name", "N", "", "Volume name")
	mountVolumeCmd.Flags().StringVarP(&mountPoint, "mountpoint", "m", "", "Local directory to mount the volume at")
	mountVolumeCmd.Flags().BoolVar(&mountReadOnly, "readonly", false, "Mount read-only")
}

var mountCmd = &cobra.Command{
	Use:   "mount",
	Short: "Mount a resource",
}

var mountVolumeCmd = &cobra.Command{
	Use:     "volume",
	Short:   "Mount an existing data volume locally over NFS",
	Aliases: []string{"v", "vol"},
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := GenerateRequestContext(cmd.Context(), "", ContextSourceCLI)

		if mountVolumeName == "" || mountPoint == "" {
			return errors.MountOperationError("both a volume name and a mountpoint are required")
		}

		toolkit, err := initToolkit(ctx, scopeStorage)
		if err != nil {
			return err
		}
		if err = mountVolume(ctx, toolkit, mountVolumeName, mountPoint, mountReadOnly); err != nil {
			return err
		}

		WriteStatus(cmd.OutOrStdout(), fmt.Sprintf("Volume %s mounted at %s.", mountVolumeName, mountPoint))
		return nil
	},
}

// mountVolume mounts the volume's NFS export at mountpoint, creating the directory if needed.
func mountVolume(ctx context.Context, toolkit *core.Toolkit, name, mountpoint string, readOnly bool) error {
	target, err := toolkit.MountTarget(ctx, name)
	if err != nil {
		return err
	}

	if err = appFs.MkdirAll(mountpoint, 0o755); err != nil {
		return errors.WrapWithMountOperationError(err, "could not create mountpoint %s", mountpoint)
	}

	notMnt, err := mounter.IsLikelyNotMountPoint(mountpoint)
	if err != nil && !os.IsNotExist(err) {
		return errors.WrapWithMountOperationError(err, "could not check mountpoint %s", mountpoint)
	}
	if err == nil && !notMnt {
		return errors.MountOperationError("%s is already a mountpoint", mountpoint)
	}

	var options []string
	if readOnly {
		options = append(options, "ro")
	}

	fields := LogFields{"volume": name, "source": target.String(), "mountpoint": mountpoint, "options": options}
	Logc(ctx).WithFields(fields).Debug("Mounting volume.")

	if err = mounter.Mount(target.String(), mountpoint, nfsFSType, options); err != nil {
		return errors.WrapWithMountOperationError(err, "could not mount volume %s at %s", name, mountpoint)
	}

	Logc(ctx).WithFields(fields).Info("Mounted volume.")
	return nil
}
