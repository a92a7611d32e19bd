// Copyright 2025 NetApp, Inc. All Rights Reserved.

package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/netapp/dataops/core"
	. "github.com/netapp/dataops/logging"
	"github.com/netapp/dataops/storage"
)

// volumeFlags holds the attribute flags shared by create volume and clone volume.
type volumeFlags struct {
	volumeType      string
	storageClass    string
	aggregates      string
	capacityPool    string
	protocols       string
	uid             string
	gid             string
	permissions     string
	exportPolicy    string
	snapshotPolicy  string
	securityStyle   string
	snapshotReserve int
	mountpoint      string
	readOnly        bool
}

func (f *volumeFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.volumeType, "type", "", "Volume type (flexvol or flexgroup)")
	cmd.Flags().StringVar(&f.storageClass, "storage-class", "", "Kubernetes StorageClass")
	cmd.Flags().StringVar(&f.aggregates, "aggregate", "", "Comma separated aggregates")
	cmd.Flags().StringVar(&f.capacityPool, "capacity-pool", "", "GCNV capacity pool")
	cmd.Flags().StringVar(&f.protocols, "protocols", "", "Comma separated export protocols")
	cmd.Flags().StringVarP(&f.uid, "uid", "u", "", "Unix owner uid")
	cmd.Flags().StringVarP(&f.gid, "gid", "g", "", "Unix owner gid")
	cmd.Flags().StringVarP(&f.permissions, "permissions", "p", "", "Unix permissions, for example 0755")
	cmd.Flags().StringVarP(&f.exportPolicy, "export-policy", "e", "", "Export policy")
	cmd.Flags().StringVar(&f.snapshotPolicy, "snapshot-policy", "", "Snapshot policy")
	cmd.Flags().StringVar(&f.securityStyle, "security-style", "", "Security style")
	cmd.Flags().IntVarP(&f.snapshotReserve, "snapshot-reserve", "r", 0, "Snapshot reserve percentage")
	cmd.Flags().StringVarP(&f.mountpoint, "mountpoint", "m", "", "Mount the volume here once it is ready")
	cmd.Flags().BoolVar(&f.readOnly, "readonly", false, "Mount read-only")
}

func (f *volumeFlags) spec(cmd *cobra.Command) storage.VolumeSpec {
	spec := storage.VolumeSpec{
		Type:            f.volumeType,
		StorageClass:    f.storageClass,
		Aggregates:      splitList(f.aggregates),
		CapacityPool:    f.capacityPool,
		Protocols:       splitList(f.protocols),
		UnixUID:         f.uid,
		UnixGID:         f.gid,
		UnixPermissions: f.permissions,
		ExportPolicy:    f.exportPolicy,
		SnapshotPolicy:  f.snapshotPolicy,
		SecurityStyle:   f.securityStyle,
		ReadOnly:        f.readOnly,
	}
	if cmd.Flags().Changed("snapshot-reserve") {
		reserve := f.snapshotReserve
		spec.SnapshotReserve = &reserve
	}
	return spec
}

var (
	createVolumeName string
	createVolumeSize string
	createVolume     volumeFlags

	snapshotVolume    string
	snapshotName      string
	snapshotRetention string
	snapshotLabel     string
)

func init() {
	RootCmd.AddCommand(createCmd)
	createCmd.AddCommand(createVolumeCmd)
	createCmd.AddCommand(createSnapshotCmd)

	createVolumeCmd.Flags().StringVarP(&createVolumeName, "name", "N", "", "Volume name")
	createVolumeCmd.Flags().StringVarP(&createVolumeSize, "size", "s", "", "Volume size, for example 1TB or 500GiB")
	createVolume.register(createVolumeCmd)

	createSnapshotCmd.Flags().StringVarP(&snapshotVolume, "volume", "V", "", "Volume to snapshot")
	createSnapshotCmd.Flags().StringVarP(&snapshotName, "name", "N", "", "Snapshot name (default is a timestamp)")
	createSnapshotCmd.Flags().StringVar(&snapshotRetention, "retention", "",
		"Keep only the newest N snapshots with this name prefix, or those newer than Nd days")
	createSnapshotCmd.Flags().StringVarP(&snapshotLabel, "snapmirror-label", "l", "", "SnapMirror label")
}

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a resource",
}

var createVolumeCmd = &cobra.Command{
	Use:     "volume",
	Short:   "Create a new data volume",
	Aliases: []string{"v", "vol"},
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := GenerateRequestContext(cmd.Context(), "", ContextSourceCLI)

		spec := createVolume.spec(cmd)
		spec.Name = createVolumeName
		spec.Size = createVolumeSize

		toolkit, err := initToolkit(ctx, scopeStorage)
		if err != nil {
			return err
		}
		volume, err := toolkit.CreateVolume(ctx, spec)
		if err != nil {
			return err
		}

		if createVolume.mountpoint != "" {
			if err = mountVolume(ctx, toolkit, volume.Name, createVolume.mountpoint, createVolume.readOnly); err != nil {
				return err
			}
		}

		WriteVolumes(cmd.OutOrStdout(), []*storage.Volume{volume})
		return nil
	},
}

var createSnapshotCmd = &cobra.Command{
	Use:     "snapshot",
	Short:   "Create a snapshot of a data volume",
	Aliases: []string{"s", "snap"},
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := GenerateRequestContext(cmd.Context(), "", ContextSourceCLI)

		retention, err := parseRetention(snapshotRetention)
		if err != nil {
			return err
		}

		toolkit, err := initToolkit(ctx, scopeStorage)
		if err != nil {
			return err
		}
		snapshot, err := toolkit.CreateSnapshot(ctx, core.SnapshotRequest{
			Volume:    snapshotVolume,
			Name:      snapshotName,
			Retention: retention,
			Label:     snapshotLabel,
		})
		if snapshot != nil {
			WriteSnapshots(cmd.OutOrStdout(), []*storage.Snapshot{snapshot})
		}
		return err
	},
}

// parseRetention accepts a snapshot count ("5") or an age in days ("7d").
func parseRetention(value string) (*storage.Retention, error) {
	if value == "" {
		return nil, nil
	}
	if days, ok := strings.CutSuffix(value, "d"); ok {
		n, err := strconv.Atoi(days)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("invalid retention %s; specify a count or a number of days such as 7d", value)
		}
		return &storage.Retention{Days: n}, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		return nil, fmt.Errorf("invalid retention %s; specify a count or a number of days such as 7d", value)
	}
	return &storage.Retention{Count: n}, nil
}
