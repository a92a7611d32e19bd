// Copyright 2025 NetApp, Inc. All Rights Reserved.

package config

import (
	"fmt"
	"time"
)

type ConnectionType string

type BackendType string

const (
	/* Misc. toolkit constants */
	ToolkitName    = "netapp-dataops"
	toolkitVersion = "2.6.0"

	/* Connection types accepted in the config file */
	ConnectionTypeONTAP ConnectionType = "ONTAP"

	/* Backend types selectable on the command line */
	BackendONTAP      BackendType = "ontap"
	BackendKubernetes BackendType = "kubernetes"
	BackendGCNV       BackendType = "gcnv"

	/* Volume types */
	VolumeTypeFlexVol   = "flexvol"
	VolumeTypeFlexGroup = "flexgroup"

	/* Readiness polling */
	VolumeReadyInterval      = 5 * time.Second
	VolumeReadyTimeout       = 10 * time.Minute
	SnapshotReadyInterval    = 5 * time.Second
	SnapshotReadyTimeout     = 10 * time.Minute
	ReplicationWarmup        = 10 * time.Second
	ReplicationPollInterval  = 60 * time.Second
	ReplicationTransferLimit = 24 * time.Hour

	/* Backend SDK request timeout */
	DefaultSDKTimeout = 30 * time.Second

	/* Metrics endpoint served next to the MCP server */
	HTTPTimeout        = 90 * time.Second
	DefaultMetricsPort = "8001"

	/* Kubernetes */
	DefaultNamespace           = "default"
	DefaultVolumeSnapshotClass = "csi-snapclass"
	TridentAnnotationPrefix    = "trident.netapp.io"
	AnnCloneFromPVC            = TridentAnnotationPrefix + "/cloneFromPVC"
	AnnSplitOnClone            = TridentAnnotationPrefix + "/splitOnClone"
	LabelCreatedBy             = "created-by"
	LabelCreatedByValue        = "ntap-dsutil"
	AnnSourceVolume            = "netapp.io/dataops-source-volume"
	AnnSourceSnapshot          = "netapp.io/dataops-source-snapshot"

	/* Snapshot naming */
	SnapshotTimestampFormat  = "20060102150405"
	RetentionTimestampFormat = "2006-01-02_150405"
)

var (
	// BuildHash is the git hash the binary was built from
	BuildHash = "unknown"

	// BuildType is the type of build: custom, beta or stable
	BuildType = "custom"

	// BuildTypeRev is the revision of the build
	BuildTypeRev = "0"

	// BuildTime is the time the binary was built
	BuildTime = "unknown"

	ToolkitVersion = version()

	validBackends = map[BackendType]bool{
		BackendONTAP:      true,
		BackendKubernetes: true,
		BackendGCNV:       true,
	}
)

func IsValidBackend(b BackendType) bool {
	return validBackends[b]
}

func version() string {
	var version string

	if BuildType != "stable" {
		if BuildType == "custom" {
			version = fmt.Sprintf("%v-%v+%v", toolkitVersion, BuildType, BuildHash)
		} else {
			version = fmt.Sprintf("%v-%v.%v+%v", toolkitVersion, BuildType, BuildTypeRev, BuildHash)
		}
	} else {
		version = toolkitVersion
	}

	return version
}
