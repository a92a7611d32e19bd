// Copyright 2025 NetApp, Inc. All Rights Reserved.

package storagedrivers

// Storage driver names, reported by each backend's Name method
const (
	OntapNASStorageDriverName   = "ontap-nas"
	KubernetesStorageDriverName = "kubernetes-trident"
	GCNVStorageDriverName       = "google-cloud-netapp-volumes"
	CloudSyncDriverName         = "cloud-sync"
	XCPDriverName               = "xcp"
	FakeStorageDriverName       = "fake"
)

// Minimum volume sizes enforced before any remote call
const (
	OntapMinimumVolumeSizeBytes = uint64(20971520)   // 20 MiB
	GCNVMinimumVolumeSizeBytes  = uint64(1073741824) // 1 GiB
)
