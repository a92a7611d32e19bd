// Copyright 2025 NetApp, Inc. All Rights Reserved.

package cmd

import (
	"context"
	"fmt"

	"github.com/netapp/dataops/config"
	"github.com/netapp/dataops/core"
	. "github.com/netapp/dataops/logging"
	"github.com/netapp/dataops/storage"
	"github.com/netapp/dataops/storage_drivers/cloudsync"
	"github.com/netapp/dataops/storage_drivers/gcp"
	"github.com/netapp/dataops/storage_drivers/kubernetes"
	"github.com/netapp/dataops/storage_drivers/ontap"
	"github.com/netapp/dataops/storage_drivers/xcp"
)

// toolkitScope names the backends a command needs, so that a Cloud Sync trigger does not
// require storage credentials and the reverse.
type toolkitScope int

const (
	scopeStorage toolkitScope = iota
	scopeCloudSync
	scopeXCP
	scopeAll
)

var (
	Namespace           string
	KubeConfig          string
	VolumeSnapshotClass string
	XCPBinary           string

	// initToolkit is replaced in tests.
	initToolkit = newToolkit
)

func init() {
	RootCmd.PersistentFlags().StringVarP(&Namespace, "namespace", "n", "", "Kubernetes namespace")
	RootCmd.PersistentFlags().StringVar(&KubeConfig, "kubeconfig", "", "Kubernetes config file")
	RootCmd.PersistentFlags().StringVar(&VolumeSnapshotClass, "snapshot-class", config.DefaultVolumeSnapshotClass,
		"Kubernetes VolumeSnapshotClass")
}

func loadConfig() (*config.Config, error) {
	if ConfigPath != "" {
		return config.Load(appFs, ConfigPath)
	}
	return config.LoadDefault(appFs)
}

func newToolkit(ctx context.Context, scope toolkitScope) (*core.Toolkit, error) {
	var (
		backend storage.Backend
		cfg     *config.Config
		opts    []core.Option
		err     error
	)

	backendType := config.BackendType(BackendName)
	needsConfig := scope == scopeCloudSync || (scope != scopeXCP && backendType != config.BackendKubernetes)

	if scope != scopeXCP {
		if cfg, err = loadConfig(); err != nil {
			if needsConfig {
				return nil, err
			}
			Logc(ctx).WithError(err).Debug("Continuing without a config file.")
			cfg = nil
		}
	}

	if scope == scopeStorage || scope == scopeAll {
		if backend, err = newStorageBackend(ctx, backendType, cfg); err != nil {
			return nil, err
		}
	}

	if scope == scopeCloudSync || (scope == scopeAll && cfg != nil && cfg.CloudCentralRefreshToken != "") {
		driver, err := cloudsync.NewDriver(ctx, cfg)
		if err != nil {
			return nil, err
		}
		opts = append(opts, core.WithReplicationBackend(storage.ReplicationCloudSync, driver))
	}

	if scope == scopeXCP || scope == scopeAll {
		opts = append(opts, core.WithReplicationBackend(storage.ReplicationXCP, xcp.NewDriver(XCPBinary)))
	}

	return core.NewToolkit(backend, opts...), nil
}

func newStorageBackend(ctx context.Context, backendType config.BackendType, cfg *config.Config) (storage.Backend, error) {
	switch backendType {
	case config.BackendONTAP:
		return ontap.NewNASStorageDriver(ctx, cfg)
	case config.BackendGCNV:
		return gcp.NewNASStorageDriver(ctx, appFs, cfg)
	case config.BackendKubernetes:
		return kubernetes.NewDriver(ctx, kubernetes.Config{
			KubeConfigPath:      KubeConfig,
			Namespace:           Namespace,
			VolumeSnapshotClass: VolumeSnapshotClass,
		})
	default:
		return nil, fmt.Errorf("unknown backend %s", backendType)
	}
}
