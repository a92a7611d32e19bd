// Copyright 2025 NetApp, Inc. All Rights Reserved.

// Package kubernetes is the Kubernetes backend: volumes are PersistentVolumeClaims provisioned by
// Trident, snapshots are CSI VolumeSnapshots.
package kubernetes

import (
	"context"
	"sort"
	"strconv"
	"time"

	"github.com/cenkalti/backoff/v4"
	k8ssnapshot "github.com/kubernetes-csi/external-snapshotter/client/v8/clientset/versioned"
	v1 "k8s.io/api/core/v1"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	"k8s.io/apimachinery/pkg/api/resource"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/dynamic"
	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/rest"
	"k8s.io/client-go/tools/clientcmd"
	"k8s.io/utils/ptr"

	"github.com/netapp/dataops/config"
	. "github.com/netapp/dataops/logging"
	"github.com/netapp/dataops/storage"
	storagedrivers "github.com/netapp/dataops/storage_drivers"
	"github.com/netapp/dataops/utils/errors"
)

// Trident volume attribute annotations
const (
	AnnUnixPermissions = config.TridentAnnotationPrefix + "/unixPermissions"
	AnnExportPolicy    = config.TridentAnnotationPrefix + "/exportPolicy"
	AnnSnapshotPolicy  = config.TridentAnnotationPrefix + "/snapshotPolicy"
	AnnSnapshotReserve = config.TridentAnnotationPrefix + "/snapshotReserve"
	AnnSecurityStyle   = config.TridentAnnotationPrefix + "/securityStyle"

	volumeSnapshotAPIGroup = "snapshot.storage.k8s.io"
	volumeSnapshotKind     = "VolumeSnapshot"
)

// Config holds the settings applied to every request.
type Config struct {
	// KubeConfigPath overrides $KUBECONFIG and ~/.kube/config; empty prefers the in-cluster config.
	KubeConfigPath      string
	Namespace           string
	VolumeSnapshotClass string
	Defaults            storage.VolumeSpec
}

// Driver is the Kubernetes backend.
type Driver struct {
	kubeClient    kubernetes.Interface
	snapClient    k8ssnapshot.Interface
	dynamicClient dynamic.Interface
	config        Config

	// restoreBackOff builds the backoff used while waiting for a snapshot restore action
	restoreBackOff func() backoff.BackOff
}

var (
	_ storage.Backend          = &Driver{}
	_ storage.SnapshotRestorer = &Driver{}
)

// NewDriver creates the Kubernetes clients from the ambient kubeconfig.
func NewDriver(ctx context.Context, cfg Config) (*Driver, error) {
	restConfig, namespace, err := loadRESTConfig(cfg.KubeConfigPath)
	if err != nil {
		return nil, errors.WrapWithInvalidConfigError(err, "could not load kubeconfig")
	}
	if cfg.Namespace == "" {
		cfg.Namespace = namespace
	}

	kubeClient, err := kubernetes.NewForConfig(restConfig)
	if err != nil {
		return nil, errors.WrapWithInvalidConfigError(err, "could not create Kubernetes client")
	}
	snapClient, err := k8ssnapshot.NewForConfig(restConfig)
	if err != nil {
		return nil, errors.WrapWithInvalidConfigError(err, "could not create snapshot client")
	}
	dynamicClient, err := dynamic.NewForConfig(restConfig)
	if err != nil {
		return nil, errors.WrapWithInvalidConfigError(err, "could not create dynamic client")
	}

	Logc(ctx).WithFields(LogFields{
		"host":      restConfig.Host,
		"namespace": cfg.Namespace,
	}).Debug("Created Kubernetes clients.")

	return NewDriverWithClients(kubeClient, snapClient, dynamicClient, cfg), nil
}

// NewDriverWithClients builds a driver around existing clients.
func NewDriverWithClients(
	kubeClient kubernetes.Interface, snapClient k8ssnapshot.Interface, dynamicClient dynamic.Interface, cfg Config,
) *Driver {
	if cfg.Namespace == "" {
		cfg.Namespace = config.DefaultNamespace
	}
	if cfg.VolumeSnapshotClass == "" {
		cfg.VolumeSnapshotClass = config.DefaultVolumeSnapshotClass
	}
	return &Driver{
		kubeClient:     kubeClient,
		snapClient:     snapClient,
		dynamicClient:  dynamicClient,
		config:         cfg,
		restoreBackOff: defaultRestoreBackOff,
	}
}

func loadRESTConfig(kubeConfigPath string) (*rest.Config, string, error) {
	loadingRules := clientcmd.NewDefaultClientConfigLoadingRules()
	loadingRules.ExplicitPath = kubeConfigPath
	clientConfig := clientcmd.NewNonInteractiveDeferredLoadingClientConfig(loadingRules, &clientcmd.ConfigOverrides{})

	namespace, _, err := clientConfig.Namespace()
	if err != nil || namespace == "" {
		namespace = config.DefaultNamespace
	}

	if kubeConfigPath == "" {
		if restConfig, err := rest.InClusterConfig(); err == nil {
			return restConfig, namespace, nil
		}
	}

	restConfig, err := clientConfig.ClientConfig()
	return restConfig, namespace, err
}

func defaultRestoreBackOff() backoff.BackOff {
	restoreBackOff := backoff.NewExponentialBackOff()
	restoreBackOff.InitialInterval = 2 * time.Second
	restoreBackOff.MaxInterval = 15 * time.Second
	restoreBackOff.MaxElapsedTime = 10 * time.Minute
	return restoreBackOff
}

func (d *Driver) Name() string {
	return storagedrivers.KubernetesStorageDriverName
}

// Namespace returns the namespace holding every volume and snapshot this driver manages.
func (d *Driver) Namespace() string {
	return d.config.Namespace
}

// classifyError converts a Kubernetes API failure into the shared taxonomy.
func classifyError(err error, message string, a ...any) error {
	if err == nil {
		return nil
	}
	switch {
	case apierrors.IsNotFound(err):
		err = errors.WrapWithNotFoundError(err, "")
	case apierrors.IsAlreadyExists(err):
		err = errors.WrapWithAlreadyExistsError(err, "")
	}
	return errors.WrapWithAPIConnectionError(err, message, a...)
}

func createdByLabels() map[string]string {
	return map[string]string{config.LabelCreatedBy: config.LabelCreatedByValue}
}

// CreateVolume creates a PVC. Clones from a snapshot use a VolumeSnapshot data source; clones
// without a snapshot use Trident's cloneFromPVC annotation. The clone manager always supplies a
// snapshot, so only direct callers reach the annotation path.
func (d *Driver) CreateVolume(ctx context.Context, spec storage.VolumeSpec) (*storage.Volume, error) {
	storagedrivers.ApplyVolumeDefaults(ctx, &spec, d.config.Defaults)

	pvc, err := d.pvcRequest(spec)
	if err != nil {
		return nil, err
	}

	created, err := d.kubeClient.CoreV1().PersistentVolumeClaims(d.config.Namespace).Create(
		ctx, pvc, metav1.CreateOptions{})
	if err != nil {
		return nil, classifyError(err, "could not create PersistentVolumeClaim %s", spec.Name)
	}

	Logc(ctx).WithFields(LogFields{
		"pvc":          spec.Name,
		"namespace":    d.config.Namespace,
		"storageClass": spec.StorageClass,
	}).Info("Created PersistentVolumeClaim.")

	return volumeFromPVC(created), nil
}

func (d *Driver) pvcRequest(spec storage.VolumeSpec) (*v1.PersistentVolumeClaim, error) {
	annotations := map[string]string{}
	setAnnotation := func(key, value string) {
		if value != "" {
			annotations[key] = value
		}
	}

	if spec.UnixPermissions != "" {
		if err := storage.ValidateUnixPermissions(spec.UnixPermissions); err != nil {
			return nil, err
		}
	}
	setAnnotation(AnnUnixPermissions, spec.UnixPermissions)
	setAnnotation(AnnExportPolicy, spec.ExportPolicy)
	setAnnotation(AnnSnapshotPolicy, spec.SnapshotPolicy)
	setAnnotation(AnnSecurityStyle, spec.SecurityStyle)
	if spec.SnapshotReserve != nil {
		setAnnotation(AnnSnapshotReserve, strconv.Itoa(*spec.SnapshotReserve))
	}

	accessMode := v1.ReadWriteMany
	if spec.ReadOnly {
		accessMode = v1.ReadOnlyMany
	}

	pvc := &v1.PersistentVolumeClaim{
		ObjectMeta: metav1.ObjectMeta{
			Name:        spec.Name,
			Namespace:   d.config.Namespace,
			Labels:      createdByLabels(),
			Annotations: annotations,
		},
		Spec: v1.PersistentVolumeClaimSpec{
			AccessModes: []v1.PersistentVolumeAccessMode{accessMode},
			Resources: v1.VolumeResourceRequirements{
				Requests: v1.ResourceList{},
			},
		},
	}
	if spec.StorageClass != "" {
		pvc.Spec.StorageClassName = ptr.To(spec.StorageClass)
	}

	if spec.ClonedFrom != nil {
		annotations[config.AnnSourceVolume] = spec.ClonedFrom.SourceVolume
		if spec.ClonedFrom.SourceSnapshot != "" {
			annotations[config.AnnSourceSnapshot] = spec.ClonedFrom.SourceSnapshot
			pvc.Spec.DataSource = &v1.TypedLocalObjectReference{
				APIGroup: ptr.To(volumeSnapshotAPIGroup),
				Kind:     volumeSnapshotKind,
				Name:     spec.ClonedFrom.SourceSnapshot,
			}
		} else {
			annotations[config.AnnCloneFromPVC] = spec.ClonedFrom.SourceVolume
		}
		if spec.SplitClone {
			annotations[config.AnnSplitOnClone] = "true"
		}
	}

	if spec.SizeBytes == 0 {
		return nil, errors.InvalidVolumeParameterError("volume size is required")
	}
	pvc.Spec.Resources.Requests[v1.ResourceStorage] = *resource.NewQuantity(int64(spec.SizeBytes), resource.BinarySI)

	return pvc, nil
}

// volumeFromPVC converts a PVC into the toolkit volume model.
func volumeFromPVC(pvc *v1.PersistentVolumeClaim) *storage.Volume {
	volume := &storage.Volume{
		Name:  pvc.Name,
		ID:    pvc.Spec.VolumeName,
		Phase: pvcPhase(pvc),
	}

	if quantity, ok := pvc.Status.Capacity[v1.ResourceStorage]; ok {
		volume.SizeBytes = uint64(quantity.Value())
	} else if quantity, ok := pvc.Spec.Resources.Requests[v1.ResourceStorage]; ok {
		volume.SizeBytes = uint64(quantity.Value())
	}
	if pvc.Spec.StorageClassName != nil {
		volume.StorageClass = *pvc.Spec.StorageClassName
	}
	for _, mode := range pvc.Spec.AccessModes {
		volume.Protocols = append(volume.Protocols, string(mode))
	}

	annotations := pvc.Annotations
	volume.UnixPermissions = annotations[AnnUnixPermissions]
	volume.ExportPolicy = annotations[AnnExportPolicy]
	volume.SnapshotPolicy = annotations[AnnSnapshotPolicy]
	volume.SecurityStyle = annotations[AnnSecurityStyle]

	if source := annotations[config.AnnSourceVolume]; source != "" {
		volume.ClonedFrom = &storage.ClonedFrom{
			SourceVolume:   source,
			SourceSnapshot: annotations[config.AnnSourceSnapshot],
		}
	} else if source := annotations[config.AnnCloneFromPVC]; source != "" {
		volume.ClonedFrom = &storage.ClonedFrom{SourceVolume: source}
	}

	if volume.Phase == storage.VolumePhaseFailed {
		volume.Message = "PersistentVolumeClaim " + pvc.Name + " lost its PersistentVolume"
	}

	return volume
}

func pvcPhase(pvc *v1.PersistentVolumeClaim) storage.VolumePhase {
	if pvc.DeletionTimestamp != nil {
		return storage.VolumePhaseDeleting
	}
	switch pvc.Status.Phase {
	case v1.ClaimBound:
		return storage.VolumePhaseReady
	case v1.ClaimLost:
		return storage.VolumePhaseFailed
	default:
		return storage.VolumePhasePending
	}
}

// GetVolume returns the named PVC.
func (d *Driver) GetVolume(ctx context.Context, name string) (*storage.Volume, error) {
	pvc, err := d.kubeClient.CoreV1().PersistentVolumeClaims(d.config.Namespace).Get(ctx, name, metav1.GetOptions{})
	if err != nil {
		return nil, classifyError(err, "could not get PersistentVolumeClaim %s", name)
	}
	return volumeFromPVC(pvc), nil
}

// DeleteVolume deletes the named PVC. With force the grace period is dropped.
func (d *Driver) DeleteVolume(ctx context.Context, name string, force bool) error {
	options := metav1.DeleteOptions{PropagationPolicy: ptr.To(metav1.DeletePropagationBackground)}
	if force {
		options.GracePeriodSeconds = ptr.To(int64(0))
	}

	err := d.kubeClient.CoreV1().PersistentVolumeClaims(d.config.Namespace).Delete(ctx, name, options)
	if err != nil {
		return classifyError(err, "could not delete PersistentVolumeClaim %s", name)
	}

	Logc(ctx).WithFields(LogFields{"pvc": name, "namespace": d.config.Namespace}).Info(
		"Deleted PersistentVolumeClaim.")
	return nil
}

// ListVolumes returns the PVCs in the namespace that match the filter, sorted by name.
func (d *Driver) ListVolumes(ctx context.Context, filter storage.VolumeFilter) ([]*storage.Volume, error) {
	list, err := d.kubeClient.CoreV1().PersistentVolumeClaims(d.config.Namespace).List(ctx, metav1.ListOptions{})
	if err != nil {
		return nil, classifyError(err, "could not list PersistentVolumeClaims")
	}

	result := make([]*storage.Volume, 0, len(list.Items))
	for i := range list.Items {
		volume := volumeFromPVC(&list.Items[i])
		if filter.Matches(volume) {
			result = append(result, volume)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })

	return result, nil
}
