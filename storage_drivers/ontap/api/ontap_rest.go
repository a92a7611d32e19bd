// Copyright 2025 NetApp, Inc. All Rights Reserved.

package api

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/go-openapi/runtime"
	runtime_client "github.com/go-openapi/runtime/client"
	"github.com/go-openapi/strfmt"

	. "github.com/netapp/dataops/logging"
	"github.com/netapp/dataops/utils/errors"
)

const (
	restBasePath       = "/api"
	defaultHTTPTimeout = 60 * time.Second
	maxJobWait         = 2 * time.Minute

	volumeFields     = "uuid,name,size,state,style,type,svm,aggregates,nas,snapshot_policy,space.snapshot,clone"
	snapshotFields   = "uuid,name,create_time,volume,snapmirror_label,size"
	snapmirrorFields = "uuid,source,destination,policy,transfer_schedule,healthy,state,transfer,unhealthy_reason"
)

// ClientConfig holds the connection settings for an ONTAP cluster.
type ClientConfig struct {
	ManagementLIF string
	SVM           string
	Username      string
	Password      string
	VerifySSLCert bool
	// Scheme lets tests talk http; it defaults to https.
	Scheme string
}

// RestClient is the object to use for interacting with the ONTAP REST API
type RestClient struct {
	config     ClientConfig
	runtime    *runtime_client.Runtime
	httpClient *http.Client
	authInfo   runtime.ClientAuthInfoWriter
	formats    strfmt.Registry

	// jobBackOff builds the backoff used while waiting for async jobs
	jobBackOff func() backoff.BackOff
}

// NewRestClient is a factory method for creating a new instance
func NewRestClient(ctx context.Context, config ClientConfig) (*RestClient, error) {
	if config.ManagementLIF == "" {
		return nil, errors.InvalidConfigError("ONTAP management LIF is required")
	}
	if config.Scheme == "" {
		config.Scheme = "https"
	}

	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		TLSClientConfig: &tls.Config{
			InsecureSkipVerify: !config.VerifySSLCert,
			MinVersion:         tls.VersionTLS12,
		},
	}

	httpClient := &http.Client{
		Transport: NewMetricsTransport(transport, RequestTargetONTAP),
		Timeout:   defaultHTTPTimeout,
	}

	result := &RestClient{
		config:     config,
		httpClient: httpClient,
		runtime:    runtime_client.NewWithClient(config.ManagementLIF, restBasePath, []string{config.Scheme}, httpClient),
		authInfo:   runtime_client.BasicAuth(config.Username, config.Password),
		formats:    strfmt.Default,
		jobBackOff: defaultJobBackOff,
	}

	Logc(ctx).WithFields(LogFields{
		"managementLIF": config.ManagementLIF,
		"svm":           config.SVM,
		"verifySSLCert": config.VerifySSLCert,
	}).Debug("Created ONTAP REST client.")

	return result, nil
}

func defaultJobBackOff() backoff.BackOff {
	jobStatusBackoff := backoff.NewExponentialBackOff()
	jobStatusBackoff.InitialInterval = 1 * time.Second
	jobStatusBackoff.Multiplier = 2
	jobStatusBackoff.RandomizationFactor = 0.1
	jobStatusBackoff.MaxElapsedTime = maxJobWait
	return jobStatusBackoff
}

// SVM returns the name of the SVM this client is scoped to.
func (c *RestClient) SVM() string {
	return c.config.SVM
}

// request carries the path, query and body of a single REST call.
type request struct {
	path  map[string]string
	query url.Values
	body  any
}

func (r *request) WriteToRequest(req runtime.ClientRequest, _ strfmt.Registry) error {
	for name, value := range r.path {
		if err := req.SetPathParam(name, value); err != nil {
			return err
		}
	}
	for name, values := range r.query {
		if err := req.SetQueryParam(name, values...); err != nil {
			return err
		}
	}
	if r.body != nil {
		return req.SetBodyParam(r.body)
	}
	return nil
}

// submit issues one REST call and decodes a 2xx body into result. Non-2xx responses are
// returned as RestError values.
func (c *RestClient) submit(
	ctx context.Context, id, method, pathPattern string, req *request, result any,
) error {
	if req == nil {
		req = &request{}
	}

	Logc(ctx).WithFields(LogFields{
		"API":    id,
		"method": method,
		"path":   pathPattern,
	}).Trace("Calling ONTAP REST API.")

	reader := runtime.ClientResponseReaderFunc(
		func(response runtime.ClientResponse, consumer runtime.Consumer) (any, error) {
			code := response.Code()
			if code >= 200 && code < 300 {
				if result != nil && code != http.StatusNoContent {
					if err := consumer.Consume(response.Body(), result); err != nil && err != io.EOF {
						return nil, fmt.Errorf("could not decode %s response; %v", id, err)
					}
				}
				return result, nil
			}
			payload := &ErrorResponse{}
			if err := consumer.Consume(response.Body(), payload); err != nil {
				payload = nil
			}
			return nil, NewRestErrorFromResponse(code, payload)
		})

	_, err := c.runtime.Submit(&runtime.ClientOperation{
		ID:                 id,
		Method:             method,
		PathPattern:        pathPattern,
		ProducesMediaTypes: []string{runtime.JSONMime},
		ConsumesMediaTypes: []string{runtime.JSONMime},
		Schemes:            []string{c.config.Scheme},
		Params:             req,
		Reader:             reader,
		AuthInfo:           c.authInfo,
		Context:            ctx,
		Client:             c.httpClient,
	})
	return err
}

// submitAsync issues a call that returns a job link and waits for the job to finish.
func (c *RestClient) submitAsync(ctx context.Context, id, method, pathPattern string, req *request) error {
	response := &JobLinkResponse{}
	if err := c.submit(ctx, id, method, pathPattern, req, response); err != nil {
		return err
	}
	if response.Job == nil || response.Job.UUID == "" {
		// Some calls complete synchronously and return no job
		return nil
	}
	return c.PollJobStatus(ctx, response.Job.UUID)
}

// ////////////////////////////////////////////////////////////////////////////
// JOB operations
// ////////////////////////////////////////////////////////////////////////////

// JobGet returns the job by ID
func (c *RestClient) JobGet(ctx context.Context, jobUUID string) (*Job, error) {
	job := &Job{}
	err := c.submit(ctx, "job_get", http.MethodGet, "/cluster/jobs/{uuid}", &request{
		path: map[string]string{"uuid": jobUUID},
	}, job)
	if err != nil {
		return nil, err
	}
	return job, nil
}

// IsJobFinished looks up the job to see if it has reached a terminal state
func (c *RestClient) IsJobFinished(ctx context.Context, jobUUID string) (bool, *Job, error) {
	job, err := c.JobGet(ctx, jobUUID)
	if err != nil {
		return false, nil, err
	}

	switch job.State {
	case JobStateSuccess, JobStateFailure:
		return true, job, nil
	case JobStatePaused, JobStateRunning, JobStateQueued:
		return false, job, nil
	default:
		return false, job, fmt.Errorf("unexpected job state %v", job.State)
	}
}

// PollJobStatus polls for the ONTAP job to complete, with backoff retry logic
func (c *RestClient) PollJobStatus(ctx context.Context, jobUUID string) error {
	var job *Job

	checkJobStatus := func() error {
		isDone, result, err := c.IsJobFinished(ctx, jobUUID)
		if err != nil {
			return backoff.Permanent(err)
		}
		if !isDone {
			return fmt.Errorf("job %v not yet done", jobUUID)
		}
		job = result
		return nil
	}
	jobStatusNotify := func(err error, duration time.Duration) {
		Logc(ctx).WithField("increment", duration).Debug("Job not yet done, waiting.")
	}

	if err := backoff.RetryNotify(checkJobStatus, backoff.WithContext(c.jobBackOff(), ctx), jobStatusNotify); err != nil {
		Logc(ctx).WithField("UUID", jobUUID).Warn("Job not completed.")
		return err
	}

	Logc(ctx).WithFields(LogFields{
		"uuid":        jobUUID,
		"description": job.Description,
		"state":       job.State,
		"message":     job.Message,
		"code":        job.Code,
	}).Debug("Job completed.")

	if job.State == JobStateFailure {
		return NewRestErrorFromPayload(job)
	}
	return nil
}

// ////////////////////////////////////////////////////////////////////////////
// VOLUME operations
// ////////////////////////////////////////////////////////////////////////////

// VolumeList returns the volumes of the SVM whose names match the supplied pattern
func (c *RestClient) VolumeList(ctx context.Context, pattern string) ([]*Volume, error) {
	query := url.Values{}
	query.Set("fields", volumeFields)
	query.Set("svm.name", c.config.SVM)
	if pattern != "" {
		query.Set("name", pattern)
	}

	collection := &VolumeCollection{}
	if err := c.submit(ctx, "volume_collection_get", http.MethodGet, "/storage/volumes",
		&request{query: query}, collection); err != nil {
		return nil, err
	}
	return collection.Records, nil
}

// VolumeGetByName returns the named volume, or a not-found RestError.
func (c *RestClient) VolumeGetByName(ctx context.Context, name string) (*Volume, error) {
	volumes, err := c.VolumeList(ctx, name)
	if err != nil {
		return nil, err
	}
	for _, volume := range volumes {
		if volume.Name == name {
			return volume, nil
		}
	}
	return nil, RestError{
		httpStatus: http.StatusNotFound,
		state:      JobStateFailure,
		message:    fmt.Sprintf("volume %s not found", name),
		code:       ENTRY_DOESNT_EXIST,
	}
}

// VolumeCreate creates a volume, or a FlexClone when volume.Clone is set.
func (c *RestClient) VolumeCreate(ctx context.Context, volume *Volume) error {
	if volume.Svm == nil {
		volume.Svm = &NamedReference{Name: c.config.SVM}
	}
	return c.submitAsync(ctx, "volume_create", http.MethodPost, "/storage/volumes", &request{body: volume})
}

// VolumeCloneSplitStart starts splitting a FlexClone from its parent.
func (c *RestClient) VolumeCloneSplitStart(ctx context.Context, volumeUUID string) error {
	split := true
	return c.submitAsync(ctx, "volume_modify", http.MethodPatch, "/storage/volumes/{uuid}", &request{
		path: map[string]string{"uuid": volumeUUID},
		body: &Volume{Clone: &VolumeClone{SplitInitiated: &split}},
	})
}

// VolumeRestoreSnapshot reverts the volume to the named snapshot.
func (c *RestClient) VolumeRestoreSnapshot(ctx context.Context, volumeUUID, snapshotName string) error {
	query := url.Values{}
	query.Set("restore_to.snapshot.name", snapshotName)
	return c.submitAsync(ctx, "volume_modify", http.MethodPatch, "/storage/volumes/{uuid}", &request{
		path:  map[string]string{"uuid": volumeUUID},
		query: query,
		body:  &Volume{},
	})
}

// VolumeDelete deletes the volume by UUID.
func (c *RestClient) VolumeDelete(ctx context.Context, volumeUUID string, force bool) error {
	query := url.Values{}
	if force {
		query.Set("force", "true")
	}
	return c.submitAsync(ctx, "volume_delete", http.MethodDelete, "/storage/volumes/{uuid}", &request{
		path:  map[string]string{"uuid": volumeUUID},
		query: query,
	})
}

// ////////////////////////////////////////////////////////////////////////////
// SNAPSHOT operations
// ////////////////////////////////////////////////////////////////////////////

// SnapshotList returns the snapshots of a volume
func (c *RestClient) SnapshotList(ctx context.Context, volumeUUID string) ([]*Snapshot, error) {
	query := url.Values{}
	query.Set("fields", snapshotFields)

	collection := &SnapshotCollection{}
	if err := c.submit(ctx, "snapshot_collection_get", http.MethodGet, "/storage/volumes/{volume_uuid}/snapshots",
		&request{path: map[string]string{"volume_uuid": volumeUUID}, query: query}, collection); err != nil {
		return nil, err
	}
	return collection.Records, nil
}

// SnapshotGetByName returns the named snapshot of a volume, or a not-found RestError.
func (c *RestClient) SnapshotGetByName(ctx context.Context, volumeUUID, name string) (*Snapshot, error) {
	query := url.Values{}
	query.Set("fields", snapshotFields)
	query.Set("name", name)

	collection := &SnapshotCollection{}
	if err := c.submit(ctx, "snapshot_collection_get", http.MethodGet, "/storage/volumes/{volume_uuid}/snapshots",
		&request{path: map[string]string{"volume_uuid": volumeUUID}, query: query}, collection); err != nil {
		return nil, err
	}
	for _, snapshot := range collection.Records {
		if snapshot.Name == name {
			return snapshot, nil
		}
	}
	return nil, RestError{
		httpStatus: http.StatusNotFound,
		state:      JobStateFailure,
		message:    fmt.Sprintf("snapshot %s not found", name),
		code:       ENTRY_DOESNT_EXIST,
	}
}

// SnapshotCreate creates a snapshot of a volume
func (c *RestClient) SnapshotCreate(ctx context.Context, volumeUUID, name, label string) error {
	return c.submitAsync(ctx, "snapshot_create", http.MethodPost, "/storage/volumes/{volume_uuid}/snapshots",
		&request{
			path: map[string]string{"volume_uuid": volumeUUID},
			body: &Snapshot{Name: name, SnapmirrorLabel: label},
		})
}

// SnapshotDelete deletes a snapshot of a volume
func (c *RestClient) SnapshotDelete(ctx context.Context, volumeUUID, snapshotUUID string) error {
	return c.submitAsync(ctx, "snapshot_delete", http.MethodDelete, "/storage/volumes/{volume_uuid}/snapshots/{uuid}",
		&request{path: map[string]string{"volume_uuid": volumeUUID, "uuid": snapshotUUID}})
}

// ////////////////////////////////////////////////////////////////////////////
// SNAPMIRROR operations
// ////////////////////////////////////////////////////////////////////////////

// SnapmirrorRelationshipList returns every SnapMirror relationship visible to the cluster
func (c *RestClient) SnapmirrorRelationshipList(ctx context.Context) ([]*SnapmirrorRelationship, error) {
	query := url.Values{}
	query.Set("fields", snapmirrorFields)

	collection := &SnapmirrorRelationshipCollection{}
	if err := c.submit(ctx, "snapmirror_relationships_get", http.MethodGet, "/snapmirror/relationships",
		&request{query: query}, collection); err != nil {
		return nil, err
	}
	return collection.Records, nil
}

// SnapmirrorRelationshipGet returns a SnapMirror relationship by UUID
func (c *RestClient) SnapmirrorRelationshipGet(ctx context.Context, uuid string) (*SnapmirrorRelationship, error) {
	query := url.Values{}
	query.Set("fields", snapmirrorFields)

	relationship := &SnapmirrorRelationship{}
	if err := c.submit(ctx, "snapmirror_relationship_get", http.MethodGet, "/snapmirror/relationships/{uuid}",
		&request{path: map[string]string{"uuid": uuid}, query: query}, relationship); err != nil {
		return nil, err
	}
	return relationship, nil
}

// SnapmirrorTransferStart starts an update transfer on a SnapMirror relationship
func (c *RestClient) SnapmirrorTransferStart(ctx context.Context, uuid string) error {
	return c.submitAsync(ctx, "snapmirror_relationship_transfer_create", http.MethodPost,
		"/snapmirror/relationships/{uuid}/transfers", &request{
			path: map[string]string{"uuid": uuid},
			body: &SnapmirrorTransfer{},
		})
}
