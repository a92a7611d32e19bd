// Copyright 2025 NetApp, Inc. All Rights Reserved.

package cloudsync

// Activity states reported by Cloud Sync for the latest run of a relationship
const (
	ActivityStatusRunning = "RUNNING"
	ActivityStatusDone    = "DONE"
	ActivityStatusFailed  = "FAILED"
)

type Account struct {
	AccountID string `json:"accountId"`
	Name      string `json:"accountName,omitempty"`
}

type NFSEndpoint struct {
	Host    string `json:"host"`
	Path    string `json:"path,omitempty"`
	Export  string `json:"export,omitempty"`
	Version string `json:"version,omitempty"`
}

type S3Endpoint struct {
	Bucket   string `json:"bucket"`
	Provider string `json:"provider,omitempty"`
	Prefix   string `json:"prefix,omitempty"`
}

type Endpoint struct {
	Protocol string       `json:"protocol"`
	NFS      *NFSEndpoint `json:"nfs,omitempty"`
	S3       *S3Endpoint  `json:"s3,omitempty"`
}

type Activity struct {
	Type           string `json:"type,omitempty"`
	Status         string `json:"status"`
	FailureMessage string `json:"failureMessage,omitempty"`
	StartTime      int64  `json:"startTime,omitempty"`
	EndTime        int64  `json:"endTime,omitempty"`
	BytesCopied    int64  `json:"bytesCopied,omitempty"`
	FilesCopied    int64  `json:"filesCopied,omitempty"`
}

// Relationship is the v2 view of a Cloud Sync relationship.
type Relationship struct {
	ID       string    `json:"relationshipId"`
	Source   *Endpoint `json:"source,omitempty"`
	Target   *Endpoint `json:"target,omitempty"`
	Activity *Activity `json:"activity,omitempty"`
	Schedule *Schedule `json:"schedule,omitempty"`
}

type Schedule struct {
	Enabled     bool `json:"isEnabled"`
	SyncInDays  int  `json:"syncInDays,omitempty"`
	SyncInHours int  `json:"syncInHours,omitempty"`
}

// ErrorResponse is the body Cloud Sync returns with non-2xx statuses.
type ErrorResponse struct {
	Code    int    `json:"code,omitempty"`
	Message string `json:"message"`
}
