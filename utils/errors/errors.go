// Copyright 2025 NetApp, Inc. All Rights Reserved.

// Package errors holds the error taxonomy shared by every storage backend and lifecycle manager.
// Each error kind has a constructor, an optional WrapWith… constructor that keeps the cause
// reachable through Unwrap, and an Is… predicate that matches anywhere in the chain.
package errors

import (
	"errors"
	"fmt"

	"go.uber.org/multierr"
)

// ///////////////////////////////////////////////////////////////////////////
// Wrappers for standard library errors package
// ///////////////////////////////////////////////////////////////////////////

func New(message string) error {
	return errors.New(message)
}

func Is(err, target error) bool {
	return errors.Is(err, target)
}

func As(err error, target any) bool {
	return errors.As(err, target)
}

func Unwrap(err error) error {
	return errors.Unwrap(err)
}

// Combine merges best-effort failures into a single error; nil entries are dropped.
func Combine(errs ...error) error {
	return multierr.Combine(errs...)
}

// Errors returns the individual errors that make up a combined error.
func Errors(err error) []error {
	return multierr.Errors(err)
}

func format(message string, a []any) string {
	if len(a) == 0 {
		return message
	}
	return fmt.Sprintf(message, a...)
}

// wrappedError is embedded in every error kind below.
type wrappedError struct {
	inner   error
	message string
}

func (e *wrappedError) Error() string {
	if e.inner == nil || e.inner.Error() == "" {
		return e.message
	} else if e.message == "" {
		return e.inner.Error()
	}
	return fmt.Sprintf("%v; %v", e.message, e.inner.Error())
}

func (e *wrappedError) Unwrap() error { return e.inner }

// ///////////////////////////////////////////////////////////////////////////
// notFoundError
// ///////////////////////////////////////////////////////////////////////////

type notFoundError struct{ wrappedError }

func NotFoundError(message string, a ...any) error {
	return &notFoundError{wrappedError{message: format(message, a)}}
}

func WrapWithNotFoundError(err error, message string, a ...any) error {
	return &notFoundError{wrappedError{inner: err, message: format(message, a)}}
}

func IsNotFoundError(err error) bool {
	if err == nil {
		return false
	}
	var errPtr *notFoundError
	return errors.As(err, &errPtr)
}

// ///////////////////////////////////////////////////////////////////////////
// alreadyExistsError
// ///////////////////////////////////////////////////////////////////////////

type alreadyExistsError struct{ wrappedError }

func AlreadyExistsError(message string, a ...any) error {
	return &alreadyExistsError{wrappedError{message: format(message, a)}}
}

func WrapWithAlreadyExistsError(err error, message string, a ...any) error {
	return &alreadyExistsError{wrappedError{inner: err, message: format(message, a)}}
}

func IsAlreadyExistsError(err error) bool {
	if err == nil {
		return false
	}
	var errPtr *alreadyExistsError
	return errors.As(err, &errPtr)
}

// ///////////////////////////////////////////////////////////////////////////
// unsupportedError
// ///////////////////////////////////////////////////////////////////////////

type unsupportedError struct{ wrappedError }

func UnsupportedError(message string, a ...any) error {
	return &unsupportedError{wrappedError{message: format(message, a)}}
}

func IsUnsupportedError(err error) bool {
	if err == nil {
		return false
	}
	var errPtr *unsupportedError
	return errors.As(err, &errPtr)
}

// ///////////////////////////////////////////////////////////////////////////
// timeoutError
// ///////////////////////////////////////////////////////////////////////////

type timeoutError struct{ wrappedError }

func TimeoutError(message string, a ...any) error {
	return &timeoutError{wrappedError{message: format(message, a)}}
}

func WrapWithTimeoutError(err error, message string, a ...any) error {
	return &timeoutError{wrappedError{inner: err, message: format(message, a)}}
}

func IsTimeoutError(err error) bool {
	if err == nil {
		return false
	}
	var errPtr *timeoutError
	return errors.As(err, &errPtr)
}

// ///////////////////////////////////////////////////////////////////////////
// terminalStateError
// ///////////////////////////////////////////////////////////////////////////

// terminalStateError reports that a polled resource reached a failure state it cannot leave.
type terminalStateError struct{ wrappedError }

func TerminalStateError(message string, a ...any) error {
	return &terminalStateError{wrappedError{message: format(message, a)}}
}

func WrapWithTerminalStateError(err error, message string, a ...any) error {
	return &terminalStateError{wrappedError{inner: err, message: format(message, a)}}
}

func IsTerminalStateError(err error) bool {
	if err == nil {
		return false
	}
	var errPtr *terminalStateError
	return errors.As(err, &errPtr)
}

// ///////////////////////////////////////////////////////////////////////////
// invalidConfigError
// ///////////////////////////////////////////////////////////////////////////

type invalidConfigError struct{ wrappedError }

func InvalidConfigError(message string, a ...any) error {
	return &invalidConfigError{wrappedError{message: format(message, a)}}
}

func WrapWithInvalidConfigError(err error, message string, a ...any) error {
	return &invalidConfigError{wrappedError{inner: err, message: format(message, a)}}
}

func IsInvalidConfigError(err error) bool {
	if err == nil {
		return false
	}
	var errPtr *invalidConfigError
	return errors.As(err, &errPtr)
}

// ///////////////////////////////////////////////////////////////////////////
// apiConnectionError
// ///////////////////////////////////////////////////////////////////////////

// apiConnectionError wraps any failure returned by a storage control-plane API.
type apiConnectionError struct{ wrappedError }

func APIConnectionError(message string, a ...any) error {
	return &apiConnectionError{wrappedError{message: format(message, a)}}
}

func WrapWithAPIConnectionError(err error, message string, a ...any) error {
	return &apiConnectionError{wrappedError{inner: err, message: format(message, a)}}
}

func IsAPIConnectionError(err error) bool {
	if err == nil {
		return false
	}
	var errPtr *apiConnectionError
	return errors.As(err, &errPtr)
}

// ///////////////////////////////////////////////////////////////////////////
// invalidVolumeParameterError
// ///////////////////////////////////////////////////////////////////////////

type invalidVolumeParameterError struct{ wrappedError }

func InvalidVolumeParameterError(message string, a ...any) error {
	return &invalidVolumeParameterError{wrappedError{message: format(message, a)}}
}

func WrapWithInvalidVolumeParameterError(err error, message string, a ...any) error {
	return &invalidVolumeParameterError{wrappedError{inner: err, message: format(message, a)}}
}

func IsInvalidVolumeParameterError(err error) bool {
	if err == nil {
		return false
	}
	var errPtr *invalidVolumeParameterError
	return errors.As(err, &errPtr)
}

// ///////////////////////////////////////////////////////////////////////////
// invalidSnapshotParameterError
// ///////////////////////////////////////////////////////////////////////////

type invalidSnapshotParameterError struct{ wrappedError }

func InvalidSnapshotParameterError(message string, a ...any) error {
	return &invalidSnapshotParameterError{wrappedError{message: format(message, a)}}
}

func WrapWithInvalidSnapshotParameterError(err error, message string, a ...any) error {
	return &invalidSnapshotParameterError{wrappedError{inner: err, message: format(message, a)}}
}

func IsInvalidSnapshotParameterError(err error) bool {
	if err == nil {
		return false
	}
	var errPtr *invalidSnapshotParameterError
	return errors.As(err, &errPtr)
}

// ///////////////////////////////////////////////////////////////////////////
// invalidSnapMirrorParameterError
// ///////////////////////////////////////////////////////////////////////////

type invalidSnapMirrorParameterError struct{ wrappedError }

func InvalidSnapMirrorParameterError(message string, a ...any) error {
	return &invalidSnapMirrorParameterError{wrappedError{message: format(message, a)}}
}

func WrapWithInvalidSnapMirrorParameterError(err error, message string, a ...any) error {
	return &invalidSnapMirrorParameterError{wrappedError{inner: err, message: format(message, a)}}
}

func IsInvalidSnapMirrorParameterError(err error) bool {
	if err == nil {
		return false
	}
	var errPtr *invalidSnapMirrorParameterError
	return errors.As(err, &errPtr)
}

// ///////////////////////////////////////////////////////////////////////////
// mountOperationError
// ///////////////////////////////////////////////////////////////////////////

type mountOperationError struct{ wrappedError }

func MountOperationError(message string, a ...any) error {
	return &mountOperationError{wrappedError{message: format(message, a)}}
}

func WrapWithMountOperationError(err error, message string, a ...any) error {
	return &mountOperationError{wrappedError{inner: err, message: format(message, a)}}
}

func IsMountOperationError(err error) bool {
	if err == nil {
		return false
	}
	var errPtr *mountOperationError
	return errors.As(err, &errPtr)
}

// ///////////////////////////////////////////////////////////////////////////
// connectionTypeError
// ///////////////////////////////////////////////////////////////////////////

type connectionTypeError struct{ wrappedError }

func ConnectionTypeError(connectionType string) error {
	return &connectionTypeError{wrappedError{
		message: fmt.Sprintf("unsupported connection type '%s'", connectionType),
	}}
}

func IsConnectionTypeError(err error) bool {
	if err == nil {
		return false
	}
	var errPtr *connectionTypeError
	return errors.As(err, &errPtr)
}

// ///////////////////////////////////////////////////////////////////////////
// Replication sync errors
// ///////////////////////////////////////////////////////////////////////////

// replicationSyncError is raised when a replication transfer ends in a state this toolkit
// does not recognize.
type replicationSyncError struct{ wrappedError }

func ReplicationSyncError(message string, a ...any) error {
	return &replicationSyncError{wrappedError{message: format(message, a)}}
}

// snapMirrorSyncOperationError carries the failure message reported by ONTAP.
type snapMirrorSyncOperationError struct{ wrappedError }

func SnapMirrorSyncOperationError(message string, a ...any) error {
	return &snapMirrorSyncOperationError{wrappedError{message: format(message, a)}}
}

func IsSnapMirrorSyncOperationError(err error) bool {
	if err == nil {
		return false
	}
	var errPtr *snapMirrorSyncOperationError
	return errors.As(err, &errPtr)
}

// cloudSyncSyncOperationError carries the failure message reported by Cloud Sync.
type cloudSyncSyncOperationError struct{ wrappedError }

func CloudSyncSyncOperationError(message string, a ...any) error {
	return &cloudSyncSyncOperationError{wrappedError{message: format(message, a)}}
}

func IsCloudSyncSyncOperationError(err error) bool {
	if err == nil {
		return false
	}
	var errPtr *cloudSyncSyncOperationError
	return errors.As(err, &errPtr)
}

// IsReplicationSyncError matches any replication failure: SnapMirror, Cloud Sync, or an
// unrecognized transfer state.
func IsReplicationSyncError(err error) bool {
	if err == nil {
		return false
	}
	var errPtr *replicationSyncError
	return errors.As(err, &errPtr) || IsSnapMirrorSyncOperationError(err) || IsCloudSyncSyncOperationError(err)
}
