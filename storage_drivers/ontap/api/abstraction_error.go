// Copyright 2025 NetApp, Inc. All Rights Reserved.

package api

import (
	"fmt"
	"net/http"

	"github.com/netapp/dataops/utils/errors"
)

// ///////////////////////////////////////////////////////////////////////////
// REST error codes
// ///////////////////////////////////////////////////////////////////////////
const (
	ENTRY_DOESNT_EXIST              = "4"
	DUPLICATE_ENTRY                 = "1"
	VOLUME_NAME_IN_USE              = "917731"
	SNAPSHOT_NAME_IN_USE            = "1638413"
	SNAPSHOT_BUSY                   = "1638555"
	SNAPMIRROR_TRANSFER_IN_PROGRESS = "13303812"
)

// RestError encapsulates the status, message and code of a failed REST call or job, and it
// provides helpers for detecting common error conditions.
type RestError struct {
	httpStatus  int
	description string
	state       string
	message     string
	code        string
}

func NewRestErrorFromPayload(payload *Job) RestError {
	return RestError{
		description: payload.Description,
		state:       payload.State,
		message:     payload.Message,
		code:        fmt.Sprint(payload.Code),
	}
}

func NewRestErrorFromResponse(status int, payload *ErrorResponse) RestError {
	e := RestError{httpStatus: status, state: JobStateFailure}
	if payload != nil && payload.Error != nil {
		e.message = payload.Error.Message
		e.code = payload.Error.Code
	}
	if e.message == "" {
		e.message = http.StatusText(status)
	}
	return e
}

func (e RestError) IsSuccess() bool {
	return e.state == JobStateSuccess
}

func (e RestError) IsFailure() bool {
	return e.state == JobStateFailure
}

func (e RestError) Error() string {
	if e.IsSuccess() {
		return "API status: success"
	}
	if e.httpStatus != 0 {
		return fmt.Sprintf("API status: %d, Message: %s, Code: %s", e.httpStatus, e.message, e.code)
	}
	return fmt.Sprintf("API State: %s, Message: %s, Code: %s", e.state, e.message, e.code)
}

func (e RestError) IsNotFound() bool {
	return e.code == ENTRY_DOESNT_EXIST || e.httpStatus == http.StatusNotFound
}

func (e RestError) IsConflict() bool {
	return e.code == DUPLICATE_ENTRY || e.code == VOLUME_NAME_IN_USE || e.code == SNAPSHOT_NAME_IN_USE ||
		e.httpStatus == http.StatusConflict
}

func (e RestError) IsSnapshotBusy() bool {
	return e.code == SNAPSHOT_BUSY
}

func (e RestError) Message() string {
	return e.message
}

func (e RestError) Code() string {
	return e.code
}

// ClassifyError converts a REST failure into the shared taxonomy. Every failure is an
// APIConnectionError; not-found and conflict stay detectable through the wrapped cause.
func ClassifyError(err error, message string, a ...any) error {
	if err == nil {
		return nil
	}
	var restErr RestError
	if errors.As(err, &restErr) {
		switch {
		case restErr.IsNotFound():
			err = errors.WrapWithNotFoundError(err, "")
		case restErr.IsConflict():
			err = errors.WrapWithAlreadyExistsError(err, "")
		}
	}
	return errors.WrapWithAPIConnectionError(err, message, a...)
}
