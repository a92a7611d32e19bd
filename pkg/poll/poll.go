// Copyright 2025 NetApp, Inc. All Rights Reserved.

// Package poll provides the readiness loop used to wait for volumes, snapshots and
// replication transfers to reach a terminal state.
package poll

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"

	. "github.com/netapp/dataops/logging"
	"github.com/netapp/dataops/utils/errors"
)

// Status is the outcome of a single readiness check.
type Status int

const (
	Pending Status = iota
	Done
	Failed
)

func (s Status) String() string {
	switch s {
	case Pending:
		return "pending"
	case Done:
		return "done"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Config controls a single wait.
type Config struct {
	// Name describes the resource in log messages and metrics, e.g. "volume".
	Name string
	// Interval is the fixed delay between checks.
	Interval time.Duration
	// Warmup delays the first check. Zero means check immediately.
	Warmup time.Duration
	// Timeout bounds the whole wait, warm-up included. Zero means unbounded.
	Timeout time.Duration
	// Timer overrides the wall-clock timer; used by tests.
	Timer backoff.Timer
}

// pendingError is returned to backoff to request another attempt.
type pendingError struct {
	message string
}

func (e *pendingError) Error() string { return e.message }

// WaitUntil invokes check until it reports Done or Failed. The check must be a cheap read of
// the resource; a non-nil error stops the loop at once, so connectivity failures are never
// taken for "not yet ready". A Failed status yields a TerminalStateError carrying the
// value's failure message. Exceeding the timeout yields a TimeoutError; cancellation returns
// the context's error.
func WaitUntil[T any](
	ctx context.Context, check func(ctx context.Context) (T, Status, error), cfg Config,
) (T, error) {
	var result T

	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	name := cfg.Name
	if name == "" {
		name = "resource"
	}
	timer := cfg.Timer
	if timer == nil {
		timer = &defaultTimer{}
	}

	fields := LogFields{"resource": name, "interval": cfg.Interval, "timeout": cfg.Timeout}
	Logc(ctx).WithFields(fields).Debug("Waiting for resource state.")

	if cfg.Warmup > 0 {
		if err := sleep(ctx, timer, cfg.Warmup); err != nil {
			return result, mapContextError(err, name, cfg.Timeout)
		}
	}

	attempts := 0
	operation := func() error {
		attempts++
		checks.WithLabelValues(name).Inc()

		value, status, err := check(ctx)
		result = value
		if err != nil {
			return backoff.Permanent(err)
		}

		switch status {
		case Done:
			return nil
		case Failed:
			message := fmt.Sprintf("%s reached a failed state", name)
			if msg := StatusMessage(value); msg != "" {
				message = fmt.Sprintf("%s; %s", message, msg)
			}
			return backoff.Permanent(errors.TerminalStateError(message))
		default:
			return &pendingError{message: fmt.Sprintf("%s is not ready", name)}
		}
	}

	notify := func(err error, next time.Duration) {
		Logc(ctx).WithFields(LogFields{
			"resource":  name,
			"attempt":   attempts,
			"increment": next,
			"message":   err.Error(),
		}).Debug("Resource not ready, waiting.")
	}

	b := backoff.WithContext(backoff.NewConstantBackOff(cfg.Interval), ctx)
	if err := backoff.RetryNotifyWithTimer(operation, b, notify, timer); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil && errors.Is(err, ctxErr) {
			return result, mapContextError(ctxErr, name, cfg.Timeout)
		}
		return result, err
	}

	Logc(ctx).WithFields(fields).WithField("attempts", attempts).Debug("Resource reached desired state.")
	return result, nil
}

// StatusMessage extracts a backend failure message from a check result that exposes one.
func StatusMessage(value any) string {
	if m, ok := value.(interface{ FailureMessage() string }); ok {
		return m.FailureMessage()
	}
	return ""
}

func sleep(ctx context.Context, timer backoff.Timer, d time.Duration) error {
	timer.Start(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C():
		return nil
	}
}

func mapContextError(err error, name string, timeout time.Duration) error {
	if errors.Is(err, context.DeadlineExceeded) {
		if timeout > 0 {
			return errors.WrapWithTimeoutError(err, "timed out after %v waiting for %s", timeout, name)
		}
		return errors.WrapWithTimeoutError(err, "timed out waiting for %s", name)
	}
	return err
}

// defaultTimer implements backoff.Timer on the wall clock.
type defaultTimer struct {
	timer *time.Timer
}

func (t *defaultTimer) C() <-chan time.Time {
	return t.timer.C
}

func (t *defaultTimer) Start(duration time.Duration) {
	if t.timer == nil {
		t.timer = time.NewTimer(duration)
	} else {
		t.timer.Reset(duration)
	}
}

func (t *defaultTimer) Stop() {
	if t.timer != nil {
		t.timer.Stop()
	}
}
