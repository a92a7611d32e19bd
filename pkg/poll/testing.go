// Copyright 2025 NetApp, Inc. All Rights Reserved.

package poll

import (
	"sync"
	"time"
)

// RecordingTimer is a backoff.Timer that fires immediately and records every requested
// wait, so tests can assert on poll cadence without sleeping.
type RecordingTimer struct {
	mu    sync.Mutex
	waits []time.Duration
	c     chan time.Time
}

func NewRecordingTimer() *RecordingTimer {
	return &RecordingTimer{c: make(chan time.Time, 1)}
}

func (t *RecordingTimer) Start(duration time.Duration) {
	t.mu.Lock()
	t.waits = append(t.waits, duration)
	t.mu.Unlock()
	t.c <- time.Time{}
}

func (t *RecordingTimer) Stop() {
	select {
	case <-t.c:
	default:
	}
}

func (t *RecordingTimer) C() <-chan time.Time {
	return t.c
}

// Waits returns the durations requested so far.
func (t *RecordingTimer) Waits() []time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]time.Duration(nil), t.waits...)
}
