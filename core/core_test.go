// Copyright 2025 NetApp, Inc. All Rights Reserved.

package core

import (
	"context"
	"io"
	"os"
	"testing"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/netapp/dataops/pkg/poll"
	"github.com/netapp/dataops/storage"
	"github.com/netapp/dataops/storage_drivers/fake"
)

var ctx = context.Background()

var testNow = time.Date(2024, 6, 1, 12, 30, 45, 0, time.UTC)

func TestMain(m *testing.M) {
	// Disable any standard log output
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func testSettings(timer *poll.RecordingTimer) Settings {
	s := DefaultSettings().WithTimer(timer)
	s.Now = func() time.Time { return testNow }
	return s
}

// newTestToolkit returns a toolkit over a fresh fake backend whose polls never sleep.
func newTestToolkit() (*Toolkit, *fake.Backend, *poll.RecordingTimer) {
	backend := fake.NewBackend()
	timer := poll.NewRecordingTimer()
	return NewToolkit(backend, WithSettings(testSettings(timer))), backend, timer
}

func fakeBackendWithPhases(phases ...storage.VolumePhase) *fake.Backend {
	backend := fake.NewBackend()
	backend.ScriptVolumePhases(phases...)
	return backend
}
