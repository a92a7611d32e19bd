// Copyright 2025 NetApp, Inc. All Rights Reserved.

package exec

import (
	"context"
	b64 "encoding/base64"
	"os"
	"os/exec"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/netapp/dataops/utils/errors"
)

// fakeExecResults describes what the helper process prints, how it exits and how long it sleeps first.
type fakeExecResults struct {
	out   string
	code  int
	delay time.Duration
}

// newFakeExecCommand returns an executor that re-runs the test binary as TestHelperProcess.
func newFakeExecCommand(results fakeExecResults) func(ctx context.Context, name string, args ...string) *exec.Cmd {
	return func(ctx context.Context, name string, args ...string) *exec.Cmd {
		cs := append([]string{"-test.run=TestHelperProcess", "--", name}, args...)
		cmd := exec.CommandContext(ctx, os.Args[0], cs...) // #nosec G204
		cmd.Env = []string{
			"DATAOPS_HELPER_PROCESS=1",
			"GOCOVERDIR=" + os.Getenv("GOCOVERDIR"),
			"HELPER_OUTPUT=" + b64.StdEncoding.EncodeToString([]byte(results.out)),
			"HELPER_EXIT_CODE=" + strconv.Itoa(results.code),
			"HELPER_DELAY=" + results.delay.String(),
		}
		return cmd
	}
}

// TestHelperProcess stands in for the external command when run through newFakeExecCommand.
func TestHelperProcess(t *testing.T) {
	if os.Getenv("DATAOPS_HELPER_PROCESS") != "1" {
		return
	}
	output, _ := b64.StdEncoding.DecodeString(os.Getenv("HELPER_OUTPUT"))
	_, _ = os.Stdout.Write(output)

	if delay, err := time.ParseDuration(os.Getenv("HELPER_DELAY")); err == nil {
		time.Sleep(delay)
	}
	code, err := strconv.Atoi(os.Getenv("HELPER_EXIT_CODE"))
	if err != nil {
		code = -1
	}
	os.Exit(code)
}

func TestExecute(t *testing.T) {
	tests := map[string]struct {
		results fakeExecResults
		want    []byte
		wantErr bool
	}{
		"Success":           {results: fakeExecResults{out: "bar"}, want: []byte("bar")},
		"Binary output":     {results: fakeExecResults{out: string(make([]byte, 20))}, want: make([]byte, 20)},
		"Non-zero exit":     {results: fakeExecResults{out: "bar", code: 1}, want: []byte("bar"), wantErr: true},
		"Exit code is kept": {results: fakeExecResults{out: "", code: 3}, want: []byte{}, wantErr: true},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			client := &command{executor: newFakeExecCommand(test.results)}

			out, err := client.Execute(context.Background(), "xcp", "sync", "-id", "job1")
			if test.wantErr {
				var exitErr *exec.ExitError
				require.ErrorAs(t, err, &exitErr)
				assert.Equal(t, test.results.code, exitErr.ExitCode())
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, len(test.want), len(out))
			assert.Equal(t, string(test.want), string(out))
		})
	}
}

func TestExecuteRedacted(t *testing.T) {
	client := &command{executor: newFakeExecCommand(fakeExecResults{out: "logged in"})}

	out, err := client.ExecuteRedacted(context.Background(), "login",
		[]string{"--password", "hunter2"}, map[string]string{"hunter2": "<REDACTED>"})
	require.NoError(t, err)
	assert.Equal(t, "logged in", string(out))

	client = &command{executor: newFakeExecCommand(fakeExecResults{code: 2})}
	_, err = client.ExecuteRedacted(context.Background(), "login", nil, nil)
	assert.Error(t, err)
}

func TestExecuteWithTimeout(t *testing.T) {
	tests := map[string]struct {
		results     fakeExecResults
		timeout     time.Duration
		want        string
		wantErr     bool
		wantTimeout bool
	}{
		"Finishes in time": {
			results: fakeExecResults{out: "bar"},
			timeout: 10 * time.Second,
			want:    "bar",
		},
		"Fails in time": {
			results: fakeExecResults{out: "bar", code: 1},
			timeout: 10 * time.Second,
			want:    "bar",
			wantErr: true,
		},
		"Too slow": {
			results:     fakeExecResults{out: "bar", delay: 2 * time.Second},
			timeout:     time.Second,
			wantErr:     true,
			wantTimeout: true,
		},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			client := &command{executor: newFakeExecCommand(test.results)}

			out, err := client.ExecuteWithTimeout(context.Background(), "foo", test.timeout, true)
			assert.Equal(t, test.wantErr, err != nil)
			assert.Equal(t, test.wantTimeout, errors.IsTimeoutError(err))
			assert.Equal(t, test.want, string(out))
		})
	}
}

func TestSanitizeExecOutput(t *testing.T) {
	assert.Equal(t, "HelloWorld", sanitizeExecOutput("\x1B[A"+"HelloWorld"))
	assert.Equal(t, "\n", sanitizeExecOutput("\n\n"))
	assert.Equal(t, "done", sanitizeExecOutput("\x1B[1;32mdone\x1B[0m\n"))
}

func TestNewCommand(t *testing.T) {
	cmd, ok := NewCommand().(*command)
	require.True(t, ok)
	assert.NotNil(t, cmd.executor)
}
