// Copyright 2025 NetApp, Inc. All Rights Reserved.

package exec

//go:generate mockgen -destination=../../mocks/mock_utils/mock_exec/mock_command.go -package=mock_exec github.com/netapp/dataops/utils/exec Command

import (
	"context"
	"os/exec"
	"regexp"
	"strings"
	"time"

	. "github.com/netapp/dataops/logging"
	"github.com/netapp/dataops/utils/errors"
)

var xtermControlRegex = regexp.MustCompile(`\x1B\[[0-9;]*[a-zA-Z]`)

// Command runs local programs and returns their combined output.
type Command interface {
	Execute(ctx context.Context, name string, args ...string) ([]byte, error)
	ExecuteRedacted(ctx context.Context, name string, args []string, secretsToRedact map[string]string) ([]byte, error)
	ExecuteWithTimeout(
		ctx context.Context, name string, timeout time.Duration, logOutput bool, args ...string,
	) ([]byte, error)
}

type command struct {
	executor func(ctx context.Context, name string, args ...string) *exec.Cmd
}

func NewCommand() Command {
	return &command{executor: exec.CommandContext}
}

// Execute runs the command and waits for it to exit. A non-zero exit is returned as the
// *exec.ExitError, along with whatever the command wrote.
func (c *command) Execute(ctx context.Context, name string, args ...string) ([]byte, error) {
	return c.ExecuteRedacted(ctx, name, args, nil)
}

// ExecuteRedacted is Execute with the given strings replaced in everything that is logged.
func (c *command) ExecuteRedacted(
	ctx context.Context, name string, args []string, secretsToRedact map[string]string,
) ([]byte, error) {
	displayArgs := strings.Join(args, " ")
	for secret, replacement := range secretsToRedact {
		displayArgs = strings.ReplaceAll(displayArgs, secret, replacement)
	}

	Logc(ctx).WithFields(LogFields{
		"command": name,
		"args":    displayArgs,
	}).Debug(">>>> exec.Execute")

	out, err := c.executor(ctx, name, args...).CombinedOutput()

	Logc(ctx).WithFields(LogFields{
		"command": name,
		"output":  sanitizeExecOutput(string(out)),
		"error":   err,
	}).Debug("<<<< exec.Execute")

	return out, err
}

// ExecuteWithTimeout runs the command and kills it if it has not exited within timeout.
func (c *command) ExecuteWithTimeout(
	ctx context.Context, name string, timeout time.Duration, logOutput bool, args ...string,
) ([]byte, error) {
	Logc(ctx).WithFields(LogFields{
		"command": name,
		"timeout": timeout,
		"args":    args,
	}).Debug(">>>> exec.ExecuteWithTimeout")
	defer Logc(ctx).Debug("<<<< exec.ExecuteWithTimeout")

	timeoutCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	out, err := c.executor(timeoutCtx, name, args...).CombinedOutput()
	if timeoutCtx.Err() == context.DeadlineExceeded {
		Logc(ctx).WithField("command", name).Error("Process did not finish in time.")
		return nil, errors.TimeoutError("process %s did not finish within %v", name, timeout)
	}

	fields := LogFields{"command": name, "error": err}
	if logOutput {
		fields["output"] = sanitizeExecOutput(string(out))
	}
	Logc(ctx).WithFields(fields).Debug("Process finished.")

	return out, err
}

// sanitizeExecOutput strips terminal control sequences and one trailing newline.
func sanitizeExecOutput(s string) string {
	s = xtermControlRegex.ReplaceAllString(s, "")
	return strings.TrimSuffix(s, "\n")
}
