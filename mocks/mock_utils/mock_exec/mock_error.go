// Copyright 2025 NetApp, Inc. All Rights Reserved.

package mock_exec

import "fmt"

// MockExitError stands in for *exec.ExitError when a mocked command fails.
type MockExitError struct {
	code    int
	Message string
}

func NewMockExitError(code int, message string) *MockExitError {
	return &MockExitError{code: code, Message: message}
}

func (e *MockExitError) Error() string {
	return fmt.Sprintf("exit status %d: %s", e.code, e.Message)
}

func (e *MockExitError) ExitCode() int {
	return e.code
}
