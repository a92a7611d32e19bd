// Copyright 2025 NetApp, Inc. All Rights Reserved.

package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestServeMCP(t *testing.T) {
	withFakeBackend(t)

	_, err := runCommand(t, "", "serve", "mcp", "--metrics-address", "127.0.0.1:0")
	assert.NoError(t, err, "the server should stop when its input closes")

	_, err = runCommand(t, "", "serve", "mcp", "--metrics-address", "not-an-address")
	assert.Error(t, err)
}
