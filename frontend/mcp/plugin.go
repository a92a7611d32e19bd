// Copyright 2025 NetApp, Inc. All Rights Reserved.

// Package mcp exposes the toolkit operations as Model Context Protocol tools over stdio.
package mcp

import (
	"context"
	"encoding/json"
	"io"

	mcpgo "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/netapp/dataops/config"
	"github.com/netapp/dataops/core"
	. "github.com/netapp/dataops/logging"
)

const serverName = "netapp-dataops"

// Plugin is the MCP frontend. Every tool call runs synchronously against the toolkit.
type Plugin struct {
	toolkit *core.Toolkit
	server  *server.MCPServer
}

func NewPlugin(toolkit *core.Toolkit) *Plugin {
	p := &Plugin{
		toolkit: toolkit,
		server: server.NewMCPServer(serverName, config.ToolkitVersion,
			server.WithToolCapabilities(false),
			server.WithRecovery(),
		),
	}
	for _, tool := range p.tools() {
		p.server.AddTool(tool.tool, tool.handler)
	}
	return p
}

// Serve answers requests read from in until in is closed or ctx is cancelled.
func (p *Plugin) Serve(ctx context.Context, in io.Reader, out io.Writer) error {
	ctx = GenerateRequestContext(ctx, "", ContextSourceMCP)
	Logc(ctx).WithField("tools", len(p.tools())).Info("Activating MCP frontend.")

	stdio := server.NewStdioServer(p.server)
	err := stdio.Listen(ctx, in, out)

	Logc(ctx).Info("MCP frontend has closed.")
	if ctx.Err() != nil {
		return nil
	}
	return err
}

// MCPServer returns the underlying server, for embedding in other transports.
func (p *Plugin) MCPServer() *server.MCPServer {
	return p.server
}

func (p *Plugin) GetName() string {
	return "mcp"
}

func (p *Plugin) Version() string {
	return config.ToolkitVersion
}

type errorResult struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type statusResult struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

func success(message string) statusResult {
	return statusResult{Status: "success", Message: message}
}

// handler adapts a toolkit call to a tool handler. Toolkit errors become tool errors rather
// than protocol errors so that the client sees the message.
func (p *Plugin) handler(
	name string, call func(ctx context.Context, request mcpgo.CallToolRequest) (any, error),
) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
		ctx = GenerateRequestContext(ctx, "", ContextSourceMCP)
		fields := LogFields{"tool": name}
		Logc(ctx).WithFields(fields).Debug(">>>> MCP tool call")
		defer Logc(ctx).WithFields(fields).Debug("<<<< MCP tool call")

		result, err := call(ctx, request)
		if err != nil {
			Logc(ctx).WithFields(fields).WithError(err).Error("MCP tool call failed.")
			return errorToolResult(err.Error()), nil
		}

		text, err := json.Marshal(result)
		if err != nil {
			return errorToolResult("could not encode result; " + err.Error()), nil
		}
		return mcpgo.NewToolResultText(string(text)), nil
	}
}

func errorToolResult(message string) *mcpgo.CallToolResult {
	text, _ := json.Marshal(errorResult{Status: "error", Message: message})
	return mcpgo.NewToolResultError(string(text))
}
