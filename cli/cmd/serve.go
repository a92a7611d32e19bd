// Copyright 2025 NetApp, Inc. All Rights Reserved.

package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/netapp/dataops/frontend"
	"github.com/netapp/dataops/frontend/mcp"
	"github.com/netapp/dataops/frontend/metrics"
	. "github.com/netapp/dataops/logging"
)

var metricsAddress string

func init() {
	RootCmd.AddCommand(serveCmd)
	serveCmd.AddCommand(serveMCPCmd)

	serveMCPCmd.Flags().StringVar(&metricsAddress, "metrics-address", "",
		"Serve Prometheus metrics at this address, for example :8001")
	serveMCPCmd.Flags().StringVar(&XCPBinary, "xcp-binary", "xcp", "XCP executable")
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run a server",
}

var serveMCPCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve the toolkit operations as MCP tools over stdio",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		ctx = GenerateRequestContext(ctx, "", ContextSourceMCP)

		toolkit, err := initToolkit(ctx, scopeAll)
		if err != nil {
			return err
		}

		if metricsAddress != "" {
			var plugin frontend.Plugin = metrics.NewMetricsServer(metricsAddress)
			if err = plugin.Activate(); err != nil {
				return err
			}
			defer func() {
				if err := plugin.Deactivate(); err != nil {
					Logc(ctx).WithError(err).WithField("frontend", plugin.GetName()).Warn("Could not stop frontend.")
				}
			}()
		}

		return mcp.NewPlugin(toolkit).Serve(ctx, cmd.InOrStdin(), cmd.OutOrStdout())
	},
}
