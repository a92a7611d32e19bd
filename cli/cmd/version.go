// Copyright 2025 NetApp, Inc. All Rights Reserved.

package cmd

import (
	"io"
	"runtime"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/netapp/dataops/config"
)

type VersionResponse struct {
	Version   string `json:"version"`
	GoVersion string `json:"goVersion"`
	BuildTime string `json:"buildTime,omitempty"`
}

func init() {
	RootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of the toolkit",
	RunE: func(cmd *cobra.Command, args []string) error {
		writeVersion(cmd.OutOrStdout(), getClientVersion())
		return nil
	},
}

func getClientVersion() *VersionResponse {
	return &VersionResponse{
		Version:   config.ToolkitVersion,
		GoVersion: runtime.Version(),
		BuildTime: config.BuildTime,
	}
}

func writeVersion(w io.Writer, version *VersionResponse) {
	switch OutputFormat {
	case FormatJSON:
		WriteJSON(w, version)
	case FormatYAML:
		WriteYAML(w, version)
	case FormatName:
		_, _ = io.WriteString(w, version.Version+"\n")
	default:
		table := tablewriter.NewWriter(w)
		table.SetHeader([]string{"Version", "Go Version"})
		table.Append([]string{version.Version, version.GoVersion})
		table.Render()
	}
}
