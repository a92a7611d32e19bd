// Copyright 2025 NetApp, Inc. All Rights Reserved.

package cmd

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/ghodss/yaml"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/netapp/dataops/config"
	. "github.com/netapp/dataops/logging"

	// Load all auth plugins
	_ "k8s.io/client-go/plugin/pkg/client/auth"
)

const (
	FormatJSON  = "json"
	FormatName  = "name"
	FormatTable = "table"
	FormatYAML  = "yaml"

	ExitCodeSuccess = 0
	ExitCodeFailure = 1

	forceConfirmation = "force"
)

var (
	ExitCode int

	Debug           bool
	LogLevel        string
	LogFormat       string
	DisableAuditLog bool
	OutputFormat    string
	BackendName     string
	ConfigPath      string

	// appFs is replaced by a memory filesystem in tests.
	appFs = afero.NewOsFs()
)

var RootCmd = &cobra.Command{
	SilenceUsage: true,
	Use:          config.ToolkitName,
	Short:        "A CLI tool for the NetApp DataOps Toolkit",
	Long: `A CLI tool for managing data science workspaces on NetApp storage: volumes, snapshots,
clones and replication on ONTAP, Kubernetes and Google Cloud NetApp Volumes`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := InitLogLevel(Debug, LogLevel); err != nil {
			return err
		}
		if err := InitLogFormat(LogFormat); err != nil {
			return err
		}
		InitAuditLogger(DisableAuditLog)
		switch OutputFormat {
		case FormatTable, FormatJSON, FormatYAML, FormatName:
		default:
			return fmt.Errorf("unknown output format %s", OutputFormat)
		}
		if !config.IsValidBackend(config.BackendType(BackendName)) {
			return fmt.Errorf("unknown backend %s; choose one of ontap, kubernetes or gcnv", BackendName)
		}
		return nil
	},
}

func init() {
	RootCmd.PersistentFlags().BoolVarP(&Debug, "debug", "d", false, "Debug output")
	RootCmd.PersistentFlags().StringVar(&LogLevel, "log-level", "info", "Log level (trace, debug, info, warn, error)")
	RootCmd.PersistentFlags().StringVar(&LogFormat, "log-format", TextFormat, "Log format (text, json)")
	RootCmd.PersistentFlags().BoolVar(&DisableAuditLog, "disable-audit-log", false,
		"Do not log destructive operations to the audit stream")
	RootCmd.PersistentFlags().StringVarP(&OutputFormat, "output", "o", FormatTable,
		"Output format. One of table|json|yaml|name")
	RootCmd.PersistentFlags().StringVarP(&BackendName, "backend", "b", string(config.BackendONTAP),
		"Storage backend. One of ontap|kubernetes|gcnv")
	RootCmd.PersistentFlags().StringVar(&ConfigPath, "config", "",
		"Config file (default ~/.netapp_dataops/config.json)")
}

func SetExitCodeFromError(err error) {
	ExitCode = GetExitCodeFromError(err)
}

func GetExitCodeFromError(err error) int {
	if err == nil {
		return ExitCodeSuccess
	}
	return ExitCodeFailure
}

// getUserConfirmation asks a yes/no question on the command's input until it gets an answer.
func getUserConfirmation(s string, cmd *cobra.Command) (bool, error) {
	reader := bufio.NewReader(cmd.InOrStdin())

	for {
		cmd.Printf("%s [y/n]: ", s)

		input, err := reader.ReadString('\n')
		if err != nil {
			return false, err
		}

		input = strings.ToLower(strings.TrimSpace(input))

		if input == "y" || input == "yes" {
			return true, nil
		} else if input == "n" || input == "no" {
			return false, nil
		}
	}
}

// confirm returns an error unless force is set or the user agrees.
func confirm(cmd *cobra.Command, force bool, question string) error {
	if force {
		return nil
	}
	ok, err := getUserConfirmation(question, cmd)
	if err != nil {
		return fmt.Errorf("could not read confirmation; %v", err)
	}
	if !ok {
		return fmt.Errorf("operation canceled")
	}
	return nil
}

func WriteJSON(w io.Writer, out interface{}) {
	jsonBytes, _ := json.MarshalIndent(out, "", "  ")
	_, _ = fmt.Fprintln(w, string(jsonBytes))
}

func WriteYAML(w io.Writer, out interface{}) {
	jsonBytes, _ := json.Marshal(out)
	yamlBytes, _ := yaml.JSONToYAML(jsonBytes)
	_, _ = fmt.Fprint(w, string(yamlBytes))
}

// splitList turns a comma separated flag value into its trimmed, non-empty items.
func splitList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
