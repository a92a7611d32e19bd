// Copyright 2025 NetApp, Inc. All Rights Reserved.

package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/netapp/dataops/datamover/s3"
	. "github.com/netapp/dataops/logging"
)

var (
	moverDirectory string
	moverBucket    string
	moverPrefix    string
	moverWorkers   int

	// newS3API is replaced in tests.
	newS3API = func(ctx context.Context) (s3.API, error) {
		cfg, err := loadConfig()
		if err != nil {
			return nil, err
		}
		clientConfig, err := s3.NewClientConfig(cfg)
		if err != nil {
			return nil, err
		}
		return s3.NewClient(ctx, appFs, clientConfig)
	}
)

func init() {
	RootCmd.AddCommand(pushCmd)
	RootCmd.AddCommand(pullCmd)
	pushCmd.AddCommand(pushDirectoryCmd)
	pullCmd.AddCommand(pullBucketCmd)

	for _, cmd := range []*cobra.Command{pushDirectoryCmd, pullBucketCmd} {
		cmd.Flags().StringVarP(&moverDirectory, "directory", "D", "", "Local directory")
		cmd.Flags().StringVarP(&moverBucket, "bucket", "B", "", "S3 bucket")
		cmd.Flags().StringVarP(&moverPrefix, "key-prefix", "p", "", "Object key prefix")
		cmd.Flags().IntVar(&moverWorkers, "workers", 0, "Concurrent transfers (default is the CPU count)")
	}
}

var pushCmd = &cobra.Command{
	Use:   "push",
	Short: "Upload data",
}

var pullCmd = &cobra.Command{
	Use:   "pull",
	Short: "Download data",
}

var pushDirectoryCmd = &cobra.Command{
	Use:   "directory-to-s3",
	Short: "Upload the contents of a local directory to an S3 bucket",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := GenerateRequestContext(cmd.Context(), "", ContextSourceCLI)

		if moverDirectory == "" {
			return fmt.Errorf("a local directory is required")
		}
		api, err := newS3API(ctx)
		if err != nil {
			return err
		}
		mover := s3.NewMover(api, appFs, s3.WithWorkers(moverWorkers))

		result, err := mover.PushDirectory(ctx, moverDirectory, moverBucket, moverPrefix)
		if result != nil {
			writeTransferResult(cmd.OutOrStdout(), "Uploaded", result)
		}
		return err
	},
}

var pullBucketCmd = &cobra.Command{
	Use:   "bucket-from-s3",
	Short: "Download the contents of an S3 bucket to a local directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := GenerateRequestContext(cmd.Context(), "", ContextSourceCLI)

		if moverDirectory == "" {
			return fmt.Errorf("a local directory is required")
		}
		api, err := newS3API(ctx)
		if err != nil {
			return err
		}
		mover := s3.NewMover(api, appFs, s3.WithWorkers(moverWorkers))

		result, err := mover.PullBucket(ctx, moverBucket, moverPrefix, moverDirectory)
		if result != nil {
			writeTransferResult(cmd.OutOrStdout(), "Downloaded", result)
		}
		return err
	},
}

func writeTransferResult(w io.Writer, verb string, result *s3.TransferResult) {
	switch OutputFormat {
	case FormatJSON:
		WriteJSON(w, result)
	case FormatYAML:
		WriteYAML(w, result)
	default:
		_, _ = fmt.Fprintf(w, "%s %d objects (%s).\n", verb, result.Objects, humanize.IBytes(uint64(result.Bytes)))
	}
}
