// Copyright 2025 NetApp, Inc. All Rights Reserved.

package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	s3sdk "github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/netapp/dataops/datamover/s3"
	"github.com/netapp/dataops/utils/errors"
)

// memoryBucket keeps objects of a single bucket keyed by object key.
type memoryBucket struct {
	mu      sync.Mutex
	objects map[string][]byte
}

func (b *memoryBucket) PutObject(
	_ context.Context, params *s3sdk.PutObjectInput, _ ...func(*s3sdk.Options),
) (*s3sdk.PutObjectOutput, error) {
	data, err := io.ReadAll(params.Body)
	if err != nil {
		return nil, err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.objects[aws.ToString(params.Key)] = data
	return &s3sdk.PutObjectOutput{}, nil
}

func (b *memoryBucket) GetObject(
	_ context.Context, params *s3sdk.GetObjectInput, _ ...func(*s3sdk.Options),
) (*s3sdk.GetObjectOutput, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	data, ok := b.objects[aws.ToString(params.Key)]
	if !ok {
		return nil, fmt.Errorf("no such key")
	}
	return &s3sdk.GetObjectOutput{Body: io.NopCloser(bytes.NewReader(data))}, nil
}

func (b *memoryBucket) ListObjectsV2(
	_ context.Context, params *s3sdk.ListObjectsV2Input, _ ...func(*s3sdk.Options),
) (*s3sdk.ListObjectsV2Output, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	var keys []string
	for key := range b.objects {
		if strings.HasPrefix(key, aws.ToString(params.Prefix)) {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)

	output := &s3sdk.ListObjectsV2Output{IsTruncated: aws.Bool(false)}
	for _, key := range keys {
		output.Contents = append(output.Contents, s3types.Object{Key: aws.String(key)})
	}
	return output, nil
}

func withMemoryBucket(t *testing.T) *memoryBucket {
	t.Helper()
	bucket := &memoryBucket{objects: map[string][]byte{}}
	original := newS3API
	newS3API = func(context.Context) (s3.API, error) { return bucket, nil }
	t.Cleanup(func() { newS3API = original })
	return bucket
}

func TestPushDirectoryToS3(t *testing.T) {
	withFakeBackend(t)
	bucket := withMemoryBucket(t)
	require.NoError(t, afero.WriteFile(appFs, "/data/train/a.csv", []byte("1,2,3"), 0o644))
	require.NoError(t, afero.WriteFile(appFs, "/data/labels.json", []byte("{}"), 0o644))

	out, err := runCommand(t, "", "push", "directory-to-s3", "--directory", "/data", "--bucket", "datasets",
		"--key-prefix", "v1/", "--workers", "2", "-o", "json")
	require.NoError(t, err)

	var result s3.TransferResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, s3.TransferResult{Objects: 2, Bytes: 7}, result)
	assert.Equal(t, []byte("1,2,3"), bucket.objects["v1/train/a.csv"])

	_, err = runCommand(t, "", "push", "directory-to-s3", "--bucket", "datasets")
	assert.ErrorContains(t, err, "directory is required")

	_, err = runCommand(t, "", "push", "directory-to-s3", "--directory", "/missing", "--bucket", "datasets")
	assert.True(t, errors.IsNotFoundError(err))
}

func TestPullBucketFromS3(t *testing.T) {
	withFakeBackend(t)
	bucket := withMemoryBucket(t)
	bucket.objects["v1/train/a.csv"] = []byte("1,2,3")
	bucket.objects["v1/labels.json"] = []byte("{}")
	bucket.objects["v2/other.txt"] = []byte("no")

	out, err := runCommand(t, "", "pull", "bucket-from-s3", "--bucket", "datasets", "--key-prefix", "v1/",
		"--directory", "/restore")
	require.NoError(t, err)
	assert.Contains(t, out, "Downloaded 2 objects")

	content, err := afero.ReadFile(appFs, "/restore/train/a.csv")
	require.NoError(t, err)
	assert.Equal(t, "1,2,3", string(content))

	exists, _ := afero.Exists(appFs, "/restore/other.txt")
	assert.False(t, exists)
}

func TestS3APIRequiresConfig(t *testing.T) {
	withFakeBackend(t)
	ConfigPath = "/missing/config.json"
	defer func() { ConfigPath = "" }()

	_, err := newS3API(context.Background())
	assert.True(t, errors.IsInvalidConfigError(err))
}
