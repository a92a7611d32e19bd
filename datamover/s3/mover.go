// Copyright 2025 NetApp, Inc. All Rights Reserved.

package s3

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/aws/aws-sdk-go-v2/aws"
	s3sdk "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/panjf2000/ants/v2"
	"github.com/spf13/afero"

	. "github.com/netapp/dataops/logging"
	"github.com/netapp/dataops/utils/errors"
)

// TransferResult counts what a push or pull moved.
type TransferResult struct {
	Objects int   `json:"objects"`
	Bytes   int64 `json:"bytes"`
}

// Mover copies files between a local filesystem and a bucket using a bounded pool of
// workers.
type Mover struct {
	api     API
	fs      afero.Fs
	workers int
}

type MoverOption func(*Mover)

// WithWorkers sets the number of concurrent transfers; it defaults to the CPU count.
func WithWorkers(n int) MoverOption {
	return func(m *Mover) {
		if n > 0 {
			m.workers = n
		}
	}
}

func NewMover(api API, fs afero.Fs, opts ...MoverOption) *Mover {
	m := &Mover{api: api, fs: fs, workers: runtime.NumCPU()}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// transfers runs each task on the pool and returns the combined failures.
type transfers struct {
	pool    *ants.Pool
	wg      sync.WaitGroup
	mu      sync.Mutex
	errs    []error
	objects atomic.Int64
	bytes   atomic.Int64
}

func (m *Mover) newTransfers() (*transfers, error) {
	pool, err := ants.NewPool(m.workers, ants.WithPreAlloc(true))
	if err != nil {
		return nil, fmt.Errorf("could not create transfer pool; %v", err)
	}
	return &transfers{pool: pool}, nil
}

func (t *transfers) fail(err error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.errs = append(t.errs, err)
}

func (t *transfers) submit(ctx context.Context, task func() (int64, error)) {
	t.wg.Add(1)
	err := t.pool.Submit(func() {
		defer t.wg.Done()
		if ctx.Err() != nil {
			t.fail(ctx.Err())
			return
		}
		n, err := task()
		if err != nil {
			t.fail(err)
			return
		}
		t.objects.Add(1)
		t.bytes.Add(n)
	})
	if err != nil {
		t.wg.Done()
		t.fail(err)
	}
}

func (t *transfers) wait() (*TransferResult, error) {
	t.wg.Wait()
	t.pool.Release()
	result := &TransferResult{Objects: int(t.objects.Load()), Bytes: t.bytes.Load()}
	return result, errors.Combine(t.errs...)
}

// PushDirectory uploads every regular file under dir. Object keys are the prefix followed by
// the slash-separated path relative to dir. Failed uploads do not stop the others.
func (m *Mover) PushDirectory(ctx context.Context, dir, bucket, prefix string) (*TransferResult, error) {
	if bucket == "" {
		return nil, fmt.Errorf("a bucket name is required")
	}
	info, err := m.fs.Stat(dir)
	if err != nil {
		return nil, errors.WrapWithNotFoundError(err, "directory %s does not exist", dir)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", dir)
	}

	fields := LogFields{"directory": dir, "bucket": bucket, "prefix": prefix, "workers": m.workers}
	Logc(ctx).WithFields(fields).Info("Uploading directory to S3.")

	t, err := m.newTransfers()
	if err != nil {
		return nil, err
	}

	walkErr := afero.Walk(m.fs, dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.Mode().IsRegular() {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		key := prefix + filepath.ToSlash(rel)
		size := info.Size()
		t.submit(ctx, func() (int64, error) {
			return size, m.upload(ctx, path, bucket, key, size)
		})
		return nil
	})
	if walkErr != nil {
		t.fail(fmt.Errorf("could not walk %s; %v", dir, walkErr))
	}

	result, err := t.wait()
	Logc(ctx).WithFields(fields).WithFields(LogFields{
		"objects": result.Objects,
		"bytes":   result.Bytes,
	}).Info("Upload finished.")
	return result, err
}

func (m *Mover) upload(ctx context.Context, path, bucket, key string, size int64) error {
	file, err := m.fs.Open(path)
	if err != nil {
		return fmt.Errorf("could not open %s; %v", path, err)
	}
	defer func() { _ = file.Close() }()

	_, err = m.api.PutObject(ctx, &s3sdk.PutObjectInput{
		Bucket:        aws.String(bucket),
		Key:           aws.String(key),
		Body:          file,
		ContentLength: aws.Int64(size),
	})
	if err != nil {
		return errors.WrapWithAPIConnectionError(err, "could not upload %s to s3://%s/%s", path, bucket, key)
	}
	Logc(ctx).WithFields(LogFields{"API": "S3.PutObject", "key": key}).Trace("Uploaded object.")
	return nil
}

// PullBucket downloads every object under prefix into dir, recreating the key hierarchy
// below the prefix. Keys ending in a slash are folder markers and are skipped.
func (m *Mover) PullBucket(ctx context.Context, bucket, prefix, dir string) (*TransferResult, error) {
	if bucket == "" {
		return nil, fmt.Errorf("a bucket name is required")
	}
	if err := m.fs.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("could not create %s; %v", dir, err)
	}

	fields := LogFields{"directory": dir, "bucket": bucket, "prefix": prefix, "workers": m.workers}
	Logc(ctx).WithFields(fields).Info("Downloading bucket from S3.")

	t, err := m.newTransfers()
	if err != nil {
		return nil, err
	}

	input := &s3sdk.ListObjectsV2Input{Bucket: aws.String(bucket)}
	if prefix != "" {
		input.Prefix = aws.String(prefix)
	}
	paginator := s3sdk.NewListObjectsV2Paginator(m.api, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			t.fail(errors.WrapWithAPIConnectionError(err, "could not list s3://%s/%s", bucket, prefix))
			break
		}
		for _, object := range page.Contents {
			key := aws.ToString(object.Key)
			if key == "" || strings.HasSuffix(key, "/") {
				continue
			}
			local, err := localPath(dir, strings.TrimPrefix(key, prefix))
			if err != nil {
				t.fail(err)
				continue
			}
			t.submit(ctx, func() (int64, error) {
				return m.download(ctx, bucket, key, local)
			})
		}
	}

	result, err := t.wait()
	Logc(ctx).WithFields(fields).WithFields(LogFields{
		"objects": result.Objects,
		"bytes":   result.Bytes,
	}).Info("Download finished.")
	return result, err
}

// localPath maps a key suffix below dir, refusing keys that would escape it.
func localPath(dir, rel string) (string, error) {
	rel = strings.TrimLeft(rel, "/")
	if rel == "" {
		return "", fmt.Errorf("object key has no name below the prefix")
	}
	path := filepath.Join(dir, filepath.FromSlash(rel))
	inside, err := filepath.Rel(dir, path)
	if err != nil || inside == ".." || strings.HasPrefix(inside, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("object key %s resolves outside %s", rel, dir)
	}
	return path, nil
}

func (m *Mover) download(ctx context.Context, bucket, key, path string) (int64, error) {
	output, err := m.api.GetObject(ctx, &s3sdk.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return 0, errors.WrapWithAPIConnectionError(err, "could not download s3://%s/%s", bucket, key)
	}
	defer func() { _ = output.Body.Close() }()

	if err = m.fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return 0, fmt.Errorf("could not create %s; %v", filepath.Dir(path), err)
	}
	file, err := m.fs.Create(path)
	if err != nil {
		return 0, fmt.Errorf("could not create %s; %v", path, err)
	}
	defer func() { _ = file.Close() }()

	n, err := io.Copy(file, output.Body)
	if err != nil {
		return n, fmt.Errorf("could not write %s; %v", path, err)
	}
	Logc(ctx).WithFields(LogFields{"API": "S3.GetObject", "key": key}).Trace("Downloaded object.")
	return n, nil
}
