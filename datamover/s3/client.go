// Copyright 2025 NetApp, Inc. All Rights Reserved.

// Package s3 copies directories to and from S3-compatible object storage.
package s3

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"net/http"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	s3sdk "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/spf13/afero"

	"github.com/netapp/dataops/config"
	. "github.com/netapp/dataops/logging"
	"github.com/netapp/dataops/utils/errors"
)

const (
	// DefaultRegion is used for S3-compatible endpoints that ignore the region.
	DefaultRegion      = "us-east-1"
	defaultHTTPTimeout = 5 * time.Minute
)

// API is the subset of the S3 client the mover uses.
type API interface {
	PutObject(ctx context.Context, params *s3sdk.PutObjectInput, optFns ...func(*s3sdk.Options)) (
		*s3sdk.PutObjectOutput, error)
	GetObject(ctx context.Context, params *s3sdk.GetObjectInput, optFns ...func(*s3sdk.Options)) (
		*s3sdk.GetObjectOutput, error)
	ListObjectsV2(ctx context.Context, params *s3sdk.ListObjectsV2Input, optFns ...func(*s3sdk.Options)) (
		*s3sdk.ListObjectsV2Output, error)
}

// ClientConfig holds the S3 connection settings.
type ClientConfig struct {
	Endpoint        string
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	VerifySSLCert   bool
	// CACertBundle is a PEM file trusted in addition to the system roots.
	CACertBundle string
}

// NewClientConfig reads the S3 settings of the config file.
func NewClientConfig(cfg *config.Config) (ClientConfig, error) {
	if cfg == nil || cfg.S3Endpoint == "" {
		return ClientConfig{}, errors.InvalidConfigError("s3Endpoint must be set in the config file")
	}
	return ClientConfig{
		Endpoint:        cfg.S3Endpoint,
		AccessKeyID:     cfg.S3AccessKeyID,
		SecretAccessKey: cfg.S3SecretAccessKey,
		VerifySSLCert:   cfg.S3VerifySSLCert,
		CACertBundle:    cfg.S3CACertBundle,
	}, nil
}

// createHTTPClient returns the SDK's buildable client so that LoadDefaultConfig can still add
// the roots named by AWS_CA_BUNDLE on top of the TLS settings from the config file.
func createHTTPClient(fs afero.Fs, cfg ClientConfig) (*awshttp.BuildableClient, error) {
	tlsConfig := &tls.Config{MinVersion: tls.VersionTLS12}

	if !cfg.VerifySSLCert {
		tlsConfig.InsecureSkipVerify = true // #nosec G402
	} else if cfg.CACertBundle != "" {
		pem, err := afero.ReadFile(fs, cfg.CACertBundle)
		if err != nil {
			return nil, errors.WrapWithInvalidConfigError(err, "could not read CA bundle %s", cfg.CACertBundle)
		}
		pool, err := x509.SystemCertPool()
		if err != nil || pool == nil {
			pool = x509.NewCertPool()
		}
		if !pool.AppendCertsFromPEM(pem) {
			return nil, errors.InvalidConfigError("CA bundle %s contains no certificates", cfg.CACertBundle)
		}
		tlsConfig.RootCAs = pool
	}

	return awshttp.NewBuildableClient().
		WithTimeout(defaultHTTPTimeout).
		WithTransportOptions(func(tr *http.Transport) {
			tr.TLSClientConfig = tlsConfig
		}), nil
}

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

// meteredHTTPClient sends every SDK request through a MetricsTransport.
type meteredHTTPClient struct {
	transport http.RoundTripper
}

func newMeteredHTTPClient(base s3sdk.HTTPClient) *meteredHTTPClient {
	return &meteredHTTPClient{transport: NewMetricsTransport(roundTripperFunc(base.Do), RequestTargetS3)}
}

func (c *meteredHTTPClient) Do(req *http.Request) (*http.Response, error) {
	return c.transport.RoundTrip(req)
}

// NewClient builds an S3 client for the endpoint with path-style addressing. Without an
// access key the default AWS credential chain is used.
func NewClient(ctx context.Context, fs afero.Fs, cfg ClientConfig) (*s3sdk.Client, error) {
	if cfg.Endpoint == "" {
		return nil, errors.InvalidConfigError("an S3 endpoint is required")
	}
	region := cfg.Region
	if region == "" {
		region = DefaultRegion
	}

	httpClient, err := createHTTPClient(fs, cfg)
	if err != nil {
		return nil, err
	}

	options := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(region),
		awsconfig.WithHTTPClient(httpClient),
	}
	if cfg.AccessKeyID != "" {
		options = append(options, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, "")))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, options...)
	if err != nil {
		return nil, errors.WrapWithInvalidConfigError(err, "could not load S3 configuration")
	}

	Logc(ctx).WithFields(LogFields{"endpoint": cfg.Endpoint, "region": region}).Debug("Created S3 client.")

	return s3sdk.NewFromConfig(awsCfg, func(o *s3sdk.Options) {
		o.BaseEndpoint = aws.String(cfg.Endpoint)
		o.UsePathStyle = true
		o.HTTPClient = newMeteredHTTPClient(o.HTTPClient)
	}), nil
}
