// Copyright 2025 NetApp, Inc. All Rights Reserved.

package s3

import (
	"context"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"math/big"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/netapp/dataops/config"
	"github.com/netapp/dataops/utils/errors"
)

// selfSignedPEM returns a PEM encoded CA certificate.
func selfSignedPEM(t *testing.T) []byte {
	t.Helper()
	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)

	template := &x509.Certificate{
		SerialNumber:          big.NewInt(1),
		Subject:               pkix.Name{CommonName: "s3.example.com"},
		NotBefore:             time.Now().Add(-time.Hour),
		NotAfter:              time.Now().Add(time.Hour),
		IsCA:                  true,
		BasicConstraintsValid: true,
	}
	der, err := x509.CreateCertificate(rand.Reader, template, template, &key.PublicKey, key)
	require.NoError(t, err)
	return pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: der})
}

func TestNewClientConfig(t *testing.T) {
	_, err := NewClientConfig(&config.Config{})
	assert.True(t, errors.IsInvalidConfigError(err))

	cfg, err := NewClientConfig(&config.Config{
		S3Endpoint:        "https://s3.example.com",
		S3AccessKeyID:     "key",
		S3SecretAccessKey: "secret",
		S3VerifySSLCert:   true,
	})
	require.NoError(t, err)
	assert.Equal(t, "https://s3.example.com", cfg.Endpoint)
	assert.True(t, cfg.VerifySSLCert)
}

func TestCreateHTTPClient_CABundle(t *testing.T) {
	fs := afero.NewMemMapFs()

	_, err := createHTTPClient(fs, ClientConfig{VerifySSLCert: true, CACertBundle: "/ca.pem"})
	assert.True(t, errors.IsInvalidConfigError(err))

	require.NoError(t, afero.WriteFile(fs, "/ca.pem", []byte("not a certificate"), 0o644))
	_, err = createHTTPClient(fs, ClientConfig{VerifySSLCert: true, CACertBundle: "/ca.pem"})
	assert.True(t, errors.IsInvalidConfigError(err))

	require.NoError(t, afero.WriteFile(fs, "/good.pem", selfSignedPEM(t), 0o644))
	client, err := createHTTPClient(fs, ClientConfig{VerifySSLCert: true, CACertBundle: "/good.pem"})
	require.NoError(t, err)
	tlsConfig := client.GetTransport().TLSClientConfig
	require.NotNil(t, tlsConfig)
	assert.NotNil(t, tlsConfig.RootCAs)
	assert.False(t, tlsConfig.InsecureSkipVerify)
	assert.Equal(t, defaultHTTPTimeout, client.GetTimeout())

	client, err = createHTTPClient(fs, ClientConfig{VerifySSLCert: false})
	require.NoError(t, err)
	assert.True(t, client.GetTransport().TLSClientConfig.InsecureSkipVerify)
}

func TestNewClient(t *testing.T) {
	t.Setenv("AWS_CA_BUNDLE", "")

	_, err := NewClient(context.Background(), afero.NewMemMapFs(), ClientConfig{})
	assert.True(t, errors.IsInvalidConfigError(err))

	client, err := NewClient(context.Background(), afero.NewMemMapFs(), ClientConfig{
		Endpoint:        "https://s3.example.com",
		AccessKeyID:     "key",
		SecretAccessKey: "secret",
		VerifySSLCert:   true,
	})
	require.NoError(t, err)
	assert.IsType(t, &meteredHTTPClient{}, client.Options().HTTPClient)
	assert.True(t, client.Options().UsePathStyle)
}

func TestNewClient_CABundleFromEnvironment(t *testing.T) {
	bundle := filepath.Join(t.TempDir(), "ca.pem")
	require.NoError(t, os.WriteFile(bundle, selfSignedPEM(t), 0o600))
	t.Setenv("AWS_CA_BUNDLE", bundle)

	client, err := NewClient(context.Background(), afero.NewMemMapFs(), ClientConfig{
		Endpoint:        "https://s3.example.com",
		AccessKeyID:     "key",
		SecretAccessKey: "secret",
		VerifySSLCert:   true,
	})
	require.NoError(t, err)
	assert.NotNil(t, client)

	t.Setenv("AWS_CA_BUNDLE", filepath.Join(t.TempDir(), "missing.pem"))
	_, err = NewClient(context.Background(), afero.NewMemMapFs(), ClientConfig{
		Endpoint:      "https://s3.example.com",
		AccessKeyID:   "key",
		VerifySSLCert: true,
	})
	assert.True(t, errors.IsInvalidConfigError(err))
}
