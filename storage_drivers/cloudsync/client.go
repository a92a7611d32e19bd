// Copyright 2025 NetApp, Inc. All Rights Reserved.

// Package cloudsync triggers and observes BlueXP copy and sync (Cloud Sync) relationships.
package cloudsync

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/go-openapi/runtime"
	runtime_client "github.com/go-openapi/runtime/client"
	"github.com/go-openapi/strfmt"
	"golang.org/x/oauth2"

	. "github.com/netapp/dataops/logging"
	"github.com/netapp/dataops/utils/errors"
)

const (
	DefaultHost     = "api.cloudsync.netapp.com"
	DefaultTokenURL = "https://netapp-cloud-account.auth0.com/oauth/token"

	// clientID is the public Cloud Central client used for refresh-token grants
	clientID = "Mu0V1ywgYteI6w1MbD15fKfVIUrNXGWC"

	restBasePath       = "/api"
	accountHeader      = "x-account-id"
	defaultHTTPTimeout = 60 * time.Second
)

// ClientConfig holds the connection settings for Cloud Sync.
type ClientConfig struct {
	RefreshToken string
	// Host and TokenURL default to the public service.
	Host     string
	TokenURL string
	// HTTPClient is the base client used for token refresh and API calls.
	HTTPClient *http.Client
	// Scheme lets tests talk http; it defaults to https.
	Scheme string
}

// Client calls the Cloud Sync REST API with an access token obtained from a Cloud Central
// refresh token. The account ID is looked up on first use.
type Client struct {
	config     ClientConfig
	runtime    *runtime_client.Runtime
	httpClient *http.Client
	formats    strfmt.Registry

	accountOnce sync.Once
	accountID   string
	accountErr  error
}

// NewClient is a factory method for creating a new instance
func NewClient(ctx context.Context, config ClientConfig) (*Client, error) {
	if config.RefreshToken == "" {
		return nil, errors.InvalidConfigError("a Cloud Central refresh token is required for Cloud Sync")
	}
	if config.Host == "" {
		config.Host = DefaultHost
	}
	if config.TokenURL == "" {
		config.TokenURL = DefaultTokenURL
	}
	if config.Scheme == "" {
		config.Scheme = "https"
	}

	base := config.HTTPClient
	if base == nil {
		base = &http.Client{
			Transport: NewMetricsTransport(http.DefaultTransport, RequestTargetCloudSync),
			Timeout:   defaultHTTPTimeout,
		}
	}

	oauthConfig := &oauth2.Config{
		ClientID: clientID,
		Endpoint: oauth2.Endpoint{TokenURL: config.TokenURL, AuthStyle: oauth2.AuthStyleInParams},
	}
	tokenCtx := context.WithValue(context.Background(), oauth2.HTTPClient, base)
	tokenSource := oauthConfig.TokenSource(tokenCtx, &oauth2.Token{RefreshToken: config.RefreshToken})

	httpClient := oauth2.NewClient(tokenCtx, tokenSource)
	httpClient.Timeout = base.Timeout

	Logc(ctx).WithField("host", config.Host).Debug("Created Cloud Sync client.")

	return &Client{
		config:     config,
		httpClient: httpClient,
		runtime:    runtime_client.NewWithClient(config.Host, restBasePath, []string{config.Scheme}, httpClient),
		formats:    strfmt.Default,
	}, nil
}

// APIError is a non-2xx Cloud Sync response.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("Cloud Sync API status: %d, Message: %s", e.StatusCode, e.Message)
}

// classifyError converts a Cloud Sync failure into the shared taxonomy.
func classifyError(err error, message string, a ...any) error {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		switch apiErr.StatusCode {
		case http.StatusNotFound:
			err = errors.WrapWithNotFoundError(err, "")
		case http.StatusConflict:
			err = errors.WrapWithAlreadyExistsError(err, "")
		}
	}
	return errors.WrapWithAPIConnectionError(err, message, a...)
}

// accountHeaderWriter adds the account header every relationship call requires.
func (c *Client) accountHeaderWriter(accountID string) runtime.ClientAuthInfoWriter {
	return runtime.ClientAuthInfoWriterFunc(func(req runtime.ClientRequest, _ strfmt.Registry) error {
		return req.SetHeaderParam(accountHeader, accountID)
	})
}

type pathParams map[string]string

func (p pathParams) WriteToRequest(req runtime.ClientRequest, _ strfmt.Registry) error {
	for name, value := range p {
		if err := req.SetPathParam(name, value); err != nil {
			return err
		}
	}
	return nil
}

func (c *Client) submit(
	ctx context.Context, id, method, pathPattern string, params pathParams, authInfo runtime.ClientAuthInfoWriter,
	result any,
) error {
	Logc(ctx).WithFields(LogFields{
		"API":    id,
		"method": method,
		"path":   pathPattern,
	}).Trace("Calling Cloud Sync API.")

	reader := runtime.ClientResponseReaderFunc(
		func(response runtime.ClientResponse, consumer runtime.Consumer) (any, error) {
			code := response.Code()
			if code >= 200 && code < 300 {
				if result != nil && code != http.StatusNoContent {
					if err := consumer.Consume(response.Body(), result); err != nil && err != io.EOF {
						return nil, fmt.Errorf("could not decode %s response; %v", id, err)
					}
				}
				return result, nil
			}
			apiErr := &APIError{StatusCode: code, Message: http.StatusText(code)}
			payload := &ErrorResponse{}
			if err := consumer.Consume(response.Body(), payload); err == nil && payload.Message != "" {
				apiErr.Message = payload.Message
			}
			return nil, apiErr
		})

	if params == nil {
		params = pathParams{}
	}
	_, err := c.runtime.Submit(&runtime.ClientOperation{
		ID:                 id,
		Method:             method,
		PathPattern:        pathPattern,
		ProducesMediaTypes: []string{runtime.JSONMime},
		ConsumesMediaTypes: []string{runtime.JSONMime},
		Schemes:            []string{c.config.Scheme},
		Params:             params,
		Reader:             reader,
		AuthInfo:           authInfo,
		Context:            ctx,
		Client:             c.httpClient,
	})
	return err
}

// AccountID returns the first Cloud Central account the token can see.
func (c *Client) AccountID(ctx context.Context) (string, error) {
	c.accountOnce.Do(func() {
		var accounts []Account
		err := c.submit(ctx, "ListAccounts", http.MethodGet, "/accounts", nil, nil, &accounts)
		if err != nil {
			c.accountErr = classifyError(err, "could not list Cloud Sync accounts")
			return
		}
		if len(accounts) == 0 || accounts[0].AccountID == "" {
			c.accountErr = errors.InvalidConfigError("the Cloud Central refresh token has no Cloud Sync account")
			return
		}
		c.accountID = accounts[0].AccountID
		Logc(ctx).WithField("accountID", c.accountID).Debug("Resolved Cloud Sync account.")
	})
	return c.accountID, c.accountErr
}

// RelationshipGet returns the v2 view of a relationship, including its latest activity.
func (c *Client) RelationshipGet(ctx context.Context, id string) (*Relationship, error) {
	accountID, err := c.AccountID(ctx)
	if err != nil {
		return nil, err
	}

	relationship := &Relationship{}
	err = c.submit(ctx, "GetRelationship", http.MethodGet, "/relationships-v2/{id}", pathParams{"id": id},
		c.accountHeaderWriter(accountID), relationship)
	if err != nil {
		return nil, classifyError(err, "could not get Cloud Sync relationship %s", id)
	}
	return relationship, nil
}

// RelationshipList returns every relationship of the account.
func (c *Client) RelationshipList(ctx context.Context) ([]*Relationship, error) {
	accountID, err := c.AccountID(ctx)
	if err != nil {
		return nil, err
	}

	var relationships []*Relationship
	err = c.submit(ctx, "ListRelationships", http.MethodGet, "/relationships-v2", nil,
		c.accountHeaderWriter(accountID), &relationships)
	if err != nil {
		return nil, classifyError(err, "could not list Cloud Sync relationships")
	}
	return relationships, nil
}

// RelationshipSync starts a sync of the relationship.
func (c *Client) RelationshipSync(ctx context.Context, id string) error {
	accountID, err := c.AccountID(ctx)
	if err != nil {
		return err
	}

	err = c.submit(ctx, "SyncRelationship", http.MethodPut, "/relationships/{id}/sync", pathParams{"id": id},
		c.accountHeaderWriter(accountID), nil)
	if err != nil {
		return classifyError(err, "could not sync Cloud Sync relationship %s", id)
	}
	return nil
}
