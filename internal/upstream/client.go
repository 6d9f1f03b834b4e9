// Package upstream sends canonical records to the compliance/AML API.
package upstream

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/ashitosh07/lambda/internal/cfg"
	"github.com/ashitosh07/lambda/internal/failure"
	"github.com/cenkalti/backoff/v4"
)

// maxBodyLog caps how much of a response body is kept for logging.
const maxBodyLog = 64 << 10

var (
	ErrEndpointNotConfigured = errors.New("upstream endpoint is not configured")
	ErrAPIKeyNotConfigured   = errors.New("upstream API key header is not configured")
)

// StatusError is returned for any non-2xx response.
type StatusError struct {
	Method     string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s returned unexpected status %d: %s", e.Method, e.StatusCode, e.Body)
}

type RetryPolicy struct {
	Enabled         bool
	MaxAttempts     int
	InitialInterval time.Duration
	MaxInterval     time.Duration
}

type Client struct {
	httpClient  *http.Client
	apiKeyName  string
	apiKeyValue string
	retry       RetryPolicy
}

func NewClient(conf cfg.UpstreamConfig) *Client {
	return NewClientWithHTTP(&http.Client{Timeout: conf.Timeout}, conf.APIKeyName, conf.APIKeyValue, RetryPolicy{
		Enabled:         conf.RetryEnabled,
		MaxAttempts:     conf.RetryMaxAttempts,
		InitialInterval: conf.RetryInitial,
		MaxInterval:     conf.RetryMaxInterval,
	})
}

func NewClientWithHTTP(httpClient *http.Client, apiKeyName, apiKeyValue string, retry RetryPolicy) *Client {
	return &Client{
		httpClient:  httpClient,
		apiKeyName:  apiKeyName,
		apiKeyValue: apiKeyValue,
		retry:       retry,
	}
}

// Create posts a new entity. The returned body is informational only.
func (c *Client) Create(ctx context.Context, endpoint string, body []byte) ([]byte, error) {
	return c.send(ctx, http.MethodPost, endpoint, body)
}

// Replace puts the full entity over the existing one.
func (c *Client) Replace(ctx context.Context, endpoint string, body []byte) ([]byte, error) {
	return c.send(ctx, http.MethodPut, endpoint, body)
}

func (c *Client) send(ctx context.Context, method, endpoint string, body []byte) ([]byte, error) {
	op := "upstream " + method
	if endpoint == "" {
		return nil, failure.Publish(op, ErrEndpointNotConfigured)
	}
	if c.apiKeyName == "" {
		return nil, failure.Publish(op, ErrAPIKeyNotConfigured)
	}

	var respBody []byte
	attempt := func() error {
		b, err := c.do(ctx, method, endpoint, body)
		if err != nil {
			return err
		}
		respBody = b
		return nil
	}

	var err error
	if c.retry.Enabled && c.retry.MaxAttempts > 1 {
		err = backoff.Retry(attempt, c.backOff(ctx))
	} else {
		err = attempt()
	}
	if err != nil {
		var perm *backoff.PermanentError
		if errors.As(err, &perm) {
			err = perm.Err
		}
		return nil, failure.Publish(op, err)
	}

	return respBody, nil
}

func (c *Client) do(ctx context.Context, method, endpoint string, body []byte) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, backoff.Permanent(fmt.Errorf("failed to build request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(c.apiKeyName, c.apiKeyValue)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyLog))
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		statusErr := &StatusError{Method: method, StatusCode: resp.StatusCode, Body: string(respBody)}
		// client errors will not change on a second attempt
		if resp.StatusCode >= 400 && resp.StatusCode < 500 && resp.StatusCode != http.StatusTooManyRequests {
			return nil, backoff.Permanent(statusErr)
		}
		return nil, statusErr
	}

	return respBody, nil
}

func (c *Client) backOff(ctx context.Context) backoff.BackOff {
	exp := backoff.NewExponentialBackOff()
	if c.retry.InitialInterval > 0 {
		exp.InitialInterval = c.retry.InitialInterval
	}
	if c.retry.MaxInterval > 0 {
		exp.MaxInterval = c.retry.MaxInterval
	}
	exp.MaxElapsedTime = 0

	return backoff.WithContext(backoff.WithMaxRetries(exp, uint64(c.retry.MaxAttempts-1)), ctx)
}
