package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/amitkrsingh19/parking-client/internal/metrics"
)

// ErrAuthenticationExpired is the sentinel behind every 401 response. By the
// time a caller observes it, the session has already been cleared.
var ErrAuthenticationExpired = errors.New("authentication expired")

const (
	// DefaultTimeout matches the platform's gateway budget.
	DefaultTimeout = 10 * time.Second

	contentTypeJSON = "application/json"
	contentTypeForm = "application/x-www-form-urlencoded"

	// Error detail bodies are diagnostic only; cap what we retain.
	maxErrorBody = 4 << 10
)

// StatusError reports a non-2xx response. For 401 it unwraps to
// [ErrAuthenticationExpired].
type StatusError struct {
	Status int
	Method string
	Path   string
	Detail string
}

func (e *StatusError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%s %s: status %d", e.Method, e.Path, e.Status)
	}
	return fmt.Sprintf("%s %s: status %d: %s", e.Method, e.Path, e.Status, e.Detail)
}

func (e *StatusError) Unwrap() error {
	if e.Status == http.StatusUnauthorized {
		return ErrAuthenticationExpired
	}
	return nil
}

// Config defines a public type used by parking-client APIs.
//
// Config instances are intended to be configured during initialization and
// then treated as immutable.
type Config struct {
	BaseURL   string
	Timeout   time.Duration
	UserAgent string
}

// Client performs JSON- and form-encoded requests against the gateway with
// the credential binder installed.
type Client struct {
	base          string
	http          *http.Client
	onAuthFailure AuthFailureHandler
	metrics       *metrics.Metrics
	userAgent     string
}

// NewClient builds a transport client. httpClient may be nil; when given,
// its Transport is wrapped by the credential binder and its Timeout is
// overridden by cfg.Timeout.
func NewClient(
	cfg Config,
	source CredentialSource,
	onAuthFailure AuthFailureHandler,
	httpClient *http.Client,
	m *metrics.Metrics,
) (*Client, error) {
	base, err := url.Parse(cfg.BaseURL)
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("invalid base URL %q", cfg.BaseURL)
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	bound := *httpClient
	bound.Transport = NewBinder(source, httpClient.Transport)
	bound.Timeout = cfg.Timeout

	return &Client{
		base:          strings.TrimSuffix(base.String(), "/"),
		http:          &bound,
		onAuthFailure: onAuthFailure,
		metrics:       m,
		userAgent:     cfg.UserAgent,
	}, nil
}

// DoJSON sends body (when non-nil) as JSON and decodes the response into out
// (when non-nil).
func (c *Client) DoJSON(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}
	return c.do(ctx, method, path, contentTypeJSON, reader, out)
}

// DoForm sends form URL-encoded values and decodes the response into out
// (when non-nil). The login endpoint is the only form consumer.
func (c *Client) DoForm(ctx context.Context, method, path string, form url.Values, out interface{}) error {
	return c.do(ctx, method, path, contentTypeForm, strings.NewReader(form.Encode()), out)
}

func (c *Client) do(ctx context.Context, method, path, contentType string, body io.Reader, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, method, c.base+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", contentTypeJSON)
	if body != nil {
		req.Header.Set("Content-Type", contentType)
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	c.metrics.Observe(metrics.MetricRequestLatency, time.Since(start))
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusUnauthorized {
		c.metrics.Inc(metrics.MetricRequestUnauthorized)
		if c.onAuthFailure != nil {
			c.onAuthFailure.HandleAuthFailure(ctx)
		}
		return &StatusError{
			Status: resp.StatusCode,
			Method: method,
			Path:   path,
			Detail: errorDetail(resp.Body),
		}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{
			Status: resp.StatusCode,
			Method: method,
			Path:   path,
			Detail: errorDetail(resp.Body),
		}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// errorDetail extracts the gateway's {"detail": "..."} message, falling back
// to the raw body.
func errorDetail(body io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(body, maxErrorBody))
	if err != nil || len(data) == 0 {
		return ""
	}

	var payload struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(data, &payload); err == nil && payload.Detail != "" {
		return payload.Detail
	}
	return strings.TrimSpace(string(data))
}
