// Package rest provides the HTTP client used to reach the remote
// billing and messaging APIs: basic auth, URL-encoded form bodies,
// JSON responses.
package rest

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/orderflow/internal/core/domain"
	"github.com/custodia-labs/orderflow/internal/core/ports/driven"
	"github.com/custodia-labs/orderflow/internal/logger"
)

// Ensure Client implements the interface.
var _ driven.RESTClient = (*Client)(nil)

// DefaultTimeout bounds requests when no timeout is configured.
const DefaultTimeout = domain.DefaultHTTPTimeout

// Config holds configuration for a REST client. One client serves one
// remote API; its fields are fixed at construction.
type Config struct {
	// KeySID is the basic-auth username (required).
	KeySID string

	// KeySecret is the basic-auth password. Some backends authenticate
	// with the SID alone and leave this empty.
	KeySecret string

	// BaseURL is the API base URL including any account path segment
	// (required). A trailing slash is added when missing.
	BaseURL string

	// ExtraHeaders are merged into every request. They cannot override
	// Authorization or Content-Type.
	ExtraHeaders map[string]string

	// Timeout bounds every request (default: 30s).
	Timeout time.Duration
}

// Client is a form-encoding HTTP client for one remote API. It is
// immutable after construction and safe to share across calls.
type Client struct {
	client  *http.Client
	baseURL string
	headers map[string]string
}

// NewClient creates a REST client for one remote API.
func NewClient(cfg Config) (*Client, error) {
	if cfg.KeySID == "" {
		return nil, fmt.Errorf("rest: key SID is required")
	}
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("rest: base URL is required")
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}

	headers := make(map[string]string, len(cfg.ExtraHeaders)+2)
	for k, v := range cfg.ExtraHeaders {
		headers[k] = v
	}
	credentials := base64.StdEncoding.EncodeToString([]byte(cfg.KeySID + ":" + cfg.KeySecret))
	headers["Authorization"] = "Basic " + credentials
	headers["Content-Type"] = "application/x-www-form-urlencoded"

	baseURL := cfg.BaseURL
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}

	return &Client{
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL: baseURL,
		headers: headers,
	}, nil
}

// Get issues a GET to endpoint with the given query parameters.
func (c *Client) Get(ctx context.Context, endpoint string, query url.Values, out any) error {
	return c.request(ctx, http.MethodGet, endpoint, query, nil, out)
}

// Post issues a POST to endpoint with a URL-encoded form body.
// A nil form sends an empty body.
func (c *Client) Post(ctx context.Context, endpoint string, form url.Values, out any) error {
	return c.request(ctx, http.MethodPost, endpoint, nil, form, out)
}

// Patch issues a PATCH to endpoint with a URL-encoded form body.
func (c *Client) Patch(ctx context.Context, endpoint string, form url.Values, out any) error {
	return c.request(ctx, http.MethodPatch, endpoint, nil, form, out)
}

// Delete issues a DELETE to endpoint.
func (c *Client) Delete(ctx context.Context, endpoint string, out any) error {
	return c.request(ctx, http.MethodDelete, endpoint, nil, nil, out)
}

// remoteErrorBody is the error shape the remote APIs answer with.
// The billing API nests the message under "error"; the messaging API
// puts it at the top level.
type remoteErrorBody struct {
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
	Message string `json:"message"`
}

func (c *Client) request(
	ctx context.Context,
	method string,
	endpoint string,
	query url.Values,
	form url.Values,
	out any,
) error {
	target := c.buildURL(endpoint, query)

	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	} else if method == http.MethodPost || method == http.MethodPatch {
		body = strings.NewReader("")
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return fmt.Errorf("rest: create request: %w", err)
	}
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}
	if method == http.MethodPost || method == http.MethodPatch {
		// Replay protection for mutating calls; the remote APIs
		// dedupe on this key.
		req.Header.Set("Idempotency-Key", uuid.NewString())
	}

	logger.Debug("rest: %s %s", method, target)

	resp, err := c.client.Do(req)
	if err != nil {
		logger.Error("rest: %s %s: %v", method, target, err)
		return fmt.Errorf("%w: %w", domain.ErrTransport, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		logger.Error("rest: read response: %v", err)
		return fmt.Errorf("%w: read response: %w", domain.ErrTransport, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		remoteErr := &domain.RemoteError{
			StatusCode: resp.StatusCode,
			Message:    remoteMessage(raw),
		}
		logger.Error("rest: %s %s: %v", method, target, remoteErr)
		return remoteErr
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		logger.Error("rest: decode response: %v", err)
		return fmt.Errorf("%w: decode response: %w", domain.ErrTransport, err)
	}

	logger.Debug("rest: %s %s: status %d", method, target, resp.StatusCode)
	return nil
}

// remoteMessage extracts the remote error message from a failure body,
// falling back to the raw body when it is not the known error shape.
func remoteMessage(raw []byte) string {
	var parsed remoteErrorBody
	if err := json.Unmarshal(raw, &parsed); err == nil {
		if parsed.Error != nil && parsed.Error.Message != "" {
			return parsed.Error.Message
		}
		if parsed.Message != "" {
			return parsed.Message
		}
	}
	return string(raw)
}

// buildURL joins the base URL, endpoint and query string. Endpoints
// are relative paths like "customers" or "invoices/in_123/finalize".
func (c *Client) buildURL(endpoint string, query url.Values) string {
	target := c.baseURL + strings.TrimPrefix(endpoint, "/")
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	return target
}
