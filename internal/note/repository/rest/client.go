package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"golang.org/x/oauth2"

	"notes-client/internal/note/repository"
	pkgLog "notes-client/pkg/log"
)

// TokenSource supplies the bearer token for authenticated calls.
// An empty token means the Authorization header is omitted.
type TokenSource interface {
	Token() string
}

// Client is the HTTP wrapper for the notes REST API.
type Client struct {
	baseURL    string
	tokens     TokenSource
	httpClient *http.Client
	l          pkgLog.Logger
}

// Option customises a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithTimeout bounds every request. Zero disables the timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpClient.Timeout = d }
}

// NewClient creates a new notes API client. baseURL includes the API prefix,
// e.g. http://localhost:8080/api.
func NewClient(baseURL string, tokens TokenSource, l pkgLog.Logger, opts ...Option) *Client {
	c := &Client{
		baseURL:    baseURL,
		tokens:     tokens,
		httpClient: &http.Client{},
		l:          l,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// do performs a single request and classifies its outcome. On success the
// body is decoded into out (when out is non-nil). Failures are returned as
// *repository.NetworkError, *repository.HTTPError or *repository.ParseError.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	op := method + " " + path
	reqID := pkgLog.RequestID(ctx)
	if reqID == "" {
		reqID = uuid.NewString()
		ctx = pkgLog.WithRequestID(ctx, reqID)
	}

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal %s request: %w", op, err)
		}
		reader = bytes.NewReader(raw)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build %s request: %w", op, err)
	}
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("X-Request-ID", reqID)
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if c.tokens != nil {
		if tok := c.tokens.Token(); tok != "" {
			(&oauth2.Token{AccessToken: tok}).SetAuthHeader(httpReq)
		}
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.l.Errorf(ctx, "notes api: %s failed: %v", op, err)
		return &repository.NetworkError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		c.l.Errorf(ctx, "notes api: %s: reading body failed: %v", op, err)
		return &repository.NetworkError{Op: op, Err: err}
	}
	c.l.Debugf(ctx, "notes api: %s -> %d: %s", op, resp.StatusCode, raw)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		httpErr := &repository.HTTPError{Op: op, Status: resp.StatusCode, Body: string(raw)}
		var env errorEnvelope
		if json.Unmarshal(raw, &env) == nil && env.Error != nil {
			httpErr.Code = env.Error.Code
			httpErr.Message = env.Error.Message
		}
		c.l.Warnf(ctx, "notes api: %s returned status %d", op, resp.StatusCode)
		return httpErr
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		c.l.Errorf(ctx, "notes api: %s: failed to decode response: %v", op, err)
		return &repository.ParseError{Op: op, Body: string(raw), Err: err}
	}
	return nil
}
