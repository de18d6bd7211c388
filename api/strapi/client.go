package strapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

const defaultTimeout = 15 * time.Second

// Client is the gateway to the remote padel backend. It builds query
// strings against a configured base URL and decodes the { data, meta }
// envelope. No retries, no caching: every call re-fetches.
type Client struct {
	baseURL string
	http    *http.Client
	log     *slog.Logger
}

// NewClient creates a gateway for the given base URL (scheme + host,
// no trailing slash required).
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: defaultTimeout},
		log:     slog.Default(),
	}
}

// Get issues a GET request for path with the given query and decodes the
// response body into out.
func (c *Client) Get(ctx context.Context, path string, q *Query, out any) error {
	u := c.baseURL + path
	if q != nil {
		if enc := q.Encode(); enc != "" {
			u += "?" + enc
		}
	}
	return c.do(ctx, http.MethodGet, u, "", nil, out)
}

// Post issues a POST with a JSON body. token may be empty for
// unauthenticated endpoints.
func (c *Client) Post(ctx context.Context, path, token string, body, out any) error {
	return c.do(ctx, http.MethodPost, c.baseURL+path, token, body, out)
}

// Put issues a PUT with a JSON body.
func (c *Client) Put(ctx context.Context, path, token string, body, out any) error {
	return c.do(ctx, http.MethodPut, c.baseURL+path, token, body, out)
}

func (c *Client) do(ctx context.Context, method, url, token string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	reqID := uuid.NewString()
	req.Header.Set("X-Request-ID", reqID)
	c.log.Debug("backend request", "method", method, "url", url, "request_id", reqID)

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Error("backend unreachable", "url", url, "request_id", reqID, "error", err)
		return &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &NetworkError{Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := decodeErrorBody(resp.StatusCode, raw)
		c.log.Warn("backend rejected request",
			"url", url, "request_id", reqID, "status", resp.StatusCode, "message", apiErr.Message)
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
