package ledgerapi

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

	"github.com/openbooks-app/openbooks_backend/internal/apperrors"
)

// errConflict marks a 409 reply from the data service. Repository methods
// translate it into the lifecycle error their endpoint implies.
var errConflict = errors.New("conflict")

// Config represents the configuration for the accounting-data service client.
type Config struct {
	BaseURL string
	Token   string
	Timeout time.Duration // Default: 30 seconds
}

// Client is a thin HTTP client for the remote accounting-data service. It is
// the only network boundary of the posting engine; every repository adapter
// in this package goes through it.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
}

// NewClient creates a new accounting-data service client.
func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		token:      cfg.Token,
	}
}

// do performs one request against the data service. body (when non-nil) is
// JSON-encoded; out (when non-nil) receives the decoded reply. Transport and
// application failures come back wrapping apperrors sentinels so callers can
// branch with errors.Is.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint = fmt.Sprintf("%s?%s", endpoint, query.Encode())
	}

	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body for %s %s: %w", method, path, err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if c.token != "" {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.token))
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %v", apperrors.ErrRemoteService, method, path, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%w: %s", apperrors.ErrNotFound, path)
	case resp.StatusCode == http.StatusConflict:
		return fmt.Errorf("%w: %s %s", errConflict, method, path)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return c.parseError(method, path, resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("%w: failed to decode response of %s %s: %v", apperrors.ErrRemoteService, method, path, err)
		}
	}
	return nil
}

// parseError parses a non-2xx reply into a remote-service error.
func (c *Client) parseError(method, path string, resp *http.Response) error {
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: %s %s returned status %d", apperrors.ErrRemoteService, method, path, resp.StatusCode)
	}

	var errResp struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(raw, &errResp); err != nil || errResp.Error == "" {
		return fmt.Errorf("%w: %s %s returned status %d: %s", apperrors.ErrRemoteService, method, path, resp.StatusCode, string(raw))
	}
	return fmt.Errorf("%w: %s %s returned status %d: %s", apperrors.ErrRemoteService, method, path, resp.StatusCode, errResp.Error)
}
