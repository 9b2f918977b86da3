// Package api is the REST client for the job-board backend. The backend
// is an external, opaque service; this package maps its JSON resources
// onto the typed records in internal/board.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/Hugo-git31/site-hugo-adopte-un-dev/internal/board"
)

// maxBodyBytes caps response reads; listing pages are small.
const maxBodyBytes = 4 << 20

// TokenSource yields the current bearer token, "" when logged out.
// The session store implements it.
type TokenSource interface {
	Token() string
}

// staticToken is a fixed TokenSource, handy in tests.
type staticToken string

func (t staticToken) Token() string { return string(t) }

// StaticToken returns a TokenSource that always yields token.
func StaticToken(token string) TokenSource { return staticToken(token) }

// Client talks to the job-board REST API.
type Client struct {
	base   string
	http   *http.Client
	tokens TokenSource
}

// New creates a Client against baseURL. tokens may be nil for a client
// that only performs anonymous reads.
func New(baseURL string, tokens TokenSource) *Client {
	return &Client{
		base:   baseURL,
		http:   board.Cfg.HTTPClient,
		tokens: tokens,
	}
}

// get issues an authenticated GET with retry on transient failures and
// decodes the JSON body into out.
func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	u := c.base + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	resp, err := board.RetryHTTP(ctx, board.DefaultRetryConfig, func() (*http.Response, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
		if err != nil {
			return nil, err
		}
		c.setHeaders(req, false)
		board.IncrAPIRequests()
		return c.http.Do(req)
	})
	if err != nil {
		board.IncrAPIErrors()
		return err
	}
	return decode(resp, out)
}

// send issues a mutating request (POST/PUT), attempted exactly once.
func (c *Client) send(ctx context.Context, method, path string, payload, out any) error {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("encode payload: %w", err)
		}
		body = bytes.NewReader(data)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.base+path, body)
	if err != nil {
		return err
	}
	c.setHeaders(req, payload != nil)
	board.IncrAPIRequests()
	resp, err := c.http.Do(req)
	if err != nil {
		board.IncrAPIErrors()
		return err
	}
	return decode(resp, out)
}

func (c *Client) setHeaders(req *http.Request, hasJSONBody bool) {
	if hasJSONBody {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}
}

// decode reads a response and fills out. Non-2xx becomes *Error;
// malformed 2xx bodies decode best-effort into the zero value.
func decode(resp *http.Response, out any) error {
	defer resp.Body.Close()
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		board.IncrAPIErrors()
		return fmt.Errorf("read body: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		board.IncrAPIErrors()
		return newError(resp.StatusCode, data)
	}
	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		slog.Debug("malformed response body ignored",
			slog.Int("status", resp.StatusCode), slog.Any("error", err))
	}
	return nil
}

// pageQuery builds the page/page_size parameters shared by all listings.
func pageQuery(page, pageSize int) url.Values {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("page_size", strconv.Itoa(pageSize))
	return q
}

// Health probes GET /health and returns the decoded status document.
func (c *Client) Health(ctx context.Context) (map[string]any, error) {
	var out map[string]any
	if err := c.get(ctx, "/health", nil, &out); err != nil {
		return nil, fmt.Errorf("health: %w", err)
	}
	return out, nil
}
