// Package github provides a small GitHub REST v3 client for profile browsing
package github

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	perr "gitinsight/internal/platform/errors"
	"gitinsight/internal/platform/logger"
)

const (
	baseURLDefault  = "https://api.github.com"
	defaultTimeout  = 10 * time.Second
	defaultUA       = "gitinsight"
	defaultPageSize = 20

	acceptJSON = "application/vnd.github+json"
	acceptRaw  = "application/vnd.github.v3.raw"
)

// Options configures the Client
type Options struct {
	BaseURL   string
	UserAgent string
	Timeout   time.Duration

	// Personal access token, empty means tokenless which is very low quota
	Token string

	// Repos per page when listing, defaults to 20
	PageSize int
}

// Client is a minimal GitHub REST client
// safe for concurrent use, every call is a single attempt
type Client struct {
	http *http.Client
	opts Options
	log  logger.Logger
}

// NewClient creates a new Client with sane defaults
func NewClient(o Options) *Client {
	if o.BaseURL == "" {
		o.BaseURL = baseURLDefault
	}
	if o.UserAgent == "" {
		o.UserAgent = defaultUA
	}
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	if o.PageSize <= 0 {
		o.PageSize = defaultPageSize
	}
	o.Token = strings.TrimSpace(o.Token)
	return &Client{
		http: &http.Client{Timeout: o.Timeout},
		opts: o,
		log:  *logger.Named("github"),
	}
}

// do issues a GET with auth and accept headers and returns the raw response
// callers own the body
func (c *Client) do(ctx context.Context, path, accept string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.opts.BaseURL+path, nil)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeUnknown, "github new request failed")
	}
	req.Header.Set("User-Agent", c.opts.UserAgent)
	req.Header.Set("Accept", accept)
	if c.opts.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.opts.Token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	lat := time.Since(start)

	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeUnavailable, "github do failed")
	}

	c.log.Debug().
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("latency", lat).
		Str("rate_remaining", resp.Header.Get("X-RateLimit-Remaining")).
		Msg("github http response")

	return resp, nil
}

// drainClose logs close failures so endpoint bodies stay tidy
func (c *Client) drainClose(body io.ReadCloser, path string) {
	_, _ = io.Copy(io.Discard, io.LimitReader(body, 4096))
	if err := body.Close(); err != nil {
		c.log.Error().Err(err).Str("path", path).Msg("github close body failed")
	}
}

// statusErr maps a non-2xx response to the platform error taxonomy
func statusErr(resp *http.Response, what string) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
	switch resp.StatusCode {
	case http.StatusNotFound:
		return perr.NotFoundf("github %s not found", what)
	case http.StatusTooManyRequests:
		return perr.Newf(perr.ErrorCodeTooManyRequests, "github rate limited")
	default:
		return perr.Newf(perr.ErrorCodeUnknown, "github unexpected status %d body %s", resp.StatusCode, string(body))
	}
}
