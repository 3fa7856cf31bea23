// Package github wraps the GitHub REST API behind a token-bound client.
// Only the calls the command needs are implemented.
package github

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/imroc/req/v3"

	"github.com/eclipsefdn/eclipsefdn-github-sync/internal/errors"
	"github.com/eclipsefdn/eclipsefdn-github-sync/internal/log"
)

const (
	DefaultBaseURL   = "https://api.github.com"
	DefaultUserAgent = "eclipsefdn-github-sync"
	DefaultTimeout   = 30 * time.Second

	mediaType  = "application/vnd.github+json"
	apiVersion = "2022-11-28"
)

// Client holds one authenticated transport. It is built once per run and
// handed to whatever needs to talk to GitHub.
type Client struct {
	BaseURL string
	Client  *req.Client

	token     string
	userAgent string
	timeout   time.Duration
	debug     bool
}

// Option customises a Client at construction time.
type Option func(*Client)

// WithBaseURL points the client at a GitHub Enterprise Server API root.
func WithBaseURL(url string) Option {
	return func(c *Client) {
		if url != "" {
			c.BaseURL = url
		}
	}
}

// WithTimeout sets the per-request timeout. Zero keeps the default.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

// WithDebug makes req print request and response dumps.
func WithDebug(enabled bool) Option {
	return func(c *Client) {
		c.debug = enabled
	}
}

// New binds token into a new client. The token is only checked for
// presence here; GitHub verifies it on the first real request.
func New(token string, opts ...Option) (*Client, error) {
	if strings.TrimSpace(token) == "" {
		return nil, errors.Wrap(errors.ErrInvalidCredential, "access token is empty")
	}

	c := &Client{
		BaseURL:   DefaultBaseURL,
		token:     token,
		userAgent: DefaultUserAgent,
		timeout:   DefaultTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.BaseURL = strings.TrimRight(c.BaseURL, "/")
	c.Client = c.newTransport()
	return c, nil
}

func (c *Client) newTransport() *req.Client {
	client := req.C().
		SetBaseURL(c.BaseURL).
		SetUserAgent(c.userAgent).
		SetTimeout(c.timeout).
		SetCommonBearerAuthToken(c.token).
		SetCommonHeader("Accept", mediaType).
		SetCommonHeader("X-GitHub-Api-Version", apiVersion)
	if c.debug {
		client.EnableDumpAllWithoutResponseBody()
	}
	return client
}

// Teams returns a team-management sub-client sharing this client's
// transport. It holds no state of its own and may be requested repeatedly.
func (c *Client) Teams() *TeamService {
	return &TeamService{client: c}
}

// requestBuilder sets path params, headers and body on a fresh request
type requestBuilder func(*req.Request) *req.Request

// doRequest sends the request built by build to path and decodes a 2xx
// body into out when out is non-nil. Non-2xx responses come back as
// *APIError.
func (c *Client) doRequest(ctx context.Context, method, path string, build requestBuilder, out any) error {
	if c == nil || c.Client == nil {
		return fmt.Errorf("github client is not initialized")
	}

	log.DebugH2("%s %s%s", method, c.BaseURL, path)

	r := c.Client.R()
	if build != nil {
		r = build(r)
	}
	resp, err := r.SetContext(ctx).Send(method, path)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %w", errors.ErrRemoteCall, method, path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newAPIError(method, path, resp.StatusCode, resp.Bytes())
	}

	if out != nil && len(resp.Bytes()) > 0 {
		if err := resp.UnmarshalJson(out); err != nil {
			return fmt.Errorf("%w: decode %s %s response: %w", errors.ErrRemoteCall, method, path, err)
		}
	}

	log.DebugH2("%s %s returned %d", method, path, resp.StatusCode)
	return nil
}
