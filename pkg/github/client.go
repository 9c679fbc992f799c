package github

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	apierrors "github.com/matzehuels/gitscraper/pkg/errors"
	"github.com/matzehuels/gitscraper/pkg/observability"
)

// Object is a decoded JSON object exactly as GitHub returned it. Numbers are
// kept as json.Number so large IDs survive unchanged.
type Object = map[string]any

// Doer sends an HTTP request. *http.Client satisfies it; tests can pass a stub.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client provides access to the GitHub REST API.
// Each method issues one GET per attempt and passes the decoded body through
// without interpreting it. A Client is safe for concurrent use if its Doer is.
type Client struct {
	cfg     Config
	headers Headers
	http    Doer
	logger  *log.Logger
}

// Option customizes a Client at construction.
type Option func(*Client)

// WithHTTPClient replaces the default *http.Client.
func WithHTTPClient(d Doer) Option {
	return func(c *Client) {
		if d != nil {
			c.http = d
		}
	}
}

// WithLogger sets the logger that receives request traces and failure
// diagnostics. The default is log.Default().
func WithLogger(l *log.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewClient creates a GitHub API client. Headers are computed once here from
// cfg.Token; no network call is made.
func NewClient(cfg Config, opts ...Option) *Client {
	cfg = cfg.withDefaults()
	c := &Client{
		cfg:     cfg,
		headers: NewHeaders(cfg.Token),
		http:    &http.Client{Timeout: cfg.Timeout},
		logger:  log.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Headers returns the headers sent with every request.
func (c *Client) Headers() Headers { return c.headers }

// BaseURL returns the API root requests are sent to.
func (c *Client) BaseURL() string { return c.cfg.BaseURL }

// get fetches endpoint with the given query and decodes a 200 body into v.
// Any other status yields an *APIError and a warning on the client logger.
func (c *Client) get(ctx context.Context, endpoint string, query url.Values, v any) error {
	rawURL := c.cfg.BaseURL + endpoint
	if len(query) > 0 {
		rawURL += "?" + query.Encode()
	}
	return c.cfg.Retry(ctx, func() error {
		return c.attempt(ctx, rawURL, endpoint, v)
	})
}

func (c *Client) attempt(ctx context.Context, rawURL, endpoint string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return apierrors.Wrap(apierrors.ErrCodeInvalidInput, err, "build request for %s", endpoint)
	}
	c.headers.apply(req)

	hooks := observability.HTTP()
	host := req.URL.Host
	hooks.OnRequest(ctx, req.Method, host, endpoint)
	c.logger.Debug("github request", "method", req.Method, "endpoint", endpoint, "query", req.URL.RawQuery)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		hooks.OnError(ctx, req.Method, host, endpoint, err)
		return transportError(ctx, endpoint, err)
	}
	defer resp.Body.Close()
	hooks.OnResponse(ctx, req.Method, host, endpoint, resp.StatusCode, time.Since(start))

	if resp.StatusCode != http.StatusOK {
		apiErr := newAPIError(req.Method, endpoint, resp)
		c.logger.Warn("github request failed", "status", resp.StatusCode, "endpoint", endpoint)
		return apiErr
	}

	dec := json.NewDecoder(resp.Body)
	dec.UseNumber()
	if err := dec.Decode(v); err != nil {
		return apierrors.Wrap(apierrors.ErrCodeInvalidFormat, err, "decode %s", endpoint)
	}
	return nil
}

func repoPath(owner, repo string) string {
	return "/repos/" + url.PathEscape(owner) + "/" + url.PathEscape(repo)
}

// contentsPath builds /repos/{owner}/{repo}/contents/{path}. The separators in
// path are kept; each segment is escaped. An empty path addresses the root.
func contentsPath(owner, repo, path string) string {
	segs := strings.Split(path, "/")
	for i, s := range segs {
		segs[i] = url.PathEscape(s)
	}
	return repoPath(owner, repo) + "/contents/" + strings.Join(segs, "/")
}
