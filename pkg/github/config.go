package github

import (
	"maps"
	"net/http"
	"strings"
	"time"

	"github.com/matzehuels/gitscraper/pkg/httputil"
)

const (
	// DefaultBaseURL is the public GitHub REST API host.
	DefaultBaseURL = "https://api.github.com"

	// MediaType selects the v3 JSON representation of every resource.
	MediaType = "application/vnd.github.v3+json"

	// DefaultBranch is the ref used by [Client.GetFileContent] when none is given.
	DefaultBranch = "main"

	// DefaultSort and DefaultOrder apply to [Client.SearchRepositories].
	DefaultSort  = "stars"
	DefaultOrder = "desc"

	defaultTimeout = 30 * time.Second
)

// Config holds the settings a [Client] is built from. The client keeps its
// own copy, so changing a Config after [NewClient] has no effect.
type Config struct {
	// Token is an optional personal access token. Empty means unauthenticated
	// (60 requests/hour instead of 5000).
	Token string

	// BaseURL overrides DefaultBaseURL, e.g. for GitHub Enterprise or tests.
	BaseURL string

	// Timeout bounds a single request attempt. Zero means 30 seconds.
	Timeout time.Duration

	// Retry wraps every request attempt. Nil means [httputil.NoRetry].
	Retry httputil.RetryPolicy
}

func (c Config) withDefaults() Config {
	c.BaseURL = strings.TrimSuffix(c.BaseURL, "/")
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.Timeout <= 0 {
		c.Timeout = defaultTimeout
	}
	if c.Retry == nil {
		c.Retry = httputil.NoRetry
	}
	return c
}

// Headers is the fixed set of request headers sent with every call.
// It is built once by [NewHeaders] and cannot be modified afterwards.
type Headers struct {
	m map[string]string
}

// NewHeaders builds the header set for token. Accept is always present;
// Authorization is present only when token is non-empty and uses GitHub's
// "token" scheme.
func NewHeaders(token string) Headers {
	m := map[string]string{"Accept": MediaType}
	if token != "" {
		m["Authorization"] = "token " + token
	}
	return Headers{m: m}
}

// Get returns the value for key, or "" if the header is not set.
func (h Headers) Get(key string) string { return h.m[http.CanonicalHeaderKey(key)] }

// Has reports whether key is set.
func (h Headers) Has(key string) bool {
	_, ok := h.m[http.CanonicalHeaderKey(key)]
	return ok
}

// Len returns the number of headers.
func (h Headers) Len() int { return len(h.m) }

// Map returns a copy of the headers.
func (h Headers) Map() map[string]string { return maps.Clone(h.m) }

func (h Headers) apply(req *http.Request) {
	for k, v := range h.m {
		req.Header.Set(k, v)
	}
}
