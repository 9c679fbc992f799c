package github

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strconv"
	"time"

	apierrors "github.com/matzehuels/gitscraper/pkg/errors"
	"github.com/matzehuels/gitscraper/pkg/httputil"
)

// maxErrorBody caps how much of a failed response is kept on an APIError.
const maxErrorBody = 1 << 20

// APIError is returned when GitHub answers with any status other than 200.
//
// It implements Code() so [apierrors.Is] and [apierrors.GetCode] classify it,
// and Retryable()/RetryDelay() so [httputil.Backoff] can decide whether to
// try again.
type APIError struct {
	Method     string        // HTTP method, always GET
	Endpoint   string        // API path, e.g. /repos/octocat/Hello-World
	StatusCode int           // HTTP status code
	Body       []byte        // Raw response body (truncated at 1 MiB)
	RateLimit  bool          // Response signalled an exhausted rate limit
	RetryAfter time.Duration // Server-requested wait, if any
}

func (e *APIError) Error() string {
	if msg := e.Message(); msg != "" {
		return fmt.Sprintf("github: %s %s: status %d: %s", e.Method, e.Endpoint, e.StatusCode, msg)
	}
	return fmt.Sprintf("github: %s %s: status %d", e.Method, e.Endpoint, e.StatusCode)
}

// Message returns the "message" field of a JSON error body, if present.
func (e *APIError) Message() string {
	var body struct {
		Message string `json:"message"`
	}
	if json.Unmarshal(e.Body, &body) != nil {
		return ""
	}
	return body.Message
}

// Code maps the status to an error code.
func (e *APIError) Code() apierrors.Code {
	switch {
	case e.RateLimit || e.StatusCode == http.StatusTooManyRequests:
		return apierrors.ErrCodeRateLimited
	case e.StatusCode == http.StatusNotFound:
		return apierrors.ErrCodeNotFound
	case e.StatusCode == http.StatusUnauthorized:
		return apierrors.ErrCodeUnauthorized
	case e.StatusCode == http.StatusForbidden:
		return apierrors.ErrCodeForbidden
	case e.StatusCode == http.StatusBadRequest, e.StatusCode == http.StatusUnprocessableEntity:
		return apierrors.ErrCodeInvalidInput
	case e.StatusCode >= 500:
		return apierrors.ErrCodeNetwork
	default:
		return apierrors.ErrCodeInternal
	}
}

// Retryable reports whether another attempt could succeed.
func (e *APIError) Retryable() bool {
	return e.StatusCode >= 500 || e.StatusCode == http.StatusTooManyRequests || e.RateLimit
}

// RetryDelay returns the server-requested wait before the next attempt.
func (e *APIError) RetryDelay() time.Duration { return e.RetryAfter }

func newAPIError(method, endpoint string, resp *http.Response) *APIError {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	e := &APIError{
		Method:     method,
		Endpoint:   endpoint,
		StatusCode: resp.StatusCode,
		Body:       body,
		RateLimit:  resp.StatusCode == http.StatusForbidden && resp.Header.Get("X-RateLimit-Remaining") == "0",
	}

	if secs, err := strconv.Atoi(resp.Header.Get("Retry-After")); err == nil && secs > 0 {
		e.RetryAfter = time.Duration(secs) * time.Second
	} else if e.RateLimit {
		if reset, err := strconv.ParseInt(resp.Header.Get("X-RateLimit-Reset"), 10, 64); err == nil {
			e.RetryAfter = max(time.Until(time.Unix(reset, 0)), 0)
		}
	}
	return e
}

// transportError classifies a failure from the HTTP transport itself.
func transportError(ctx context.Context, endpoint string, err error) error {
	switch {
	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		return apierrors.Wrap(apierrors.ErrCodeTimeout, err, "GET %s", endpoint)
	case ctx.Err() != nil:
		return apierrors.Wrap(apierrors.ErrCodeNetwork, err, "GET %s", endpoint)
	case isTimeout(err):
		return httputil.Retryable(apierrors.Wrap(apierrors.ErrCodeTimeout, err, "GET %s", endpoint))
	default:
		return httputil.Retryable(apierrors.Wrap(apierrors.ErrCodeNetwork, err, "GET %s", endpoint))
	}
}

func isTimeout(err error) bool {
	var ne net.Error
	return errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &ne) && ne.Timeout())
}
