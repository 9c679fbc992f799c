// Package httputil provides HTTP utilities for the GitHub API client.
//
// # Overview
//
// The client in [github.com/matzehuels/gitscraper/pkg/github] sends every
// request attempt through a [RetryPolicy]. This package defines that type
// and the policies that ship with the module:
//
//   - [NoRetry]: Perform the attempt exactly once (the default)
//   - [Backoff]: Opt-in exponential backoff for transient failures
//
// # Retryable Errors
//
// [Backoff] only retries errors that report themselves as transient:
//
//   - Errors wrapped in [RetryableError] (transport failures)
//   - Errors implementing Retryable() bool that return true
//     (5xx, 429, and exhausted-quota 403 responses)
//
// Errors implementing RetryDelay() time.Duration may ask for a specific
// wait before the next attempt, e.g. from a Retry-After header.
//
// # Usage
//
//	client := github.NewClient(github.Config{
//	    Token: token,
//	    Retry: httputil.Backoff(3, time.Second),
//	})
//
// A custom policy is any func with the [RetryPolicy] signature, so callers
// can plug in their own scheduling without changing the client.
package httputil
