// Package pkg provides the libraries behind gitscraper, a small client for
// the GitHub REST API.
//
// # Overview
//
// The pkg directory is organized into a client and its supporting packages:
//
//  1. [github] - API client: repositories, commits, contents and search
//  2. [errors] - Structured error codes shared by the client and CLI
//  3. [httputil] - Retry policies for HTTP requests
//  4. [observability] - Hooks for tracing every HTTP attempt
//  5. [buildinfo] - Version information injected at build time
//
// # Architecture
//
// A request flows through the packages like this:
//
//	caller (CLI or library user)
//	         ↓
//	    [github] Client method (validate input, build endpoint and query)
//	         ↓
//	    [httputil] RetryPolicy (one attempt by default)
//	         ↓
//	    HTTP GET with fixed headers, [observability] hooks around it
//	         ↓
//	    200: decoded JSON returned unchanged
//	    otherwise: *github.APIError plus a warning on the client logger
//
// # Quick Start
//
//	import (
//	    "context"
//	    "github.com/matzehuels/gitscraper/pkg/github"
//	)
//
//	client := github.NewClient(github.Config{Token: os.Getenv("GITHUB_TOKEN")})
//	info, err := client.GetRepository(context.Background(), "pandas-dev", "pandas")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(info["stargazers_count"])
//
// # Command Line
//
// The gitscraper binary in cmd/gitscraper wraps the client; see internal/cli.
package pkg
