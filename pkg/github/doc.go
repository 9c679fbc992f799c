// Package github provides an HTTP client for the GitHub REST API (v3).
//
// # Overview
//
// The client retrieves repository metadata, commit history, file contents,
// directory listings, and repository search results. Response bodies are
// decoded and handed back unchanged as [Object] values; the client does not
// impose a schema on them.
//
// # Usage
//
//	client := github.NewClient(github.Config{Token: os.Getenv("GITHUB_TOKEN")})
//
//	repo, err := client.GetRepository(ctx, "octocat", "Hello-World")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println("Stars:", repo["stargazers_count"])
//
// # Operations
//
//   - [Client.GetRepository]: GET /repos/{owner}/{repo}
//   - [Client.GetCommits]: GET /repos/{owner}/{repo}/commits (since, until)
//   - [Client.GetFileContent]: GET /repos/{owner}/{repo}/contents/{path} (ref)
//   - [Client.GetRepositoryFiles]: GET /repos/{owner}/{repo}/contents/{path}
//   - [Client.SearchRepositories]: GET /search/repositories (q, sort, order)
//
// Optional query parameters are omitted from the request when not set.
// Only the first page of any list is returned.
//
// # Authentication
//
// A personal access token is optional. Without one the API allows 60
// requests/hour; with one, 5000. [NewHeaders] builds the header set once:
// Accept is always application/vnd.github.v3+json, and Authorization is
// "token <token>" when a token is configured.
//
// # Errors
//
// Only HTTP 200 counts as success. Any other status returns an [*APIError]
// carrying the status, endpoint and raw body, and logs a warning through the
// client's logger. Single-object operations return a nil [Object] on
// failure; list operations return an empty slice.
//
//	repo, err := client.GetRepository(ctx, "octocat", "missing")
//	var apiErr *github.APIError
//	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
//	    // ...
//	}
//
// Every error carries a code from the errors package, so
// apierrors.Is(err, apierrors.ErrCodeRateLimited) works as well.
//
// # Retries
//
// Requests are attempted once. Set [Config.Retry] to a policy such as
// httputil.Backoff to retry transient failures.
package github
