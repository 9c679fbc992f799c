package github

import (
	"context"
	"time"

	"github.com/google/go-querystring/query"

	apierrors "github.com/matzehuels/gitscraper/pkg/errors"
)

// CommitsOptions filters [Client.GetCommits]. Zero times are left out of
// the request entirely.
type CommitsOptions struct {
	Since time.Time `url:"since,omitempty"` // only commits after this time
	Until time.Time `url:"until,omitempty"` // only commits before this time
}

// SearchOptions configures [Client.SearchRepositories]. Empty Sort and Order
// fall back to DefaultSort and DefaultOrder.
type SearchOptions struct {
	Query string `url:"q"`
	Sort  string `url:"sort,omitempty"`
	Order string `url:"order,omitempty"`
}

type contentOptions struct {
	Ref string `url:"ref"`
}

// GetRepository fetches /repos/{owner}/{repo}.
func (c *Client) GetRepository(ctx context.Context, owner, repo string) (Object, error) {
	if err := requireRepo(owner, repo); err != nil {
		return nil, err
	}
	var data Object
	if err := c.get(ctx, repoPath(owner, repo), nil, &data); err != nil {
		return nil, err
	}
	return data, nil
}

// GetCommits lists commits on the default branch, newest first. Only the
// first page is returned.
func (c *Client) GetCommits(ctx context.Context, owner, repo string, opts CommitsOptions) ([]Object, error) {
	if err := requireRepo(owner, repo); err != nil {
		return []Object{}, err
	}
	opts.Since, opts.Until = opts.Since.UTC(), opts.Until.UTC()
	q, err := query.Values(opts)
	if err != nil {
		return []Object{}, apierrors.Wrap(apierrors.ErrCodeInvalidInput, err, "encode commit filters")
	}

	var data []Object
	if err := c.get(ctx, repoPath(owner, repo)+"/commits", q, &data); err != nil {
		return []Object{}, err
	}
	return data, nil
}

// GetFileContent fetches the contents entry for path at branch. An empty
// branch means DefaultBranch. For files GitHub returns metadata plus
// base64-encoded content; see [DecodeContent].
func (c *Client) GetFileContent(ctx context.Context, owner, repo, path, branch string) (Object, error) {
	if err := requireRepo(owner, repo); err != nil {
		return nil, err
	}
	if err := apierrors.ValidatePath(path); err != nil {
		return nil, err
	}
	if branch == "" {
		branch = DefaultBranch
	}
	q, err := query.Values(contentOptions{Ref: branch})
	if err != nil {
		return nil, apierrors.Wrap(apierrors.ErrCodeInvalidInput, err, "encode ref")
	}

	var data Object
	if err := c.get(ctx, contentsPath(owner, repo, path), q, &data); err != nil {
		return nil, err
	}
	return data, nil
}

// GetRepositoryFiles lists the directory at path on the default branch.
// An empty path lists the repository root.
func (c *Client) GetRepositoryFiles(ctx context.Context, owner, repo, path string) ([]Object, error) {
	if err := requireRepo(owner, repo); err != nil {
		return []Object{}, err
	}
	if path != "" {
		if err := apierrors.ValidatePath(path); err != nil {
			return []Object{}, err
		}
	}

	var data []Object
	if err := c.get(ctx, contentsPath(owner, repo, path), nil, &data); err != nil {
		return []Object{}, err
	}
	return data, nil
}

// SearchRepositories runs a repository search. The result holds
// total_count, incomplete_results and the first page of items.
func (c *Client) SearchRepositories(ctx context.Context, opts SearchOptions) (Object, error) {
	if err := apierrors.ValidateQuery(opts.Query); err != nil {
		return nil, err
	}
	if opts.Sort == "" {
		opts.Sort = DefaultSort
	}
	if opts.Order == "" {
		opts.Order = DefaultOrder
	}
	q, err := query.Values(opts)
	if err != nil {
		return nil, apierrors.Wrap(apierrors.ErrCodeInvalidInput, err, "encode search options")
	}

	var data Object
	if err := c.get(ctx, "/search/repositories", q, &data); err != nil {
		return nil, err
	}
	return data, nil
}

func requireRepo(owner, repo string) error {
	if owner == "" {
		return apierrors.New(apierrors.ErrCodeInvalidInput, "owner is required")
	}
	if repo == "" {
		return apierrors.New(apierrors.ErrCodeInvalidInput, "repo is required")
	}
	return nil
}
