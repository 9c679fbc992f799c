package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	apierrors "github.com/matzehuels/gitscraper/pkg/errors"
	"github.com/matzehuels/gitscraper/pkg/github"
)

// commitsFlags holds flag values for the commits command.
type commitsFlags struct {
	since string
	until string
	limit int
}

// commitsCommand creates the commits command for listing recent commits.
func (c *CLI) commitsCommand() *cobra.Command {
	var flags commitsFlags

	cmd := &cobra.Command{
		Use:   "commits OWNER/REPO",
		Short: "List recent commits",
		Long: `List the most recent commits on the default branch, newest first.

Only the first page returned by GitHub is shown (30 commits). --since and
--until accept RFC 3339 timestamps or plain dates; --limit trims the list
locally.

Examples:
  gitscraper commits pandas-dev/pandas --limit 3
  gitscraper commits golang/go --since 2024-01-01 --until 2024-01-31
  gitscraper commits octocat/Hello-World -q '#.sha'`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			owner, repo, err := github.ParseRepoRef(args[0])
			if err != nil {
				return err
			}
			opts, err := flags.options()
			if err != nil {
				return err
			}
			return c.runCommits(cmd.Context(), cmd.OutOrStdout(), owner, repo, opts, flags.limit)
		},
	}

	cmd.Flags().StringVar(&flags.since, "since", "", "only commits after this time (RFC 3339 or YYYY-MM-DD)")
	cmd.Flags().StringVar(&flags.until, "until", "", "only commits before this time (RFC 3339 or YYYY-MM-DD)")
	cmd.Flags().IntVarP(&flags.limit, "limit", "n", 0, "show at most N commits (0 shows all)")

	return cmd
}

func (f commitsFlags) options() (github.CommitsOptions, error) {
	var opts github.CommitsOptions
	var err error
	if opts.Since, err = parseTime("since", f.since); err != nil {
		return opts, err
	}
	if opts.Until, err = parseTime("until", f.until); err != nil {
		return opts, err
	}
	if !opts.Since.IsZero() && !opts.Until.IsZero() && opts.Until.Before(opts.Since) {
		return opts, apierrors.New(apierrors.ErrCodeInvalidInput, "--until is before --since")
	}
	if f.limit < 0 {
		return opts, apierrors.New(apierrors.ErrCodeInvalidInput, "--limit must not be negative")
	}
	return opts, nil
}

// parseTime accepts RFC 3339 timestamps and YYYY-MM-DD dates (midnight UTC).
// An empty value yields the zero time.
func parseTime(name, value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	for _, layout := range []string{time.RFC3339, time.DateOnly} {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, apierrors.New(apierrors.ErrCodeInvalidInput,
		"invalid --%s %q: use RFC 3339 (2024-01-31T12:00:00Z) or YYYY-MM-DD", name, value)
}

func (c *CLI) runCommits(ctx context.Context, w io.Writer, owner, repo string, opts github.CommitsOptions, limit int) error {
	prog := newProgress(loggerFromContext(ctx))

	var commits []github.Object
	err := c.withSpinner(ctx, "Fetching commits...", func() (err error) {
		commits, err = c.client.GetCommits(ctx, owner, repo, opts)
		return err
	})
	if err != nil {
		return fmt.Errorf("fetch commits for %s/%s: %w", owner, repo, err)
	}
	prog.done(fmt.Sprintf("Fetched %d commits", len(commits)))

	if limit > 0 && len(commits) > limit {
		commits = commits[:limit]
	}
	if c.flags.rawOutput() {
		return c.writeRaw(w, commits)
	}
	printCommits(w, commits)
	return nil
}

func printCommits(w io.Writer, commits []github.Object) {
	if len(commits) == 0 {
		printInfo(w, "No commits")
		return
	}
	for _, commit := range commits {
		v := newView(commit)
		sha := v.str("sha")
		sha = sha[:min(len(sha), 8)]
		fmt.Fprintf(w, "%s %s\n", styleSHA.Render(sha), truncate(firstLine(v.str("commit.message")), 72))
		printDetail(w, "%s · %s", v.str("commit.author.name"), v.str("commit.author.date"))
	}
	printStats(w, fmt.Sprintf("%d commits", len(commits)))
}
