package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/matzehuels/gitscraper/pkg/github"
)

const (
	demoOwner = "pandas-dev"
	demoRepo  = "pandas"
	demoQuery = "machine learning"
	demoLimit = 3
)

// demoCommand creates the demo command, a short tour of the client.
func (c *CLI) demoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Show repository info, recent commits and a search",
		Long: `Run three requests in sequence: repository information for pandas-dev/pandas,
its three most recent commits, and the three most starred repositories
matching "machine learning".

A failing step is reported and the remaining steps still run.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runDemo(cmd.Context(), cmd.OutOrStdout())
		},
	}
}

func (c *CLI) runDemo(ctx context.Context, w io.Writer) error {
	var errs []error

	printTitle(w, "Repository Information")
	if info, err := c.client.GetRepository(ctx, demoOwner, demoRepo); err != nil {
		errs = append(errs, c.demoFailed(w, "repository", err))
	} else {
		v := newView(info)
		printKeyValue(w, "Repository", v.str("name"))
		printKeyValue(w, "Description", v.str("description"))
		printKeyValue(w, "Stars", v.num("stargazers_count"))
		printKeyValue(w, "Language", v.str("language"))
	}
	printNewline(w)

	printTitle(w, "Recent Commits")
	if commits, err := c.client.GetCommits(ctx, demoOwner, demoRepo, github.CommitsOptions{}); err != nil {
		errs = append(errs, c.demoFailed(w, "commits", err))
	} else {
		printCommits(w, commits[:min(len(commits), demoLimit)])
	}
	printNewline(w)

	printTitle(w, "Repository Search")
	result, err := c.client.SearchRepositories(ctx, github.SearchOptions{Query: demoQuery})
	if err != nil {
		errs = append(errs, c.demoFailed(w, "search", err))
	} else {
		printSearchResults(w, result, demoLimit)
	}

	return errors.Join(errs...)
}

func (c *CLI) demoFailed(w io.Writer, step string, err error) error {
	printWarning(w, "%s unavailable", step)
	return fmt.Errorf("demo %s: %w", step, err)
}
