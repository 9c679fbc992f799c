package cli

import (
	"context"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"

	apierrors "github.com/matzehuels/gitscraper/pkg/errors"
	"github.com/matzehuels/gitscraper/pkg/github"
)

var (
	searchSorts  = []string{"stars", "forks", "help-wanted-issues", "updated"}
	searchOrders = []string{"desc", "asc"}
)

// searchFlags holds flag values for the search command.
type searchFlags struct {
	sort  string
	order string
	limit int
}

// searchCommand creates the search command for finding repositories.
func (c *CLI) searchCommand() *cobra.Command {
	var flags searchFlags

	cmd := &cobra.Command{
		Use:   "search QUERY...",
		Short: "Search public repositories",
		Long: `Search repositories using GitHub's search syntax.

Multiple arguments are joined with spaces. Qualifiers such as language:go or
stars:>1000 are passed through unchanged. Only the first page of results is
fetched; --limit trims the list locally.

Examples:
  gitscraper search machine learning --limit 3
  gitscraper search 'language:go stars:>10000' --sort updated
  gitscraper search tensorflow -q total_count`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := flags.validate(); err != nil {
				return err
			}
			opts := github.SearchOptions{
				Query: strings.Join(args, " "),
				Sort:  flags.sort,
				Order: flags.order,
			}
			return c.runSearch(cmd.Context(), cmd.OutOrStdout(), opts, flags.limit)
		},
	}

	cmd.Flags().StringVar(&flags.sort, "sort", github.DefaultSort, "sort by: "+strings.Join(searchSorts, ", "))
	cmd.Flags().StringVar(&flags.order, "order", github.DefaultOrder, "sort order: desc or asc")
	cmd.Flags().IntVarP(&flags.limit, "limit", "n", 10, "show at most N results (0 shows the whole page)")

	return cmd
}

func (f searchFlags) validate() error {
	if !slices.Contains(searchSorts, f.sort) {
		return apierrors.New(apierrors.ErrCodeInvalidInput, "invalid --sort %q: use one of %s", f.sort, strings.Join(searchSorts, ", "))
	}
	if !slices.Contains(searchOrders, f.order) {
		return apierrors.New(apierrors.ErrCodeInvalidInput, "invalid --order %q: use desc or asc", f.order)
	}
	if f.limit < 0 {
		return apierrors.New(apierrors.ErrCodeInvalidInput, "--limit must not be negative")
	}
	return nil
}

func (c *CLI) runSearch(ctx context.Context, w io.Writer, opts github.SearchOptions, limit int) error {
	prog := newProgress(loggerFromContext(ctx))

	var result github.Object
	err := c.withSpinner(ctx, "Searching repositories...", func() (err error) {
		result, err = c.client.SearchRepositories(ctx, opts)
		return err
	})
	if err != nil {
		return fmt.Errorf("search %q: %w", opts.Query, err)
	}
	prog.done("Searched repositories")

	if c.flags.rawOutput() {
		return c.writeRaw(w, result)
	}
	printSearchResults(w, result, limit)
	return nil
}

func printSearchResults(w io.Writer, result github.Object, limit int) {
	v := newView(result)
	items := v.get("items").Array()
	if len(items) == 0 {
		printInfo(w, "No repositories found")
		return
	}
	printSuccess(w, "Found %s repositories", StyleNumber.Render(v.num("total_count")))
	if v.get("incomplete_results").Bool() {
		printWarning(w, "Search timed out; results are incomplete")
	}
	printNewline(w)

	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	for _, item := range items {
		printSearchItem(w, item)
	}
}

func printSearchItem(w io.Writer, item gjson.Result) {
	stars := styleStar.Render(iconStar) + " " + StyleNumber.Render(fmt.Sprintf("%d", item.Get("stargazers_count").Int()))
	fmt.Fprintln(w, StyleHighlight.Render(item.Get("full_name").String())+"  "+stars)
	if desc := item.Get("description").String(); desc != "" {
		printDetail(w, "%s", truncate(desc, 100))
	}
	printStats(w, item.Get("language").String(), item.Get("owner.login").String())
}
