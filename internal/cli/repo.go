package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/matzehuels/gitscraper/pkg/github"
)

// repoCommand creates the repo command for showing repository metadata.
func (c *CLI) repoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "repo OWNER/REPO",
		Short: "Show repository metadata",
		Long: `Show metadata for a repository: description, stars, forks, language and more.

The repository can be given as owner/repo or as a github.com URL.

Examples:
  gitscraper repo octocat/Hello-World
  gitscraper repo https://github.com/pandas-dev/pandas
  gitscraper repo pandas-dev/pandas -q stargazers_count`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			owner, repo, err := github.ParseRepoRef(args[0])
			if err != nil {
				return err
			}
			return c.runRepo(cmd.Context(), cmd.OutOrStdout(), owner, repo)
		},
	}
}

func (c *CLI) runRepo(ctx context.Context, w io.Writer, owner, repo string) error {
	prog := newProgress(loggerFromContext(ctx))

	var info github.Object
	err := c.withSpinner(ctx, "Fetching repository...", func() (err error) {
		info, err = c.client.GetRepository(ctx, owner, repo)
		return err
	})
	if err != nil {
		return fmt.Errorf("fetch repository %s/%s: %w", owner, repo, err)
	}
	prog.done("Fetched repository " + owner + "/" + repo)

	if c.flags.rawOutput() {
		return c.writeRaw(w, info)
	}
	printRepository(w, info)
	return nil
}

func printRepository(w io.Writer, info github.Object) {
	v := newView(info)

	printTitle(w, v.str("full_name"))
	if desc := v.str("description"); desc != "" {
		printDetail(w, "%s", desc)
	}
	printNewline(w)

	printKeyValue(w, "Stars", v.num("stargazers_count"))
	printKeyValue(w, "Forks", v.num("forks_count"))
	printKeyValue(w, "Open issues", v.num("open_issues_count"))
	printKeyValue(w, "Language", v.str("language"))
	printKeyValue(w, "License", v.str("license.spdx_id"))
	printKeyValue(w, "Branch", v.str("default_branch"))
	printKeyValue(w, "Updated", v.str("pushed_at"))
	if url := v.str("html_url"); url != "" {
		printKeyValue(w, "URL", StyleLink.Render(url))
	}

	var flags []string
	if v.get("archived").Bool() {
		flags = append(flags, "archived")
	}
	if v.get("fork").Bool() {
		flags = append(flags, "fork")
	}
	if v.get("private").Bool() {
		flags = append(flags, "private")
	}
	if len(flags) > 0 {
		printStats(w, flags...)
	}
}
