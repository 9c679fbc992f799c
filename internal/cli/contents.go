package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/matzehuels/gitscraper/pkg/github"
)

// lsCommand creates the ls command for listing a repository directory.
func (c *CLI) lsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "ls OWNER/REPO [PATH]",
		Short: "List files in a repository directory",
		Long: `List the entries of a directory on the default branch.

Without PATH the repository root is listed.

Examples:
  gitscraper ls octocat/Hello-World
  gitscraper ls pandas-dev/pandas pandas/core
  gitscraper ls golang/go src -q '#(type=="dir")#.name'`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			owner, repo, err := github.ParseRepoRef(args[0])
			if err != nil {
				return err
			}
			var path string
			if len(args) == 2 {
				path = args[1]
			}
			return c.runLs(cmd.Context(), cmd.OutOrStdout(), owner, repo, path)
		},
	}
}

func (c *CLI) runLs(ctx context.Context, w io.Writer, owner, repo, path string) error {
	prog := newProgress(loggerFromContext(ctx))

	var entries []github.Object
	err := c.withSpinner(ctx, "Listing files...", func() (err error) {
		entries, err = c.client.GetRepositoryFiles(ctx, owner, repo, path)
		return err
	})
	if err != nil {
		return fmt.Errorf("list %s/%s/%s: %w", owner, repo, path, err)
	}
	prog.done(fmt.Sprintf("Listed %d entries", len(entries)))

	if c.flags.rawOutput() {
		return c.writeRaw(w, entries)
	}
	printEntries(w, entries)
	return nil
}

func printEntries(w io.Writer, entries []github.Object) {
	if len(entries) == 0 {
		printInfo(w, "Empty directory")
		return
	}
	var dirs, files int
	for _, entry := range entries {
		v := newView(entry)
		name := v.str("name")
		if v.str("type") == "dir" {
			dirs++
			fmt.Fprintln(w, StyleDim.Render(iconDir)+" "+styleDir.Render(name+"/"))
			continue
		}
		files++
		line := StyleDim.Render(iconFile) + " " + StyleValue.Render(name)
		if size := v.num("size"); size != "" && v.str("type") == "file" {
			line += " " + StyleDim.Render(size+" B")
		}
		fmt.Fprintln(w, line)
	}
	printStats(w, plural(dirs, "directory", "directories"), plural(files, "file", "files"))
}

// fileFlags holds flag values for the file command.
type fileFlags struct {
	branch string
	decode bool
}

// fileCommand creates the file command for reading a single file.
func (c *CLI) fileCommand() *cobra.Command {
	var flags fileFlags

	cmd := &cobra.Command{
		Use:   "file OWNER/REPO PATH",
		Short: "Show a file from a repository",
		Long: `Show the metadata of a file at a branch, or its content with --decode.

GitHub returns file content base64-encoded; --decode prints the decoded bytes
unchanged and takes precedence over --json and --query.

Examples:
  gitscraper file octocat/Hello-World README
  gitscraper file pandas-dev/pandas README.md --decode
  gitscraper file golang/go go.mod --branch release-branch.go1.22 --decode`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			owner, repo, err := github.ParseRepoRef(args[0])
			if err != nil {
				return err
			}
			return c.runFile(cmd.Context(), cmd.OutOrStdout(), owner, repo, args[1], flags)
		},
	}

	cmd.Flags().StringVarP(&flags.branch, "branch", "b", github.DefaultBranch, "branch, tag or commit to read from")
	cmd.Flags().BoolVarP(&flags.decode, "decode", "d", false, "print the decoded file content")

	return cmd
}

func (c *CLI) runFile(ctx context.Context, w io.Writer, owner, repo, path string, flags fileFlags) error {
	prog := newProgress(loggerFromContext(ctx))

	var file github.Object
	err := c.withSpinner(ctx, "Fetching file...", func() (err error) {
		file, err = c.client.GetFileContent(ctx, owner, repo, path, flags.branch)
		return err
	})
	if err != nil {
		return fmt.Errorf("fetch %s from %s/%s: %w", path, owner, repo, err)
	}
	prog.done("Fetched " + path)

	if flags.decode {
		data, err := github.DecodeContent(file)
		if err != nil {
			return fmt.Errorf("decode %s: %w", path, err)
		}
		_, err = w.Write(data)
		return err
	}
	if c.flags.rawOutput() {
		return c.writeRaw(w, file)
	}

	v := newView(file)
	printTitle(w, v.str("path"))
	printKeyValue(w, "Branch", flags.branch)
	printKeyValue(w, "Size", v.num("size")+" bytes")
	printKeyValue(w, "SHA", v.str("sha"))
	if url := v.str("html_url"); url != "" {
		printKeyValue(w, "URL", StyleLink.Render(url))
	}
	printNewline(w)
	printNextStep(w, "Show content", fmt.Sprintf("%s file %s/%s %s --decode", appName, owner, repo, path))
	return nil
}

func plural(n int, one, many string) string {
	if n == 1 {
		return "1 " + one
	}
	return fmt.Sprintf("%d %s", n, many)
}
