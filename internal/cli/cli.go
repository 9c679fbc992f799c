// Package cli implements the gitscraper command-line interface.
package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/matzehuels/gitscraper/internal/config"
	"github.com/matzehuels/gitscraper/pkg/buildinfo"
	"github.com/matzehuels/gitscraper/pkg/github"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "gitscraper"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	flags       rootFlags
	cfg         config.Config
	client      *github.Client
	stderr      io.Writer
	interactive bool
}

// New creates a new CLI instance with a default logger writing to w.
// Spinners are shown only when w is a terminal.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger:      newLogger(w, level),
		stderr:      w,
		interactive: isTerminal(w),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Gitscraper reads repositories, commits and files from the GitHub API",
		Long: `Gitscraper is a small client for the GitHub REST API. It fetches repository
metadata, recent commits, file contents and directory listings, and searches
public repositories.

A personal access token raises the rate limit from 60 to 5000 requests per
hour. Pass it with --token, put it in the config file, or export GITHUB_TOKEN.`,
		Version:           buildinfo.Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.setup,
	}

	root.SetVersionTemplate(buildinfo.Template())
	c.flags.register(root)

	// Register all subcommands
	root.AddCommand(c.repoCommand())
	root.AddCommand(c.commitsCommand())
	root.AddCommand(c.lsCommand())
	root.AddCommand(c.fileCommand())
	root.AddCommand(c.searchCommand())
	root.AddCommand(c.demoCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Terminal Detection
// =============================================================================

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
