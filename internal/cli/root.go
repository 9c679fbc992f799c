package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/gitscraper/internal/config"
	"github.com/matzehuels/gitscraper/pkg/github"
	"github.com/matzehuels/gitscraper/pkg/observability"
)

// rootFlags are the persistent flags shared by every command.
type rootFlags struct {
	token      string
	configPath string
	baseURL    string
	timeout    time.Duration
	retries    int
	verbose    bool
	jsonOut    bool
	query      string
}

func (f *rootFlags) register(root *cobra.Command) {
	pf := root.PersistentFlags()
	pf.StringVar(&f.token, "token", "", "GitHub personal access token (default $GITHUB_TOKEN)")
	pf.StringVar(&f.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/gitscraper/config.toml)")
	pf.StringVar(&f.baseURL, "base-url", "", "API base URL (default "+github.DefaultBaseURL+")")
	pf.DurationVar(&f.timeout, "timeout", 0, "per-request timeout (default 30s)")
	pf.IntVar(&f.retries, "retries", 0, "retry transient failures up to N times")
	pf.BoolVarP(&f.verbose, "verbose", "v", false, "enable verbose logging")
	pf.BoolVar(&f.jsonOut, "json", false, "print the raw JSON response")
	pf.StringVarP(&f.query, "query", "q", "", "print only the value at this gjson path (implies --json)")
}

// setup runs before every command: it resolves the configuration and builds
// the API client. Flags win over the config file, which wins over the
// environment.
func (c *CLI) setup(cmd *cobra.Command, _ []string) error {
	if c.flags.verbose {
		c.SetLogLevel(LogDebug)
		observability.SetHTTPHooks(observability.NewLogHooks(c.Logger))
	}
	cmd.SetContext(withLogger(cmd.Context(), c.Logger))

	cfg, err := config.Load(c.flags.configPath)
	if err != nil {
		return err
	}
	c.cfg = c.flags.apply(cmd, cfg)
	if err := c.cfg.Validate(); err != nil {
		return err
	}
	if c.cfg.Path != "" {
		c.Logger.Debug("loaded config", "path", c.cfg.Path)
	}

	c.client = github.NewClient(c.cfg.ClientConfig(), github.WithLogger(c.Logger))
	c.Logger.Debug("client ready", "base_url", c.client.BaseURL(), "authenticated", c.client.Headers().Has("Authorization"))
	return nil
}

// apply overrides cfg with the flags that were set explicitly.
func (f *rootFlags) apply(cmd *cobra.Command, cfg config.Config) config.Config {
	flags := cmd.Flags()
	if flags.Changed("token") {
		cfg.Token = f.token
	}
	if flags.Changed("base-url") {
		cfg.BaseURL = f.baseURL
	}
	if flags.Changed("timeout") {
		cfg.Timeout = f.timeout
	}
	if flags.Changed("retries") {
		cfg.Retries = f.retries
	}
	return cfg
}

// rawOutput reports whether results are printed as JSON instead of styled text.
func (f *rootFlags) rawOutput() bool {
	return f.jsonOut || f.query != ""
}
