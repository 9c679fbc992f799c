package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/gitscraper/internal/config"
)

// configCommand creates the config command, which shows the effective settings.
func (c *CLI) configCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration",
		Long: `Show the settings gitscraper will use after merging flags, the config file
and the environment. The token is masked.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runConfig(cmd.OutOrStdout())
		},
	}
}

// settings is the printable form of the effective configuration.
type settings struct {
	File          string `json:"file"`
	BaseURL       string `json:"base_url"`
	Token         string `json:"token"`
	Authenticated bool   `json:"authenticated"`
	Timeout       string `json:"timeout"`
	Retries       int    `json:"retries"`
}

func (c *CLI) runConfig(w io.Writer) error {
	s := settings{
		File:          c.cfg.Path,
		BaseURL:       c.client.BaseURL(),
		Token:         maskToken(c.cfg.Token),
		Authenticated: c.cfg.Token != "",
		Timeout:       "30s",
		Retries:       c.cfg.Retries,
	}
	if c.cfg.Timeout > 0 {
		s.Timeout = c.cfg.Timeout.String()
	}
	if s.File == "" {
		if p, err := config.DefaultPath(); err == nil {
			s.File = p + " (not found)"
		}
	}

	if c.flags.rawOutput() {
		return c.writeRaw(w, s)
	}
	printKeyValue(w, "Config file", s.File)
	printKeyValue(w, "Base URL", s.BaseURL)
	if s.Authenticated {
		printKeyValue(w, "Token", s.Token)
	} else {
		printKeyValue(w, "Token", StyleDim.Render("none (60 requests/hour)"))
	}
	printKeyValue(w, "Timeout", s.Timeout)
	printKeyValue(w, "Retries", fmt.Sprintf("%d", s.Retries))
	return nil
}

// maskToken keeps the first four characters of a token.
func maskToken(token string) string {
	if token == "" {
		return ""
	}
	if len(token) <= 8 {
		return strings.Repeat("*", len(token))
	}
	return token[:4] + strings.Repeat("*", len(token)-4)
}
