// Package config loads gitscraper settings from a TOML file and the
// environment.
//
// The file lives at $XDG_CONFIG_HOME/gitscraper/config.toml (falling back to
// ~/.config/gitscraper/config.toml) unless a path is given explicitly:
//
//	token    = "ghp_..."
//	base_url = "https://api.github.com"
//	timeout  = "30s"
//	retries  = 3
//
// A token in the file wins over GITHUB_TOKEN. Command-line flags are applied
// on top by the caller.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	apierrors "github.com/matzehuels/gitscraper/pkg/errors"
	"github.com/matzehuels/gitscraper/pkg/github"
	"github.com/matzehuels/gitscraper/pkg/httputil"
)

const (
	appName  = "gitscraper"
	fileName = "config.toml"

	// TokenEnv names the environment variable consulted when no token is configured.
	TokenEnv = "GITHUB_TOKEN"

	// retryInterval is the first backoff delay when retries are enabled.
	retryInterval = 500 * time.Millisecond
)

// Config is the user-facing configuration.
type Config struct {
	Token   string        `toml:"token"`
	BaseURL string        `toml:"base_url"`
	Timeout time.Duration `toml:"timeout"`
	Retries int           `toml:"retries"`

	// Path is the file the values were read from; empty if none was found.
	Path string `toml:"-"`
}

// DefaultPath returns the config file location following the XDG base
// directory convention.
func DefaultPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, fileName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, fileName), nil
}

// Load reads the config at path, or at [DefaultPath] when path is empty.
// A missing default file yields an empty Config; a missing explicit file is
// an error. GITHUB_TOKEN fills in the token if the file sets none.
func Load(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return fromEnv(Config{}), nil
		}
		path = p
	}

	cfg, err := readFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist) && !explicit:
		cfg = Config{}
	case errors.Is(err, fs.ErrNotExist):
		return Config{}, apierrors.Wrap(apierrors.ErrCodeFileNotFound, err, "config file %s", path)
	case err != nil:
		return Config{}, err
	default:
		cfg.Path = path
	}

	cfg = fromEnv(cfg)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func readFile(path string) (Config, error) {
	var cfg Config
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Config{}, err
		}
		return Config{}, apierrors.Wrap(apierrors.ErrCodeInvalidFormat, err, "parse %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return Config{}, apierrors.New(apierrors.ErrCodeInvalidFormat,
			"%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	return cfg, nil
}

func fromEnv(cfg Config) Config {
	if cfg.Token == "" {
		cfg.Token = os.Getenv(TokenEnv)
	}
	return cfg
}

// Validate checks value ranges. Zero values are valid and mean "default".
func (c Config) Validate() error {
	if c.BaseURL != "" {
		if err := apierrors.ValidateURL(c.BaseURL); err != nil {
			return err
		}
	}
	if c.Timeout < 0 {
		return apierrors.New(apierrors.ErrCodeInvalidInput, "timeout must not be negative")
	}
	if c.Retries < 0 {
		return apierrors.New(apierrors.ErrCodeInvalidInput, "retries must not be negative")
	}
	return nil
}

// ClientConfig converts c into the settings for [github.NewClient].
// A positive Retries enables exponential backoff with that many extra attempts.
func (c Config) ClientConfig() github.Config {
	cfg := github.Config{
		Token:   c.Token,
		BaseURL: c.BaseURL,
		Timeout: c.Timeout,
	}
	if c.Retries > 0 {
		cfg.Retry = httputil.Backoff(uint(c.Retries)+1, retryInterval)
	}
	return cfg
}
