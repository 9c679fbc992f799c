package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	apierrors "github.com/matzehuels/gitscraper/pkg/errors"
	"github.com/matzehuels/gitscraper/pkg/github"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultPath(t *testing.T) {
	t.Run("xdg", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
		got, err := DefaultPath()
		if err != nil {
			t.Fatalf("DefaultPath() error: %v", err)
		}
		if want := filepath.Join("/tmp/xdg", appName, fileName); got != want {
			t.Errorf("DefaultPath() = %q, want %q", got, want)
		}
	})

	t.Run("home", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "")
		got, err := DefaultPath()
		if err != nil {
			t.Fatalf("DefaultPath() error: %v", err)
		}
		home, _ := os.UserHomeDir()
		if !strings.HasPrefix(got, home) {
			t.Errorf("DefaultPath() = %q, should be under home %q", got, home)
		}
		if !strings.HasSuffix(got, filepath.Join(".config", appName, fileName)) {
			t.Errorf("DefaultPath() = %q, should end with .config/%s/%s", got, appName, fileName)
		}
	})
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
token    = "from-file"
base_url = "https://ghe.example.com/api/v3"
timeout  = "45s"
retries  = 2
`)
	t.Setenv(TokenEnv, "from-env")

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	want := Config{
		Token:   "from-file",
		BaseURL: "https://ghe.example.com/api/v3",
		Timeout: 45 * time.Second,
		Retries: 2,
		Path:    path,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadTokenFromEnv(t *testing.T) {
	path := writeConfig(t, `retries = 1`)
	t.Setenv(TokenEnv, "from-env")

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if got.Token != "from-env" {
		t.Errorf("Token = %q, want from-env", got.Token)
	}
}

func TestLoadMissingDefault(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv(TokenEnv, "")

	got, err := Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if diff := cmp.Diff(Config{}, got); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadDefaultLocation(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)
	dir := filepath.Join(xdg, appName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, fileName), []byte(`token = "abc"`), 0o600); err != nil {
		t.Fatal(err)
	}

	got, err := Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if got.Token != "abc" || got.Path != filepath.Join(dir, fileName) {
		t.Errorf("Load() = %+v", got)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    apierrors.Code
	}{
		{"syntax", `token = `, apierrors.ErrCodeInvalidFormat},
		{"unknown key", `tokn = "abc"`, apierrors.ErrCodeInvalidFormat},
		{"wrong type", `retries = "three"`, apierrors.ErrCodeInvalidFormat},
		{"bad url", `base_url = "ftp://example.com"`, apierrors.ErrCodeInvalidInput},
		{"negative retries", `retries = -1`, apierrors.ErrCodeInvalidInput},
		{"negative timeout", `timeout = "-5s"`, apierrors.ErrCodeInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			if err == nil {
				t.Fatal("Load() should fail")
			}
			if got := apierrors.GetCode(err); got != tt.want {
				t.Errorf("code = %q, want %q (err %v)", got, tt.want, err)
			}
		})
	}

	t.Run("missing explicit file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
		if !apierrors.Is(err, apierrors.ErrCodeFileNotFound) {
			t.Errorf("err = %v, want FILE_NOT_FOUND", err)
		}
	})
}

func TestClientConfig(t *testing.T) {
	tests := []struct {
		name      string
		cfg       Config
		wantRetry bool
	}{
		{"defaults", Config{}, false},
		{"retries", Config{Token: "t", BaseURL: "http://localhost", Timeout: time.Second, Retries: 3}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.cfg.ClientConfig()
			want := github.Config{Token: tt.cfg.Token, BaseURL: tt.cfg.BaseURL, Timeout: tt.cfg.Timeout}
			if diff := cmp.Diff(want, got, cmpopts.IgnoreFields(github.Config{}, "Retry")); diff != "" {
				t.Errorf("ClientConfig() mismatch (-want +got):\n%s", diff)
			}
			if (got.Retry != nil) != tt.wantRetry {
				t.Errorf("Retry set = %v, want %v", got.Retry != nil, tt.wantRetry)
			}
		})
	}
}
