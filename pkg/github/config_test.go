package github

import (
	"net/http"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewHeaders(t *testing.T) {
	tests := []struct {
		name  string
		token string
		want  map[string]string
	}{
		{
			name: "anonymous",
			want: map[string]string{"Accept": "application/vnd.github.v3+json"},
		},
		{
			name:  "with token",
			token: "abc",
			want: map[string]string{
				"Accept":        "application/vnd.github.v3+json",
				"Authorization": "token abc",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHeaders(tt.token)
			if diff := cmp.Diff(tt.want, h.Map()); diff != "" {
				t.Errorf("headers mismatch (-want +got):\n%s", diff)
			}
			if h.Len() != len(tt.want) {
				t.Errorf("Len() = %d, want %d", h.Len(), len(tt.want))
			}
		})
	}
}

func TestHeadersLookup(t *testing.T) {
	h := NewHeaders("abc")
	if h.Get("authorization") != "token abc" {
		t.Errorf("Get is not case-insensitive: %q", h.Get("authorization"))
	}
	if !h.Has("ACCEPT") {
		t.Error("Has(ACCEPT) = false")
	}
	if h.Has("User-Agent") {
		t.Error("unexpected User-Agent header")
	}
}

func TestHeadersImmutable(t *testing.T) {
	h := NewHeaders("")
	m := h.Map()
	m["Authorization"] = "token leaked"
	if h.Has("Authorization") {
		t.Error("mutating Map() result changed the header set")
	}
}

func TestHeadersApply(t *testing.T) {
	req, _ := http.NewRequest(http.MethodGet, "https://api.github.com/", nil)
	NewHeaders("abc").apply(req)

	want := http.Header{
		"Accept":        {"application/vnd.github.v3+json"},
		"Authorization": {"token abc"},
	}
	if diff := cmp.Diff(want, req.Header); diff != "" {
		t.Errorf("request headers mismatch (-want +got):\n%s", diff)
	}
}

func TestConfigDefaults(t *testing.T) {
	cfg := Config{}.withDefaults()
	if cfg.BaseURL != DefaultBaseURL {
		t.Errorf("BaseURL = %q", cfg.BaseURL)
	}
	if cfg.Timeout != defaultTimeout {
		t.Errorf("Timeout = %v", cfg.Timeout)
	}
	if cfg.Retry == nil {
		t.Error("Retry should default to NoRetry")
	}
}
