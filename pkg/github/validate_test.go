package github

import (
	"strings"
	"testing"

	apierrors "github.com/matzehuels/gitscraper/pkg/errors"
)

func TestValidateOwner(t *testing.T) {
	tests := []struct {
		owner   string
		wantErr bool
	}{
		{"octocat", false},
		{"pandas-dev", false},
		{"a", false},
		{strings.Repeat("a", 39), false},
		{"", true},
		{"-leading", true},
		{"has space", true},
		{"under_score", true},
		{strings.Repeat("a", 40), true},
	}

	for _, tt := range tests {
		t.Run(tt.owner, func(t *testing.T) {
			err := ValidateOwner(tt.owner)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateOwner(%q) error = %v, wantErr %v", tt.owner, err, tt.wantErr)
			}
			if err != nil && !apierrors.Is(err, apierrors.ErrCodeInvalidInput) {
				t.Errorf("code = %q, want INVALID_INPUT", apierrors.GetCode(err))
			}
		})
	}
}

func TestValidateRepo(t *testing.T) {
	tests := []struct {
		repo    string
		wantErr bool
	}{
		{"Hello-World", false},
		{"scikit_learn", false},
		{"vue.js", false},
		{".github", false},
		{"", true},
		{".", true},
		{"..", true},
		{"a/b", true},
		{strings.Repeat("r", 101), true},
	}

	for _, tt := range tests {
		t.Run(tt.repo, func(t *testing.T) {
			err := ValidateRepo(tt.repo)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateRepo(%q) error = %v, wantErr %v", tt.repo, err, tt.wantErr)
			}
		})
	}
}

func TestParseRepoRef(t *testing.T) {
	tests := []struct {
		ref       string
		wantOwner string
		wantRepo  string
		wantErr   bool
	}{
		{"octocat/Hello-World", "octocat", "Hello-World", false},
		{"  pandas-dev/pandas ", "pandas-dev", "pandas", false},
		{"https://github.com/golang/go", "golang", "go", false},
		{"https://github.com/golang/go.git", "golang", "go", false},
		{"http://github.com/golang/go/", "golang", "go", false},
		{"octocat", "", "", true},
		{"octocat/", "", "", true},
		{"/Hello-World", "", "", true},
		{"a/b/c", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			owner, repo, err := ParseRepoRef(tt.ref)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseRepoRef(%q) error = %v, wantErr %v", tt.ref, err, tt.wantErr)
			}
			if owner != tt.wantOwner || repo != tt.wantRepo {
				t.Errorf("ParseRepoRef(%q) = %q, %q; want %q, %q", tt.ref, owner, repo, tt.wantOwner, tt.wantRepo)
			}
		})
	}
}
