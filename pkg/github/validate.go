package github

import (
	"regexp"
	"strings"

	apierrors "github.com/matzehuels/gitscraper/pkg/errors"
)

// Regex patterns for GitHub resource validation.
var (
	// GitHub usernames/orgs: 1-39 alphanumeric or hyphen, not starting with hyphen
	validOwner = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9-]{0,38}$`)
	// GitHub repo names: 1-100 alphanumeric, hyphen, underscore, or dot
	validRepo = regexp.MustCompile(`^[a-zA-Z0-9._-]{1,100}$`)

	repoURLPattern = regexp.MustCompile(`^https?://github\.com/([^/]+)/([^/]+?)(?:\.git)?/?$`)
)

// ValidateOwner validates a GitHub username or organization name.
func ValidateOwner(owner string) error {
	if owner == "" {
		return apierrors.New(apierrors.ErrCodeInvalidInput, "owner is required")
	}
	if !validOwner.MatchString(owner) {
		return apierrors.New(apierrors.ErrCodeInvalidInput,
			"invalid owner %q: must be 1-39 alphanumeric characters or hyphens, cannot start with hyphen", owner)
	}
	return nil
}

// ValidateRepo validates a GitHub repository name.
func ValidateRepo(repo string) error {
	if repo == "" {
		return apierrors.New(apierrors.ErrCodeInvalidInput, "repo is required")
	}
	if !validRepo.MatchString(repo) || repo == "." || repo == ".." {
		return apierrors.New(apierrors.ErrCodeInvalidInput,
			"invalid repo %q: must be 1-100 alphanumeric characters, hyphens, underscores, or dots", repo)
	}
	return nil
}

// ValidateRepoRef validates both owner and repo parameters.
func ValidateRepoRef(owner, repo string) error {
	if err := ValidateOwner(owner); err != nil {
		return err
	}
	return ValidateRepo(repo)
}

// ParseRepoRef parses "owner/repo" or a https://github.com/owner/repo URL
// and validates both parts.
func ParseRepoRef(ref string) (owner, repo string, err error) {
	ref = strings.TrimSpace(ref)
	if m := repoURLPattern.FindStringSubmatch(ref); m != nil {
		owner, repo = m[1], m[2]
	} else {
		parts := strings.SplitN(ref, "/", 2)
		if len(parts) != 2 {
			return "", "", apierrors.New(apierrors.ErrCodeInvalidInput, "invalid repo %q: use owner/repo", ref)
		}
		owner, repo = parts[0], parts[1]
	}
	if err := ValidateRepoRef(owner, repo); err != nil {
		return "", "", err
	}
	return owner, repo, nil
}
