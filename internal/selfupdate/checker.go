package selfupdate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"golang.org/x/mod/semver"
)

const (
	defaultAPIBaseURL      = "https://api.github.com"
	defaultDownloadBaseURL = "https://github.com"
	defaultOwner           = "ychsiao"
	defaultRepo            = "tablerush"
)

// ErrBadVersion is returned when a version string is not valid semver.
var ErrBadVersion = errors.New("invalid version string")

// Checker queries GitHub releases and applies updates.
type Checker struct {
	client          *http.Client
	baseURL         string
	downloadBaseURL string
	owner           string
	repo            string
	execPath        func() (string, error)
}

// Option configures a Checker.
type Option func(*Checker)

// WithTimeout sets the HTTP client timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Checker) { c.client.Timeout = d }
}

// WithBaseURL overrides the GitHub API base URL.
func WithBaseURL(u string) Option {
	return func(c *Checker) { c.baseURL = u }
}

// WithDownloadBaseURL overrides the release download base URL.
func WithDownloadBaseURL(u string) Option {
	return func(c *Checker) { c.downloadBaseURL = u }
}

// withExecPath overrides executable path resolution. Test hook.
func withExecPath(f func() (string, error)) Option {
	return func(c *Checker) { c.execPath = f }
}

// NewChecker creates a Checker with defaults for the tablerush repo.
func NewChecker(opts ...Option) *Checker {
	c := &Checker{
		client:          &http.Client{Timeout: 30 * time.Second},
		baseURL:         defaultAPIBaseURL,
		downloadBaseURL: defaultDownloadBaseURL,
		owner:           defaultOwner,
		repo:            defaultRepo,
		execPath:        os.Executable,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CheckInput is the current version to compare against.
type CheckInput struct {
	Version string
}

// CheckResult reports whether a newer release exists.
type CheckResult struct {
	UpdateAvailable bool
	LatestVersion   string
	ReleaseURL      string
}

type releaseResponse struct {
	TagName string `json:"tag_name"`
	HTMLURL string `json:"html_url"`
}

// Check fetches the latest release tag and compares it to the running
// version using semver ordering.
func (c *Checker) Check(ctx context.Context, input *CheckInput) (*CheckResult, error) {
	current := normalizeVersion(input.Version)
	if !semver.IsValid(current) {
		return nil, fmt.Errorf("%w: %q", ErrBadVersion, input.Version)
	}

	url := fmt.Sprintf("%s/repos/%s/%s/releases/latest",
		strings.TrimRight(c.baseURL, "/"), c.owner, c.repo)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch latest release: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d for %s", resp.StatusCode, url)
	}

	var release releaseResponse
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return nil, fmt.Errorf("decode release: %w", err)
	}

	latest := normalizeVersion(release.TagName)
	if !semver.IsValid(latest) {
		return nil, fmt.Errorf("%w: release tag %q", ErrBadVersion, release.TagName)
	}

	return &CheckResult{
		UpdateAvailable: semver.Compare(latest, current) > 0,
		LatestVersion:   release.TagName,
		ReleaseURL:      release.HTMLURL,
	}, nil
}

// normalizeVersion ensures the "v" prefix semver requires.
func normalizeVersion(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return v
	}
	if !strings.HasPrefix(v, "v") {
		return "v" + v
	}
	return v
}
