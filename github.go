package stag

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"
)

const (
	// DefaultBaseURL is the GitHub REST API root.
	DefaultBaseURL = "https://api.github.com"

	// DefaultRepo is the Swift toolchain repository.
	DefaultRepo = "apple/swift"

	// DefaultPerPage is the listing page size requested from the API.
	// Resolution stays single-page: one request, client-side filtering.
	DefaultPerPage = 100

	defaultTimeout = 30 * time.Second
)

// Client lists tags and releases of a GitHub repository. The zero value
// is not usable; construct with NewClient and override fields as needed.
type Client struct {
	// HTTP is the client used for requests. NewClient installs one with
	// a bounded timeout so a stuck endpoint cannot hang the process.
	HTTP *http.Client

	// BaseURL is the API root, without trailing slash.
	BaseURL string

	// Repo is the "owner/name" repository path.
	Repo string

	// PerPage is the page size requested from the listing endpoints.
	PerPage int
}

// NewClient returns a Client for repo ("owner/name") against the public
// GitHub API.
func NewClient(repo string) *Client {
	return &Client{
		HTTP:    &http.Client{Timeout: defaultTimeout},
		BaseURL: DefaultBaseURL,
		Repo:    repo,
		PerPage: DefaultPerPage,
	}
}

type tagInfo struct {
	Name string `json:"name"`
}

type releaseInfo struct {
	TagName string `json:"tag_name"`
}

// Tags returns tag names from the tag-listing endpoint, in endpoint order.
func (c *Client) Tags(ctx context.Context) ([]string, error) {
	var list []tagInfo
	if err := c.get(ctx, "tags", &list); err != nil {
		return nil, err
	}

	out := make([]string, 0, len(list))
	for _, t := range list {
		out = append(out, t.Name)
	}

	return out, nil
}

// Releases returns the tag names of published releases, in endpoint order.
func (c *Client) Releases(ctx context.Context) ([]string, error) {
	var list []releaseInfo
	if err := c.get(ctx, "releases", &list); err != nil {
		return nil, err
	}

	out := make([]string, 0, len(list))
	for _, r := range list {
		out = append(out, r.TagName)
	}

	return out, nil
}

// get fetches one listing page and decodes the JSON array into v.
func (c *Client) get(ctx context.Context, kind string, v any) error {
	perPage := c.PerPage
	if perPage <= 0 {
		perPage = DefaultPerPage
	}

	url := c.BaseURL + "/repos/" + c.Repo + "/" + kind + "?per_page=" + strconv.Itoa(perPage)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("list %s: %w", kind, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("list %s: unexpected status %s from %s", kind, resp.Status, url)
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("list %s: decode response: %w", kind, err)
	}

	return nil
}
