// Copyright (c) 2025 voidint <voidint@126.com>
//
// Permission is hereby granted, free of charge, to any person obtaining a copy of
// this software and associated documentation files (the "Software"), to deal in
// the Software without restriction, including without limitation the rights to
// use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies of
// the Software, and to permit persons to whom the Software is furnished to do so,
// subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY, FITNESS
// FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR
// COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER
// IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN
// CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.

package github

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/voidint/rnup/pkg/errs"
	httppkg "github.com/voidint/rnup/pkg/http"
)

// DefaultBaseURL is the GitHub REST API root.
const DefaultBaseURL = "https://api.github.com"

// Release represents a software version release.
type Release struct {
	TagName    string `json:"tag_name"`
	Name       string `json:"name"`
	Prerelease bool   `json:"prerelease"`
	HTMLURL    string `json:"html_url"`
}

// Client reads releases of a GitHub repository.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// WithBaseURL overrides the API root (e.g. for GitHub Enterprise or tests).
func WithBaseURL(baseURL string) func(c *Client) {
	return func(c *Client) {
		c.baseURL = strings.TrimSuffix(baseURL, "/")
	}
}

// WithHTTPClient sets the http client used for requests.
func WithHTTPClient(hc *http.Client) func(c *Client) {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient creates a release client instance.
func NewClient(opts ...func(c *Client)) *Client {
	c := Client{
		baseURL:    DefaultBaseURL,
		httpClient: http.DefaultClient,
	}
	for _, setter := range opts {
		if setter == nil {
			continue
		}
		setter(&c)
	}
	return &c
}

// LatestReleaseURL returns the endpoint of the latest published release.
func (c *Client) LatestReleaseURL(owner, repo string) string {
	return fmt.Sprintf("%s/repos/%s/%s/releases/latest", c.baseURL, owner, repo)
}

// ReleasesURL returns the endpoint of the release list.
func (c *Client) ReleasesURL(owner, repo string) string {
	return fmt.Sprintf("%s/repos/%s/%s/releases", c.baseURL, owner, repo)
}

// LatestRelease fetches the most recent non-prerelease, non-draft release.
func (c *Client) LatestRelease(ctx context.Context, owner, repo string) (*Release, error) {
	url := c.LatestReleaseURL(owner, repo)

	var latest Release
	if err := c.getJSON(ctx, url, &latest); err != nil {
		return nil, err
	}
	if latest.TagName == "" {
		return nil, errs.NewMalformedResponseError(url, "missing tag_name", nil)
	}
	return &latest, nil
}

// ListReleases fetches the first page of releases in feed order (newest first).
func (c *Client) ListReleases(ctx context.Context, owner, repo string) ([]Release, error) {
	url := c.ReleasesURL(owner, repo)

	var items []Release
	if err := c.getJSON(ctx, url, &items); err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].TagName == "" {
			return nil, errs.NewMalformedResponseError(url, fmt.Sprintf("missing tag_name at index %d", i), nil)
		}
	}
	return items, nil
}

func (c *Client) getJSON(ctx context.Context, url string, v any) error {
	header := http.Header{}
	header.Set("Accept", "application/vnd.github.v3+json")

	resp, err := httppkg.Get(ctx, c.httpClient, url, header)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err = json.NewDecoder(resp.Body).Decode(v); err != nil {
		return errs.NewMalformedResponseError(url, "invalid json", err)
	}
	return nil
}
