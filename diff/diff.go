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

// Package diff fetches precomputed React Native upgrade diffs from the rn-diff-purge corpus.
package diff

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/ThinkInAIXYZ/go-mcp/pkg"
	httppkg "github.com/voidint/rnup/pkg/http"
)

// DefaultBaseURL is the root of the diff corpus, indexed by '{from}..{to}.diff'.
const DefaultBaseURL = "https://raw.githubusercontent.com/react-native-community/rn-diff-purge/diffs/diffs"

// Fetcher retrieves the unified diff between two React Native versions.
type Fetcher struct {
	baseURL    string
	httpClient *http.Client
	logger     pkg.Logger
}

// WithBaseURL overrides the diff corpus root.
func WithBaseURL(baseURL string) func(f *Fetcher) {
	return func(f *Fetcher) {
		f.baseURL = strings.TrimSuffix(baseURL, "/")
	}
}

// WithHTTPClient sets the http client used for requests.
func WithHTTPClient(hc *http.Client) func(f *Fetcher) {
	return func(f *Fetcher) {
		f.httpClient = hc
	}
}

// WithLogger sets the logger reporting the reversed retry.
func WithLogger(logger pkg.Logger) func(f *Fetcher) {
	return func(f *Fetcher) {
		f.logger = logger
	}
}

// NewFetcher creates a Fetcher reading the public corpus by default.
func NewFetcher(opts ...func(f *Fetcher)) *Fetcher {
	f := Fetcher{
		baseURL:    DefaultBaseURL,
		httpClient: http.DefaultClient,
		logger:     pkg.DefaultLogger,
	}
	for _, setter := range opts {
		if setter == nil {
			continue
		}
		setter(&f)
	}
	return &f
}

// URL returns the corpus location of the diff from one version to another.
func (f *Fetcher) URL(from, to string) string {
	return fmt.Sprintf("%s/%s..%s.diff", f.baseURL, url.PathEscape(from), url.PathEscape(to))
}

// Diff returns the raw diff text for 'from..to'.
//
// When that read fails, exactly one retry is made with the reversed pair 'to..from'
// and its outcome is returned as is. The body is never parsed and may be empty.
func (f *Fetcher) Diff(ctx context.Context, from, to string) (string, error) {
	text, err := httppkg.GetText(ctx, f.httpClient, f.URL(from, to))
	if err == nil {
		return text, nil
	}

	f.logger.Warnf("failed to fetch diff for %s..%s, retrying with %s..%s: %v", from, to, to, from, err)
	return httppkg.GetText(ctx, f.httpClient, f.URL(to, from))
}
