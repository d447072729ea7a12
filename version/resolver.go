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

package version

import (
	"context"

	"github.com/voidint/rnup/pkg/sdk/github"
)

const (
	// DefaultOwner owner of the React Native repository
	DefaultOwner = "facebook"
	// DefaultRepo name of the React Native repository
	DefaultRepo = "react-native"
)

// Resolver answers which React Native version an upgrade should target.
// Every call is a single read of the release feed, nothing is cached or retried.
type Resolver struct {
	client *github.Client
	owner  string
	repo   string
}

// WithReleaseClient sets the release feed client.
func WithReleaseClient(c *github.Client) func(r *Resolver) {
	return func(r *Resolver) {
		r.client = c
	}
}

// WithRepository sets the repository whose releases are read.
func WithRepository(owner, repo string) func(r *Resolver) {
	return func(r *Resolver) {
		r.owner = owner
		r.repo = repo
	}
}

// NewResolver creates a Resolver reading facebook/react-native releases by default.
func NewResolver(opts ...func(r *Resolver)) *Resolver {
	r := Resolver{
		owner: DefaultOwner,
		repo:  DefaultRepo,
	}
	for _, setter := range opts {
		if setter == nil {
			continue
		}
		setter(&r)
	}
	if r.client == nil {
		r.client = github.NewClient()
	}
	return &r
}

// StableVersion returns the latest stable version without the 'v' prefix (e.g. '0.74.1').
func (r *Resolver) StableVersion(ctx context.Context) (string, error) {
	rel, err := r.client.LatestRelease(ctx, r.owner, r.repo)
	if err != nil {
		return "", err
	}
	return TrimPrefix(rel.TagName), nil
}

// ReleaseCandidateVersions returns the first release candidate found in feed order,
// as a one-element list. The list is empty when the feed holds no release candidate.
func (r *Resolver) ReleaseCandidateVersions(ctx context.Context) ([]string, error) {
	items, err := r.client.ListReleases(ctx, r.owner, r.repo)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if IsReleaseCandidate(items[i].TagName) {
			return []string{TrimPrefix(items[i].TagName)}, nil
		}
	}
	return []string{}, nil
}
