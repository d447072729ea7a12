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
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/voidint/rnup/pkg/errs"
)

const (
	// Prefix is the character GitHub tags carry in front of the version number.
	Prefix = "v"
	// ReleaseCandidateMarker identifies release candidate tags (e.g. 'v0.75.0-rc.2').
	ReleaseCandidateMarker = "rc"
)

// TrimPrefix strips exactly one leading 'v' from a release tag.
func TrimPrefix(tag string) string {
	return strings.TrimPrefix(tag, Prefix)
}

// IsReleaseCandidate reports whether the tag carries the release candidate marker.
func IsReleaseCandidate(tag string) bool {
	return strings.Contains(tag, ReleaseCandidateMarker)
}

// Semantify converts a React Native version string to a semantic version.
func Semantify(vname string) (*semver.Version, error) {
	if vname == "" {
		return nil, errs.NewMalformedVersionError(vname, errs.ErrEmptyVersion)
	}
	sv, err := semver.NewVersion(TrimPrefix(vname))
	if err != nil {
		return nil, errs.NewMalformedVersionError(vname, err)
	}
	return sv, nil
}

// Outdated reports whether latest is a newer version than current.
func Outdated(current, latest string) (bool, error) {
	cv, err := Semantify(current)
	if err != nil {
		return false, err
	}
	lv, err := Semantify(latest)
	if err != nil {
		return false, err
	}
	return lv.GreaterThan(cv), nil
}
