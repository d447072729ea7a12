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

package errs

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptyURL URL is empty
	ErrEmptyURL = errors.New("empty url")
	// ErrEmptyVersion Version is empty
	ErrEmptyVersion = errors.New("empty version")
)

// URLUnreachableError indicates failure to access the remote resource.
type URLUnreachableError struct {
	err error
	url string
}

// IsURLUnreachable checks if the error indicates network unreachable.
func IsURLUnreachable(err error) bool {
	if err == nil {
		return false
	}
	var e *URLUnreachableError
	return errors.As(err, &e)
}

// NewURLUnreachableError creates a URL unreachable error instance.
func NewURLUnreachableError(url string, err error) error {
	return &URLUnreachableError{
		err: err,
		url: url,
	}
}

// Error returns detailed error message.
func (e URLUnreachableError) Error() string {
	var buf strings.Builder
	buf.WriteString(fmt.Sprintf("URL %q is unreachable", e.url))
	if e.err != nil {
		buf.WriteString(" ==> " + e.err.Error())
	}
	return buf.String()
}

// Unwrap returns the original error object.
func (e URLUnreachableError) Unwrap() error {
	return e.err
}

// URL returns the resource location URL.
func (e URLUnreachableError) URL() string {
	return e.url
}

// MalformedResponseError indicates the remote resource answered with an unexpected body.
type MalformedResponseError struct {
	err    error
	url    string
	reason string
}

// IsMalformedResponse checks if the error indicates an unexpected response body.
func IsMalformedResponse(err error) bool {
	if err == nil {
		return false
	}
	var e *MalformedResponseError
	return errors.As(err, &e)
}

// NewMalformedResponseError creates a malformed response error instance.
func NewMalformedResponseError(url, reason string, err error) error {
	return &MalformedResponseError{
		err:    err,
		url:    url,
		reason: reason,
	}
}

// Error returns detailed error message.
func (e MalformedResponseError) Error() string {
	var buf strings.Builder
	buf.WriteString(fmt.Sprintf("malformed response from %q: %s", e.url, e.reason))
	if e.err != nil {
		buf.WriteString(" ==> " + e.err.Error())
	}
	return buf.String()
}

// Unwrap returns the original error object.
func (e MalformedResponseError) Unwrap() error {
	return e.err
}

// URL returns the resource location URL.
func (e MalformedResponseError) URL() string {
	return e.url
}

// MalformedVersionError indicates invalid version format.
type MalformedVersionError struct {
	err     error
	version string
}

// IsMalformedVersion checks if the error indicates invalid version syntax.
func IsMalformedVersion(err error) bool {
	if err == nil {
		return false
	}
	var e *MalformedVersionError
	return errors.As(err, &e)
}

// NewMalformedVersionError creates malformed version error instance.
func NewMalformedVersionError(version string, err error) error {
	return &MalformedVersionError{
		err:     err,
		version: version,
	}
}

// Error returns detailed error message.
func (e MalformedVersionError) Error() string {
	return fmt.Sprintf("malformed version string %q", e.version)
}

// Unwrap returns the original error object.
func (e MalformedVersionError) Unwrap() error {
	return e.err
}

// Version returns the version string.
func (e MalformedVersionError) Version() string {
	return e.version
}

// ManifestError indicates the project manifest could not provide a version.
type ManifestError struct {
	err      error
	filename string
}

// IsManifest checks if the error was raised while reading the project manifest.
func IsManifest(err error) bool {
	if err == nil {
		return false
	}
	var e *ManifestError
	return errors.As(err, &e)
}

// NewManifestError creates a manifest error instance.
func NewManifestError(filename string, err error) error {
	return &ManifestError{
		err:      err,
		filename: filename,
	}
}

// Error returns detailed error message.
func (e ManifestError) Error() string {
	var buf strings.Builder
	buf.WriteString(fmt.Sprintf("unable to read version from %q", e.filename))
	if e.err != nil {
		buf.WriteString(" ==> " + e.err.Error())
	}
	return buf.String()
}

// Unwrap returns the original error object.
func (e ManifestError) Unwrap() error {
	return e.err
}

// Filename returns the manifest file path.
func (e ManifestError) Filename() string {
	return e.filename
}
