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

package http

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/voidint/rnup/build"
	"github.com/voidint/rnup/pkg/errs"
)

// Get issues a GET request and returns the response when the status code is 2xx.
// The caller is responsible for closing the response body.
func Get(ctx context.Context, client *http.Client, srcURL string, header http.Header) (*http.Response, error) {
	if srcURL == "" {
		return nil, errs.ErrEmptyURL
	}
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srcURL, nil)
	if err != nil {
		return nil, errs.NewURLUnreachableError(srcURL, err)
	}
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	req.Header.Set("User-Agent", build.UserAgent()) // api.github.com rejects requests without a User-Agent

	resp, err := client.Do(req)
	if err != nil {
		return nil, errs.NewURLUnreachableError(srcURL, err)
	}

	if !IsSuccess(resp.StatusCode) {
		_ = resp.Body.Close()
		return nil, errs.NewURLUnreachableError(srcURL, fmt.Errorf("%d", resp.StatusCode))
	}
	return resp, nil
}

// GetText fetches the resource and returns its body as text, unchanged.
func GetText(ctx context.Context, client *http.Client, srcURL string) (string, error) {
	resp, err := Get(ctx, client, srcURL, nil)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errs.NewURLUnreachableError(srcURL, err)
	}
	return string(data), nil
}

// IsSuccess determines if the HTTP status code indicates successful response.
func IsSuccess(statusCode int) bool {
	return statusCode >= http.StatusOK && statusCode < http.StatusMultipleChoices
}
