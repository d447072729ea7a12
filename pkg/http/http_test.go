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
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/voidint/rnup/build"
	"github.com/voidint/rnup/pkg/errs"
)

func TestIsSuccess(t *testing.T) {
	tests := []struct {
		code int
		want bool
	}{
		{http.StatusOK, true},
		{http.StatusNoContent, true},
		{http.StatusMultipleChoices, false},
		{http.StatusNotFound, false},
		{http.StatusInternalServerError, false},
		{199, false},
	}
	for _, tt := range tests {
		t.Run(http.StatusText(tt.code), func(t *testing.T) {
			assert.Equal(t, tt.want, IsSuccess(tt.code))
		})
	}
}

func TestGetText(t *testing.T) {
	headers := make(chan http.Header, 8)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		headers <- r.Header.Clone()
		switch r.URL.Path {
		case "/ok":
			_, _ = w.Write([]byte("diff --git a/package.json b/package.json\n"))
		case "/empty":
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	t.Run("body returned unchanged", func(t *testing.T) {
		text, err := GetText(context.Background(), srv.Client(), srv.URL+"/ok")
		assert.Nil(t, err)
		assert.Equal(t, "diff --git a/package.json b/package.json\n", text)
		h := <-headers
		assert.Equal(t, build.UserAgent(), h.Get("User-Agent"))
		assert.Equal(t, "", h.Get("Accept"))
	})

	t.Run("empty body", func(t *testing.T) {
		text, err := GetText(context.Background(), srv.Client(), srv.URL+"/empty")
		<-headers
		assert.Nil(t, err)
		assert.Equal(t, "", text)
	})

	t.Run("non-success status", func(t *testing.T) {
		text, err := GetText(context.Background(), srv.Client(), srv.URL+"/missing")
		<-headers
		assert.True(t, errs.IsURLUnreachable(err))
		assert.Equal(t, "", text)
	})

	t.Run("empty url", func(t *testing.T) {
		_, err := GetText(context.Background(), nil, "")
		assert.Equal(t, errs.ErrEmptyURL, err)
	})
}

func TestGetHeader(t *testing.T) {
	accept := make(chan string, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		accept <- r.Header.Get("Accept")
	}))
	defer srv.Close()

	resp, err := Get(context.Background(), nil, srv.URL, http.Header{"Accept": []string{"application/vnd.github.v3+json"}})
	assert.Nil(t, err)
	defer resp.Body.Close()
	assert.Equal(t, "application/vnd.github.v3+json", <-accept)
}
