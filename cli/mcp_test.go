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

package cli

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/ThinkInAIXYZ/go-mcp/pkg"
	"github.com/ThinkInAIXYZ/go-mcp/protocol"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/voidint/rnup/diff"
	"github.com/voidint/rnup/pkg/errs"
	"github.com/voidint/rnup/pkg/sdk/github"
	"github.com/voidint/rnup/version"
)

// newTestService serves both the release feed and the diff corpus from routes.
func newTestService(t *testing.T, routes map[string]string) *service {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := routes[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	return &service{
		resolver: version.NewResolver(version.WithReleaseClient(github.NewClient(
			github.WithBaseURL(srv.URL),
			github.WithHTTPClient(srv.Client()),
		))),
		fetcher: diff.NewFetcher(
			diff.WithBaseURL(srv.URL+"/diffs"),
			diff.WithHTTPClient(srv.Client()),
		),
		projectDir: t.TempDir(),
		logger:     pkg.DefaultLogger,
	}
}

func callTool(t *testing.T, svc *service, name string, args string) (*protocol.CallToolResult, error) {
	entries, err := svc.tools()
	require.Nil(t, err)

	for _, entry := range entries {
		if entry.tool.Name != name {
			continue
		}
		var raw json.RawMessage
		if args != "" {
			raw = json.RawMessage(args)
		}
		return entry.handler(context.Background(), protocol.NewCallToolRequestWithRawArguments(name, raw))
	}
	t.Fatalf("tool %q not registered", name)
	return nil, nil
}

func resultText(t *testing.T, res *protocol.CallToolResult) string {
	require.NotNil(t, res)
	require.Len(t, res.Content, 1)
	text, ok := res.Content[0].(*protocol.TextContent)
	require.True(t, ok)
	assert.Equal(t, "text", text.Type)
	return text.Text
}

func TestTools(t *testing.T) {
	entries, err := newTestService(t, nil).tools()
	require.Nil(t, err)

	var names []string
	tools := make(map[string]*protocol.Tool)
	for _, entry := range entries {
		names = append(names, entry.tool.Name)
		tools[entry.tool.Name] = entry.tool
		assert.NotNil(t, entry.handler)
		assert.NotEmpty(t, entry.tool.Description)
		require.NotNil(t, entry.tool.Annotations)
		assert.True(t, *entry.tool.Annotations.ReadOnlyHint)
	}
	assert.Equal(t, []string{userVersionTool, stableVersionTool, rcVersionTool, diffTool}, names)

	assert.Equal(t, "Get React Native Diff", tools[diffTool].Annotations.Title)
	assert.Equal(t, []string{"toVersion"}, tools[diffTool].InputSchema.Required)
	assert.Contains(t, tools[diffTool].InputSchema.Properties, "fromVersion")
	assert.Equal(t, []string{"version"}, tools[userVersionTool].InputSchema.Required)
	assert.Empty(t, tools[stableVersionTool].InputSchema.Properties)
	assert.Empty(t, tools[rcVersionTool].InputSchema.Properties)
	assert.False(t, *tools[userVersionTool].Annotations.OpenWorldHint)
}

func TestUserVersionHandler(t *testing.T) {
	svc := newTestService(t, nil)

	res, err := callTool(t, svc, userVersionTool, `{"version":"0.72.0-rc.0"}`)
	require.Nil(t, err)
	assert.Equal(t, "0.72.0-rc.0", resultText(t, res))

	_, err = callTool(t, svc, userVersionTool, `{}`)
	assert.NotNil(t, err)

	_, err = callTool(t, svc, userVersionTool, "")
	assert.NotNil(t, err)
}

func TestStableVersionHandler(t *testing.T) {
	res, err := callTool(t, newTestService(t, map[string]string{
		"/repos/facebook/react-native/releases/latest": `{"tag_name":"v0.74.1"}`,
	}), stableVersionTool, "")
	require.Nil(t, err)
	assert.Equal(t, "0.74.1", resultText(t, res))

	res, err = callTool(t, newTestService(t, nil), stableVersionTool, "")
	assert.Nil(t, res)
	assert.True(t, errs.IsURLUnreachable(err))
}

func TestRCVersionHandler(t *testing.T) {
	res, err := callTool(t, newTestService(t, map[string]string{
		"/repos/facebook/react-native/releases": `[{"tag_name":"v0.75.0"},{"tag_name":"v0.75.0-rc.2"},{"tag_name":"v0.74.1"}]`,
	}), rcVersionTool, "")
	require.Nil(t, err)
	assert.Equal(t, "0.75.0-rc.2", resultText(t, res))

	res, err = callTool(t, newTestService(t, map[string]string{
		"/repos/facebook/react-native/releases": `[{"tag_name":"v0.75.0"}]`,
	}), rcVersionTool, "")
	require.Nil(t, err)
	assert.Equal(t, "", resultText(t, res))
}

func TestDiffHandler(t *testing.T) {
	routes := map[string]string{
		"/diffs/0.74.1..0.75.0.diff": "forward diff",
		"/diffs/0.76.0..0.75.0.diff": "reverse diff",
	}

	t.Run("explicit versions", func(t *testing.T) {
		res, err := callTool(t, newTestService(t, routes), diffTool, `{"fromVersion":"0.74.1","toVersion":"0.75.0"}`)
		require.Nil(t, err)
		assert.Equal(t, "forward diff", resultText(t, res))
	})

	t.Run("reversed pair", func(t *testing.T) {
		res, err := callTool(t, newTestService(t, routes), diffTool, `{"fromVersion":"0.75.0","toVersion":"0.76.0"}`)
		require.Nil(t, err)
		assert.Equal(t, "reverse diff", resultText(t, res))
	})

	t.Run("from version defaults to package.json", func(t *testing.T) {
		svc := newTestService(t, routes)
		require.Nil(t, os.WriteFile(filepath.Join(svc.projectDir, "package.json"), []byte(`{"version":"0.74.1"}`), 0644))

		res, err := callTool(t, svc, diffTool, `{"toVersion":"0.75.0"}`)
		require.Nil(t, err)
		assert.Equal(t, "forward diff", resultText(t, res))

		res, err = callTool(t, svc, diffTool, `{"fromVersion":"","toVersion":"0.75.0"}`)
		require.Nil(t, err)
		assert.Equal(t, "forward diff", resultText(t, res))
	})

	t.Run("no package.json", func(t *testing.T) {
		_, err := callTool(t, newTestService(t, routes), diffTool, `{"toVersion":"0.75.0"}`)
		assert.True(t, errs.IsManifest(err))
	})

	t.Run("missing toVersion", func(t *testing.T) {
		_, err := callTool(t, newTestService(t, routes), diffTool, `{"fromVersion":"0.74.1"}`)
		assert.NotNil(t, err)
	})

	t.Run("both directions fail", func(t *testing.T) {
		res, err := callTool(t, newTestService(t, routes), diffTool, `{"fromVersion":"0.1.0","toVersion":"0.2.0"}`)
		assert.Nil(t, res)
		assert.True(t, errs.IsURLUnreachable(err))
	})
}
