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
	"fmt"
	"strings"

	"github.com/ThinkInAIXYZ/go-mcp/protocol"
	"github.com/ThinkInAIXYZ/go-mcp/server"
	"github.com/ThinkInAIXYZ/go-mcp/transport"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"github.com/voidint/rnup/build"
	"github.com/voidint/rnup/version"
)

const (
	userVersionTool   = "get-user-version"
	stableVersionTool = "get-stable-version"
	rcVersionTool     = "get-rc-version"
	diffTool          = "get-react-native-diff"
)

func runMcpServer(ctx *cli.Context, svc *service) (err error) {
	mcpServer, err := newMcpServer(transport.NewStdioServerTransport(transport.WithStdioServerOptionLogger(svc.logger)), svc)
	if err != nil {
		return cli.Exit(errstring(err), 1)
	}

	fmt.Fprintf(ctx.App.ErrWriter, "%s running on stdio\n", build.Title)

	if err = mcpServer.Run(); err != nil {
		return cli.Exit(errstring(err), 1)
	}
	return nil
}

func newMcpServer(t transport.ServerTransport, svc *service) (*server.Server, error) {
	mcpServer, err := server.NewServer(t,
		server.WithServerInfo(protocol.Implementation{
			Name:    build.Name,
			Version: build.ShortVersion,
		}),
		server.WithInstructions(build.Description),
		server.WithLogger(svc.logger),
	)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	entries, err := svc.tools()
	if err != nil {
		return nil, err
	}
	for _, entry := range entries {
		mcpServer.RegisterTool(entry.tool, entry.handler)
	}
	return mcpServer, nil
}

type toolEntry struct {
	tool    *protocol.Tool
	handler server.ToolHandlerFunc
}

// tools declares the tool catalog. Generating the tools also caches the input
// schemas that protocol.VerifyAndUnmarshal checks arguments against.
func (svc *service) tools() ([]toolEntry, error) {
	specs := []struct {
		name        string
		title       string
		description string
		req         any
		openWorld   bool
		handler     server.ToolHandlerFunc
	}{
		{userVersionTool, "Get User Desired Version of React Native", userVersionDescription, UserVersionReq{}, false, svc.userVersionHandler},
		{stableVersionTool, "Get Stable Version", stableVersionDescription, struct{}{}, true, svc.stableVersionHandler},
		{rcVersionTool, "Get React Native Release Candidate Version", rcVersionDescription, struct{}{}, true, svc.rcVersionHandler},
		{diffTool, "Get React Native Diff", diffDescription, DiffReq{}, true, svc.diffHandler},
	}

	entries := make([]toolEntry, 0, len(specs))
	for _, spec := range specs {
		tool, err := protocol.NewTool(spec.name, spec.description, spec.req)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		tool.Annotations = &protocol.ToolAnnotations{
			Title:         spec.title,
			ReadOnlyHint:  boolPtr(true),
			OpenWorldHint: boolPtr(spec.openWorld),
		}
		entries = append(entries, toolEntry{tool: tool, handler: spec.handler})
	}
	return entries, nil
}

type UserVersionReq struct {
	Version string `json:"version" description:"The version of React Native that the user wants to upgrade to" required:"true"`
}

// userVersionHandler echoes the version so that the user's choice becomes a tool result.
func (svc *service) userVersionHandler(_ context.Context, req *protocol.CallToolRequest) (*protocol.CallToolResult, error) {
	var uvReq UserVersionReq
	if err := protocol.VerifyAndUnmarshal(req.RawArguments, &uvReq); err != nil {
		return nil, err
	}
	return textResult(uvReq.Version), nil
}

func (svc *service) stableVersionHandler(ctx context.Context, _ *protocol.CallToolRequest) (*protocol.CallToolResult, error) {
	v, err := svc.resolver.StableVersion(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return textResult(v), nil
}

func (svc *service) rcVersionHandler(ctx context.Context, _ *protocol.CallToolRequest) (*protocol.CallToolResult, error) {
	vs, err := svc.resolver.ReleaseCandidateVersions(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return textResult(strings.Join(vs, "\n")), nil
}

type DiffReq struct {
	FromVersion string `json:"fromVersion" description:"The current React Native version to compare from (defaults to version in package.json)" required:"false"`
	ToVersion   string `json:"toVersion" description:"The target React Native version to upgrade to" required:"true"`
}

func (svc *service) diffHandler(ctx context.Context, req *protocol.CallToolRequest) (*protocol.CallToolResult, error) {
	var diffReq DiffReq
	if err := protocol.VerifyAndUnmarshal(req.RawArguments, &diffReq); err != nil {
		return nil, err
	}

	from := diffReq.FromVersion
	if from == "" {
		var err error
		if from, err = version.ProjectVersion(svc.projectDir); err != nil {
			return nil, errors.WithStack(err)
		}
	}

	text, err := svc.fetcher.Diff(ctx, from, diffReq.ToVersion)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return textResult(text), nil
}

func textResult(text string) *protocol.CallToolResult {
	return &protocol.CallToolResult{
		Content: []protocol.Content{
			&protocol.TextContent{
				Type: "text",
				Text: text,
			},
		},
	}
}

func boolPtr(b bool) *bool {
	return &b
}
