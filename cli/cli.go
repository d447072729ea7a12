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
	"fmt"
	"io"
	"os"

	"github.com/ThinkInAIXYZ/go-mcp/pkg"
	"github.com/fatih/color"
	"github.com/k0kubun/go-ansi"
	"github.com/urfave/cli/v2"
	"github.com/voidint/rnup/build"
	"github.com/voidint/rnup/diff"
	"github.com/voidint/rnup/version"
)

// service binds the version resolver and the diff fetcher to the commands and tools.
type service struct {
	resolver   *version.Resolver
	fetcher    *diff.Fetcher
	projectDir string
	logger     pkg.Logger
}

func newService() *service {
	return &service{
		resolver:   version.NewResolver(),
		fetcher:    diff.NewFetcher(diff.WithLogger(pkg.DefaultLogger)),
		projectDir: ".",
		logger:     pkg.DefaultLogger,
	}
}

// Run parses os.Args and runs the matched command. Without a command the mcp server is served.
func Run() {
	app := newApp(newService(), ansi.NewAnsiStdout(), os.Stderr)
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, errstring(err))
		os.Exit(1)
	}
}

func newApp(svc *service, stdout, stderr io.Writer) *cli.App {
	app := cli.NewApp()
	app.Name = "rnup"
	app.Usage = build.Description
	app.Version = build.Version()
	app.Copyright = "Copyright (c) 2025, voidint. All rights reserved."
	app.Authors = []*cli.Author{
		{Name: "voidint", Email: "voidint@126.com"},
	}
	app.Writer = stdout
	app.ErrWriter = stderr
	app.Commands = commands(svc)
	app.Action = func(ctx *cli.Context) error {
		return runMcpServer(ctx, svc)
	}
	return app
}

func errstring(err error) string {
	if err == nil {
		return ""
	}
	return wrapstring(err.Error())
}

func wrapstring(str string) string {
	if str == "" {
		return str
	}
	return color.New(color.FgRed).Sprintf("[rnup] %s", str)
}
