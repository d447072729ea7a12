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
	"github.com/urfave/cli/v2"
)

func commands(svc *service) []*cli.Command {
	return []*cli.Command{
		{
			Name:      "mcp",
			Usage:     "Run in mcp server mode over stdio (default)",
			UsageText: "rnup mcp",
			Action: func(ctx *cli.Context) error {
				return runMcpServer(ctx, svc)
			},
		},
		{
			Name:      "stable",
			Aliases:   []string{"s"},
			Usage:     "Show the latest stable React Native version",
			UsageText: "rnup stable",
			Action: func(ctx *cli.Context) error {
				return showStable(ctx, svc)
			},
		},
		{
			Name:      "rc",
			Usage:     "Show the latest React Native release candidate version",
			UsageText: "rnup rc",
			Action: func(ctx *cli.Context) error {
				return showReleaseCandidates(ctx, svc)
			},
		},
		{
			Name:      "diff",
			Aliases:   []string{"d"},
			Usage:     "Print the upgrade diff. Uses package.json if the source version is omitted.",
			UsageText: "rnup diff [from] <to>",
			Action: func(ctx *cli.Context) error {
				return showDiff(ctx, svc)
			},
		},
		{
			Name:      "outdated",
			Usage:     "Check whether the project is behind the latest stable version",
			UsageText: "rnup outdated",
			Action: func(ctx *cli.Context) error {
				return checkOutdated(ctx, svc)
			},
		},
	}
}
