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

	"github.com/urfave/cli/v2"
)

func showStable(ctx *cli.Context, svc *service) error {
	v, err := svc.resolver.StableVersion(ctx.Context)
	if err != nil {
		return cli.Exit(errstring(err), 1)
	}
	fmt.Fprintln(ctx.App.Writer, v)
	return nil
}

func showReleaseCandidates(ctx *cli.Context, svc *service) error {
	vs, err := svc.resolver.ReleaseCandidateVersions(ctx.Context)
	if err != nil {
		return cli.Exit(errstring(err), 1)
	}
	if len(vs) == 0 {
		fmt.Fprintln(ctx.App.Writer, "No release candidate found")
		return nil
	}
	for _, v := range vs {
		fmt.Fprintln(ctx.App.Writer, v)
	}
	return nil
}
