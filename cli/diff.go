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

	ct "github.com/daviddengcn/go-colortext"
	"github.com/dixonwille/wlog/v3"
	"github.com/dixonwille/wmenu/v5"
	"github.com/urfave/cli/v2"
	"github.com/voidint/rnup/version"
)

func showDiff(ctx *cli.Context, svc *service) (err error) {
	var from, to string
	switch ctx.NArg() {
	case 0:
	case 1:
		to = ctx.Args().First()
	case 2:
		from, to = ctx.Args().Get(0), ctx.Args().Get(1)
	default:
		return cli.ShowSubcommandHelp(ctx)
	}

	if from == "" {
		if from, err = version.ProjectVersion(svc.projectDir); err != nil {
			return cli.Exit(errstring(err), 1)
		}
	}
	if to == "" {
		if to, err = pickTargetVersion(ctx, svc); err != nil {
			return cli.Exit(errstring(err), 1)
		}
	}

	text, err := svc.fetcher.Diff(ctx.Context, from, to)
	if err != nil {
		return cli.Exit(errstring(err), 1)
	}
	if text == "" {
		fmt.Fprintf(ctx.App.ErrWriter, "The diff between %s and %s is empty, nothing to upgrade.\n", from, to)
		return nil
	}
	fmt.Fprint(ctx.App.Writer, text)
	return nil
}

// pickTargetVersion lets the user choose between the stable version and the release candidates.
func pickTargetVersion(ctx *cli.Context, svc *service) (to string, err error) {
	stable, err := svc.resolver.StableVersion(ctx.Context)
	if err != nil {
		return "", err
	}
	rcs, err := svc.resolver.ReleaseCandidateVersions(ctx.Context)
	if err != nil {
		return "", err
	}
	if len(rcs) == 0 {
		return stable, nil
	}

	menu := wmenu.NewMenu("Please select the version you want to upgrade to.")
	menu.AddColor(
		wlog.Color{Code: ct.Green},
		wlog.Color{Code: ct.Yellow},
		wlog.Color{Code: ct.Magenta},
		wlog.Color{Code: ct.Yellow},
	)
	menu.Action(func(opts []wmenu.Opt) error {
		to = opts[0].Value.(string)
		return nil
	})
	menu.Option(stable+" (stable)", stable, true, nil)
	for i := range rcs {
		menu.Option(" "+rcs[i]+" (release candidate)", rcs[i], false, nil)
	}
	if err = menu.Run(); err != nil {
		return "", err
	}
	return to, nil
}
