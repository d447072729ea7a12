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
	"errors"
	"os"
	"path/filepath"

	"github.com/tidwall/gjson"
	"github.com/voidint/rnup/pkg/errs"
)

// ManifestFilename is the project manifest holding the declared version.
const ManifestFilename = "package.json"

// ProjectVersion returns the 'version' field declared by the package.json in dir.
func ProjectVersion(dir string) (string, error) {
	filename := filepath.Join(dir, ManifestFilename)

	data, err := os.ReadFile(filename)
	if err != nil {
		return "", errs.NewManifestError(filename, err)
	}
	return manifestVersion(filename, data)
}

func manifestVersion(filename string, data []byte) (string, error) {
	if !gjson.ValidBytes(data) {
		return "", errs.NewManifestError(filename, errors.New("invalid json"))
	}
	result := gjson.GetBytes(data, "version")
	if result.Type != gjson.String || result.Str == "" {
		return "", errs.NewManifestError(filename, errs.ErrEmptyVersion)
	}
	return result.Str, nil
}
