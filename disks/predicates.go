/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package disks

import (
	"os"
	"path/filepath"

	"dirpx.dev/scry/config"
	"dirpx.dev/scry/report"
)

// IsPath reports whether path exists on disk.
func IsPath(path string, opts ...config.Option) (bool, error) {
	pol := config.Resolve(opts...)
	_, err := os.Stat(path)
	ctx := report.Context{Target: path, Members: []string{path}, Kind: "path"}
	return report.Bool(err == nil, pol, ctx)
}

// IsFile reports whether path exists and is a regular file.
func IsFile(path string, opts ...config.Option) (bool, error) {
	pol := config.Resolve(opts...)
	info, err := os.Stat(path)
	ok := err == nil && info.Mode().IsRegular()
	ctx := report.Context{Target: path, Want: "file"}
	return report.Classify(ok, pol, ctx)
}

// IsFolder reports whether path exists and is a directory.
func IsFolder(path string, opts ...config.Option) (bool, error) {
	pol := config.Resolve(opts...)
	info, err := os.Stat(path)
	ok := err == nil && info.IsDir()
	ctx := report.Context{Target: path, Want: "folder"}
	return report.Classify(ok, pol, ctx)
}

// IsSource reports whether path is a regular file carrying one of the
// policy suffixes.
func IsSource(path string, opts ...config.Option) (bool, error) {
	pol := config.Resolve(opts...)
	info, err := os.Stat(path)
	ok := err == nil && info.Mode().IsRegular() &&
		isSourceName(filepath.Base(path), pol.Suffixes)
	ctx := report.Context{Target: path, Want: "source"}
	return report.Classify(ok, pol, ctx)
}
