// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"
	"io/fs"

	"cogentcore.org/glquad/base/fsx"
)

// ReadSource returns the full contents of the shader source file
// at the given path. It returns "" and an error if the file
// cannot be read. The file is read fresh on every call.
func ReadSource(fpath string) (string, error) {
	fsys, fname, err := fsx.DirFS(fpath)
	if err != nil {
		return "", fmt.Errorf("gpu.ReadSource %q: %w", fpath, err)
	}
	src, err := ReadSourceFS(fsys, fname)
	if err != nil {
		return "", fmt.Errorf("gpu.ReadSource %q: %w", fpath, err)
	}
	return src, nil
}

// ReadSourceFS is like [ReadSource] for a file in the given filesystem.
func ReadSourceFS(fsys fs.FS, fname string) (string, error) {
	b, err := fs.ReadFile(fsys, fname)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
