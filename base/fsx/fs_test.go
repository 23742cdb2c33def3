// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fsx

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirFS(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "shader.vert")
	require.NoError(t, os.WriteFile(fn, []byte("void main() {}"), 0666))

	fsys, name, err := DirFS(fn)
	require.NoError(t, err)
	assert.Equal(t, "shader.vert", name)
	b, err := fs.ReadFile(fsys, name)
	require.NoError(t, err)
	assert.Equal(t, "void main() {}", string(b))
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	ok, err := FileExists(filepath.Join(dir, "glquad.toml"))
	assert.NoError(t, err)
	assert.False(t, ok)

	ok, err = FileExists(dir)
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestDirs(t *testing.T) {
	dir := t.TempDir()
	dirs, err := Dirs(filepath.Join(dir, "a.vert"), filepath.Join(dir, "a.frag"), filepath.Join(dir, "sub", "b.frag"))
	require.NoError(t, err)
	assert.Equal(t, []string{dir, filepath.Join(dir, "sub")}, dirs)
}
