// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package refactor

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeTree creates the given files under a new temporary directory.
func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, text := range files {
		file := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(file), 0o777))
		require.NoError(t, os.WriteFile(file, []byte(text), 0o666))
	}
	return dir
}

func TestFiles(t *testing.T) {
	dir := writeTree(t, map[string]string{
		"src_mini_c/src_mini_c.rs":            "",
		"src_mini_c/statements/while.rs":      "",
		"src_mini_c/statements/print.rs":      "",
		"src_mini_c/examples/demo.rs":         "",
		"src_mini_c/nested/examples/deep.rs":  "",
		"src_mini_c/examples_extra/kept.rs":   "",
		"src_mini_c/README.md":                "",
		"src_mini_c/statements/print.rs.orig": "",
		"src_mini_sh/src_mini_sh.rs":          "",
	})
	r, err := New(dir)
	require.NoError(t, err)

	names, err := r.Files("src_mini_c", ".rs", []string{"examples"})
	require.NoError(t, err)
	assert.Equal(t, []string{
		"src_mini_c/examples_extra/kept.rs",
		"src_mini_c/src_mini_c.rs",
		"src_mini_c/statements/print.rs",
		"src_mini_c/statements/while.rs",
	}, names)

	names, err = r.Files("src_mini_c", ".rs", nil)
	require.NoError(t, err)
	assert.Len(t, names, 6)
}

func TestFilesMissingRoot(t *testing.T) {
	r, err := New(t.TempDir())
	require.NoError(t, err)
	_, err = r.Files("src_nowhere", ".rs", nil)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.False(t, r.IsDir("src_nowhere"))
}

func TestNew(t *testing.T) {
	dir := writeTree(t, map[string]string{"file.rs": ""})
	_, err := New(filepath.Join(dir, "file.rs"))
	assert.ErrorContains(t, err, "is not a directory")

	_, err = New(filepath.Join(dir, "missing"))
	assert.Error(t, err)

	r, err := New(dir)
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(r.Dir()))
}

func TestExists(t *testing.T) {
	dir := writeTree(t, map[string]string{"src_mini_c/src_mini_c.rs": ""})
	r, err := New(dir)
	require.NoError(t, err)

	assert.True(t, r.Exists("src_mini_c/src_mini_c.rs"))
	assert.True(t, r.Exists("src_mini_c"))
	assert.False(t, r.Exists("src_mini_c/missing.rs"))
}
