// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ivanshim/lexmigrate/lexeme"
)

func newFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("config", "", "")
	fs.String("root", DefaultRoot, "")
	fs.StringSlice("module", nil, "")
	fs.String("ext", DefaultExt, "")
	fs.StringSlice("exclude", DefaultExclude, "")
	fs.Bool("diff", false, "")
	fs.Int("jobs", DefaultJobs, "")
	fs.BoolP("verbose", "v", false, "")
	require.NoError(t, fs.Parse(args))
	return fs
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("", newFlags(t))
	require.NoError(t, err)
	assert.Equal(t, ".", cfg.Root)
	assert.Empty(t, cfg.Modules)
	assert.Equal(t, ".rs", cfg.Ext)
	assert.Equal(t, []string{"examples"}, cfg.Exclude)
	assert.Equal(t, 1, cfg.Jobs)
	assert.False(t, cfg.Diff)
	assert.Empty(t, cfg.File)
}

func TestLoadFileAndFlags(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "lexmigrate.yaml")
	require.NoError(t, os.WriteFile(file, []byte(`root: tree
modules:
  - mini_c
  - mini_sh
jobs: 4
exclude:
  - examples
  - vendor
`), 0o666))

	cfg, err := Load(file, newFlags(t))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "tree"), cfg.Root)
	assert.Equal(t, []string{"mini_c", "mini_sh"}, cfg.Modules)
	assert.Equal(t, 4, cfg.Jobs)
	assert.Equal(t, []string{"examples", "vendor"}, cfg.Exclude)
	assert.Equal(t, file, cfg.File)

	// Flags set on the command line win; unset flags leave the file alone.
	cfg, err = Load(file, newFlags(t, "--root", "other", "--module", "lumen", "--diff", "-v"))
	require.NoError(t, err)
	assert.Equal(t, "other", cfg.Root)
	assert.Equal(t, []string{"lumen"}, cfg.Modules)
	assert.True(t, cfg.Diff)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, 4, cfg.Jobs)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), nil)
	assert.ErrorContains(t, err, "error reading config file")
}

func TestValidate(t *testing.T) {
	reg := lexeme.Builtin()
	cfg := &Config{Ext: ".rs", Jobs: 1, Modules: []string{"mini_c"}}
	assert.NoError(t, cfg.Validate(reg))

	cfg.Jobs = 0
	assert.EqualError(t, cfg.Validate(reg), "jobs must be at least 1, got 0")

	cfg.Jobs = 2
	cfg.Modules = []string{"mini_cobol"}
	assert.ErrorContains(t, cfg.Validate(reg), `unknown module "mini_cobol"`)

	cfg.Modules = nil
	cfg.Ext = ""
	assert.Error(t, cfg.Validate(reg))
}

func TestSelected(t *testing.T) {
	reg := lexeme.Builtin()
	all := (&Config{}).Selected(reg)
	assert.Equal(t, reg.Specs(), all)

	// Registry order, not command-line order.
	some := (&Config{Modules: []string{"lumen", "mini_c"}}).Selected(reg)
	require.Len(t, some, 2)
	assert.Equal(t, "mini_c", some[0].Name)
	assert.Equal(t, "lumen", some[1].Name)
}
