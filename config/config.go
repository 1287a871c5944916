// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config loads lexmigrate settings from defaults, an optional
// YAML file and command-line flags, in increasing order of precedence.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	"github.com/ivanshim/lexmigrate/lexeme"
)

// File names searched for in the working directory when no
// configuration file is named explicitly.
var fileNames = []string{"lexmigrate.yaml", "lexmigrate.yml"}

// Defaults.
const (
	DefaultRoot = "."
	DefaultExt  = ".rs"
	DefaultJobs = 1
)

// DefaultExclude lists the directory names skipped by default.
var DefaultExclude = []string{"examples"}

// Config holds the settings of a migration run.
type Config struct {
	Root    string   `koanf:"root"`    // directory holding the src_<module> trees
	Modules []string `koanf:"modules"` // modules to migrate; empty means all
	Ext     string   `koanf:"ext"`     // source file extension
	Exclude []string `koanf:"exclude"` // directory names to skip
	Diff    bool     `koanf:"diff"`    // print diffs instead of writing
	Jobs    int      `koanf:"jobs"`    // files processed in parallel per module
	Verbose bool     `koanf:"verbose"`

	// File is the configuration file that was loaded, if any.
	File string `koanf:"-"`
}

// findFile returns the configuration file to use: explicit if set,
// otherwise the first of fileNames present in the working directory.
func findFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	for _, name := range fileNames {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}

// Load builds the configuration. cfgFile names a YAML file to read
// (it must exist when set). Only the flags in flags that were set on
// the command line override the file and the defaults.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	// 1. Defaults
	if err := k.Load(confmap.Provider(map[string]interface{}{
		"root":    DefaultRoot,
		"modules": []string{},
		"ext":     DefaultExt,
		"exclude": DefaultExclude,
		"diff":    false,
		"jobs":    DefaultJobs,
		"verbose": false,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Config file
	used := findFile(cfgFile)
	rootFromFile := false
	if used != "" {
		fk := koanf.New(".")
		if err := fk.Load(file.Provider(used), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", used, err)
		}
		rootFromFile = fk.Exists("root")
		if err := k.Merge(fk); err != nil {
			return nil, fmt.Errorf("error merging config file %s: %w", used, err)
		}
	}

	// 3. Flags
	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed || f.Name == "config" {
				return "", nil
			}
			key := strings.ReplaceAll(f.Name, "-", "_")
			if key == "module" {
				key = "modules"
			}
			if key == "root" {
				rootFromFile = false
			}
			return key, posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	cfg.File = used

	// A relative root in a config file is relative to the file.
	if rootFromFile && !filepath.IsAbs(cfg.Root) {
		cfg.Root = filepath.Join(filepath.Dir(used), cfg.Root)
	}
	return &cfg, nil
}

// Validate checks the settings against the module registry.
func (c *Config) Validate(reg *lexeme.Registry) error {
	if c.Jobs < 1 {
		return fmt.Errorf("jobs must be at least 1, got %d", c.Jobs)
	}
	if c.Ext == "" {
		return fmt.Errorf("ext must not be empty")
	}
	for _, name := range c.Modules {
		if _, ok := reg.Lookup(name); !ok {
			return fmt.Errorf("unknown module %q (known: %s)", name, strings.Join(reg.Names(), ", "))
		}
	}
	return nil
}

// Selected returns the registry entries the configuration selects,
// in registry order. An empty module list selects every module.
func (c *Config) Selected(reg *lexeme.Registry) []lexeme.ModuleSpec {
	if len(c.Modules) == 0 {
		return reg.Specs()
	}
	want := make(map[string]bool)
	for _, name := range c.Modules {
		want[name] = true
	}
	var specs []lexeme.ModuleSpec
	for _, spec := range reg.Specs() {
		if want[spec.Name] {
			specs = append(specs, spec)
		}
	}
	return specs
}
