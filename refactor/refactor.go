// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package refactor loads source files from a directory tree, holds their
// rewritten text, and writes back or diffs the files that changed.
package refactor

import (
	"errors"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/xerrors"
)

// A Refactor holds the state for an active refactoring of the
// tree rooted at a directory.
type Refactor struct {
	dir string
}

// New returns a new refactoring of the files under dir.
func New(dir string) (*Refactor, error) {
	dir, err := filepath.EvalSymlinks(dir)
	if err != nil {
		return nil, err
	}
	dir, err = filepath.Abs(dir)
	if err != nil {
		return nil, err
	}
	info, err := os.Stat(dir)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, xerrors.Errorf("%s is not a directory", dir)
	}
	return &Refactor{dir: filepath.Clean(dir)}, nil
}

// Dir returns the root directory of the refactoring.
func (r *Refactor) Dir() string {
	return r.dir
}

// abs returns the file system path for the slash-separated name.
func (r *Refactor) abs(name string) string {
	return filepath.Join(r.dir, filepath.FromSlash(name))
}

// IsDir reports whether name, relative to the root, is a directory.
func (r *Refactor) IsDir(name string) bool {
	info, err := os.Stat(r.abs(name))
	return err == nil && info.IsDir()
}

// Exists reports whether name, relative to the root, exists.
// A name that cannot be examined for another reason is assumed to
// exist, so that reading it reports the problem.
func (r *Refactor) Exists(name string) bool {
	_, err := os.Stat(r.abs(name))
	return !errors.Is(err, fs.ErrNotExist)
}

// Files returns the names of the files under the directory sub whose
// names end in ext, sorted. Directories whose base name appears in
// exclude are skipped along with everything beneath them.
// The returned names are slash-separated and relative to the root.
func (r *Refactor) Files(sub, ext string, exclude []string) ([]string, error) {
	skip := make(map[string]bool)
	for _, x := range exclude {
		skip[x] = true
	}

	root := r.abs(sub)
	var names []string
	err := filepath.WalkDir(root, func(file string, d fs.DirEntry, err error) error {
		if err != nil {
			if file == root {
				return err
			}
			// Unreadable entries below the root are skipped.
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			if file != root && skip[d.Name()] {
				return fs.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(d.Name(), ext) {
			return nil
		}
		rel, err := filepath.Rel(r.dir, file)
		if err != nil {
			return err
		}
		names = append(names, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		var pe *fs.PathError
		if errors.As(err, &pe) {
			return nil, xerrors.Errorf("walking %s: %w", path.Clean(sub), pe.Err)
		}
		return nil, err
	}
	sort.Strings(names)
	return names, nil
}

// Snapshot returns a new, empty Snapshot of r.
func (r *Refactor) Snapshot() *Snapshot {
	return &Snapshot{
		r:      r,
		files:  make(map[string]*File),
		Errors: new(ErrorList),
	}
}
