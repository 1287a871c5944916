// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package refactor

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"sort"
	"sync"

	"github.com/ivanshim/lexmigrate/diff"
	"golang.org/x/xerrors"
)

// A Snapshot is a set of loaded files and their pending rewrites.
// Load may be called from multiple goroutines; Diff and Write may not
// run concurrently with Load.
type Snapshot struct {
	r     *Refactor
	mu    sync.Mutex
	files map[string]*File

	// Errors collects the read and write failures of the snapshot's files.
	Errors *ErrorList
}

// Refactor returns the Refactor the snapshot belongs to.
func (s *Snapshot) Refactor() *Refactor { return s.r }

// Load returns the file with the given name, reading it from disk the
// first time. A file that was already loaded is returned with its
// working text, so rewrites made by earlier stages are kept.
// On a read failure the returned File has Err set and is recorded
// in s.Errors.
func (s *Snapshot) Load(name string) (*File, error) {
	s.mu.Lock()
	if f := s.files[name]; f != nil {
		s.mu.Unlock()
		return f, f.Err
	}
	s.mu.Unlock()

	f := &File{Name: name}
	text, mode, err := readFile(s.r.abs(name))
	if err != nil {
		f.Err = fmt.Errorf("read: %w", err)
	} else {
		f.Old = text
		f.New = text
		f.Mode = mode
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if prev := s.files[name]; prev != nil {
		// Lost a race with another Load of the same name.
		return prev, prev.Err
	}
	s.files[name] = f
	if f.Err != nil {
		s.Errors.Add(&Error{Path: name, Err: f.Err})
	}
	return f, f.Err
}

func readFile(file string) ([]byte, fs.FileMode, error) {
	info, err := os.Stat(file)
	if err != nil {
		return nil, 0, pathErr(err)
	}
	if info.IsDir() {
		return nil, 0, errors.New("is a directory")
	}
	text, err := os.ReadFile(file)
	if err != nil {
		return nil, 0, pathErr(err)
	}
	return text, info.Mode().Perm(), nil
}

// pathErr strips the absolute path from a file system error;
// callers report the root-relative name instead.
func pathErr(err error) error {
	var pe *fs.PathError
	if errors.As(err, &pe) {
		return pe.Err
	}
	return err
}

// Files returns the loaded files sorted by name.
func (s *Snapshot) Files() []*File {
	s.mu.Lock()
	defer s.mu.Unlock()
	files := make([]*File, 0, len(s.files))
	for _, f := range s.files {
		files = append(files, f)
	}
	sort.Slice(files, func(i, j int) bool { return files[i].Name < files[j].Name })
	return files
}

// Changed returns the loaded files whose text changed, sorted by name.
func (s *Snapshot) Changed() []*File {
	var changed []*File
	for _, f := range s.Files() {
		if f.Changed() {
			changed = append(changed, f)
		}
	}
	return changed
}

// Diff writes a unified diff of every changed file to w.
func (s *Snapshot) Diff(w io.Writer) error {
	for _, f := range s.Changed() {
		d, err := diff.Diff("a/"+f.Name, f.Old, "b/"+f.Name, f.New)
		if err != nil {
			return xerrors.Errorf("diff %s: %w", f.Name, err)
		}
		if _, err := w.Write(d); err != nil {
			return err
		}
	}
	return nil
}

// Write writes every changed file back to disk, keeping its mode.
// Unchanged files are not touched. A failure to write one file is
// recorded on the File and in s.Errors and does not stop the others.
// Write returns s.Errors.Err().
func (s *Snapshot) Write() error {
	for _, f := range s.Changed() {
		if err := os.WriteFile(s.r.abs(f.Name), f.New, f.Mode); err != nil {
			f.Err = fmt.Errorf("write: %w", pathErr(err))
			s.mu.Lock()
			s.Errors.Add(&Error{Path: f.Name, Err: f.Err})
			s.mu.Unlock()
		}
	}
	return s.Errors.Err()
}
