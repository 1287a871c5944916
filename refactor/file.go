// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package refactor

import (
	"bytes"
	"io/fs"
)

// A File is a source file together with its pending rewrite.
type File struct {
	Name string      // slash-separated path relative to the Refactor root
	Old  []byte      // text read from disk; never modified
	New  []byte      // working text
	Mode fs.FileMode // permission bits of the file on disk
	Err  error       // error reading or writing the file
}

// Changed reports whether the working text differs from the disk text.
func (f *File) Changed() bool {
	return f.Err == nil && !bytes.Equal(f.Old, f.New)
}

// Text returns the working text as a string.
func (f *File) Text() string { return string(f.New) }

// SetText replaces the working text.
func (f *File) SetText(text string) { f.New = []byte(text) }
