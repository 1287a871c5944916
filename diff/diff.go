// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package diff implements a Diff function that compares two inputs
// and formats the result as a unified diff.
package diff

import (
	"fmt"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// Diff returns the unified diff of old and new, with three lines of
// context, headed by a "diff oldName newName" line.
// It returns nil when the inputs are equal.
func Diff(oldName string, old []byte, newName string, new []byte) ([]byte, error) {
	ud := difflib.UnifiedDiff{
		A:        lines(string(old)),
		B:        lines(string(new)),
		FromFile: oldName,
		ToFile:   newName,
		Context:  3,
	}
	text, err := difflib.GetUnifiedDiffString(ud)
	if err != nil {
		return nil, err
	}
	if text == "" {
		return nil, nil
	}
	return []byte(fmt.Sprintf("diff %s %s\n", oldName, newName) + text), nil
}

// lines splits s after each newline. Unlike difflib.SplitLines it
// does not add an empty final line; a last line without a newline
// is marked the way diff -u marks it.
func lines(s string) []string {
	if s == "" {
		return nil
	}
	l := strings.SplitAfter(s, "\n")
	if l[len(l)-1] == "" {
		return l[:len(l)-1]
	}
	l[len(l)-1] += "\n\\ No newline at end of file\n"
	return l
}
