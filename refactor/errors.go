// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package refactor

import (
	"fmt"
	"sort"
	"strings"
)

// An Error is an error affecting a particular file.
type Error struct {
	Path string // slash-separated, relative to the Refactor root
	Err  error
}

func (e *Error) Error() string {
	if e.Path == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

type errorKey struct {
	path string
	msg  string
}

// ErrorList is a set of Errors. It is also an error itself. The zero value is
// an empty list, ready to use. An ErrorList is not safe for concurrent use.
type ErrorList struct {
	errs []*Error
	set  map[errorKey]bool
}

// Add adds an error to l. If the error is an ErrorList, it merges all errors
// from that list into this list. If it is an Error, it keeps the path.
// Otherwise it adds the error with no path. It suppresses duplicate errors
// (same path and message).
func (l *ErrorList) Add(err error) {
	var e *Error

	switch err := err.(type) {
	case nil:
		return

	case *ErrorList:
		for _, e := range err.errs {
			l.Add(e)
		}
		return

	case *Error:
		e = err

	default:
		e = &Error{Err: err}
	}

	k := errorKey{e.Path, e.Err.Error()}
	if !l.set[k] {
		if l.set == nil {
			l.set = make(map[errorKey]bool)
		}
		l.errs = append(l.errs, e)
		l.set[k] = true
	}
}

// Len returns the number of errors in l.
func (l *ErrorList) Len() int { return len(l.errs) }

// Errors returns the errors in l sorted by path.
func (l *ErrorList) Errors() []*Error {
	l.sort()
	return append([]*Error(nil), l.errs...)
}

func (l *ErrorList) sort() {
	sort.SliceStable(l.errs, func(i, j int) bool {
		return l.errs[i].Path < l.errs[j].Path
	})
}

// Error sorts and returns a "\n" separated list of formatted errors.
// Note that the result does not end in "\n" because the caller is
// expected to add that.
func (l *ErrorList) Error() string {
	if len(l.errs) == 0 {
		return "no errors"
	}
	l.sort()

	// Collapse a message that appears for many files on the assumption
	// that one cause (a permission problem, a full disk) hit them all.
	count := make(map[string]int)
	for _, e := range l.errs {
		count[e.Err.Error()]++
	}

	buf := new(strings.Builder)
	for _, e := range l.errs {
		msg := e.Err.Error()
		switch {
		case count[msg] > 3:
			n := count[msg]
			count[msg] = -1
			msg += fmt.Sprintf(" [× %d]", n)

		case count[msg] < 0:
			continue
		}

		if buf.Len() > 0 {
			buf.WriteByte('\n')
		}
		if e.Path != "" {
			fmt.Fprintf(buf, "%s: %s", e.Path, msg)
		} else {
			buf.WriteString(msg)
		}
	}
	return buf.String()
}

// Err returns an error equivalent to this error list.
// If the list is empty, Err returns nil.
func (l *ErrorList) Err() error {
	if len(l.errs) == 0 {
		return nil
	}
	return l
}
