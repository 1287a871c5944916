// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import "fmt"

// errUsage reports a command line lexmigrate cannot act on, whatever
// the tree under the root holds. Its message carries a "usage: " prefix.
type errUsage struct {
	err error
}

func newErrUsage(format string, args ...any) *errUsage {
	return &errUsage{fmt.Errorf(format, args...)}
}

func (e *errUsage) Error() string { return "usage: " + e.err.Error() }

func (e *errUsage) Unwrap() error { return e.err }

// errPrecondition reports a tree that a valid command cannot run on,
// such as a root that is missing or is not a directory.
type errPrecondition struct {
	err error
}

func newErrPrecondition(format string, args ...any) *errPrecondition {
	return &errPrecondition{fmt.Errorf(format, args...)}
}

func (e *errPrecondition) Error() string { return e.err.Error() }

func (e *errPrecondition) Unwrap() error { return e.err }
