// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lexeme

import (
	"fmt"
	"regexp"
	"strings"
)

// A Status is the outcome of augmenting one dispatcher.
type Status int

const (
	Applied Status = iota
	Skipped
	Failed
)

func (s Status) String() string {
	switch s {
	case Applied:
		return "applied"
	case Skipped:
		return "skipped"
	case Failed:
		return "failed"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// Reasons reported with Skipped.
const (
	ReasonNoAnchor   = "no register_all entry point"
	ReasonRegistered = "lexemes already registered"
	ReasonNoLexemes  = "no multi-character lexemes"

	// ReasonNoDispatcher is reported by callers that find no dispatcher
	// file at all, as in a module that was already migrated by hand.
	ReasonNoDispatcher = "no dispatcher file"
)

// A Result describes what Augment did.
type Result struct {
	Status Status
	Reason string
	Err    error
}

func (r Result) String() string {
	switch {
	case r.Err != nil:
		return r.Status.String() + ": " + r.Err.Error()
	case r.Reason != "":
		return r.Status.String() + ": " + r.Reason
	}
	return r.Status.String()
}

var (
	registerAll = regexp.MustCompile(`(?m)^pub fn register_all\([^)]*\)\s*\{[ \t]*\n`)
	registered  = regexp.MustCompile(`\.tokens\.set_multichar_lexemes\(`)
)

// Augment inserts a declaration of spec's lexemes at the top of the
// register_all function in text, the contents of a dispatcher file.
//
// Augment does nothing and reports Skipped when text has no register_all
// function, when the dispatcher already declares its lexemes, or when spec
// has no lexemes.
func Augment(text string, spec ModuleSpec) (string, Result) {
	if len(spec.Lexemes) == 0 {
		return text, Result{Status: Skipped, Reason: ReasonNoLexemes}
	}
	loc := registerAll.FindStringIndex(text)
	if loc == nil {
		return text, Result{Status: Skipped, Reason: ReasonNoAnchor}
	}
	if registered.MatchString(text) {
		return text, Result{Status: Skipped, Reason: ReasonRegistered}
	}
	return text[:loc[1]] + Block(spec.Lexemes) + text[loc[1]:], Result{Status: Applied}
}

// Block returns the registration statement for lexemes, in order,
// indented for the body of register_all and followed by a blank line.
func Block(lexemes []string) string {
	var b strings.Builder
	b.WriteString("    // Register multi-character lexemes for maximal-munch segmentation\n")
	b.WriteString("    // The kernel lexer will use these for pure lossless ASCII segmentation\n")
	b.WriteString("    registry.tokens.set_multichar_lexemes(vec![\n")
	for _, lex := range lexemes {
		fmt.Fprintf(&b, "        %s,\n", quote(lex))
	}
	b.WriteString("    ]);\n")
	b.WriteString("\n")
	return b.String()
}

// quote returns lex as a Rust string literal.
func quote(lex string) string {
	r := strings.NewReplacer(`\`, `\\`, `"`, `\"`)
	return `"` + r.Replace(lex) + `"`
}
