// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package catalog defines the rewrite rules that migrate front-end
// parser sources from typed token matching (Token::Feature, Token::Ident,
// Token::Number) to matching on token lexemes.
//
// The catalog has three passes, run in order:
//
//	predicate  matches!(parser.peek(), ...) checks
//	consume    match parser.advance() { ... } blocks
//	cleanup    token registration calls, the Token import, empty comments
//
// Every rule produces text that no rule in the catalog matches,
// so applying the catalog to its own output changes nothing.
package catalog

import (
	"strings"

	"github.com/ivanshim/lexmigrate/lexeme"
	"github.com/ivanshim/lexmigrate/rewrite"
)

// Pass names.
const (
	Predicate = "predicate"
	Consume   = "consume"
	Cleanup   = "cleanup"
)

// Shared pattern fragments.
const (
	// peekArgs opens a matches! on the parser's next token.
	peekArgs = `matches!\(\s*parser\.peek\(\),\s*`

	// konst is a named token constant, optionally path-qualified.
	konst = `(?:\w+::)*[A-Z][A-Z0-9_]*`

	// operand is the right-hand side of a guard comparison.
	operand = `(?:\w+::)*\w+(?:\.\w+)*`

	// guard is a binding plus the head of its comparison: k) if *k ==
	guard = `\w+\)\s+if\s+\*\w+\s*==\s*`

	// str is a Rust string literal.
	str = `"(?:[^"\\]|\\.)*"`

	// chr is a Rust character literal.
	chr = `'(?:[^'\\]|\\.)'`
)

// New returns the catalog for a front-end whose boolean literals are
// spelled t and f in source text.
func New(t, f string) *rewrite.Catalog {
	return &rewrite.Catalog{Passes: []rewrite.Pass{
		{Name: Predicate, Rules: predicateRules(t, f)},
		{Name: Consume, Rules: consumeRules(t)},
		{Name: Cleanup, Rules: cleanupRules()},
	}}
}

// ForModule returns the catalog for the front-end described by spec.
func ForModule(spec lexeme.ModuleSpec) *rewrite.Catalog {
	return New(spec.Booleans())
}

// Default is the catalog for front-ends spelling booleans true and false.
var Default = New("true", "false")

// literal escapes s for use inside a rule template.
func literal(s string) string {
	return strings.ReplaceAll(s, "$", "$$")
}
