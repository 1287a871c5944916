// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rewrite implements ordered catalogs of textual rewrite rules.
//
// A Rule pairs a regular expression with a replacement template.
// Rules are grouped into Passes, and Passes into a Catalog.
// Applying a Catalog runs every Pass in order and every Rule of a Pass
// in order, feeding each rule's output to the next rule.
package rewrite

import (
	"fmt"
	"regexp"
	"strings"
)

// A Rule rewrites every match of Pattern in a text with Template.
//
// Template uses the syntax of regexp.Regexp.Expand:
// $1 or ${1} for numbered groups and $name or ${name} for named groups.
// Captures are copied literally; a template may use a capture more than once.
type Rule struct {
	Name     string
	Pattern  *regexp.Regexp
	Template string

	// Limit caps the number of replacements made by one application.
	// Zero means no limit.
	Limit int

	// Guard, if non-nil, decides whether the rule runs at all.
	// orig is the text the catalog started from and cur is the text
	// the rule would be applied to.
	Guard func(orig, cur string) bool
}

// MustRule returns a rule with the given name, pattern and template.
// It panics if the pattern does not compile or if the template refers
// to a group the pattern does not define.
func MustRule(name, pattern, template string) *Rule {
	re := regexp.MustCompile(pattern)
	if err := checkTemplate(re, template); err != nil {
		panic(fmt.Sprintf("rewrite: rule %s: %v", name, err))
	}
	return &Rule{Name: name, Pattern: re, Template: template}
}

// WithLimit returns a copy of r that makes at most n replacements.
func (r *Rule) WithLimit(n int) *Rule {
	r1 := *r
	r1.Limit = n
	return &r1
}

// WithGuard returns a copy of r that only runs when guard reports true.
func (r *Rule) WithGuard(guard func(orig, cur string) bool) *Rule {
	r1 := *r
	r1.Guard = guard
	return &r1
}

// Apply applies r to cur and returns the result and the number of
// replacements made. Matches are found leftmost-first and never overlap.
func (r *Rule) Apply(orig, cur string) (string, int) {
	if r.Guard != nil && !r.Guard(orig, cur) {
		return cur, 0
	}
	n := -1
	if r.Limit > 0 {
		n = r.Limit
	}
	matches := r.Pattern.FindAllStringSubmatchIndex(cur, n)
	if len(matches) == 0 {
		return cur, 0
	}

	var b strings.Builder
	b.Grow(len(cur))
	var dst []byte
	last := 0
	for _, m := range matches {
		b.WriteString(cur[last:m[0]])
		dst = r.Pattern.ExpandString(dst[:0], r.Template, cur, m)
		b.Write(dst)
		last = m[1]
	}
	b.WriteString(cur[last:])
	return b.String(), len(matches)
}

func (r *Rule) String() string {
	return r.Name
}

// templateRef matches the group references recognized by regexp.Expand.
var templateRef = regexp.MustCompile(`\$(?:\{([A-Za-z0-9_]+)\}|([A-Za-z0-9_]+))`)

func checkTemplate(re *regexp.Regexp, template string) error {
	names := make(map[string]bool)
	for i, name := range re.SubexpNames() {
		names[fmt.Sprint(i)] = true
		if name != "" {
			names[name] = true
		}
	}
	// $$ is a literal dollar sign.
	t := strings.ReplaceAll(template, "$$", "")
	for _, m := range templateRef.FindAllStringSubmatch(t, -1) {
		ref := m[1]
		if ref == "" {
			ref = m[2]
		}
		if !names[ref] {
			return fmt.Errorf("template refers to undefined group %q", ref)
		}
	}
	return nil
}
