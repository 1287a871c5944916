// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rewrite

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var applyTests = []struct {
	name     string
	pattern  string
	template string
	in       string
	out      string
	count    int
}{
	{"no match", `foo`, `bar`, "baz qux", "baz qux", 0},
	{"every occurrence", `foo`, `bar`, "foo foo foo", "bar bar bar", 3},
	{"named capture", `f\((?P<x>\w+)\)`, `g(${x})`, "f(a) + f(b)", "g(a) + g(b)", 2},
	{"numbered capture", `f\((\w+)\)`, `g($1)`, "f(a)", "g(a)", 1},
	{"capture used twice", `dup\((?P<x>\w+)\)`, `${x}+${x}`, "dup(y)", "y+y", 1},
	{"non-overlapping", `aa`, `b`, "aaaaa", "bba", 2},
	{"leftmost first", `a|ab`, `X`, "ab", "Xb", 1},
	{"literal dollar", `cost`, `$$5`, "cost", "$5", 1},
}

func TestRuleApply(t *testing.T) {
	for _, tt := range applyTests {
		t.Run(tt.name, func(t *testing.T) {
			r := MustRule(tt.name, tt.pattern, tt.template)
			out, n := r.Apply(tt.in, tt.in)
			assert.Equal(t, tt.out, out)
			assert.Equal(t, tt.count, n)
		})
	}
}

func TestRuleLimit(t *testing.T) {
	r := MustRule("first", `x`, `y`).WithLimit(1)
	out, n := r.Apply("", "x x x")
	assert.Equal(t, "y x x", out)
	assert.Equal(t, 1, n)
}

func TestRuleGuard(t *testing.T) {
	r := MustRule("guarded", `x`, `y`).WithGuard(func(orig, cur string) bool {
		return strings.Contains(orig, "go")
	})

	out, n := r.Apply("stop", "x")
	assert.Equal(t, "x", out)
	assert.Zero(t, n)

	out, n = r.Apply("go", "x")
	assert.Equal(t, "y", out)
	assert.Equal(t, 1, n)
}

func TestRuleCopiesDoNotAlias(t *testing.T) {
	base := MustRule("base", `x`, `y`)
	limited := base.WithLimit(1)
	assert.Zero(t, base.Limit)
	assert.Equal(t, 1, limited.Limit)
	assert.Nil(t, base.Guard)
}

func TestMustRuleUndefinedGroup(t *testing.T) {
	assert.PanicsWithValue(t,
		`rewrite: rule bad: template refers to undefined group "name"`,
		func() { MustRule("bad", `f\((?P<x>\w+)\)`, `g(${name})`) })
	assert.Panics(t, func() { MustRule("bad2", `f\((\w+)\)`, `g($2)`) })
	assert.Panics(t, func() { MustRule("badre", `f\(`, `g`) })
}

func TestMustRuleAcceptsDefinedGroups(t *testing.T) {
	require.NotPanics(t, func() {
		MustRule("ok", `(?P<a>\w)(\w)`, `$a ${2} $$ ${0}`)
	})
}
