// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rewrite

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCatalogSequential(t *testing.T) {
	// b -> c only fires because a -> b ran first.
	c := &Catalog{Passes: []Pass{
		{Name: "one", Rules: []*Rule{
			MustRule("a-to-b", `a`, `b`),
			MustRule("b-to-c", `b`, `c`),
		}},
	}}
	assert.Equal(t, "cc", c.Apply("ab"))

	// Reversed order: the second rule sees only the rewritten text.
	rev := &Catalog{Passes: []Pass{
		{Name: "one", Rules: []*Rule{
			MustRule("b-to-c", `b`, `c`),
			MustRule("a-to-b", `a`, `b`),
		}},
	}}
	assert.Equal(t, "bc", rev.Apply("ab"))
}

func TestCatalogPassesFeedForward(t *testing.T) {
	c := &Catalog{Passes: []Pass{
		{Name: "first", Rules: []*Rule{MustRule("x", `x`, `y`)}},
		{Name: "second", Rules: []*Rule{MustRule("y", `y`, `z`)}},
	}}
	out, fired := c.Trace("x y")
	assert.Equal(t, "z z", out)
	assert.Equal(t, []Firing{
		{Pass: "first", Rule: "x", Count: 1},
		{Pass: "second", Rule: "y", Count: 2},
	}, fired)
	assert.Equal(t, 2, c.Rules())
}

func TestCatalogGuardSeesInput(t *testing.T) {
	var seen []string
	c := &Catalog{Passes: []Pass{
		{Name: "p", Rules: []*Rule{
			MustRule("x", `x`, `y`),
			MustRule("mark", `^`, `!`).WithGuard(func(orig, cur string) bool {
				seen = append(seen, orig, cur)
				return true
			}),
		}},
	}}
	assert.Equal(t, "!y", c.Apply("x"))
	assert.Equal(t, []string{"x", "y"}, seen)
}

func TestCatalogEmpty(t *testing.T) {
	c := &Catalog{}
	assert.Equal(t, "unchanged", c.Apply("unchanged"))
	out, fired := c.Trace("unchanged")
	assert.Equal(t, "unchanged", out)
	assert.Empty(t, fired)
}
