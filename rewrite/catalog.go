// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rewrite

// A Pass is an ordered list of rules applied as one stage.
type Pass struct {
	Name  string
	Rules []*Rule
}

// A Catalog is an ordered list of passes.
// A Catalog is not modified after construction and may be
// used by multiple goroutines.
type Catalog struct {
	Passes []Pass
}

// A Firing records that a rule made replacements.
type Firing struct {
	Pass  string
	Rule  string
	Count int
}

// Apply runs every pass of c over text and returns the result.
func (c *Catalog) Apply(text string) string {
	out, _ := c.apply(text, false)
	return out
}

// Trace is like Apply but also reports which rules fired, in order.
func (c *Catalog) Trace(text string) (string, []Firing) {
	return c.apply(text, true)
}

func (c *Catalog) apply(text string, trace bool) (string, []Firing) {
	var fired []Firing
	cur := text
	for _, p := range c.Passes {
		for _, r := range p.Rules {
			var n int
			cur, n = r.Apply(text, cur)
			if trace && n > 0 {
				fired = append(fired, Firing{Pass: p.Name, Rule: r.Name, Count: n})
			}
		}
	}
	return cur, fired
}

// Rules returns the number of rules in c.
func (c *Catalog) Rules() int {
	n := 0
	for _, p := range c.Passes {
		n += len(p.Rules)
	}
	return n
}
