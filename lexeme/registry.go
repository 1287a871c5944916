// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package lexeme holds the multi-character lexeme tables of the
// language front-ends and injects them into each front-end's dispatcher.
package lexeme

import (
	"fmt"
	"path"
	"strings"

	"golang.org/x/mod/module"
)

// A ModuleSpec describes one language front-end and the
// multi-character lexemes its lexer must know about.
//
// Lexemes are kept in declaration order: operators, then keywords,
// then boolean literals.
type ModuleSpec struct {
	Name    string
	Lexemes []string
}

// Dir returns the front-end's source directory, relative to the tree root.
func (m ModuleSpec) Dir() string {
	return "src_" + m.Name
}

// Dispatcher returns the path of the file holding the front-end's
// register_all entry point, relative to the tree root.
func (m ModuleSpec) Dispatcher() string {
	return path.Join(m.Dir(), m.Dir()+".rs")
}

// Booleans returns the source spellings of the true and false literals.
// They are taken from the lexeme table when present there, in any case,
// and default to "true" and "false".
func (m ModuleSpec) Booleans() (t, f string) {
	t, f = "true", "false"
	for _, lex := range m.Lexemes {
		switch {
		case strings.EqualFold(lex, "true"):
			t = lex
		case strings.EqualFold(lex, "false"):
			f = lex
		}
	}
	return t, f
}

// A Registry is an ordered, immutable set of ModuleSpecs.
type Registry struct {
	specs  []ModuleSpec
	byName map[string]int
}

// NewRegistry returns a registry holding specs, in the given order.
// Names must be unique and must form valid file path elements.
func NewRegistry(specs ...ModuleSpec) (*Registry, error) {
	r := &Registry{byName: make(map[string]int)}
	for _, s := range specs {
		if s.Name == "" {
			return nil, fmt.Errorf("module with empty name")
		}
		if err := module.CheckFilePath(s.Dispatcher()); err != nil {
			return nil, fmt.Errorf("module %s: %v", s.Name, err)
		}
		if _, dup := r.byName[s.Name]; dup {
			return nil, fmt.Errorf("duplicate module %s", s.Name)
		}
		s.Lexemes = append([]string(nil), s.Lexemes...)
		r.byName[s.Name] = len(r.specs)
		r.specs = append(r.specs, s)
	}
	return r, nil
}

// MustRegistry is like NewRegistry but panics on error.
func MustRegistry(specs ...ModuleSpec) *Registry {
	r, err := NewRegistry(specs...)
	if err != nil {
		panic("lexeme: " + err.Error())
	}
	return r
}

// Lookup returns the spec for the named module.
func (r *Registry) Lookup(name string) (ModuleSpec, bool) {
	i, ok := r.byName[name]
	if !ok {
		return ModuleSpec{}, false
	}
	return r.specs[i].clone(), true
}

// Names returns the module names in registry order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.specs))
	for i, s := range r.specs {
		names[i] = s.Name
	}
	return names
}

// Specs returns a copy of the specs in registry order.
func (r *Registry) Specs() []ModuleSpec {
	specs := make([]ModuleSpec, len(r.specs))
	for i, s := range r.specs {
		specs[i] = s.clone()
	}
	return specs
}

func (m ModuleSpec) clone() ModuleSpec {
	m.Lexemes = append([]string(nil), m.Lexemes...)
	return m
}

// Builtin returns the registry of the front-ends shipped in the tree.
// lumen carries no table: its dispatcher is maintained by hand.
func Builtin() *Registry {
	return MustRegistry(
		ModuleSpec{Name: "mini_rust", Lexemes: []string{
			"==", "!=", "<=", ">=", "&&", "||", ":=",
			"let", "if", "else", "while", "break", "continue", "print", "true", "false",
		}},
		ModuleSpec{Name: "mini_c", Lexemes: []string{
			"==", "!=", "<=", ">=",
			"and", "or", "not", "if", "else", "while", "break", "continue", "printf", "true", "false",
		}},
		ModuleSpec{Name: "mini_php", Lexemes: []string{
			"==", "!=", "<=", ">=", "===", "!==",
			"and", "or", "not", "if", "else", "while", "break", "continue", "echo", "true", "false",
		}},
		ModuleSpec{Name: "mini_sh", Lexemes: []string{
			"==", "!=", "<=", ">=",
			"and", "or", "not", "if", "else", "while", "break", "continue", "echo", "true", "false",
		}},
		ModuleSpec{Name: "mini_apple_basic", Lexemes: []string{
			"==", "!=", "<=", ">=",
			"AND", "OR", "NOT", "IF", "ELSE", "WHILE", "BREAK", "CONTINUE", "PRINT", "TRUE", "FALSE",
		}},
		ModuleSpec{Name: "mini_apple_pascal", Lexemes: []string{
			"==", "!=", "<=", ">=", ":=",
			"and", "or", "not", "if", "else", "while", "break", "continue", "writeln", "true", "false",
		}},
		ModuleSpec{Name: "lumen"},
	)
}
