// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Lexmigrate migrates language front-end parsers from typed token
// matching to lexeme matching.
//
// Usage:
//
//	lexmigrate run [--diff] [--module name]... [--root dir] [--jobs n]
//	lexmigrate modules
//	lexmigrate rules [module]
//
// Each front-end lives in a directory src_<module> under the root and has
// a dispatcher file src_<module>/src_<module>.rs whose register_all
// function registers the front-end's features. For every selected
// module, lexmigrate run
//
//   - declares the module's multi-character lexemes at the top of
//     register_all, unless they are already declared;
//   - rewrites every .rs file of the module, except those under a
//     directory named examples, replacing checks such as
//
//	matches!(parser.peek(), Token::Feature(LET))
//
// with
//
//	parser.peek().lexeme == LET
//
// and removing the per-feature token registration calls that the
// lexeme-driven lexer no longer needs.
//
// By default, lexmigrate writes changes back to the disk.
// The --diff flag causes it to print a diff of the intended changes instead.
// Running lexmigrate a second time changes nothing.
//
// Lexmigrate prints a line for each file it changed or failed to
// process, followed by a count of the files changed. A file that cannot
// be read or written is reported and counted; the remaining files are
// still processed. Modules without a directory under the root are skipped.
//
// # Configuration
//
// Settings may also be given in a YAML file, named by --config or found
// as lexmigrate.yaml in the current directory:
//
//	root: ../lumen-lang
//	modules: [mini_c, mini_sh]
//	exclude: [examples]
//	jobs: 4
//
// Flags given on the command line override the file. A relative root
// in the file is relative to the file's directory.
//
// # Rules
//
// The rules run in three passes, in a fixed order: predicate rewrites
// matches! checks on parser.peek(), consume rewrites match blocks on
// parser.advance(), and cleanup removes registration calls and the
// then unused Token import. The rules command lists them.
// The boolean literals a module's rules compare against are taken
// from its lexeme table, so a front-end that spells them TRUE and
// FALSE gets checks against "TRUE" and "FALSE".
package main
