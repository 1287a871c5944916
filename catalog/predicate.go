// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package catalog

import "github.com/ivanshim/lexmigrate/rewrite"

const (
	isIdent = `.lexeme.chars().next().map_or(false, |c| c.is_alphabetic() || c == '_')`
	isDigit = `.lexeme.chars().next().map_or(false, |c| c.is_ascii_digit())`

	identWord = peekArgs + `Token::Ident\(\w+\)\s+if\s+\w+\s*==\s*"(?P<word>[^"]*)"\s*\)`
	orGuard   = `Token::Feature\(` + guard + `(?P<a>` + operand + `)\s*\|\|\s*\*\w+\s*==\s*(?P<b>` + operand + `)\s*\)`
)

func predicateRules(t, f string) []*rewrite.Rule {
	t, f = literal(t), literal(f)
	return []*rewrite.Rule{
		// Negations come first: rewriting the inner matches! alone
		// would leave !parser.peek().lexeme == X behind.
		rewrite.MustRule("while-not-either",
			`while\s+!`+peekArgs+orGuard,
			`while parser.peek().lexeme != ${a} && parser.peek().lexeme != ${b}`),
		rewrite.MustRule("not-either",
			`!`+peekArgs+orGuard,
			`(parser.peek().lexeme != ${a} && parser.peek().lexeme != ${b})`),
		rewrite.MustRule("not-guarded-feature",
			`!`+peekArgs+`Token::Feature\(`+guard+`(?P<c>`+operand+`)\s*\)`,
			`parser.peek().lexeme != ${c}`),
		rewrite.MustRule("not-feature",
			`!`+peekArgs+`Token::Feature\((?P<c>`+konst+`)\)\s*\)`,
			`parser.peek().lexeme != ${c}`),
		rewrite.MustRule("not-ident-word",
			`!`+identWord,
			`parser.peek().lexeme != "${word}"`),

		rewrite.MustRule("either-feature",
			peekArgs+orGuard,
			`(parser.peek().lexeme == ${a} || parser.peek().lexeme == ${b})`),
		rewrite.MustRule("feature",
			peekArgs+`Token::Feature\((?P<c>`+konst+`)\)\s*\)`,
			`parser.peek().lexeme == ${c}`),
		rewrite.MustRule("guarded-feature",
			peekArgs+`Token::Feature\(`+guard+`(?P<c>`+operand+`)\s*\)`,
			`parser.peek().lexeme == ${c}`),

		rewrite.MustRule("ident",
			peekArgs+`Token::Ident\(_\)\s*\)`,
			`parser.peek()`+isIdent),
		rewrite.MustRule("ident-word",
			identWord,
			`parser.peek().lexeme == "${word}"`),
		rewrite.MustRule("number",
			peekArgs+`Token::Number\(_\)\s*\)`,
			`parser.peek()`+isDigit),

		// Either order of the boolean alternation.
		rewrite.MustRule("bool",
			peekArgs+`Token::Feature\(TRUE\)\s*\|\s*Token::Feature\(FALSE\)\s*\)`,
			`(parser.peek().lexeme == "`+t+`" || parser.peek().lexeme == "`+f+`")`),
		rewrite.MustRule("bool-reversed",
			peekArgs+`Token::Feature\(FALSE\)\s*\|\s*Token::Feature\(TRUE\)\s*\)`,
			`(parser.peek().lexeme == "`+f+`" || parser.peek().lexeme == "`+t+`")`),

		rewrite.MustRule("peek-n-feature",
			`parser\.peek_n\((?P<n>\d+)\)\.map_or\(false,\s*\|(?P<t>\w+)\|\s*matches!\(\w+,\s*Token::Feature\((?P<c>`+konst+`)\)\s*\)\)`,
			`parser.peek_n(${n}).map_or(false, |${t}| ${t}.lexeme == ${c})`),
		rewrite.MustRule("ident-then-feature",
			`\(Token::Ident\(_\),\s*Some\(Token::Feature\((?P<c>`+konst+`)\)\)\)`,
			`(tok, Some(next)) if tok`+isIdent+` && next.lexeme == ${c}`),
	}
}
