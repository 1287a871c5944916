// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package catalog

import "github.com/ivanshim/lexmigrate/rewrite"

const (
	advance     = `match\s+parser\.advance\(\)\s*\{\s*`
	unreachable = `\s*,\s*_\s*=>\s*unreachable!\(\)\s*,?\s*\}`

	// errExpr is the argument of Err(...): string literals and up to
	// two levels of nested parentheses, as in "msg".into() or format!(..).
	errFlat   = `(?:` + str + `|[^()"])`
	errInner  = `(?:` + str + `|[^()"]|\(` + errFlat + `*\))`
	errExpr   = `(?:` + str + `|[^()"]|\(` + errInner + `*\))+`
	orFail    = `\s*,?\s*_\s*=>\s*return\s+Err\((?P<err>` + errExpr + `)\)\s*,?\s*\}`
	expectFmt = `if parser.advance().lexeme != ${c} { return Err(${err}); }`
)

func consumeRules(t string) []*rewrite.Rule {
	t = literal(t)
	return []*rewrite.Rule{
		rewrite.MustRule("payload",
			advance+`Token::(?:Ident|Number)\(s\)\s*=>\s*s`+unreachable,
			`parser.advance().lexeme`),
		rewrite.MustRule("payload-into",
			advance+`Token::(?:Ident|Number)\((?P<b>\w+)\)\s*=>\s*Ok\((?P<ctor>[^{}]*\{[^{}]*\}\)*)\)`+unreachable,
			`{ let ${b} = parser.advance().lexeme; Ok(${ctor}) }`),

		rewrite.MustRule("expect-guarded",
			advance+`Token::Feature\(\w+\)\s+if\s+\w+\s*==\s*(?P<c>`+konst+`)\s*=>\s*\{\}`+orFail,
			expectFmt),
		rewrite.MustRule("expect",
			advance+`Token::Feature\((?P<c>`+konst+`)\)\s*=>\s*\{\}`+orFail,
			expectFmt),

		rewrite.MustRule("bool-literal",
			advance+
				`Token::Feature\(TRUE\)\s*=>\s*Ok\(Box::new\(BoolLiteral\s*\{\s*value:\s*true\s*\}\)\)\s*,\s*`+
				`Token::Feature\(FALSE\)\s*=>\s*Ok\(Box::new\(BoolLiteral\s*\{\s*value:\s*false\s*\}\)\)`+
				unreachable,
			`{ let value = parser.advance().lexeme == "`+t+`"; Ok(Box::new(BoolLiteral { value })) }`),

		rewrite.MustRule("synthetic-token",
			`tok:\s*Token::Feature\((?P<c>`+konst+`)\)`,
			`tok: Token::new(${c}.to_string())`),
	}
}
