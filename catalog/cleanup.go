// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package catalog

import (
	"regexp"
	"strings"

	"github.com/ivanshim/lexmigrate/rewrite"
)

// Marker is the comment left at the top of a register function
// whose token registration calls were removed.
const Marker = "// No token registration needed - kernel handles all segmentation"

var (
	registerCall = regexp.MustCompile(`reg\.tokens\.add_(?:keyword|single_char|two_char)\(`)
	tokenImport  = regexp.MustCompile(`(?m)^use crate::(?:kernel|framework)::lexer::Token;[ \t]*\n`)
	tokenRef     = regexp.MustCompile(`\bToken\b`)
	noise        = regexp.MustCompile(chr + `|` + str + `|//[^\n]*`)
)

func cleanupRules() []*rewrite.Rule {
	return []*rewrite.Rule{
		rewrite.MustRule("drop-registration",
			`(?m)^[ \t]*reg\.tokens\.add_(?:keyword|single_char|two_char)\((?:`+str+`|`+chr+`|[^()'"])*\);[ \t]*(?://[^\n]*)?\n`,
			``),
		rewrite.MustRule("drop-register-tokens-comment",
			`(?m)^[ \t]*// Register tokens[ \t]*\n(?:[ \t]*\n)+`,
			``),
		rewrite.MustRule("drop-token-definitions-comment",
			`(?m)^[ \t]*// Token definitions[ \t]*\n(?:[ \t]*\n)+(?P<decl>[ \t]*pub const)`,
			`${decl}`),
		rewrite.MustRule("registration-marker",
			`(?P<head>pub fn register\(reg: &mut Registry\)\s*\{[ \t]*)\n`,
			"${head}\n    "+Marker+"\n").
			WithLimit(1).
			WithGuard(registrationRemoved),
		rewrite.MustRule("drop-token-import", tokenImport.String(), ``).
			WithGuard(tokenUnused),
	}
}

// registrationRemoved reports whether the catalog removed every token
// registration call of its input and the marker is not yet present.
func registrationRemoved(orig, cur string) bool {
	return registerCall.MatchString(orig) &&
		!registerCall.MatchString(cur) &&
		!strings.Contains(cur, Marker)
}

// tokenUnused reports whether cur refers to Token anywhere besides its
// import, ignoring comments and string literals.
func tokenUnused(_, cur string) bool {
	code := noise.ReplaceAllString(tokenImport.ReplaceAllString(cur, ""), "")
	return !tokenRef.MatchString(code)
}
