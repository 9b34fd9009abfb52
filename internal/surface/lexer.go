// Package surface is the textual front end for equations and axiom files:
// a participle grammar over a small Peano-term language, and a Desugar
// step that lowers its AST into internal/term and internal/pattern
// values. The lexer/grammar/parse-error shape is grounded directly on
// grammar/lexer.go's lexer.MustStateful rule table and grammar/parser.go's
// participle.Build/caret-style error report.
package surface

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// Lexer tokenises equation and axiom-file source. Order matters: keywords
// are plain Idents disambiguated in the grammar, not the lexer, the same
// choice grammar/lexer.go makes for Kanso's keywords.
var Lexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		{"Comment", `//[^\n]*`, nil},
		{"Ident", `[a-zA-Z_][a-zA-Z0-9_]*`, nil},
		{"Integer", `[0-9]+`, nil},
		{"Arrow", `<->|->|<-`, nil},
		{"Punctuation", `[=().,:;.+]`, nil},
		{"Whitespace", `[ \t\r\n]+`, nil},
	},
})
